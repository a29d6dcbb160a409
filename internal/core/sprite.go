package core

// Sprite is a small piece of character art used as a frame by the terminal
// frontend. Sprites are shared read-only between entities.
type Sprite struct {
	Lines []string
	Color Color
}

// Width returns the widest row in runes.
func (sp Sprite) Width() int {
	w := 0
	for _, l := range sp.Lines {
		w = max(w, len([]rune(l)))
	}
	return w
}

// Height returns the number of rows.
func (sp Sprite) Height() int {
	return len(sp.Lines)
}
