package assets

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

//go:embed data/glyphs.yaml
var defaultGlyphSheetYAML []byte

type glyphSheet struct {
	Glyphs map[string]struct {
		Color string   `yaml:"color"`
		Lines []string `yaml:"lines"`
	} `yaml:"glyphs"`
}

// GlyphProvider resolves asset ids to character sprites.
// Frames are core.Sprite values sharing the sheet's line slices.
type GlyphProvider struct {
	glyphs map[string]core.Sprite
}

// NewGlyphProvider parses a YAML glyph sheet.
func NewGlyphProvider(sheet []byte) (*GlyphProvider, error) {
	var gs glyphSheet
	if err := yaml.Unmarshal(sheet, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse glyph sheet: %w", err)
	}
	p := &GlyphProvider{glyphs: make(map[string]core.Sprite, len(gs.Glyphs))}
	for id, g := range gs.Glyphs {
		if len(g.Lines) == 0 {
			return nil, fmt.Errorf("glyph %q has no lines", id)
		}
		p.glyphs[id] = core.Sprite{Lines: g.Lines, Color: core.ParseColor(g.Color)}
	}
	return p, nil
}

// DefaultGlyphProvider returns the provider for the embedded glyph sheet.
func DefaultGlyphProvider() *GlyphProvider {
	p, err := NewGlyphProvider(defaultGlyphSheetYAML)
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve implements Provider.
func (p *GlyphProvider) Resolve(ctx context.Context, ids []string) ([]invaders.Frame, error) {
	frames := make([]invaders.Frame, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sp, ok := p.glyphs[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
		}
		frames = append(frames, sp)
	}
	return frames, nil
}
