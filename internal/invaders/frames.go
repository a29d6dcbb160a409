package invaders

// Frame is an opaque drawable handle produced by a texture provider.
// The simulation never looks inside it; only the renderer does.
type Frame any

// FrameSet is an ordered, immutable sequence of frames for one visual tier.
// A FrameSet is shared by pointer between every entity that uses it.
type FrameSet struct {
	name   string
	frames []Frame
}

// NewFrameSet wraps frames under a logical sprite-set name.
// The slice is copied so later changes by the caller are not observed.
func NewFrameSet(name string, frames []Frame) *FrameSet {
	cp := make([]Frame, len(frames))
	copy(cp, frames)
	return &FrameSet{name: name, frames: cp}
}

// Name returns the logical sprite-set name.
func (fs *FrameSet) Name() string {
	if fs == nil {
		return ""
	}
	return fs.name
}

// Len returns the number of frames.
func (fs *FrameSet) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.frames)
}

// Last returns the index of the last frame, or 0 for an empty set.
func (fs *FrameSet) Last() int {
	return max(fs.Len()-1, 0)
}

// At returns frame i clamped into range; nil for an empty set.
func (fs *FrameSet) At(i int) Frame {
	n := fs.Len()
	if n == 0 {
		return nil
	}
	return fs.frames[min(max(i, 0), n-1)]
}

// ShipSprites groups the frame sets a ship switches between.
type ShipSprites struct {
	Normal    *FrameSet
	Damaged   *FrameSet
	Explosion *FrameSet
}

// Sprites is everything a World needs to build entities.
type Sprites struct {
	Player     ShipSprites
	Enemy      ShipSprites
	Projectile *FrameSet
}

// Sprite-set names used by manifests and texture providers.
const (
	SetPlayer          = "player"
	SetPlayerDamaged   = "player_damaged"
	SetPlayerExplosion = "player_explosion"
	SetEnemy           = "enemy"
	SetEnemyDamaged    = "enemy_damaged"
	SetEnemyExplosion  = "enemy_explosion"
	SetProjectile      = "projectile"
)

// SetNames lists every sprite set a game needs, in load order.
var SetNames = []string{
	SetPlayer, SetPlayerDamaged, SetPlayerExplosion,
	SetEnemy, SetEnemyDamaged, SetEnemyExplosion,
	SetProjectile,
}

// SpritesFromSets assembles Sprites from named frame sets.
func SpritesFromSets(sets map[string]*FrameSet) Sprites {
	return Sprites{
		Player: ShipSprites{
			Normal:    sets[SetPlayer],
			Damaged:   sets[SetPlayerDamaged],
			Explosion: sets[SetPlayerExplosion],
		},
		Enemy: ShipSprites{
			Normal:    sets[SetEnemy],
			Damaged:   sets[SetEnemyDamaged],
			Explosion: sets[SetEnemyExplosion],
		},
		Projectile: sets[SetProjectile],
	}
}

// Renderer draws one frame at a position with a rotation in radians.
type Renderer interface {
	DrawFrame(f Frame, x, y, rotation float64)
}
