package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Ship is the player or an enemy. It owns the projectiles it fired and
// references shared frame sets for each visual tier.
type Ship struct {
	x, y     float64
	angle    float64
	isPlayer bool
	health   int

	state DestroyState
	tier  Tier

	sprites     ShipSprites
	projSprites *FrameSet
	projectiles []*Projectile

	frame int
	timer AnimationTimer
}

// NewShip creates a ship at (x, y) facing angle radians.
func NewShip(x, y, angle float64, isPlayer bool, sprites ShipSprites, projSprites *FrameSet) *Ship {
	return &Ship{
		x:           x,
		y:           y,
		angle:       angle,
		isPlayer:    isPlayer,
		health:      StartHealth,
		state:       StateNormal,
		tier:        TierNormal,
		sprites:     sprites,
		projSprites: projSprites,
		timer:       NewAnimationTimer(ShipFrameCadence),
	}
}

// NewPlayer creates the player ship at its start position.
func NewPlayer(sprites Sprites) *Ship {
	return NewShip(core.PlayWidth/2, core.PlayHeight-PlayerStartOffset, 0, true, sprites.Player, sprites.Projectile)
}

// NewEnemy creates an enemy facing down at the given column.
func NewEnemy(x float64, sprites Sprites) *Ship {
	return NewShip(x, SpawnY, math.Pi, false, sprites.Enemy, sprites.Projectile)
}

// X returns the horizontal position.
func (s *Ship) X() float64 { return s.x }

// Y returns the vertical position.
func (s *Ship) Y() float64 { return s.y }

// Pos returns the position as a vector.
func (s *Ship) Pos() core.Vec { return core.Vec{X: s.x, Y: s.y} }

// Angle returns the fixed render rotation in radians.
func (s *Ship) Angle() float64 { return s.angle }

// IsPlayer reports whether this is the player ship.
func (s *Ship) IsPlayer() bool { return s.isPlayer }

// Health returns the remaining health, never below zero.
func (s *Ship) Health() int { return s.health }

// State returns the destruction state.
func (s *Ship) State() DestroyState { return s.state }

// Tier returns the visual tier of a living ship.
func (s *Ship) Tier() Tier { return s.tier }

// Frame returns the animation cursor into ActiveFrames.
func (s *Ship) Frame() int { return s.frame }

// Projectiles returns the projectiles currently owned by the ship.
func (s *Ship) Projectiles() []*Projectile { return s.projectiles }

// Alive reports whether the ship is still in normal play.
func (s *Ship) Alive() bool {
	return s.state == StateNormal
}

// ActiveFrames returns the frame set the current cursor indexes into.
func (s *Ship) ActiveFrames() *FrameSet {
	switch s.state {
	case StateDestroying, StateDestroyEnd, StateDestroyed:
		return s.sprites.Explosion
	}
	if s.tier == TierDamaged && s.sprites.Damaged != nil {
		return s.sprites.Damaged
	}
	return s.sprites.Normal
}

// Move shifts the ship horizontally. Positions are not clamped to the screen.
func (s *Ship) Move(delta float64) {
	s.x += delta
}

// Shoot fires a projectile from the ship's muzzle.
func (s *Ship) Shoot() *Projectile {
	muzzle := EnemyMuzzle
	if s.isPlayer {
		muzzle = PlayerMuzzle
	}
	p := NewProjectile(s.x+muzzle.X, s.y+muzzle.Y, s.projSprites)
	s.projectiles = append(s.projectiles, p)
	return p
}

// NotifyHit applies damage. Ships already leaving normal play ignore it.
func (s *Ship) NotifyHit(damage int) {
	if s.state != StateNormal {
		return
	}
	s.health = max(s.health-damage, 0)
	s.transition()
}

// Destroy starts the destruction sequence regardless of health.
func (s *Ship) Destroy() {
	if s.state != StateNormal {
		return
	}
	s.state = StateDestroyStart
}

// transition is the single entry point that moves a living ship between
// visual tiers or into its destruction sequence.
func (s *Ship) transition() {
	switch tier := TierFor(s.health); tier {
	case TierDead:
		s.Destroy()
	default:
		if tier != s.tier {
			s.tier = tier
			s.frame = 0
		}
	}
}

// Update advances the animation, the destruction sequence, drift and the
// owned projectiles by dt seconds.
func (s *Ship) Update(dt float64) {
	if s.timer.Tick(dt) {
		s.step()
	}

	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.CanBeRemoved() {
			kept = append(kept, p)
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept

	for _, p := range s.projectiles {
		p.Update(dt)
	}
}

// step runs one animation tick of the state machine.
func (s *Ship) step() {
	switch s.state {
	case StateNormal:
		if !s.isPlayer {
			if s.tier == TierDamaged {
				s.y += EnemyDamagedDrift
			} else {
				s.y += EnemyDrift
			}
		}
		s.frame = nextFrame(s.frame, s.ActiveFrames().Len())

	case StateDestroyStart:
		recoil := EnemyRecoil
		if s.isPlayer {
			recoil = PlayerRecoil
		}
		s.x += recoil.X
		s.y += recoil.Y
		s.frame = 0
		s.state = StateDestroying

	case StateDestroying:
		last := s.sprites.Explosion.Last()
		if s.frame < last {
			s.frame++
		}
		if s.frame >= last {
			s.frame = last
			s.state = StateDestroyEnd
		}

	case StateDestroyEnd:
		s.state = StateDestroyed

	case StateDestroyed:
	}
}

// CanBeRemoved reports whether the ship finished its destruction sequence
// or drifted below the play area.
func (s *Ship) CanBeRemoved() bool {
	return s.state == StateDestroyed || s.y > core.PlayHeight
}

// Draw renders the hull, then the owned projectiles. Destroyed ships draw nothing.
func (s *Ship) Draw(r Renderer) {
	if s.state == StateDestroyed {
		return
	}
	r.DrawFrame(s.ActiveFrames().At(s.frame), s.x, s.y, s.angle)
	for _, p := range s.projectiles {
		p.Draw(r)
	}
}
