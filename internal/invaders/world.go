// Package invaders implements the simulation core of the shooter: ships,
// projectiles, the destruction state machine and the per-frame spawn and
// collision coordinator. It has no knowledge of textures, windows or input
// devices; frontends supply frames, input frames and a Renderer.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// CollisionPolicy holds the collision behaviors that are kept as-is but may
// be revisited.
type CollisionPolicy struct {
	// ContactDamagesPlayer also applies contact damage to the player.
	ContactDamagesPlayer bool
	// DedupProjectileHits stops a projectile at the first enemy it damages
	// instead of letting it damage every enemy in its band during one pass.
	DedupProjectileHits bool
}

// DefaultCollisionPolicy returns the shipped behavior: contact only hurts
// the enemy, and one projectile may hit several enemies in the same pass.
func DefaultCollisionPolicy() CollisionPolicy {
	return CollisionPolicy{}
}

// Stats counts what happened during a session.
type Stats struct {
	Spawned    int
	Kills      int
	Escaped    int
	ShotsFired int
}

// World owns the player, the enemies and the spawn schedule, and runs one
// simulation frame per Step.
type World struct {
	sprites Sprites
	policy  CollisionPolicy
	logger  *log.Logger

	player  *Ship
	enemies []*Ship

	spawnTimer float64
	spawnIdx   int

	stats Stats
}

// NewWorld creates a world with the player at its start position and no enemies.
func NewWorld(sprites Sprites) *World {
	return &World{
		sprites: sprites,
		policy:  DefaultCollisionPolicy(),
		logger:  log.New(io.Discard),
		player:  NewPlayer(sprites),
	}
}

// SetLogger routes spawn and destruction events to l. A nil logger discards them.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.logger = l
}

// SetPolicy replaces the collision policy.
func (w *World) SetPolicy(p CollisionPolicy) {
	w.policy = p
}

// Policy returns the collision policy in effect.
func (w *World) Policy() CollisionPolicy { return w.policy }

// Player returns the player ship.
func (w *World) Player() *Ship { return w.player }

// Enemies returns the current enemies in spawn order.
func (w *World) Enemies() []*Ship { return w.enemies }

// Stats returns the session counters.
func (w *World) Stats() Stats { return w.stats }

// Step runs one frame: prune, spawn, apply input, resolve collisions, then
// update every ship. dt is the elapsed time since the previous frame.
func (w *World) Step(dt float64, in core.InputFrame) {
	w.prune()
	w.advanceSpawn(dt)
	w.applyInput(in)

	w.checkContact()
	w.checkStacking()
	w.checkProjectiles()

	for _, e := range w.enemies {
		e.Update(dt)
	}
	w.player.Update(dt)
}

// Draw renders enemies, then the player.
func (w *World) Draw(r Renderer) {
	for _, e := range w.enemies {
		e.Draw(r)
	}
	w.player.Draw(r)
}

func (w *World) prune() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.CanBeRemoved() {
			kept = append(kept, e)
			continue
		}
		if e.Alive() {
			w.stats.Escaped++
			w.logger.Debug("enemy escaped", "x", e.X())
		} else {
			w.stats.Kills++
		}
	}
	clear(w.enemies[len(kept):])
	w.enemies = kept
}

func (w *World) advanceSpawn(dt float64) {
	w.spawnTimer += dt
	if w.spawnTimer < SpawnInterval {
		return
	}

	x := SpawnPattern[w.spawnIdx] * core.PlayWidth
	w.enemies = append(w.enemies, NewEnemy(x, w.sprites))
	w.spawnIdx = (w.spawnIdx + 1) % len(SpawnPattern)
	w.spawnTimer = 0
	w.stats.Spawned++

	w.logger.Debug("enemy spawned", "x", x, "count", len(w.enemies))
}

func (w *World) applyInput(in core.InputFrame) {
	if !w.player.Alive() {
		return
	}
	if in.MoveLeft() {
		w.player.Move(-PlayerSpeed)
	}
	if in.MoveRight() {
		w.player.Move(PlayerSpeed)
	}
	if in.FirePressed() {
		w.player.Shoot()
		w.stats.ShotsFired++
	}
}

// checkContact damages enemies whose hull reference point is close to the
// player's.
func (w *World) checkContact() {
	anchor := w.player.Pos().Add(PlayerContactAnchor)
	for _, e := range w.enemies {
		if !e.Alive() {
			continue
		}
		dx, dy := anchor.Delta(e.Pos().Add(EnemyContactAnchor))
		if dx >= ContactRangeX || dy >= ContactRangeY {
			continue
		}
		w.damage(e, ContactDamage, "contact")
		if w.policy.ContactDamagesPlayer {
			w.damage(w.player, ContactDamage, "contact")
		}
	}
}

// checkStacking resolves an enemy crashing into the one directly below it.
func (w *World) checkStacking() {
	for i := 0; i < len(w.enemies); i++ {
		for j := i + 1; j < len(w.enemies); j++ {
			upper, lower := w.enemies[i], w.enemies[j]
			if upper.X() != lower.X() {
				continue
			}
			if lower.Y() < upper.Y() {
				upper, lower = lower, upper
			}
			if lower.Y()-upper.Y() > StackRangeY || !lower.Alive() {
				continue
			}
			w.damage(upper, StackUpperDamage, "stacking")
			w.damage(lower, StackLowerDamage, "stacking")
		}
	}
}

// checkProjectiles tests every player projectile still in flight against
// every enemy.
func (w *World) checkProjectiles() {
	for _, p := range w.player.Projectiles() {
		if p.Hit() {
			continue
		}
		for _, e := range w.enemies {
			dx := p.X() - e.X()
			dy := p.Y() - e.Y()
			if dx <= -ProjectileBandX || dx >= ProjectileBandX || dy <= -ProjectileBandY || dy >= ProjectileBandY {
				continue
			}
			w.damage(e, ProjectileDamage, "projectile")
			p.NotifyHit()
			if w.policy.DedupProjectileHits {
				break
			}
		}
	}
}

func (w *World) damage(s *Ship, amount int, cause string) {
	wasAlive := s.Alive()
	s.NotifyHit(amount)
	if wasAlive && !s.Alive() {
		w.logger.Debug("ship destroyed", "player", s.IsPlayer(), "cause", cause, "x", s.X(), "y", s.Y())
	}
}
