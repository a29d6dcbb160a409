package invaders

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestNewPlayerAndEnemy(t *testing.T) {
	sprites := testSprites()

	p := NewPlayer(sprites)
	if !p.IsPlayer() || p.X() != core.PlayWidth/2 || p.Y() != core.PlayHeight-PlayerStartOffset || p.Angle() != 0 {
		t.Errorf("unexpected player: player=%v pos=(%v, %v) angle=%v", p.IsPlayer(), p.X(), p.Y(), p.Angle())
	}

	e := NewEnemy(128, sprites)
	if e.IsPlayer() || e.Y() != SpawnY || e.Angle() != math.Pi {
		t.Errorf("unexpected enemy: player=%v y=%v angle=%v", e.IsPlayer(), e.Y(), e.Angle())
	}
	if e.Health() != StartHealth || e.State() != StateNormal || e.Tier() != TierNormal {
		t.Errorf("enemy should start healthy, got health=%d state=%s tier=%s", e.Health(), e.State(), e.Tier())
	}
}

func TestEnemyDriftsOnAnimationTicks(t *testing.T) {
	e := NewShip(400, 100, math.Pi, false, testSprites().Enemy, testSprites().Projectile)

	e.Update(ShipFrameCadence / 2)
	if e.Y() != 100 || e.Frame() != 0 {
		t.Errorf("before cadence: y=%v frame=%d, expected 100 and 0", e.Y(), e.Frame())
	}

	e.Update(ShipFrameCadence / 2)
	if e.Y() != 100+EnemyDrift || e.Frame() != 1 {
		t.Errorf("after cadence: y=%v frame=%d, expected %v and 1", e.Y(), e.Frame(), 100+EnemyDrift)
	}
}

func TestPlayerDoesNotDrift(t *testing.T) {
	p := NewPlayer(testSprites())
	y := p.Y()

	for i := 0; i < 20; i++ {
		p.Update(ShipFrameCadence)
	}
	if p.Y() != y {
		t.Errorf("player y = %v, expected %v", p.Y(), y)
	}
	if p.Frame() != 0 {
		t.Errorf("Frame() = %d after 20 ticks of 10 frames, expected 0", p.Frame())
	}
}

func TestMoveIsUnclamped(t *testing.T) {
	p := NewPlayer(testSprites())

	for i := 0; i < 1000; i++ {
		p.Move(-PlayerSpeed)
	}
	if want := core.PlayWidth/2 - 1000*PlayerSpeed; p.X() != want {
		t.Errorf("x = %v, expected %v (no screen clamp)", p.X(), want)
	}
}

func TestShootUsesMuzzleOffset(t *testing.T) {
	sprites := testSprites()
	p := NewPlayer(sprites)
	e := NewShip(300, 200, math.Pi, false, sprites.Enemy, sprites.Projectile)

	pp := p.Shoot()
	ep := e.Shoot()

	if pp.X() != p.X()+PlayerMuzzle.X || pp.Y() != p.Y()+PlayerMuzzle.Y {
		t.Errorf("player projectile at (%v, %v), expected muzzle offset %v", pp.X(), pp.Y(), PlayerMuzzle)
	}
	if ep.X() != 300+EnemyMuzzle.X || ep.Y() != 200+EnemyMuzzle.Y {
		t.Errorf("enemy projectile at (%v, %v), expected muzzle offset %v", ep.X(), ep.Y(), EnemyMuzzle)
	}
	if len(p.Projectiles()) != 1 {
		t.Errorf("player owns %d projectiles, expected 1", len(p.Projectiles()))
	}
}

func TestShipPrunesProjectiles(t *testing.T) {
	p := NewPlayer(testSprites())
	spent := p.Shoot()
	spent.y = -1
	live := p.Shoot()

	p.Update(ProjectileFrameCadence)

	if len(p.Projectiles()) != 1 || p.Projectiles()[0] != live {
		t.Fatalf("expected only the live projectile to remain, got %d", len(p.Projectiles()))
	}
	if live.Y() != p.Y()+PlayerMuzzle.Y-ProjectileStep {
		t.Errorf("surviving projectile should be updated, y = %v", live.Y())
	}
}

func TestDamagedTierSwitch(t *testing.T) {
	e := NewShip(400, 100, math.Pi, false, testSprites().Enemy, testSprites().Projectile)
	for i := 0; i < 3; i++ {
		e.Update(ShipFrameCadence)
	}
	if e.Frame() != 3 {
		t.Fatalf("Frame() = %d, expected 3", e.Frame())
	}

	for i := 0; i < 4; i++ {
		e.NotifyHit(10)
	}
	if e.Tier() != TierNormal || e.Frame() != 3 {
		t.Errorf("at health 60: tier=%s frame=%d, expected normal and 3", e.Tier(), e.Frame())
	}

	e.NotifyHit(10)
	if e.Health() != 50 {
		t.Errorf("Health() = %d, expected 50", e.Health())
	}
	if e.Tier() != TierDamaged {
		t.Errorf("Tier() = %s, expected damaged", e.Tier())
	}
	if e.Frame() != 0 {
		t.Errorf("Frame() = %d, expected cursor reset to 0", e.Frame())
	}
	if !e.Alive() || e.ActiveFrames().Name() != SetEnemyDamaged {
		t.Errorf("alive=%v frames=%s, expected alive with damaged frames", e.Alive(), e.ActiveFrames().Name())
	}

	y := e.Y()
	e.Update(ShipFrameCadence)
	if e.Y() != y+EnemyDamagedDrift {
		t.Errorf("damaged drift: y = %v, expected %v", e.Y(), y+EnemyDamagedDrift)
	}
}

func TestDestructionSequenceOrder(t *testing.T) {
	sprites := testSprites()
	e := NewShip(400, 100, math.Pi, false, sprites.Enemy, sprites.Projectile)

	e.NotifyHit(60)
	e.NotifyHit(40)
	// The lethal hit enters DestroyStart at once; recoil and every later
	// state wait for the animation tick.
	if e.Health() != 0 || e.State() != StateDestroyStart {
		t.Fatalf("after lethal damage: health=%d state=%s", e.Health(), e.State())
	}

	x, y := e.X(), e.Y()
	e.Update(ShipFrameCadence / 2)
	if e.State() != StateDestroyStart || e.X() != x || e.Y() != y {
		t.Fatalf("before tick: state=%s pos=(%v, %v), expected DestroyStart at (%v, %v)", e.State(), e.X(), e.Y(), x, y)
	}
	e.Update(ShipFrameCadence / 2)
	if e.State() != StateDestroying {
		t.Fatalf("after tick: state=%s, expected Destroying", e.State())
	}

	seen := []DestroyState{StateNormal, StateDestroyStart, e.State()}
	for i := 0; i < 50 && e.State() != StateDestroyed; i++ {
		before := e.State()
		e.Update(ShipFrameCadence)
		after := e.State()
		if after-before > 1 {
			t.Fatalf("tick %d skipped from %s to %s", i, before, after)
		}
		if after < before {
			t.Fatalf("tick %d went backwards from %s to %s", i, before, after)
		}
		if after != before {
			seen = append(seen, after)
		}
	}

	want := []DestroyState{StateNormal, StateDestroyStart, StateDestroying, StateDestroyEnd, StateDestroyed}
	if len(seen) != len(want) {
		t.Fatalf("saw states %v, expected %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("state %d = %s, expected %s", i, seen[i], want[i])
		}
	}
	if !e.CanBeRemoved() {
		t.Error("destroyed ship should be removable")
	}
}

func TestDestructionTiming(t *testing.T) {
	sprites := testSprites()
	e := NewShip(400, 100, math.Pi, false, sprites.Enemy, sprites.Projectile)
	e.Destroy()

	// DestroyStart -> Destroying
	e.Update(ShipFrameCadence)
	if e.State() != StateDestroying || e.Frame() != 0 || e.ActiveFrames() != sprites.Enemy.Explosion {
		t.Fatalf("state=%s frame=%d, expected Destroying at explosion frame 0", e.State(), e.Frame())
	}

	// 9 explosion frames: 8 ticks to reach the last one.
	for i := 1; i <= 8; i++ {
		e.Update(ShipFrameCadence)
		if e.Frame() != i {
			t.Fatalf("tick %d: frame = %d", i, e.Frame())
		}
	}
	if e.State() != StateDestroyEnd {
		t.Fatalf("State() = %s at last explosion frame, expected DestroyEnd", e.State())
	}

	e.Update(ShipFrameCadence)
	if e.State() != StateDestroyed {
		t.Errorf("State() = %s, expected Destroyed one tick after DestroyEnd", e.State())
	}
}

func TestDestroyAppliesRecoilOnce(t *testing.T) {
	sprites := testSprites()
	e := NewShip(400, 100, math.Pi, false, sprites.Enemy, sprites.Projectile)
	e.Destroy()

	if e.X() != 400 || e.Y() != 100 {
		t.Fatal("recoil should wait for the next animation tick")
	}

	e.Update(ShipFrameCadence)
	wantX, wantY := 400+EnemyRecoil.X, 100+EnemyRecoil.Y
	if e.X() != wantX || e.Y() != wantY {
		t.Errorf("after recoil (%v, %v), expected (%v, %v)", e.X(), e.Y(), wantX, wantY)
	}

	for i := 0; i < 20; i++ {
		e.Update(ShipFrameCadence)
	}
	if e.X() != wantX || e.Y() != wantY {
		t.Errorf("ship moved after recoil: (%v, %v)", e.X(), e.Y())
	}

	p := NewPlayer(sprites)
	x := p.X()
	p.Destroy()
	p.Update(ShipFrameCadence)
	if p.X() != x+PlayerRecoil.X || p.Y() != core.PlayHeight-PlayerStartOffset {
		t.Errorf("player recoil: (%v, %v)", p.X(), p.Y())
	}
}

func TestDestroyKeepsHealth(t *testing.T) {
	e := NewEnemy(400, testSprites())
	e.Destroy()

	if e.Health() != StartHealth {
		t.Errorf("Health() = %d, direct destroy should not touch health", e.Health())
	}
	if e.State() != StateDestroyStart {
		t.Errorf("State() = %s, expected DestroyStart", e.State())
	}
}

func TestNotifyHitAfterDestroyedIsNoop(t *testing.T) {
	e := NewEnemy(400, testSprites())
	e.NotifyHit(150)
	if e.Health() != 0 {
		t.Errorf("Health() = %d, expected clamp at 0", e.Health())
	}
	for e.State() != StateDestroyed {
		e.Update(ShipFrameCadence)
	}

	e.NotifyHit(10)
	if e.Health() != 0 || e.State() != StateDestroyed {
		t.Errorf("after hit on destroyed ship: health=%d state=%s", e.Health(), e.State())
	}

	e.Destroy()
	if e.State() != StateDestroyed {
		t.Errorf("Destroy() on destroyed ship changed state to %s", e.State())
	}
}

func TestNotifyHitWhileDestroyingIsIgnored(t *testing.T) {
	e := NewEnemy(400, testSprites())
	e.Destroy()
	e.Update(ShipFrameCadence)

	e.NotifyHit(10)
	if e.Health() != StartHealth || e.State() != StateDestroying {
		t.Errorf("health=%d state=%s, expected hit to be ignored", e.Health(), e.State())
	}
}

func TestFrameCursorStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sprites := testSprites()

	for trial := 0; trial < 50; trial++ {
		e := NewShip(400, 0, math.Pi, false, sprites.Enemy, sprites.Projectile)
		if trial%2 == 0 {
			e = NewShip(400, 0, 0, true, sprites.Player, sprites.Projectile)
		}

		for step := 0; step < 300; step++ {
			switch rng.Intn(6) {
			case 0:
				e.NotifyHit(rng.Intn(40))
			case 1:
				if rng.Intn(20) == 0 {
					e.Destroy()
				}
			}
			e.Update(rng.Float64() * 0.15)

			if n := e.ActiveFrames().Len(); e.Frame() < 0 || e.Frame() >= n {
				t.Fatalf("trial %d step %d: frame %d outside [0, %d) in state %s tier %s",
					trial, step, e.Frame(), n, e.State(), e.Tier())
			}
		}
	}
}

func TestZeroDtIsIdempotent(t *testing.T) {
	sprites := testSprites()
	e := NewShip(400, 100, math.Pi, false, sprites.Enemy, sprites.Projectile)
	e.Update(ShipFrameCadence)
	e.Shoot()
	x, y, frame := e.X(), e.Y(), e.Frame()
	py := e.Projectiles()[0].Y()

	for i := 0; i < 1000; i++ {
		e.Update(0)
	}

	if e.X() != x || e.Y() != y || e.Frame() != frame {
		t.Errorf("ship changed under dt=0: (%v, %v) frame %d", e.X(), e.Y(), e.Frame())
	}
	if e.Projectiles()[0].Y() != py {
		t.Errorf("projectile changed under dt=0: y = %v", e.Projectiles()[0].Y())
	}
}

func TestCanBeRemovedBelowScreen(t *testing.T) {
	e := NewShip(400, core.PlayHeight, math.Pi, false, testSprites().Enemy, testSprites().Projectile)
	if e.CanBeRemoved() {
		t.Error("ship exactly at the bottom edge should not be removable")
	}
	e.Update(ShipFrameCadence)
	if !e.CanBeRemoved() {
		t.Error("ship below the bottom edge should be removable")
	}
}

func TestShipDraw(t *testing.T) {
	sprites := testSprites()
	e := NewShip(400, 100, math.Pi, false, sprites.Enemy, sprites.Projectile)
	e.Shoot()

	r := &recordingRenderer{}
	e.Draw(r)
	if len(r.calls) != 3 {
		t.Fatalf("got %d draw calls, expected hull + 2 bolts", len(r.calls))
	}
	if r.calls[0].frame != "enemy_000" || r.calls[0].rotation != math.Pi {
		t.Errorf("hull drawn with %v rotation %v", r.calls[0].frame, r.calls[0].rotation)
	}

	e.Destroy()
	for e.State() != StateDestroyed {
		e.Update(ShipFrameCadence)
	}
	r = &recordingRenderer{}
	e.Draw(r)
	if len(r.calls) != 0 {
		t.Errorf("destroyed ship drew %d frames, expected none", len(r.calls))
	}
}
