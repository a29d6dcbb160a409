package invaders

import "fmt"

func testFrames(name string, n int) *FrameSet {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = fmt.Sprintf("%s_%03d", name, i)
	}
	return NewFrameSet(name, frames)
}

// testSprites uses different set sizes per tier so cursor bugs show up as
// out-of-range indices.
func testSprites() Sprites {
	return Sprites{
		Player: ShipSprites{
			Normal:    testFrames(SetPlayer, 10),
			Damaged:   testFrames(SetPlayerDamaged, 4),
			Explosion: testFrames(SetPlayerExplosion, 7),
		},
		Enemy: ShipSprites{
			Normal:    testFrames(SetEnemy, 10),
			Damaged:   testFrames(SetEnemyDamaged, 6),
			Explosion: testFrames(SetEnemyExplosion, 9),
		},
		Projectile: testFrames(SetProjectile, 5),
	}
}

type drawCall struct {
	frame    Frame
	x, y     float64
	rotation float64
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawFrame(f Frame, x, y, rotation float64) {
	r.calls = append(r.calls, drawCall{frame: f, x: x, y: y, rotation: rotation})
}
