package invaders

// Projectile is a single shot owned by the ship that fired it. It travels
// upward until it leaves the play area or hits something, in which case it
// plays its hit animation in place and is then parked off-screen.
type Projectile struct {
	x, y   float64
	frames *FrameSet
	frame  int
	timer  AnimationTimer
	hit    bool
}

// NewProjectile creates an in-flight projectile at (x, y).
func NewProjectile(x, y float64, frames *FrameSet) *Projectile {
	return &Projectile{
		x:      x,
		y:      y,
		frames: frames,
		frame:  min(InFlightFrame, frames.Last()),
		timer:  NewAnimationTimer(ProjectileFrameCadence),
	}
}

// X returns the horizontal position.
func (p *Projectile) X() float64 { return p.x }

// Y returns the vertical position.
func (p *Projectile) Y() float64 { return p.y }

// Frame returns the current animation cursor.
func (p *Projectile) Frame() int { return p.frame }

// Hit reports whether the projectile has struck a target.
func (p *Projectile) Hit() bool { return p.hit }

// NotifyHit marks the projectile as having struck a target. Calling it again
// has no effect.
func (p *Projectile) NotifyHit() {
	p.hit = true
}

// Update advances travel or the hit animation by dt seconds.
func (p *Projectile) Update(dt float64) {
	if !p.timer.Tick(dt) {
		return
	}

	if !p.hit {
		p.y -= ProjectileStep
		return
	}

	last := p.frames.Last()
	if p.frame < last {
		p.frame++
	}
	if p.frame >= last {
		p.frame = last
		p.y = ProjectileParkY
	}
}

// CanBeRemoved reports whether the projectile has left the play area.
func (p *Projectile) CanBeRemoved() bool {
	return p.y < 0
}

// Draw renders the twin bolts.
func (p *Projectile) Draw(r Renderer) {
	f := p.frames.At(p.frame)
	r.DrawFrame(f, p.x, p.y, 0)
	r.DrawFrame(f, p.x+TwinBoltGap, p.y, 0)
}
