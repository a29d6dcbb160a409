package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Animation cadences in seconds.
const (
	ShipFrameCadence       = 0.1
	ProjectileFrameCadence = 0.01
)

// Ship tuning.
const (
	StartHealth       = 100
	DamagedThreshold  = 50    // health at or below this shows damaged frames
	PlayerSpeed       = 5.0   // per frame while a move key is held
	EnemyDrift        = 2.0   // per animation tick, normal tier
	EnemyDamagedDrift = 1.0   // per animation tick, damaged tier
	PlayerStartOffset = 180.0 // distance of the player from the bottom edge
)

// Recoil applied once when a destruction sequence starts.
var (
	PlayerRecoil = core.Vec{X: -20.4, Y: 0}
	EnemyRecoil  = core.Vec{X: -26.0, Y: 45.0}
)

// Muzzle offsets relative to the ship origin.
var (
	PlayerMuzzle = core.Vec{X: -3, Y: 20}
	EnemyMuzzle  = core.Vec{X: 3, Y: 20}
)

// Projectile tuning.
const (
	ProjectileStep  = 5.0     // upward travel per cadence tick
	InFlightFrame   = 1       // frame 0 of the projectile set is not used in flight
	ProjectileParkY = -1000.0 // where a spent projectile is moved to be pruned
	TwinBoltGap     = 54.0    // horizontal distance between the two bolts
)

// Spawning.
const (
	SpawnInterval = 2.0
	SpawnY        = -150.0
)

// SpawnPattern is the cyclic list of enemy spawn columns as fractions of
// the play width.
var SpawnPattern = [...]float64{
	0.1, 0.7, 0.9, 0.5, 0.3, 0.8, 0.2, 0.6, 0.4,
	0.9, 0.5, 0.3, 0.1, 0.7, 0.2, 0.6, 0.4, 0.8,
}

// Collision geometry. Values are tied to the sprite dimensions.
var (
	PlayerContactAnchor = core.Vec{X: 36, Y: 55}
	EnemyContactAnchor  = core.Vec{X: 30, Y: 90}
)

const (
	ContactRangeX = 60.0
	ContactRangeY = 90.0
	ContactDamage = 100

	StackRangeY      = 80.0
	StackUpperDamage = 50
	StackLowerDamage = 100

	ProjectileBandX  = 32.0
	ProjectileBandY  = 150.0
	ProjectileDamage = 10
)
