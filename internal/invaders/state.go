package invaders

// DestroyState is the destruction lifecycle of a ship.
type DestroyState int

const (
	StateNormal DestroyState = iota
	StateDestroyStart
	StateDestroying
	StateDestroyEnd
	StateDestroyed
)

// String returns a human-readable name for the state.
func (s DestroyState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateDestroyStart:
		return "DestroyStart"
	case StateDestroying:
		return "Destroying"
	case StateDestroyEnd:
		return "DestroyEnd"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Tier selects which frame set a living ship shows.
type Tier int

const (
	TierNormal Tier = iota
	TierDamaged
	TierDead
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierDamaged:
		return "damaged"
	case TierDead:
		return "dead"
	default:
		return "unknown"
	}
}

// TierFor maps a health value onto its visual tier.
func TierFor(health int) Tier {
	switch {
	case health <= 0:
		return TierDead
	case health <= DamagedThreshold:
		return TierDamaged
	default:
		return TierNormal
	}
}
