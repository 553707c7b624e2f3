package core

// Cue is a fire-and-forget audio event raised by a game during a tick.
// The platform forwards cues to whatever sound backend is available;
// games never wait on playback.
type Cue int

const (
	CueNone Cue = iota
	CueCoin
	CuePowerUp
	CueSpeedBoost
	CueChest
	CueStageUp
	CueHazardBreak
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "None"
	case CueCoin:
		return "Coin"
	case CuePowerUp:
		return "PowerUp"
	case CueSpeedBoost:
		return "SpeedBoost"
	case CueChest:
		return "Chest"
	case CueStageUp:
		return "StageUp"
	case CueHazardBreak:
		return "HazardBreak"
	case CueGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CueSink receives audio cues. Implementations must not block.
type CueSink interface {
	Play(c Cue)
}
