package config

// RoundState is the lifecycle state of a single round.
type RoundState int

const (
	RoundInProgress RoundState = iota
	RoundLost
	RoundWon
)

func (s RoundState) String() string {
	switch s {
	case RoundInProgress:
		return "in_progress"
	case RoundLost:
		return "lost"
	case RoundWon:
		return "won"
	}
	return "unknown"
}

// Terminal reports whether no further frames are simulated in this state.
func (s RoundState) Terminal() bool {
	return s == RoundLost || s == RoundWon
}

// Side is the screen edge a legendary enemy enters from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)
