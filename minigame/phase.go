package minigame

// PhaseKind names a stage of a round.
type PhaseKind uint8

const (
	PhaseNotStarted PhaseKind = iota // waiting for the first update
	PhaseIntro                       // physics frozen while the intro plays
	PhasePlaying                     // full simulation
	PhaseEnded                       // won or lost, resting before completion
)

var phaseNames = [...]string{"not-started", "intro", "playing", "ended"}

func (k PhaseKind) String() string {
	if int(k) < len(phaseNames) {
		return phaseNames[k]
	}
	return "unknown"
}

// Phase is the round's lifecycle state. Since is valid from Intro on and
// holds the round start; At and Won are valid in Ended.
type Phase struct {
	Kind  PhaseKind
	Since float64
	At    float64
	Won   bool
}

// IsIntro reports whether physics is frozen for the intro.
func (p Phase) IsIntro() bool { return p.Kind == PhaseIntro }

// IsEnded reports whether the round has been won or lost.
func (p Phase) IsEnded() bool { return p.Kind == PhaseEnded }

// Started reports whether the round has begun.
func (p Phase) Started() bool { return p.Kind != PhaseNotStarted }
