package swchess

// Standing says which side is ahead on material.
type Standing int

const (
	StandingEven Standing = iota
	StandingWhite
	StandingBlack
)

func (s Standing) String() string {
	switch s {
	case StandingWhite:
		return "WHITE"
	case StandingBlack:
		return "BLACK"
	default:
		return "NONE"
	}
}

// Status is the game state implied by the kings left on the board.
type Status int

const (
	// StatusNone covers king counts that have no classification, such as
	// no kings at all. Reports print no status line for it.
	StatusNone Status = iota
	StatusOngoing
	StatusWhiteWin
	StatusBlackWin
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ON GOING GAME"
	case StatusWhiteWin:
		return "WHITE WIN"
	case StatusBlackWin:
		return "BLACK WIN"
	default:
		return ""
	}
}

// Material is the weighted sum of one color's pieces.
func (c Counts) Material(color Color) int {
	score := 0
	for _, k := range Kinds() {
		score += Weight(k) * c.Get(color, k)
	}
	return score
}

func (c Counts) Standing() Standing {
	white, black := c.Material(White), c.Material(Black)
	switch {
	case white > black:
		return StandingWhite
	case black > white:
		return StandingBlack
	default:
		return StandingEven
	}
}

func (c Counts) Status() Status {
	white, black := c.Get(White, King), c.Get(Black, King)
	switch {
	case white == 1 && black == 1:
		return StatusOngoing
	case white == 0 && black == 1:
		return StatusBlackWin
	case white == 1 && black == 0:
		return StatusWhiteWin
	default:
		return StatusNone
	}
}
