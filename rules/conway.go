package rules

// Transition names the outcome of applying the rules to a single cell.
type Transition uint8

const (
	StaysDead Transition = iota
	Underpopulation
	Overcrowding
	Survival
	Reproduction
)

var transitionNames = [...]string{
	StaysDead:       "stays dead",
	Underpopulation: "underpopulation",
	Overcrowding:    "overcrowding",
	Survival:        "survival",
	Reproduction:    "reproduction",
}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// Alive reports whether a cell is alive after the transition.
func (t Transition) Alive() bool {
	return t == Survival || t == Reproduction
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Classify returns which rule decides the next state of a cell
func Classify(neighbors int, alive bool) Transition {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors > 3:
		return Overcrowding
	case alive:
		return Survival
	case neighbors == 3:
		return Reproduction
	default:
		return StaysDead
	}
}
