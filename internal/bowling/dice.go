package bowling

import "github.com/louisbranch/bowling/internal/dice"

// Marker is the kind of marker standing in for a single pin.
type Marker int

const (
	MarkerBlank Marker = iota
	MarkerSpare
	MarkerStrike
)

func (m Marker) String() string {
	switch m {
	case MarkerBlank:
		return "Blank"
	case MarkerSpare:
		return "Spare"
	case MarkerStrike:
		return "Strike"
	default:
		return "Unknown"
	}
}

// rack is the marker layout for the ten pins, before shuffling.
var rack = [Pins]Marker{
	MarkerBlank, MarkerBlank, MarkerBlank, MarkerBlank,
	MarkerSpare, MarkerSpare, MarkerSpare,
	MarkerStrike, MarkerStrike, MarkerStrike,
}

// pinDie is the d6 rolled for every marker on both passes.
var pinDie = []dice.FaceSpec{
	{Face: dice.FaceBlank, Count: 2},
	{Face: dice.FacePinHit, Count: 3},
	{Face: dice.FaceSpecial, Count: 1},
}

// DiceGenerator simulates a frame by rolling one die per pin.
//
// The markers are shuffled and rolled one at a time. On the first pass a
// special face on a strike marker ends the frame as a strike; any other pin
// hit or special face knocks that pin down. The pins still standing are
// rolled again on the second pass, where a special face on a spare marker
// clears the rest of the rack.
type DiceGenerator struct {
	src dice.Source
	die dice.Die
}

// NewDiceGenerator creates a dice generator drawing from src.
func NewDiceGenerator(src dice.Source) *DiceGenerator {
	die, err := dice.NewDie(pinDie...)
	if err != nil {
		// This should be unreachable: the face specs are hardcoded and always valid.
		panic(err)
	}
	return &DiceGenerator{src: src, die: die}
}

// GenerateFrame rolls the two passes of a regular frame.
func (g *DiceGenerator) GenerateFrame() Frame {
	markers := rack
	g.src.Shuffle(len(markers), func(i, j int) {
		markers[i], markers[j] = markers[j], markers[i]
	})

	first := 0
	standing := make([]Marker, 0, len(markers))
	for _, marker := range markers {
		switch g.die.Roll(g.src) {
		case dice.FaceSpecial:
			if marker == MarkerStrike {
				return Strike()
			}
			first++
		case dice.FacePinHit:
			first++
		default:
			standing = append(standing, marker)
		}
	}
	if first == Pins {
		return Strike()
	}

	second := 0
	for _, marker := range standing {
		switch g.die.Roll(g.src) {
		case dice.FaceSpecial:
			if marker == MarkerSpare {
				return mustFrame(NewSpare(first))
			}
			second++
		case dice.FacePinHit:
			second++
		}
	}
	if first+second == Pins {
		return mustFrame(NewSpare(first))
	}
	return mustFrame(NewOpen(first, second))
}

// GenerateLastFrame composes the tenth frame from regular frame draws.
func (g *DiceGenerator) GenerateLastFrame() LastFrame {
	return ComposeLastFrame(g)
}
