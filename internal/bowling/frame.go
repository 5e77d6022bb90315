// Package bowling models a ten-pin bowling game: frames, random frame
// generation strategies, and scoring with strike and spare bonuses.
package bowling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Pins is the number of pins standing at the start of a rack.
const Pins = 10

const (
	strikeMark = "X"
	spareMark  = "/"
	zeroMark   = "-"
	emptyMark  = " "

	boxSeparator   = "│"
	asciiSeparator = "|"
)

// ErrInvalidPins indicates a pin count that cannot occur in the requested frame.
var ErrInvalidPins = errors.New("invalid pin count for frame")

// Kind identifies which variant a regular frame holds.
type Kind int

const (
	KindOpen Kind = iota
	KindSpare
	KindStrike
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "Open"
	case KindSpare:
		return "Spare"
	case KindStrike:
		return "Strike"
	default:
		return "Unknown"
	}
}

// Frame is one of the first nine frames of a game.
//
// Frames can only be built through Strike, NewSpare and NewOpen, so every
// Frame value satisfies the pin constraints of its kind. The zero value is
// an open frame with two gutter balls.
type Frame struct {
	kind   Kind
	first  int
	second int
}

// Strike returns a frame where the first roll cleared every pin.
func Strike() Frame {
	return Frame{kind: KindStrike}
}

// NewSpare returns a frame whose second roll cleared the pins left by first.
func NewSpare(first int) (Frame, error) {
	if !inRange(first, 0, Pins-1) {
		return Frame{}, fmt.Errorf("spare first=%d: %w", first, ErrInvalidPins)
	}
	return Frame{kind: KindSpare, first: first}, nil
}

// NewOpen returns a frame that left pins standing after both rolls.
func NewOpen(first, second int) (Frame, error) {
	if !inRange(first, 0, Pins) || !inRange(second, 0, Pins) || first+second >= Pins {
		return Frame{}, fmt.Errorf("open first=%d second=%d: %w", first, second, ErrInvalidPins)
	}
	return Frame{kind: KindOpen, first: first, second: second}, nil
}

// Kind reports the frame variant.
func (f Frame) Kind() Kind { return f.kind }

// First returns the pins knocked down by the first roll.
func (f Frame) First() int {
	if f.kind == KindStrike {
		return Pins
	}
	return f.first
}

// Second returns the pins knocked down by the second roll, zero for a strike.
func (f Frame) Second() int {
	switch f.kind {
	case KindSpare:
		return Pins - f.first
	case KindOpen:
		return f.second
	default:
		return 0
	}
}

// SubScores returns the pins knocked down by each roll of the frame.
func (f Frame) SubScores() []int {
	switch f.kind {
	case KindStrike:
		return []int{Pins}
	case KindSpare:
		return []int{f.first, Pins - f.first}
	default:
		return []int{f.first, f.second}
	}
}

// Score returns the frame's own pins, without any bonus.
func (f Frame) Score() int {
	return sum(f.SubScores())
}

// Marks returns the two scoreboard cells of the frame.
func (f Frame) Marks() []string {
	switch f.kind {
	case KindStrike:
		return []string{strikeMark, emptyMark}
	case KindSpare:
		return []string{pinMark(f.first), spareMark}
	default:
		return []string{pinMark(f.first), pinMark(f.second)}
	}
}

// ANSIString renders the frame cells with box-drawing separators.
func (f Frame) ANSIString() string {
	return joinMarks(f.Marks(), boxSeparator)
}

// ASCIIString renders the frame cells with plain ASCII separators.
func (f Frame) ASCIIString() string {
	return joinMarks(f.Marks(), asciiSeparator)
}

func (f Frame) String() string {
	switch f.kind {
	case KindStrike:
		return "Strike"
	case KindSpare:
		return fmt.Sprintf("Spare{first: %d}", f.first)
	default:
		return fmt.Sprintf("Open{first: %d, second: %d}", f.first, f.second)
	}
}

// LastKind identifies which variant the tenth frame holds.
type LastKind int

const (
	LastKindOpen LastKind = iota
	LastKindSpareOpen
	LastKindSpareStrike
	LastKindStrikeOpen
	LastKindStrikeSpare
	LastKindDoubleStrikeOpen
	LastKindTripleStrike
)

func (k LastKind) String() string {
	switch k {
	case LastKindOpen:
		return "Open"
	case LastKindSpareOpen:
		return "SpareOpen"
	case LastKindSpareStrike:
		return "SpareStrike"
	case LastKindStrikeOpen:
		return "StrikeOpen"
	case LastKindStrikeSpare:
		return "StrikeSpare"
	case LastKindDoubleStrikeOpen:
		return "DoubleStrikeOpen"
	case LastKindTripleStrike:
		return "TripleStrike"
	default:
		return "Unknown"
	}
}

// LastFrame is the tenth frame, which grants up to three rolls.
//
// Only the fields a kind names are set; the rest are implied by the kind.
// The zero value is an open frame with two gutter balls.
type LastFrame struct {
	kind   LastKind
	first  int
	second int
	third  int
}

// TripleStrike returns a tenth frame of three strikes.
func TripleStrike() LastFrame {
	return LastFrame{kind: LastKindTripleStrike}
}

// NewDoubleStrikeOpen returns two strikes followed by a non-strike third roll.
func NewDoubleStrikeOpen(third int) (LastFrame, error) {
	if !inRange(third, 0, Pins-1) {
		return LastFrame{}, fmt.Errorf("double strike open third=%d: %w", third, ErrInvalidPins)
	}
	return LastFrame{kind: LastKindDoubleStrikeOpen, third: third}, nil
}

// NewStrikeSpare returns a strike followed by a spare.
func NewStrikeSpare(second int) (LastFrame, error) {
	if !inRange(second, 0, Pins-1) {
		return LastFrame{}, fmt.Errorf("strike spare second=%d: %w", second, ErrInvalidPins)
	}
	return LastFrame{kind: LastKindStrikeSpare, second: second}, nil
}

// NewStrikeOpen returns a strike followed by two rolls that leave pins standing.
func NewStrikeOpen(second, third int) (LastFrame, error) {
	if !inRange(second, 0, Pins) || !inRange(third, 0, Pins) || second+third >= Pins {
		return LastFrame{}, fmt.Errorf("strike open second=%d third=%d: %w", second, third, ErrInvalidPins)
	}
	return LastFrame{kind: LastKindStrikeOpen, second: second, third: third}, nil
}

// NewSpareStrike returns a spare followed by a strike on the fill ball.
func NewSpareStrike(first int) (LastFrame, error) {
	if !inRange(first, 0, Pins-1) {
		return LastFrame{}, fmt.Errorf("spare strike first=%d: %w", first, ErrInvalidPins)
	}
	return LastFrame{kind: LastKindSpareStrike, first: first}, nil
}

// NewSpareOpen returns a spare followed by a fill ball on a fresh rack.
func NewSpareOpen(first, third int) (LastFrame, error) {
	if !inRange(first, 0, Pins-1) || !inRange(third, 0, Pins) {
		return LastFrame{}, fmt.Errorf("spare open first=%d third=%d: %w", first, third, ErrInvalidPins)
	}
	return LastFrame{kind: LastKindSpareOpen, first: first, third: third}, nil
}

// NewLastOpen returns a tenth frame that ends after two rolls.
func NewLastOpen(first, second int) (LastFrame, error) {
	if !inRange(first, 0, Pins) || !inRange(second, 0, Pins) || first+second >= Pins {
		return LastFrame{}, fmt.Errorf("last open first=%d second=%d: %w", first, second, ErrInvalidPins)
	}
	return LastFrame{kind: LastKindOpen, first: first, second: second}, nil
}

// Kind reports the tenth frame variant.
func (f LastFrame) Kind() LastKind { return f.kind }

// SubScores returns the pins knocked down by each of the two or three rolls.
func (f LastFrame) SubScores() []int {
	switch f.kind {
	case LastKindTripleStrike:
		return []int{Pins, Pins, Pins}
	case LastKindDoubleStrikeOpen:
		return []int{Pins, Pins, f.third}
	case LastKindStrikeSpare:
		return []int{Pins, f.second, Pins - f.second}
	case LastKindStrikeOpen:
		return []int{Pins, f.second, f.third}
	case LastKindSpareStrike:
		return []int{f.first, Pins - f.first, Pins}
	case LastKindSpareOpen:
		return []int{f.first, Pins - f.first, f.third}
	default:
		return []int{f.first, f.second}
	}
}

// Score returns the complete score of the tenth frame. Its fill balls are
// part of the frame, so no later rolls are needed.
func (f LastFrame) Score() int {
	return sum(f.SubScores())
}

// Marks returns the three scoreboard cells of the tenth frame.
func (f LastFrame) Marks() []string {
	switch f.kind {
	case LastKindTripleStrike:
		return []string{strikeMark, strikeMark, strikeMark}
	case LastKindDoubleStrikeOpen:
		return []string{strikeMark, strikeMark, pinMark(f.third)}
	case LastKindStrikeSpare:
		return []string{strikeMark, pinMark(f.second), spareMark}
	case LastKindStrikeOpen:
		return []string{strikeMark, pinMark(f.second), pinMark(f.third)}
	case LastKindSpareStrike:
		return []string{pinMark(f.first), spareMark, strikeMark}
	case LastKindSpareOpen:
		return []string{pinMark(f.first), spareMark, pinMark(f.third)}
	default:
		return []string{pinMark(f.first), pinMark(f.second), emptyMark}
	}
}

// ANSIString renders the frame cells with box-drawing separators.
func (f LastFrame) ANSIString() string {
	return joinMarks(f.Marks(), boxSeparator)
}

// ASCIIString renders the frame cells with plain ASCII separators.
func (f LastFrame) ASCIIString() string {
	return joinMarks(f.Marks(), asciiSeparator)
}

func (f LastFrame) String() string {
	rolls := make([]string, 0, 3)
	for _, pins := range f.SubScores() {
		rolls = append(rolls, strconv.Itoa(pins))
	}
	return f.kind.String() + "[" + strings.Join(rolls, " ") + "]"
}

// pinMark renders a roll that is neither a strike nor a spare. A full rack
// can only show up on a fill ball and is marked as a strike.
func pinMark(pins int) string {
	switch pins {
	case 0:
		return zeroMark
	case Pins:
		return strikeMark
	default:
		return strconv.Itoa(pins)
	}
}

// joinMarks writes each cell followed by a separator.
func joinMarks(marks []string, separator string) string {
	var b strings.Builder
	for _, mark := range marks {
		b.WriteString(mark)
		b.WriteString(separator)
	}
	return b.String()
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
