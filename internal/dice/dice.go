// Package dice implements faced dice rolled against an injected entropy source.
package dice

import (
	"errors"
)

// Face is the symbol showing on top of a rolled die.
type Face int

const (
	FaceBlank Face = iota
	FacePinHit
	FaceSpecial
)

func (f Face) String() string {
	switch f {
	case FaceBlank:
		return "Blank"
	case FacePinHit:
		return "Pin hit"
	case FaceSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// ErrMissingFaces indicates a die was built without any faces.
var ErrMissingFaces = errors.New("at least one face must be provided")

// Source is the randomness provider for dice rolls.
//
// *rand.Rand satisfies Source. Implementations are not required to be safe
// for concurrent use, so a Source must not be shared between goroutines.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be positive.
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// Die is a fair die whose sides carry arbitrary faces.
type Die struct {
	faces []Face
}

// FaceSpec describes how many sides of a die show a face.
type FaceSpec struct {
	Face  Face
	Count int
}

// ErrInvalidFaceSpec indicates a face spec has a non-positive count.
var ErrInvalidFaceSpec = errors.New("face specs must have a positive count")

// NewDie builds a die from face specs, laying the sides out in spec order.
func NewDie(specs ...FaceSpec) (Die, error) {
	if len(specs) == 0 {
		return Die{}, ErrMissingFaces
	}
	faces := make([]Face, 0, len(specs))
	for _, spec := range specs {
		if spec.Count <= 0 {
			return Die{}, ErrInvalidFaceSpec
		}
		for i := 0; i < spec.Count; i++ {
			faces = append(faces, spec.Face)
		}
	}
	return Die{faces: faces}, nil
}

// Sides returns the number of sides on the die.
func (d Die) Sides() int {
	return len(d.faces)
}

// Roll rolls the die once and returns the face showing.
func (d Die) Roll(src Source) Face {
	return d.faces[rollDie(src, d.Sides())-1]
}

// rollDie rolls a die with the provided number of sides.
func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
