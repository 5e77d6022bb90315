package bowling

// Frames is the number of frames in a game, the last one included.
const Frames = 10

// Game is a complete game of nine regular frames and a tenth frame.
// A Game never changes once built.
type Game struct {
	frames [Frames - 1]Frame
	last   LastFrame
}

// NewGame assembles a game from fixed frames.
func NewGame(frames [Frames - 1]Frame, last LastFrame) Game {
	return Game{frames: frames, last: last}
}

// Generate pulls nine regular frames and then the tenth frame from g.
func Generate(g Generator) Game {
	var frames [Frames - 1]Frame
	for i := range frames {
		frames[i] = g.GenerateFrame()
	}
	return Game{frames: frames, last: g.GenerateLastFrame()}
}

// Frames returns frames one through nine.
func (g Game) Frames() [Frames - 1]Frame {
	return g.frames
}

// Last returns the tenth frame.
func (g Game) Last() LastFrame {
	return g.last
}

// rolls flattens the sub-scores of every frame in order and records the
// offset where each frame's rolls start.
func (g Game) rolls() ([]int, [Frames]int) {
	var offsets [Frames]int
	flat := make([]int, 0, 2*Frames+1)
	for i, f := range g.frames {
		offsets[i] = len(flat)
		flat = append(flat, f.SubScores()...)
	}
	offsets[Frames-1] = len(flat)
	flat = append(flat, g.last.SubScores()...)
	return flat, offsets
}

// FrameScores returns the score of each frame, bonuses included.
//
// A spare earns the next roll and a strike the next two, taken from the
// flattened rolls of the following frames. The tenth frame always holds at
// least two rolls, so the lookup stays in range.
func (g Game) FrameScores() [Frames]int {
	flat, offsets := g.rolls()

	var scores [Frames]int
	for i, f := range g.frames {
		at := offsets[i]
		switch f.Kind() {
		case KindStrike:
			scores[i] = Pins + flat[at+1] + flat[at+2]
		case KindSpare:
			scores[i] = Pins + flat[at+2]
		default:
			scores[i] = f.Score()
		}
	}
	scores[Frames-1] = g.last.Score()
	return scores
}

// CumulativeScores returns the running total through each frame.
func (g Game) CumulativeScores() [Frames]int {
	scores := g.FrameScores()
	for i := 1; i < len(scores); i++ {
		scores[i] += scores[i-1]
	}
	return scores
}

// Total returns the final score of the game.
func (g Game) Total() int {
	return g.CumulativeScores()[Frames-1]
}
