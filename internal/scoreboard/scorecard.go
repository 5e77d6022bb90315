package scoreboard

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/bowling/internal/bowling"
)

// Scorecard is the structured form of a finished game.
type Scorecard struct {
	Frames []FrameCard `yaml:"frames"`
	Total  int         `yaml:"total"`
}

// FrameCard describes one frame of a scorecard.
type FrameCard struct {
	Number     int      `yaml:"frame"`
	Kind       string   `yaml:"kind"`
	Marks      []string `yaml:"marks,flow"`
	Rolls      []int    `yaml:"rolls,flow"`
	Score      int      `yaml:"score"`
	Cumulative int      `yaml:"cumulative"`
}

// NewScorecard builds the scorecard of a game.
func NewScorecard(game bowling.Game) Scorecard {
	scores := game.FrameScores()
	cumulative := game.CumulativeScores()

	cards := make([]FrameCard, 0, bowling.Frames)
	for i, f := range game.Frames() {
		cards = append(cards, FrameCard{
			Number:     i + 1,
			Kind:       f.Kind().String(),
			Marks:      f.Marks(),
			Rolls:      f.SubScores(),
			Score:      scores[i],
			Cumulative: cumulative[i],
		})
	}
	last := game.Last()
	cards = append(cards, FrameCard{
		Number:     bowling.Frames,
		Kind:       last.Kind().String(),
		Marks:      last.Marks(),
		Rolls:      last.SubScores(),
		Score:      scores[bowling.Frames-1],
		Cumulative: cumulative[bowling.Frames-1],
	})

	return Scorecard{Frames: cards, Total: game.Total()}
}

// EncodeYAML writes the scorecard of a game as YAML.
func EncodeYAML(w io.Writer, game bowling.Game) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewScorecard(game)); err != nil {
		return fmt.Errorf("encode scorecard: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close scorecard encoder: %w", err)
	}
	return nil
}
