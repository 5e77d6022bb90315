// Package bowling parses scoreboard command flags and prints one random game.
package bowling

import (
	"context"
	"flag"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/bowling/internal/bowling"
	entrypoint "github.com/louisbranch/bowling/internal/platform/cmd"
	"github.com/louisbranch/bowling/internal/platform/otel"
	"github.com/louisbranch/bowling/internal/random"
	"github.com/louisbranch/bowling/internal/scoreboard"
)

// Config holds scoreboard command configuration.
type Config struct {
	ASCII     bool   `env:"ASCII"`
	Generator string `env:"GENERATOR" envDefault:"dice"`
	Seed      int64  `env:"SEED"`
	Format    string `env:"FORMAT" envDefault:"text"`
	Verbose   bool   `env:"VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.BoolVar(&cfg.ASCII, "ascii", cfg.ASCII, "Output ASCII-only text instead of box-drawing characters")
	fs.StringVar(&cfg.Generator, "generator", cfg.Generator, "Generator to use for the frames (dice, uniform)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format (text, yaml)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log the seed to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates one game and writes it to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	strategy, err := bowling.ParseStrategy(cfg.Generator)
	if err != nil {
		return err
	}
	format, err := scoreboard.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	charset := scoreboard.Box
	if cfg.ASCII {
		charset = scoreboard.ASCII
	}

	src, seed, err := random.NewSource(cfg.Seed)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("using seed %d", seed)
	}
	gen, err := bowling.NewGenerator(strategy, src)
	if err != nil {
		return err
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBowling, func(ctx context.Context) error {
		_, span := otel.Tracer("github.com/louisbranch/bowling").Start(ctx, "bowling.generate")
		game := bowling.Generate(gen)
		span.SetAttributes(
			attribute.String("bowling.strategy", string(strategy)),
			attribute.Int64("bowling.seed", seed),
			attribute.Int("bowling.total", game.Total()),
		)
		span.End()

		return scoreboard.Write(out, game, format, charset)
	})
}
