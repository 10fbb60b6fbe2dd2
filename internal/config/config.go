// Package config provides the settings for the chess-cli front end.
package config

import (
	"flag"
	"strings"
)

// Config holds the resolved command-line settings.
type Config struct {
	// StartFEN is the position to start from; empty means the
	// standard starting position.
	StartFEN string

	// MoveScript lists moves to play before reading interactive
	// input.
	MoveScript []string

	// ShowDiagram controls printing the board after every move.
	ShowDiagram bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{ShowDiagram: true}
}

// FromFlags registers the chess-cli flags on fs, parses args, and
// returns the resulting Config.
func FromFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()

	fs.StringVar(&cfg.StartFEN, "fen", "",
		"FEN position to start from instead of the standard start")
	script := fs.String("moves", "",
		"comma-separated moves to play before reading input")
	fs.BoolVar(&cfg.ShowDiagram, "diagram", cfg.ShowDiagram,
		"print the board after every move")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.MoveScript = splitScript(*script)
	return cfg, nil
}

// splitScript splits a comma-separated move list, dropping empty
// entries so trailing commas are harmless.
func splitScript(script string) []string {
	var moves []string
	for _, text := range strings.Split(script, ",") {
		if text = strings.TrimSpace(text); text != "" {
			moves = append(moves, text)
		}
	}
	return moves
}
