package config

import (
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if !cfg.ShowDiagram {
		t.Error("ShowDiagram should default to true")
	}
	if len(cfg.MoveScript) != 0 {
		t.Errorf("MoveScript = %v, want empty", cfg.MoveScript)
	}
}

func TestFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{
			name: "no flags",
			args: nil,
			want: &Config{ShowDiagram: true},
		},
		{
			name: "fen and moves",
			args: []string{"-fen", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", "-moves", "Kd3, Kd6"},
			want: &Config{
				StartFEN:    "8/8/4k3/8/8/4K3/8/8 w - - 0 1",
				MoveScript:  []string{"Kd3", "Kd6"},
				ShowDiagram: true,
			},
		},
		{
			name: "trailing comma ignored",
			args: []string{"-moves", "e4,e5,"},
			want: &Config{
				MoveScript:  []string{"e4", "e5"},
				ShowDiagram: true,
			},
		},
		{
			name: "diagram disabled",
			args: []string{"-diagram=false"},
			want: &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("chess-cli", flag.ContinueOnError)
			got, err := FromFlags(fs, tt.args)
			if err != nil {
				t.Fatalf("FromFlags() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromFlags() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromFlagsBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("chess-cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := FromFlags(fs, []string{"-no-such-flag"}); err == nil {
		t.Error("FromFlags() accepted an unknown flag")
	}
}
