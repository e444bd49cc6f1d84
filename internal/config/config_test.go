package config

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			args: nil,
			want: Config{Length: 8, Count: 1},
		},
		{
			name: "long flags",
			args: []string{"--length", "5", "--count", "3", "--no-numerical", "--punctuation"},
			want: Config{Length: 5, Count: 3, NoNumerical: true, Punctuation: true},
		},
		{
			name: "short flags",
			args: []string{"-l", "12", "-c", "2", "-n", "-p"},
			want: Config{Length: 12, Count: 2, NoNumerical: true, Punctuation: true},
		},
		{
			name: "equals form",
			args: []string{"--length=20", "-c=4"},
			want: Config{Length: 20, Count: 4},
		},
		{
			name: "extensions",
			args: []string{"-e", "--hash", "-v"},
			want: Config{Length: 8, Count: 1, EachClass: true, Hash: true, Verbose: true},
		},
		{
			name: "zero length and count",
			args: []string{"-l", "0", "-c", "0"},
			want: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Parse("passgen", tt.args, &out)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("Parse() wrote unexpected output: %q", out.String())
			}
		})
	}
}

func TestParseUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "non-integer length", args: []string{"--length", "abc"}},
		{name: "non-integer count", args: []string{"-c", "1.5"}},
		{name: "negative length", args: []string{"-l", "-3"}},
		{name: "negative count", args: []string{"--count", "-1"}},
		{name: "unknown flag", args: []string{"--symbols"}},
		{name: "positional argument", args: []string{"16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Parse("passgen", tt.args, &out)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("Parse() error = %v, want %v", err, ErrUsage)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse("passgen", []string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse() error = %v, want %v", err, flag.ErrHelp)
	}
	if !bytes.Contains(out.Bytes(), []byte("no-numerical")) {
		t.Errorf("help output missing flag list: %q", out.String())
	}
}

func TestRequest(t *testing.T) {
	cfg := Config{Length: 10, Count: 2, NoNumerical: true, Punctuation: true, EachClass: true, Hash: true}
	req := cfg.Request()
	if req.Length != 10 || req.Count != 2 || !req.NoNumerical || !req.Punctuation || !req.EachClass || !req.Hash {
		t.Errorf("Request() = %+v, fields not carried over from %+v", req, cfg)
	}
}

func TestLogLevel(t *testing.T) {
	if got := (Config{}).LogLevel(); got != slog.LevelInfo {
		t.Errorf("LogLevel() = %v, want %v", got, slog.LevelInfo)
	}
	if got := (Config{Verbose: true}).LogLevel(); got != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want %v", got, slog.LevelDebug)
	}
}
