package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// ErrUsage marks invalid command-line arguments.
var ErrUsage = errors.New("usage error")

type Config struct {
	Length      int
	Count       int
	NoNumerical bool
	Punctuation bool
	EachClass   bool
	Hash        bool
	Verbose     bool
}

// Parse parses CLI arguments (without the program name). Usage and help text
// are written to output. It returns flag.ErrHelp when help was requested.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Length, "length", crypto.DefaultLength, "Length of password")
	fs.IntVar(&cfg.Length, "l", crypto.DefaultLength, "Length of password (shorthand)")

	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "Number of passwords to generate (shorthand)")

	fs.BoolVar(&cfg.NoNumerical, "no-numerical", false, "Generate password without numerical values 0-9")
	fs.BoolVar(&cfg.NoNumerical, "n", false, "Generate password without numerical values 0-9 (shorthand)")

	fs.BoolVar(&cfg.Punctuation, "punctuation", false, "Generate password with punctuation")
	fs.BoolVar(&cfg.Punctuation, "p", false, "Generate password with punctuation (shorthand)")

	fs.BoolVar(&cfg.EachClass, "each-class", false, "Include at least one character of every enabled class")
	fs.BoolVar(&cfg.EachClass, "e", false, "Include at least one character of every enabled class (shorthand)")

	fs.BoolVar(&cfg.Hash, "hash", false, "Print an Argon2id hash after each password, tab separated")

	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging on stderr")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging on stderr (shorthand)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects negative length or count.
func (c Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("%w: length must not be negative, got %d", ErrUsage, c.Length)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrUsage, c.Count)
	}
	return nil
}

// Request converts the config into a generation request.
func (c Config) Request() model.GenerateRequest {
	return model.GenerateRequest{
		Length:      c.Length,
		Count:       c.Count,
		NoNumerical: c.NoNumerical,
		Punctuation: c.Punctuation,
		EachClass:   c.EachClass,
		Hash:        c.Hash,
	}
}

// LogLevel returns Debug when verbose logging was requested.
func (c Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
