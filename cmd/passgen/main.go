package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("passgen", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "passgen: %v\n", err)
		return 2
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	genService := service.NewGeneratorService()
	resp, err := genService.Generate(cfg.Request())
	if err != nil {
		slog.Error("password generation failed", "error", err)
		return 1
	}

	for _, p := range resp.Passwords {
		if cfg.Hash {
			fmt.Fprintf(stdout, "%s\t%s\n", p.Value, p.Hash)
			continue
		}
		fmt.Fprintln(stdout, p.Value)
	}

	return 0
}
