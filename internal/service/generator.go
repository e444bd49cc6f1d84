package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

var ErrNegativeCount = errors.New("password count must not be negative")

// GeneratorService handles batch password generation.
type GeneratorService struct {
	gen  *crypto.Generator
	hash func(string) (string, error)
}

// NewGeneratorService creates a GeneratorService backed by crypto/rand and
// the default Argon2id parameters.
func NewGeneratorService() *GeneratorService {
	return NewGeneratorServiceWith(crypto.NewGenerator(nil), crypto.HashPassword)
}

// NewGeneratorServiceWith creates a GeneratorService from an explicit
// generator and hash function.
func NewGeneratorServiceWith(gen *crypto.Generator, hash func(string) (string, error)) *GeneratorService {
	return &GeneratorService{gen: gen, hash: hash}
}

// Generate produces req.Count passwords in order.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Length < 0 {
		return model.GenerateResponse{}, crypto.ErrNegativeLength
	}
	if req.Count < 0 {
		return model.GenerateResponse{}, ErrNegativeCount
	}

	opts := crypto.GeneratorOptions{
		Length:      req.Length,
		NoNumerical: req.NoNumerical,
		Punctuation: req.Punctuation,
		Policy:      crypto.PolicyUniform,
	}
	if req.EachClass {
		opts.Policy = crypto.PolicyEachClass
	}

	slog.Debug("generating passwords",
		"count", req.Count,
		"length", opts.Length,
		"pool_size", len(opts.Pool()),
		"policy", opts.Policy.String(),
		"hash", req.Hash,
	)

	passwords := make([]model.Password, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		value, err := s.gen.Generate(opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}

		p := model.Password{Value: value}
		if req.Hash {
			p.Hash, err = s.hash(value)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password %d: %w", i+1, err)
			}
		}
		passwords = append(passwords, p)
	}

	return model.GenerateResponse{Passwords: passwords}, nil
}
