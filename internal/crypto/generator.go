package crypto

import (
	"errors"
	"fmt"
)

const (
	letterChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars       = "0123456789"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	DefaultLength = 8
)

var (
	ErrNegativeLength     = errors.New("password length must not be negative")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of enabled character classes")
)

// Policy decides how draws are spread over the enabled character classes.
type Policy int

const (
	// PolicyUniform draws every character independently from the whole pool.
	// A requested class may end up absent from the result.
	PolicyUniform Policy = iota
	// PolicyEachClass guarantees at least one character from every enabled
	// class, then fills the rest from the whole pool and shuffles.
	PolicyEachClass
)

func (p Policy) String() string {
	switch p {
	case PolicyUniform:
		return "uniform"
	case PolicyEachClass:
		return "each-class"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length      int
	NoNumerical bool
	Punctuation bool
	Policy      Policy
}

// DefaultOptions returns 8 characters drawn uniformly from letters and digits.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{Length: DefaultLength}
}

// classes returns the enabled character classes. Letters are always first.
func (o GeneratorOptions) classes() []string {
	sets := []string{letterChars}
	if !o.NoNumerical {
		sets = append(sets, digitChars)
	}
	if o.Punctuation {
		sets = append(sets, punctuationChars)
	}
	return sets
}

// Pool returns every character eligible for sampling under o.
func (o GeneratorOptions) Pool() string {
	var pool string
	for _, set := range o.classes() {
		pool += set
	}
	return pool
}

// Generator builds passwords from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator drawing from src. A nil src selects
// CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource()
	}
	return &Generator{src: src}
}

// Generate creates a random password based on the given options.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < 0 {
		return "", ErrNegativeLength
	}
	if opts.Length == 0 {
		return "", nil
	}

	pool := opts.Pool()
	result := make([]byte, opts.Length)
	filled := 0

	if opts.Policy == PolicyEachClass {
		sets := opts.classes()
		if opts.Length < len(sets) {
			return "", ErrLengthInsufficient
		}
		for _, charset := range sets {
			ch, err := g.randChar(charset)
			if err != nil {
				return "", err
			}
			result[filled] = ch
			filled++
		}
	}

	for i := filled; i < opts.Length; i++ {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// The guaranteed characters sit at the front until shuffled.
	if filled > 0 {
		if err := g.shuffle(result); err != nil {
			return "", err
		}
	}

	return string(result), nil
}

// Generate creates a password of the given length from letters, digits unless
// excludeDigits is set, and punctuation if includePunctuation is set.
func Generate(length int, excludeDigits, includePunctuation bool) (string, error) {
	return NewGenerator(nil).Generate(GeneratorOptions{
		Length:      length,
		NoNumerical: excludeDigits,
		Punctuation: includePunctuation,
	})
}

// randChar picks a random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.src.IntN(len(charset))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return fmt.Errorf("reading random source: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
