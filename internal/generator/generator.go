package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

// DefaultLength is used when a Policy leaves Length unset.
const DefaultLength = 12

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// ambiguous characters are never emitted.
	ambiguous = "iI1loO0\"'`|"
)

// Policy configures a generated password.
//
// Letters and digits are always in the pool; symbols only when Symbols is set.
// Ambiguous characters and whitespace are never produced. Generation is not
// strict: a password may, by chance, contain no character of some class.
type Policy struct {
	// Length of the password. Zero means DefaultLength.
	Length int

	// Symbols adds punctuation to the pool.
	Symbols bool
}

// Pool returns the characters the policy draws from.
func (p Policy) Pool() string {
	classes := lowercase + uppercase + digits
	if p.Symbols {
		classes += symbols
	}

	var b strings.Builder
	for _, r := range classes {
		if !strings.ContainsRune(ambiguous, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Generate returns a random password drawn uniformly from the policy's pool.
func (p Policy) Generate() (string, error) {
	length := p.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 {
		return "", fmt.Errorf("length %d: %w", length, kerrors.ErrGeneration)
	}

	pool := p.Pool()
	if pool == "" {
		return "", fmt.Errorf("empty character pool: %w", kerrors.ErrGeneration)
	}

	size := big.NewInt(int64(len(pool)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		out[i] = pool[n.Int64()]
	}
	return string(out), nil
}
