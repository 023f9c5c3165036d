package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

func TestGenerateDefaultLength(t *testing.T) {
	pw, err := Policy{}.Generate()
	require.NoError(t, err)
	assert.Len(t, pw, DefaultLength)
}

func TestGenerateAlphanumericOnly(t *testing.T) {
	for _, length := range []int{1, 8, 12, 64, 256} {
		pw, err := Policy{Length: length}.Generate()
		require.NoError(t, err)
		assert.Len(t, pw, length)

		for _, r := range pw {
			assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r), "unexpected character %q in %q", r, pw)
			assert.NotContains(t, ambiguous, string(r))
		}
	}
}

func TestGenerateWithSymbols(t *testing.T) {
	policy := Policy{Length: 512, Symbols: true}
	pool := policy.Pool()

	pw, err := policy.Generate()
	require.NoError(t, err)
	assert.Len(t, pw, 512)

	for _, r := range pw {
		assert.True(t, strings.ContainsRune(pool, r), "character %q outside pool", r)
		assert.False(t, unicode.IsSpace(r), "whitespace produced")
		assert.NotContains(t, ambiguous, string(r))
	}
}

func TestPoolExcludesAmbiguousCharacters(t *testing.T) {
	for _, policy := range []Policy{{}, {Symbols: true}} {
		pool := policy.Pool()
		for _, r := range ambiguous {
			assert.NotContains(t, pool, string(r))
		}
		assert.NotContains(t, pool, " ")
	}

	plain := Policy{}.Pool()
	assert.NotContains(t, plain, "!")
	assert.Contains(t, Policy{Symbols: true}.Pool(), "!")
	// 26+26+10 minus i I 1 l o O 0.
	assert.Len(t, plain, 55)
}

func TestGenerateNegativeLength(t *testing.T) {
	_, err := Policy{Length: -1}.Generate()
	require.ErrorIs(t, err, kerrors.ErrGeneration)
}

func TestGenerateIsRandom(t *testing.T) {
	a, err := Policy{Length: 32}.Generate()
	require.NoError(t, err)
	b, err := Policy{Length: 32}.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
