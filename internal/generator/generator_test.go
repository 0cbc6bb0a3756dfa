package generator

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func allClasses(length int) models.PasswordPolicy {
	return models.PasswordPolicy{
		Length:           length,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

func containsAny(s, chars string) bool {
	return strings.ContainsAny(s, chars)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

// ── policy enforcement ────────────────────────────────────────────────────────

func TestGenerate_PolicyEnforcement(t *testing.T) {
	gen := New()

	tests := []struct {
		name   string
		policy models.PasswordPolicy
	}{
		{name: "all classes", policy: allClasses(16)},
		{name: "upper only", policy: models.PasswordPolicy{Length: 8, IncludeUppercase: true}},
		{name: "lower only", policy: models.PasswordPolicy{Length: 8, IncludeLowercase: true}},
		{name: "numbers only", policy: models.PasswordPolicy{Length: 6, IncludeNumbers: true}},
		{name: "symbols only", policy: models.PasswordPolicy{Length: 10, IncludeSymbols: true}},
		{name: "upper and numbers", policy: models.PasswordPolicy{Length: 12, IncludeUppercase: true, IncludeNumbers: true}},
		{name: "lower and symbols excluding look-alikes", policy: models.PasswordPolicy{Length: 20, IncludeLowercase: true, IncludeSymbols: true, ExcludeLookAlikes: true}},
		{name: "length equals class count", policy: allClasses(4)},
		{name: "long", policy: allClasses(128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes := []struct {
				enabled bool
				chars   string
			}{
				{tt.policy.IncludeUppercase, Uppercase},
				{tt.policy.IncludeLowercase, Lowercase},
				{tt.policy.IncludeNumbers, Numbers},
				{tt.policy.IncludeSymbols, Symbols},
			}

			for i := 0; i < 200; i++ {
				password, err := gen.Generate(tt.policy)
				require.NoError(t, err)
				require.Len(t, password, tt.policy.Length)

				for _, c := range classes {
					if c.enabled {
						assert.True(t, containsAny(password, c.chars), "missing class %q in %q", c.chars, password)
					} else {
						assert.False(t, containsAny(password, c.chars), "disabled class %q present in %q", c.chars, password)
					}
				}
			}
		})
	}
}

func TestGenerate_ExcludesLookAlikes(t *testing.T) {
	gen := New()
	policy := allClasses(64)
	policy.ExcludeLookAlikes = true

	for i := 0; i < 500; i++ {
		password, err := gen.Generate(policy)
		require.NoError(t, err)
		assert.False(t, containsAny(password, "il1LoO0"), "look-alike in %q", password)
	}
}

func TestGenerate_ConcreteScenario(t *testing.T) {
	gen := New()
	policy := models.PasswordPolicy{
		Length:            12,
		IncludeUppercase:  true,
		IncludeLowercase:  true,
		IncludeNumbers:    true,
		IncludeSymbols:    false,
		ExcludeLookAlikes: true,
	}
	allowed := regexp.MustCompile(`^[A-KM-NP-Za-hj-kmnp-z2-9]+$`)

	for i := 0; i < 1000; i++ {
		password, err := gen.Generate(policy)
		require.NoError(t, err)

		assert.Len(t, password, 12)
		assert.Regexp(t, allowed, password)
		assert.Regexp(t, `[A-Z]`, password)
		assert.Regexp(t, `[a-z]`, password)
		assert.Regexp(t, `[0-9]`, password)
	}
}

// ── policy errors ─────────────────────────────────────────────────────────────

func TestGenerate_InvalidPolicy(t *testing.T) {
	gen := New()

	tests := []struct {
		name    string
		policy  models.PasswordPolicy
		message string
	}{
		{name: "no class", policy: models.PasswordPolicy{Length: 16}, message: "no character type selected"},
		{name: "no class with exclusions", policy: models.PasswordPolicy{Length: 16, ExcludeLookAlikes: true}, message: "no character type selected"},
		{name: "shorter than class count", policy: allClasses(3), message: "shorter than"},
		{name: "zero length", policy: models.PasswordPolicy{IncludeLowercase: true}, message: "shorter than"},
		{name: "negative length", policy: models.PasswordPolicy{Length: -5, IncludeLowercase: true}, message: "shorter than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := gen.Generate(tt.policy)

			assert.Empty(t, password)
			require.ErrorIs(t, err, ErrPolicy)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	password, err := newGenerator(failingReader{}).Generate(allClasses(16))

	assert.Empty(t, password)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPolicy)
}

// ── pools ─────────────────────────────────────────────────────────────────────

func TestPool_FiltersPerClass(t *testing.T) {
	policy := allClasses(16)
	policy.ExcludeLookAlikes = true

	pool := Pool(policy)

	assert.Equal(t, "ABCDEFGHIJKMNPQRSTUVWXYZ"+"abcdefghjkmnpqrstuvwxyz"+"23456789"+Symbols, pool)
	assert.Contains(t, pool, "I", "uppercase I is not a look-alike")
}

func TestPool_DisabledClassesContributeNothing(t *testing.T) {
	policy := models.PasswordPolicy{Length: 8, IncludeNumbers: true, ExcludeLookAlikes: true}

	assert.Equal(t, "23456789", Pool(policy))
}

func TestPool_NoExclusions(t *testing.T) {
	assert.Len(t, Pool(allClasses(16)), 26+26+10+len(Symbols))
}

// ── distribution ──────────────────────────────────────────────────────────────

// TestGenerate_Distribution compares character frequencies over 100k
// passwords with the frequencies the algorithm should yield: one guaranteed
// pick per class plus uniform fills from the combined pool.
func TestGenerate_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("distribution test is slow")
	}

	const (
		samples = 100_000
		length  = 16
	)
	gen := New()
	policy := allClasses(length)
	pools := classPools(policy)
	combined := Pool(policy)
	fills := float64(length - len(pools))

	counts := make(map[byte]int, len(combined))
	digitsAt := make([]int, length)
	for i := 0; i < samples; i++ {
		password, err := gen.Generate(policy)
		require.NoError(t, err)
		for pos := 0; pos < length; pos++ {
			counts[password[pos]]++
			if strings.IndexByte(Numbers, password[pos]) >= 0 {
				digitsAt[pos]++
			}
		}
	}

	var chi2 float64
	for _, pool := range pools {
		for j := 0; j < len(pool); j++ {
			expected := samples * (1/float64(len(pool)) + fills/float64(len(combined)))
			diff := float64(counts[pool[j]]) - expected
			chi2 += diff * diff / expected
		}
	}

	df := float64(len(combined) - 1)
	// far tail of chi-square(df); a biased generator overshoots by orders of magnitude
	limit := df + 5*math.Sqrt(2*df)
	assert.Less(t, chi2, limit, "chi-square %.1f over %d characters", chi2, len(combined))

	// the shuffle must leave no position favouring the guaranteed picks
	wantDigitShare := (1 + fills*float64(len(Numbers))/float64(len(combined))) / length
	for pos, n := range digitsAt {
		share := float64(n) / samples
		assert.InDelta(t, wantDigitShare, share, 0.01, "digit share at position %d", pos)
	}
}

// ── concurrency ───────────────────────────────────────────────────────────────

func TestGenerate_ConcurrentUse(t *testing.T) {
	gen := New()
	policy := allClasses(24)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			password, err := gen.Generate(policy)
			assert.NoError(t, err)
			results[i] = password
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		assert.Len(t, r, 24)
		seen[r] = struct{}{}
	}
	assert.Len(t, seen, len(results))
}
