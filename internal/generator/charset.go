package generator

import (
	"strings"

	"github.com/MKhiriev/pass-vault/models"
)

// Character classes.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Numbers   = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// LookAlikes are removed from every enabled class when
	// ExcludeLookAlikes is set.
	LookAlikes = "il1Lo0O"
)

// classPools returns one pool per enabled class, in a fixed order, with
// look-alikes filtered out of each class on its own.
func classPools(policy models.PasswordPolicy) []string {
	pools := make([]string, 0, 4)

	add := func(enabled bool, class string) {
		if !enabled {
			return
		}
		if policy.ExcludeLookAlikes {
			class = withoutLookAlikes(class)
		}
		pools = append(pools, class)
	}

	add(policy.IncludeUppercase, Uppercase)
	add(policy.IncludeLowercase, Lowercase)
	add(policy.IncludeNumbers, Numbers)
	add(policy.IncludeSymbols, Symbols)

	return pools
}

func withoutLookAlikes(class string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(LookAlikes, r) {
			return -1
		}
		return r
	}, class)
}

// Pool returns every character the policy may produce.
func Pool(policy models.PasswordPolicy) string {
	return strings.Join(classPools(policy), "")
}
