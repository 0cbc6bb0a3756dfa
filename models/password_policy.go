// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordPolicy describes what a generated password must look like.
//
// At least one Include* flag must be set. When ExcludeLookAlikes is set, the
// visually ambiguous characters are removed from every enabled class before
// any character is drawn, guaranteed picks included.
type PasswordPolicy struct {
	// Length is the exact number of characters to produce. It must be at
	// least the number of enabled classes.
	Length int `json:"length"`

	// IncludeUppercase enables A-Z.
	IncludeUppercase bool `json:"includeUppercase"`

	// IncludeLowercase enables a-z.
	IncludeLowercase bool `json:"includeLowercase"`

	// IncludeNumbers enables 0-9.
	IncludeNumbers bool `json:"includeNumbers"`

	// IncludeSymbols enables the punctuation set.
	IncludeSymbols bool `json:"includeSymbols"`

	// ExcludeLookAlikes drops i, l, o, L, O, 0 and 1.
	ExcludeLookAlikes bool `json:"excludeLookAlikes"`
}

// EnabledClasses returns how many character classes the policy turns on.
func (p PasswordPolicy) EnabledClasses() int {
	n := 0
	for _, on := range []bool{p.IncludeUppercase, p.IncludeLowercase, p.IncludeNumbers, p.IncludeSymbols} {
		if on {
			n++
		}
	}
	return n
}
