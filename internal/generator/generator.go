// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/pass-vault/models"
)

//go:generate mockgen -source=generator.go -destination=../mock/generator_mock.go -package=mock

// Generator creates passwords.
type Generator interface {
	// Generate returns a password of exactly policy.Length characters.
	// Errors match ErrPolicy when the policy enables no class or asks for
	// fewer characters than enabled classes.
	Generate(policy models.PasswordPolicy) (string, error)
}

type generator struct {
	random io.Reader
}

// New returns a Generator backed by crypto/rand. It is safe for concurrent use.
func New() Generator {
	return newGenerator(rand.Reader)
}

func newGenerator(random io.Reader) *generator {
	return &generator{random: random}
}

// Validate reports why policy cannot be generated, or nil.
func Validate(policy models.PasswordPolicy) error {
	classes := policy.EnabledClasses()
	if classes == 0 {
		return fmt.Errorf("%w: no character type selected", ErrPolicy)
	}
	if policy.Length < classes {
		return fmt.Errorf("%w: length %d is shorter than the %d selected character types",
			ErrPolicy, policy.Length, classes)
	}
	return nil
}

func (g *generator) Generate(policy models.PasswordPolicy) (string, error) {
	if err := Validate(policy); err != nil {
		return "", err
	}

	pools := classPools(policy)
	combined := Pool(policy)

	// buffered per call so concurrent calls never share state
	src := &source{r: bufio.NewReaderSize(g.random, 256)}

	password := make([]byte, policy.Length)
	defer clear(password)

	// one guaranteed character per class, then fill from the combined pool
	for i, pool := range pools {
		idx, err := src.intn(len(pool))
		if err != nil {
			return "", err
		}
		password[i] = pool[idx]
	}
	for i := len(pools); i < len(password); i++ {
		idx, err := src.intn(len(combined))
		if err != nil {
			return "", err
		}
		password[i] = combined[idx]
	}

	if err := src.shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}
