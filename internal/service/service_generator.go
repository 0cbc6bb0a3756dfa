// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/generator"
	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/models"
)

const (
	defaultPasswordLength = 16
	defaultBatchLimit     = 4

	// MaxBatchSize caps GenerateBatch.
	MaxBatchSize = 1000
)

type generatorService struct {
	generator generator.Generator
	cfg       config.Generator

	logger *logger.Logger
}

// NewGeneratorService returns a GeneratorService that enforces the length
// range of cfg. A zero MinLength or MaxLength leaves that side open.
func NewGeneratorService(gen generator.Generator, cfg config.Generator, logger *logger.Logger) GeneratorService {
	return &generatorService{
		generator: gen,
		cfg:       cfg,
		logger:    logger,
	}
}

func (g *generatorService) DefaultPolicy() models.PasswordPolicy {
	length := g.cfg.DefaultLength
	if length <= 0 {
		length = defaultPasswordLength
	}

	return models.PasswordPolicy{
		Length:            length,
		IncludeUppercase:  true,
		IncludeLowercase:  true,
		IncludeNumbers:    true,
		IncludeSymbols:    true,
		ExcludeLookAlikes: true,
	}
}

func (g *generatorService) Generate(ctx context.Context, policy models.PasswordPolicy) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := g.checkLength(policy.Length); err != nil {
		return "", err
	}

	password, err := g.generator.Generate(policy)
	if err != nil {
		log.Warn().Err(err).Str("func", "generatorService.Generate").Msg("password generation rejected")
		return "", err
	}

	log.Debug().
		Str("func", "generatorService.Generate").
		Int("length", policy.Length).
		Int("classes", policy.EnabledClasses()).
		Bool("exclude_look_alikes", policy.ExcludeLookAlikes).
		Msg("password generated")

	return password, nil
}

func (g *generatorService) GenerateBatch(ctx context.Context, policy models.PasswordPolicy, n int) ([]string, error) {
	if n < 1 || n > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidBatchSize, n, MaxBatchSize)
	}
	if err := g.checkLength(policy.Length); err != nil {
		return nil, err
	}
	// fail once up front instead of n times
	if err := generator.Validate(policy); err != nil {
		return nil, err
	}

	passwords := make([]string, n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.batchLimit())
	for i := range n {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			password, err := g.generator.Generate(policy)
			if err != nil {
				return err
			}
			passwords[i] = password
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		clear(passwords)
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "generatorService.GenerateBatch").
		Int("count", n).
		Int("length", policy.Length).
		Msg("password batch generated")

	return passwords, nil
}

func (g *generatorService) checkLength(length int) error {
	minLength, maxLength := g.cfg.MinLength, g.cfg.MaxLength

	if (minLength > 0 && length < minLength) || (maxLength > 0 && length > maxLength) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLengthOutOfRange, length, minLength, maxLength)
	}
	return nil
}

func (g *generatorService) batchLimit() int {
	if g.cfg.BatchLimit > 0 {
		return g.cfg.BatchLimit
	}
	return defaultBatchLimit
}
