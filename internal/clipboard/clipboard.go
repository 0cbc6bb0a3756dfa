// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard puts secrets on the system clipboard for a limited time.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/pass-vault/internal/logger"
)

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

// DefaultTTL is how long a copied secret stays on the clipboard.
const DefaultTTL = 15 * time.Second

var (
	ErrUnsupported = errors.New("clipboard is not available on this system")
	ErrEmptyText   = errors.New("nothing to copy")
)

// Board is a text clipboard.
type Board interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Copier copies text and takes it back off the clipboard later.
type Copier interface {
	// Copy writes text and blocks until ttl passes or ctx is done. The
	// clipboard is then cleared unless something else was copied meanwhile.
	Copy(ctx context.Context, text string, ttl time.Duration) error
}

type systemBoard struct{}

// System returns the operating system clipboard.
func System() Board {
	return systemBoard{}
}

func (systemBoard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (systemBoard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

type copier struct {
	board Board
	after func(time.Duration) <-chan time.Time
}

// NewCopier returns a Copier over board.
func NewCopier(board Board) Copier {
	return &copier{board: board, after: time.After}
}

func (c *copier) Copy(ctx context.Context, text string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	if text == "" {
		return ErrEmptyText
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if err := c.board.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	log.Debug().Str("func", "copier.Copy").Dur("ttl", ttl).Msg("secret copied to clipboard")

	select {
	case <-c.after(ttl):
	case <-ctx.Done():
	}

	current, err := c.board.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard before clearing: %w", err)
	}
	if current != text {
		log.Debug().Str("func", "copier.Copy").Msg("clipboard changed since copy, leaving it alone")
		return nil
	}

	if err = c.board.WriteAll(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	log.Debug().Str("func", "copier.Copy").Msg("clipboard cleared")

	return nil
}
