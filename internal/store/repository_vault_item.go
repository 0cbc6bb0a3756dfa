// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/models"
)

// vaultItemRepository is the SQL implementation of [VaultItemRepository]. It
// works against the "vault_items" table of either SQLite or PostgreSQL; the
// dialect only changes placeholders.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// owner and item ids. Titles, usernames and blobs are never logged.
type vaultItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by db.
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	return &vaultItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultItemRepository) CreateItem(ctx context.Context, item models.VaultItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultItemQuery(r.builder(), item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		result, err = r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.CreateItem").
			Str("owner_id", item.OwnerID).
			Str("item_id", item.ID).
			Msg("failed to insert vault item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrVaultItemNotSaved
	}

	return nil
}

func (r *vaultItemRepository) GetItem(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultItemQuery(r.builder(), ownerID, id)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.VaultItem
	err = r.withRetry(ctx, func() error {
		item, err = scanVaultItem(r.DB.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrVaultItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.GetItem").
			Str("owner_id", ownerID).
			Str("item_id", id).
			Msg("failed to get vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *vaultItemRepository) ListItems(ctx context.Context, ownerID, search string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultItemsQuery(r.builder(), ownerID, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		rows, err = r.DB.QueryContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.ListItems").
			Str("owner_id", ownerID).
			Bool("search", search != "").
			Msg("failed to execute query for listing vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0, 32)
	for rows.Next() {
		item, scanErr := scanVaultItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultItemRepository.ListItems").
				Str("owner_id", ownerID).
				Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultItemRepository.ListItems").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *vaultItemRepository) UpdateItem(ctx context.Context, item models.VaultItem) error {
	query, args, err := buildUpdateVaultItemQuery(r.builder(), item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "vaultItemRepository.UpdateItem", item.OwnerID, item.ID, query, args)
}

func (r *vaultItemRepository) DeleteItem(ctx context.Context, ownerID, id string) error {
	query, args, err := buildDeleteVaultItemQuery(r.builder(), ownerID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "vaultItemRepository.DeleteItem", ownerID, id, query, args)
}

// execAffectingOne runs a statement that targets a single item and maps zero
// affected rows to ErrVaultItemNotFound.
func (r *vaultItemRepository) execAffectingOne(ctx context.Context, funcName, ownerID, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	var (
		result sql.Result
		err    error
	)
	err = r.withRetry(ctx, func() error {
		result, err = r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("owner_id", ownerID).
			Str("item_id", id).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(row rowScanner) (models.VaultItem, error) {
	var (
		item models.VaultItem
		blob string
	)

	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Title,
		&item.Username,
		&blob,
		&item.URL,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.VaultItem{}, err
	}

	item.EncryptedPassword = models.CipherBlob(blob)
	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()

	return item, nil
}
