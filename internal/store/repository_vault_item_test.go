package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a mocked *sql.DB the way NewConnectPostgres would.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		driver:             "pgx",
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) VaultItemRepository {
	t.Helper()
	return NewVaultItemRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func testItem() models.VaultItem {
	return models.VaultItem{
		ID:                "0190f0a4-7a4e-7c1d-9d3b-2f1e5a6b7c8d",
		OwnerID:           "alice",
		Title:             "GitHub",
		Username:          "octocat",
		EncryptedPassword: "q83vEjRWeJq83vEjRWeJq83vEjRWeJq83vEjRWeJq80=",
		URL:               "github.com",
		Notes:             "2fa on",
		CreatedAt:         testNow,
		UpdatedAt:         testNow,
	}
}

func itemRow(item models.VaultItem) []driver.Value {
	return []driver.Value{
		item.ID, item.OwnerID, item.Title, item.Username,
		item.EncryptedPassword.String(), item.URL, item.Notes,
		item.CreatedAt, item.UpdatedAt,
	}
}

// ── CreateItem ────────────────────────────────────────────────────────────────

func TestCreateItem_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	item := testItem()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).
		WithArgs(item.ID, item.OwnerID, item.Title, item.Username, item.EncryptedPassword.String(),
			item.URL, item.Notes, item.CreatedAt, item.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateItem(testContext(), item))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateItem_NoRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateItem(testContext(), testItem())
	assert.ErrorIs(t, err, ErrVaultItemNotSaved)
}

func TestCreateItem_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.CreateItem(testContext(), testItem())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet(), "non-retryable errors must not be retried")
}

func TestCreateItem_RetriesTransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateItem(testContext(), testItem()))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── withRetry ───────────────────────────────────────────────────────────────

type retryEverything struct{}

func (retryEverything) Classify(error) ErrorClassification { return Retryable }

var errTransient = errors.New("transient")

func TestWithRetry_StopsOnCancel(t *testing.T) {
	db := &DB{errorClassificator: retryEverything{}}
	ctx, cancel := context.WithCancel(testContext())

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		cancel()
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_GivesUpAfterBudget(t *testing.T) {
	db := &DB{errorClassificator: retryEverything{}}

	calls := 0
	err := db.withRetry(testContext(), func() error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, len(retryDelays)+1, calls)
}

func TestWithRetry_NoClassifierRunsOnce(t *testing.T) {
	db := &DB{}

	calls := 0
	err := db.withRetry(testContext(), func() error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

// ── GetItem ───────────────────────────────────────────────────────────────────

func TestGetItem_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	want := testItem()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items WHERE id = $1 AND owner_id = $2")).
		WithArgs(want.ID, want.OwnerID).
		WillReturnRows(sqlmock.NewRows(vaultItemColumns).AddRow(itemRow(want)...))

	got, err := repo.GetItem(testContext(), want.OwnerID, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItem_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items")).
		WithArgs("missing", "alice").
		WillReturnRows(sqlmock.NewRows(vaultItemColumns))

	_, err := repo.GetItem(testContext(), "alice", "missing")
	assert.ErrorIs(t, err, ErrVaultItemNotFound)
}

func TestGetItem_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetItem(testContext(), "alice", "id")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrVaultItemNotFound)
}

// ── ListItems ─────────────────────────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	newer := testItem()
	older := testItem()
	older.ID = "0190f0a4-0000-7c1d-9d3b-2f1e5a6b7c8d"
	older.Title = "Mail"
	older.CreatedAt = testNow.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(vaultItemColumns).
			AddRow(itemRow(newer)...).
			AddRow(itemRow(older)...))

	items, err := repo.ListItems(testContext(), "alice", "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer, items[0])
	assert.Equal(t, older, items[1])
}

func TestListItems_Search(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("LOWER(title) LIKE $2")).
		WithArgs("alice", "%hub%", "%hub%", "%hub%").
		WillReturnRows(sqlmock.NewRows(vaultItemColumns))

	items, err := repo.ListItems(testContext(), "alice", "HUB")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestListItems_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items")).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListItems(testContext(), "alice", "")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListItems_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only-one-column"))

	_, err := repo.ListItems(testContext(), "alice", "")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListItems_RowsError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows(vaultItemColumns).
		AddRow(itemRow(testItem())...).
		RowError(0, errors.New("stream broken"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items")).WillReturnRows(rows)

	_, err := repo.ListItems(testContext(), "alice", "")
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── UpdateItem ────────────────────────────────────────────────────────────────

func TestUpdateItem(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "success", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: ErrVaultItemNotFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("unsupported")), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db)
			item := testItem()

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE vault_items SET")).
				WithArgs(item.Title, item.Username, item.EncryptedPassword.String(), item.URL, item.Notes,
					item.UpdatedAt, item.ID, item.OwnerID)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdateItem(testContext(), item)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── DeleteItem ────────────────────────────────────────────────────────────────

func TestDeleteItem_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vault_items WHERE id = $1 AND owner_id = $2")).
		WithArgs("id-1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteItem(testContext(), "alice", "id-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem_OtherOwnersItemIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vault_items")).
		WithArgs("id-1", "mallory").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(testContext(), "mallory", "id-1")
	assert.ErrorIs(t, err, ErrVaultItemNotFound)
}
