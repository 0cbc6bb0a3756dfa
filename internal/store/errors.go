package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultItemNotFound is returned when no item with the given id exists
	// for the owner. Items of other owners are reported the same way.
	ErrVaultItemNotFound = errors.New("vault item was not found")

	// ErrVaultItemNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrVaultItemNotSaved = errors.New("vault item was not saved")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// sqlite3 nor pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan vault item row")

	// ErrScanningRows is returned when iterating over a result set fails
	// mid-way.
	ErrScanningRows = errors.New("failed to scan vault item rows")
)
