package store

import "errors"

// Sentinel errors returned by storage implementations to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrValueNotSaved is returned when a write completes without error but
	// the number of affected rows is zero, indicating that nothing was
	// actually persisted.
	ErrValueNotSaved = errors.New("value was not saved")

	// ErrCorruptStorageFile is returned when the file-backed storage holds
	// content that cannot be decoded as a JSON object of string pairs.
	ErrCorruptStorageFile = errors.New("corrupt storage file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination fails.
	ErrScanningRow = errors.New("failed to scan value row")
)
