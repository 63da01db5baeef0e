package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user insert or update collides
	// with an existing username, phone or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrTravelMapNotFound is returned when no city matches the lookup key.
	ErrTravelMapNotFound = errors.New("travel map not found")

	// ErrCityAlreadyExists is returned when a rename collides with the
	// unique city name of another row.
	ErrCityAlreadyExists = errors.New("city already exists")

	// ErrTravelMapInUse is returned when a city is deleted while travel
	// records still reference it.
	ErrTravelMapInUse = errors.New("travel map is referenced by travel records")

	// ErrTravelRecordNotFound is returned when no travel record matches the id.
	ErrTravelRecordNotFound = errors.New("travel record not found")

	// ErrTravelAlbumNotFound is returned when no album entry matches the id.
	ErrTravelAlbumNotFound = errors.New("travel album not found")

	// ErrUnknownReference is returned when an insert or update points at a
	// user, city or record that does not exist.
	ErrUnknownReference = errors.New("referenced row does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
