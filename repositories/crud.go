package repositories

import "errors"

// Per-page sizes inherited from the API contract: owned listings are fixed at
// 10, public listings default to 12 and search to 10 when the caller sends
// nothing usable.
const (
	OwnedPerPage         = 10
	DefaultPublicPerPage = 12
	DefaultSearchPerPage = 10
)

// ErrHasChildren is returned by Delete when child records still reference the
// target row. Deletes never cascade.
var ErrHasChildren = errors.New("record still has child records")

// Crud is the capability set every catalog repository implements. Read and
// write operations take the request Scope and treat records outside it as
// absent: a missing or unowned id comes back as (nil, nil) rather than an
// error, so callers can map it to a not-found response.
type Crud[T any] interface {
	// GetAll lists the records owned by the scope's principal, newest id
	// first, OwnedPerPage per page, immediate parent preloaded.
	GetAll(scope *Scope, page int) (*Pagination, error)

	// GetPaginated lists records publicly with no ownership filter. A
	// perPage <= 0 falls back to DefaultPublicPerPage.
	GetPaginated(page, perPage int) (*Pagination, error)

	// Search matches keyword as a case-insensitive substring against the
	// entity's text fields. A perPage <= 0 falls back to
	// DefaultSearchPerPage.
	Search(scope *Scope, keyword string, page, perPage int) (*Pagination, error)

	// GetByID fetches one record by primary key within scope, parent
	// preloaded.
	GetByID(scope *Scope, id uint) (*T, error)

	// Create inserts the record as supplied.
	Create(record *T) (*T, error)

	// Update merges only the provided columns into the record and returns
	// the re-fetched result. An empty fields map writes nothing.
	Update(scope *Scope, id uint, fields map[string]interface{}) (*T, error)

	// Delete removes the record. It reports false without side effects when
	// the id is absent, and ErrHasChildren when children still reference it.
	Delete(scope *Scope, id uint) (bool, error)
}
