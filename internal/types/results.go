package types

// ------------------------------
// Result Wrappers
// ------------------------------
//
// Client operations never return errors; every outcome is represented as a
// result value. A result is either a success carrying its payload or a
// failure carrying an HTTP status and a human-readable message — never
// both. The factory functions below are the only way results are built, so
// the exclusivity holds by construction. Results are immutable per-call
// values; the caller consumes them once and discards them.

// ListResult is the outcome of a paginated listing.
type ListResult[T any] struct {
	Status          int
	Records         []T
	Page            int
	HasPreviousPage bool
	HasNextPage     bool
	ErrorMessage    string

	ok bool
}

// ListSuccess builds a successful listing result. hasPrev and hasNext
// reflect whether the server advertised adjacent page links.
func ListSuccess[T any](status int, records []T, page int, hasPrev, hasNext bool) ListResult[T] {
	return ListResult[T]{
		Status:          status,
		Records:         records,
		Page:            page,
		HasPreviousPage: hasPrev,
		HasNextPage:     hasNext,
		ok:              true,
	}
}

// ListFailure builds a failed listing result.
func ListFailure[T any](status int, message string) ListResult[T] {
	return ListResult[T]{Status: status, ErrorMessage: message}
}

// OK reports whether the listing succeeded.
func (r ListResult[T]) OK() bool { return r.ok }

// SingleResult is the outcome of an operation yielding one record.
type SingleResult[T any] struct {
	Status       int
	Record       T
	ErrorMessage string

	ok bool
}

// SingleSuccess builds a successful single-record result.
func SingleSuccess[T any](status int, record T) SingleResult[T] {
	return SingleResult[T]{Status: status, Record: record, ok: true}
}

// SingleFailure builds a failed single-record result.
func SingleFailure[T any](status int, message string) SingleResult[T] {
	return SingleResult[T]{Status: status, ErrorMessage: message}
}

// OK reports whether the operation succeeded.
func (r SingleResult[T]) OK() bool { return r.ok }

// Result is the outcome of an operation with no payload (delete).
type Result struct {
	Status       int
	ErrorMessage string

	ok bool
}

// Success builds a successful payload-free result.
func Success(status int) Result { return Result{Status: status, ok: true} }

// Failure builds a failed payload-free result.
func Failure(status int, message string) Result {
	return Result{Status: status, ErrorMessage: message}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.ok }
