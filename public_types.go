package trackline

import "github.com/trackline/trackline-go/internal/types"

// Public type aliases so SDK consumers can import only the trackline
// package.
type (
	// Domain entities
	Record  = types.Record
	Expense = types.Expense
	Project = types.Project

	// Listing controls
	SortBy    = types.SortBy
	Direction = types.Direction

	// Results
	ListResult[T any]   = types.ListResult[T]
	SingleResult[T any] = types.SingleResult[T]
	Result              = types.Result
)

// Sort directions.
const (
	Ascending  = types.Ascending
	Descending = types.Descending
)
