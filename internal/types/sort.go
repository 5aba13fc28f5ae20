package types

import (
	"net/url"
	"strconv"
)

// Direction orders a listing ascending or descending.
type Direction string

// Sort directions as they appear on the wire.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortBy names the record field a listing is ordered by and the direction
// of the ordering.
type SortBy struct {
	Field     string
	Direction Direction
}

// Values returns the query parameters for one page of a sorted listing.
// All three parameters are always present, matching what the server
// expects even when the sort field is left empty.
func (s SortBy) Values(page int) url.Values {
	v := url.Values{}
	v.Set("sortField", s.Field)
	v.Set("sortDir", string(s.Direction))
	v.Set("page", strconv.Itoa(page))
	return v
}
