package trackline

import (
	"context"
	"encoding/json"

	"github.com/trackline/trackline-go/internal/api"
)

// Descriptor supplies the two per-kind capabilities a Resource needs:
// where the record collection lives and how to turn raw JSON into a typed
// record.
type Descriptor[T Record] interface {
	// Endpoint returns the resource path segment, e.g. "/expenses/".
	Endpoint() string

	// Parse converts a raw JSON object into the typed record, applying
	// whatever coercions the wire format needs (string dates and the
	// like).
	Parse(raw json.RawMessage) (T, error)
}

// Resource exposes the record operations for one record kind. Values are
// cheap and stateless; obtain them from the accessors on Client.
//
// Operations return result values instead of errors: connectivity problems
// surface as a 503 failure with a fixed message, server-reported problems
// carry the actual status and the server's message. See the result types
// for the success payloads.
type Resource[T Record] struct {
	client *Client
	desc   Descriptor[T]
}

// NewResource binds a record descriptor to a client. Most callers use the
// accessors on Client; NewResource is the hook for record kinds defined
// outside this package.
func NewResource[T Record](c *Client, desc Descriptor[T]) *Resource[T] {
	return &Resource[T]{client: c, desc: desc}
}

// List retrieves one page of records ordered by sort. Pages are numbered
// from 1; values below that are treated as the first page.
func (r *Resource[T]) List(ctx context.Context, sort SortBy, page int) ListResult[T] {
	if page < 1 {
		page = 1
	}
	return api.List(ctx, r.client.http, r.client.baseURL, r.desc.Endpoint(), r.desc.Parse, sort, page)
}

// Get retrieves a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id int) SingleResult[T] {
	return api.Get(ctx, r.client.http, r.client.baseURL, r.desc.Endpoint(), r.desc.Parse, id)
}

// Create stores a new record and returns the server's copy of it.
func (r *Resource[T]) Create(ctx context.Context, record T) SingleResult[T] {
	return api.Create(ctx, r.client.http, r.client.baseURL, r.desc.Endpoint(), r.desc.Parse, record)
}

// Update replaces the record identified by record.RecordID and returns the
// server's copy of it.
func (r *Resource[T]) Update(ctx context.Context, record T) SingleResult[T] {
	return api.Update(ctx, r.client.http, r.client.baseURL, r.desc.Endpoint(), r.desc.Parse, record)
}

// Delete removes the record identified by id.
func (r *Resource[T]) Delete(ctx context.Context, id int) Result {
	return api.Delete(ctx, r.client.http, r.client.baseURL, r.desc.Endpoint(), id)
}
