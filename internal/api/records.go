package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trackline/trackline-go/internal/types"
)

// This package implements the record operations shared by every record
// kind. Callers supply the endpoint path segment and a parse function; the
// functions here own request construction, success decoding, and the
// failure classification applied uniformly across operations:
//
//   - network-level failure (the call itself fails, or the response body
//     cannot be read or decoded): status 503 with ConnectivityMessage;
//   - HTTP-level failure (unexpected status): the actual status with a
//     message extracted from the body (see errorMessage).
//
// Nothing here returns an error; every outcome is a result value. The
// Authorization header is added by the client's transport layer.

// ParseFunc converts one raw JSON object into a typed record.
type ParseFunc[T any] func(raw json.RawMessage) (T, error)

// listEnvelope is the wire shape of collection endpoints. Previous and
// Next carry adjacent page links; null means no page on that side.
type listEnvelope struct {
	Results  []json.RawMessage `json:"results"`
	Previous *string           `json:"previous"`
	Next     *string           `json:"next"`
}

// List retrieves one page of records ordered by sort.
func List[T any](ctx context.Context, httpClient *http.Client, baseURL, endpoint string, parse ParseFunc[T], sort types.SortBy, page int) types.ListResult[T] {
	requestsTotal.WithLabelValues(opList).Inc()

	fail := func(status int, message string) types.ListResult[T] {
		requestFailuresTotal.WithLabelValues(opList).Inc()
		return types.ListFailure[T](status, message)
	}

	url := fmt.Sprintf("%s%s?%s", baseURL, endpoint, sort.Values(page).Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fail(resp.StatusCode, errorMessage(resp.Body))
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	records := make([]T, 0, len(env.Results))
	for _, raw := range env.Results {
		rec, err := parse(raw)
		if err != nil {
			return fail(http.StatusServiceUnavailable, ConnectivityMessage)
		}
		records = append(records, rec)
	}
	return types.ListSuccess(resp.StatusCode, records, page, env.Previous != nil, env.Next != nil)
}

// Get retrieves a single record by id.
func Get[T any](ctx context.Context, httpClient *http.Client, baseURL, endpoint string, parse ParseFunc[T], id int) types.SingleResult[T] {
	requestsTotal.WithLabelValues(opGet).Inc()

	fail := func(status int, message string) types.SingleResult[T] {
		requestFailuresTotal.WithLabelValues(opGet).Inc()
		return types.SingleFailure[T](status, message)
	}

	url := fmt.Sprintf("%s%s%d/", baseURL, endpoint, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fail(resp.StatusCode, errorMessage(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	rec, err := parse(body)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	return types.SingleSuccess(resp.StatusCode, rec)
}

// Create stores a new record and returns the server's copy of it.
func Create[T any](ctx context.Context, httpClient *http.Client, baseURL, endpoint string, parse ParseFunc[T], record T) types.SingleResult[T] {
	url := fmt.Sprintf("%s%s", baseURL, endpoint)
	return writeRecord(ctx, httpClient, opCreate, http.MethodPost, url, parse, record)
}

// Update replaces the record identified by record.RecordID and returns the
// server's copy of it.
func Update[T types.Record](ctx context.Context, httpClient *http.Client, baseURL, endpoint string, parse ParseFunc[T], record T) types.SingleResult[T] {
	url := fmt.Sprintf("%s%s%d/", baseURL, endpoint, record.RecordID())
	return writeRecord(ctx, httpClient, opUpdate, http.MethodPut, url, parse, record)
}

// writeRecord issues a JSON write (POST or PUT). Writes succeed on 200 or
// 201; the response body is parsed as the stored record.
func writeRecord[T any](ctx context.Context, httpClient *http.Client, op, method, url string, parse ParseFunc[T], record T) types.SingleResult[T] {
	requestsTotal.WithLabelValues(op).Inc()

	fail := func(status int, message string) types.SingleResult[T] {
		requestFailuresTotal.WithLabelValues(op).Inc()
		return types.SingleFailure[T](status, message)
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fail(resp.StatusCode, errorMessage(resp.Body))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	rec, err := parse(respBody)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	return types.SingleSuccess(resp.StatusCode, rec)
}

// Delete removes the record identified by id. Any 2xx status counts as
// success.
func Delete(ctx context.Context, httpClient *http.Client, baseURL, endpoint string, id int) types.Result {
	requestsTotal.WithLabelValues(opDelete).Inc()

	fail := func(status int, message string) types.Result {
		requestFailuresTotal.WithLabelValues(opDelete).Inc()
		return types.Failure(status, message)
	}

	url := fmt.Sprintf("%s%s%d/", baseURL, endpoint, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fail(http.StatusServiceUnavailable, ConnectivityMessage)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, errorMessage(resp.Body))
	}
	return types.Success(resp.StatusCode)
}
