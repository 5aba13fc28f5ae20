package api

import (
	"encoding/json"
	"io"
)

// ConnectivityMessage is returned verbatim, with status 503, whenever a
// request never produced a usable response: connection refused, timeout,
// a body that could not be read or decoded. The real cause is logged by
// the debug transport when enabled; callers only ever see this message.
const ConnectivityMessage = "could not reach the server, please try again later"

// GenericErrorMessage is the fallback when the server reports a failure
// without a usable message in its body.
const GenericErrorMessage = "the server reported an unexpected error"

// errorEnvelope is the error body shape the server speaks: a single
// detail string, or a details array, or neither.
type errorEnvelope struct {
	Detail  string   `json:"detail"`
	Details []string `json:"details"`
}

// errorMessage extracts a human-readable message from an error response
// body. Precedence: the detail field, then the first entry of the details
// array when non-empty, then the generic fallback.
func errorMessage(body io.Reader) string {
	var env errorEnvelope
	if err := json.NewDecoder(body).Decode(&env); err == nil {
		if env.Detail != "" {
			return env.Detail
		}
		if len(env.Details) > 0 && env.Details[0] != "" {
			return env.Details[0]
		}
	}
	return GenericErrorMessage
}
