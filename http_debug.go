package trackline

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response through zerolog for
// troubleshooting API communication problems.
//
// Dumps include full headers and bodies, access tokens included, so keep
// this out of production and make sure log outputs are not exposed.
// Enable with WithDebugLogging or by setting TRACKLINE_DEBUG=true (or the
// general DEBUG=true) in the environment.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug logging was requested
// via the environment: TRACKLINE_DEBUG=true for targeted SDK debugging, or
// DEBUG=true for broader application debugging.
func debugLoggingRequested() bool {
	return os.Getenv("TRACKLINE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
