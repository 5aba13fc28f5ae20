package trackline

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// User carries the authenticated user's API token.
type User struct {
	Token string `json:"token"`
}

// Session is the authenticated user context from which the access token is
// derived.
type Session struct {
	User User `json:"user"`
}

// SessionSource yields the active session. Implementations are supplied by
// the host application and should return ErrNoSession when nobody is
// signed in.
type SessionSource interface {
	Session(ctx context.Context) (*Session, error)
}

// TokenSource supplies the access token attached to each request. The
// token is looked up per call; nothing is cached between requests.
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// StaticTokenSource returns a TokenSource that always yields token.
func StaticTokenSource(token string) TokenSource {
	return staticTokenSource(token)
}

type staticTokenSource string

func (s staticTokenSource) AccessToken(context.Context) string { return string(s) }

// SessionTokenSource derives the access token from the active session. A
// missing session is logged and yields an empty token: the request goes
// out unauthenticated and the server's rejection comes back through the
// normal result path instead of failing before the call is made.
func SessionTokenSource(sessions SessionSource) TokenSource {
	return &sessionTokenSource{sessions: sessions}
}

type sessionTokenSource struct {
	sessions SessionSource
}

func (s *sessionTokenSource) AccessToken(ctx context.Context) string {
	sess, err := s.sessions.Session(ctx)
	if err != nil || sess == nil {
		log.Error().Err(err).Msg("no active session, proceeding without access token")
		return ""
	}
	return sess.User.Token
}

// tokenTransport wraps an http.RoundTripper to add the Authorization and
// correlation headers to every outgoing request.
type tokenTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Token "+t.tokens.AccessToken(req.Context()))
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}
