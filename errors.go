package trackline

import "errors"

// ErrNoSession is returned by SessionSource implementations when no user
// is signed in. SessionTokenSource treats it as "proceed unauthenticated".
var ErrNoSession = errors.New("no active session")

// IsNoSession reports whether err indicates a missing session.
func IsNoSession(err error) bool { return errors.Is(err, ErrNoSession) }
