package trackline

import "testing"

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("TRACKLINE_DEBUG", "true")
	c := New("http://example.com", StaticTokenSource("t"))

	tt, ok := c.http.Transport.(*tokenTransport)
	if !ok {
		t.Fatalf("expected tokenTransport as outermost transport, got %T", c.http.Transport)
	}
	if _, ok := tt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when TRACKLINE_DEBUG=true, got %T", tt.base)
	}
}
