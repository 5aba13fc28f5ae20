package trackline

import "testing"

func TestNew(t *testing.T) {
	if New("http://example.com", StaticTokenSource("t")) == nil {
		t.Fatalf("expected client")
	}
}

func TestNew_PanicsOnEmptyBaseURL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty baseURL")
		}
	}()
	New("", StaticTokenSource("t"))
}

func TestNew_PanicsOnNilTokenSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil token source")
		}
	}()
	New("http://example.com", nil)
}

func TestIsNoSession(t *testing.T) {
	if !IsNoSession(ErrNoSession) {
		t.Fatalf("expected no-session detection")
	}
	if IsNoSession(nil) {
		t.Fatalf("unexpected no-session detection")
	}
}
