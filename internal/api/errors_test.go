package api

import (
	"strings"
	"testing"
)

func TestErrorMessagePrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail only", `{"detail":"boom"}`, "boom"},
		{"details only", `{"details":["first","second"]}`, "first"},
		{"detail beats details", `{"detail":"d","details":["first"]}`, "d"},
		{"empty details array", `{"details":[]}`, GenericErrorMessage},
		{"empty first detail", `{"details":["","second"]}`, GenericErrorMessage},
		{"empty object", `{}`, GenericErrorMessage},
		{"invalid json", `not json at all`, GenericErrorMessage},
		{"empty body", ``, GenericErrorMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errorMessage(strings.NewReader(tc.body)); got != tc.want {
				t.Fatalf("errorMessage(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}
