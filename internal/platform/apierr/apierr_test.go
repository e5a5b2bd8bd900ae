package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessageFallbacks(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{New(http.StatusBadRequest, "invalid_id", errors.New("id must be positive")), "id must be positive"},
		{New(http.StatusNotFound, "recipe_not_found", nil), "recipe_not_found"},
		{New(http.StatusTeapot, "", nil), "api error (418)"},
		{&Error{}, "api error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error()=%q want %q", got, tc.want)
		}
	}
	var nilErr *Error
	if nilErr.Error() != "" {
		t.Fatalf("nil error should render empty")
	}
}

func TestAsThroughWrapping(t *testing.T) {
	base := NotFound("store_not_found")
	wrapped := fmt.Errorf("load route: %w", base)

	ae, ok := As(wrapped)
	if !ok || ae.Status != http.StatusNotFound || ae.Code != "store_not_found" {
		t.Fatalf("As: ok=%v ae=%+v", ok, ae)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Fatalf("plain error should not match")
	}
	inner := errors.New("boom")
	if !errors.Is(Internal("load_failed", inner), inner) {
		t.Fatalf("Internal should unwrap to inner error")
	}
}
