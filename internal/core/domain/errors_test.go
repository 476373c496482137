// Package domain defines the core routing model for simple-http-server.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	err := ErrDuplicateRoute.In("get_routes.direct").ForKey("x.txt")

	msg := err.Error()
	for _, want := range []string{"SH-ROUTE-0003", "get_routes.direct", `"x.txt"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestConfigError_Is(t *testing.T) {
	err := ErrReservedKey.In("get_routes").ForKey("direct")

	if !errors.Is(err, ErrReservedKey) {
		t.Error("annotated error should match its base via errors.Is")
	}
	if errors.Is(err, ErrDuplicateRoute) {
		t.Error("errors with different codes should not match")
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := ErrBadType.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("WithCause should allow unwrapping to the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, should include the cause", err.Error())
	}
}

func TestConfigError_Immutable(t *testing.T) {
	// Annotation helpers must copy, never mutate the shared sentinels.
	_ = ErrEmptyPath.In("get_routes").ForKey("a")
	if ErrEmptyPath.Section != "" || ErrEmptyPath.Key != "" {
		t.Error("annotating a sentinel error mutated it")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(ErrBindFailed); got != "SH-BIND-0001" {
		t.Errorf("GetErrorCode() = %q, want %q", got, "SH-BIND-0001")
	}
	if got := GetErrorCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetErrorCode(plain error) = %q, want empty", got)
	}
}
