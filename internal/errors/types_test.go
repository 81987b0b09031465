package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()
	underlying := stderrors.New("boom")
	err := Wrap(AuthRefreshFailed, "token refresh failed: boom", underlying)
	if err.Error() != "token refresh failed: boom" {
		t.Fatalf("message: %q", err.Error())
	}
	if !stderrors.Is(err, underlying) {
		t.Fatal("unwrap chain broken")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	if k, ok := KindOf(New(NoActiveSession, "no active session")); !ok || k != NoActiveSession {
		t.Fatalf("KindOf: %v %v", k, ok)
	}
	if _, ok := KindOf(stderrors.New("plain")); ok {
		t.Fatal("plain errors have no kind")
	}
	if !Is(New(InsertFailed, "x"), InsertFailed) {
		t.Fatal("Is mismatch")
	}
	if Is(New(InsertFailed, "x"), NoRefreshToken) {
		t.Fatal("Is must distinguish kinds")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind Kind
		want string
	}{
		{RequestFailed, "RequestFailed"},
		{AuthRefreshFailed, "AuthRefreshFailed"},
		{NoRefreshToken, "NoRefreshToken"},
		{InvalidRefreshResponse, "InvalidRefreshResponse"},
		{NoActiveSession, "NoActiveSession"},
		{InsertFailed, "InsertFailed"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body any
		want string
	}{
		{"message field", map[string]any{"message": "nope"}, "nope"},
		{"error field", map[string]any{"error": "bad"}, "bad"},
		{"message wins over error", map[string]any{"message": "m", "error": "e"}, "m"},
		{"non-string message", map[string]any{"message": 42}, "HTTP 422"},
		{"nil body", nil, "HTTP 422"},
		{"array body", []any{"x"}, "HTTP 422"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatus(422, tt.body)
			if err.Error() != tt.want {
				t.Fatalf("message %q, want %q", err.Error(), tt.want)
			}
			if err.Kind != RequestFailed || err.StatusCode != 422 {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestFromTransport(t *testing.T) {
	t.Parallel()
	underlying := stderrors.New("dial tcp: connection refused")
	err := FromTransport(underlying)
	if err.Kind != RequestFailed || err.StatusCode != 0 {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !stderrors.Is(err, underlying) {
		t.Fatal("unwrap chain broken")
	}
}
