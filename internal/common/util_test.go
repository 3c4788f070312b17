package common

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
)

// ---------- MakeRandToken ----------

func TestMakeRandToken_LengthAndEncoding(t *testing.T) {
	s, err := MakeRandToken(RefreshTokenSize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != base64.RawURLEncoding.EncodedLen(RefreshTokenSize) {
		t.Fatalf("unexpected length %d", len(s))
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("string is not valid base64url: %v", err)
	}
	if len(raw) != RefreshTokenSize {
		t.Fatalf("expected %d random bytes, got %d", RefreshTokenSize, len(raw))
	}
}

func TestMakeRandToken_ZeroSize(t *testing.T) {
	s, err := MakeRandToken(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestMakeRandToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s, err := MakeRandToken(RefreshTokenSize)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[s] = struct{}{}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestMakeRandToken_ReaderError(t *testing.T) {
	orig := randReader
	randReader = failingReader{}
	defer func() { randReader = orig }()

	if _, err := MakeRandToken(8); err == nil {
		t.Fatal("expected error from failing reader")
	}
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- IsAuthError ----------

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrInvalidAccessToken, true},
		{ErrInvalidRefreshToken, true},
		{ErrRefreshTokenExpiredOrRevoked, true},
		{fmt.Errorf("wrapped: %w", ErrInvalidRefreshToken), true},
		{ErrorInternal, false},
		{ErrorNotFound, false},
		{errors.New("db down"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsAuthError(tt.err); got != tt.want {
			t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
