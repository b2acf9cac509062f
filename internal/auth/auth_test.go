package auth

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestMintToken(t *testing.T) {
	a, err := MintToken()
	if err != nil {
		t.Fatalf("MintToken() error: %v", err)
	}
	if len(a) != 32 {
		t.Errorf("token length = %d, want 32 hex chars", len(a))
	}
	b, err := MintToken()
	if err != nil {
		t.Fatalf("MintToken() error: %v", err)
	}
	if a == b {
		t.Error("two minted tokens are identical")
	}
}

func TestKeyringRoundTrip(t *testing.T) {
	keyring.MockInit()

	if err := StoreToken("dana@example.test", "tok-123"); err != nil {
		t.Fatalf("StoreToken() error: %v", err)
	}

	got, err := LoadToken("dana@example.test")
	if err != nil {
		t.Fatalf("LoadToken() error: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("LoadToken() = %q, want %q", got, "tok-123")
	}

	// account names normalize, so case differences still resolve
	got, err = LoadToken("Dana@Example.Test")
	if err != nil || got != "tok-123" {
		t.Errorf("LoadToken(mixed case) = %q, %v", got, err)
	}

	if err := DeleteToken("dana@example.test"); err != nil {
		t.Fatalf("DeleteToken() error: %v", err)
	}
	if _, err := LoadToken("dana@example.test"); err == nil {
		t.Error("token still resolvable after delete")
	}
}

func TestEmptyInputsRejected(t *testing.T) {
	keyring.MockInit()

	if err := StoreToken("", "tok"); err == nil {
		t.Error("StoreToken with empty email succeeded")
	}
	if err := StoreToken("a@b.test", ""); err == nil {
		t.Error("StoreToken with empty token succeeded")
	}
	if _, err := LoadToken(""); err == nil {
		t.Error("LoadToken with empty email succeeded")
	}
}
