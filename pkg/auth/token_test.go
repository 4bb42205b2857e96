package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestIssueIsDeterministic(t *testing.T) {
	issuer := NewTokenIssuer("secret-a")

	first, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	second, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if first != second {
		t.Error("tokens differ across calls; claims must carry no timestamps")
	}
	if len(strings.Split(first, ".")) != 3 {
		t.Errorf("token %q is not a three-part JWT", first)
	}
}

func TestVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret-a")
	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if err := issuer.Verify(token); err != nil {
		t.Errorf("Verify own token: %v", err)
	}

	other := NewTokenIssuer("secret-b")
	if err := other.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify with wrong secret = %v, want ErrTokenInvalid", err)
	}

	if err := issuer.Verify(token + "x"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify tampered token = %v, want ErrTokenInvalid", err)
	}
}
