package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	h := HashPassword("qwerty")
	if h == "" || h == "qwerty" {
		t.Fatalf("unexpected hash %q", h)
	}
	if !CheckPassword("qwerty", h) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("QWERTY", h) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	if HashPassword("qwerty") == HashPassword("qwerty") {
		t.Fatal("two hashes of the same password must differ (per-call salt)")
	}
}

func TestCheckPassword_MalformedHashFailsClosed(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"", "not-a-bcrypt-hash", "$2a$10$short"} {
		if CheckPassword("qwerty", h) {
			t.Fatalf("malformed hash %q accepted", h)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	if NewID() == NewID() {
		t.Fatal("ids must be unique")
	}
}
