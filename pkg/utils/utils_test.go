package utils

import "testing"

func TestCryptAndVerify(t *testing.T) {
	hash, err := Crypt("secret123")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash equals the plaintext")
	}
	if !VerifyPassword("secret123", hash) {
		t.Error("correct password did not verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password verified")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "plain", "a b@c.co", "a@b", "@example.com", "a@.com "}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}
