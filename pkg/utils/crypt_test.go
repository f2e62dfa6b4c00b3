package utils

import "testing"

func TestCryptAndVerify(t *testing.T) {
	hashed, err := Crypt("s3cret-password")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if hashed == "s3cret-password" {
		t.Fatal("password stored in plain text")
	}

	if _, ok := VerifyPassword("s3cret-password", hashed); !ok {
		t.Error("correct password rejected")
	}
	if _, ok := VerifyPassword("wrong-password", hashed); ok {
		t.Error("wrong password accepted")
	}
}

func TestCryptSalts(t *testing.T) {
	a, err := Crypt("same-password")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	b, err := Crypt("same-password")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}
