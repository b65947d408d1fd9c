package utils

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "hunter2" {
		t.Fatal("password must not be stored in plain text")
	}
	if !CheckPassword("hunter2", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestJWTRoundtrip(t *testing.T) {
	token, err := GenerateJWT("alice")
	if err != nil {
		t.Fatal(err)
	}

	username, err := ParseJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}

func TestParseJWT_Tampered(t *testing.T) {
	token, err := GenerateJWT("alice")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	if _, err := ParseJWT(tampered); err == nil {
		t.Fatal("tampered token must not validate")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token"); err == nil {
		t.Fatal("garbage token must not validate")
	}
}
