package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Downtown Mail Center", "downtown-mail-center"},
		{"  PMB Plus!  ", "pmb-plus"},
		{"Store #42 -- Main St.", "store-42-main-st"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateInvoiceNo(t *testing.T) {
	got := GenerateInvoiceNo("INV-")
	if !strings.HasPrefix(got, "INV-") {
		t.Errorf("invoice %q missing prefix", got)
	}
	if len(got) != len("INV-")+8 {
		t.Errorf("invoice %q has unexpected length", got)
	}
	if got == GenerateInvoiceNo("INV-") {
		t.Error("two generated invoice numbers collided")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTManagerRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "clerk@example.com", []string{"clerk"}, []string{"run-checkout"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "clerk@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "clerk" {
		t.Errorf("Roles = %v, want [clerk]", claims.Roles)
	}
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "a@b.c", nil, nil)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token signed with a different secret validated")
	}
}
