package util

import (
	"lms_backend/internal/model"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Role:  model.Instructor,
		Email: "ines@example.com",
	}
	user.ID = model.GenerateUUID()

	secret := "unit-test-secret-0123456789abcdef"
	token, err := GenerateJWT(user, secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != model.Instructor || claims.Email != user.Email {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("missing token id")
	}

	if _, err := ParseJWT(token, "wrong-secret"); err == nil {
		t.Fatal("parse with wrong secret succeeded")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Role: model.Student}
	user.ID = model.GenerateUUID()

	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expired token accepted")
	}
}
