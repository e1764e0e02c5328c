package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"testing"
)

func TestRegisterCreatesAndLogsIn(t *testing.T) {
	env := newTestEnv(t)

	in := studentInput("Alice")
	user, token, err := env.auth.Register(in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token from register")
	}
	if user.Role != model.Student {
		t.Fatalf("role = %q, want student", user.Role)
	}
	if user.Username != "alice" {
		t.Fatalf("username = %q, want normalized lower case", user.Username)
	}
	if user.Password == in.Password {
		t.Fatal("password stored in plain text")
	}

	var count int64
	env.db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("user count = %d, want 1", count)
	}
}

func TestRegisterRejectsDuplicateIdentity(t *testing.T) {
	env := newTestEnv(t)

	if _, _, err := env.auth.Register(studentInput("bob")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same username, different case.
	dup := studentInput("BOB")
	dup.Email = "other@example.com"
	if _, _, err := env.auth.Register(dup); !errors.Is(err, util.ErrDuplicateIdentity) {
		t.Fatalf("err = %v, want ErrDuplicateIdentity", err)
	}

	// Same email, different case.
	dup = studentInput("carol")
	dup.Email = "BOB@Example.COM"
	if _, _, err := env.auth.Register(dup); !errors.Is(err, util.ErrDuplicateIdentity) {
		t.Fatalf("err = %v, want ErrDuplicateIdentity", err)
	}

	var count int64
	env.db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("user count = %d, want 1 after rejected duplicates", count)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	missing := studentInput("dave")
	missing.Country = ""
	if _, _, err := env.auth.Register(missing); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("missing field: err = %v, want ErrValidation", err)
	}

	badEmail := studentInput("dave")
	badEmail.Email = "not-an-email"
	if _, _, err := env.auth.Register(badEmail); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("bad email: err = %v, want ErrValidation", err)
	}

	adminRole := studentInput("dave")
	adminRole.Role = model.Admin
	if _, _, err := env.auth.Register(adminRole); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("admin role: err = %v, want ErrValidation", err)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	if _, _, err := env.auth.Register(studentInput("erin")); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Username match, case-insensitive.
	user, token, err := env.auth.Login("ERIN", "hunter2!")
	if err != nil {
		t.Fatalf("login by username: %v", err)
	}
	if token == "" || user.Username != "erin" {
		t.Fatalf("unexpected login result: token=%q user=%q", token, user.Username)
	}

	// Email match.
	if _, _, err := env.auth.Login("Erin@Example.com", "hunter2!"); err != nil {
		t.Fatalf("login by email: %v", err)
	}

	// Wrong password and unknown identifier yield the same generic error.
	if _, _, err := env.auth.Login("erin", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := env.auth.Login("nobody", "hunter2!"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: err = %v, want ErrInvalidCredentials", err)
	}
}
