package service

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(t *testing.T, env *testEnv, username string) *model.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	admin := &model.User{
		Username:  username,
		Email:     username + "@lms.local",
		Password:  string(hashed),
		Role:      model.Admin,
		FirstName: "System",
		LastName:  "Administrator",
		Country:   "N/A",
		LastLogin: time.Now(),
	}
	if err := env.db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestUpdateRoleInvariants(t *testing.T) {
	env := newTestEnv(t)
	admin := seedAdminUser(t, env, "root")
	otherAdmin := seedAdminUser(t, env, "root2")

	student, err := env.auth.CreateUser(studentInput("sam"))
	if err != nil {
		t.Fatalf("create student: %v", err)
	}

	if err := env.admin.UpdateRole(admin.ID, admin.ID, model.Student); !errors.Is(err, util.ErrSelfTarget) {
		t.Fatalf("self target: err = %v, want ErrSelfTarget", err)
	}
	if err := env.admin.UpdateRole(admin.ID, otherAdmin.ID, model.Student); !errors.Is(err, util.ErrAdminImmutable) {
		t.Fatalf("admin target: err = %v, want ErrAdminImmutable", err)
	}
	if err := env.admin.UpdateRole(admin.ID, student.ID, model.Admin); !errors.Is(err, util.ErrAdminPromotion) {
		t.Fatalf("promote to admin: err = %v, want ErrAdminPromotion", err)
	}
	if err := env.admin.UpdateRole(admin.ID, "missing-id", model.Instructor); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("missing target: err = %v, want ErrUserNotFound", err)
	}

	// All of the failures above must leave roles untouched.
	var check model.User
	env.db.First(&check, "id = ?", otherAdmin.ID)
	if check.Role != model.Admin {
		t.Fatalf("admin role mutated to %q", check.Role)
	}

	if err := env.admin.UpdateRole(admin.ID, student.ID, model.Instructor); err != nil {
		t.Fatalf("valid role change: %v", err)
	}
	var updated model.User
	env.db.First(&updated, "id = ?", student.ID)
	if updated.Role != model.Instructor {
		t.Fatalf("role = %q, want instructor", updated.Role)
	}
}

func TestDeleteUserCascadesRecords(t *testing.T) {
	env := newTestEnv(t)
	admin := seedAdminUser(t, env, "root")

	student, err := env.auth.CreateUser(studentInput("tina"))
	if err != nil {
		t.Fatalf("create student: %v", err)
	}

	course, module, lesson, quiz := buildCourseTree(t, env)
	_ = module

	if err := env.progress.MarkLessonComplete(student.ID, lesson.ID); err != nil {
		t.Fatalf("mark lesson: %v", err)
	}
	if _, err := env.progress.RecordAttempt(student.ID, quiz.ID, nil); err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if ok, err := env.enrollment.Enroll(context.Background(), student.ID, course.ID); err != nil || !ok {
		t.Fatalf("enroll: ok=%v err=%v", ok, err)
	}

	if err := env.admin.DeleteUser(admin.ID, admin.ID); !errors.Is(err, util.ErrSelfTarget) {
		t.Fatalf("self delete: err = %v, want ErrSelfTarget", err)
	}

	if err := env.admin.DeleteUser(admin.ID, student.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var users, progress, attempts, enrollments int64
	env.db.Model(&model.User{}).Where("id = ?", student.ID).Count(&users)
	env.db.Model(&model.LessonProgress{}).Where("user_id = ?", student.ID).Count(&progress)
	env.db.Model(&model.QuizAttempt{}).Where("user_id = ?", student.ID).Count(&attempts)
	env.db.Model(&model.Enrollment{}).Where("user_id = ?", student.ID).Count(&enrollments)
	if users != 0 || progress != 0 || attempts != 0 || enrollments != 0 {
		t.Fatalf("leftover rows after delete: users=%d progress=%d attempts=%d enrollments=%d",
			users, progress, attempts, enrollments)
	}
}

func TestDeleteUserProtectsAdmins(t *testing.T) {
	env := newTestEnv(t)
	admin := seedAdminUser(t, env, "root")
	otherAdmin := seedAdminUser(t, env, "root2")

	if err := env.admin.DeleteUser(admin.ID, otherAdmin.ID); !errors.Is(err, util.ErrAdminImmutable) {
		t.Fatalf("err = %v, want ErrAdminImmutable", err)
	}
	if err := env.admin.DeleteUser(admin.ID, "missing-id"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
