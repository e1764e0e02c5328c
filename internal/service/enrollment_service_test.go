package service

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"testing"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)
	student, err := env.auth.CreateUser(studentInput("eli"))
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	course, _, _, _ := buildCourseTree(t, env)

	ok, err := env.enrollment.Enroll(context.Background(), "", course.ID)
	if err != nil || ok {
		t.Fatalf("unauthenticated: ok=%v err=%v, want false,nil", ok, err)
	}

	if _, err := env.enrollment.Enroll(context.Background(), student.ID, "missing"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("missing course: err = %v, want ErrCourseNotFound", err)
	}

	ok, err = env.enrollment.Enroll(context.Background(), student.ID, course.ID)
	if err != nil || !ok {
		t.Fatalf("enroll: ok=%v err=%v", ok, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if ok, err := env.enrollment.Enroll(ctx, student.ID, course.ID); ok || !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled ctx: ok=%v err=%v", ok, err)
	}
}

func TestEnrollAppendsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	student, err := env.auth.CreateUser(studentInput("ray"))
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	course, _, _, _ := buildCourseTree(t, env)

	for i := 0; i < 3; i++ {
		if ok, err := env.enrollment.Enroll(context.Background(), student.ID, course.ID); err != nil || !ok {
			t.Fatalf("enroll %d: ok=%v err=%v", i, ok, err)
		}
	}

	var rows int64
	env.db.Model(&model.Enrollment{}).Where("user_id = ?", student.ID).Count(&rows)
	if rows != 3 {
		t.Fatalf("enrollment rows = %d, want 3", rows)
	}

	// Display view collapses the repeats.
	courses, err := env.enrollment.EnrolledCourses(student.ID)
	if err != nil {
		t.Fatalf("enrolled courses: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != course.ID {
		t.Fatalf("courses = %+v, want the single course", courses)
	}
}
