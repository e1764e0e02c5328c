package service

import (
	"context"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/monitoring"
	"time"
)

// EnrollmentService adds courses to a user's enrolled set. Enroll keeps the
// asynchronous caller contract of a remote call (context in, boolean outcome
// out) even though the backing write is local, so a real remote enrollment
// can be swapped in without an interface change.
type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll resolves false without effect when there is no authenticated user.
// Repeated enrollment appends another row; dedup is intentionally absent.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	exists, err := s.CourseRepo.Exists(courseID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, util.ErrCourseNotFound
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	err = s.EnrollmentRepo.Create(&model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	})
	if err != nil {
		return false, err
	}

	monitoring.EnrollmentCounter.Inc()
	return true, nil
}

// EnrolledCourses lists the caller's enrolled courses in enrollment order.
func (s *EnrollmentService) EnrolledCourses(userID string) ([]model.Course, error) {
	ids, err := s.EnrollmentRepo.CourseIDsByUser(userID)
	if err != nil {
		return nil, err
	}

	// Deduplicate for display; the underlying rows keep every enrollment.
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	return s.CourseRepo.FindByIDs(unique)
}
