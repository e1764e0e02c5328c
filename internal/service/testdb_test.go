package service

import (
	"lms_backend/internal/config"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "unit-test-secret-0123456789abcdef",
			ExpireTime: time.Hour,
		},
	}
}

type testEnv struct {
	db         *gorm.DB
	auth       *AuthService
	admin      *UserAdminService
	content    *ContentService
	progress   *ProgressService
	enrollment *EnrollmentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	auth := NewAuthService(userRepo, nil, testConfig())

	return &testEnv{
		db:         db,
		auth:       auth,
		admin:      NewUserAdminService(userRepo, auth, db),
		content:    NewContentService(courseRepo, moduleRepo, lessonRepo, quizRepo, questionRepo, db),
		progress:   NewProgressService(quizRepo, moduleRepo, lessonRepo, courseRepo, attemptRepo, progressRepo),
		enrollment: NewEnrollmentService(enrollmentRepo, courseRepo),
	}
}

func studentInput(username string) *RegisterInput {
	return &RegisterInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hunter2!",
		Role:      "student",
		FirstName: "Test",
		LastName:  "Student",
		Country:   "Zambia",
	}
}
