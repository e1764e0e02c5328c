package database

import (
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedAdmin(db, &cfg.Admin); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.Lesson{},
		&model.Quiz{},
		&model.Question{},
		&model.AnswerOption{},
		&model.QuizAttempt{},
		&model.StudentAnswer{},
		&model.LessonProgress{},
		&model.Enrollment{},
	)
}

// SeedAdmin creates the bootstrap admin account, but only when the users
// table is empty. No other codepath creates an admin.
func SeedAdmin(db *gorm.DB, seed *config.AdminSeedConfig) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := seed.Password
	if password == "" {
		password = "ChangeMe!123"
		log.Println("LMS_ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:  strings.ToLower(seed.Username),
		Email:     strings.ToLower(seed.Email),
		Password:  string(hashed),
		Role:      model.Admin,
		FirstName: "System",
		LastName:  "Administrator",
		Country:   "N/A",
		LastLogin: time.Now(),
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded bootstrap admin account %q", admin.Username)
	return nil
}
