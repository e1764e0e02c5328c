package repository

import (
	"lms_backend/internal/model"
	"strings"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	// Identity columns are normalized on write so the unique indexes act as
	// the case-insensitive duplicate check.
	user.Username = strings.ToLower(user.Username)
	user.Email = strings.ToLower(user.Email)
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", strings.ToLower(username)).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	return &user, err
}

// FindByIdentifier matches username OR email, case-insensitively.
func (r *UserRepository) FindByIdentifier(identifier string) (*model.User, error) {
	var user model.User
	id := strings.ToLower(identifier)
	err := r.DB.Where("username = ? OR email = ?", id, id).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateRole(id string, role model.UserRole) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *UserRepository) UpdateLastLogin(id string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).
		Error
}

func (r *UserRepository) Delete(id string) error {
	return r.DB.Delete(&model.User{}, "id = ?", id).Error
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at").Find(&users).Error
	return users, err
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}
