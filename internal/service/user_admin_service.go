package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// UserAdminService implements the admin-only user management operations.
// Callers are already gated to the admin role by middleware; the invariants
// enforced here are the ones roles alone cannot express.
type UserAdminService struct {
	UserRepo *repository.UserRepository
	Auth     *AuthService
	DB       *gorm.DB
}

func NewUserAdminService(userRepo *repository.UserRepository, auth *AuthService, db *gorm.DB) *UserAdminService {
	return &UserAdminService{
		UserRepo: userRepo,
		Auth:     auth,
		DB:       db,
	}
}

func (s *UserAdminService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

// AddUser creates an account with register-grade validation but does not log
// the new user in. ValidateProfile already rejects the admin role, so no
// admin can be created here.
func (s *UserAdminService) AddUser(in *RegisterInput) (*model.User, error) {
	return s.Auth.CreateUser(in)
}

// UpdateRole changes a user's role. Admin accounts are immutable in role,
// there is no promotion path to admin, and admins cannot retarget themselves.
func (s *UserAdminService) UpdateRole(actorID, targetID string, newRole model.UserRole) error {
	if targetID == actorID {
		return util.ErrSelfTarget
	}
	if newRole == model.Admin {
		return util.ErrAdminPromotion
	}
	if newRole != model.Instructor && newRole != model.Student {
		return util.ErrValidation
	}

	target, err := s.UserRepo.FindByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if target.Role == model.Admin {
		return util.ErrAdminImmutable
	}

	return s.UserRepo.UpdateRole(targetID, newRole)
}

// DeleteUser removes an account and cascades deletion of its progress,
// attempt and enrollment records in one transaction.
func (s *UserAdminService) DeleteUser(actorID, targetID string) error {
	if targetID == actorID {
		return util.ErrSelfTarget
	}

	target, err := s.UserRepo.FindByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if target.Role == model.Admin {
		return util.ErrAdminImmutable
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.DeleteProgressByUser(tx, targetID); err != nil {
			return err
		}
		if err := repository.DeleteAttemptsByUser(tx, targetID); err != nil {
			return err
		}
		if err := repository.DeleteEnrollmentsByUser(tx, targetID); err != nil {
			return err
		}
		return tx.Delete(&model.User{}, "id = ?", targetID).Error
	})
}
