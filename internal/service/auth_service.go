package service

import (
	"context"
	"errors"
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"regexp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Matches local-part "@" domain "." tld, nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const blacklistPrefix = "jwt:blacklist:"

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

// RegisterInput carries the profile fields a new account is created from.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Role       model.UserRole
	FirstName  string
	MiddleName string
	LastName   string
	Gender     string
	AgeRange   string
	Country    string
}

// ValidateProfile applies the field, email-shape and duplicate-identity
// checks shared by self-registration and admin user creation.
func (s *AuthService) ValidateProfile(in *RegisterInput) error {
	missing := []string{}
	for field, value := range map[string]string{
		"username":  in.Username,
		"email":     in.Email,
		"password":  in.Password,
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"role":      string(in.Role),
		"country":   in.Country,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", util.ErrValidation, strings.Join(missing, ", "))
	}

	if !emailPattern.MatchString(in.Email) {
		return fmt.Errorf("%w: invalid email format", util.ErrValidation)
	}

	if in.Role != model.Instructor && in.Role != model.Student {
		return fmt.Errorf("%w: role must be instructor or student", util.ErrValidation)
	}

	if _, err := s.UserRepo.FindByUsername(in.Username); err == nil {
		return util.ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.UserRepo.FindByEmail(in.Email); err == nil {
		return util.ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}

// CreateUser validates and persists a new account without logging it in.
func (s *AuthService) CreateUser(in *RegisterInput) (*model.User, error) {
	if err := s.ValidateProfile(in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:   in.Username,
		Email:      in.Email,
		Password:   string(hashed),
		Role:       in.Role,
		FirstName:  in.FirstName,
		MiddleName: in.MiddleName,
		LastName:   in.LastName,
		Gender:     in.Gender,
		AgeRange:   in.AgeRange,
		Country:    in.Country,
		LastLogin:  time.Now(),
	}

	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates the account and immediately logs it in.
func (s *AuthService) Register(in *RegisterInput) (*model.User, string, error) {
	user, err := s.CreateUser(in)
	if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login matches username OR email case-insensitively. Every mismatch yields
// the same generic error so identities cannot be probed.
func (s *AuthService) Login(identifier, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByIdentifier(identifier)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout blacklists the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if s.Redis == nil || claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, blacklistPrefix+claims.ID, "1", ttl).Err()
}

func (s *AuthService) CurrentUser(claims *util.Claims) (*model.User, error) {
	if claims == nil {
		return nil, util.ErrUserNotFound
	}
	user, err := s.UserRepo.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}
