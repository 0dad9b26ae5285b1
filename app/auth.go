package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nzsnyn/bejalen/models"
)

const passwordCost = 12

type AdminInput struct {
	Username string
	Password string
	Email    string
	Name     string
	Role     string
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate checks username and password against the stored bcrypt hash.
// Unknown users and wrong passwords get the same message.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, validationError("Username dan password harus diisi")
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, unauthorizedError("Username atau password salah")
	}
	if err != nil {
		return nil, err
	}
	if !admin.IsActive {
		return nil, unauthorizedError("Akun tidak aktif")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, unauthorizedError("Username atau password salah")
	}
	return &admin, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CreateAdmin stores a new active admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, in AdminInput) (*models.Admin, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, validationError("Username dan password harus diisi")
	}
	if in.Role == "" {
		in.Role = "admin"
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Where("username = ?", in.Username).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, validationError("Admin %q already exists", in.Username)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	admin := models.Admin{
		ID:       uuid.NewString(),
		Username: in.Username,
		Password: hash,
		Email:    in.Email,
		Name:     in.Name,
		Role:     in.Role,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
