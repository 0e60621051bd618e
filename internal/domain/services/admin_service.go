package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
)

var (
	// ErrAdminNotFound is returned when an id or email resolves to no account.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrEmailExists is returned when creating an account whose email is taken.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned on a login password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InterfaceAdminService defines the admin account service contract
type InterfaceAdminService interface {
	CreateAdmin(admin *models.Admin) error
	GetAllAdmins() ([]models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByEmail(email string) (*models.Admin, error)
	UpdateAdmin(id uint, replacement *models.Admin) (*models.Admin, error)
	DeleteAdmin(id uint) error
	CheckPassword(password, hash string) bool
}

// AdminService mediates every access to the admin table
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CheckPassword verifies a plaintext password against a stored hash
func (s *AdminService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// 2 CreateAdmin persists a new admin account. The password is hashed before
// the row is written; the plaintext is never stored. The email pre-check is
// advisory only, the unique index on email is the actual guarantee against
// two concurrent creates with the same address.
func (s *AdminService) CreateAdmin(admin *models.Admin) error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}
	admin.Password = string(hashedPassword)

	return s.DB.Create(admin).Error
}

// 3 GetAllAdmins returns every admin account in store order
func (s *AdminService) GetAllAdmins() ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	if err := s.DB.Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// 4 GetAdminByID returns the admin with the given id. Absence is a valid
// outcome and is reported as a nil admin with a nil error.
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// 5 GetAdminByEmail returns the admin with the given email
func (s *AdminService) GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// 6 UpdateAdmin overwrites every mutable field of an existing account from
// the replacement payload. The password is the one exception: it is rehashed
// and replaced only when the payload supplies a non-empty value, otherwise
// the stored hash is left untouched.
func (s *AdminService) UpdateAdmin(id uint, replacement *models.Admin) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	admin.FirstName = replacement.FirstName
	admin.LastName = replacement.LastName
	admin.Email = replacement.Email
	admin.Role = replacement.Role
	admin.Image = replacement.Image

	if replacement.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(replacement.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %v", err)
		}
		admin.Password = string(hashedPassword)
	}

	if err := s.DB.Save(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// 7 DeleteAdmin removes the admin row by id. Deleting an id that does not
// exist is a silent no-op, matching the store's delete-by-id semantics.
func (s *AdminService) DeleteAdmin(id uint) error {
	return s.DB.Delete(&models.Admin{}, id).Error
}
