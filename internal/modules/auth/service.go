package auth

import (
	"errors"
	"time"

	"github.com/sevenxleaks/core/internal/models"
	jwtpkg "github.com/sevenxleaks/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errEmailTaken         = errors.New("email already registered")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Login verifies credentials and issues a session token. All failure modes
// collapse into errInvalidCredentials; the caller must not leak which part
// was wrong.
func (s *Service) Login(email, password, ip string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	u.LastLoginTime = &now

	token, err := jwtpkg.Sign(u.ID, u.VIP, u.IsAdmin, jwtpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// Register creates an account. The email must be unused.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&count)
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.UserModel{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hash),
		VIP:      dto.VIP,
		IsAdmin:  dto.IsAdmin,
	}
	return &u, s.db.Create(&u).Error
}

// GetByID fetches a user; nil when absent.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
