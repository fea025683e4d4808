package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mayurihegde/evently-backend/config"
	"github.com/mayurihegde/evently-backend/internal/organization"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid refresh token")
)

type Service struct {
	Repo    *Repository
	OrgRepo *organization.Repository
	Cfg     *config.Config
}

func NewService(repo *Repository, orgRepo *organization.Repository, cfg *config.Config) *Service {
	return &Service{Repo: repo, OrgRepo: orgRepo, Cfg: cfg}
}

// Register creates the organisation and its first organiser account in
// one transaction.
func (s *Service) Register(req RegisterRequest) (*User, error) {
	if _, err := s.Repo.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *User
	err = s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		org := &organization.Organization{Name: req.OrganizationName}
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		user = &User{
			Email:          req.Email,
			Password:       string(hashed),
			FullName:       req.FullName,
			OrganizationID: org.ID,
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *Service) Login(req LoginRequest) (*TokenResponse, error) {
	user, err := s.Repo.GetUserByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(req RefreshRequest) (*TokenResponse, error) {
	token, err := jwt.Parse(req.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.Cfg.JWTRefreshSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := s.Repo.GetUserByID(uint(userIDFloat))
	if err != nil {
		return nil, ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *Service) GetUserByID(id uint) (*User, error) {
	return s.Repo.GetUserByID(id)
}

func (s *Service) issueTokens(user *User) (*TokenResponse, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":         user.ID,
		"organization_id": user.OrganizationID,
		"iat":             now.Unix(),
		"exp":             now.Add(time.Duration(s.Cfg.JWTAccessTTLHours) * time.Hour).Unix(),
	})
	accessStr, err := access.SignedString([]byte(s.Cfg.JWTAccessSecret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(s.Cfg.JWTRefreshTTLHours) * time.Hour).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(s.Cfg.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		User:         *user,
	}, nil
}
