package service

import (
	"errors"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/jwt"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Login(username, password string) (string, *model.User, error)
	CreateUser(u *model.User, plainPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive || !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.FullName, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) CreateUser(u *model.User, plainPassword string) error {
	if err := u.SetPassword(plainPassword); err != nil {
		return err
	}
	if u.Role == "" {
		u.Role = model.UserRoleStaff
	}
	return s.userRepo.Create(u)
}
