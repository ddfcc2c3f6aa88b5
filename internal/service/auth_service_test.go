package service

import (
	"testing"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/pkg/jwt"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	return NewAuthService(repository.NewUserRepo(db)), db
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	u := &model.User{Username: "admin", FullName: "Administrator", Role: model.UserRoleAdmin, IsActive: true}
	require.NoError(t, svc.CreateUser(u, "admin123"))

	token, user, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "admin", user.Username)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, model.UserRoleAdmin, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	u := &model.User{Username: "staff1", IsActive: true}
	require.NoError(t, svc.CreateUser(u, "secret"))

	_, _, err := svc.Login("staff1", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, db := newAuthService(t)

	u := &model.User{Username: "former", IsActive: true}
	require.NoError(t, svc.CreateUser(u, "secret"))
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", u.ID).
		Update("is_active", false).Error)

	_, _, err := svc.Login("former", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDefaultsToStaffRole(t *testing.T) {
	svc, _ := newAuthService(t)

	u := &model.User{Username: "newbie", IsActive: true}
	require.NoError(t, svc.CreateUser(u, "secret"))
	require.Equal(t, model.UserRoleStaff, u.Role)
	require.NotEqual(t, "secret", u.Password, "password must be stored hashed")
}
