package model

import "golang.org/x/crypto/bcrypt"

// User is an API login, not a bakery employee record.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	FullName string `gorm:"type:varchar(255)" json:"full_name"`
	Role     string `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

const (
	UserRoleAdmin = "admin"
	UserRoleStaff = "staff"
)

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
