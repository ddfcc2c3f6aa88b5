package repository

import (
	"go-bakery-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(u *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindAll() ([]model.User, error)
	Update(u *model.User) (int64, error)
	Delete(id uint) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(u *model.User) error {
	return r.db.Create(u).Error
}

func (r *userRepo) FindByID(id uint) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "id = ?", id).Error
	return &u, err
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "username = ?", username).Error
	return &u, err
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("username ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) Update(u *model.User) (int64, error) {
	res := r.db.Model(&model.User{}).Where("id = ?", u.ID).
		Select("full_name", "role", "is_active", "password").Updates(u)
	return res.RowsAffected, res.Error
}

func (r *userRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}
