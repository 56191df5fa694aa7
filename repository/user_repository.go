package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// UserRepository owns the users table and the user_groups join table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Groups").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ---------------- Role directory ----------------

func (r *UserRepository) GroupByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *UserRepository) ListGroupMembers(groupName string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("g.name = ?", groupName).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) IsInGroup(userID uint, groupName string) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups ug").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("ug.user_id = ? AND g.name = ?", userID, groupName).
		Count(&count).Error
	return count > 0, err
}

// AddToGroup is a no-op when the user is already a member.
func (r *UserRepository) AddToGroup(user *entity.User, groupName string) error {
	in, err := r.IsInGroup(user.ID, groupName)
	if err != nil || in {
		return err
	}
	g, err := r.GroupByName(groupName)
	if err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Append(g)
}

// RemoveFromGroup is a no-op when the user is not a member.
func (r *UserRepository) RemoveFromGroup(user *entity.User, groupName string) error {
	g, err := r.GroupByName(groupName)
	if err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Delete(g)
}
