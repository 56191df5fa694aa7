package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/authz"
	"backend/repository"

	"gorm.io/gorm"
)

// GroupService manages the role directory: who is in Manager and who is in
// Delivery Crew. Everything here is manager-gated.
type GroupService struct {
	UserRepo *repository.UserRepository
}

func NewGroupService(repo *repository.UserRepository) *GroupService {
	return &GroupService{UserRepo: repo}
}

func (s *GroupService) ListMembers(role authz.Role, groupName string) ([]entity.User, error) {
	if !authz.Can(role, authz.OpGroupManage) {
		return nil, apperr.ErrPermission
	}
	return s.UserRepo.ListGroupMembers(groupName)
}

// AddMember puts a user (by username) into a group. Adding someone already
// in the group is a no-op success; the returned flag tells the two apart.
func (s *GroupService) AddMember(role authz.Role, groupName, username string) (*entity.User, bool, error) {
	if !authz.Can(role, authz.OpGroupManage) {
		return nil, false, apperr.ErrPermission
	}
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.NotFoundf("user %q", username)
		}
		return nil, false, err
	}

	in, err := s.UserRepo.IsInGroup(user.ID, groupName)
	if err != nil {
		return nil, false, err
	}
	if in {
		return user, true, nil
	}
	if err := s.UserRepo.AddToGroup(user, groupName); err != nil {
		return nil, false, err
	}
	return user, false, nil
}

// RemoveMember takes a user (by id) out of a group. Removing a non-member is
// a no-op success, mirroring the idempotent add.
func (s *GroupService) RemoveMember(role authz.Role, groupName string, userID uint) error {
	if !authz.Can(role, authz.OpGroupManage) {
		return apperr.ErrPermission
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("user %d", userID)
		}
		return err
	}
	return s.UserRepo.RemoveFromGroup(user, groupName)
}
