package services_test

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/authz"
	"backend/repository"
	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMembership(t *testing.T) {
	db := setupDB(t)
	svc := services.NewGroupService(repository.NewUserRepository(db))

	alice := newUser(t, db, "alice", false)

	t.Run("everything is manager-gated", func(t *testing.T) {
		_, err := svc.ListMembers(authz.RoleCustomer, entity.GroupDeliveryCrew)
		assert.ErrorIs(t, err, apperr.ErrPermission)
		_, _, err = svc.AddMember(authz.RoleDeliveryCrew, entity.GroupDeliveryCrew, "alice")
		assert.ErrorIs(t, err, apperr.ErrPermission)
		assert.ErrorIs(t, svc.RemoveMember(authz.RoleCustomer, entity.GroupDeliveryCrew, alice.ID), apperr.ErrPermission)
	})

	t.Run("unknown username is a not-found", func(t *testing.T) {
		_, _, err := svc.AddMember(authz.RoleManager, entity.GroupDeliveryCrew, "nobody")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("add, then add again as a no-op", func(t *testing.T) {
		user, already, err := svc.AddMember(authz.RoleManager, entity.GroupDeliveryCrew, "alice")
		require.NoError(t, err)
		assert.False(t, already)
		assert.Equal(t, alice.ID, user.ID)

		_, already, err = svc.AddMember(authz.RoleManager, entity.GroupDeliveryCrew, "alice")
		require.NoError(t, err)
		assert.True(t, already)

		members, err := svc.ListMembers(authz.RoleManager, entity.GroupDeliveryCrew)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "alice", members[0].Username)
	})

	t.Run("membership changes the resolved role", func(t *testing.T) {
		repo := repository.NewUserRepository(db)
		u, err := repo.FindByID(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.RoleDeliveryCrew, authz.Resolve(u.IsStaff, u.GroupNames()))
	})

	t.Run("remove, then remove again as a no-op", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(authz.RoleManager, entity.GroupDeliveryCrew, alice.ID))
		require.NoError(t, svc.RemoveMember(authz.RoleManager, entity.GroupDeliveryCrew, alice.ID))

		members, err := svc.ListMembers(authz.RoleManager, entity.GroupDeliveryCrew)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("groups are independent", func(t *testing.T) {
		_, _, err := svc.AddMember(authz.RoleManager, entity.GroupManager, "alice")
		require.NoError(t, err)

		crew, err := svc.ListMembers(authz.RoleManager, entity.GroupDeliveryCrew)
		require.NoError(t, err)
		assert.Empty(t, crew)

		managers, err := svc.ListMembers(authz.RoleManager, entity.GroupManager)
		require.NoError(t, err)
		assert.Len(t, managers, 1)
	})
}
