package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupEndpoints(t *testing.T) {
	r, db := setupRouter(t, true)

	_, managerTok := seedUser(t, db, "manny", true)
	carl, _ := seedUser(t, db, "carl", false)
	_, aliceTok := seedUser(t, db, "alice", false)

	t.Run("customer cannot touch the directory", func(t *testing.T) {
		rec := perform(r, http.MethodGet, "/groups/delivery-crew/users", aliceTok, nil)
		mustStatus(t, rec, http.StatusForbidden)

		rec = perform(r, http.MethodPost, "/groups/manager/users", aliceTok, jsonBody("username", "alice"))
		mustStatus(t, rec, http.StatusForbidden)
	})

	t.Run("add a member", func(t *testing.T) {
		rec := perform(r, http.MethodPost, "/groups/delivery-crew/users", managerTok, jsonBody("username", "carl"))
		mustStatus(t, rec, http.StatusCreated)

		var data struct {
			Username string `json:"username"`
		}
		decodeData(t, rec, &data)
		assert.Equal(t, "carl", data.Username)
	})

	t.Run("adding again reports the existing membership", func(t *testing.T) {
		rec := perform(r, http.MethodPost, "/groups/delivery-crew/users", managerTok, jsonBody("username", "carl"))
		mustStatus(t, rec, http.StatusOK)
	})

	t.Run("unknown username is a not-found", func(t *testing.T) {
		rec := perform(r, http.MethodPost, "/groups/delivery-crew/users", managerTok, jsonBody("username", "nobody"))
		mustStatus(t, rec, http.StatusNotFound)
	})

	t.Run("list members", func(t *testing.T) {
		rec := perform(r, http.MethodGet, "/groups/delivery-crew/users", managerTok, nil)
		mustStatus(t, rec, http.StatusOK)

		var data struct {
			Items []struct {
				Username string `json:"username"`
			} `json:"items"`
		}
		decodeData(t, rec, &data)
		require.Len(t, data.Items, 1)
		assert.Equal(t, "carl", data.Items[0].Username)
	})

	t.Run("membership grants the crew role", func(t *testing.T) {
		repo := db.Preload("Groups")
		var u entity.User
		require.NoError(t, repo.First(&u, carl.ID).Error)
		require.Len(t, u.Groups, 1)
		assert.Equal(t, entity.GroupDeliveryCrew, u.Groups[0].Name)
	})

	t.Run("remove a member", func(t *testing.T) {
		rec := perform(r, http.MethodDelete, fmt.Sprintf("/groups/delivery-crew/users/%d", carl.ID), managerTok, nil)
		mustStatus(t, rec, http.StatusOK)

		rec = perform(r, http.MethodGet, "/groups/delivery-crew/users", managerTok, nil)
		mustStatus(t, rec, http.StatusOK)
		var data struct {
			Items []struct {
				Username string `json:"username"`
			} `json:"items"`
		}
		decodeData(t, rec, &data)
		assert.Empty(t, data.Items)
	})

	t.Run("manager group is separate", func(t *testing.T) {
		rec := perform(r, http.MethodPost, "/groups/manager/users", managerTok, jsonBody("username", "carl"))
		mustStatus(t, rec, http.StatusCreated)

		rec = perform(r, http.MethodGet, "/groups/manager/users", managerTok, nil)
		mustStatus(t, rec, http.StatusOK)
		var data struct {
			Items []struct {
				Username string `json:"username"`
			} `json:"items"`
		}
		decodeData(t, rec, &data)
		require.Len(t, data.Items, 1)
		assert.Equal(t, "carl", data.Items[0].Username)
	})
}
