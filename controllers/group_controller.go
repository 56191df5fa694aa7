package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// GroupController serves one group's membership endpoints; construct one per
// group (manager, delivery crew) and bind each to its own route prefix.
type GroupController struct {
	Svc       *services.GroupService
	GroupName string
}

func NewGroupController(svc *services.GroupService, groupName string) *GroupController {
	return &GroupController{Svc: svc, GroupName: groupName}
}

type memberView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toMemberView(u *entity.User) memberView {
	return memberView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// GET /groups/<group>/users
func (gc *GroupController) List(c *gin.Context) {
	users, err := gc.Svc.ListMembers(utils.CurrentRole(c), gc.GroupName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	items := make([]memberView, 0, len(users))
	for i := range users {
		items = append(items, toMemberView(&users[i]))
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /groups/<group>/users. The body carries the username.
func (gc *GroupController) Add(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, already, err := gc.Svc.AddMember(utils.CurrentRole(c), gc.GroupName, req.Username)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if already {
		resp.OK(c, toMemberView(user))
		return
	}
	resp.Created(c, toMemberView(user))
}

// DELETE /groups/<group>/users/:id
func (gc *GroupController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := gc.Svc.RemoveMember(utils.CurrentRole(c), gc.GroupName, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}
