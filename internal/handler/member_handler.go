package handler

import (
	"Folks_Community/internal/middleware"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.MemberService
}

type MemberCreateReq struct {
	Community string `json:"community" binding:"required"`
	User      string `json:"user" binding:"required"`
	Role      string `json:"role"`
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func (h *MemberHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, pkg.NotSignedIn())
		return
	}

	var req MemberCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindingErrors(err)...)
		return
	}

	member, err := h.svc.AddMember(user.ID, req.Community, req.User, req.Role)
	if err != nil {
		FailErr(c, err)
		return
	}
	OK(c, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, pkg.NotSignedIn())
		return
	}

	if err := h.svc.RemoveMember(user.ID, c.Param("id")); err != nil {
		FailErr(c, err)
		return
	}
	OKEmpty(c)
}
