package handler

import (
	"strconv"

	"Folks_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	svc *service.RoleService
}

type RoleCreateReq struct {
	Name string `json:"name" binding:"required,min=2"`
}

func NewRoleHandler(svc *service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindingErrors(err)...)
		return
	}

	role, err := h.svc.CreateRole(req.Name)
	if err != nil {
		FailErr(c, err)
		return
	}
	OK(c, role)
}

func (h *RoleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	roles, meta, err := h.svc.ListRoles(page)
	if err != nil {
		FailErr(c, err)
		return
	}
	OKWithMeta(c, roles, meta)
}
