package handler

import (
	"net/http"
	"strconv"

	"Folks_Community/internal/middleware"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name string `json:"name" binding:"required,min=2"`
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, pkg.NotSignedIn())
		return
	}

	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindingErrors(err)...)
		return
	}

	community, err := h.svc.CreateCommunity(user.ID, req.Name)
	if err != nil {
		FailErr(c, err)
		return
	}
	OK(c, community)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.ListCommunities(page)
	if err != nil {
		FailErr(c, err)
		return
	}
	OKWithMeta(c, list, meta)
}

// ListScoped fans out GET /community/:id/:sub to the members roster,
// the caller's owned communities, or the caller's joined communities.
func (h *CommunityHandler) ListScoped(c *gin.Context) {
	id, sub := c.Param("id"), c.Param("sub")
	switch {
	case id == "me" && sub == "owner":
		h.ListOwned(c)
	case id == "me" && sub == "member":
		h.ListJoined(c)
	case sub == "members":
		h.ListMembers(c)
	default:
		c.Status(http.StatusNotFound)
	}
}

func (h *CommunityHandler) ListMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.ListCommunityMembers(c.Param("id"), page)
	if err != nil {
		FailErr(c, err)
		return
	}
	OKWithMeta(c, list, meta)
}

func (h *CommunityHandler) ListOwned(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, pkg.NotSignedIn())
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.ListOwned(user.ID, page)
	if err != nil {
		FailErr(c, err)
		return
	}
	OKWithMeta(c, list, meta)
}

func (h *CommunityHandler) ListJoined(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, pkg.NotSignedIn())
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.ListJoined(user.ID, page)
	if err != nil {
		FailErr(c, err)
		return
	}
	OKWithMeta(c, list, meta)
}
