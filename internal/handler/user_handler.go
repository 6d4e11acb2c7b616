package handler

import (
	"Folks_Community/internal/middleware"
	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type SignupReq struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SigninReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindingErrors(err)...)
		return
	}

	user, token, err := h.svc.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		FailErr(c, err)
		return
	}

	setAccessToken(c, token)
	OKWithMeta(c, identityData(user), gin.H{"access_token": token})
}

func (h *UserHandler) Signin(c *gin.Context) {
	var req SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindingErrors(err)...)
		return
	}

	user, token, err := h.svc.Signin(req.Email, req.Password)
	if err != nil {
		FailErr(c, err)
		return
	}

	setAccessToken(c, token)
	OKWithMeta(c, identityData(user), gin.H{"access_token": token})
}

// Me echoes the caller's resolved identity.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		Fail(c, pkg.NotSignedIn())
		return
	}
	OK(c, identityData(user))
}

func setAccessToken(c *gin.Context, token string) {
	c.SetCookie(middleware.AccessTokenCookie, token, 0, "/", "", false, true)
}

func identityData(user *model.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	}
}
