package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/pkg/response"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// Register POST /api/register {email, password, name}
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,pwd"`
		Name     string `json:"name"`
	}
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "account created", gin.H{
		"token":      res.Token,
		"expires_at": res.Expires,
		"user":       res.User,
	})
}

// Login POST /api/login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "logged in", gin.H{
		"token":      res.Token,
		"expires_at": res.Expires,
		"user":       res.User,
	})
}

// Me GET /api/profile (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Auth.GetProfile(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"user": u})
}

// UpdateMe PUT /api/profile {name, avatar_url} (auth required)
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req application.UpdateProfileInput
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Auth.UpdateProfile(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "profile updated", gin.H{"user": u})
}

// ResetInit POST /api/password-reset/request {email}
// Always returns 200 so the endpoint cannot be used to probe for accounts.
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "if the address exists, a reset email is on its way", nil)
}

// ResetConfirm POST /api/password-reset/confirm {token, new_password}
func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,pwd"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Auth.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "password updated", nil)
}
