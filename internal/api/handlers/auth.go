package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup, login, and logout
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /auth/signup
// @Summary Create an account
// @Description Register a new user; the refId must match the shared secret for the requested role. Team lead signups also create the lead's team.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body auth.SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{} "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"user": user})
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify credentials and set the HTTP-only session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Logged in"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(h.authService.CookieName(), token, h.authService.CookieMaxAge(), "/", "", h.authService.CookieSecure(), true)
	respondSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Expire the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.authService.CookieName(), "", -1, "/", "", h.authService.CookieSecure(), true)
	respondSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}
