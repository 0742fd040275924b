package handlers

import (
	"net/http"

	"github.com/pwnz15/backend-sld/services/auth"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates a new back-office account.
func RegisterHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input auth.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		resp, err := svc.Register(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler authenticates a user and issues a token.
func LoginHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input auth.LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		resp, err := svc.Login(c.Request.Context(), input)
		if err != nil {
			// Credential failures come back as 401, not 400.
			utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", "invalid credentials")
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetCurrentUserHandler returns the authenticated user's account.
func GetCurrentUserHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		user, err := svc.GetUser(c.Request.Context(), userID.(string))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GetAllUsersHandler lists every account.
func GetAllUsersHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.GetAllUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
