package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/go-food-store/internal/auth"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/logger"
	"github.com/safar/go-food-store/internal/store"
	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgServerError        = "Server error"
)

// Login checks the submitted credentials against the admin table. Unknown
// usernames and wrong passwords get the same 401 answer.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError, msgServerError, err)
		return
	}

	admin, err := store.GetAdminByUsername(c.Request.Context(), h.db, req.Username)
	if err != nil {
		if errors.Is(err, database.ErrAdminNotFound) {
			h.rejectLogin(c, req.Username)
			return
		}
		fail(c, http.StatusInternalServerError, msgServerError, err)
		return
	}

	if err := auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		h.rejectLogin(c, req.Username)
		return
	}

	token, err := h.tokens.Issue(admin.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgServerError, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token})
}

func (h *Handler) rejectLogin(c *gin.Context, username string) {
	logger.FromContext(c).Warn("Rejected admin login", zap.String("username", username))
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgInvalidCredentials})
}
