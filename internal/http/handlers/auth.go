package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yuvrajghadi/thakkar-backend/internal/auth"
	"github.com/yuvrajghadi/thakkar-backend/internal/config"
	"github.com/yuvrajghadi/thakkar-backend/internal/domain/user"
	"github.com/yuvrajghadi/thakkar-backend/internal/repo/mongodb"
	"github.com/yuvrajghadi/thakkar-backend/internal/security"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type AuthHandler struct {
	users UserReader
	jwt   *auth.Manager
}

func NewAuthHandler(users UserReader, jwtManager *auth.Manager) *AuthHandler {
	return &AuthHandler{
		users: users,
		jwt:   jwtManager,
	}
}

// No presence validation here: an absent email or password simply
// fails the lookup or the hash compare below.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email+password for a session token. The response
// carries the role in plaintext alongside the token so the dashboard
// can branch on it without decoding the JWT.
//
// The error messages distinguish an unknown email from a wrong
// password. That mirrors the production API and is a deliberate UX
// choice for a single-admin site.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req, "Invalid request body") {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	foundUser, err := h.users.GetByEmail(cctx, req.Email)

	if err != nil {
		if errors.Is(err, mongodb.ErrUserNotFound) {
			RespondError(ctx, http.StatusUnauthorized, "Invalid email")
			return
		}

		RespondStoreFailure(ctx, "Failed to log in", err)
		return
	}

	err = security.CheckPassword(foundUser.Password, req.Password)

	if err != nil {
		RespondError(ctx, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.jwt.GenerateToken(foundUser.ID.Hex(), foundUser.Role)

	if err != nil {
		RespondStoreFailure(ctx, "Could not generate token", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"role":    foundUser.Role,
	})
}
