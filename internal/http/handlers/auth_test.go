package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yuvrajghadi/thakkar-backend/internal/auth"
	"github.com/yuvrajghadi/thakkar-backend/internal/domain/user"
	"github.com/yuvrajghadi/thakkar-backend/internal/http/handlers"
	"github.com/yuvrajghadi/thakkar-backend/internal/repo/mongodb"
	"github.com/yuvrajghadi/thakkar-backend/internal/security"
)

type fakeUserReader struct {
	getFn func(ctx context.Context, email string) (user.User, error)
}

func (f *fakeUserReader) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if f.getFn != nil {
		return f.getFn(ctx, email)
	}
	return user.User{}, mongodb.ErrUserNotFound
}

const testSecret = "test-secret"

func seededUser(t *testing.T, password string, role user.Role) user.User {
	t.Helper()

	hash, err := security.HashPassword(password)

	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	return user.User{
		ID:       primitive.NewObjectID(),
		Email:    "owner@example.com",
		Password: hash,
		Role:     role,
	}
}

func TestLogin(t *testing.T) {
	admin := seededUser(t, "correct horse", user.RoleAdmin)

	tests := []struct {
		name        string
		body        string
		users       *fakeUserReader
		wantStatus  int
		wantMessage string
	}{
		{
			name:  "unknown_email",
			body:  `{"email":"nobody@example.com","password":"whatever"}`,
			users: &fakeUserReader{},
			// the email-specific message is part of the API contract
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email",
		},
		{
			name: "wrong_password",
			body: `{"email":"owner@example.com","password":"wrong"}`,
			users: &fakeUserReader{
				getFn: func(ctx context.Context, email string) (user.User, error) {
					return admin, nil
				},
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid password",
		},
		{
			name: "success",
			body: `{"email":"owner@example.com","password":"correct horse"}`,
			users: &fakeUserReader{
				getFn: func(ctx context.Context, email string) (user.User, error) {
					return admin, nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "empty_body_fails_lookup",
			body:        `{}`,
			users:       &fakeUserReader{},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := auth.NewManager(testSecret, 24*time.Hour)
			h := handlers.NewAuthHandler(tt.users, manager)
			r := setupRouter(http.MethodPost, "/api/login", h.Login)

			w, envelope := doJSON(t, r, http.MethodPost, "/api/login", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantMessage != "" && envelope["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %q", envelope["message"], tt.wantMessage)
			}

			if tt.wantStatus != http.StatusOK {
				if envelope["success"] != false {
					t.Errorf("success flag = %v", envelope["success"])
				}
				return
			}

			// role comes back in plaintext next to the token
			if envelope["role"] != "admin" {
				t.Errorf("role = %v", envelope["role"])
			}

			tokenStr, _ := envelope["token"].(string)

			if tokenStr == "" {
				t.Fatal("token missing from response")
			}

			claims, err := manager.VerifyToken(tokenStr)

			if err != nil {
				t.Fatalf("issued token does not verify: %v", err)
			}

			if claims.UserID != admin.ID.Hex() {
				t.Errorf("token id = %q, want %q", claims.UserID, admin.ID.Hex())
			}

			if claims.Role != user.RoleAdmin {
				t.Errorf("token role = %q", claims.Role)
			}

			// fixed one day validity window
			ttl := time.Until(claims.ExpiresAt.Time)

			if ttl < 23*time.Hour || ttl > 24*time.Hour+time.Minute {
				t.Errorf("token ttl = %v, want about 24h", ttl)
			}
		})
	}
}
