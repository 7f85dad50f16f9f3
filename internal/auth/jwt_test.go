package auth_test

import (
	"testing"
	"time"

	"github.com/yuvrajghadi/thakkar-backend/internal/auth"
	"github.com/yuvrajghadi/thakkar-backend/internal/domain/user"
)

func TestGenerateAndVerify(t *testing.T) {
	m := auth.NewManager("secret", 24*time.Hour)

	tok, err := m.GenerateToken("507f1f77bcf86cd799439011", user.RoleAdmin)

	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.VerifyToken(tok)

	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("user id = %q", claims.UserID)
	}

	if claims.Role != user.RoleAdmin {
		t.Errorf("role = %q", claims.Role)
	}

	ttl := time.Until(claims.ExpiresAt.Time)

	if ttl < 23*time.Hour || ttl > 24*time.Hour+time.Minute {
		t.Errorf("ttl = %v, want about 24h", ttl)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewManager("secret-a", time.Hour)
	verifier := auth.NewManager("secret-b", time.Hour)

	tok, err := issuer.GenerateToken("id", user.RoleAdmin)

	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = verifier.VerifyToken(tok)

	if err == nil {
		t.Fatal("token signed with another secret verified")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := auth.NewManager("secret", -time.Minute)

	tok, err := m.GenerateToken("id", user.RoleAdmin)

	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = m.VerifyToken(tok)

	if err == nil {
		t.Fatal("expired token verified")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := auth.NewManager("secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := m.VerifyToken(tok)

		if err == nil {
			t.Errorf("token %q verified", tok)
		}
	}
}
