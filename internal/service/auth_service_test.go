package service

import (
	"testing"
	"time"

	"tryout_backend/internal/config"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "unit-test-secret-0123456789abcdef",
			ExpireTime: time.Hour,
		},
	}
	return NewAuthService(repository.NewAdminRepository(db), cfg)
}

func TestLoginWithSeededAdmin(t *testing.T) {
	svc := newAuthService(t)

	// Migration seeds the bootstrap account.
	result, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("no token issued")
	}
	if result.Username != "admin" {
		t.Fatalf("username = %q", result.Username)
	}

	claims, err := util.ParseJWT(result.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.AdminID != result.ID || claims.Username != "admin" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Login("admin", "wrong"); err != util.ErrInvalidCredentials {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("ghost", "admin123"); err != util.ErrInvalidCredentials {
		t.Fatalf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("admin", "pw", "Dup", "dup@example.com"); err != util.ErrAdminExists {
		t.Fatalf("got %v, want ErrAdminExists", err)
	}

	created, err := svc.Register("ops", "pw123456", "Ops", "ops@example.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Token == "" {
		t.Fatal("no token issued on register")
	}
}

func TestProfile(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	admin, err := svc.Profile(result.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if admin.Username != "admin" {
		t.Fatalf("username = %q", admin.Username)
	}

	if _, err := svc.Profile(99999); err != util.ErrAdminNotFound {
		t.Fatalf("got %v, want ErrAdminNotFound", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newAuthService(t)
	svc.Cfg.JWT.ExpireTime = -time.Minute

	result, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := util.ParseJWT(result.Token, svc.Cfg.JWT.Secret); err == nil {
		t.Fatal("expired token accepted")
	}
}
