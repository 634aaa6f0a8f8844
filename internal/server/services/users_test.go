package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samuelnapitupulu18/NusaCare/internal/common"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/auth"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/config"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	out := *u
	out.ID = "uid-1"
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByWiFiID(ctx context.Context, wifiID string) (*models.User, error) {
	return nil, common.ErrorNotFound
}

func newUserService(t *testing.T, repo *fakeUsersRepo, validity time.Duration) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: validity,
	}
	return NewUserService(repo, cfg)
}

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{
		ID:           "uid-1",
		Email:        "budi@x.com",
		Name:         "Budi",
		WiFiID:       "NUSA-001",
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newUserService(t, repo, time.Hour)

	id, err := s.Register(context.Background(), "Budi", "budi@x.com", "pw123", "NUSA-001")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if id != "uid-1" {
		t.Fatalf("unexpected id %q", id)
	}
	if repo.created.Role != models.RoleUser {
		t.Fatalf("expected USER role, got %q", repo.created.Role)
	}
	if repo.created.PasswordHash == "pw123" || repo.created.PasswordHash == "" {
		t.Fatalf("raw password must not be stored: %q", repo.created.PasswordHash)
	}
	if !auth.CheckPassword(repo.created.PasswordHash, "pw123") {
		t.Fatal("stored hash does not verify against the raw password")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := newUserService(t, &fakeUsersRepo{}, time.Hour)

	tests := []struct {
		name                          string
		user, email, password, wifiID string
	}{
		{"no name", "", "budi@x.com", "pw", "NUSA-001"},
		{"no email", "Budi", "", "pw", "NUSA-001"},
		{"no password", "Budi", "budi@x.com", "", "NUSA-001"},
		{"no wifi id", "Budi", "budi@x.com", "pw", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.user, tc.email, tc.password, tc.wifiID)
			if !errors.Is(err, common.ErrorMissingFields) {
				t.Fatalf("want ErrorMissingFields, got %v", err)
			}
		})
	}
}

func TestRegister_InvalidWiFiIDFormat(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newUserService(t, repo, time.Hour)

	_, err := s.Register(context.Background(), "Budi", "budi@x.com", "pw", "ACME-001")
	if !errors.Is(err, common.ErrorInvalidWiFiID) {
		t.Fatalf("want ErrorInvalidWiFiID, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("store must not be touched on format error")
	}
}

func TestRegister_ConflictsPassThrough(t *testing.T) {
	for _, sentinel := range []error{common.ErrorEmailTaken, common.ErrorWiFiIDTaken} {
		s := newUserService(t, &fakeUsersRepo{createErr: sentinel}, time.Hour)
		_, err := s.Register(context.Background(), "Budi", "budi@x.com", "pw", "NUSA-001")
		if !errors.Is(err, sentinel) {
			t.Fatalf("want %v, got %v", sentinel, err)
		}
	}
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "pw123")
	s := newUserService(t, &fakeUsersRepo{getOut: user}, 24*time.Hour)

	token, summary, err := s.Login(context.Background(), "budi@x.com", "pw123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if summary.Email != "budi@x.com" || summary.Name != "Budi" || summary.Role != models.RoleUser {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.Subject != "budi@x.com" {
		t.Fatalf("subject mismatch: %q", claims.Subject)
	}
	if claims.Role != models.RoleUser {
		t.Fatalf("role mismatch: %q", claims.Role)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	user := storedUser(t, "pw123")

	wrongPw := newUserService(t, &fakeUsersRepo{getOut: user}, time.Hour)
	_, _, errWrong := wrongPw.Login(context.Background(), "budi@x.com", "nope")

	unknown := newUserService(t, &fakeUsersRepo{getErr: common.ErrorNotFound}, time.Hour)
	_, _, errUnknown := unknown.Login(context.Background(), "ghost@x.com", "nope")

	if !errors.Is(errWrong, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: want ErrorInvalidCredentials, got %v", errWrong)
	}
	if !errors.Is(errUnknown, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown email: want ErrorInvalidCredentials, got %v", errUnknown)
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Fatalf("errors must be indistinguishable: %q vs %q", errWrong, errUnknown)
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	s := newUserService(t, &fakeUsersRepo{getErr: errors.New("boom")}, time.Hour)

	_, _, err := s.Login(context.Background(), "budi@x.com", "pw")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

// --- ValidateToken ---

func TestValidateToken_Expired(t *testing.T) {
	user := storedUser(t, "pw123")
	// negative validity mints an already-expired token, standing in for a
	// clock advance past the 24h window
	s := newUserService(t, &fakeUsersRepo{getOut: user}, -1*time.Second)

	token, _, err := s.Login(context.Background(), "budi@x.com", "pw123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if _, err := s.ValidateToken(token); !errors.Is(err, common.ErrorTokenExpired) {
		t.Fatalf("want ErrorTokenExpired, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	s := newUserService(t, &fakeUsersRepo{}, time.Hour)

	if _, err := s.ValidateToken("garbage"); !errors.Is(err, common.ErrorInvalidToken) {
		t.Fatalf("want ErrorInvalidToken, got %v", err)
	}
}
