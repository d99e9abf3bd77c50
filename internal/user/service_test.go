package user_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/user"
)

type memRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func newMemRepo() *memRepo {
	return &memRepo{
		byEmail: map[string]*user.User{},
		byID:    map[uuid.UUID]*user.User{},
	}
}

func (r *memRepo) Create(u *user.User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *memRepo) FindByID(id uuid.UUID) (*user.User, error) {
	return r.byID[id], nil
}

func (r *memRepo) FindByEmail(email string) (*user.User, error) {
	return r.byEmail[email], nil
}

func (r *memRepo) Update(u *user.User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

type stubGoogle struct {
	info *user.GoogleUserInfo
	err  error
}

func (g *stubGoogle) Authenticate(ctx context.Context, code string) (*user.GoogleUserInfo, error) {
	return g.info, g.err
}

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "a-long-and-secure-secret-key-for-tests")
	auth.Init()
	os.Exit(m.Run())
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("SignupThenLogin", func(t *testing.T) {
		svc := user.NewService(newMemRepo(), nil)

		resp, err := svc.Signup(ctx, user.SignupDTO{Name: "Ada", Email: "Ada@Example.org", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if resp.Token == "" {
			t.Error("signup should issue a token")
		}
		if resp.User.Email != "ada@example.org" {
			t.Errorf("email should be normalized, got %s", resp.User.Email)
		}

		login, err := svc.Login(ctx, user.LoginDTO{Email: "ada@example.org", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if login.User.ID != resp.User.ID {
			t.Error("login should resolve the signed-up user")
		}

		claims, err := auth.ValidateJWT(login.Token)
		if err != nil {
			t.Fatalf("issued token does not validate: %v", err)
		}
		if claims.UserID != resp.User.ID.String() {
			t.Errorf("token carries wrong user: %s", claims.UserID)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := user.NewService(newMemRepo(), nil)

		if _, err := svc.Signup(ctx, user.SignupDTO{Name: "Ada", Email: "ada@example.org", Password: "correct-horse"}); err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		_, err := svc.Signup(ctx, user.SignupDTO{Name: "Eve", Email: "ada@example.org", Password: "other-password"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("want ErrEmailTaken, got %v", err)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := user.NewService(newMemRepo(), nil)

		if _, err := svc.Signup(ctx, user.SignupDTO{Name: "Ada", Email: "ada@example.org", Password: "correct-horse"}); err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		_, err := svc.Login(ctx, user.LoginDTO{Email: "ada@example.org", Password: "wrong"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc := user.NewService(newMemRepo(), nil)

		_, err := svc.Login(ctx, user.LoginDTO{Email: "nobody@example.org", Password: "whatever"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("ShortPasswordRejected", func(t *testing.T) {
		svc := user.NewService(newMemRepo(), nil)

		_, err := svc.Signup(ctx, user.SignupDTO{Name: "Ada", Email: "ada@example.org", Password: "short"})
		if !errors.Is(err, user.ErrInvalidInput) {
			t.Errorf("want ErrInvalidInput, got %v", err)
		}
	})
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesUserOnFirstLogin", func(t *testing.T) {
		repo := newMemRepo()
		svc := user.NewService(repo, &stubGoogle{info: &user.GoogleUserInfo{ID: "g-1", Email: "Ada@Example.org", Name: "Ada"}})

		resp, err := svc.GoogleLogin(ctx, "auth-code")
		if err != nil {
			t.Fatalf("GoogleLogin failed: %v", err)
		}
		if resp.User.Provider != user.ProviderGoogle {
			t.Errorf("want provider google, got %s", resp.User.Provider)
		}

		again, err := svc.GoogleLogin(ctx, "auth-code")
		if err != nil {
			t.Fatalf("second GoogleLogin failed: %v", err)
		}
		if again.User.ID != resp.User.ID {
			t.Error("repeat login must reuse the existing account")
		}
	})

	t.Run("NotConfigured", func(t *testing.T) {
		svc := user.NewService(newMemRepo(), nil)
		if _, err := svc.GoogleLogin(ctx, "auth-code"); err == nil {
			t.Error("want error when google login is not configured")
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(newMemRepo(), nil)

	resp, err := svc.Signup(ctx, user.SignupDTO{Name: "Ada", Email: "ada@example.org", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	id := resp.User.ID

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id, user.ChangePasswordDTO{CurrentPassword: "wrong", NewPassword: "battery-staple"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, id, user.ChangePasswordDTO{CurrentPassword: "correct-horse", NewPassword: "battery-staple"}); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}

		if _, err := svc.Login(ctx, user.LoginDTO{Email: "ada@example.org", Password: "battery-staple"}); err != nil {
			t.Errorf("login with the new password failed: %v", err)
		}
		if _, err := svc.Login(ctx, user.LoginDTO{Email: "ada@example.org", Password: "correct-horse"}); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("old password must stop working, got %v", err)
		}
	})
}
