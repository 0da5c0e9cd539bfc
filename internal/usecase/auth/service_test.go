package auth

import (
	"context"
	"errors"
	"testing"

	"skillseeker/internal/domain/profile"
	"skillseeker/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	err     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockProfileRepo struct {
	created []profile.Profile
	err     error
}

func (m *mockProfileRepo) Create(_ context.Context, p profile.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, p)
	return nil
}

func (m *mockProfileRepo) GetByUserID(context.Context, uuid.UUID) (profile.Profile, error) {
	return profile.Profile{}, profile.ErrNotFound
}

func (m *mockProfileRepo) Update(_ context.Context, p profile.Profile) (profile.Profile, error) {
	return p, nil
}

func TestService_Register_CreatesUserAndEmptyProfile(t *testing.T) {
	users := newMockUserRepo()
	profiles := &mockProfileRepo{}
	svc := NewService(users, profiles)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Alice@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	if len(profiles.created) != 1 {
		t.Fatalf("expected 1 profile row, got %d", len(profiles.created))
	}
	p := profiles.created[0]
	if p.UserID != u.ID {
		t.Fatalf("profile must belong to the new user")
	}
	if p.Username != "" {
		t.Fatalf("new profile must start without a username, got %q", p.Username)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	svc := NewService(users, &mockProfileRepo{})

	in := RegisterInput{Email: "alice@example.com", Password: "correct horse"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_RejectsWeakInput(t *testing.T) {
	svc := NewService(newMockUserRepo(), &mockProfileRepo{})

	cases := []RegisterInput{
		{Email: "", Password: "correct horse"},
		{Email: "alice@example.com", Password: "short"},
		{Email: "alice@example.com", Password: "        "},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_Login(t *testing.T) {
	users := newMockUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id := uuid.New()
	seeded := user.User{ID: id, Email: "alice@example.com", PasswordHash: string(hash)}
	users.byID[id] = seeded
	users.byEmail[seeded.Email] = seeded

	svc := NewService(users, &mockProfileRepo{})

	u, err := svc.Login(context.Background(), LoginInput{Email: "ALICE@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != id {
		t.Fatalf("expected seeded user")
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
