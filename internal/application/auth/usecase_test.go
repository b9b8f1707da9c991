package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stockflow-api/pkg/jwt"
)

// fakeUserRepo repositorio in-memory indexado por email e id.
type fakeUserRepo struct {
	users map[string]*entity.User // key: id
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:            "test-secret",
		AccessExpMinutes:  15,
		RefreshExpMinutes: 7 * 24 * 60,
		Issuer:            "stockflow-test",
	}
}

func seedUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "user-1",
		FirstName:    "Ana",
		LastName:     "García",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConPasswordHasheada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Password:  "secreto123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleStaff, out.Role, "sin rol explícito el usuario es staff")

	stored, _ := repo.GetByEmail("ana@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la password nunca se guarda en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicado_ErrEmailAlreadyExists(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t))
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GeneraTokensYPersisteRefresh(t *testing.T) {
	user := seedUser(t)
	repo := newFakeUserRepo(user)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", out.Message)
	assert.Equal(t, "user-1", out.ID)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	// El access token lleva el nombre visible para el flujo de ajuste de stock.
	userID, name, role, err := pkgjwt.Parse("test-secret", out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Ana García", name)
	assert.Equal(t, entity.RoleAdmin, role)

	// El refresh token queda persistido en el usuario.
	stored, _ := repo.GetByID("user-1")
	assert.Equal(t, out.RefreshToken, stored.RefreshToken)
}

func TestLogin_PasswordIncorrecta_ErrUnauthorized(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t))
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido_ErrUnauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_EmiteNuevoAccessToken(t *testing.T) {
	user := seedUser(t)
	repo := newFakeUserRepo(user)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	login, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestRefresh_TokenInvalido_ErrUnauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "token.basura"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_ActualizaElHash(t *testing.T) {
	user := seedUser(t)
	repo := newFakeUserRepo(user)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	err := uc.ChangePassword(dto.ChangePasswordRequest{Email: "ana@example.com", Password: "nueva456"})
	require.NoError(t, err)

	stored, _ := repo.GetByID("user-1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva456")))
}

func TestChangePassword_SinPassword_ErrInvalidInput(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	err := uc.ChangePassword(dto.ChangePasswordRequest{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_UsuarioDesconocido_ErrUserNotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	err := uc.ChangePassword(dto.ChangePasswordRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
