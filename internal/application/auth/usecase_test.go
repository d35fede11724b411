package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-backoffice/internal/application/auth"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	pkgjwt "github.com/jhoicas/pos-backoffice/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-auth"
	testPassword = "correcthorse"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.byEmail[u.Email] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func setupAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: map[string]*entity.User{
		"ana@example.com": {
			ID:           "user-1",
			Email:        "ana@example.com",
			PasswordHash: string(hash),
			Name:         "Ana",
			Role:         entity.RoleAdmin,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "pos-backoffice-test",
	})
}

// Login correcto: token verificable y usuario sin hash.
func TestLogin_CredencialesValidas(t *testing.T) {
	uc := setupAuth(t)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Token)

	// El token emitido debe parsear con el mismo secret y cargar los claims del usuario.
	userID, email, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, entity.RoleAdmin, role)

	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// Usuario inexistente y contraseña incorrecta devuelven exactamente el mismo
// error: la respuesta no debe permitir enumerar cuentas.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc := setupAuth(t)

	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: testPassword})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	require.Error(t, errNoUser)
	require.Error(t, errBadPass)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser.Error(), errBadPass.Error(),
		"usuario inexistente y password incorrecto deben ser indistinguibles")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := setupAuth(t)

	_, err := uc.Login(dto.LoginRequest{Email: "", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
