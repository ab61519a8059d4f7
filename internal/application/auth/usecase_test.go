package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/tienda-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "tienda-api-test"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetCredentialsByEmail(email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	// Proyección mínima, como la consulta real.
	return &entity.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
	return nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     "ana@example.com",
		Password:  "secreto123",
		FirstName: "Ana",
		LastName:  "García",
		Phone:     "3001234567",
		Address:   "Calle 123 #45-67",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolPorDefecto(t *testing.T) {
	uc, repo := newAuthUC()

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role, "sin rol explícito el usuario es user")
	assert.NotEmpty(t, out.ID)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolDesconocido_Rechazado(t *testing.T) {
	uc, _ := newAuthUC()

	in := registerRequest()
	in.Role = "superadmin"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RolAdminExplicito(t *testing.T) {
	uc, _ := newAuthUC()

	in := registerRequest()
	in.Role = entity.RoleAdmin
	out, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_GeneraTokenConClaims(t *testing.T) {
	uc, _ := newAuthUC()

	registered, err := uc.Register(registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)
	assert.Equal(t, "Ana", out.User.FirstName, "el login devuelve el perfil completo")

	userID, email, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_NoRevelaSiElEmailExiste(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	// Email inexistente y password incorrecto producen exactamente el mismo error.
	_, errNoEmail := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})

	assert.ErrorIs(t, errNoEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoEmail, errBadPass)
}
