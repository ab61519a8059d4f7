package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetCredentialsByEmail(email string) (*entity.User, error) {
	return f.GetByEmail(email)
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func seededUser() *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("original123"), bcrypt.MinCost)
	now := time.Now()
	return &entity.User{
		ID:           "user-1",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		FirstName:    "Ana",
		LastName:     "García",
		Phone:        "3001234567",
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	_ = repo.Create(seededUser())
	return usecase.NewUserUseCase(repo), repo
}

// La búsqueda por ID y por email difieren a propósito: por ID un faltante es
// ErrNotFound; por email es (nil, nil) para que el registro pueda sondear sin error.
func TestUserLookup_AsimetriaIDvsEmail(t *testing.T) {
	uc, _ := newUserUC()

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.GetByEmail("nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUserGetByID_NoExponeElHash(t *testing.T) {
	uc, _ := newUserUC()

	out, err := uc.GetByID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	// UserResponse no tiene campo de password; el assert documenta la intención.
	assert.Equal(t, "Ana", out.FirstName)
}

func TestUserUpdate_MergeParcial(t *testing.T) {
	uc, repo := newUserUC()

	phone := "3109876543"
	out, err := uc.Update("user-1", dto.UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, out.Phone)
	assert.Equal(t, "Ana", out.FirstName, "los campos no enviados no se tocan")

	stored := repo.users["user-1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("original123")),
		"sin password nuevo el hash no cambia")
}

func TestUserUpdate_PasswordSeRehashea(t *testing.T) {
	uc, repo := newUserUC()

	newPass := "nuevaclave"
	_, err := uc.Update("user-1", dto.UpdateUserRequest{Password: &newPass})
	require.NoError(t, err)

	stored := repo.users["user-1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte(newPass)))
	assert.Error(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("original123")))
}

func TestUserUpdate_PasswordCorto_Rechazado(t *testing.T) {
	uc, _ := newUserUC()

	short := "12345"
	_, err := uc.Update("user-1", dto.UpdateUserRequest{Password: &short})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newUserUC()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
