package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvillagra/stock-sucursales/internal/application/auth"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	pkgjwt "github.com/mvillagra/stock-sucursales/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por username
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	f.usuarios[u.Username] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	return f.usuarios[username], nil
}

func (f *fakeUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.usuarios {
		out = append(out, u)
	}
	return out, nil
}

type fakeUbicacionRepo struct {
	ubicaciones map[string]*entity.Ubicacion
}

func (f *fakeUbicacionRepo) Create(u *entity.Ubicacion) error { return nil }
func (f *fakeUbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	return f.ubicaciones[id], nil
}
func (f *fakeUbicacionRepo) Update(*entity.Ubicacion) error     { return nil }
func (f *fakeUbicacionRepo) Delete(string) error                { return nil }
func (f *fakeUbicacionRepo) List() ([]*entity.Ubicacion, error) { return nil, nil }
func (f *fakeUbicacionRepo) GetSubUbicacion(string) (*entity.SubUbicacion, error) {
	return nil, nil
}

const (
	testSecret   = "secret-de-test"
	testSucursal = "sucursal-centro"
)

func nuevoUseCase(t *testing.T) (*auth.UseCase, *fakeUsuarioRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	usuarioRepo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"vendedora": {
			ID: "user-1", Username: "vendedora", PasswordHash: string(hash),
			Rol: entity.RolSucursal, SucursalID: ptr(testSucursal),
		},
	}}
	ubicacionRepo := &fakeUbicacionRepo{ubicaciones: map[string]*entity.Ubicacion{
		testSucursal: {ID: testSucursal, Nombre: "Centro", Tipo: entity.UbicacionSucursal},
	}}
	return auth.NewUseCase(usuarioRepo, ubicacionRepo, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "test",
	}), usuarioRepo
}

func ptr(s string) *string { return &s }

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "vendedora", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolSucursal, resp.Rol)
	require.NotNil(t, resp.Sucursal)
	assert.Equal(t, testSucursal, *resp.Sucursal)

	// El token lleva identidad, rol y sucursal.
	userID, rol, sucursalID, err := pkgjwt.Parse(testSecret, resp.Access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RolSucursal, rol)
	assert.Equal(t, testSucursal, sucursalID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "vendedora", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_RolSucursalRequiereSucursal(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	_, err := uc.Register(dto.RegisterUsuarioRequest{
		Username: "nuevo", Password: "pass", Rol: entity.RolSucursal,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inexistente := "sucursal-fantasma"
	_, err = uc.Register(dto.RegisterUsuarioRequest{
		Username: "nuevo", Password: "pass", Rol: entity.RolSucursal, SucursalID: &inexistente,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la sucursal debe existir")
}

func TestRegister_AdminSinSucursal(t *testing.T) {
	uc, repo := nuevoUseCase(t)

	resp, err := uc.Register(dto.RegisterUsuarioRequest{
		Username: "jefe", Password: "pass", Rol: entity.RolAdmin,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.SucursalID)

	// El password queda hasheado, nunca en claro.
	guardado := repo.usuarios["jefe"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "pass", guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("pass")))
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	_, err := uc.Register(dto.RegisterUsuarioRequest{
		Username: "vendedora", Password: "pass", Rol: entity.RolAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_RolDesconocido(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	_, err := uc.Register(dto.RegisterUsuarioRequest{
		Username: "nuevo", Password: "pass", Rol: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
