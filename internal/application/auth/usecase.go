package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
	"github.com/mvillagra/stock-sucursales/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación y administración de usuarios.
type UseCase struct {
	usuarioRepo   repository.UsuarioRepository
	ubicacionRepo repository.UbicacionRepository
	jwtCfg        JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, ubicacionRepo repository.UbicacionRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, ubicacionRepo: ubicacionRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y retorna el token con rol y sucursal.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.usuarioRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	sucursalID := ""
	if user.SucursalID != nil {
		sucursalID = *user.SucursalID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, sucursalID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Access:   token,
		Rol:      user.Rol,
		Sucursal: user.SucursalID,
		Username: user.Username,
	}, nil
}

// Register da de alta un usuario (operación de admin): hashea el password con
// bcrypt y valida rol y sucursal.
func (uc *UseCase) Register(in dto.RegisterUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Rol {
	case entity.RolAdmin:
		// sin sucursal
	case entity.RolSucursal:
		if in.SucursalID == nil || *in.SucursalID == "" {
			return nil, domain.ErrInvalidInput
		}
		sucursal, err := uc.ubicacionRepo.GetByID(*in.SucursalID)
		if err != nil {
			return nil, err
		}
		if sucursal == nil {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.usuarioRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		SucursalID:   in.SucursalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(user); err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

// List lista usuarios (operación de admin).
func (uc *UseCase) List(limit, offset int) ([]dto.UsuarioResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	users, err := uc.usuarioRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUsuarioResponse(u))
	}
	return out, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:         u.ID,
		Username:   u.Username,
		Rol:        u.Rol,
		SucursalID: u.SucursalID,
		CreatedAt:  u.CreatedAt,
	}
}
