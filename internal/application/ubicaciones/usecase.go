package ubicaciones

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// UseCase administra sucursales/almacenes y sus sub-ubicaciones.
type UseCase struct {
	ubicacionRepo repository.UbicacionRepository
}

// NewUseCase construye el caso de uso de ubicaciones.
func NewUseCase(ubicacionRepo repository.UbicacionRepository) *UseCase {
	return &UseCase{ubicacionRepo: ubicacionRepo}
}

// Crear da de alta una ubicación con sus sub-ubicaciones.
func (uc *UseCase) Crear(ctx context.Context, in dto.UbicacionRequest) (*dto.UbicacionResponse, error) {
	if err := validar(in); err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Ubicacion{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, s := range in.SubUbicaciones {
		u.SubUbicaciones = append(u.SubUbicaciones, &entity.SubUbicacion{
			ID:          uuid.New().String(),
			UbicacionID: u.ID,
			Nombre:      s.Nombre,
			Tipo:        s.Tipo,
			Orden:       i,
		})
	}
	if err := uc.ubicacionRepo.Create(u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

// Actualizar modifica nombre/tipo y el conjunto de sub-ubicaciones. Las
// sub-ubicaciones con ID se conservan (renombradas si corresponde); las
// nuevas se agregan; las ausentes se eliminan, sujeto a integridad
// referencial con stock, pedidos y ventas.
func (uc *UseCase) Actualizar(ctx context.Context, id string, in dto.UbicacionRequest) (*dto.UbicacionResponse, error) {
	if err := validar(in); err != nil {
		return nil, err
	}
	u, err := uc.ubicacionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	u.Nombre = in.Nombre
	u.Tipo = in.Tipo
	u.UpdatedAt = time.Now()
	subs := make([]*entity.SubUbicacion, 0, len(in.SubUbicaciones))
	for i, s := range in.SubUbicaciones {
		subID := s.ID
		if subID == "" {
			subID = uuid.New().String()
		}
		subs = append(subs, &entity.SubUbicacion{
			ID:          subID,
			UbicacionID: u.ID,
			Nombre:      s.Nombre,
			Tipo:        s.Tipo,
			Orden:       i,
		})
	}
	u.SubUbicaciones = subs
	if err := uc.ubicacionRepo.Update(u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

// Eliminar elimina una ubicación sin stock ni movimientos asociados.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	u, err := uc.ubicacionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.ubicacionRepo.Delete(id)
}

// List devuelve todas las ubicaciones con sub-ubicaciones anidadas.
func (uc *UseCase) List(ctx context.Context) ([]dto.UbicacionResponse, error) {
	list, err := uc.ubicacionRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UbicacionResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toResponse(u))
	}
	return out, nil
}

func validar(in dto.UbicacionRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	if in.Tipo != entity.UbicacionSucursal && in.Tipo != entity.UbicacionAlmacen {
		return domain.ErrInvalidInput
	}
	for _, s := range in.SubUbicaciones {
		if s.Nombre == "" || !entity.TipoConservacionValido(s.Tipo) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toResponse(u *entity.Ubicacion) *dto.UbicacionResponse {
	subs := make([]dto.SubUbicacionResponse, 0, len(u.SubUbicaciones))
	for _, s := range u.SubUbicaciones {
		subs = append(subs, dto.SubUbicacionResponse{ID: s.ID, Nombre: s.Nombre, Tipo: s.Tipo})
	}
	return &dto.UbicacionResponse{ID: u.ID, Nombre: u.Nombre, Tipo: u.Tipo, SubUbicaciones: subs}
}
