package catalogo

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// UseCase administra el catálogo: productos y categorías. Las eliminaciones
// están restringidas por integridad referencial (stock y pedidos para
// productos, productos para categorías).
type UseCase struct {
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(productoRepo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *UseCase {
	return &UseCase{productoRepo: productoRepo, categoriaRepo: categoriaRepo}
}

// quitarAcentos elimina marcas diacríticas para búsqueda ("artículo" == "articulo").
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar deja el texto en minúsculas y sin acentos.
func normalizar(s string) string {
	out, _, err := transform.String(quitarAcentos, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// CrearProducto da de alta un producto validando categoría y tipo de conservación.
func (uc *UseCase) CrearProducto(ctx context.Context, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if err := uc.validarProducto(in); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Producto{
		ID:               uuid.New().String(),
		Nombre:           in.Nombre,
		CategoriaID:      in.Categoria,
		TipoConservacion: in.TipoConservacion,
		PrecioVenta:      in.PrecioVenta,
		CostoCompra:      in.CostoCompra,
		SKU:              in.SKU,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productoRepo.Create(p); err != nil {
		return nil, err
	}
	return uc.toProductoResponse(p)
}

// ActualizarProducto modifica un producto existente. El cambio de precio o
// costo no afecta las fotos ya tomadas por pedidos y ventas.
func (uc *UseCase) ActualizarProducto(ctx context.Context, id string, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validarProducto(in); err != nil {
		return nil, err
	}
	p.Nombre = in.Nombre
	p.CategoriaID = in.Categoria
	p.TipoConservacion = in.TipoConservacion
	p.PrecioVenta = in.PrecioVenta
	p.CostoCompra = in.CostoCompra
	p.SKU = in.SKU
	p.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toProductoResponse(p)
}

// EliminarProducto elimina un producto sin referencias de stock ni pedidos.
func (uc *UseCase) EliminarProducto(ctx context.Context, id string) error {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productoRepo.Delete(id)
}

// GetProducto devuelve un producto por ID.
func (uc *UseCase) GetProducto(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toProductoResponse(p)
}

// ListProductos lista el catálogo con filtros opcionales; search compara el
// nombre sin distinguir mayúsculas ni acentos.
func (uc *UseCase) ListProductos(ctx context.Context, filter repository.ProductoFilter, search string) ([]dto.ProductoResponse, error) {
	list, err := uc.productoRepo.List(filter)
	if err != nil {
		return nil, err
	}
	needle := normalizar(search)
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		if needle != "" && !strings.Contains(normalizar(p.Nombre), needle) {
			continue
		}
		resp, err := uc.toProductoResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// CrearCategoria da de alta una categoría.
func (uc *UseCase) CrearCategoria(ctx context.Context, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Categoria{ID: uuid.New().String(), Nombre: in.Nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.categoriaRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// ActualizarCategoria renombra una categoría.
func (uc *UseCase) ActualizarCategoria(ctx context.Context, id string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Nombre = in.Nombre
	c.UpdatedAt = time.Now()
	if err := uc.categoriaRepo.Update(c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// EliminarCategoria elimina una categoría sin productos.
func (uc *UseCase) EliminarCategoria(ctx context.Context, id string) error {
	c, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categoriaRepo.Delete(id)
}

// ListCategorias lista todas las categorías.
func (uc *UseCase) ListCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := uc.categoriaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

func (uc *UseCase) validarProducto(in dto.ProductoRequest) error {
	if in.Nombre == "" || in.Categoria == "" {
		return domain.ErrInvalidInput
	}
	if !entity.TipoConservacionValido(in.TipoConservacion) {
		return domain.ErrInvalidInput
	}
	if in.PrecioVenta.LessThan(decimal.Zero) || in.CostoCompra.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	cat, err := uc.categoriaRepo.GetByID(in.Categoria)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *UseCase) toProductoResponse(p *entity.Producto) (*dto.ProductoResponse, error) {
	nombre := ""
	if cat, err := uc.categoriaRepo.GetByID(p.CategoriaID); err != nil {
		return nil, err
	} else if cat != nil {
		nombre = cat.Nombre
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Categoria:        p.CategoriaID,
		CategoriaNombre:  nombre,
		TipoConservacion: p.TipoConservacion,
		PrecioVenta:      p.PrecioVenta,
		CostoCompra:      p.CostoCompra,
		SKU:              p.SKU,
	}, nil
}
