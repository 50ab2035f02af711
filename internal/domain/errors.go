package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidState      = errors.New("transición no permitida desde el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrHasReferences     = errors.New("no se puede eliminar: existen registros que lo referencian")
	ErrTipoConservacion  = errors.New("la sub-ubicación no coincide con el tipo de conservación del producto")
)

// StockInsuficienteError identifica el producto y la sub-ubicación sin stock
// suficiente para una operación. Compatible con errors.Is(err, ErrInsufficientStock).
type StockInsuficienteError struct {
	ProductoID     string
	SubUbicacionID string
	Solicitado     decimal.Decimal
	Disponible     decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s en sub-ubicación %s: solicitado %s, disponible %s",
		e.ProductoID, e.SubUbicacionID, e.Solicitado, e.Disponible)
}

func (e *StockInsuficienteError) Unwrap() error { return ErrInsufficientStock }
