package dto

import "github.com/shopspring/decimal"

// ProductoRequest alta/modificación de un producto.
type ProductoRequest struct {
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	TipoConservacion string          `json:"tipo_conservacion"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	CostoCompra      decimal.Decimal `json:"costo_compra"`
	SKU              *string         `json:"sku"`
}

// ProductoResponse producto con el nombre de su categoría resuelto.
type ProductoResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	CategoriaNombre  string          `json:"categoria_nombre"`
	TipoConservacion string          `json:"tipo_conservacion"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	CostoCompra      decimal.Decimal `json:"costo_compra"`
	SKU              *string         `json:"sku"`
}

// CategoriaRequest alta/modificación de una categoría.
type CategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// CategoriaResponse categoría.
type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
