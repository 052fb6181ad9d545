package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoPersonalizado es un pedido a medida asociado a un Cliente.
// Igual que Venta, este módulo solo lo lee; el ciclo de vida de los
// pedidos vive en otro servicio.
type PedidoPersonalizado struct {
	ID          string
	ClienteID   string
	Descripcion string
	Estado      string
	Precio      decimal.Decimal
	Fecha       time.Time
}
