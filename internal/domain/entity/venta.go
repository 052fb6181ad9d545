package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una venta completada (usado en agregados de clientes).
const VentaCompletada = "Completada"

// Venta es una venta asociada a un Cliente. Este módulo solo la lee
// para estadísticas; el ciclo de vida de las ventas vive en otro servicio.
type Venta struct {
	ID        string
	ClienteID string
	Total     decimal.Decimal
	Estado    string
	Fecha     time.Time
}
