package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
)

// ListClientesParams parámetros del listado paginado de clientes.
type ListClientesParams struct {
	Buscar   string // filtro substring sobre nombre, teléfono o email
	OrderBy  string // columna de orden (lista blanca en el adaptador)
	OrderDir string // asc | desc
	PerPage  int
	Page     int
}

// ClienteFrecuente resumen de un cliente con sus compras completadas.
type ClienteFrecuente struct {
	Cliente      *entity.Cliente
	TotalCompras int
	TotalGastado decimal.Decimal
}

// EstadisticasCliente agregados sobre ventas completadas de un cliente.
type EstadisticasCliente struct {
	TotalCompras int
	TotalGastado decimal.Decimal
}

// ClienteRepository define el puerto de persistencia para Cliente.
// Los métodos Get devuelven (nil, nil) cuando no existe el registro.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Cliente, error)
	GetByTelefono(ctx context.Context, telefono string) (*entity.Cliente, error)

	// EmailEnUso indica si otro cliente (distinto de excludeID) ya usa el email.
	EmailEnUso(ctx context.Context, email, excludeID string) (bool, error)

	// List devuelve la página pedida y el total de coincidencias.
	List(ctx context.Context, params ListClientesParams) ([]*entity.Cliente, int, error)

	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id string) error

	// BuscarRapido busca por nombre, DNI, teléfono o email; sin paginación.
	BuscarRapido(ctx context.Context, termino string, limit int) ([]*entity.Cliente, error)

	// Estadisticas cuenta y suma las ventas completadas del cliente.
	Estadisticas(ctx context.Context, clienteID string) (*EstadisticasCliente, error)

	// VentasByCliente lista las ventas asociadas (solo lectura, más recientes primero).
	VentasByCliente(ctx context.Context, clienteID string) ([]*entity.Venta, error)

	// PedidosByCliente lista los pedidos personalizados asociados (solo lectura).
	PedidosByCliente(ctx context.Context, clienteID string) ([]*entity.PedidoPersonalizado, error)

	// CountVentas cuenta todas las ventas del cliente (cualquier estado).
	CountVentas(ctx context.Context, clienteID string) (int, error)

	// Frecuentes lista clientes con al menos minCompletadas ventas completadas,
	// ordenados por número de compras descendente.
	Frecuentes(ctx context.Context, minCompletadas, limit int) ([]*ClienteFrecuente, error)
}
