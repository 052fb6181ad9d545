package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-clientes-api/pkg/buscar"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// Columnas permitidas en order_by del listado.
var ordenPermitido = map[string]string{
	"nombre_cliente": "nombre_cliente",
	"telefono":       "telefono",
	"email":          "email",
	"fecha_registro": "fecha_registro",
}

const clienteCols = `
	cliente_id, user_id, nombre_cliente, COALESCE(dni, ''), telefono,
	COALESCE(email, ''), COALESCE(direccion, ''), COALESCE(preferencias_cliente, ''),
	COALESCE(contacto_cliente, ''), fecha_registro`

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
// Las búsquedas usan unaccent(lower(...)): requiere la extensión unaccent (ver migrations).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente. Los campos opcionales vacíos se guardan como NULL.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (cliente_id, user_id, nombre_cliente, dni, telefono,
			email, direccion, preferencias_cliente, contacto_cliente, fecha_registro)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''),
			NULLIF($8, ''), NULLIF($9, ''), $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Nombre, c.DNI, c.Telefono,
		c.Email, c.Direccion, c.Preferencias, c.Contacto, c.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	return r.get(ctx, `WHERE cliente_id = $1`, id)
}

// GetByUserID obtiene el cliente vinculado a la cuenta de usuario.
func (r *ClienteRepo) GetByUserID(ctx context.Context, userID string) (*entity.Cliente, error) {
	return r.get(ctx, `WHERE user_id = $1`, userID)
}

// GetByTelefono obtiene un cliente por coincidencia exacta de teléfono.
func (r *ClienteRepo) GetByTelefono(ctx context.Context, telefono string) (*entity.Cliente, error) {
	return r.get(ctx, `WHERE telefono = $1`, telefono)
}

func (r *ClienteRepo) get(ctx context.Context, where string, arg any) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes ` + where
	c, err := scanCliente(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// EmailEnUso indica si otro cliente (distinto de excludeID) ya usa el email.
func (r *ClienteRepo) EmailEnUso(ctx context.Context, email, excludeID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE email = $1 AND cliente_id <> $2)`,
		email, excludeID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("verificar email: %w", err)
	}
	return existe, nil
}

// List devuelve la página pedida y el total de coincidencias. El filtro
// `buscar` aplica sobre nombre, teléfono y email, insensible a mayúsculas y tildes.
func (r *ClienteRepo) List(ctx context.Context, params repository.ListClientesParams) ([]*entity.Cliente, int, error) {
	where := ``
	args := []any{}
	if params.Buscar != "" {
		where = `
		WHERE unaccent(lower(nombre_cliente)) LIKE '%' || $1 || '%'
		   OR telefono LIKE '%' || $1 || '%'
		   OR unaccent(lower(COALESCE(email, ''))) LIKE '%' || $1 || '%'`
		args = append(args, buscar.Normalizar(params.Buscar))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	orderBy, ok := ordenPermitido[params.OrderBy]
	if !ok {
		orderBy = "fecha_registro"
	}
	orderDir := "DESC"
	if params.OrderDir == "asc" {
		orderDir = "ASC"
	}
	offset := (params.Page - 1) * params.PerPage
	query := fmt.Sprintf(`SELECT %s FROM clientes %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		clienteCols, where, orderBy, orderDir, len(args)+1, len(args)+2)
	args = append(args, params.PerPage, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Update actualiza un cliente. Los campos opcionales vacíos se guardan como NULL.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre_cliente = $2, dni = NULLIF($3, ''), telefono = $4,
			email = NULLIF($5, ''), direccion = NULLIF($6, ''),
			preferencias_cliente = NULLIF($7, ''), contacto_cliente = NULLIF($8, '')
		WHERE cliente_id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.DNI, c.Telefono, c.Email, c.Direccion, c.Preferencias, c.Contacto,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE cliente_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// BuscarRapido busca por nombre, DNI, teléfono o email, sin paginación.
func (r *ClienteRepo) BuscarRapido(ctx context.Context, termino string, limit int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + `
		FROM clientes
		WHERE unaccent(lower(nombre_cliente)) LIKE '%' || $1 || '%'
		   OR COALESCE(dni, '') LIKE '%' || $1 || '%'
		   OR telefono LIKE '%' || $1 || '%'
		   OR unaccent(lower(COALESCE(email, ''))) LIKE '%' || $1 || '%'
		ORDER BY fecha_registro DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, buscar.Normalizar(termino), limit)
	if err != nil {
		return nil, fmt.Errorf("buscar clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Estadisticas cuenta y suma las ventas completadas del cliente.
func (r *ClienteRepo) Estadisticas(ctx context.Context, clienteID string) (*repository.EstadisticasCliente, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_venta), 0)
		FROM ventas
		WHERE cliente_id = $1 AND estado_venta = $2`
	var stats repository.EstadisticasCliente
	err := r.q.QueryRow(ctx, query, clienteID, entity.VentaCompletada).
		Scan(&stats.TotalCompras, &stats.TotalGastado)
	if err != nil {
		return nil, fmt.Errorf("estadisticas cliente: %w", err)
	}
	return &stats, nil
}

// VentasByCliente lista las ventas asociadas al cliente, más recientes primero.
func (r *ClienteRepo) VentasByCliente(ctx context.Context, clienteID string) ([]*entity.Venta, error) {
	query := `
		SELECT venta_id, cliente_id, total_venta, estado_venta, fecha_venta
		FROM ventas WHERE cliente_id = $1 ORDER BY fecha_venta DESC`
	rows, err := r.q.Query(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("ventas cliente: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Total, &v.Estado, &v.Fecha); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// PedidosByCliente lista los pedidos personalizados del cliente, más recientes primero.
func (r *ClienteRepo) PedidosByCliente(ctx context.Context, clienteID string) ([]*entity.PedidoPersonalizado, error) {
	query := `
		SELECT pedido_id, cliente_id, descripcion, estado_pedido, precio_pedido, fecha_pedido
		FROM pedidos_personalizados WHERE cliente_id = $1 ORDER BY fecha_pedido DESC`
	rows, err := r.q.Query(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("pedidos cliente: %w", err)
	}
	defer rows.Close()

	var list []*entity.PedidoPersonalizado
	for rows.Next() {
		var p entity.PedidoPersonalizado
		if err := rows.Scan(&p.ID, &p.ClienteID, &p.Descripcion, &p.Estado, &p.Precio, &p.Fecha); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountVentas cuenta todas las ventas del cliente (cualquier estado).
func (r *ClienteRepo) CountVentas(ctx context.Context, clienteID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ventas WHERE cliente_id = $1`, clienteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ventas: %w", err)
	}
	return n, nil
}

// Frecuentes lista clientes con al menos minCompletadas ventas completadas,
// ordenados por número de compras descendente.
func (r *ClienteRepo) Frecuentes(ctx context.Context, minCompletadas, limit int) ([]*repository.ClienteFrecuente, error) {
	query := `
		SELECT c.cliente_id, c.user_id, c.nombre_cliente, COALESCE(c.dni, ''), c.telefono,
		       COALESCE(c.email, ''), COALESCE(c.direccion, ''), COALESCE(c.preferencias_cliente, ''),
		       COALESCE(c.contacto_cliente, ''), c.fecha_registro,
		       COUNT(v.venta_id)            AS total_compras,
		       COALESCE(SUM(v.total_venta), 0) AS total_gastado
		FROM clientes c
		JOIN ventas v ON v.cliente_id = c.cliente_id AND v.estado_venta = $1
		GROUP BY c.cliente_id
		HAVING COUNT(v.venta_id) >= $2
		ORDER BY total_compras DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, entity.VentaCompletada, minCompletadas, limit)
	if err != nil {
		return nil, fmt.Errorf("clientes frecuentes: %w", err)
	}
	defer rows.Close()

	var list []*repository.ClienteFrecuente
	for rows.Next() {
		var c entity.Cliente
		var f repository.ClienteFrecuente
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Nombre, &c.DNI, &c.Telefono,
			&c.Email, &c.Direccion, &c.Preferencias, &c.Contacto, &c.FechaRegistro,
			&f.TotalCompras, &f.TotalGastado,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cliente frecuente: %w", err)
		}
		f.Cliente = &c
		list = append(list, &f)
	}
	return list, rows.Err()
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.UserID, &c.Nombre, &c.DNI, &c.Telefono,
		&c.Email, &c.Direccion, &c.Preferencias, &c.Contacto, &c.FechaRegistro,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
