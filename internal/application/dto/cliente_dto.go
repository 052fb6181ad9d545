package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
)

// CreateClienteRequest entrada para crear un cliente (registro directo por el personal).
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	DNI       string `json:"dni"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

// Validate valida campo a campo; devuelve domain.ValidationErrors o nil.
func (r CreateClienteRequest) Validate() error {
	errs := domain.ValidationErrors{}
	if r.Nombre == "" {
		errs.Add("nombre", "el nombre es requerido")
	} else if len(r.Nombre) > 100 {
		errs.Add("nombre", "el nombre no puede exceder 100 caracteres")
	}
	if len(r.DNI) > 20 {
		errs.Add("dni", "el dni no puede exceder 20 caracteres")
	}
	if r.Telefono == "" {
		errs.Add("telefono", "el teléfono es requerido")
	} else if len(r.Telefono) > 20 {
		errs.Add("telefono", "el teléfono no puede exceder 20 caracteres")
	}
	validarEmail(errs, "email", r.Email, false, 100)
	if len(r.Direccion) > 255 {
		errs.Add("direccion", "la dirección no puede exceder 255 caracteres")
	}
	return errs.OrNil()
}

// UpdateClienteRequest parche disperso: solo los campos presentes en el JSON
// se aplican (punteros nil = campo ausente, intacto).
type UpdateClienteRequest struct {
	Nombre       *string `json:"nombre"`
	DNI          *string `json:"dni"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"`
	Direccion    *string `json:"direccion"`
	Contacto     *string `json:"contacto"`
	Preferencias *string `json:"preferencias"`
}

// Validate valida solo los campos presentes.
func (r UpdateClienteRequest) Validate() error {
	errs := domain.ValidationErrors{}
	if r.Nombre != nil {
		if *r.Nombre == "" {
			errs.Add("nombre", "el nombre no puede quedar vacío")
		} else if len(*r.Nombre) > 100 {
			errs.Add("nombre", "el nombre no puede exceder 100 caracteres")
		}
	}
	if r.DNI != nil && len(*r.DNI) > 20 {
		errs.Add("dni", "el dni no puede exceder 20 caracteres")
	}
	if r.Telefono != nil {
		if *r.Telefono == "" {
			errs.Add("telefono", "el teléfono no puede quedar vacío")
		} else if len(*r.Telefono) > 20 {
			errs.Add("telefono", "el teléfono no puede exceder 20 caracteres")
		}
	}
	if r.Email != nil {
		validarEmail(errs, "email", *r.Email, false, 100)
	}
	if r.Contacto != nil && len(*r.Contacto) > 50 {
		errs.Add("contacto", "el contacto no puede exceder 50 caracteres")
	}
	return errs.OrNil()
}

// Vacio indica si el parche no trae ningún campo (no-op).
func (r UpdateClienteRequest) Vacio() bool {
	return r.Nombre == nil && r.DNI == nil && r.Telefono == nil &&
		r.Email == nil && r.Direccion == nil && r.Contacto == nil && r.Preferencias == nil
}

// PreferenciasRequest entrada del parche de preferencias.
type PreferenciasRequest struct {
	Preferencias string `json:"preferencias_clie"`
}

// Validate exige el texto de preferencias.
func (r PreferenciasRequest) Validate() error {
	errs := domain.ValidationErrors{}
	if r.Preferencias == "" {
		errs.Add("preferencias_clie", "las preferencias son requeridas")
	}
	return errs.OrNil()
}

// ListClientesRequest query params del listado paginado.
type ListClientesRequest struct {
	Buscar   string `query:"buscar"`
	OrderBy  string `query:"order_by"`
	OrderDir string `query:"order_dir"`
	PerPage  int    `query:"per_page"`
	Page     int    `query:"page"`
}

// Defaults aplica los valores por defecto del listado.
func (r *ListClientesRequest) Defaults() {
	if r.OrderBy == "" {
		r.OrderBy = "fecha_registro"
	}
	if r.OrderDir == "" {
		r.OrderDir = "desc"
	}
	if r.PerPage <= 0 {
		r.PerPage = 15
	}
	if r.PerPage > 100 {
		r.PerPage = 100
	}
	if r.Page <= 0 {
		r.Page = 1
	}
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ClienteID     string    `json:"cliente_id"`
	UserID        *string   `json:"user_id,omitempty"`
	Nombre        string    `json:"nombre_cliente"`
	DNI           string    `json:"dni,omitempty"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	Preferencias  string    `json:"preferencias_cliente,omitempty"`
	Contacto      string    `json:"contacto_cliente,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// VentaResponse venta asociada a un cliente (solo lectura).
type VentaResponse struct {
	VentaID string          `json:"venta_id"`
	Total   decimal.Decimal `json:"total_venta"`
	Estado  string          `json:"estado_venta"`
	Fecha   time.Time       `json:"fecha_venta"`
}

// PedidoResponse pedido personalizado asociado a un cliente (solo lectura).
type PedidoResponse struct {
	PedidoID    string          `json:"pedido_id"`
	Descripcion string          `json:"descripcion"`
	Estado      string          `json:"estado_pedido"`
	Precio      decimal.Decimal `json:"precio_pedido"`
	Fecha       time.Time       `json:"fecha_pedido"`
}

// EstadisticasResponse agregados de compras completadas.
type EstadisticasResponse struct {
	TotalCompras int             `json:"total_compras"`
	TotalGastado decimal.Decimal `json:"total_gastado"`
}

// ClienteDetalleResponse cliente con sus asociaciones y estadísticas.
type ClienteDetalleResponse struct {
	ClienteResponse
	Ventas       []VentaResponse      `json:"ventas"`
	Pedidos      []PedidoResponse     `json:"pedidos_personalizados"`
	Estadisticas EstadisticasResponse `json:"estadisticas"`
}

// ClientesPageResponse página de clientes del listado.
type ClientesPageResponse struct {
	Data []ClienteResponse `json:"data"`
	Page
}

// ClienteFrecuenteResponse resumen de cliente frecuente.
type ClienteFrecuenteResponse struct {
	ClienteID    string          `json:"cliente_id"`
	Nombre       string          `json:"nombre_cliente"`
	Telefono     string          `json:"telefono"`
	Email        string          `json:"email,omitempty"`
	TotalCompras int             `json:"total_compras"`
	TotalGastado decimal.Decimal `json:"total_gastado"`
}
