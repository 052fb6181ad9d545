package clientes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/repository"
)

// Umbrales del reporte de clientes frecuentes.
const (
	MinComprasFrecuente  = 3
	LimiteFrecuentes     = 10
	LimiteBusquedaRapida = 10
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		clientes repository.ClienteRepository,
		tokens repository.TokenRepository,
	) error) error
}

// ClienteUseCase casos de uso de clientes: CRUD, búsquedas y agregados de ventas.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	tx   TxRunner
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, tx TxRunner) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, tx: tx}
}

// Create registra un cliente sin cuenta de acceso (alta directa por el personal).
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cliente := &entity.Cliente{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		DNI:           in.DNI,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Direccion:     in.Direccion,
		FechaRegistro: time.Now(),
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		if errors.Is(err, domain.ErrEmailYaRegistrado) {
			return nil, domain.ValidationErrors{"email": "el email ya está registrado"}
		}
		return nil, err
	}
	out := toResponse(cliente)
	return &out, nil
}

// GetDetalle devuelve el cliente con sus ventas y pedidos personalizados
// asociados, más estadísticas de compras completadas (total_compras,
// total_gastado redondeado a 2 decimales).
func (uc *ClienteUseCase) GetDetalle(ctx context.Context, id string) (*dto.ClienteDetalleResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	ventas, err := uc.repo.VentasByCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	pedidos, err := uc.repo.PedidosByCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.Estadisticas(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.ClienteDetalleResponse{
		ClienteResponse: toResponse(cliente),
		Ventas:          make([]dto.VentaResponse, 0, len(ventas)),
		Pedidos:         make([]dto.PedidoResponse, 0, len(pedidos)),
		Estadisticas: dto.EstadisticasResponse{
			TotalCompras: stats.TotalCompras,
			TotalGastado: stats.TotalGastado.Round(2),
		},
	}
	for _, v := range ventas {
		out.Ventas = append(out.Ventas, dto.VentaResponse{
			VentaID: v.ID,
			Total:   v.Total,
			Estado:  v.Estado,
			Fecha:   v.Fecha,
		})
	}
	for _, p := range pedidos {
		out.Pedidos = append(out.Pedidos, dto.PedidoResponse{
			PedidoID:    p.ID,
			Descripcion: p.Descripcion,
			Estado:      p.Estado,
			Precio:      p.Precio,
			Fecha:       p.Fecha,
		})
	}
	return out, nil
}

// List devuelve la página pedida del listado, con filtro `buscar` sobre
// nombre, teléfono y email.
func (uc *ClienteUseCase) List(ctx context.Context, in dto.ListClientesRequest) (*dto.ClientesPageResponse, error) {
	in.Defaults()
	list, total, err := uc.repo.List(ctx, repository.ListClientesParams{
		Buscar:   in.Buscar,
		OrderBy:  in.OrderBy,
		OrderDir: in.OrderDir,
		PerPage:  in.PerPage,
		Page:     in.Page,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.ClientesPageResponse{
		Data: make([]dto.ClienteResponse, 0, len(list)),
		Page: dto.Page{
			Total:    total,
			PerPage:  in.PerPage,
			Page:     in.Page,
			LastPage: lastPage(total, in.PerPage),
		},
	}
	for _, c := range list {
		out.Data = append(out.Data, toResponse(c))
	}
	return out, nil
}

// Update aplica un parche disperso: solo cambian los campos presentes en el
// request; un parche vacío devuelve el registro sin tocar. La unicidad de
// email se reevalúa excluyendo el propio registro.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Vacio() {
		out := toResponse(cliente)
		return &out, nil
	}
	if in.Email != nil && *in.Email != "" && *in.Email != cliente.Email {
		enUso, err := uc.repo.EmailEnUso(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if enUso {
			return nil, domain.ValidationErrors{"email": "el email ya está registrado"}
		}
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.DNI != nil {
		cliente.DNI = *in.DNI
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Contacto != nil {
		cliente.Contacto = *in.Contacto
	}
	if in.Preferencias != nil {
		cliente.Preferencias = *in.Preferencias
	}
	if err := uc.repo.Update(ctx, cliente); err != nil {
		if errors.Is(err, domain.ErrEmailYaRegistrado) {
			return nil, domain.ValidationErrors{"email": "el email ya está registrado"}
		}
		return nil, err
	}
	out := toResponse(cliente)
	return &out, nil
}

// Delete elimina un cliente sin ventas. La verificación de ventas y el borrado
// corren en la misma transacción para que no pueda colarse una venta entre ambos.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.UserRepository, clientes repository.ClienteRepository, _ repository.TokenRepository) error {
		cliente, err := clientes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrClienteNotFound
		}
		n, err := clientes.CountVentas(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrClienteConVentas
		}
		return clientes.Delete(ctx, id)
	})
}

// BuscarPorTelefono busca por coincidencia exacta de teléfono.
func (uc *ClienteUseCase) BuscarPorTelefono(ctx context.Context, telefono string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByTelefono(ctx, telefono)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	out := toResponse(cliente)
	return &out, nil
}

// Buscar búsqueda universal por nombre, DNI, teléfono o email (máximo 10 resultados).
func (uc *ClienteUseCase) Buscar(ctx context.Context, termino string) ([]dto.ClienteResponse, error) {
	if termino == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.BuscarRapido(ctx, termino, LimiteBusquedaRapida)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// Frecuentes lista clientes con al menos 3 compras completadas, ordenados por
// número de compras descendente.
func (uc *ClienteUseCase) Frecuentes(ctx context.Context) ([]dto.ClienteFrecuenteResponse, error) {
	list, err := uc.repo.Frecuentes(ctx, MinComprasFrecuente, LimiteFrecuentes)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteFrecuenteResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.ClienteFrecuenteResponse{
			ClienteID:    f.Cliente.ID,
			Nombre:       f.Cliente.Nombre,
			Telefono:     f.Cliente.Telefono,
			Email:        f.Cliente.Email,
			TotalCompras: f.TotalCompras,
			TotalGastado: f.TotalGastado.Round(2),
		})
	}
	return out, nil
}

// ActualizarPreferencias reemplaza el texto de preferencias del cliente.
func (uc *ClienteUseCase) ActualizarPreferencias(ctx context.Context, id string, in dto.PreferenciasRequest) (*dto.ClienteResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	cliente.Preferencias = in.Preferencias
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	out := toResponse(cliente)
	return &out, nil
}

func lastPage(total, perPage int) int {
	if total == 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func toResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ClienteID:     c.ID,
		UserID:        c.UserID,
		Nombre:        c.Nombre,
		DNI:           c.DNI,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Direccion:     c.Direccion,
		Preferencias:  c.Preferencias,
		Contacto:      c.Contacto,
		FechaRegistro: c.FechaRegistro,
	}
}
