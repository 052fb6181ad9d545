package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/auth"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/clientes"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-clientes-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ClienteUC *clientes.ClienteUseCase
	Reporte   *pdf.ReporteClientes
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Sesión (requiere Bearer Token, cualquier rol)
	sesion := api.Group("/auth", AuthMiddleware(deps.AuthUC))
	sesion.Post("/logout", authHandler.Logout)
	sesion.Get("/me", authHandler.Me)
	sesion.Get("/mi-perfil", authHandler.Perfil)

	// Clientes (requiere Bearer Token y rol de personal)
	clientesGroup := api.Group("/clientes",
		AuthMiddleware(deps.AuthUC),
		RequireRol(entity.RolAdministrador, entity.RolVendedor),
	)
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Reporte)
	clientesGroup.Get("/", clienteHandler.List)
	clientesGroup.Post("/", clienteHandler.Create)
	// Rutas estáticas antes de /:id para que no las capture el parámetro
	clientesGroup.Get("/frecuentes", clienteHandler.Frecuentes)
	clientesGroup.Get("/frecuentes/pdf", clienteHandler.FrecuentesPDF)
	clientesGroup.Get("/buscar", clienteHandler.Buscar)
	clientesGroup.Get("/buscar-telefono/:telefono", clienteHandler.BuscarPorTelefono)
	clientesGroup.Get("/:id", clienteHandler.GetByID)
	clientesGroup.Put("/:id", clienteHandler.Update)
	clientesGroup.Patch("/:id", clienteHandler.Update)
	clientesGroup.Delete("/:id", clienteHandler.Delete)
	clientesGroup.Patch("/:id/preferencias", clienteHandler.ActualizarPreferencias)
}
