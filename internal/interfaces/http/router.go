package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laminasur/backoffice-api/internal/application/directory"
	"github.com/laminasur/backoffice-api/internal/application/sales"
	"github.com/laminasur/backoffice-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *stock.LedgerUseCase
	ClienteUC *directory.ClienteUseCase
	OrderUC   *sales.OrderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock (ledger)
	stockHandler := NewStockHandler(deps.Ledger)
	api.Get("/stock", stockHandler.GetCurrentStock)
	api.Get("/stock-movements", stockHandler.ListMovements)
	// Conserva la ruta del sistema anterior para el frontend existente.
	api.Post("/products", stockHandler.RegisterMovement)

	// Clientes
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes := api.Group("/clientes")
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)

	// Órdenes de venta
	orderHandler := NewSalesOrderHandler(deps.OrderUC)
	orders := api.Group("/sales-orders")
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id/payment", orderHandler.UpdatePayment)
	api.Get("/sales-orders-with-items", orderHandler.List)
}
