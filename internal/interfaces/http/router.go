package http

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/rs/zerolog"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AddStock       *inventory.AddStockUseCase
	Transfer       *inventory.TransferUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	ProductUC      *usecase.ProductUseCase
	Metrics        nethttp.Handler // opcional: expone /metrics
	JWTSecret      string
	JWTIssuer      string
	DefaultActorID int64
	RequestTimeout time.Duration // tope de las operaciones de escritura
	Log            zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api", ActorMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Escrituras: al vencer el plazo se cancela el contexto y la transacción hace rollback.
	write := func(h fiber.Handler) fiber.Handler {
		if deps.RequestTimeout <= 0 {
			return h
		}
		return timeout.NewWithContext(h, deps.RequestTimeout)
	}

	inventoryHandler := NewInventoryHandler(deps.AddStock, deps.DefaultActorID, deps.Log)
	api.Post("/inventarios", write(inventoryHandler.AddStock))

	transferHandler := NewTransferHandler(deps.Transfer, deps.DefaultActorID, deps.Log)
	api.Post("/traslados", write(transferHandler.Transfer))

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	api.Get("/bodegas", warehouseHandler.List)

	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	api.Get("/productos", productHandler.List)
}
