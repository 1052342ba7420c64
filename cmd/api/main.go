package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/application/usecase"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
	"github.com/jhoicas/bodegas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/bodegas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bodegas-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/bodegas-api/internal/interfaces/http"
	"github.com/jhoicas/bodegas-api/pkg/config"
	"github.com/jhoicas/bodegas-api/pkg/logger"
)

// ledger almacén seleccionado por STORE_DRIVER.
type ledger struct {
	txRunner   inventory.TxRunner
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	close      func()
}

func openLedger(ctx context.Context, cfg *config.Config) (*ledger, error) {
	if cfg.Store.Driver == config.DriverSQLite {
		store, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &ledger{
			txRunner:   store,
			products:   store.Products(),
			warehouses: store.Warehouses(),
			close:      func() { _ = store.Close() },
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &ledger{
		txRunner:   postgres.NewTxRunner(pool),
		products:   postgres.NewProductRepository(pool),
		warehouses: postgres.NewWarehouseRepository(pool),
		close:      pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openLedger(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al almacén de inventario")
	}
	defer store.close()

	stockMetrics := metrics.New()
	addStockUC := inventory.NewAddStockUseCase(store.txRunner, stockMetrics, log.Component("inventarios"))
	transferUC := inventory.NewTransferUseCase(store.txRunner, stockMetrics, log.Component("traslados"))
	warehouseUC := usecase.NewWarehouseUseCase(store.warehouses)
	productUC := usecase.NewProductUseCase(store.products)

	app := httpRouter.NewServer(cfg.App.Name, log.Component("http"))
	httpRouter.Router(app, httpRouter.RouterDeps{
		AddStock:       addStockUC,
		Transfer:       transferUC,
		WarehouseUC:    warehouseUC,
		ProductUC:      productUC,
		Metrics:        stockMetrics.Handler(),
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		DefaultActorID: cfg.Auth.DefaultActorID,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Log:            log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
