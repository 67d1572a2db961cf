package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/gerenciamento-clientes/docs"
	"github.com/jhoicas/gerenciamento-clientes/internal/application/membership"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
	"github.com/jhoicas/gerenciamento-clientes/internal/infrastructure/memory"
	"github.com/jhoicas/gerenciamento-clientes/internal/infrastructure/migration"
	"github.com/jhoicas/gerenciamento-clientes/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gerenciamento-clientes/internal/interfaces/http"
	"github.com/jhoicas/gerenciamento-clientes/pkg/config"
	"github.com/jhoicas/gerenciamento-clientes/pkg/logger"
)

// storage repositórios de leitura + TxRunner do driver escolhido.
type storage struct {
	tx        membership.TxRunner
	customers repository.CustomerRepository
	accounts  repository.LedgerAccountRepository
	close     func()
}

// @title                       Gerenciamento de Clientes API
// @version                     1.0
// @description                 Adesão, saída e alteração do valor mensal de clientes, com a conta gráfica filhote.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>". Exigido apenas quando JWT_SECRET está definido.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicação")

	// valores monetários saem como número JSON (150.00), não como string
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	store := openStorage(ctx, cfg, log)
	defer store.close()

	membershipUC := membership.NewMembershipUseCase(store.tx, store.customers, store.accounts, log.Component("membership"))
	ledgerAccountUC := membership.NewLedgerAccountUseCase(store.accounts)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Gerenciamento de Clientes API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MembershipUC:    membershipUC,
		LedgerAccountUC: ledgerAccountUC,
		Logger:          log.Component("http"),
		JWT:             cfg.JWT,
		RateLimit:       cfg.RateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("armazenamento em memória: os dados se perdem ao encerrar")
		s := memory.NewStore()
		return storage{tx: s, customers: s.Customers(), accounts: s.LedgerAccounts(), close: func() {}}
	}

	if cfg.DB.AutoMigrate {
		m, err := migration.New(cfg.DB.ConnectionString(), log.Component("migration"))
		if err != nil {
			log.Fatal().Err(err).Msg("preparar migrações")
		}
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migrações")
		}
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("fechar migrador")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	return storage{
		tx:        postgres.NewTxRunner(pool),
		customers: postgres.NewCustomerRepository(pool),
		accounts:  postgres.NewLedgerAccountRepository(pool),
		close:     pool.Close,
	}
}
