package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kopbox/kopbox-pos/config"
	"github.com/kopbox/kopbox-pos/internal/handler"
	"github.com/kopbox/kopbox-pos/internal/seed"
	"github.com/kopbox/kopbox-pos/internal/store"
	"github.com/kopbox/kopbox-pos/pkg/logger"

	cartUCPkg "github.com/kopbox/kopbox-pos/internal/cart/usecase"
	catalogRepoPkg "github.com/kopbox/kopbox-pos/internal/catalog/repository"
	catalogUCPkg "github.com/kopbox/kopbox-pos/internal/catalog/usecase"
	catRepoPkg "github.com/kopbox/kopbox-pos/internal/category/repository"
	catUCPkg "github.com/kopbox/kopbox-pos/internal/category/usecase"
	reindexUCPkg "github.com/kopbox/kopbox-pos/internal/reindex/usecase"
	salesRepoPkg "github.com/kopbox/kopbox-pos/internal/sales/repository"
	salesUCPkg "github.com/kopbox/kopbox-pos/internal/sales/usecase"
)

var seedFile string

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "KOPBOX in-memory point-of-sale",
	Long: "A single-session point-of-sale ledger with category-scoped item codes,\n" +
		"add-time stock reservation and an append-only sales journal. All state\n" +
		"lives in memory for the lifetime of the process.",
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFile, "seed", "s", "",
		"YAML catalog to load at startup (overrides SEED_FILE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// 1. Load configuration
	_ = godotenv.Load() // .env is optional
	cfg := config.LoadEnv()

	// 2. Initialize logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     cfg.App.AppEnv == "dev" || cfg.App.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer func() { _ = appLogger.Sync() }()

	// 3. Initialize the in-memory store and repositories
	db := store.New()
	catRepo := catRepoPkg.NewMemRepository(db)
	itemRepo := catalogRepoPkg.NewMemRepository(db)
	salesRepo := salesRepoPkg.NewMemRepository(db)

	// 4. Initialize usecases
	reindexer := reindexUCPkg.NewReindexUseCase(catRepo, itemRepo, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, itemRepo, salesRepo, reindexer, appLogger)
	itemUC := catalogUCPkg.NewCatalogUseCase(itemRepo, catRepo, reindexer, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(itemRepo, salesUC, appLogger)

	// 5. Seed the catalog
	seedPath := cfg.Seed.File
	if seedFile != "" {
		seedPath = seedFile
	}
	switch {
	case seedPath != "":
		catalog, err := seed.Load(seedPath)
		if err != nil {
			appLogger.Fatal("could not load seed catalog", zap.Error(err))
		}
		if err := seed.Apply(ctx, catalog, catUC, itemUC); err != nil {
			appLogger.Fatal("could not apply seed catalog", zap.Error(err))
		}
		appLogger.Info("seed catalog loaded", zap.String("file", seedPath))
	case cfg.Seed.Sample:
		if err := seed.Apply(ctx, seed.Sample(), catUC, itemUC); err != nil {
			appLogger.Fatal("could not apply sample catalog", zap.Error(err))
		}
		appLogger.Info("sample catalog loaded")
	}

	// 6. Run the interactive session
	session := handler.NewSession(os.Stdin, os.Stdout, cfg, catUC, itemUC, cartUC, salesUC, reindexer, appLogger)
	return session.Run(ctx)
}
