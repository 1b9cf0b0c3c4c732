// Command reconcile-aliados runs the one-off catalog cleanup that aligns
// free-text marca fields with canonical aliadoId references, including
// the legacy "XS Solutions" misspelling. The pass is idempotent: a rerun
// after convergence performs zero writes.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"waterwises-admin-go/internal/config"
	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/db"
)

func main() {
	// Batch tools load .env directly; there is no deployment environment
	// injecting variables the way the server has.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	appConfig, err := config.LoadConfig()
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		logger.Fatalw("failed to initialize Firebase Admin SDK", "error", err)
	}

	client := db.GetFirestoreClient()
	reconciler := core.NewReconciler(
		db.NewFirestoreProductoRepository(client),
		db.NewFirestoreAliadoRepository(client),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := reconciler.Run(ctx)
	if err != nil {
		logger.Fatalw("reconciliation pass failed", "error", err)
	}

	logger.Infow("reconciliation pass finished",
		"totalProductos", summary.TotalProductos,
		"productosActualizados", summary.ProductosActualizados,
		"subproductosActualizados", summary.SubproductosActualizados,
		"productosConAliado", summary.ProductosConAliado,
		"errores", summary.Errores,
	)

	if summary.Errores > 0 {
		os.Exit(1)
	}
}
