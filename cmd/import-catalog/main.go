// Command import-catalog seeds Firestore collections from JSON files,
// replacing the ad-hoc migration scripts that populated the original
// store. Each argument names a collection and the file holding an array
// of documents for it:
//
//	import-catalog productos=seed/productos.json noticias=seed/noticias.json
//
// Product documents may nest their subproducts under a "subproductos"
// key; they are written to the subcollection of the created product.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"waterwises-admin-go/internal/config"
	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/db"
)

func loadSeedFile(path string) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs []map[string]any
	if err := json.NewDecoder(f).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return docs, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s collection=file.json [collection=file.json ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

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

	importer := core.NewCatalogImportService(db.NewFirestoreCatalogImporter(db.GetFirestoreClient()), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var total core.ImportSummary
	for _, arg := range flag.Args() {
		collection, path, ok := strings.Cut(arg, "=")
		if !ok || collection == "" || path == "" {
			logger.Fatalw("invalid argument, expected collection=file.json", "arg", arg)
		}

		docs, err := loadSeedFile(path)
		if err != nil {
			logger.Fatalw("failed to load seed file", "path", path, "error", err)
		}

		logger.Infow("importing seed file", "collection", collection, "path", path, "documents", len(docs))
		summary := importer.ImportCollection(ctx, collection, docs)
		total.Created += summary.Created
		total.SubCreated += summary.SubCreated
		total.Errores += summary.Errores
	}

	logger.Infow("import finished",
		"created", total.Created,
		"subproductosCreated", total.SubCreated,
		"errores", total.Errores,
	)

	if total.Errores > 0 {
		os.Exit(1)
	}
}
