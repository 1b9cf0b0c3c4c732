package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"waterwises-admin-go/internal/api"
	"waterwises-admin-go/internal/assets"
	"waterwises-admin-go/internal/config"
	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/middleware"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Firestore and Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}

	// --- 4. Initialize Repositories ---
	productoRepo := db.NewFirestoreProductoRepository(firestoreClient)
	aliadoRepo := db.NewFirestoreAliadoRepository(firestoreClient)
	categoriaRepo := db.NewFirestoreCategoriaRepository(firestoreClient)
	noticiaRepo := db.NewFirestoreNoticiaRepository(firestoreClient)
	proyectoRepo := db.NewFirestoreProyectoRepository(firestoreClient)
	empresaRepo := db.NewFirestoreEmpresaRepository(firestoreClient)
	adminRepo := db.NewFirestoreAdminRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 5. Initialize Services ---
	productoService := core.NewProductoService(productoRepo, aliadoRepo)
	aliadoService := core.NewAliadoService(aliadoRepo)
	categoriaService := core.NewCategoriaService(categoriaRepo)
	noticiaService := core.NewNoticiaService(noticiaRepo)
	proyectoService := core.NewProyectoService(proyectoRepo)
	empresaService := core.NewEmpresaService(empresaRepo)
	adminService := core.NewAdminService(adminRepo, firebaseAuthClient, zapLogger)
	resolver := assets.NewResolver(appConfig.SiteURL, zapLogger)
	zapLogger.Info("Core services initialized successfully.")

	// --- 6. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 7. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}
	router.Use(middleware.RequestTimeout(appConfig.RequestTimeout()))

	// --- 8. Setup API Routes ---
	authMiddleware := middleware.NewAuthMiddleware(firebaseAuthClient, adminRepo)
	api.SetupRoutes(router, api.Handlers{
		Producto:  api.NewProductoHandler(productoService, resolver),
		Aliado:    api.NewAliadoHandler(aliadoService),
		Categoria: api.NewCategoriaHandler(categoriaService),
		Noticia:   api.NewNoticiaHandler(noticiaService, resolver),
		Proyecto:  api.NewProyectoHandler(proyectoService),
		Empresa:   api.NewEmpresaHandler(empresaService),
		Admin:     api.NewAdminHandler(adminService),
		Asset:     api.NewAssetHandler(resolver),
	}, authMiddleware)
	zapLogger.Info("API routes configured.")

	// --- 9. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 10. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
