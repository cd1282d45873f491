package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"scaffold_ai_server/config"
	"scaffold_ai_server/internal/api"
	"scaffold_ai_server/internal/install"
	"scaffold_ai_server/internal/llm"
	"scaffold_ai_server/internal/scaffold"
)

func main() {
	// --- Load .env file ---
	// Must happen BEFORE viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".") // Load from config.yaml or env vars
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// The workspace root must exist before any project directory is claimed
	// under it.
	if err := os.MkdirAll(cfg.WorkspaceRoot, 0o755); err != nil {
		log.Fatalf("Cannot create workspace root %s: %v", cfg.WorkspaceRoot, err)
	}

	// --- Dependency Initialization ---
	llmClient := llm.NewOpenAIClient(cfg.OpenAIKey, cfg.ModelID)

	installer := install.NewInstaller(cfg.InstallCommand)
	if installer == nil {
		log.Println("Info: INSTALL_COMMAND is empty, dependency install step disabled.")
	}

	generator := scaffold.NewGenerator(
		llmClient,
		cfg.WorkspaceRoot,
		time.Duration(cfg.GenerateTimeoutSeconds)*time.Second,
		installer,
	)

	apiHandler := api.NewAPIHandler(generator)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default()) // The form may be embedded in an editor webview

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks. The write timeout must
		// cover the model call, which dominates request latency.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.GenerateTimeoutSeconds+30) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
