package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pdf-master-pro/internal/config"
	"pdf-master-pro/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	container := config.NewContainer()

	// Handlers
	pdfHandler := handler.NewPDFHandler(
		container.PDFService,
		container.CompressService,
		container.Config,
		container.Logger,
	)
	convertHandler := handler.NewConvertHandler(
		container.ConvertService,
		container.Config,
		container.Logger,
	)
	imageHandler := handler.NewImageHandler(
		container.ImageService,
		container.Config,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		pdfHandler,
		convertHandler,
		imageHandler,
		container.Logger,
	)

	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
