package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"pdf-master-pro/internal/domain"
)

// NewRouter creates a new HTTP router with all routes configured.
// Cross-origin requests are permitted from any origin; the service is
// meant to sit behind a browser frontend on another host.
func NewRouter(pdfHandler *PDFHandler, convertHandler *ConvertHandler, imageHandler *ImageHandler, logger domain.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", Health).Methods("GET")

	api.HandleFunc("/merge", pdfHandler.Merge).Methods("POST")
	api.HandleFunc("/split", pdfHandler.Split).Methods("POST")
	api.HandleFunc("/compress", pdfHandler.Compress).Methods("POST")
	api.HandleFunc("/protect", pdfHandler.Protect).Methods("POST")
	api.HandleFunc("/unlock", pdfHandler.Unlock).Methods("POST")
	api.HandleFunc("/page-number", pdfHandler.PageNumber).Methods("POST")

	api.HandleFunc("/pdf-to-word", convertHandler.PDFToWord).Methods("POST")
	api.HandleFunc("/word-to-pdf", convertHandler.WordToPDF).Methods("POST")

	api.HandleFunc("/pdf-to-jpg", imageHandler.PDFToJPG).Methods("POST")
	api.HandleFunc("/jpg-to-pdf", imageHandler.JPGToPDF).Methods("POST")

	return cors.AllowAll().Handler(router)
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
