package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/chaiyapat/worklog/blobstore"
	"github.com/chaiyapat/worklog/controllers"
	"github.com/chaiyapat/worklog/database"
	auditmiddleware "github.com/chaiyapat/worklog/middleware"
	"github.com/chaiyapat/worklog/repositories"
	"github.com/chaiyapat/worklog/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database
	dbPath := getenv("WORKLOG_DB", "worklog.db")
	if err := database.InitializeDatabase(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize blob storage for uploaded files
	files, filesDir, err := setupBlobStore()
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos, files)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r := setupRouter(ctrl, repos, filesDir)

	// Get port from environment or use default
	port := getenv("PORT", "8080")

	fmt.Printf("🚀 Work log store starting on port %s\n", port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", port)
	fmt.Printf("🗃️  Database: %s\n", dbPath)

	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupBlobStore picks the object storage driver from the environment.
// The local disk driver is the default; filesDir is non-empty only for it,
// and enables the /files/ serving route.
func setupBlobStore() (blobstore.ObjectStore, string, error) {
	switch driver := getenv("STORAGE_DRIVER", "local"); driver {
	case "minio":
		useSSL, _ := strconv.ParseBool(getenv("MINIO_USE_SSL", "false"))
		store, err := blobstore.NewMinioStore(
			os.Getenv("MINIO_ENDPOINT"),
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			getenv("MINIO_BUCKET", "worklog-files"),
			useSSL,
		)
		return store, "", err
	case "local":
		dir := getenv("FILES_DIR", "files")
		store, err := blobstore.NewDiskStore(dir, "/files/")
		return store, dir, err
	default:
		return nil, "", fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, repos *repositories.Repositories, filesDir string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(auditmiddleware.AuditLogger(repos.Audit))

	// Stored files (local disk driver only; MinIO serves its own links)
	if filesDir != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir))))
	}

	r.Get("/", ctrl.Entries.Index)
	r.Post("/submit", ctrl.Submit.Create)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "worklog"}`)
	})

	return r
}

// getenv reads an environment variable with a default
func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
