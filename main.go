package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/tyuok222/happy-hour-harmony-hub/cache"
	"github.com/tyuok222/happy-hour-harmony-hub/database"
	"github.com/tyuok222/happy-hour-harmony-hub/middleware"
	"github.com/tyuok222/happy-hour-harmony-hub/pkg/db/sqlite"
	"github.com/tyuok222/happy-hour-harmony-hub/util/api"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "happy-hour-harmony-hub",
		Usage: "Backend for the group event scheduling app.",
		Commands: []*cli.Command{
			serveCommand(),
			hashKeyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server.",
		Action: func(c *cli.Context) error {
			log.Println("Initializing application...")

			dbPath := os.Getenv("DB_PATH")
			if dbPath == "" {
				dbPath = "./harmony_hub.db"
			}
			log.Printf("Using database at: %s", dbPath)

			// Apply migrations before initializing the database
			migrationsPath := os.Getenv("MIGRATIONS_PATH")
			if migrationsPath == "" {
				migrationsPath = "pkg/db/migrations/sqlite"
			}
			_, err := sqlite.ConnectAndMigrate(dbPath, migrationsPath)
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			// Initialize Database
			if err := database.InitDB(dbPath); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			middleware.LoadAccessKey()
			api.EventCache = cache.NewClientFromEnv()

			mux := http.NewServeMux()

			// Access gate check for the UI password screen
			mux.HandleFunc("POST /auth/check", api.CheckAccessKeyHandler)

			// Event handlers
			mux.Handle("POST /events", middleware.AccessKeyMiddleware(http.HandlerFunc(api.CreateEventHandler)))
			mux.Handle("GET /events/{shortID}", middleware.AccessKeyMiddleware(http.HandlerFunc(api.GetEventHandler)))
			mux.Handle("GET /events/{shortID}/calendar.ics", middleware.AccessKeyMiddleware(http.HandlerFunc(api.EventICSHandler)))

			// Response handlers
			mux.Handle("POST /events/{shortID}/responses", middleware.AccessKeyMiddleware(http.HandlerFunc(api.SubmitResponseHandler)))
			mux.Handle("GET /events/{shortID}/summary", middleware.AccessKeyMiddleware(http.HandlerFunc(api.GetEventSummaryHandler)))

			// --- CORS Middleware ---
			corsOrigin := os.Getenv("CORS_ORIGIN")
			if corsOrigin == "" {
				corsOrigin = "http://localhost:3000"
			}
			co := cors.New(cors.Options{
				AllowedOrigins: []string{corsOrigin},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type", middleware.AccessKeyHeader},
			})

			handler := co.Handler(mux)

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080" // Default port if not specified
			}

			fmt.Printf("Server running on localhost:%s\n", port)
			return http.ListenAndServe(":"+port, handler)
		},
	}
}

func hashKeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash-key",
		Usage: "Hash a shared access phrase for the ACCESS_KEY_HASH variable.",
		Action: func(c *cli.Context) error {
			fmt.Print("Enter access phrase: ")
			phrase, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read phrase: %w", err)
			}
			if len(phrase) == 0 {
				return fmt.Errorf("access phrase must not be empty")
			}

			hash, err := bcrypt.GenerateFromPassword(phrase, bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash phrase: %w", err)
			}

			fmt.Println("Add this to your environment or .env file:")
			fmt.Printf("ACCESS_KEY_HASH=%s\n", hash)
			return nil
		},
	}
}
