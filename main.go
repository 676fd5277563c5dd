package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"freelancetracker/db/generated"
	_ "freelancetracker/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	dbPool  *pgxpool.Pool
	queries *generated.Queries
)

// @title Freelance Tracker API
// @description Personal finance tracker for freelancers: projects, expenses, subscriptions and derived financial reports.
// @version 1.0
// @BasePath /
func main() {
	// Database connection with defaults
	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "freelancetracker")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database with retry logic
	maxRetries := 30
	retryInterval := time.Second * 2

	var err error
	for i := 0; i < maxRetries; i++ {
		dbPool, err = pgxpool.New(context.Background(), connStr)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = dbPool.Ping(context.Background()); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			dbPool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer dbPool.Close()

	queries = generated.New(dbPool)

	// Run database migrations
	migrationsPath := filepath.Join(".", "db", "migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Println("Running database migrations...")
		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}
		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		log.Println("Database migrations completed successfully")
		migrationDB.Close()
	}

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	registerRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := getEnvOrDefault("PORT", "8080")

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// registerRoutes wires the API surface. The test harness reuses it against
// its own database.
func registerRoutes(r *gin.Engine) {
	r.GET("/api/projects", getProjects)
	r.POST("/api/projects", createProject)
	r.PUT("/api/projects/:id", updateProject)
	r.DELETE("/api/projects/:id", deleteProject)
	r.POST("/api/projects/:id/payments", addProjectPayment)
	r.PUT("/api/projects/:id/payments/:paymentId", updateProjectPayment)
	r.DELETE("/api/projects/:id/payments/:paymentId", deleteProjectPayment)

	r.GET("/api/expenses", getExpenses)
	r.POST("/api/expenses", createExpense)
	r.PUT("/api/expenses/:id", updateExpense)
	r.DELETE("/api/expenses/:id", deleteExpense)
	r.PUT("/api/expenses/:id/toggle-month", toggleExpenseMonth)

	r.GET("/api/settings", getSettings)
	r.PUT("/api/settings", updateSettings)

	r.GET("/api/reports/snapshot", getSnapshot)
	r.GET("/api/reports/health", getHealthScore)
	r.GET("/api/reports/receivables", getReceivables)
	r.GET("/api/reports/reminders", getReminders)
	r.GET("/api/reports/activity", getActivity)
	r.GET("/api/reports/progress", getProgress)
	r.GET("/api/calendar", getCalendar)

	r.GET("/api/export", exportData)
	r.POST("/api/import", importData)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
