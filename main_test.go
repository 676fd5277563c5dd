package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"freelancetracker/db/generated"
	"freelancetracker/finance"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

var (
	testDB      *pgxpool.Pool
	testQueries *generated.Queries
	testRouter  *gin.Engine
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if err := setupTestDB(); err != nil {
		log.Fatalf("Failed to setup test database: %v", err)
	}

	code := m.Run()

	if err := teardownTestDB(); err != nil {
		log.Printf("Failed to cleanup test database: %v", err)
	}

	os.Exit(code)
}

// setupTestDB creates a test database and runs migrations
func setupTestDB() error {
	dbHost := getEnvOrDefault("TEST_DB_HOST", "localhost")
	dbPort := getEnvOrDefault("TEST_DB_PORT", "5433")
	dbUser := getEnvOrDefault("TEST_DB_USER", "postgres")
	dbPassword := getEnvOrDefault("TEST_DB_PASSWORD", "password")
	dbName := getEnvOrDefault("TEST_DB_NAME", "freelancetracker_test")

	// Drop and recreate the test database for a clean state
	adminConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword)

	adminDB, err := sql.Open("postgres", adminConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to admin database: %w", err)
	}
	defer adminDB.Close()

	if _, err = adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		return fmt.Errorf("failed to drop test database: %w", err)
	}
	if _, err = adminDB.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		return fmt.Errorf("failed to create test database: %w", err)
	}

	testConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	testDB, err = pgxpool.New(context.Background(), testConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to test database: %w", err)
	}

	testSQLDB, err := sql.Open("postgres", testConnStr)
	if err != nil {
		return fmt.Errorf("failed to create SQL connection for migrations: %w", err)
	}
	defer testSQLDB.Close()

	if err := runMigrations(testSQLDB, "db/migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	testQueries = generated.New(testDB)

	setupTestRouter()

	return nil
}

// teardownTestDB cleans up the test database
func teardownTestDB() error {
	if testDB != nil {
		testDB.Close()
	}
	return nil
}

// setupTestRouter configures the test router with all routes
func setupTestRouter() {
	dbPool = testDB
	queries = testQueries

	testRouter = gin.New()
	registerRoutes(testRouter)
}

// cleanupTestData removes all data from test tables and resets settings
func cleanupTestData() error {
	ctx := context.Background()

	if _, err := testDB.Exec(ctx, "DELETE FROM projects"); err != nil {
		return fmt.Errorf("failed to clean projects: %w", err)
	}
	if _, err := testDB.Exec(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("failed to clean expenses: %w", err)
	}

	_, err := saveSettings(ctx, finance.Config{
		MainCurrency:      "USD",
		ExchangeRates:     map[string]float64{"USD": 1, "EUR": 1.1, "GBP": 1.27},
		MonthlyGoal:       5000,
		TaxReservePercent: 20,
	})
	if err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	return nil
}

// createTestProject inserts a project directly and returns its ID
func createTestProject(p finance.Project) (string, error) {
	cols, err := projectToColumns(p)
	if err != nil {
		return "", err
	}

	row, err := testQueries.CreateProject(context.Background(), generated.CreateProjectParams{
		ClientName:       p.ClientName,
		ClientID:         strPtrToText(p.ClientID),
		Type:             string(p.Type),
		ContractType:     string(p.ContractType),
		Status:           string(p.Status),
		Rate:             cols.Rate,
		Currency:         p.Currency,
		PlatformFee:      cols.PlatformFee,
		StartDate:        pgtype.Date{Time: p.StartDate, Valid: true},
		DueDate:          timePtrToDate(p.DueDate),
		ContractEndDate:  timePtrToDate(p.ContractEndDate),
		RenewalDate:      timePtrToDate(p.RenewalDate),
		Logs:             cols.Logs,
		Payments:         cols.Payments,
		Adjustments:      cols.Adjustments,
		LinkedExpenseIds: cols.LinkedExpenseIds,
	})
	if err != nil {
		return "", err
	}
	return uuidString(row.ID), nil
}

// createTestExpense inserts an expense directly and returns its ID
func createTestExpense(e finance.Expense) (string, error) {
	cols, err := expenseToColumns(e)
	if err != nil {
		return "", err
	}

	row, err := testQueries.CreateExpense(context.Background(), generated.CreateExpenseParams{
		Title:          e.Title,
		Amount:         cols.Amount,
		Currency:       e.Currency,
		Category:       e.Category,
		ExpenseDate:    timePtrToDate(e.Date),
		IsRecurring:    e.IsRecurring,
		DueDay:         cols.DueDay,
		Status:         cols.Status,
		PaymentHistory: cols.PaymentHistory,
		IsTrial:        e.IsTrial,
		TrialEndDate:   timePtrToDate(e.TrialEndDate),
	})
	if err != nil {
		return "", err
	}
	return uuidString(row.ID), nil
}

// fixedProject returns a minimal fixed-price project starting today
func fixedProject(clientName string, rate float64) finance.Project {
	return finance.Project{
		ClientName:   clientName,
		Type:         finance.ProjectFixed,
		ContractType: finance.ContractOneOff,
		Status:       finance.ProjectActive,
		Rate:         rate,
		Currency:     "USD",
		StartDate:    time.Now().AddDate(0, 0, -7),
	}
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
