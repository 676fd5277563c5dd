package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"freelancetracker/db/generated"
	"freelancetracker/finance"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Validation functions

// validateProject checks the fields a project row cannot be stored without
func validateProject(p finance.Project) error {
	if strings.TrimSpace(p.ClientName) == "" {
		return fmt.Errorf("client_name cannot be empty")
	}
	switch p.Type {
	case finance.ProjectFixed, finance.ProjectHourly, finance.ProjectDaily:
	default:
		return fmt.Errorf("invalid project type %q", p.Type)
	}
	switch p.ContractType {
	case finance.ContractOneOff, finance.ContractRetainer, finance.ContractRecurringFixed:
	default:
		return fmt.Errorf("invalid contract type %q", p.ContractType)
	}
	switch p.Status {
	case finance.ProjectActive, finance.ProjectCompleted, finance.ProjectPaid, finance.ProjectOngoing:
	default:
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	if strings.TrimSpace(p.Currency) == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	return nil
}

// validateExpense checks the fields an expense row cannot be stored without.
// Recurring expenses never carry a one-off status; non-recurring ones never
// carry a payment history.
func validateExpense(e finance.Expense) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if strings.TrimSpace(e.Currency) == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	if e.IsRecurring {
		if e.DueDay != 0 && (e.DueDay < 1 || e.DueDay > 31) {
			return fmt.Errorf("due_day must be between 1 and 31")
		}
		if e.Status != "" {
			return fmt.Errorf("recurring expenses use payment_history, not status")
		}
	} else {
		if len(e.PaymentHistory) > 0 {
			return fmt.Errorf("non-recurring expenses do not have a payment_history")
		}
		switch e.Status {
		case finance.ExpensePaid, finance.ExpensePending, "":
		default:
			return fmt.Errorf("invalid expense status %q", e.Status)
		}
	}
	return nil
}

// validateSettings rejects configurations the engine would silently zero out
func validateSettings(cfg finance.Config) error {
	if strings.TrimSpace(cfg.MainCurrency) == "" {
		return fmt.Errorf("main_currency cannot be empty")
	}
	if cfg.ExchangeRates[cfg.MainCurrency] == 0 {
		return fmt.Errorf("exchange_rates must include a nonzero rate for %s", cfg.MainCurrency)
	}
	if cfg.TaxReservePercent < 0 || cfg.TaxReservePercent > 100 {
		return fmt.Errorf("tax_reserve_percent must be between 0 and 100")
	}
	return nil
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	errorStr := err.Error()

	if strings.Contains(errorStr, "duplicate key value violates unique constraint") {
		return http.StatusConflict, "Resource already exists"
	}

	if strings.Contains(errorStr, "no rows in result set") {
		return http.StatusNotFound, "Resource not found"
	}

	return http.StatusInternalServerError, "Internal server error"
}

// UUID and value conversion helpers

// parseUUIDParam converts a path parameter into a pgtype.UUID
func parseUUIDParam(s string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID format: %s", s)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func uuidString(id pgtype.UUID) string {
	return uuid.UUID(id.Bytes).String()
}

// floatToNumeric converts a float64 amount to pgtype.Numeric at cent precision
func floatToNumeric(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	str := big.NewFloat(finance.SafeFloat(f)).Text('f', 2)
	if err := n.Scan(str); err != nil {
		return n, fmt.Errorf("error converting amount to numeric: %w", err)
	}
	return n, nil
}

// numericToFloat converts a pgtype.Numeric to float64, 0 when NULL
func numericToFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	v, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return v.Float64
}

func timePtrToDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func dateToTimePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func strPtrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func textToStrPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// Row conversion functions

// unmarshalCollection parses a jsonb collection column, degrading to the
// zero value on malformed content instead of failing the whole row
func unmarshalCollection[T any](raw []byte, field string) T {
	var out T
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Error parsing %s collection: %v", field, err)
	}
	return out
}

// convertProject converts a generated.Project row into the domain type,
// with the legacy payment-status default applied
func convertProject(row generated.Project) finance.Project {
	p := finance.Project{
		ID:               uuidString(row.ID),
		ClientName:       row.ClientName,
		ClientID:         textToStrPtr(row.ClientID),
		Type:             finance.ProjectType(row.Type),
		ContractType:     finance.ContractType(row.ContractType),
		Status:           finance.ProjectStatus(row.Status),
		Rate:             numericToFloat(row.Rate),
		Currency:         row.Currency,
		PlatformFee:      numericToFloat(row.PlatformFee),
		DueDate:          dateToTimePtr(row.DueDate),
		ContractEndDate:  dateToTimePtr(row.ContractEndDate),
		RenewalDate:      dateToTimePtr(row.RenewalDate),
		Logs:             unmarshalCollection[[]finance.WorkLog](row.Logs, "logs"),
		Payments:         unmarshalCollection[[]finance.Payment](row.Payments, "payments"),
		Adjustments:      unmarshalCollection[[]finance.Adjustment](row.Adjustments, "adjustments"),
		LinkedExpenseIDs: unmarshalCollection[[]string](row.LinkedExpenseIds, "linked_expense_ids"),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
	if row.StartDate.Valid {
		p.StartDate = row.StartDate.Time
	}
	return finance.NormalizeProject(p)
}

// projectColumns marshals the domain project back into column values
type projectColumns struct {
	Rate             pgtype.Numeric
	PlatformFee      pgtype.Numeric
	Logs             []byte
	Payments         []byte
	Adjustments      []byte
	LinkedExpenseIds []byte
}

func projectToColumns(p finance.Project) (projectColumns, error) {
	var c projectColumns
	var err error

	if c.Rate, err = floatToNumeric(p.Rate); err != nil {
		return c, err
	}
	if c.PlatformFee, err = floatToNumeric(p.PlatformFee); err != nil {
		return c, err
	}

	p = finance.NormalizeProject(p)
	if c.Logs, err = json.Marshal(p.Logs); err != nil {
		return c, err
	}
	if c.Payments, err = json.Marshal(p.Payments); err != nil {
		return c, err
	}
	if c.Adjustments, err = json.Marshal(p.Adjustments); err != nil {
		return c, err
	}
	if c.LinkedExpenseIds, err = json.Marshal(p.LinkedExpenseIDs); err != nil {
		return c, err
	}
	return c, nil
}

// convertExpense converts a generated.Expense row into the domain type
func convertExpense(row generated.Expense) finance.Expense {
	e := finance.Expense{
		ID:             uuidString(row.ID),
		Title:          row.Title,
		Amount:         numericToFloat(row.Amount),
		Currency:       row.Currency,
		Category:       row.Category,
		Date:           dateToTimePtr(row.ExpenseDate),
		IsRecurring:    row.IsRecurring,
		IsTrial:        row.IsTrial,
		TrialEndDate:   dateToTimePtr(row.TrialEndDate),
		PaymentHistory: unmarshalCollection[[]finance.PaymentHistoryEntry](row.PaymentHistory, "payment_history"),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
	if row.DueDay.Valid {
		e.DueDay = int(row.DueDay.Int32)
	}
	if row.Status.Valid {
		e.Status = finance.ExpenseStatus(row.Status.String)
	}
	if e.PaymentHistory == nil {
		e.PaymentHistory = []finance.PaymentHistoryEntry{}
	}
	return e
}

// expenseColumns marshals the domain expense back into column values
type expenseColumns struct {
	Amount         pgtype.Numeric
	DueDay         pgtype.Int4
	Status         pgtype.Text
	PaymentHistory []byte
}

func expenseToColumns(e finance.Expense) (expenseColumns, error) {
	var c expenseColumns
	var err error

	if c.Amount, err = floatToNumeric(e.Amount); err != nil {
		return c, err
	}
	if e.DueDay > 0 {
		c.DueDay = pgtype.Int4{Int32: int32(e.DueDay), Valid: true}
	}
	if e.Status != "" {
		c.Status = pgtype.Text{String: string(e.Status), Valid: true}
	}
	history := e.PaymentHistory
	if history == nil {
		history = []finance.PaymentHistoryEntry{}
	}
	if c.PaymentHistory, err = json.Marshal(history); err != nil {
		return c, err
	}
	return c, nil
}

// convertSettings converts the settings row into the engine configuration
func convertSettings(row generated.Setting) finance.Config {
	cfg := finance.Config{
		MainCurrency:      row.MainCurrency,
		ExchangeRates:     unmarshalCollection[map[string]float64](row.ExchangeRates, "exchange_rates"),
		MonthlyGoal:       numericToFloat(row.MonthlyGoal),
		TaxReservePercent: numericToFloat(row.TaxReservePercent),
	}
	if cfg.ExchangeRates == nil {
		cfg.ExchangeRates = map[string]float64{cfg.MainCurrency: 1}
	}
	return cfg
}

// Engine loading

// loadEngineData fetches the full snapshot the engine computes over
func loadEngineData(ctx context.Context) ([]finance.Project, []finance.Expense, finance.Config, error) {
	rows, err := queries.GetProjects(ctx)
	if err != nil {
		return nil, nil, finance.Config{}, fmt.Errorf("failed to load projects: %w", err)
	}
	projects := make([]finance.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, convertProject(row))
	}

	expenseRows, err := queries.GetExpenses(ctx)
	if err != nil {
		return nil, nil, finance.Config{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	expenses := make([]finance.Expense, 0, len(expenseRows))
	for _, row := range expenseRows {
		expenses = append(expenses, convertExpense(row))
	}

	settingsRow, err := queries.GetSettings(ctx)
	if err != nil {
		return nil, nil, finance.Config{}, fmt.Errorf("failed to load settings: %w", err)
	}

	return projects, expenses, convertSettings(settingsRow), nil
}

// newEngine builds a per-request engine over the stored snapshot
func newEngine(ctx context.Context) (*finance.Engine, error) {
	projects, expenses, cfg, err := loadEngineData(ctx)
	if err != nil {
		return nil, err
	}
	return finance.NewEngine(projects, expenses, cfg, time.Now()), nil
}
