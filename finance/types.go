package finance

import "time"

// ProjectType determines how a project's base rate is computed
type ProjectType string

const (
	ProjectFixed  ProjectType = "fixed"
	ProjectHourly ProjectType = "hourly"
	ProjectDaily  ProjectType = "daily"
)

// ContractType distinguishes one-off work from recurring engagements
type ContractType string

const (
	ContractOneOff         ContractType = "one_off"
	ContractRetainer       ContractType = "retainer"
	ContractRecurringFixed ContractType = "recurring_fixed"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaid      ProjectStatus = "paid"
	ProjectOngoing   ProjectStatus = "ongoing"
)

// PaymentStatus represents the stored state of a project payment.
// A missing status is normalized to PaymentPaid at ingestion; overdue is a
// derived display state, never stored.
type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "paid"
	PaymentScheduled PaymentStatus = "scheduled"
)

// ExpenseStatus represents the payment state of a non-recurring expense or a
// single month of a recurring expense's payment history
type ExpenseStatus string

const (
	ExpensePaid    ExpenseStatus = "paid"
	ExpensePending ExpenseStatus = "pending"
)

// WorkLog represents a logged unit of work on a project
type WorkLog struct {
	ID       string     `json:"id"`
	Date     *time.Time `json:"date"`
	Hours    float64    `json:"hours"`
	Billable *bool      `json:"billable"` // nil counts as billable
	Note     string     `json:"note,omitempty"`
}

// Payment represents a single itemized payment on a project
type Payment struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`
	Note   string        `json:"note,omitempty"`
}

// Adjustment represents an ad-hoc change to a project's gross amount
type Adjustment struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Amount float64    `json:"amount"`
	Date   *time.Time `json:"date"`
}

// Project represents a client engagement
type Project struct {
	ID               string        `json:"id"`
	ClientName       string        `json:"client_name"`
	ClientID         *string       `json:"client_id"`
	Type             ProjectType   `json:"type"`
	ContractType     ContractType  `json:"contract_type"`
	Status           ProjectStatus `json:"status"`
	Rate             float64       `json:"rate"`
	Currency         string        `json:"currency"`
	PlatformFee      float64       `json:"platform_fee"`
	StartDate        time.Time     `json:"start_date"`
	DueDate          *time.Time    `json:"due_date"`
	ContractEndDate  *time.Time    `json:"contract_end_date"`
	RenewalDate      *time.Time    `json:"renewal_date"`
	Logs             []WorkLog     `json:"logs"`
	Payments         []Payment     `json:"payments"`
	Adjustments      []Adjustment  `json:"adjustments"`
	LinkedExpenseIDs []string      `json:"linked_expense_ids"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// PaymentHistoryEntry marks one month of a recurring expense as paid.
// At most one entry exists per month; absence means the month is pending.
type PaymentHistoryEntry struct {
	Month    string        `json:"month"` // "YYYY-MM"
	Status   ExpenseStatus `json:"status"`
	PaidDate *time.Time    `json:"paid_date,omitempty"`
}

// Expense represents a one-off purchase or a recurring subscription
type Expense struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Amount         float64               `json:"amount"`
	Currency       string                `json:"currency"`
	Category       string                `json:"category"`
	Date           *time.Time            `json:"date"` // non-recurring only
	IsRecurring    bool                  `json:"is_recurring"`
	DueDay         int                   `json:"due_day"` // 1-31, recurring only
	Status         ExpenseStatus         `json:"status"`  // non-recurring only
	PaymentHistory []PaymentHistoryEntry `json:"payment_history"`
	IsTrial        bool                  `json:"is_trial"`
	TrialEndDate   *time.Time            `json:"trial_end_date"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// Config is the user-level context every derived figure depends on.
// Exchange rates are manually entered, relative to a common base.
type Config struct {
	MainCurrency      string             `json:"main_currency"`
	ExchangeRates     map[string]float64 `json:"exchange_rates"`
	MonthlyGoal       float64            `json:"monthly_goal"`
	TaxReservePercent float64            `json:"tax_reserve_percent"`
}

func (c Config) converter() Converter {
	return Converter{Rates: c.ExchangeRates}
}

// ProjectFinancials holds every derived money figure for a single project,
// all in the project's own currency
type ProjectFinancials struct {
	Gross         float64  `json:"gross"`
	Fees          float64  `json:"fees"`
	Net           float64  `json:"net"`
	Paid          float64  `json:"paid"`
	Scheduled     float64  `json:"scheduled"`
	OverdueAmount float64  `json:"overdue_amount"`
	Remaining     float64  `json:"remaining"`
	ExpenseTotal  float64  `json:"expense_total"`
	Profit        float64  `json:"profit"`
	IsOverdue     bool     `json:"is_overdue"`
	NextPayment   *Payment `json:"next_payment"`
}

// Receivable is a scheduled payment flattened out of its project
type Receivable struct {
	ProjectID       string    `json:"project_id"`
	PaymentID       string    `json:"payment_id"`
	ClientName      string    `json:"client_name"`
	Amount          float64   `json:"amount"`
	AmountConverted float64   `json:"amount_converted"`
	Currency        string    `json:"currency"`
	Date            time.Time `json:"date"`
	IsOverdue       bool      `json:"is_overdue"`
	DaysOverdue     int       `json:"days_overdue"`
}

// MonthSnapshot is the payment/trial state of one expense for one month
type MonthSnapshot struct {
	Paid          bool       `json:"paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	IsTrial       bool       `json:"is_trial"`
	TrialDaysLeft int        `json:"trial_days_left"`
	TrialExpired  bool       `json:"trial_expired"`
}

// RecurringProgress summarizes how much of a month's subscriptions are paid.
// Expenses in an active trial are excluded from both sides.
type RecurringProgress struct {
	TotalCount    int     `json:"total_count"`
	PaidCount     int     `json:"paid_count"`
	PendingCount  int     `json:"pending_count"`
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
	PercentPaid   int     `json:"percent_paid"`
}

// Reminder is an upcoming recurring expense due date
type Reminder struct {
	ExpenseID       string    `json:"expense_id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	AmountConverted float64   `json:"amount_converted"`
	DueDate         time.Time `json:"due_date"`
	DaysUntil       int       `json:"days_until"`
}

// PeriodExpenses aggregates expenses over a date range, in the main currency
type PeriodExpenses struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
}

// Snapshot is the composite financial picture for one period
type Snapshot struct {
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	OpenExpense      float64 `json:"open_expense"`
	ScheduledIncome  float64 `json:"scheduled_income"`
	OverdueIncome    float64 `json:"overdue_income"`
	Net              float64 `json:"net"`
	ProfitMargin     float64 `json:"profit_margin"`
	GoalProgress     float64 `json:"goal_progress"`
	TaxReserve       float64 `json:"tax_reserve"`
	RecurringIncome  float64 `json:"recurring_income"`
	RecurringExpense float64 `json:"recurring_expense"`
}

// HealthScore is the composite 0-100 financial health figure for this month
type HealthScore struct {
	Score        int     `json:"score"`
	Status       string  `json:"status"`
	GoalProgress float64 `json:"goal_progress"`
	ProfitMargin float64 `json:"profit_margin"`
	OverdueCount int     `json:"overdue_count"`
}

// ActivityEntry is one money event in the recent-activity feed
type ActivityEntry struct {
	Kind   string    `json:"kind"` // income or expense
	Label  string    `json:"label"`
	Amount float64   `json:"amount"` // main currency
	Date   time.Time `json:"date"`
}

// ActivityGroup is a labeled day bucket of the activity feed
type ActivityGroup struct {
	Label   string          `json:"label"`
	Entries []ActivityEntry `json:"entries"`
}

// CalendarEvent is one dated item in the month view
type CalendarEvent struct {
	Date      time.Time `json:"date"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	Amount    float64   `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Status    string    `json:"status,omitempty"`
	ProjectID string    `json:"project_id,omitempty"`
	ExpenseID string    `json:"expense_id,omitempty"`
}
