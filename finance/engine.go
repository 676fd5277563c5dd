package finance

import (
	"math"
	"sort"
	"time"
)

// Engine composes the project and expense calculators into dashboard-level
// views over one consistent snapshot of the data. It captures its inputs and
// a single reference timestamp at construction, never mutates them, and does
// no I/O; construct one per request and recompute freely.
type Engine struct {
	projects []Project
	expenses []Expense
	cfg      Config
	conv     Converter
	now      time.Time
}

// NewEngine builds an engine over a snapshot of projects, expenses and
// configuration. All overdue, trial and reminder logic is evaluated against
// the given now, which makes every output deterministic.
func NewEngine(projects []Project, expenses []Expense, cfg Config, now time.Time) *Engine {
	return &Engine{
		projects: projects,
		expenses: expenses,
		cfg:      cfg,
		conv:     cfg.converter(),
		now:      now,
	}
}

// Now returns the reference timestamp the engine was built with
func (e *Engine) Now() time.Time {
	return e.now
}

// Receivables returns every scheduled payment across all projects, sorted by
// date ascending
func (e *Engine) Receivables() []Receivable {
	return ProjectReceivables(e.projects, e.cfg, e.now)
}

// Reminders returns upcoming recurring expense due dates within daysAhead days
func (e *Engine) Reminders(daysAhead int) []Reminder {
	return ExpenseReminders(e.expenses, daysAhead, e.cfg, e.now)
}

// Progress returns the recurring paid/pending split for the month containing now
func (e *Engine) Progress() RecurringProgress {
	return RecurringExpenseProgress(e.expenses, MonthKeyFor(e.now), e.cfg, e.now)
}

// toMain converts an amount into the main currency
func (e *Engine) toMain(amount float64, currency string) float64 {
	return e.conv.Convert(amount, currency, e.cfg.MainCurrency)
}

// incomeInPeriod sums paid project payments dated inside the period, in the
// main currency
func (e *Engine) incomeInPeriod(period Period) float64 {
	var income float64
	for _, p := range e.projects {
		for _, pay := range p.Payments {
			if pay.Status == PaymentScheduled {
				continue
			}
			if period.Contains(pay.Date) {
				income = SafeFloat(income + e.toMain(safeNum(pay.Amount), p.Currency))
			}
		}
	}
	return income
}

// Snapshot composes the full financial picture for one period: paid income
// and expenses inside it, what is still open, scheduled and overdue
// receivables, margin, goal progress, tax reserve and the standing recurring
// figures. Overdue receivables count regardless of the period; money already
// late is relevant to any view.
func (e *Engine) Snapshot(period Period) Snapshot {
	income := e.incomeInPeriod(period)
	paidExpenses := ExpensesPaidInPeriod(e.expenses, period, e.cfg)
	openExpenses := OpenExpensesInPeriod(e.expenses, period, e.cfg, e.now)

	var scheduled, overdue float64
	for _, r := range e.Receivables() {
		if r.IsOverdue {
			overdue = SafeFloat(overdue + r.AmountConverted)
			scheduled = SafeFloat(scheduled + r.AmountConverted)
		} else if period.Contains(r.Date) {
			scheduled = SafeFloat(scheduled + r.AmountConverted)
		}
	}

	net := SafeFloat(income - paidExpenses.Total)

	var margin float64
	if income > 0 {
		margin = SafeFloat(net / income * 100)
	}

	var goalProgress float64
	if e.cfg.MonthlyGoal > 0 {
		goalProgress = math.Min(100, SafeFloat(income/e.cfg.MonthlyGoal*100))
	}

	return Snapshot{
		Income:           income,
		Expense:          paidExpenses.Total,
		OpenExpense:      openExpenses.Total,
		ScheduledIncome:  scheduled,
		OverdueIncome:    overdue,
		Net:              net,
		ProfitMargin:     margin,
		GoalProgress:     goalProgress,
		TaxReserve:       SafeFloat(income * safeNum(e.cfg.TaxReservePercent) / 100),
		RecurringIncome:  RecurringIncome(e.projects, e.cfg),
		RecurringExpense: RecurringExpenseTotal(e.expenses, e.cfg, e.now),
	}
}

// Health score weights. The composite is a contract: goal progress at 0.5,
// clamped profit margin at 0.35, minus 5 points per overdue receivable
// capped at 15, clamped to [0, 100].
const (
	healthGoalWeight     = 0.5
	healthMarginWeight   = 0.35
	healthOverduePoints  = 5
	healthOverdueCap     = 15
	healthExcellentFloor = 70
	healthWarningFloor   = 40
)

// HealthScore evaluates the composite financial health figure. It always
// looks at the current month, whatever range the caller is viewing.
func (e *Engine) HealthScore() HealthScore {
	snap := e.Snapshot(RangeThisMonth(e.now))

	var overdueCount int
	for _, r := range e.Receivables() {
		if r.IsOverdue {
			overdueCount++
		}
	}

	penalty := math.Min(healthOverdueCap, float64(overdueCount*healthOverduePoints))
	raw := snap.GoalProgress*healthGoalWeight + Clamp(snap.ProfitMargin, 0, 100)*healthMarginWeight - penalty
	score := int(Clamp(math.Round(raw), 0, 100))

	status := "critical"
	switch {
	case score >= healthExcellentFloor:
		status = "excellent"
	case score >= healthWarningFloor:
		status = "warning"
	}

	return HealthScore{
		Score:        score,
		Status:       status,
		GoalProgress: snap.GoalProgress,
		ProfitMargin: snap.ProfitMargin,
		OverdueCount: overdueCount,
	}
}

// RecentActivity merges paid payments and paid expense occurrences across
// all history, newest first, truncated to limit, then grouped into Today /
// Last 7 Days / Earlier buckets with empty buckets omitted. The truncation
// deliberately happens before grouping, so a small limit can leave Today
// under-represented when older events dominate; changing that ordering would
// change what existing consumers see.
func (e *Engine) RecentActivity(limit int) []ActivityGroup {
	var entries []ActivityEntry

	for _, p := range e.projects {
		for _, pay := range p.Payments {
			if pay.Status == PaymentScheduled {
				continue
			}
			entries = append(entries, ActivityEntry{
				Kind:   "income",
				Label:  p.ClientName,
				Amount: e.toMain(safeNum(pay.Amount), p.Currency),
				Date:   pay.Date,
			})
		}
	}

	for _, x := range e.expenses {
		if x.IsRecurring {
			for _, h := range x.PaymentHistory {
				if h.Status != ExpensePaid {
					continue
				}
				month, err := ParseMonthKey(h.Month)
				if err != nil {
					continue
				}
				entries = append(entries, ActivityEntry{
					Kind:   "expense",
					Label:  x.Title,
					Amount: e.toMain(x.Amount, x.Currency),
					Date:   occurrenceDate(x, month),
				})
			}
		} else if x.Date != nil && x.Status == ExpensePaid {
			entries = append(entries, ActivityEntry{
				Kind:   "expense",
				Label:  x.Title,
				Amount: e.toMain(x.Amount, x.Currency),
				Date:   *x.Date,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	today := startOfDay(e.now)
	weekAgo := today.AddDate(0, 0, -7)

	groups := []ActivityGroup{
		{Label: "Today"},
		{Label: "Last 7 Days"},
		{Label: "Earlier"},
	}
	for _, entry := range entries {
		switch {
		case !entry.Date.Before(today):
			groups[0].Entries = append(groups[0].Entries, entry)
		case !entry.Date.Before(weekAgo):
			groups[1].Entries = append(groups[1].Entries, entry)
		default:
			groups[2].Entries = append(groups[2].Entries, entry)
		}
	}

	var out []ActivityGroup
	for _, g := range groups {
		if len(g.Entries) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// moneyEventStatus derives the display status of any dated money event:
// paid wins, then overdue if the date has passed, else pending
func (e *Engine) moneyEventStatus(paid bool, date time.Time) string {
	switch {
	case paid:
		return "paid"
	case IsOverdue(date, e.now):
		return "overdue"
	default:
		return "pending"
	}
}

// CalendarEvents lists every dated item inside the month containing
// monthDate: project starts and due dates, payments, trial ends, recurring
// due dates and one-off expenses, sorted by date ascending.
func (e *Engine) CalendarEvents(monthDate time.Time) []CalendarEvent {
	period := MonthPeriod(monthDate)
	month := MonthKeyFor(monthDate)

	var events []CalendarEvent

	for _, p := range e.projects {
		if period.Contains(p.StartDate) {
			events = append(events, CalendarEvent{
				Date:      p.StartDate,
				Kind:      "project_start",
				Label:     p.ClientName,
				ProjectID: p.ID,
			})
		}
		if p.DueDate != nil && period.Contains(*p.DueDate) {
			events = append(events, CalendarEvent{
				Date:      *p.DueDate,
				Kind:      "project_due",
				Label:     p.ClientName,
				ProjectID: p.ID,
			})
		}
		for _, pay := range p.Payments {
			if !period.Contains(pay.Date) {
				continue
			}
			events = append(events, CalendarEvent{
				Date:      pay.Date,
				Kind:      "payment",
				Label:     p.ClientName,
				Amount:    SafeFloat(pay.Amount),
				Currency:  p.Currency,
				Status:    e.moneyEventStatus(pay.Status != PaymentScheduled, pay.Date),
				ProjectID: p.ID,
			})
		}
	}

	for _, x := range e.expenses {
		if x.TrialEndDate != nil && period.Contains(*x.TrialEndDate) {
			events = append(events, CalendarEvent{
				Date:      *x.TrialEndDate,
				Kind:      "trial_end",
				Label:     x.Title,
				Amount:    SafeFloat(x.Amount),
				Currency:  x.Currency,
				ExpenseID: x.ID,
			})
		}

		if x.IsRecurring {
			if x.DueDay < 1 {
				continue
			}
			// a trial running past month-end means no payment is due this month
			if InActiveTrial(x, e.now) && x.TrialEndDate.After(period.End) {
				continue
			}
			due := time.Date(month.Year, month.Month, x.DueDay, 0, 0, 0, 0, monthDate.Location())
			events = append(events, CalendarEvent{
				Date:      due,
				Kind:      "expense_due",
				Label:     x.Title,
				Amount:    SafeFloat(x.Amount),
				Currency:  x.Currency,
				Status:    e.moneyEventStatus(ExpenseSnapshot(x, month, e.now).Paid, due),
				ExpenseID: x.ID,
			})
		} else if x.Date != nil && period.Contains(*x.Date) {
			events = append(events, CalendarEvent{
				Date:      *x.Date,
				Kind:      "expense",
				Label:     x.Title,
				Amount:    SafeFloat(x.Amount),
				Currency:  x.Currency,
				Status:    e.moneyEventStatus(x.Status == ExpensePaid, *x.Date),
				ExpenseID: x.ID,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}
