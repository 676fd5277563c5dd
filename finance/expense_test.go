package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestExpenseSnapshot(t *testing.T) {
	month := MonthKeyFor(testNow) // 2026-08

	t.Run("recurring expense paid via history entry", func(t *testing.T) {
		e := Expense{
			IsRecurring:    true,
			PaymentHistory: []PaymentHistoryEntry{{Month: "2026-08", Status: ExpensePaid}},
		}

		assert.True(t, ExpenseSnapshot(e, month, testNow).Paid)
	})

	t.Run("recurring expense with no entry for the month is unpaid", func(t *testing.T) {
		e := Expense{
			IsRecurring:    true,
			PaymentHistory: []PaymentHistoryEntry{{Month: "2026-07", Status: ExpensePaid}},
		}

		assert.False(t, ExpenseSnapshot(e, month, testNow).Paid)
	})

	t.Run("non-recurring expense uses its status field", func(t *testing.T) {
		assert.True(t, ExpenseSnapshot(Expense{Status: ExpensePaid}, month, testNow).Paid)
		assert.False(t, ExpenseSnapshot(Expense{Status: ExpensePending}, month, testNow).Paid)
	})

	t.Run("active trial reports days left", func(t *testing.T) {
		e := Expense{IsTrial: true, TrialEndDate: timePtr(testNow.AddDate(0, 0, 10))}

		s := ExpenseSnapshot(e, month, testNow)

		assert.True(t, s.IsTrial)
		assert.Equal(t, 10, s.TrialDaysLeft)
		assert.False(t, s.TrialExpired)
	})

	t.Run("past trial end is expired", func(t *testing.T) {
		e := Expense{IsTrial: true, TrialEndDate: timePtr(testNow.AddDate(0, 0, -1))}

		s := ExpenseSnapshot(e, month, testNow)

		assert.False(t, s.IsTrial)
		assert.True(t, s.TrialExpired)
	})
}

func TestRecurringExpenseProgress(t *testing.T) {
	cfg := testConfig()
	month := MonthKeyFor(testNow)

	t.Run("splits paid and pending", func(t *testing.T) {
		expenses := []Expense{
			{IsRecurring: true, Amount: 10, Currency: "USD",
				PaymentHistory: []PaymentHistoryEntry{{Month: month.Str, Status: ExpensePaid}}},
			{IsRecurring: true, Amount: 30, Currency: "USD"},
			{Amount: 999, Currency: "USD"}, // non-recurring, ignored
		}

		prog := RecurringExpenseProgress(expenses, month, cfg, testNow)

		assert.Equal(t, 2, prog.TotalCount)
		assert.Equal(t, 1, prog.PaidCount)
		assert.Equal(t, 1, prog.PendingCount)
		assert.Equal(t, 40.0, prog.TotalAmount)
		assert.Equal(t, 10.0, prog.PaidAmount)
		assert.Equal(t, 30.0, prog.PendingAmount)
		assert.Equal(t, 50, prog.PercentPaid)
	})

	t.Run("active trials are neither paid nor pending", func(t *testing.T) {
		expenses := []Expense{
			{IsRecurring: true, Amount: 10, Currency: "USD"},
			{IsRecurring: true, Amount: 99, Currency: "USD",
				IsTrial: true, TrialEndDate: timePtr(testNow.AddDate(0, 0, 5))},
		}

		prog := RecurringExpenseProgress(expenses, month, cfg, testNow)

		assert.Equal(t, 1, prog.TotalCount)
		assert.Equal(t, 10.0, prog.TotalAmount)
	})

	t.Run("empty set has zero percent", func(t *testing.T) {
		prog := RecurringExpenseProgress(nil, month, cfg, testNow)
		assert.Equal(t, 0, prog.PercentPaid)
	})

	t.Run("percent is rounded", func(t *testing.T) {
		expenses := []Expense{
			{IsRecurring: true, Amount: 1, Currency: "USD",
				PaymentHistory: []PaymentHistoryEntry{{Month: month.Str, Status: ExpensePaid}}},
			{IsRecurring: true, Amount: 1, Currency: "USD"},
			{IsRecurring: true, Amount: 1, Currency: "USD"},
		}

		assert.Equal(t, 33, RecurringExpenseProgress(expenses, month, cfg, testNow).PercentPaid)
	})
}

func TestExpenseReminders(t *testing.T) {
	cfg := testConfig()
	// testNow is Aug 15; a 7-day window reaches Aug 22
	t.Run("includes due days inside the window, sorted", func(t *testing.T) {
		expenses := []Expense{
			{ID: "later", Title: "Hosting", IsRecurring: true, DueDay: 20, Amount: 12, Currency: "USD"},
			{ID: "today", Title: "Music", IsRecurring: true, DueDay: 15, Amount: 10, Currency: "USD"},
			{ID: "past", Title: "Gym", IsRecurring: true, DueDay: 3, Amount: 40, Currency: "USD"},
			{ID: "far", Title: "Storage", IsRecurring: true, DueDay: 28, Amount: 5, Currency: "USD"},
		}

		rs := ExpenseReminders(expenses, 7, cfg, testNow)

		require.Len(t, rs, 2)
		assert.Equal(t, "today", rs[0].ExpenseID)
		assert.Equal(t, 0, rs[0].DaysUntil)
		assert.Equal(t, "later", rs[1].ExpenseID)
		assert.Equal(t, 5, rs[1].DaysUntil)
	})

	t.Run("trialing subscriptions raise no reminder", func(t *testing.T) {
		expenses := []Expense{{
			ID: "trial", IsRecurring: true, DueDay: 17, Amount: 15, Currency: "USD",
			IsTrial: true, TrialEndDate: timePtr(testNow.AddDate(0, 0, 10)),
		}}

		assert.Empty(t, ExpenseReminders(expenses, 7, cfg, testNow))
	})

	t.Run("expenses without a due day are skipped", func(t *testing.T) {
		expenses := []Expense{{ID: "nodue", IsRecurring: true, Amount: 15, Currency: "USD"}}
		assert.Empty(t, ExpenseReminders(expenses, 7, cfg, testNow))
	})
}

func TestExpensesPaidInPeriod(t *testing.T) {
	cfg := testConfig()
	period := MonthPeriod(testNow) // August 2026

	t.Run("recurring paid months map to due-day dates", func(t *testing.T) {
		expenses := []Expense{{
			IsRecurring: true, Amount: 10, Currency: "USD", Category: "software", DueDay: 5,
			PaymentHistory: []PaymentHistoryEntry{
				{Month: "2026-08", Status: ExpensePaid},
				{Month: "2026-07", Status: ExpensePaid}, // outside the period
			},
		}}

		r := ExpensesPaidInPeriod(expenses, period, cfg)

		assert.Equal(t, 10.0, r.Total)
		assert.Equal(t, 10.0, r.ByCategory["software"])
	})

	t.Run("missing due day defaults to the 15th", func(t *testing.T) {
		expenses := []Expense{{
			IsRecurring: true, Amount: 25, Currency: "USD", Category: "tools",
			PaymentHistory: []PaymentHistoryEntry{{Month: "2026-08", Status: ExpensePaid}},
		}}

		assert.Equal(t, 25.0, ExpensesPaidInPeriod(expenses, period, cfg).Total)
	})

	t.Run("non-recurring requires paid status and a date in range", func(t *testing.T) {
		expenses := []Expense{
			{Amount: 50, Currency: "USD", Category: "gear", Status: ExpensePaid, Date: timePtr(testNow)},
			{Amount: 60, Currency: "USD", Category: "gear", Status: ExpensePending, Date: timePtr(testNow)},
			{Amount: 70, Currency: "USD", Category: "gear", Status: ExpensePaid, Date: timePtr(testNow.AddDate(0, -2, 0))},
		}

		r := ExpensesPaidInPeriod(expenses, period, cfg)

		assert.Equal(t, 50.0, r.Total)
	})

	t.Run("amounts convert to the main currency", func(t *testing.T) {
		expenses := []Expense{{Amount: 100, Currency: "EUR", Category: "travel", Status: ExpensePaid, Date: timePtr(testNow)}}

		assert.Equal(t, 110.0, ExpensesPaidInPeriod(expenses, period, cfg).Total)
	})
}

func TestOpenExpensesInPeriod(t *testing.T) {
	cfg := testConfig()
	thisMonth := MonthPeriod(testNow)

	t.Run("unpaid recurring counts when today is in the period", func(t *testing.T) {
		expenses := []Expense{{IsRecurring: true, Amount: 30, Currency: "USD", Category: "software"}}

		assert.Equal(t, 30.0, OpenExpensesInPeriod(expenses, thisMonth, cfg, testNow).Total)
	})

	t.Run("recurring is ignored for historical periods", func(t *testing.T) {
		expenses := []Expense{{IsRecurring: true, Amount: 30, Currency: "USD"}}
		lastMonth := RangeLastMonth(testNow)

		assert.Equal(t, 0.0, OpenExpensesInPeriod(expenses, lastMonth, cfg, testNow).Total)
	})

	t.Run("paid recurring months are not open", func(t *testing.T) {
		expenses := []Expense{{
			IsRecurring: true, Amount: 30, Currency: "USD",
			PaymentHistory: []PaymentHistoryEntry{{Month: "2026-08", Status: ExpensePaid}},
		}}

		assert.Equal(t, 0.0, OpenExpensesInPeriod(expenses, thisMonth, cfg, testNow).Total)
	})

	t.Run("active trials are excluded", func(t *testing.T) {
		expenses := []Expense{{
			IsRecurring: true, Amount: 30, Currency: "USD",
			IsTrial: true, TrialEndDate: timePtr(testNow.AddDate(0, 0, 3)),
		}}

		assert.Equal(t, 0.0, OpenExpensesInPeriod(expenses, thisMonth, cfg, testNow).Total)
	})

	t.Run("pending non-recurring in range counts", func(t *testing.T) {
		expenses := []Expense{
			{Amount: 80, Currency: "USD", Category: "gear", Status: ExpensePending, Date: timePtr(testNow)},
			{Amount: 90, Currency: "USD", Category: "gear", Status: ExpensePaid, Date: timePtr(testNow)},
		}

		assert.Equal(t, 80.0, OpenExpensesInPeriod(expenses, thisMonth, cfg, testNow).Total)
	})
}

func TestRecurringExpenseTotal(t *testing.T) {
	cfg := testConfig()

	expenses := []Expense{
		{IsRecurring: true, Amount: 10, Currency: "USD"},
		{IsRecurring: true, Amount: 100, Currency: "EUR"},
		{IsRecurring: true, Amount: 99, Currency: "USD", IsTrial: true, TrialEndDate: timePtr(testNow.AddDate(0, 0, 30))},
		{Amount: 500, Currency: "USD"}, // one-off, not part of the burn rate
	}

	// 10 + 100 EUR at 1.1
	assert.Equal(t, 120.0, RecurringExpenseTotal(expenses, cfg, testNow))
}

func TestTogglePaymentMonth(t *testing.T) {
	month := MonthKeyFor(testNow)

	t.Run("absent month gains a paid entry", func(t *testing.T) {
		out := TogglePaymentMonth(nil, month, testNow)

		require.Len(t, out, 1)
		assert.Equal(t, month.Str, out[0].Month)
		assert.Equal(t, ExpensePaid, out[0].Status)
		require.NotNil(t, out[0].PaidDate)
	})

	t.Run("toggling twice restores the prior state", func(t *testing.T) {
		prior := []PaymentHistoryEntry{{Month: "2026-07", Status: ExpensePaid}}

		once := TogglePaymentMonth(prior, month, testNow)
		twice := TogglePaymentMonth(once, month, testNow)

		assert.Equal(t, prior, twice)
	})

	t.Run("removal keeps other months untouched", func(t *testing.T) {
		history := []PaymentHistoryEntry{
			{Month: "2026-07", Status: ExpensePaid},
			{Month: month.Str, Status: ExpensePaid},
			{Month: "2026-06", Status: ExpensePaid},
		}

		out := TogglePaymentMonth(history, month, testNow)

		require.Len(t, out, 2)
		assert.Equal(t, "2026-07", out[0].Month)
		assert.Equal(t, "2026-06", out[1].Month)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		history := []PaymentHistoryEntry{{Month: "2026-07", Status: ExpensePaid}}

		_ = TogglePaymentMonth(history, month, testNow)

		assert.Equal(t, "2026-07", history[0].Month)
		assert.Len(t, history, 1)
	})
}
