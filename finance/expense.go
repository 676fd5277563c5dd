package finance

import (
	"sort"
	"time"
)

// defaultOccurrenceDay anchors a paid month to a concrete date when the
// expense has no due day configured
const defaultOccurrenceDay = 15

// InActiveTrial reports whether the expense is inside a still-running trial.
// A trialing subscription is neither paid nor pending; it is a third state
// excluded from totals, reminders and burn rate.
func InActiveTrial(e Expense, now time.Time) bool {
	return e.IsTrial && e.TrialEndDate != nil && e.TrialEndDate.After(now)
}

// ExpenseSnapshot resolves one expense's payment and trial state for one
// month. Recurring expenses consult their payment history; non-recurring
// ones use their single status field.
func ExpenseSnapshot(e Expense, month MonthKey, now time.Time) MonthSnapshot {
	var s MonthSnapshot

	if e.IsRecurring {
		for _, h := range e.PaymentHistory {
			if h.Month == month.Str && h.Status == ExpensePaid {
				s.Paid = true
				s.PaidDate = h.PaidDate
				break
			}
		}
	} else {
		s.Paid = e.Status == ExpensePaid
	}

	if e.IsTrial && e.TrialEndDate != nil {
		if e.TrialEndDate.After(now) {
			s.IsTrial = true
			s.TrialDaysLeft = DaysBetween(now, *e.TrialEndDate)
		} else {
			s.TrialExpired = true
		}
	}
	return s
}

// RecurringExpenseProgress summarizes the paid/pending split of all
// recurring expenses for a month. Amounts are in the main currency; active
// trials are excluded from both sides.
func RecurringExpenseProgress(expenses []Expense, month MonthKey, cfg Config, now time.Time) RecurringProgress {
	conv := cfg.converter()

	var prog RecurringProgress
	for _, e := range expenses {
		if !e.IsRecurring || InActiveTrial(e, now) {
			continue
		}
		amount := conv.Convert(e.Amount, e.Currency, cfg.MainCurrency)
		prog.TotalCount++
		prog.TotalAmount = SafeFloat(prog.TotalAmount + amount)
		if ExpenseSnapshot(e, month, now).Paid {
			prog.PaidCount++
			prog.PaidAmount = SafeFloat(prog.PaidAmount + amount)
		} else {
			prog.PendingCount++
			prog.PendingAmount = SafeFloat(prog.PendingAmount + amount)
		}
	}
	if prog.TotalCount > 0 {
		prog.PercentPaid = int(float64(prog.PaidCount)/float64(prog.TotalCount)*100 + 0.5)
	}
	return prog
}

// ExpenseReminders lists recurring expenses whose due date in the current
// month falls within the next daysAhead days, today included. Subscriptions
// still in trial raise no reminder. Sorted by due date ascending.
func ExpenseReminders(expenses []Expense, daysAhead int, cfg Config, now time.Time) []Reminder {
	conv := cfg.converter()
	today := startOfDay(now)
	horizon := today.AddDate(0, 0, daysAhead)

	var reminders []Reminder
	for _, e := range expenses {
		if !e.IsRecurring || e.DueDay < 1 || InActiveTrial(e, now) {
			continue
		}
		due := time.Date(now.Year(), now.Month(), e.DueDay, 0, 0, 0, 0, now.Location())
		if due.Before(today) || due.After(horizon) {
			continue
		}
		reminders = append(reminders, Reminder{
			ExpenseID:       e.ID,
			Title:           e.Title,
			Category:        e.Category,
			Amount:          SafeFloat(e.Amount),
			AmountConverted: conv.Convert(e.Amount, e.Currency, cfg.MainCurrency),
			DueDate:         due,
			DaysUntil:       DaysBetween(today, due),
		})
	}

	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].DueDate.Before(reminders[j].DueDate)
	})
	return reminders
}

// occurrenceDate maps a payment-history month to the concrete date the
// payment is attributed to: the expense's due day, or the 15th by default.
func occurrenceDate(e Expense, month MonthKey) time.Time {
	day := e.DueDay
	if day < 1 {
		day = defaultOccurrenceDay
	}
	return time.Date(month.Year, month.Month, day, 0, 0, 0, 0, time.Local)
}

// ExpensesPaidInPeriod totals expenses actually paid inside the period, in
// the main currency, with a per-category breakdown. Each paid history month
// of a recurring expense becomes one dated occurrence.
func ExpensesPaidInPeriod(expenses []Expense, period Period, cfg Config) PeriodExpenses {
	conv := cfg.converter()
	result := PeriodExpenses{ByCategory: map[string]float64{}}

	add := func(e Expense) {
		amount := conv.Convert(e.Amount, e.Currency, cfg.MainCurrency)
		result.Total = SafeFloat(result.Total + amount)
		result.ByCategory[e.Category] = SafeFloat(result.ByCategory[e.Category] + amount)
	}

	for _, e := range expenses {
		if e.IsRecurring {
			for _, h := range e.PaymentHistory {
				if h.Status != ExpensePaid {
					continue
				}
				month, err := ParseMonthKey(h.Month)
				if err != nil {
					continue
				}
				if period.Contains(occurrenceDate(e, month)) {
					add(e)
				}
			}
		} else if e.Date != nil && e.Status == ExpensePaid && period.Contains(*e.Date) {
			add(e)
		}
	}
	return result
}

// OpenExpensesInPeriod totals what is outstanding right now, in the main
// currency. Recurring expenses count only when today falls in the period and
// the current month is unpaid; this answers "what is open now", not how much
// was open historically.
func OpenExpensesInPeriod(expenses []Expense, period Period, cfg Config, now time.Time) PeriodExpenses {
	conv := cfg.converter()
	result := PeriodExpenses{ByCategory: map[string]float64{}}
	currentMonth := MonthKeyFor(now)
	todayInPeriod := period.Contains(now)

	add := func(e Expense) {
		amount := conv.Convert(e.Amount, e.Currency, cfg.MainCurrency)
		result.Total = SafeFloat(result.Total + amount)
		result.ByCategory[e.Category] = SafeFloat(result.ByCategory[e.Category] + amount)
	}

	for _, e := range expenses {
		if e.IsRecurring {
			if !todayInPeriod || InActiveTrial(e, now) {
				continue
			}
			if !ExpenseSnapshot(e, currentMonth, now).Paid {
				add(e)
			}
		} else if e.Date != nil && e.Status != ExpensePaid && period.Contains(*e.Date) {
			add(e)
		}
	}
	return result
}

// RecurringExpenseTotal is the steady-state monthly burn rate: every
// recurring expense not in an active trial, converted to the main currency.
func RecurringExpenseTotal(expenses []Expense, cfg Config, now time.Time) float64 {
	conv := cfg.converter()

	var total float64
	for _, e := range expenses {
		if !e.IsRecurring || InActiveTrial(e, now) {
			continue
		}
		total = SafeFloat(total + conv.Convert(e.Amount, e.Currency, cfg.MainCurrency))
	}
	return total
}

// TogglePaymentMonth flips one month of a recurring expense's payment
// history. An absent month gains a paid entry; a paid month's entry is
// removed entirely, so toggling twice restores the prior state instead of
// accumulating pending entries.
func TogglePaymentMonth(history []PaymentHistoryEntry, month MonthKey, now time.Time) []PaymentHistoryEntry {
	for i, h := range history {
		if h.Month == month.Str {
			out := make([]PaymentHistoryEntry, 0, len(history)-1)
			out = append(out, history[:i]...)
			return append(out, history[i+1:]...)
		}
	}
	paidAt := now
	out := make([]PaymentHistoryEntry, 0, len(history)+1)
	out = append(out, history...)
	return append(out, PaymentHistoryEntry{
		Month:    month.Str,
		Status:   ExpensePaid,
		PaidDate: &paidAt,
	})
}
