package finance

import (
	"math"
	"sort"
	"time"
)

// NormalizeProject applies the legacy-compatibility defaults once, at
// ingestion, so no consumer has to re-derive them: a payment without a
// status is paid, and nil collections become empty ones.
func NormalizeProject(p Project) Project {
	for i := range p.Payments {
		if p.Payments[i].Status == "" {
			p.Payments[i].Status = PaymentPaid
		}
	}
	if p.Logs == nil {
		p.Logs = []WorkLog{}
	}
	if p.Payments == nil {
		p.Payments = []Payment{}
	}
	if p.Adjustments == nil {
		p.Adjustments = []Adjustment{}
	}
	if p.LinkedExpenseIDs == nil {
		p.LinkedExpenseIDs = []string{}
	}
	return p
}

// BillableHours sums the hours of every log not explicitly marked
// non-billable. Invalid hour values count as 0.
func BillableHours(logs []WorkLog) float64 {
	var hours float64
	for _, l := range logs {
		if l.Billable != nil && !*l.Billable {
			continue
		}
		hours += safeNum(l.Hours)
	}
	return hours
}

// CalculateProjectFinancials derives every money figure for one project.
// All results are in the project's own currency; linked expenses are
// converted into it before subtraction. Invalid numeric inputs degrade to 0
// rather than erroring, and net/remaining/profit never go negative.
func CalculateProjectFinancials(p Project, allExpenses []Expense, cfg Config, now time.Time) ProjectFinancials {
	rate := safeNum(p.Rate)

	baseRate := rate
	if p.Type != ProjectFixed {
		baseRate = rate * BillableHours(p.Logs)
	}

	var adjustments float64
	for _, a := range p.Adjustments {
		adjustments = SafeFloat(adjustments + safeNum(a.Amount))
	}

	gross := SafeFloat(baseRate + adjustments)
	fees := SafeFloat(gross * safeNum(p.PlatformFee) / 100)
	net := math.Max(0, SafeFloat(gross-fees))

	var paid, scheduled, overdueAmount float64
	var isOverdue bool
	var nextPayment *Payment
	for i := range p.Payments {
		pay := p.Payments[i]
		amount := safeNum(pay.Amount)
		if pay.Status == PaymentScheduled {
			scheduled = SafeFloat(scheduled + amount)
			if IsOverdue(pay.Date, now) {
				overdueAmount = SafeFloat(overdueAmount + amount)
				isOverdue = true
			}
			if nextPayment == nil || pay.Date.Before(nextPayment.Date) {
				nextPayment = &p.Payments[i]
			}
		} else {
			// paid, or unset on a record predating normalization
			paid = SafeFloat(paid + amount)
		}
	}

	// Projects created before itemized payments existed carry no payments
	// array; a paid status there means the whole net was received.
	if len(p.Payments) == 0 && p.Status == ProjectPaid {
		paid = net
	}

	var expenseTotal float64
	if len(p.LinkedExpenseIDs) > 0 {
		conv := cfg.converter()
		byID := make(map[string]Expense, len(allExpenses))
		for _, e := range allExpenses {
			byID[e.ID] = e
		}
		for _, id := range p.LinkedExpenseIDs {
			e, ok := byID[id]
			if !ok {
				continue // linked expense was deleted
			}
			expenseTotal = SafeFloat(expenseTotal + conv.Convert(e.Amount, e.Currency, p.Currency))
		}
	}

	return ProjectFinancials{
		Gross:         gross,
		Fees:          fees,
		Net:           net,
		Paid:          paid,
		Scheduled:     scheduled,
		OverdueAmount: overdueAmount,
		Remaining:     math.Max(0, SafeFloat(net-paid)),
		ExpenseTotal:  expenseTotal,
		Profit:        math.Max(0, SafeFloat(paid-expenseTotal)),
		IsOverdue:     isOverdue,
		NextPayment:   nextPayment,
	}
}

// ProjectReceivables flattens every scheduled payment across all projects
// into a single list sorted by date ascending. Amounts are carried both in
// the project currency and converted to the main currency.
func ProjectReceivables(projects []Project, cfg Config, now time.Time) []Receivable {
	conv := cfg.converter()

	var receivables []Receivable
	for _, p := range projects {
		for _, pay := range p.Payments {
			if pay.Status != PaymentScheduled {
				continue
			}
			amount := safeNum(pay.Amount)
			overdue := IsOverdue(pay.Date, now)
			daysOverdue := 0
			if overdue {
				daysOverdue = DaysBetween(startOfDay(pay.Date), startOfDay(now))
			}
			receivables = append(receivables, Receivable{
				ProjectID:       p.ID,
				PaymentID:       pay.ID,
				ClientName:      p.ClientName,
				Amount:          SafeFloat(amount),
				AmountConverted: conv.Convert(amount, p.Currency, cfg.MainCurrency),
				Currency:        p.Currency,
				Date:            pay.Date,
				IsOverdue:       overdue,
				DaysOverdue:     daysOverdue,
			})
		}
	}

	sort.Slice(receivables, func(i, j int) bool {
		return receivables[i].Date.Before(receivables[j].Date)
	})
	return receivables
}

// RecurringIncome projects the steady monthly income from active retainer
// and recurring-fixed projects, in the main currency. This is rate-based,
// independent of what has actually been paid.
func RecurringIncome(projects []Project, cfg Config) float64 {
	conv := cfg.converter()

	var total float64
	for _, p := range projects {
		if p.Status != ProjectActive && p.Status != ProjectOngoing {
			continue
		}
		if p.ContractType != ContractRetainer && p.ContractType != ContractRecurringFixed {
			continue
		}
		monthly := safeNum(p.Rate) * (1 - safeNum(p.PlatformFee)/100)
		total = SafeFloat(total + conv.Convert(monthly, p.Currency, cfg.MainCurrency))
	}
	return total
}
