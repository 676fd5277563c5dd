package main

import (
	"time"

	"freelancetracker/finance"
)

// PaymentRequest is the body for adding or editing a project payment
type PaymentRequest struct {
	Amount float64               `json:"amount" binding:"required"`
	Date   time.Time             `json:"date" binding:"required"`
	Status finance.PaymentStatus `json:"status"`
	Note   string                `json:"note"`
}

// ToggleMonthRequest is the body for flipping a recurring expense's month
type ToggleMonthRequest struct {
	Month string `json:"month" binding:"required"` // "YYYY-MM"
}

// ProjectResponse is a stored project together with its derived figures
type ProjectResponse struct {
	finance.Project
	Financials finance.ProjectFinancials `json:"financials"`
}

// ExportPayload is the full application state as one JSON document
type ExportPayload struct {
	ExportedAt time.Time         `json:"exported_at"`
	Projects   []finance.Project `json:"projects"`
	Expenses   []finance.Expense `json:"expenses"`
	Settings   finance.Config    `json:"settings"`
}

// ImportPayload mirrors ExportPayload; exported_at is ignored on import
type ImportPayload struct {
	Projects []finance.Project `json:"projects"`
	Expenses []finance.Expense `json:"expenses"`
	Settings *finance.Config   `json:"settings"`
}
