package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"freelancetracker/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
)

// Export and import handler functions

// @Summary Export all data
// @Description Download the full application state as one JSON document
// @Tags export
// @Produce json
// @Success 200 {object} ExportPayload "Full application state"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/export [get]
func exportData(c *gin.Context) {
	projects, expenses, cfg, err := loadEngineData(context.Background())
	if err != nil {
		log.Printf("Error exporting data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error exporting data"})
		return
	}

	c.JSON(http.StatusOK, ExportPayload{
		ExportedAt: time.Now(),
		Projects:   projects,
		Expenses:   expenses,
		Settings:   cfg,
	})
}

// @Summary Import data
// @Description Replace the full application state with a previously exported document.
// @Description Existing projects and expenses are deleted first; the operation is all-or-nothing.
// @Tags export
// @Accept json
// @Produce json
// @Param payload body ImportPayload true "Previously exported state"
// @Success 200 {object} map[string]interface{} "Import summary"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/import [post]
func importData(c *gin.Context) {
	var payload ImportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	for _, p := range payload.Projects {
		if err := validateProject(p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project: " + err.Error()})
			return
		}
	}
	for _, e := range payload.Expenses {
		if err := validateExpense(e); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense: " + err.Error()})
			return
		}
	}
	if payload.Settings != nil {
		if err := validateSettings(*payload.Settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings: " + err.Error()})
			return
		}
	}

	ctx := context.Background()
	tx, err := dbPool.Begin(ctx)
	if err != nil {
		log.Printf("Error starting import transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
		return
	}
	defer tx.Rollback(ctx)

	qtx := queries.WithTx(tx)

	if err := qtx.DeleteAllProjects(ctx); err != nil {
		log.Printf("Error clearing projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
		return
	}
	if err := qtx.DeleteAllExpenses(ctx); err != nil {
		log.Printf("Error clearing expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
		return
	}

	for _, p := range payload.Projects {
		cols, err := projectToColumns(p)
		if err != nil {
			log.Printf("Error encoding imported project: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
			return
		}
		_, err = qtx.CreateProject(ctx, generated.CreateProjectParams{
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
			log.Printf("Error importing project: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
			return
		}
	}

	for _, e := range payload.Expenses {
		cols, err := expenseToColumns(e)
		if err != nil {
			log.Printf("Error encoding imported expense: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
			return
		}
		_, err = qtx.CreateExpense(ctx, generated.CreateExpenseParams{
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
			log.Printf("Error importing expense: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing import: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing data"})
		return
	}

	// Settings are a single upserted row, written after the replace-all commit
	if payload.Settings != nil {
		if _, err := saveSettings(ctx, *payload.Settings); err != nil {
			log.Printf("Error importing settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Import completed successfully",
		"projects": len(payload.Projects),
		"expenses": len(payload.Expenses),
	})
}
