package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"freelancetracker/db/generated"
	"freelancetracker/finance"

	"github.com/gin-gonic/gin"
)

// Expense handler functions

// @Summary Get all expenses
// @Description Retrieve all expenses, recurring ones first
// @Tags expenses
// @Produce json
// @Success 200 {array} finance.Expense "List of expenses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses [get]
func getExpenses(c *gin.Context) {
	rows, err := queries.GetExpenses(context.Background())
	if err != nil {
		log.Printf("Error fetching expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching expenses"})
		return
	}

	expenses := make([]finance.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, convertExpense(row))
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary Create expense
// @Description Create a new one-off or recurring expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body finance.Expense true "Expense data"
// @Success 201 {object} finance.Expense "Created expense"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses [post]
func createExpense(c *gin.Context) {
	var expenseRequest finance.Expense
	if err := c.ShouldBindJSON(&expenseRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateExpense(expenseRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cols, err := expenseToColumns(expenseRequest)
	if err != nil {
		log.Printf("Error encoding expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error encoding expense"})
		return
	}

	params := generated.CreateExpenseParams{
		Title:          expenseRequest.Title,
		Amount:         cols.Amount,
		Currency:       expenseRequest.Currency,
		Category:       expenseRequest.Category,
		ExpenseDate:    timePtrToDate(expenseRequest.Date),
		IsRecurring:    expenseRequest.IsRecurring,
		DueDay:         cols.DueDay,
		Status:         cols.Status,
		PaymentHistory: cols.PaymentHistory,
		IsTrial:        expenseRequest.IsTrial,
		TrialEndDate:   timePtrToDate(expenseRequest.TrialEndDate),
	}

	row, err := queries.CreateExpense(context.Background(), params)
	if err != nil {
		log.Printf("Error creating expense: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertExpense(row))
}

// @Summary Update expense
// @Description Update an existing expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body finance.Expense true "Updated expense data"
// @Success 200 {object} finance.Expense "Updated expense"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id} [put]
func updateExpense(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var expenseRequest finance.Expense
	if err := c.ShouldBindJSON(&expenseRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateExpense(expenseRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cols, err := expenseToColumns(expenseRequest)
	if err != nil {
		log.Printf("Error encoding expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error encoding expense"})
		return
	}

	params := generated.UpdateExpenseParams{
		ID:             id,
		Title:          expenseRequest.Title,
		Amount:         cols.Amount,
		Currency:       expenseRequest.Currency,
		Category:       expenseRequest.Category,
		ExpenseDate:    timePtrToDate(expenseRequest.Date),
		IsRecurring:    expenseRequest.IsRecurring,
		DueDay:         cols.DueDay,
		Status:         cols.Status,
		PaymentHistory: cols.PaymentHistory,
		IsTrial:        expenseRequest.IsTrial,
		TrialEndDate:   timePtrToDate(expenseRequest.TrialEndDate),
	}

	row, err := queries.UpdateExpense(context.Background(), params)
	if err != nil {
		log.Printf("Error updating expense: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertExpense(row))
}

// @Summary Delete expense
// @Description Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]interface{} "Expense deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id} [delete]
func deleteExpense(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := queries.DeleteExpense(context.Background(), id); err != nil {
		log.Printf("Error deleting expense: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// @Summary Toggle expense month
// @Description Flip a recurring expense's paid state for one month. The same
// call twice returns the expense to its original state.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param month body ToggleMonthRequest true "Month to toggle (YYYY-MM)"
// @Success 200 {object} finance.Expense "Expense with updated payment history"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/expenses/{id}/toggle-month [put]
func toggleExpenseMonth(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var toggleRequest ToggleMonthRequest
	if err := c.ShouldBindJSON(&toggleRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	month, err := finance.ParseMonthKey(toggleRequest.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return
	}

	row, err := queries.GetExpense(context.Background(), id)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	expense := convertExpense(row)
	if !expense.IsRecurring {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only recurring expenses have a payment history"})
		return
	}

	history := finance.TogglePaymentMonth(expense.PaymentHistory, month, time.Now())
	historyJSON, err := json.Marshal(history)
	if err != nil {
		log.Printf("Error encoding payment history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error encoding payment history"})
		return
	}

	updated, err := queries.UpdateExpensePaymentHistory(context.Background(), generated.UpdateExpensePaymentHistoryParams{
		ID:             id,
		PaymentHistory: historyJSON,
	})
	if err != nil {
		log.Printf("Error updating payment history: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertExpense(updated))
}
