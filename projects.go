package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"freelancetracker/db/generated"
	"freelancetracker/finance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Project handler functions

// @Summary Get all projects
// @Description Retrieve all projects with their derived financial figures
// @Tags projects
// @Produce json
// @Success 200 {array} ProjectResponse "List of projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects [get]
func getProjects(c *gin.Context) {
	projects, expenses, cfg, err := loadEngineData(context.Background())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}

	now := time.Now()
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, ProjectResponse{
			Project:    p,
			Financials: finance.CalculateProjectFinancials(p, expenses, cfg, now),
		})
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Create project
// @Description Create a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body finance.Project true "Project data"
// @Success 201 {object} finance.Project "Created project"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects [post]
func createProject(c *gin.Context) {
	var projectRequest finance.Project
	if err := c.ShouldBindJSON(&projectRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateProject(projectRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cols, err := projectToColumns(projectRequest)
	if err != nil {
		log.Printf("Error encoding project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error encoding project"})
		return
	}

	params := generated.CreateProjectParams{
		ClientName:       projectRequest.ClientName,
		ClientID:         strPtrToText(projectRequest.ClientID),
		Type:             string(projectRequest.Type),
		ContractType:     string(projectRequest.ContractType),
		Status:           string(projectRequest.Status),
		Rate:             cols.Rate,
		Currency:         projectRequest.Currency,
		PlatformFee:      cols.PlatformFee,
		StartDate:        pgtype.Date{Time: projectRequest.StartDate, Valid: true},
		DueDate:          timePtrToDate(projectRequest.DueDate),
		ContractEndDate:  timePtrToDate(projectRequest.ContractEndDate),
		RenewalDate:      timePtrToDate(projectRequest.RenewalDate),
		Logs:             cols.Logs,
		Payments:         cols.Payments,
		Adjustments:      cols.Adjustments,
		LinkedExpenseIds: cols.LinkedExpenseIds,
	}

	row, err := queries.CreateProject(context.Background(), params)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertProject(row))
}

// @Summary Update project
// @Description Update an existing project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body finance.Project true "Updated project data"
// @Success 200 {object} finance.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects/{id} [put]
func updateProject(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var projectRequest finance.Project
	if err := c.ShouldBindJSON(&projectRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateProject(projectRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := saveProject(context.Background(), id, projectRequest)
	if err != nil {
		log.Printf("Error updating project: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertProject(row))
}

// @Summary Delete project
// @Description Delete a project and its embedded payments and logs
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Project deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects/{id} [delete]
func deleteProject(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := queries.DeleteProject(context.Background(), id); err != nil {
		log.Printf("Error deleting project: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// @Summary Add project payment
// @Description Append a payment to a project's payment list
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param payment body PaymentRequest true "Payment data"
// @Success 201 {object} finance.Project "Project with the new payment"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects/{id}/payments [post]
func addProjectPayment(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paymentRequest PaymentRequest
	if err := c.ShouldBindJSON(&paymentRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validatePaymentStatus(paymentRequest.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := queries.GetProject(context.Background(), id)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	project := convertProject(row)
	project.Payments = append(project.Payments, finance.Payment{
		ID:     uuid.New().String(),
		Amount: paymentRequest.Amount,
		Date:   paymentRequest.Date,
		Status: paymentRequest.Status,
		Note:   paymentRequest.Note,
	})

	updated, err := saveProject(context.Background(), id, project)
	if err != nil {
		log.Printf("Error adding payment: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertProject(updated))
}

// @Summary Update project payment
// @Description Update a single payment on a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param paymentId path string true "Payment ID"
// @Param payment body PaymentRequest true "Updated payment data"
// @Success 200 {object} finance.Project "Project with the updated payment"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Project or payment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects/{id}/payments/{paymentId} [put]
func updateProjectPayment(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	paymentID := c.Param("paymentId")

	var paymentRequest PaymentRequest
	if err := c.ShouldBindJSON(&paymentRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validatePaymentStatus(paymentRequest.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := queries.GetProject(context.Background(), id)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	project := convertProject(row)
	found := false
	for i := range project.Payments {
		if project.Payments[i].ID == paymentID {
			project.Payments[i].Amount = paymentRequest.Amount
			project.Payments[i].Date = paymentRequest.Date
			project.Payments[i].Status = paymentRequest.Status
			project.Payments[i].Note = paymentRequest.Note
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	updated, err := saveProject(context.Background(), id, project)
	if err != nil {
		log.Printf("Error updating payment: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertProject(updated))
}

// @Summary Delete project payment
// @Description Remove a single payment from a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} finance.Project "Project without the payment"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project or payment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/projects/{id}/payments/{paymentId} [delete]
func deleteProjectPayment(c *gin.Context) {
	id, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	paymentID := c.Param("paymentId")

	row, err := queries.GetProject(context.Background(), id)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	project := convertProject(row)
	kept := make([]finance.Payment, 0, len(project.Payments))
	for _, payment := range project.Payments {
		if payment.ID != paymentID {
			kept = append(kept, payment)
		}
	}
	if len(kept) == len(project.Payments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	project.Payments = kept

	updated, err := saveProject(context.Background(), id, project)
	if err != nil {
		log.Printf("Error deleting payment: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertProject(updated))
}

// validatePaymentStatus allows an empty status, which is stored as paid
func validatePaymentStatus(s finance.PaymentStatus) error {
	switch s {
	case finance.PaymentPaid, finance.PaymentScheduled, "":
		return nil
	}
	return fmt.Errorf("invalid payment status %q", s)
}

// saveProject writes a full project back to its row
func saveProject(ctx context.Context, id pgtype.UUID, p finance.Project) (generated.Project, error) {
	cols, err := projectToColumns(p)
	if err != nil {
		return generated.Project{}, err
	}

	return queries.UpdateProject(ctx, generated.UpdateProjectParams{
		ID:               id,
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
}
