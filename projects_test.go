package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"freelancetracker/finance"
)

// TestGetProjects tests the GET /api/projects endpoint
func TestGetProjects(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should return empty list when no projects exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/projects", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var projects []ProjectResponse
		assertNoError(t, parseJSONResponse(resp, &projects))

		if len(projects) != 0 {
			t.Errorf("Expected empty list, got %d projects", len(projects))
		}
	})

	t.Run("should return projects with derived financials", func(t *testing.T) {
		project := fixedProject("Acme Corp", 1000)
		project.PlatformFee = 10
		_, err := createTestProject(project)
		assertNoError(t, err)

		resp := makeRequest("GET", "/api/projects", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var projects []ProjectResponse
		assertNoError(t, parseJSONResponse(resp, &projects))

		if len(projects) != 1 {
			t.Fatalf("Expected 1 project, got %d", len(projects))
		}

		got := projects[0]
		if got.ClientName != "Acme Corp" {
			t.Errorf("Expected client name 'Acme Corp', got %q", got.ClientName)
		}
		if got.Financials.Gross != 1000 {
			t.Errorf("Expected gross 1000, got %v", got.Financials.Gross)
		}
		if got.Financials.Net != 900 {
			t.Errorf("Expected net 900 after 10%% fee, got %v", got.Financials.Net)
		}
		if got.Financials.Remaining != 900 {
			t.Errorf("Expected remaining 900, got %v", got.Financials.Remaining)
		}
	})
}

// TestCreateProject tests the POST /api/projects endpoint
func TestCreateProject(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should create project with valid data", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"client_name":   "Globex",
			"type":          "hourly",
			"contract_type": "retainer",
			"status":        "ongoing",
			"rate":          85.5,
			"currency":      "EUR",
			"start_date":    "2026-01-01T00:00:00Z",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("POST", "/api/projects", bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created finance.Project
		assertNoError(t, parseJSONResponse(resp, &created))

		if created.ID == "" {
			t.Error("Expected created project to have an ID")
		}
		if created.Rate != 85.5 {
			t.Errorf("Expected rate 85.5, got %v", created.Rate)
		}
		if created.Payments == nil || created.Logs == nil {
			t.Error("Expected empty collections, not null")
		}
	})

	t.Run("should reject project without client name", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"client_name":   "",
			"type":          "fixed",
			"contract_type": "one_off",
			"status":        "active",
			"rate":          500,
			"currency":      "USD",
			"start_date":    "2026-01-01T00:00:00Z",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("POST", "/api/projects", bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should reject project with unknown type", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"client_name":   "Globex",
			"type":          "weekly",
			"contract_type": "one_off",
			"status":        "active",
			"rate":          500,
			"currency":      "USD",
			"start_date":    "2026-01-01T00:00:00Z",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("POST", "/api/projects", bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should reject invalid JSON", func(t *testing.T) {
		resp := makeRequest("POST", "/api/projects", bytes.NewBufferString("{not json"))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestUpdateProject tests the PUT /api/projects/:id endpoint
func TestUpdateProject(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should update an existing project", func(t *testing.T) {
		id, err := createTestProject(fixedProject("Initech", 2000))
		assertNoError(t, err)

		project := fixedProject("Initech", 2500)
		project.Status = finance.ProjectCompleted
		jsonBody, _ := json.Marshal(project)

		resp := makeRequest("PUT", fmt.Sprintf("/api/projects/%s", id), bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var updated finance.Project
		assertNoError(t, parseJSONResponse(resp, &updated))

		if updated.Rate != 2500 {
			t.Errorf("Expected rate 2500, got %v", updated.Rate)
		}
		if updated.Status != finance.ProjectCompleted {
			t.Errorf("Expected status completed, got %q", updated.Status)
		}
	})

	t.Run("should return 404 for nonexistent project", func(t *testing.T) {
		jsonBody, _ := json.Marshal(fixedProject("Nobody", 100))

		resp := makeRequest("PUT", "/api/projects/00000000-0000-0000-0000-000000000000", bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 400 for malformed UUID", func(t *testing.T) {
		jsonBody, _ := json.Marshal(fixedProject("Nobody", 100))

		resp := makeRequest("PUT", "/api/projects/not-a-uuid", bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestDeleteProject tests the DELETE /api/projects/:id endpoint
func TestDeleteProject(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("should delete an existing project", func(t *testing.T) {
		id, err := createTestProject(fixedProject("Hooli", 3000))
		assertNoError(t, err)

		resp := makeRequest("DELETE", fmt.Sprintf("/api/projects/%s", id), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		listResp := makeRequest("GET", "/api/projects", nil)
		var projects []ProjectResponse
		assertNoError(t, parseJSONResponse(listResp, &projects))

		if len(projects) != 0 {
			t.Errorf("Expected project to be gone, got %d projects", len(projects))
		}
	})
}

// TestProjectPayments tests the payment sub-resource endpoints
func TestProjectPayments(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	id, err := createTestProject(fixedProject("Acme Corp", 1000))
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	var paymentID string

	t.Run("should add a payment", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"amount": 400,
			"date":   "2026-02-01T00:00:00Z",
			"status": "scheduled",
			"note":   "deposit",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("POST", fmt.Sprintf("/api/projects/%s/payments", id), bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var project finance.Project
		assertNoError(t, parseJSONResponse(resp, &project))

		if len(project.Payments) != 1 {
			t.Fatalf("Expected 1 payment, got %d", len(project.Payments))
		}
		if project.Payments[0].Amount != 400 {
			t.Errorf("Expected amount 400, got %v", project.Payments[0].Amount)
		}
		paymentID = project.Payments[0].ID
	})

	t.Run("should default missing status to paid", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"amount": 100,
			"date":   "2026-02-10T00:00:00Z",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("POST", fmt.Sprintf("/api/projects/%s/payments", id), bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var project finance.Project
		assertNoError(t, parseJSONResponse(resp, &project))

		last := project.Payments[len(project.Payments)-1]
		if last.Status != finance.PaymentPaid {
			t.Errorf("Expected payment status paid, got %q", last.Status)
		}
	})

	t.Run("should update a payment", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"amount": 450,
			"date":   "2026-02-05T00:00:00Z",
			"status": "paid",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("PUT", fmt.Sprintf("/api/projects/%s/payments/%s", id, paymentID), bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var project finance.Project
		assertNoError(t, parseJSONResponse(resp, &project))

		for _, payment := range project.Payments {
			if payment.ID == paymentID {
				if payment.Amount != 450 {
					t.Errorf("Expected amount 450, got %v", payment.Amount)
				}
				if payment.Status != finance.PaymentPaid {
					t.Errorf("Expected status paid, got %q", payment.Status)
				}
			}
		}
	})

	t.Run("should return 404 when updating a missing payment", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"amount": 1,
			"date":   "2026-02-05T00:00:00Z",
		}
		jsonBody, _ := json.Marshal(requestBody)

		resp := makeRequest("PUT", fmt.Sprintf("/api/projects/%s/payments/missing", id), bytes.NewBuffer(jsonBody))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should delete a payment", func(t *testing.T) {
		resp := makeRequest("DELETE", fmt.Sprintf("/api/projects/%s/payments/%s", id, paymentID), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var project finance.Project
		assertNoError(t, parseJSONResponse(resp, &project))

		for _, payment := range project.Payments {
			if payment.ID == paymentID {
				t.Error("Expected payment to be removed")
			}
		}
	})

	t.Run("should return 404 when deleting a missing payment", func(t *testing.T) {
		resp := makeRequest("DELETE", fmt.Sprintf("/api/projects/%s/payments/%s", id, paymentID), nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestProjectPaymentOverdue verifies the derived overdue flag on listed projects
func TestProjectPaymentOverdue(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	project := fixedProject("Late Client", 1000)
	project.Payments = []finance.Payment{
		{ID: "p1", Amount: 500, Date: time.Now().AddDate(0, 0, -10), Status: finance.PaymentScheduled},
	}
	_, err := createTestProject(project)
	assertNoError(t, err)

	resp := makeRequest("GET", "/api/projects", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	var projects []ProjectResponse
	assertNoError(t, parseJSONResponse(resp, &projects))

	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if !projects[0].Financials.IsOverdue {
		t.Error("Expected project with past scheduled payment to be overdue")
	}
	if projects[0].Financials.OverdueAmount != 500 {
		t.Errorf("Expected overdue amount 500, got %v", projects[0].Financials.OverdueAmount)
	}
}
