package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"freelancetracker/db/generated"
	"freelancetracker/finance"

	"github.com/gin-gonic/gin"
)

// Settings handler functions

// @Summary Get settings
// @Description Retrieve the user settings: main currency, exchange rates, monthly goal and tax reserve
// @Tags settings
// @Produce json
// @Success 200 {object} finance.Config "Current settings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settings [get]
func getSettings(c *gin.Context) {
	row, err := queries.GetSettings(context.Background())
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching settings"})
		return
	}

	c.JSON(http.StatusOK, convertSettings(row))
}

// @Summary Update settings
// @Description Replace the user settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body finance.Config true "New settings"
// @Success 200 {object} finance.Config "Updated settings"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settings [put]
func updateSettings(c *gin.Context) {
	var settingsRequest finance.Config
	if err := c.ShouldBindJSON(&settingsRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateSettings(settingsRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := saveSettings(context.Background(), settingsRequest)
	if err != nil {
		log.Printf("Error updating settings: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertSettings(row))
}

// saveSettings upserts the single settings row
func saveSettings(ctx context.Context, cfg finance.Config) (generated.Setting, error) {
	ratesJSON, err := json.Marshal(cfg.ExchangeRates)
	if err != nil {
		return generated.Setting{}, err
	}
	goal, err := floatToNumeric(cfg.MonthlyGoal)
	if err != nil {
		return generated.Setting{}, err
	}
	taxReserve, err := floatToNumeric(cfg.TaxReservePercent)
	if err != nil {
		return generated.Setting{}, err
	}

	return queries.UpsertSettings(ctx, generated.UpsertSettingsParams{
		MainCurrency:      cfg.MainCurrency,
		ExchangeRates:     ratesJSON,
		MonthlyGoal:       goal,
		TaxReservePercent: taxReserve,
	})
}
