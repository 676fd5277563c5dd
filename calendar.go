package main

import (
	"context"
	"log"
	"net/http"

	"freelancetracker/finance"

	"github.com/gin-gonic/gin"
)

// @Summary Get calendar events
// @Description Project milestones, payments, expense due dates and trial ends for one month
// @Tags calendar
// @Produce json
// @Param month query string false "Month to show (YYYY-MM), defaults to the current month"
// @Success 200 {array} finance.CalendarEvent "Events sorted by date"
// @Failure 400 {object} map[string]interface{} "Invalid month"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/calendar [get]
func getCalendar(c *gin.Context) {
	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error building calendar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building calendar"})
		return
	}

	monthDate := engine.Now()
	if raw := c.Query("month"); raw != "" {
		month, err := finance.ParseMonthKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		monthDate = month.Start()
	}

	c.JSON(http.StatusOK, engine.CalendarEvents(monthDate))
}
