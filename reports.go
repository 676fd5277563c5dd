package main

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"freelancetracker/finance"

	"github.com/gin-gonic/gin"
)

// Report handler functions

const (
	defaultReminderDays  = 7
	defaultActivityLimit = 15
)

// @Summary Get financial snapshot
// @Description Aggregate income, expenses, goal progress and tax reserve for a period
// @Tags reports
// @Produce json
// @Param range query string false "Period: this_month, last_month, this_year or all_time" default(this_month)
// @Success 200 {object} finance.Snapshot "Snapshot for the period"
// @Failure 400 {object} map[string]interface{} "Unknown range"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/snapshot [get]
func getSnapshot(c *gin.Context) {
	rangeName := c.DefaultQuery("range", "this_month")
	period, ok := finance.RangeFor(rangeName, time.Now())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown range: " + rangeName})
		return
	}

	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error building snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building snapshot"})
		return
	}

	c.JSON(http.StatusOK, engine.Snapshot(period))
}

// @Summary Get health score
// @Description Composite 0-100 financial health score for the current month
// @Tags reports
// @Produce json
// @Success 200 {object} finance.HealthScore "Current health score"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/health [get]
func getHealthScore(c *gin.Context) {
	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error computing health score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing health score"})
		return
	}

	c.JSON(http.StatusOK, engine.HealthScore())
}

// @Summary Get receivables
// @Description All scheduled payments across projects, earliest first
// @Tags reports
// @Produce json
// @Success 200 {array} finance.Receivable "Scheduled payments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/receivables [get]
func getReceivables(c *gin.Context) {
	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error fetching receivables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching receivables"})
		return
	}

	c.JSON(http.StatusOK, engine.Receivables())
}

// @Summary Get expense reminders
// @Description Recurring expenses coming due within the given window
// @Tags reports
// @Produce json
// @Param days query int false "Days ahead to look" default(7)
// @Success 200 {array} finance.Reminder "Upcoming expense due dates"
// @Failure 400 {object} map[string]interface{} "Invalid days value"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/reminders [get]
func getReminders(c *gin.Context) {
	days := defaultReminderDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days value"})
			return
		}
		days = parsed
	}

	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error fetching reminders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reminders"})
		return
	}

	c.JSON(http.StatusOK, engine.Reminders(days))
}

// @Summary Get recent activity
// @Description Latest money events grouped into Today, Last 7 Days and Earlier
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum number of entries" default(15)
// @Success 200 {array} finance.ActivityGroup "Grouped activity feed"
// @Failure 400 {object} map[string]interface{} "Invalid limit value"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/activity [get]
func getActivity(c *gin.Context) {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit value"})
			return
		}
		limit = parsed
	}

	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error fetching activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activity"})
		return
	}

	c.JSON(http.StatusOK, engine.RecentActivity(limit))
}

// @Summary Get recurring expense progress
// @Description How much of this month's subscriptions are paid
// @Tags reports
// @Produce json
// @Success 200 {object} finance.RecurringProgress "Progress for the current month"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/progress [get]
func getProgress(c *gin.Context) {
	engine, err := newEngine(context.Background())
	if err != nil {
		log.Printf("Error fetching progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching progress"})
		return
	}

	c.JSON(http.StatusOK, engine.Progress())
}
