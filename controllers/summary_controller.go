package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	svc *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{svc: svc}
}

// GET /summary/weekly?date=YYYY-MM-DD — the week containing date. Returns a
// zero-or-one element array, mirroring the aggregate's SQL shape.
func (sc *SummaryController) Weekly(c *gin.Context) {
	uid := c.GetUint("userID")
	day, ok := dateParam(c, "date")
	if !ok {
		return
	}

	rows, err := sc.svc.Weekly(c.Request.Context(), uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /summary/monthly?year=2024&month=3
func (sc *SummaryController) Monthly(c *gin.Context) {
	uid := c.GetUint("userID")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "year must be a positive integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "month must be 1-12"})
		return
	}

	rows, err := sc.svc.Monthly(c.Request.Context(), uid, year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
