package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/services"
	"github.com/ibrahim-qi/macro-logger-app/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EntryController struct {
	svc *services.EntryService
}

func NewEntryController(svc *services.EntryService) *EntryController {
	return &EntryController{svc: svc}
}

// List returns the entries of one calendar day, newest first.
// GET /entries?date=YYYY-MM-DD (defaults to today)
func (ec *EntryController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	day, ok := dateParam(c, "date")
	if !ok {
		return
	}

	entries, err := ec.svc.ListByDate(uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ec *EntryController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var in services.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.svc.Create(uid, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ec *EntryController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch services.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.svc.Update(uid, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ec *EntryController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ec.svc.Delete(uid, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// dateParam parses the named query param as YYYY-MM-DD, defaulting to today
// when absent. Replies 422 and returns ok=false on a malformed value.
func dateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return utils.DayStart(time.Now()), true
	}
	parsed, err := utils.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}
