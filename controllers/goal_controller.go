package controllers

import (
	"net/http"

	"github.com/ibrahim-qi/macro-logger-app/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{svc: svc}
}

// GET /goals?date=YYYY-MM-DD — targets plus that day's progress. A user who
// never set goals gets the defaults, created on the spot.
func (gc *GoalController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	day, ok := dateParam(c, "date")
	if !ok {
		return
	}

	progress, err := gc.svc.ProgressForDate(uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// PUT /goals — replace the user's daily targets.
func (gc *GoalController) Put(c *gin.Context) {
	uid := c.GetUint("userID")

	var in services.GoalsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	goals, err := gc.svc.Upsert(uid, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}
