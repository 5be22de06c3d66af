package controllers

import (
	"errors"
	"net/http"

	"github.com/ibrahim-qi/macro-logger-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SavedFoodController struct {
	svc *services.SavedFoodService
}

func NewSavedFoodController(svc *services.SavedFoodService) *SavedFoodController {
	return &SavedFoodController{svc: svc}
}

// GET /saved-foods?q=search
func (sc *SavedFoodController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	foods, err := sc.svc.List(uid, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (sc *SavedFoodController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var in services.SavedFoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := sc.svc.Create(uid, in)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "a saved food with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (sc *SavedFoodController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in services.SavedFoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := sc.svc.Update(uid, id, in)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "saved food not found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "a saved food with this name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, food)
}

func (sc *SavedFoodController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := sc.svc.Delete(uid, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "saved food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
