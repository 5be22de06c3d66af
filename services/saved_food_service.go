package services

import (
	"github.com/ibrahim-qi/macro-logger-app/models"

	"gorm.io/gorm"
)

type SavedFoodService struct {
	db *gorm.DB
}

func NewSavedFoodService(db *gorm.DB) *SavedFoodService {
	return &SavedFoodService{db: db}
}

type SavedFoodInput struct {
	FoodName string  `json:"food_name" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fats     float64 `json:"fats" binding:"min=0"`
}

// List returns the user's saved foods, optionally filtered by a name search,
// alphabetical.
func (s *SavedFoodService) List(userID uint, query string) ([]models.SavedFood, error) {
	q := s.db.Where("user_id = ?", userID).Order("food_name ASC")
	if query != "" {
		q = q.Where("food_name ILIKE ?", "%"+query+"%")
	}
	var foods []models.SavedFood
	err := q.Find(&foods).Error
	return foods, err
}

// Create inserts a saved food. A name already saved by the same user comes
// back as gorm.ErrDuplicatedKey via the unique index.
func (s *SavedFoodService) Create(userID uint, in SavedFoodInput) (*models.SavedFood, error) {
	food := models.SavedFood{
		UserID:   userID,
		FoodName: in.FoodName,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Update replaces every field of the saved food scoped by (id, userID).
// Renaming onto an existing name also yields gorm.ErrDuplicatedKey.
func (s *SavedFoodService) Update(userID, id uint, in SavedFoodInput) (*models.SavedFood, error) {
	var food models.SavedFood
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&food).Error; err != nil {
		return nil, err
	}

	food.FoodName = in.FoodName
	food.Calories = in.Calories
	food.Protein = in.Protein
	food.Carbs = in.Carbs
	food.Fats = in.Fats
	if err := s.db.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *SavedFoodService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
