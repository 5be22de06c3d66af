package services

import (
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EntryService struct {
	db  *gorm.DB
	hub *RealtimeHub
	log *zap.Logger
}

func NewEntryService(db *gorm.DB, hub *RealtimeHub, log *zap.Logger) *EntryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EntryService{db: db, hub: hub, log: log}
}

// EntryInput is the payload for logging a new entry. CreatedAt is optional;
// the server assigns it when absent.
type EntryInput struct {
	FoodName  string     `json:"food_name" binding:"required"`
	Calories  float64    `json:"calories" binding:"min=0"`
	Protein   *float64   `json:"protein,omitempty" binding:"omitempty,min=0"`
	Carbs     *float64   `json:"carbs,omitempty" binding:"omitempty,min=0"`
	Fats      *float64   `json:"fats,omitempty" binding:"omitempty,min=0"`
	Quantity  float64    `json:"quantity" binding:"required,gt=0"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// EntryPatch carries a partial edit; nil fields are left untouched.
type EntryPatch struct {
	FoodName *string  `json:"food_name,omitempty"`
	Calories *float64 `json:"calories,omitempty" binding:"omitempty,min=0"`
	Protein  *float64 `json:"protein,omitempty" binding:"omitempty,min=0"`
	Carbs    *float64 `json:"carbs,omitempty" binding:"omitempty,min=0"`
	Fats     *float64 `json:"fats,omitempty" binding:"omitempty,min=0"`
	Quantity *float64 `json:"quantity,omitempty" binding:"omitempty,gt=0"`
}

// ListByDate returns the user's entries whose CreatedAt falls inside the given
// calendar day, newest first.
func (s *EntryService) ListByDate(userID uint, day time.Time) ([]models.FoodEntry, error) {
	from, to := utils.DayWindow(day)
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// Create persists the entry and, once committed, pushes an entry.created event
// to the user's realtime channel.
func (s *EntryService) Create(userID uint, in EntryInput) (*models.FoodEntry, error) {
	entry := models.FoodEntry{
		UserID:   userID,
		FoodName: in.FoodName,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Quantity: in.Quantity,
	}
	if in.CreatedAt != nil {
		entry.CreatedAt = *in.CreatedAt
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.BroadcastEntryCreated(entry)
	}
	s.log.Info("entry logged",
		zap.Uint("user", userID),
		zap.Uint("entry", entry.ID),
		zap.String("food", entry.FoodName))
	return &entry, nil
}

// Update applies a patch to the entry scoped by (id, userID) and returns the
// stored row. A row owned by another user is indistinguishable from a missing
// one.
func (s *EntryService) Update(userID, id uint, patch EntryPatch) (*models.FoodEntry, error) {
	updates := map[string]any{}
	if patch.FoodName != nil {
		updates["food_name"] = *patch.FoodName
	}
	if patch.Calories != nil {
		updates["calories"] = *patch.Calories
	}
	if patch.Protein != nil {
		updates["protein"] = *patch.Protein
	}
	if patch.Carbs != nil {
		updates["carbs"] = *patch.Carbs
	}
	if patch.Fats != nil {
		updates["fats"] = *patch.Fats
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.FoodEntry{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	var entry models.FoodEntry
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
