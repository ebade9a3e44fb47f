package database

import "site-tracker/internal/models"

// helper for writing to the activity log; failures never block the request
func RecordActivity(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.ActivityLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
