package handlers

import (
	"net/http"

	"site-tracker/internal/database"
	"site-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

func ListActivity(c *gin.Context) {
	var logs []models.ActivityLog
	database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(200).
		Find(&logs)

	render(c, http.StatusOK, "activity.html", gin.H{
		"logs": logs,
	})
}
