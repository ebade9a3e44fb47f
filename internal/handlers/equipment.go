package handlers

import (
	"net/http"

	"site-tracker/internal/database"
	"site-tracker/internal/forms"
	"site-tracker/internal/models"
	"site-tracker/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UploadDir is where equipment images and service-log photos land; set
// from config at startup.
var UploadDir = "web/static/uploads"

// EQUIPMENT LIST

func ListEquipment(c *gin.Context) {
	var equipment []models.Equipment
	database.DB.Find(&equipment)

	render(c, http.StatusOK, "equipment.html", gin.H{
		"equipment": equipment,
	})
}

// ADD EQUIPMENT

func ShowAddEquipment(c *gin.Context) {
	render(c, http.StatusOK, "equipment_form.html", gin.H{
		"form":  forms.EquipmentForm{},
		"error": "",
	})
}

func AddEquipment(c *gin.Context) {
	var form forms.EquipmentForm
	if err := c.ShouldBind(&form); err != nil {
		renderEquipmentError(c, form, "Invalid form data.")
		return
	}

	fields, err := form.Validate()
	if err != nil {
		renderEquipmentError(c, form, err.Error())
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		name, serr := upload.Save(file, UploadDir)
		if serr != nil {
			logrus.Warnf("failed to save equipment image: %v", serr)
			renderEquipmentError(c, form, "Could not save the uploaded image.")
			return
		}
		imagePath = name
	}

	equipment := models.Equipment{
		Name:          fields.Name,
		Type:          fields.Type,
		Make:          fields.Make,
		Model:         fields.Model,
		Year:          fields.Year,
		Mileage:       fields.Mileage,
		OilChangeDue:  fields.OilChangeDue,
		InspectionDue: fields.InspectionDue,
		Notes:         fields.Notes,
		ImagePath:     imagePath,
		AddedBy:       creatorID(c),
	}
	if err := database.DB.Create(&equipment).Error; err != nil {
		renderEquipmentError(c, form, "Could not save equipment.")
		return
	}

	if u, ok := currentUser(c); ok {
		database.RecordActivity(u.ID, "equipment", equipment.ID, "create", "Added equipment: "+equipment.Name)
	}

	flash(c, "success", "Equipment added successfully!")
	c.Redirect(http.StatusFound, "/equipment")
}

// EQUIPMENT DETAIL

func ViewEquipment(c *gin.Context) {
	id := c.Param("id")

	var equipment models.Equipment
	if err := database.DB.First(&equipment, id).Error; err != nil {
		flash(c, "warning", "Equipment not found.")
		c.Redirect(http.StatusFound, "/equipment")
		return
	}

	var logs []models.ServiceLog
	database.DB.
		Where("equipment_id = ?", equipment.ID).
		Order("service_date desc").
		Find(&logs)

	render(c, http.StatusOK, "equipment_detail.html", gin.H{
		"equipment":   equipment,
		"serviceLogs": logs,
	})
}

// SERVICE LOGS (append-only)

func ShowAddServiceLog(c *gin.Context) {
	id := c.Param("id")

	var equipment models.Equipment
	if err := database.DB.First(&equipment, id).Error; err != nil {
		flash(c, "warning", "Equipment not found.")
		c.Redirect(http.StatusFound, "/equipment")
		return
	}

	render(c, http.StatusOK, "service_log_form.html", gin.H{
		"equipment": equipment,
		"form":      forms.ServiceLogForm{},
		"error":     "",
	})
}

func AddServiceLog(c *gin.Context) {
	id := c.Param("id")

	var equipment models.Equipment
	if err := database.DB.First(&equipment, id).Error; err != nil {
		flash(c, "warning", "Equipment not found.")
		c.Redirect(http.StatusFound, "/equipment")
		return
	}

	var form forms.ServiceLogForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceLogError(c, equipment, form, "Invalid form data.")
		return
	}

	fields, err := form.Validate()
	if err != nil {
		renderServiceLogError(c, equipment, form, err.Error())
		return
	}

	photoPath := ""
	if file, ferr := c.FormFile("photo"); ferr == nil && file != nil {
		name, serr := upload.Save(file, UploadDir)
		if serr != nil {
			logrus.Warnf("failed to save service log photo: %v", serr)
			renderServiceLogError(c, equipment, form, "Could not save the uploaded photo.")
			return
		}
		photoPath = name
	}

	log := models.ServiceLog{
		EquipmentID: equipment.ID,
		ServiceDate: fields.ServiceDate,
		Description: fields.Description,
		PhotoPath:   photoPath,
		AddedBy:     creatorID(c),
	}
	if err := database.DB.Create(&log).Error; err != nil {
		renderServiceLogError(c, equipment, form, "Could not save service log.")
		return
	}

	if u, ok := currentUser(c); ok {
		database.RecordActivity(u.ID, "service_log", log.ID, "create", "Added service log for "+equipment.Name)
	}

	flash(c, "success", "Service log added!")
	c.Redirect(http.StatusFound, "/equipment/"+id)
}

func renderEquipmentError(c *gin.Context, form forms.EquipmentForm, msg string) {
	render(c, http.StatusBadRequest, "equipment_form.html", gin.H{
		"form":  form,
		"error": msg,
	})
}

func renderServiceLogError(c *gin.Context, equipment models.Equipment, form forms.ServiceLogForm, msg string) {
	render(c, http.StatusBadRequest, "service_log_form.html", gin.H{
		"equipment": equipment,
		"form":      form,
		"error":     msg,
	})
}
