package handlers

import (
	"fmt"
	"net/http"

	"site-tracker/internal/database"
	"site-tracker/internal/forms"
	"site-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// MATERIALS LIST

func ListMaterials(c *gin.Context) {
	var materials []models.Material
	database.DB.Find(&materials)

	role := models.UserRole("")
	if u, ok := currentUser(c); ok {
		role = u.Role
	}

	render(c, http.StatusOK, "materials.html", gin.H{
		"materials": materials,
		"isAdmin":   role == models.RoleAdmin,
	})
}

// ADD MATERIAL

func ShowAddMaterial(c *gin.Context) {
	render(c, http.StatusOK, "material_form.html", gin.H{
		"form":  forms.MaterialForm{},
		"error": "",
	})
}

func AddMaterial(c *gin.Context) {
	var form forms.MaterialForm
	if err := c.ShouldBind(&form); err != nil {
		renderMaterialError(c, form, false, "Invalid form data.")
		return
	}

	fields, err := form.Validate()
	if err != nil {
		renderMaterialError(c, form, false, err.Error())
		return
	}

	material := models.Material{
		Name:         fields.Name,
		Quantity:     fields.Quantity,
		Unit:         fields.Unit,
		UnitPrice:    fields.UnitPrice,
		Supplier:     fields.Supplier,
		MaterialType: fields.MaterialType,
		Description:  fields.Description,
		UserID:       creatorID(c),
	}
	if err := database.DB.Create(&material).Error; err != nil {
		renderMaterialError(c, form, false, "Could not save material.")
		return
	}

	if u, ok := currentUser(c); ok {
		database.RecordActivity(u.ID, "material", material.ID, "create", "Added material: "+material.Name)
	}

	c.Redirect(http.StatusFound, "/materials")
}

// EDIT MATERIAL

func ShowEditMaterial(c *gin.Context) {
	id := c.Param("id")

	var material models.Material
	if err := database.DB.First(&material, id).Error; err != nil {
		flash(c, "warning", "Material not found.")
		c.Redirect(http.StatusFound, "/materials")
		return
	}

	render(c, http.StatusOK, "material_form.html", gin.H{
		"form":  materialToForm(material),
		"edit":  true,
		"error": "",
	})
}

func UpdateMaterial(c *gin.Context) {
	id := c.Param("id")

	var material models.Material
	if err := database.DB.First(&material, id).Error; err != nil {
		flash(c, "warning", "Material not found.")
		c.Redirect(http.StatusFound, "/materials")
		return
	}

	var form forms.MaterialForm
	if err := c.ShouldBind(&form); err != nil {
		renderMaterialError(c, form, true, "Invalid form data.")
		return
	}

	fields, err := form.Validate()
	if err != nil {
		renderMaterialError(c, form, true, err.Error())
		return
	}

	// id and creator are never touched here
	material.Name = fields.Name
	material.Quantity = fields.Quantity
	material.Unit = fields.Unit
	material.UnitPrice = fields.UnitPrice
	material.Supplier = fields.Supplier
	material.MaterialType = fields.MaterialType
	material.Description = fields.Description

	if err := database.DB.Save(&material).Error; err != nil {
		renderMaterialError(c, form, true, "Could not save material.")
		return
	}

	if u, ok := currentUser(c); ok {
		database.RecordActivity(u.ID, "material", material.ID, "update", "Updated material: "+material.Name)
	}

	flash(c, "success", "Material updated successfully!")
	c.Redirect(http.StatusFound, "/materials")
}

// QUANTITY-ONLY UPDATE

func ShowUpdateQuantity(c *gin.Context) {
	id := c.Param("id")

	var material models.Material
	if err := database.DB.First(&material, id).Error; err != nil {
		flash(c, "warning", "Material not found.")
		c.Redirect(http.StatusFound, "/materials")
		return
	}

	render(c, http.StatusOK, "update_quantity.html", gin.H{
		"material": material,
		"error":    "",
	})
}

func UpdateQuantity(c *gin.Context) {
	id := c.Param("id")

	var material models.Material
	if err := database.DB.First(&material, id).Error; err != nil {
		flash(c, "warning", "Material not found.")
		c.Redirect(http.StatusFound, "/materials")
		return
	}

	var form forms.QuantityForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "update_quantity.html", gin.H{
			"material": material,
			"error":    "Invalid form data.",
		})
		return
	}

	qty, err := form.Validate()
	if err != nil {
		render(c, http.StatusBadRequest, "update_quantity.html", gin.H{
			"material": material,
			"error":    err.Error(),
		})
		return
	}

	// single-column update; everything else on the row stays untouched
	if err := database.DB.Model(&material).Update("quantity", qty).Error; err != nil {
		render(c, http.StatusInternalServerError, "update_quantity.html", gin.H{
			"material": material,
			"error":    "Could not update quantity.",
		})
		return
	}

	if u, ok := currentUser(c); ok {
		database.RecordActivity(u.ID, "material", material.ID, "update",
			fmt.Sprintf("Set quantity of %s to %d", material.Name, qty))
	}

	flash(c, "success", "Quantity updated.")
	c.Redirect(http.StatusFound, "/materials")
}

// DELETE MATERIAL (admin only, gated in the router)

func DeleteMaterial(c *gin.Context) {
	id := c.Param("id")

	// deleting a missing id is a no-op, not an error
	res := database.DB.Delete(&models.Material{}, "id = ?", id)
	if res.Error != nil {
		flash(c, "warning", "Could not delete material.")
		c.Redirect(http.StatusFound, "/materials")
		return
	}

	if res.RowsAffected > 0 {
		if u, ok := currentUser(c); ok {
			database.RecordActivity(u.ID, "material", 0, "delete", "Deleted material id "+id)
		}
	}

	flash(c, "info", "Material deleted.")
	c.Redirect(http.StatusFound, "/materials")
}

func renderMaterialError(c *gin.Context, form forms.MaterialForm, edit bool, msg string) {
	render(c, http.StatusBadRequest, "material_form.html", gin.H{
		"form":  form,
		"edit":  edit,
		"error": msg,
	})
}

func materialToForm(m models.Material) forms.MaterialForm {
	return forms.MaterialForm{
		Name:         m.Name,
		Quantity:     fmt.Sprintf("%d", m.Quantity),
		Unit:         m.Unit,
		UnitPrice:    fmt.Sprintf("%g", m.UnitPrice),
		Supplier:     m.Supplier,
		MaterialType: m.MaterialType,
		Description:  m.Description,
	}
}
