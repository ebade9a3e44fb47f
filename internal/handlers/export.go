package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"site-tracker/internal/database"
	"site-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

var csvHeader = []string{"Name", "Quantity", "Unit", "Unit Price", "Supplier", "Type", "Description"}

// ExportCSV serializes the whole materials table, in table order, as a
// downloadable attachment.
func ExportCSV(c *gin.Context) {
	var materials []models.Material
	database.DB.Find(&materials)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(csvHeader)
	for _, m := range materials {
		_ = w.Write([]string{
			m.Name,
			strconv.Itoa(m.Quantity),
			m.Unit,
			strconv.FormatFloat(m.UnitPrice, 'f', -1, 64),
			m.Supplier,
			m.MaterialType,
			m.Description,
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="materials.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
