package forms

import (
	"strconv"
	"strings"
)

// MaterialForm carries the raw submitted values; Validate turns them
// into MaterialFields or reports the first failing constraint.
type MaterialForm struct {
	Name         string `form:"name"`
	Quantity     string `form:"quantity"`
	Unit         string `form:"unit"`
	UnitPrice    string `form:"unit_price"`
	Supplier     string `form:"supplier"`
	MaterialType string `form:"material_type"`
	Description  string `form:"description"`
}

type MaterialFields struct {
	Name         string
	Quantity     int
	Unit         string
	UnitPrice    float64
	Supplier     string
	MaterialType string
	Description  string
}

func (f *MaterialForm) Validate() (*MaterialFields, error) {
	fields := &MaterialFields{
		Name:         strings.TrimSpace(f.Name),
		Unit:         strings.TrimSpace(f.Unit),
		Supplier:     strings.TrimSpace(f.Supplier),
		MaterialType: strings.TrimSpace(f.MaterialType),
		Description:  strings.TrimSpace(f.Description),
	}

	if err := required("name", fields.Name); err != nil {
		return nil, err
	}
	if err := required("unit", fields.Unit); err != nil {
		return nil, err
	}
	if err := required("supplier", fields.Supplier); err != nil {
		return nil, err
	}
	if err := required("material_type", fields.MaterialType); err != nil {
		return nil, err
	}

	qty, err := parseQuantity(f.Quantity)
	if err != nil {
		return nil, err
	}
	fields.Quantity = qty

	priceStr := strings.TrimSpace(f.UnitPrice)
	if priceStr == "" {
		return nil, &ValidationError{Field: "unit_price", Message: "is required"}
	}
	price, perr := strconv.ParseFloat(priceStr, 64)
	if perr != nil {
		return nil, &ValidationError{Field: "unit_price", Message: "must be a number"}
	}
	if price < 0 {
		return nil, &ValidationError{Field: "unit_price", Message: "must be at least 0"}
	}
	fields.UnitPrice = price

	return fields, nil
}

// QuantityForm is the narrow quantity-only update form.
type QuantityForm struct {
	Quantity string `form:"quantity"`
}

func (f *QuantityForm) Validate() (int, error) {
	return parseQuantity(f.Quantity)
}

func parseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ValidationError{Field: "quantity", Message: "is required"}
	}
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "quantity", Message: "must be a whole number"}
	}
	if qty < 0 {
		return 0, &ValidationError{Field: "quantity", Message: "must be at least 0"}
	}
	return qty, nil
}
