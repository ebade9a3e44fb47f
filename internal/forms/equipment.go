package forms

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type EquipmentForm struct {
	Name          string `form:"name"`
	Type          string `form:"type"`
	Make          string `form:"make"`
	Model         string `form:"model"`
	Year          string `form:"year"`
	Mileage       string `form:"mileage"`
	OilChangeDue  string `form:"oil_change_due"`
	InspectionDue string `form:"inspection_due"`
	Notes         string `form:"notes"`
}

type EquipmentFields struct {
	Name          string
	Type          string
	Make          string
	Model         string
	Year          int
	Mileage       int
	OilChangeDue  *time.Time
	InspectionDue *time.Time
	Notes         string
}

func (f *EquipmentForm) Validate() (*EquipmentFields, error) {
	fields := &EquipmentFields{
		Name:  strings.TrimSpace(f.Name),
		Type:  strings.TrimSpace(f.Type),
		Make:  strings.TrimSpace(f.Make),
		Model: strings.TrimSpace(f.Model),
		Notes: strings.TrimSpace(f.Notes),
	}

	if err := required("name", fields.Name); err != nil {
		return nil, err
	}
	if err := required("type", fields.Type); err != nil {
		return nil, err
	}

	year, err := optionalInt("year", f.Year)
	if err != nil {
		return nil, err
	}
	fields.Year = year

	mileage, err := optionalInt("mileage", f.Mileage)
	if err != nil {
		return nil, err
	}
	fields.Mileage = mileage

	oil, err := optionalDate("oil_change_due", f.OilChangeDue)
	if err != nil {
		return nil, err
	}
	fields.OilChangeDue = oil

	inspection, err := optionalDate("inspection_due", f.InspectionDue)
	if err != nil {
		return nil, err
	}
	fields.InspectionDue = inspection

	return fields, nil
}

type ServiceLogForm struct {
	ServiceDate string `form:"service_date"`
	Description string `form:"description"`
}

type ServiceLogFields struct {
	ServiceDate time.Time
	Description string
}

func (f *ServiceLogForm) Validate() (*ServiceLogFields, error) {
	raw := strings.TrimSpace(f.ServiceDate)
	if raw == "" {
		return nil, &ValidationError{Field: "service_date", Message: "is required"}
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, &ValidationError{Field: "service_date", Message: "must be a date (YYYY-MM-DD)"}
	}

	return &ServiceLogFields{
		ServiceDate: date,
		Description: strings.TrimSpace(f.Description),
	}, nil
}

func optionalInt(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be a whole number"}
	}
	return n, nil
}

func optionalDate(field, raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be a date (YYYY-MM-DD)"}
	}
	return &t, nil
}
