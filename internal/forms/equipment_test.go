package forms

import "testing"

func TestEquipmentFormOptionalFields(t *testing.T) {
	form := EquipmentForm{Name: "Excavator", Type: "heavy"}
	fields, err := form.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Year != 0 || fields.Mileage != 0 {
		t.Fatalf("empty numeric fields should parse to zero")
	}
	if fields.OilChangeDue != nil || fields.InspectionDue != nil {
		t.Fatalf("empty dates should stay nil")
	}
}

func TestEquipmentFormParsesDates(t *testing.T) {
	form := EquipmentForm{
		Name:         "Truck",
		Type:         "vehicle",
		Year:         "2019",
		Mileage:      "120000",
		OilChangeDue: "2026-10-01",
	}
	fields, err := form.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Year != 2019 || fields.Mileage != 120000 {
		t.Fatalf("numeric fields not parsed: %+v", fields)
	}
	if fields.OilChangeDue == nil || fields.OilChangeDue.Format("2006-01-02") != "2026-10-01" {
		t.Fatalf("oil change due not parsed: %v", fields.OilChangeDue)
	}
}

func TestEquipmentFormRequiresNameAndType(t *testing.T) {
	if _, err := (&EquipmentForm{Type: "vehicle"}).Validate(); err == nil {
		t.Fatalf("expected error when name is missing")
	}
	if _, err := (&EquipmentForm{Name: "Truck"}).Validate(); err == nil {
		t.Fatalf("expected error when type is missing")
	}
}

func TestEquipmentFormRejectsBadDate(t *testing.T) {
	form := EquipmentForm{Name: "Truck", Type: "vehicle", InspectionDue: "next week"}
	if _, err := form.Validate(); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestServiceLogFormRequiresDate(t *testing.T) {
	if _, err := (&ServiceLogForm{Description: "oil change"}).Validate(); err == nil {
		t.Fatalf("expected error when service_date is missing")
	}

	form := ServiceLogForm{ServiceDate: "2026-08-15", Description: "oil change"}
	fields, err := form.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.ServiceDate.Format("2006-01-02") != "2026-08-15" {
		t.Fatalf("service date not parsed: %v", fields.ServiceDate)
	}
}
