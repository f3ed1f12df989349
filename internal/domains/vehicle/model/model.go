package model

import (
	"autocare/shared/model"
)

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldPlateNumber = "plate_number"
	FieldVIN         = "vin"
	FieldIsActive    = "is_active"
)

// Vehicle is a read-only collaborator of the booking engine: ownership is
// checked at creation time, nothing here is mutated by booking flows.
// Plate number and VIN are unique in storage; violations surface as
// Duplicate conflicts in the vehicle management flows.
type Vehicle struct {
	ID          int64  `db:"id"`
	CustomerID  string `db:"customer_id"`
	PlateNumber string `db:"plate_number"`
	VIN         string `db:"vin"`
	Make        string `db:"make"`
	Model       string `db:"model"`
	Year        int    `db:"year"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

// IsOwnedBy reports whether the vehicle belongs to the given customer.
func (v *Vehicle) IsOwnedBy(customerID string) bool {
	return v.CustomerID == customerID
}
