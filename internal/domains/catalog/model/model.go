package model

import (
	"autocare/shared/model"
)

const (
	CenterTableName  = "service_centers"
	CenterEntityName = "service center"

	CenterFieldID       = "id"
	CenterFieldName     = "name"
	CenterFieldIsActive = "is_active"
)

const (
	ServiceTableName  = "services"
	ServiceEntityName = "service"

	ServiceFieldID          = "id"
	ServiceFieldName        = "name"
	ServiceFieldIsAvailable = "is_available"
)

const (
	CenterServiceTableName  = "center_services"
	CenterServiceEntityName = "center service"

	CenterServiceFieldID        = "id"
	CenterServiceFieldCenterID  = "service_center_id"
	CenterServiceFieldServiceID = "service_id"
	CenterServiceFieldIsActive  = "is_active"
)

// ServiceCenter is a read-only catalog entry; booking creation requires it
// to be active.
type ServiceCenter struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	City     string `db:"city"`
	Phone    string `db:"phone"`
	IsActive bool   `db:"is_active"`
	model.Metadata
}

// Service is a catalog maintenance service with its base price and duration.
type Service struct {
	ID              int64   `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	BasePrice       float64 `db:"base_price"`
	DurationMinutes int     `db:"duration_minutes"`
	IsAvailable     bool    `db:"is_available"`
	model.Metadata
}

// CenterService links a service to a center, optionally overriding the base
// price. A booking may only target links that are active.
type CenterService struct {
	ID              int64    `db:"id"`
	ServiceCenterID int64    `db:"service_center_id"`
	ServiceID       int64    `db:"service_id"`
	OverridePrice   *float64 `db:"override_price"`
	IsActive        bool     `db:"is_active"`
	model.Metadata
}

// EffectivePrice resolves the display price for this link given the
// service's base price.
func (cs *CenterService) EffectivePrice(basePrice float64) float64 {
	if cs.OverridePrice != nil {
		return *cs.OverridePrice
	}

	return basePrice
}
