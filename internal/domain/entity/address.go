// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddressType classifies a saved address.
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// Address is a saved postal address of a user. At most one per user is the default.
type Address struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"user_id"`
	FullName     string      `json:"full_name"`
	Phone        string      `json:"phone"`
	AddressLine1 string      `json:"address_line1"`
	AddressLine2 string      `json:"address_line2,omitempty"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Country      string      `json:"country"`
	ZipCode      string      `json:"zip_code"`
	AddressType  AddressType `json:"address_type"`
	IsDefault    bool        `json:"is_default"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Formatted renders the address on a single line.
func (a *Address) Formatted() string {
	var b strings.Builder
	b.WriteString(a.AddressLine1)
	if a.AddressLine2 != "" {
		b.WriteString(", " + a.AddressLine2)
	}
	b.WriteString(", " + a.City + ", " + a.State + " " + a.ZipCode + ", " + a.Country)

	return b.String()
}

// Snapshot copies the address into an order address snapshot.
func (a *Address) Snapshot() OrderAddress {
	return OrderAddress{
		FullName:     a.FullName,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
		ZipCode:      a.ZipCode,
	}
}
