package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user. Operators and managers are
// assigned to a single facility via MRFID; panchayat users are not.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	MRFID        string    `db:"mrf_id" json:"mrf_id,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// IntakeEvent is one delivery of unsorted material arriving at a facility.
type IntakeEvent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	MRFID      string    `db:"mrf_id" json:"mrf_id"`
	VehicleID  string    `db:"vehicle_id" json:"vehicle_id"`
	Weight     float64   `db:"weight" json:"weight"`
	Date       time.Time `db:"date" json:"date"`
	OperatorID uuid.UUID `db:"operator_id" json:"operator_id"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// SortedEvent records material from an intake decomposed into a category.
// The referenced intake is validated on the write path; readers trust it.
type SortedEvent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	IntakeID   uuid.UUID `db:"intake_id" json:"intake_id"`
	Category   string    `db:"category" json:"category"`
	Weight     float64   `db:"weight" json:"weight"`
	Date       time.Time `db:"date" json:"date"`
	OperatorID uuid.UUID `db:"operator_id" json:"operator_id"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// SaleEvent is an outbound transaction of sorted material to a buyer.
// TotalAmount is always weight times unit price, recomputed server-side.
type SaleEvent struct {
	ID           uuid.UUID `db:"id" json:"id"`
	MRFID        string    `db:"mrf_id" json:"mrf_id"`
	Category     string    `db:"category" json:"category"`
	Weight       float64   `db:"weight" json:"weight"`
	UnitPrice    float64   `db:"unit_price" json:"unit_price"`
	TotalAmount  float64   `db:"total_amount" json:"total_amount"`
	BuyerName    string    `db:"buyer_name" json:"buyer_name"`
	BuyerContact string    `db:"buyer_contact" json:"buyer_contact,omitempty"`
	Date         time.Time `db:"date" json:"date"`
	OperatorID   uuid.UUID `db:"operator_id" json:"operator_id"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// WasteCategory is a catalog entry, not time-series data. Reports treat
// it only as a label lookup; computation never depends on it.
type WasteCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
