package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status pesanan. DONE dan CANCELLED bersifat final.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusDone       = "DONE"
	OrderStatusCancelled  = "CANCELLED"
)

type Order struct {
	ID            string          `gorm:"primaryKey;type:varchar(32)" json:"id"`
	QueueNumber   int             `gorm:"uniqueIndex;not null" json:"queue_number"`
	Status        string          `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	OrderType     string          `gorm:"type:varchar(20);not null" json:"order_type"`
	PaymentMethod string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	TableNumber   *string         `gorm:"type:varchar(10)" json:"table_number,omitempty"`
	SessionID     *string         `gorm:"type:varchar(64);index" json:"session_id,omitempty"`
	CustomerID    *string         `gorm:"type:varchar(10);index" json:"customer_id,omitempty"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}
