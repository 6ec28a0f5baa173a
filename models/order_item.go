package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem adalah snapshot menu saat order dibuat. Nama dan harga
// disalin dari menu supaya edit katalog tidak mengubah pesanan lama.
type OrderItem struct {
	ID        string          `gorm:"primaryKey;type:varchar(48)" json:"id"`
	OrderID   string          `gorm:"type:varchar(32);not null;index" json:"order_id"`
	Order     Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID    string          `gorm:"type:varchar(10);not null" json:"menu_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Notes     *string         `gorm:"type:text" json:"notes,omitempty"`
	Options   json.RawMessage `gorm:"type:text" json:"options,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}
