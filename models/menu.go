package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu dengan id format BURxxx (lihat services.NextMenuID).
//
// Untuk menu dengan StatusStok=true, Tersedia selalu dihitung ulang dari
// JumlahStok oleh stock ledger; jangan pernah di-set langsung.
type Menu struct {
	ID          string          `gorm:"column:id_menu;primaryKey;type:varchar(10)" json:"id"`
	CategoryID  *uint           `gorm:"index" json:"category_id,omitempty"`
	Category    *MenuCategory   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Image       string          `gorm:"type:varchar(255)" json:"-"`
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url"`
	StatusStok  bool            `gorm:"not null;default:false" json:"status_stok"`
	JumlahStok  *int            `json:"jumlah_stok,omitempty"`
	Tersedia    bool            `gorm:"not null;default:true" json:"tersedia"`
	Options     []MenuOption    `gorm:"many2many:menu_option_links" json:"options,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
