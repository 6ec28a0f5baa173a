package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuOption adalah grup pilihan (mis. "Level Pedas") yang bisa dipasang
// ke beberapa menu sekaligus. ID format OPTxxx, choice CHOxxxnn.
type MenuOption struct {
	ID        string         `gorm:"primaryKey;type:varchar(10)" json:"id"`
	Title     string         `gorm:"type:varchar(100);not null" json:"title"`
	Optional  bool           `gorm:"not null" json:"optional"`
	Max       int            `gorm:"not null" json:"max"`
	Choices   []OptionChoice `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"choices"`
	Menus     []Menu         `gorm:"many2many:menu_option_links" json:"menus,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

type OptionChoice struct {
	ID       string          `gorm:"primaryKey;type:varchar(12)" json:"id"`
	OptionID string          `gorm:"type:varchar(10);not null;index" json:"option_id"`
	Name     string          `gorm:"type:varchar(100);not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}
