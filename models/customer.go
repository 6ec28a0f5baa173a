package models

import "time"

// Customer dibuat otomatis saat order pertama (upsert berdasarkan nomor telepon).
type Customer struct {
	ID        string    `gorm:"primaryKey;type:varchar(10)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
