package models

import "time"

// Konten aplikasi (halaman onboarding dan banner carousel di home).

type Onboarding struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title1       string    `gorm:"type:varchar(255)" json:"title1"`
	Title2       string    `gorm:"type:varchar(255)" json:"title2"`
	Image        string    `gorm:"type:varchar(255)" json:"-"`
	ImageURL     string    `gorm:"type:varchar(255)" json:"image"`
	Description1 string    `gorm:"type:text" json:"description1"`
	Description2 string    `gorm:"type:text" json:"description2"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

type Carousel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Image     string    `gorm:"type:varchar(255)" json:"-"`
	ImageURL  string    `gorm:"type:varchar(255)" json:"banner"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
