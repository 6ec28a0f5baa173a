package services

import (
	"errors"
	"fmt"
)

// Error taksonomi untuk layer service. Controller memetakan error ini
// ke kode HTTP; tidak ada yang di-retry otomatis oleh core.
var (
	ErrInvalidAction   = errors.New("aksi tidak valid")
	ErrInvalidQuantity = errors.New("jumlah harus lebih besar dari 0")
)

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s dengan id %s tidak ditemukan", e.Entity, e.ID)
}

type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// IllegalTransitionError menyebutkan status sekarang dan aksi yang diminta
// supaya caller bisa menjelaskan konflik ke user.
type IllegalTransitionError struct {
	Status string
	Action string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("tidak dapat mengubah status dari %s dengan aksi %s", e.Status, e.Action)
}

type InsufficientStockError struct {
	MenuID    string
	Name      string
	Requested int
	Available int
	Context   string // "order" atau "manual"
}

func (e *InsufficientStockError) Error() string {
	if e.Context == "manual" {
		return fmt.Sprintf("stok menu '%s' tidak cukup untuk dikurangi (tersisa %d, diminta %d)", e.Name, e.Available, e.Requested)
	}
	return fmt.Sprintf("stok untuk menu '%s' tidak mencukupi", e.Name)
}

type NotStockTrackedError struct {
	MenuID string
}

func (e *NotStockTrackedError) Error() string {
	return fmt.Sprintf("menu %s tidak menggunakan pelacakan stok", e.MenuID)
}
