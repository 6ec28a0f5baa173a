package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
)

// Pembangkit ID sekuensial yang mudah dibaca (BUR001, OPT001, CUS001, ...).
//
// Pola "scan max lalu format" tidak bebas balapan, jadi setiap caller wajib
// memanggil fungsi ini di dalam transaksi insert-nya dan mengulang lewat
// retryOnConflict bila primary key bentrok. Constraint unik di database yang
// menjadi penjaga terakhir, bukan asumsi di level aplikasi.

func nextSequentialID(tx *gorm.DB, model interface{}, column, prefix string, width int) (string, error) {
	var last string
	err := tx.Model(model).
		Select(column).
		Where(column+" LIKE ?", prefix+"%").
		Order(column + " desc").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	next := 1
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, next), nil
}

func NextMenuID(tx *gorm.DB) (string, error) {
	return nextSequentialID(tx, &models.Menu{}, "id_menu", "BUR", 3)
}

func NextOptionID(tx *gorm.DB) (string, error) {
	return nextSequentialID(tx, &models.MenuOption{}, "id", "OPT", 3)
}

func NextCustomerID(tx *gorm.DB) (string, error) {
	return nextSequentialID(tx, &models.Customer{}, "id", "CUS", 3)
}

// ChoiceID menurunkan id choice dari id option induknya: OPT007 -> CHO00701.
func ChoiceID(optionID string, index int) string {
	return fmt.Sprintf("CHO%s%02d", strings.TrimPrefix(optionID, "OPT"), index+1)
}

// NewOrderID memakai timestamp milidetik sebagai id order, dengan loop
// pengecekan unik untuk dua order yang dibuat pada milidetik yang sama.
func NewOrderID(tx *gorm.DB) (string, error) {
	for {
		id := strconv.FormatInt(time.Now().UnixMilli(), 10)
		var count int64
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return id, nil
		}
		time.Sleep(time.Millisecond)
	}
}

func OrderItemID(orderID string, index int) string {
	return fmt.Sprintf("%s-ITEM%02d", orderID, index+1)
}

// isDuplicateKey mengenali bentrokan constraint unik dari mysql maupun sqlite.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// RetryOnConflict mengulang fn selama error-nya bentrokan kunci unik,
// maksimal attempts kali. Dipakai oleh semua alur yang membuat ID
// sekuensial lewat nextSequentialID.
func RetryOnConflict(attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !isDuplicateKey(err) {
			return err
		}
	}
	return err
}
