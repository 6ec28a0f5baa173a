package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
)

// StockLedger adalah satu-satunya penulis jumlah_stok dan tersedia untuk
// menu dengan pelacakan stok. Tersedia selalu dihitung ulang dari jumlah
// stok hasil operasi, tidak pernah disalin dari nilai lama.
type StockLedger struct {
	DB *gorm.DB
}

func NewStockLedger(db *gorm.DB) *StockLedger {
	return &StockLedger{DB: db}
}

// berapa kali operasi stok mengulang compare-and-swap yang kalah balapan
const stockRetryLimit = 3

// Reserve mengurangi stok saat order masuk produksi. Menu tanpa pelacakan
// stok lolos tanpa perubahan.
func (l *StockLedger) Reserve(menuID string, quantity int) (*models.Menu, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	var menu *models.Menu
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		if err := reserveStock(tx, menuID, "", quantity, "order"); err != nil {
			return err
		}
		var err error
		menu, err = findMenu(tx, menuID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// Restock menambah stok dan selalu membuat menu tersedia kembali.
func (l *StockLedger) Restock(menuID string, quantity int) (*models.Menu, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	var menu *models.Menu
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		current, err := findMenu(tx, menuID)
		if err != nil {
			return err
		}
		if !current.StatusStok {
			return &NotStockTrackedError{MenuID: menuID}
		}
		res := tx.Model(&models.Menu{}).
			Where("id_menu = ?", menuID).
			Updates(map[string]interface{}{
				"jumlah_stok": gorm.Expr("COALESCE(jumlah_stok, 0) + ?", quantity),
				"tersedia":    true,
			})
		if res.Error != nil {
			return res.Error
		}
		menu, err = findMenu(tx, menuID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// Reduce adalah koreksi stok manual di luar alur order (mis. bahan rusak).
// Berbeda dengan Reserve, menu tanpa pelacakan stok ditolak karena tidak
// ada angka yang bisa dikoreksi.
func (l *StockLedger) Reduce(menuID string, quantity int) (*models.Menu, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	var menu *models.Menu
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		current, err := findMenu(tx, menuID)
		if err != nil {
			return err
		}
		if !current.StatusStok {
			return &NotStockTrackedError{MenuID: menuID}
		}
		if err := reserveStock(tx, menuID, current.Name, quantity, "manual"); err != nil {
			return err
		}
		menu, err = findMenu(tx, menuID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func findMenu(tx *gorm.DB, menuID string) (*models.Menu, error) {
	var menu models.Menu
	if err := tx.First(&menu, "id_menu = ?", menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "menu", ID: menuID}
		}
		return nil, err
	}
	return &menu, nil
}

// reserveStock menjalankan satu read-check-write terhadap satu baris menu.
// Penurunan stok ditulis sebagai compare-and-swap: WHERE jumlah_stok =
// nilai yang terbaca, sehingga dua reservasi bersamaan tidak pernah
// saling menimpa (lost update). Kalah balapan -> baca ulang dan coba lagi.
func reserveStock(tx *gorm.DB, menuID, itemName string, quantity int, context string) error {
	for attempt := 0; attempt < stockRetryLimit; attempt++ {
		menu, err := findMenu(tx, menuID)
		if err != nil {
			return err
		}
		if !menu.StatusStok {
			// menu tanpa pelacakan stok: reservasi selalu berhasil
			return nil
		}
		name := menu.Name
		if itemName != "" {
			name = itemName
		}
		available := 0
		if menu.JumlahStok != nil {
			available = *menu.JumlahStok
		}
		if available < quantity {
			return &InsufficientStockError{
				MenuID:    menu.ID,
				Name:      name,
				Requested: quantity,
				Available: available,
				Context:   context,
			}
		}
		remaining := available - quantity
		res := tx.Model(&models.Menu{}).
			Where("id_menu = ? AND jumlah_stok = ?", menuID, available).
			Updates(map[string]interface{}{
				"jumlah_stok": remaining,
				"tersedia":    remaining > 0,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
	}
	return &InsufficientStockError{MenuID: menuID, Name: itemName, Requested: quantity, Context: context}
}
