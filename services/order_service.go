package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
)

// Aksi transisi status order, persis nilai yang diterima endpoint
// PUT /order-status/:id.
const (
	ActionPendingToProgress   = "pending_to_progress"
	ActionProgressToDone      = "progress_to_done"
	ActionPendingToCancelled  = "pending_to_cancelled"
	ActionProgressToCancelled = "progress_to_cancelled"
)

// Tabel transisi: satu aksi hanya valid dari satu status asal.
var transitions = map[string]struct{ From, To string }{
	ActionPendingToProgress:   {models.OrderStatusPending, models.OrderStatusInProgress},
	ActionProgressToDone:      {models.OrderStatusInProgress, models.OrderStatusDone},
	ActionPendingToCancelled:  {models.OrderStatusPending, models.OrderStatusCancelled},
	ActionProgressToCancelled: {models.OrderStatusInProgress, models.OrderStatusCancelled},
}

const queueRetryLimit = 3

// OrderService memegang siklus hidup order: pembuatan (dengan nomor
// antrean) dan transisi status (dengan reservasi stok saat masuk produksi).
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemInput struct {
	MenuID   string          `json:"menuId"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Notes    *string         `json:"notes"`
	Options  json.RawMessage `json:"options"`
}

type CustomerInput struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

type CreateOrderInput struct {
	OrderType     string           `json:"orderType"`
	PaymentMethod string           `json:"paymentMethod"`
	TableNumber   *string          `json:"tableNumber"`
	SessionID     *string          `json:"sessionId"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Total         decimal.Decimal  `json:"total"`
	Customer      *CustomerInput   `json:"customer"`
	Items         []OrderItemInput `json:"items"`
}

// CreateOrder menyimpan order baru berikut snapshot item-nya dalam satu
// transaksi. Stok tidak disentuh di sini: memesan berarti mengambil nomor
// antrean, bukan inventori. Stok baru dikurangi saat dapur mulai masak
// (ApplyTransition dengan pending_to_progress).
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.OrderType == "" || input.PaymentMethod == "" || len(input.Items) == 0 {
		return nil, &InvalidInputError{Reason: "orderType, paymentMethod, dan items wajib diisi"}
	}
	for _, item := range input.Items {
		if item.MenuID == "" || item.Quantity <= 0 {
			return nil, &InvalidInputError{Reason: "setiap item butuh menuId dan quantity lebih dari 0"}
		}
	}

	var order models.Order
	// Nomor antrean unik; kalau dua order bersamaan membaca max yang sama,
	// insert kedua gagal di constraint dan seluruh transaksi diulang.
	err := RetryOnConflict(queueRetryLimit, func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			queueNumber, err := nextQueueNumber(tx)
			if err != nil {
				return err
			}

			customerID, err := resolveCustomer(tx, input.Customer)
			if err != nil {
				return err
			}

			orderID, err := NewOrderID(tx)
			if err != nil {
				return err
			}

			now := time.Now()
			order = models.Order{
				ID:            orderID,
				QueueNumber:   queueNumber,
				Status:        models.OrderStatusPending,
				OrderType:     input.OrderType,
				PaymentMethod: input.PaymentMethod,
				TableNumber:   input.TableNumber,
				SessionID:     input.SessionID,
				CustomerID:    customerID,
				Subtotal:      input.Subtotal,
				Total:         input.Total,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			for i, item := range input.Items {
				order.Items = append(order.Items, models.OrderItem{
					ID:        OrderItemID(orderID, i),
					OrderID:   orderID,
					MenuID:    item.MenuID,
					Name:      item.Name,
					Quantity:  item.Quantity,
					Price:     item.Price,
					Notes:     item.Notes,
					Options:   item.Options,
					CreatedAt: now,
					UpdatedAt: now,
				})
			}

			return tx.Create(&order).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return s.findOrder(order.ID)
}

// ApplyTransition memvalidasi aksi terhadap status order sekarang lalu
// menerapkannya. Untuk pending_to_progress, stok setiap item yang dilacak
// direservasi dalam transaksi yang sama: satu item gagal berarti seluruh
// transisi batal tanpa ada stok yang berubah.
func (s *OrderService) ApplyTransition(orderID, action string) (*models.Order, error) {
	rule, ok := transitions[action]
	if !ok {
		return nil, ErrInvalidAction
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "pesanan", ID: orderID}
			}
			return err
		}

		if order.Status != rule.From {
			return &IllegalTransitionError{Status: order.Status, Action: action}
		}

		if action == ActionPendingToProgress {
			for _, item := range order.Items {
				if err := reserveStock(tx, item.MenuID, item.Name, item.Quantity, "order"); err != nil {
					return err
				}
			}
		}
		// Catatan: pembatalan dari IN_PROGRESS tidak mengembalikan stok
		// yang sudah direservasi; bahan dianggap terpakai oleh dapur.

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, rule.From).
			Updates(map[string]interface{}{"status": rule.To, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// status berubah di tengah jalan oleh request lain
			return &IllegalTransitionError{Status: order.Status, Action: action}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.findOrder(orderID)
}

// GetStatus mengembalikan status satu order untuk polling klien.
func (s *OrderService) GetStatus(orderID string) (string, error) {
	var order models.Order
	err := s.DB.Select("id", "status").First(&order, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "pesanan", ID: orderID}
		}
		return "", err
	}
	return order.Status, nil
}

func (s *OrderService) findOrder(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").Preload("Customer").First(&order, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "pesanan", ID: orderID}
		}
		return nil, err
	}
	return &order, nil
}

// nextQueueNumber membaca nomor antrean terbesar lintas semua order
// (apapun statusnya) dan menambah satu; order pertama mendapat 100.
func nextQueueNumber(tx *gorm.DB) (int, error) {
	var current int
	err := tx.Model(&models.Order{}).
		Select("COALESCE(MAX(queue_number), ?)", 99).
		Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

func resolveCustomer(tx *gorm.DB, input *CustomerInput) (*string, error) {
	if input == nil || input.Phone == "" {
		return nil, nil
	}

	var existing models.Customer
	err := tx.Where("phone = ?", input.Phone).First(&existing).Error
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, err := NextCustomerID(tx)
	if err != nil {
		return nil, err
	}
	customer := models.Customer{
		ID:    id,
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer.ID, nil
}
