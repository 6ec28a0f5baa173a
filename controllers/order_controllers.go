package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/orderboard"
	"github.com/aldifirmansyah/burgerin-app/services"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:      db,
		Service: services.NewOrderService(db),
	}
}

// formatOrder membentuk respons daftar pesanan untuk dashboard kasir.
func formatOrder(order models.Order) gin.H {
	name := "-"
	if order.Customer != nil {
		name = order.Customer.Name
	}

	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		entry := gin.H{
			"namaMenu": item.Name,
			"jumlah":   item.Quantity,
			"harga":    item.Price,
			"note":     item.Notes,
		}
		if len(item.Options) > 0 {
			entry["options"] = item.Options
		}
		items = append(items, entry)
	}

	return gin.H{
		"orderId":      order.ID,
		"tanggalOrder": utils.FormatReadableDate(order.CreatedAt),
		"totalOrder":   order.Total,
		"nama":         name,
		"tipeOrder":    order.OrderType,
		"pembayaran":   order.PaymentMethod,
		"antrian":      order.QueueNumber,
		"status":       order.Status,
		"createdAt":    order.CreatedAt,
		"tableNumber":  order.TableNumber,
		"order":        items,
	}
}

// formatSessionOrder membentuk respons riwayat pesanan untuk aplikasi customer.
func formatSessionOrder(order models.Order) gin.H {
	products := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		product := gin.H{
			"id":       item.ID,
			"name":     item.Name,
			"quantity": item.Quantity,
			"price":    item.Price,
		}
		if item.Notes != nil && *item.Notes != "" {
			product["notes"] = item.Notes
		}
		if len(item.Options) > 0 {
			product["options"] = item.Options
		}
		products = append(products, product)
	}

	return gin.H{
		"id":          order.ID,
		"date":        order.CreatedAt.Format("Jan 2, 2006"),
		"time":        order.CreatedAt.Format("3:04 PM"),
		"queueNumber": order.QueueNumber,
		"status":      strings.ToLower(order.Status),
		"total":       order.Total,
		"products":    products,
	}
}

// CreateOrder -> order baru berstatus PENDING. Stok belum disentuh di sini.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.CreateOrder(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	orderboard.BroadcastOrderCreated(order)
	utils.InfoLogger.Printf("Order %s dibuat, antrian %d", order.ID, order.QueueNumber)

	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", gin.H{
		"order":              order,
		"createdAtFormatted": utils.FormatReadableDate(order.CreatedAt),
	})
}

// GetAllOrders -> pesanan aktif (PENDING / IN_PROGRESS / DONE) untuk dashboard
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.listOrders(models.OrderStatusPending, models.OrderStatusInProgress, models.OrderStatusDone)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		formatted = append(formatted, formatOrder(order))
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", formatted)
}

// GetOrderHistory -> pesanan final (DONE / CANCELLED)
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	orders, err := oc.listOrders(models.OrderStatusDone, models.OrderStatusCancelled)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("riwayat pesanan tidak ditemukan"))
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		formatted = append(formatted, formatOrder(order))
	}
	utils.RespondJSON(c, http.StatusOK, "Berhasil mengambil riwayat pesanan", formatted)
}

// GetOrderProgress -> pesanan yang sedang dimasak
func (oc *OrderController) GetOrderProgress(c *gin.Context) {
	orders, err := oc.listOrders(models.OrderStatusInProgress)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("tidak ada pesanan yang sedang diproses"))
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		formatted = append(formatted, formatOrder(order))
	}
	utils.RespondJSON(c, http.StatusOK, "Berhasil mengambil pesanan yang diproses", formatted)
}

func (oc *OrderController) listOrders(statuses ...string) ([]models.Order, error) {
	var orders []models.Order
	err := oc.DB.Preload("Items").Preload("Customer").
		Where("status IN ?", statuses).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus -> admin/staff menggerakkan state machine order
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	if !requireRole(c, "admin", "staff") {
		return
	}

	orderID := c.Param("order_id")

	var req struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.ApplyTransition(orderID, req.Action)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	orderboard.BroadcastOrderUpdate(order)

	message := fmt.Sprintf("Status pesanan berhasil diubah menjadi %s", order.Status)
	utils.RespondJSON(c, http.StatusOK, message, formatOrder(*order))
}

// GetOrderStatusByID -> polling status untuk aplikasi customer
func (oc *OrderController) GetOrderStatusByID(c *gin.Context) {
	orderID := c.Param("order_id")

	status, err := oc.Service.GetStatus(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status", gin.H{
		"orderId": orderID,
		"status":  status,
	})
}

// GetOrderHistoryBySession -> riwayat pesanan satu sesi customer
func (oc *OrderController) GetOrderHistoryBySession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("sessionId diperlukan"))
		return
	}

	var orders []models.Order
	err := oc.DB.Preload("Items").
		Where("session_id = ? AND status IN ?", sessionID,
			[]string{models.OrderStatusPending, models.OrderStatusInProgress, models.OrderStatusDone}).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("pesanan tidak ditemukan"))
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		formatted = append(formatted, formatSessionOrder(order))
	}
	utils.RespondJSON(c, http.StatusOK, "Order history retrieved successfully", formatted)
}
