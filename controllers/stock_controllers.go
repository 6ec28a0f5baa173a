package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/orderboard"
	"github.com/aldifirmansyah/burgerin-app/services"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

// StockController mengekspos operasi stock ledger di luar alur order:
// restock dari dapur dan koreksi manual.
type StockController struct {
	Ledger *services.StockLedger
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{Ledger: services.NewStockLedger(db)}
}

type stockAdjustRequest struct {
	Quantity int `json:"quantity"`
}

// RestockMenu -> tambah stok; menu otomatis tersedia kembali
func (sc *StockController) RestockMenu(c *gin.Context) {
	if !requireRole(c, "admin", "staff") {
		return
	}

	var req stockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := sc.Ledger.Restock(c.Param("menu_id"), req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	orderboard.BroadcastStockUpdate(menu)
	utils.InfoLogger.Printf("Restock %s sebanyak %d", menu.ID, req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Stok berhasil ditambah", menu)
}

// ReduceMenu -> koreksi stok manual (mis. bahan rusak atau hasil stock opname)
func (sc *StockController) ReduceMenu(c *gin.Context) {
	if !requireRole(c, "admin", "staff") {
		return
	}

	var req stockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := sc.Ledger.Reduce(c.Param("menu_id"), req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	orderboard.BroadcastStockUpdate(menu)
	utils.InfoLogger.Printf("Koreksi stok %s sebanyak -%d", menu.ID, req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Stok berhasil dikurangi", menu)
}
