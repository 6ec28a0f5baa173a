package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/services"
	"github.com/aldifirmansyah/burgerin-app/storage"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

type MenuController struct {
	DB    *gorm.DB
	Store storage.Storage
}

func NewMenuController(db *gorm.DB, store storage.Storage) *MenuController {
	return &MenuController{DB: db, Store: store}
}

// GetAllMenus -> katalog lengkap beserta kategori dan opsi
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	err := mc.DB.Preload("Category").Preload("Options.Choices").
		Order("id_menu asc").
		Find(&menus).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	menuID := c.Param("menu_id")

	var menu models.Menu
	err := mc.DB.Preload("Category").Preload("Options.Choices").
		First(&menu, "id_menu = ?", menuID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu -> admin menambah menu baru dengan gambar (multipart)
func (mc *MenuController) CreateMenu(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	name := c.PostForm("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("nama menu wajib diisi"))
		return
	}

	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("harga tidak valid"))
		return
	}

	var categoryID *uint
	if raw := c.PostForm("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("category_id tidak valid"))
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	statusStok := c.PostForm("status_stok") == "true"
	var jumlahStok *int
	if raw := c.PostForm("jumlah_stok"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("jumlah_stok tidak valid"))
			return
		}
		jumlahStok = &parsed
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("gambar menu wajib diunggah"))
		return
	}

	objectName, imageURL, err := saveUploadedImage(mc.Store, file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// tersedia diturunkan dari stok saat pelacakan aktif
	tersedia := true
	if statusStok {
		tersedia = jumlahStok != nil && *jumlahStok > 0
	}

	var menu models.Menu
	err = services.RetryOnConflict(3, func() error {
		return mc.DB.Transaction(func(tx *gorm.DB) error {
			id, err := services.NextMenuID(tx)
			if err != nil {
				return err
			}
			menu = models.Menu{
				ID:          id,
				CategoryID:  categoryID,
				Name:        name,
				Description: c.PostForm("description"),
				Price:       price,
				Image:       objectName,
				ImageURL:    imageURL,
				StatusStok:  statusStok,
				JumlahStok:  jumlahStok,
				Tersedia:    tersedia,
			}
			return tx.Create(&menu).Error
		})
	})
	if err != nil {
		mc.Store.Remove(objectName)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu %s (%s) dibuat", menu.ID, menu.Name)
	utils.RespondJSON(c, http.StatusCreated, "Menu created successfully", menu)
}

// UpdateMenu -> edit katalog (nama/deskripsi/harga/kategori/gambar).
// Field stok tidak diubah di sini, pakai endpoint stok.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	menuID := c.Param("menu_id")

	var menu models.Menu
	if err := mc.DB.First(&menu, "id_menu = ?", menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if name := c.PostForm("name"); name != "" {
		menu.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		menu.Description = description
	}
	if raw := c.PostForm("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("harga tidak valid"))
			return
		}
		menu.Price = price
	}
	if raw := c.PostForm("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("category_id tidak valid"))
			return
		}
		id := uint(parsed)
		menu.CategoryID = &id
	}

	if file, err := c.FormFile("image"); err == nil {
		objectName, imageURL, err := saveUploadedImage(mc.Store, file)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if menu.Image != "" {
			mc.Store.Remove(menu.Image)
		}
		menu.Image = objectName
		menu.ImageURL = imageURL
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated successfully", menu)
}

// UpdateMenuStock -> set langsung pengaturan stok dari katalog.
// Tersedia selalu dihitung ulang di sini saat pelacakan aktif, tidak
// pernah diterima mentah dari request.
func (mc *MenuController) UpdateMenuStock(c *gin.Context) {
	if !requireRole(c, "admin", "staff") {
		return
	}

	menuID := c.Param("menu_id")

	var req struct {
		StatusStok *bool `json:"status_stok"`
		JumlahStok *int  `json:"jumlah_stok"`
		Tersedia   *bool `json:"tersedia"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.JumlahStok != nil && *req.JumlahStok < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("jumlah_stok tidak boleh negatif"))
		return
	}

	var menu models.Menu
	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&menu, "id_menu = ?", menuID).Error; err != nil {
			return err
		}

		if req.StatusStok != nil {
			menu.StatusStok = *req.StatusStok
		}
		if req.JumlahStok != nil {
			menu.JumlahStok = req.JumlahStok
		}

		if menu.StatusStok {
			stok := 0
			if menu.JumlahStok != nil {
				stok = *menu.JumlahStok
			}
			menu.Tersedia = stok > 0
		} else if req.Tersedia != nil {
			// tanpa pelacakan stok, flag boleh diatur manual
			menu.Tersedia = *req.Tersedia
		} else {
			menu.Tersedia = true
		}

		return tx.Save(&menu).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pengaturan stok diperbarui", menu)
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	menuID := c.Param("menu_id")

	var menu models.Menu
	if err := mc.DB.First(&menu, "id_menu = ?", menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if menu.Image != "" {
		mc.Store.Remove(menu.Image)
	}

	utils.RespondJSON(c, http.StatusOK, "Menu deleted successfully", gin.H{"menu_id": menu.ID})
}
