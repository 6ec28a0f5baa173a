package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/services"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

// MenuOptionController mengelola grup opsi menu (level pedas, topping, dst)
// beserta choices-nya.
type MenuOptionController struct {
	DB *gorm.DB
}

func NewMenuOptionController(db *gorm.DB) *MenuOptionController {
	return &MenuOptionController{DB: db}
}

type optionRequest struct {
	Title    string `json:"title" binding:"required"`
	Optional *bool  `json:"optional" binding:"required"`
	Max      *int   `json:"max" binding:"required"`
	Choices  []struct {
		Name  string          `json:"name" binding:"required"`
		Price decimal.Decimal `json:"price"`
	} `json:"choices" binding:"required"`
	MenuIDs []string `json:"menuIds" binding:"required"`
}

func (oc *MenuOptionController) findMenus(tx *gorm.DB, menuIDs []string) ([]models.Menu, error) {
	var menus []models.Menu
	if err := tx.Where("id_menu IN ?", menuIDs).Find(&menus).Error; err != nil {
		return nil, err
	}
	if len(menus) != len(menuIDs) {
		return nil, errors.New("ada menu yang tidak ditemukan")
	}
	return menus, nil
}

// CreateOption -> buat grup opsi baru dan pasang ke daftar menu
func (oc *MenuOptionController) CreateOption(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var option models.MenuOption
	err := services.RetryOnConflict(3, func() error {
		return oc.DB.Transaction(func(tx *gorm.DB) error {
			menus, err := oc.findMenus(tx, req.MenuIDs)
			if err != nil {
				return err
			}

			id, err := services.NextOptionID(tx)
			if err != nil {
				return err
			}

			option = models.MenuOption{
				ID:       id,
				Title:    req.Title,
				Optional: *req.Optional,
				Max:      *req.Max,
			}
			for i, choice := range req.Choices {
				option.Choices = append(option.Choices, models.OptionChoice{
					ID:       services.ChoiceID(id, i),
					OptionID: id,
					Name:     choice.Name,
					Price:    choice.Price,
				})
			}

			if err := tx.Omit("Menus").Create(&option).Error; err != nil {
				return err
			}
			return tx.Model(&option).Association("Menus").Append(menus)
		})
	})
	if err != nil {
		if err.Error() == "ada menu yang tidak ditemukan" {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu Option created successfully", option)
}

// GetOptions
func (oc *MenuOptionController) GetOptions(c *gin.Context) {
	var options []models.MenuOption
	err := oc.DB.Preload("Choices").Preload("Menus").Find(&options).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu Options fetched successfully", options)
}

// GetOptionByID
func (oc *MenuOptionController) GetOptionByID(c *gin.Context) {
	var option models.MenuOption
	err := oc.DB.Preload("Choices").Preload("Menus").
		First(&option, "id = ?", c.Param("option_id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu option tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu Option fetched successfully", option)
}

// EditOption -> ganti seluruh isi grup: choices lama dihapus lalu dibuat ulang
func (oc *MenuOptionController) EditOption(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	optionID := c.Param("option_id")

	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var option models.MenuOption
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&option, "id = ?", optionID).Error; err != nil {
			return err
		}

		menus, err := oc.findMenus(tx, req.MenuIDs)
		if err != nil {
			return err
		}

		option.Title = req.Title
		option.Optional = *req.Optional
		option.Max = *req.Max
		if err := tx.Omit("Menus", "Choices").Save(&option).Error; err != nil {
			return err
		}

		if err := tx.Where("option_id = ?", optionID).Delete(&models.OptionChoice{}).Error; err != nil {
			return err
		}
		option.Choices = nil
		for i, choice := range req.Choices {
			option.Choices = append(option.Choices, models.OptionChoice{
				ID:       services.ChoiceID(optionID, i),
				OptionID: optionID,
				Name:     choice.Name,
				Price:    choice.Price,
			})
		}
		if err := tx.Create(&option.Choices).Error; err != nil {
			return err
		}

		return tx.Model(&option).Association("Menus").Replace(menus)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu option tidak ditemukan"))
			return
		}
		if err.Error() == "ada menu yang tidak ditemukan" {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu Option updated successfully", option)
}

// DeleteOption
func (oc *MenuOptionController) DeleteOption(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	optionID := c.Param("option_id")

	var option models.MenuOption
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&option, "id = ?", optionID).Error; err != nil {
			return err
		}
		if err := tx.Model(&option).Association("Menus").Clear(); err != nil {
			return err
		}
		if err := tx.Where("option_id = ?", optionID).Delete(&models.OptionChoice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&option).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu option tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu Option deleted successfully", gin.H{"option_id": optionID})
}
