package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/storage"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

// ContentController mengelola konten aplikasi customer: halaman onboarding
// dan banner carousel.
type ContentController struct {
	DB    *gorm.DB
	Store storage.Storage
}

func NewContentController(db *gorm.DB, store storage.Storage) *ContentController {
	return &ContentController{DB: db, Store: store}
}

// GetOnboarding
func (cc *ContentController) GetOnboarding(c *gin.Context) {
	var pages []models.Onboarding
	if err := cc.DB.Order("id asc").Find(&pages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Onboarding retrieved successfully", pages)
}

// CreateOnboarding -> halaman onboarding baru dengan gambar (multipart)
func (cc *ContentController) CreateOnboarding(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("gambar wajib diunggah"))
		return
	}

	objectName, imageURL, err := saveUploadedImage(cc.Store, file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	page := models.Onboarding{
		Title1:       c.PostForm("title1"),
		Title2:       c.PostForm("title2"),
		Image:        objectName,
		ImageURL:     imageURL,
		Description1: c.PostForm("description1"),
		Description2: c.PostForm("description2"),
	}
	if err := cc.DB.Create(&page).Error; err != nil {
		cc.Store.Remove(objectName)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Onboarding created successfully", page)
}

// GetCarousel
func (cc *ContentController) GetCarousel(c *gin.Context) {
	var banners []models.Carousel
	if err := cc.DB.Order("id asc").Find(&banners).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Carousel retrieved successfully", banners)
}

// CreateCarousel -> banner baru dengan gambar (multipart)
func (cc *ContentController) CreateCarousel(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("gambar wajib diunggah"))
		return
	}

	objectName, imageURL, err := saveUploadedImage(cc.Store, file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	banner := models.Carousel{
		Image:    objectName,
		ImageURL: imageURL,
	}
	if err := cc.DB.Create(&banner).Error; err != nil {
		cc.Store.Remove(objectName)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Carousel created successfully", banner)
}

// DeleteCarousel
func (cc *ContentController) DeleteCarousel(c *gin.Context) {
	if !requireRole(c, "admin") {
		return
	}

	var banner models.Carousel
	if err := cc.DB.First(&banner, c.Param("carousel_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("carousel tidak ditemukan"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := cc.DB.Delete(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if banner.Image != "" {
		cc.Store.Remove(banner.Image)
	}

	utils.RespondJSON(c, http.StatusOK, "Carousel berhasil dihapus", gin.H{"carousel_id": banner.ID})
}
