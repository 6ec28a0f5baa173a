package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aldifirmansyah/burgerin-app/services"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

var ErrNoPermission = errors.New("anda tidak punya akses untuk aksi ini")

// respondServiceError memetakan taksonomi error service ke kode HTTP.
// Semua error di sini kondisi yang diharapkan; caller yang memutuskan
// mau retry atau tidak.
func respondServiceError(c *gin.Context, err error) {
	var (
		notFound     *services.NotFoundError
		invalidInput *services.InvalidInputError
		illegal      *services.IllegalTransitionError
		stock        *services.InsufficientStockError
		notTracked   *services.NotStockTrackedError
	)

	switch {
	case errors.As(err, &notFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &invalidInput),
		errors.As(err, &illegal),
		errors.As(err, &stock),
		errors.As(err, &notTracked),
		errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrInvalidQuantity):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("unexpected service error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// requireRole mengecek role dari JWT claims yang diset AuthMiddleware.
func requireRole(c *gin.Context, roles ...string) bool {
	role, _ := c.Get("role")
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
	return false
}
