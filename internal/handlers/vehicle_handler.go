package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httpresp"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type VehicleHandler struct {
	db *gorm.DB
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{db: db}
}

type CreateVehicleRequest struct {
	Plate   string `json:"plate" binding:"required"`
	Brand   string `json:"brand" binding:"required"`
	Model   string `json:"model" binding:"required"`
	OwnerID string `json:"owner_id" binding:"required"`
}

type UpdateVehicleRequest struct {
	Brand *string `json:"brand"`
	Model *string `json:"model"`
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if !validators.IsValidPlate(plate) {
		httperr.BadRequest(c, "invalid_plate", "The license plate format is not valid.")
		return
	}
	if !validators.IsValidID(req.OwnerID) {
		httperr.BadRequest(c, "invalid_owner_id", "The owner id is not a valid UUID.")
		return
	}

	var owner models.User
	if err := h.db.First(&owner, "id = ?", req.OwnerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Owner not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load owner.")
		return
	}
	if owner.Role != models.RoleOwner {
		httperr.BadRequest(c, "owner_role_required", "Vehicles can only be registered to owner accounts.")
		return
	}

	var count int64
	h.db.Model(&models.Vehicle{}).Where("plate = ?", plate).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "plate_already_exists", "A vehicle with this plate is already registered.")
		return
	}

	vehicle := models.Vehicle{
		Plate:   plate,
		Brand:   strings.TrimSpace(req.Brand),
		Model:   strings.TrimSpace(req.Model),
		OwnerID: owner.ID,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not register vehicle.")
		return
	}

	httpresp.Created(c, "Vehicle registered successfully.", vehicle)
}

func (h *VehicleHandler) List(c *gin.Context) {
	q := h.db.Preload("Owner").Order("plate")

	if ownerID := c.Query("owner_id"); ownerID != "" {
		if !validators.IsValidID(ownerID) {
			httperr.BadRequest(c, "invalid_owner_id", "The owner id is not a valid UUID.")
			return
		}
		q = q.Where("owner_id = ?", ownerID)
	}

	var vehicles []models.Vehicle
	if err := q.Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list vehicles.")
		return
	}

	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) ListByOwner(c *gin.Context) {
	ownerID := c.Param("ownerId")
	if !validators.IsValidID(ownerID) {
		httperr.BadRequest(c, "invalid_owner_id", "The owner id is not a valid UUID.")
		return
	}

	var vehicles []models.Vehicle
	if err := h.db.Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("plate").
		Find(&vehicles).Error; err != nil {

		httperr.Internal(c, "internal_error", "Could not list vehicles.")
		return
	}

	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsValidID(id) {
		httperr.BadRequest(c, "invalid_vehicle_id", "The vehicle id is not a valid UUID.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.Preload("Owner").First(&vehicle, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load vehicle.")
		return
	}

	httpresp.OK(c, vehicle)
}

func (h *VehicleHandler) GetByPlate(c *gin.Context) {
	plate := strings.ToUpper(strings.TrimSpace(c.Param("plate")))
	if !validators.IsValidPlate(plate) {
		httperr.BadRequest(c, "invalid_plate", "The license plate format is not valid.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.Preload("Owner").First(&vehicle, "plate = ?", plate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load vehicle.")
		return
	}

	httpresp.OK(c, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsValidID(id) {
		httperr.BadRequest(c, "invalid_vehicle_id", "The vehicle id is not a valid UUID.")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var vehicle models.Vehicle
	if err := h.db.First(&vehicle, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load vehicle.")
		return
	}

	if req.Brand != nil {
		vehicle.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		vehicle.Model = strings.TrimSpace(*req.Model)
	}

	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not update vehicle.")
		return
	}

	httpresp.OK(c, vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsValidID(id) {
		httperr.BadRequest(c, "invalid_vehicle_id", "The vehicle id is not a valid UUID.")
		return
	}

	res := h.db.Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Could not delete vehicle.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	httpresp.OKMessage(c, "Vehicle deleted successfully.", nil)
}
