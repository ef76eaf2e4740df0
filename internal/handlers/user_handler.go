package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httpresp"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// Create registers an account on someone else's behalf, typically an admin
// onboarding technicians. Self-service signup goes through /auth/register.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case models.RoleOwner, models.RoleTechnician, models.RoleAdmin:
	default:
		httperr.BadRequest(c, "invalid_role", "Unknown user role.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not hash password.")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not create user.")
		return
	}

	httpresp.Created(c, "User created successfully.", user)
}

func (h *UserHandler) List(c *gin.Context) {
	role := strings.ToLower(strings.TrimSpace(c.Query("role")))
	switch role {
	case "", models.RoleOwner, models.RoleTechnician, models.RoleAdmin:
	default:
		httperr.BadRequest(c, "invalid_role", "Unknown user role.")
		return
	}
	h.listByRole(c, role)
}

func (h *UserHandler) ListTechnicians(c *gin.Context) {
	h.listByRole(c, models.RoleTechnician)
}

func (h *UserHandler) ListOwners(c *gin.Context) {
	h.listByRole(c, models.RoleOwner)
}

func (h *UserHandler) listByRole(c *gin.Context, role string) {
	q := h.db.Order("last_name, first_name")
	if role != "" {
		q = q.Where("role = ?", role)
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			httperr.BadRequest(c, "invalid_limit", "The 'limit' parameter must be a positive integer.")
			return
		}
		q = q.Limit(limit)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsValidID(id) {
		httperr.BadRequest(c, "invalid_user_id", "The user id is not a valid UUID.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsValidID(id) {
		httperr.BadRequest(c, "invalid_user_id", "The user id is not a valid UUID.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load user.")
		return
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not update user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsValidID(id) {
		httperr.BadRequest(c, "invalid_user_id", "The user id is not a valid UUID.")
		return
	}

	res := h.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Could not delete user.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OKMessage(c, "User deleted successfully.", nil)
}
