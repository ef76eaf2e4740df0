package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apdomain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httpresp"
	"github.com/VTVServicesAR/inspection-scheduler/internal/middleware"
	"github.com/VTVServicesAR/inspection-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	request       *appointment.RequestAppointment
	confirm       *appointment.ConfirmAppointment
	cancel        *appointment.CancelAppointment
	reschedule    *appointment.RescheduleAppointment
	get           *appointment.GetAppointment
	list          *appointment.ListAppointments
	listAvailable *appointment.ListAvailableAppointments
	listByVehicle *appointment.ListAppointmentsByVehicle
}

func NewAppointmentHandler(
	request *appointment.RequestAppointment,
	confirm *appointment.ConfirmAppointment,
	cancel *appointment.CancelAppointment,
	reschedule *appointment.RescheduleAppointment,
	get *appointment.GetAppointment,
	list *appointment.ListAppointments,
	listAvailable *appointment.ListAvailableAppointments,
	listByVehicle *appointment.ListAppointmentsByVehicle,
) *AppointmentHandler {
	return &AppointmentHandler{
		request:       request,
		confirm:       confirm,
		cancel:        cancel,
		reschedule:    reschedule,
		get:           get,
		list:          list,
		listAvailable: listAvailable,
		listByVehicle: listByVehicle,
	}
}

// --------- Requests ---------

type RequestAppointmentRequest struct {
	VehicleID   string    `json:"vehicle_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RescheduleAppointmentRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Request(c *gin.Context) {
	var req RequestAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.request.Execute(c.Request.Context(), appointment.RequestAppointmentInput{
		VehicleID:   req.VehicleID,
		ScheduledAt: req.ScheduledAt,
		RequestedBy: c.GetString(middleware.ContextUserID),
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not request appointment.")
		return
	}

	httpresp.Created(c, "Appointment requested successfully.", ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.ContextUserID),
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not confirm appointment.")
		return
	}

	httpresp.OKMessage(c, "Appointment confirmed successfully.", ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.cancel.Execute(
		c.Request.Context(),
		c.Param("id"),
		req.Reason,
		c.GetString(middleware.ContextUserID),
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not cancel appointment.")
		return
	}

	httpresp.OKMessage(c, "Appointment cancelled successfully.", ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.reschedule.Execute(
		c.Request.Context(),
		c.Param("id"),
		req.ScheduledAt,
		c.GetString(middleware.ContextUserID),
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not reschedule appointment.")
		return
	}

	httpresp.OKMessage(c, "Appointment rescheduled successfully.", ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not load appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	filter := apdomain.ListFilter{
		Status:    apdomain.Status(c.Query("status")),
		VehicleID: c.Query("vehicle_id"),
	}

	switch filter.Status {
	case "", apdomain.StatusPending, apdomain.StatusConfirmed,
		apdomain.StatusCancelled, apdomain.StatusCompleted:
	default:
		httperr.BadRequest(c, "invalid_status_filter", "Unknown appointment status.")
		return
	}

	from, ok := parseTimeParam(c.Query("from"))
	if !ok {
		httperr.BadRequest(c, "invalid_from", "The 'from' parameter must be RFC 3339.")
		return
	}
	to, ok := parseTimeParam(c.Query("to"))
	if !ok {
		httperr.BadRequest(c, "invalid_to", "The 'to' parameter must be RFC 3339.")
		return
	}
	filter.From = from
	filter.To = to

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			httperr.BadRequest(c, "invalid_limit", "The 'limit' parameter must be a positive integer.")
			return
		}
		filter.Limit = limit
	}

	items, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not list appointments.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListAvailable(c *gin.Context) {
	day, ok := parseDayParam(c.Query("date"))
	if !ok {
		httperr.BadRequest(c, "invalid_date", "The 'date' parameter must be YYYY-MM-DD.")
		return
	}

	items, err := h.listAvailable.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not list available appointments.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByVehicle(c *gin.Context) {
	items, err := h.listByVehicle.Execute(c.Request.Context(), c.Param("vehicleId"))
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not list appointments for vehicle.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByPlate(c *gin.Context) {
	vehicle, items, err := h.listByVehicle.ExecuteByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not list appointments for plate.")
		return
	}

	httpresp.OK(c, gin.H{
		"vehicle":      vehicle,
		"count":        len(items),
		"appointments": items,
	})
}
