package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	insdomain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httpresp"
	"github.com/VTVServicesAR/inspection-scheduler/internal/middleware"
	"github.com/VTVServicesAR/inspection-scheduler/internal/usecase/inspection"
)

type InspectionHandler struct {
	create        *inspection.CreateInspection
	update        *inspection.UpdateInspection
	get           *inspection.GetInspection
	list          *inspection.ListInspections
	listByVehicle *inspection.ListInspectionsByVehicle
}

func NewInspectionHandler(
	create *inspection.CreateInspection,
	update *inspection.UpdateInspection,
	get *inspection.GetInspection,
	list *inspection.ListInspections,
	listByVehicle *inspection.ListInspectionsByVehicle,
) *InspectionHandler {
	return &InspectionHandler{
		create:        create,
		update:        update,
		get:           get,
		list:          list,
		listByVehicle: listByVehicle,
	}
}

// --------- Requests ---------

type CreateInspectionRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`

	// TechnicianID lets an admin record on a technician's behalf; when
	// omitted the authenticated caller is the technician.
	TechnicianID string `json:"technician_id"`

	Scores       []int    `json:"scores" binding:"required"`
	ScoreNotes   []string `json:"score_notes"`
	GeneralNotes string   `json:"general_notes"`
}

type UpdateInspectionRequest struct {
	Scores       []int    `json:"scores"`
	ScoreNotes   []string `json:"score_notes"`
	GeneralNotes *string  `json:"general_notes"`
}

type EvaluateScoresRequest struct {
	Scores []int `json:"scores" binding:"required"`
}

// --------- Handlers ---------

func (h *InspectionHandler) Create(c *gin.Context) {
	var req CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	technicianID := req.TechnicianID
	if technicianID == "" {
		technicianID = c.GetString(middleware.ContextUserID)
	}

	insp, err := h.create.Execute(c.Request.Context(), inspection.CreateInspectionInput{
		AppointmentID: req.AppointmentID,
		TechnicianID:  technicianID,
		Scores:        req.Scores,
		ScoreNotes:    req.ScoreNotes,
		GeneralNotes:  req.GeneralNotes,
	})

	var completion *inspection.CompletionError
	if errors.As(err, &completion) {
		// The inspection exists; only the appointment transition failed.
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Inspection recorded successfully.",
			"warning": "appointment_not_completed",
			"data":    insp,
		})
		return
	}
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not record inspection.")
		return
	}

	message := "Inspection recorded successfully."
	if insp.Result == string(insdomain.ResultRecheck) {
		message += " The vehicle requires a recheck."
	}

	httpresp.Created(c, message, insp)
}

func (h *InspectionHandler) Update(c *gin.Context) {
	var req UpdateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	insp, err := h.update.Execute(c.Request.Context(), c.Param("id"), inspection.UpdateInspectionInput{
		Scores:       req.Scores,
		ScoreNotes:   req.ScoreNotes,
		GeneralNotes: req.GeneralNotes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not update inspection.")
		return
	}

	httpresp.OKMessage(c, "Inspection updated successfully.", insp)
}

func (h *InspectionHandler) Get(c *gin.Context) {
	insp, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not load inspection.")
		return
	}

	httpresp.OK(c, insp)
}

func (h *InspectionHandler) List(c *gin.Context) {
	filter := insdomain.ListFilter{
		TechnicianID: c.Query("technician_id"),
		Result:       insdomain.Result(c.Query("result")),
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
		httperr.WriteBusiness(c, err, "Could not list inspections.")
		return
	}

	httpresp.List(c, items)
}

func (h *InspectionHandler) ListByVehicle(c *gin.Context) {
	items, err := h.listByVehicle.Execute(c.Request.Context(), c.Param("vehicleId"))
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not list inspections for vehicle.")
		return
	}

	httpresp.List(c, items)
}

// Evaluate runs the scoring rules without persisting anything. Useful for
// previewing a verdict while the checklist is still being filled in.
func (h *InspectionHandler) Evaluate(c *gin.Context) {
	var req EvaluateScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	total, err := insdomain.ComputeTotal(req.Scores)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not evaluate scores.")
		return
	}

	result, err := insdomain.Classify(req.Scores)
	if err != nil {
		httperr.WriteBusiness(c, err, "Could not evaluate scores.")
		return
	}

	httpresp.OK(c, gin.H{
		"total_score":  total,
		"result":       result,
		"observations": insdomain.GenerateNotes(req.Scores, result),
	})
}
