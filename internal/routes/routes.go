package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VTVServicesAR/inspection-scheduler/internal/audit"
	"github.com/VTVServicesAR/inspection-scheduler/internal/cache"
	"github.com/VTVServicesAR/inspection-scheduler/internal/config"
	"github.com/VTVServicesAR/inspection-scheduler/internal/handlers"
	infraRepo "github.com/VTVServicesAR/inspection-scheduler/internal/infra/repository"
	"github.com/VTVServicesAR/inspection-scheduler/internal/middleware"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	ucAppointment "github.com/VTVServicesAR/inspection-scheduler/internal/usecase/appointment"
	ucInspection "github.com/VTVServicesAR/inspection-scheduler/internal/usecase/inspection"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	inspectionRepo := infraRepo.NewInspectionGormRepository(db)

	availabilityCache := cache.New(cfg.RedisAddr, 30*time.Second)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	requestAppointmentUC := ucAppointment.NewRequestAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listAvailableUC := ucAppointment.NewListAvailableAppointments(
		appointmentRepo,
		availabilityCache,
	)
	listByVehicleUC := ucAppointment.NewListAppointmentsByVehicle(appointmentRepo)

	// ======================================================
	// USE CASES — INSPECTIONS
	// ======================================================
	createInspectionUC := ucInspection.NewCreateInspection(
		inspectionRepo,
		completeAppointmentUC,
		auditDispatcher,
	)

	updateInspectionUC := ucInspection.NewUpdateInspection(
		inspectionRepo,
		auditDispatcher,
	)

	getInspectionUC := ucInspection.NewGetInspection(inspectionRepo)
	listInspectionsUC := ucInspection.NewListInspections(inspectionRepo)
	listInspectionsByVehicleUC := ucInspection.NewListInspectionsByVehicle(inspectionRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		requestAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		listAvailableUC,
		listByVehicleUC,
	)

	inspectionHandler := handlers.NewInspectionHandler(
		createInspectionUC,
		updateInspectionUC,
		getInspectionUC,
		listInspectionsUC,
		listInspectionsByVehicleUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// USERS
			// ------------------------------
			secured.POST("/users",
				middleware.RequireRole(models.RoleAdmin),
				userHandler.Create,
			)
			secured.GET("/users", userHandler.List)
			secured.GET("/users/technicians", userHandler.ListTechnicians)
			secured.GET("/users/owners", userHandler.ListOwners)
			secured.GET("/users/:id", userHandler.Get)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id",
				middleware.RequireRole(models.RoleAdmin),
				userHandler.Delete,
			)

			// ------------------------------
			// VEHICLES
			// ------------------------------
			secured.POST("/vehicles", vehicleHandler.Create)
			secured.GET("/vehicles", vehicleHandler.List)
			secured.GET("/vehicles/plate/:plate", vehicleHandler.GetByPlate)
			secured.GET("/vehicles/owner/:ownerId", vehicleHandler.ListByOwner)
			secured.GET("/vehicles/:id", vehicleHandler.Get)
			secured.PATCH("/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/vehicles/:id",
				middleware.RequireRole(models.RoleAdmin),
				vehicleHandler.Delete,
			)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Request)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/available", appointmentHandler.ListAvailable)
			secured.GET("/appointments/vehicle/:vehicleId", appointmentHandler.ListByVehicle)
			secured.GET("/appointments/plate/:plate", appointmentHandler.ListByPlate)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			// ------------------------------
			// INSPECTIONS
			// ------------------------------
			secured.POST("/inspections",
				middleware.RequireRole(models.RoleTechnician, models.RoleAdmin),
				inspectionHandler.Create,
			)
			secured.POST("/inspections/evaluate", inspectionHandler.Evaluate)
			secured.GET("/inspections", inspectionHandler.List)
			secured.GET("/inspections/vehicle/:vehicleId", inspectionHandler.ListByVehicle)
			secured.GET("/inspections/:id", inspectionHandler.Get)
			secured.PATCH("/inspections/:id",
				middleware.RequireRole(models.RoleTechnician, models.RoleAdmin),
				inspectionHandler.Update,
			)

			secured.GET("/audit-logs",
				middleware.RequireRole(models.RoleAdmin),
				auditLogsHandler.List,
			)
		}
	}
}
