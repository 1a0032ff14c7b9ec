package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPetServices01/petshop-manager/internal/audit"
	"github.com/VidaPetServices01/petshop-manager/internal/cache"
	"github.com/VidaPetServices01/petshop-manager/internal/config"
	"github.com/VidaPetServices01/petshop-manager/internal/handlers"
	infraRepo "github.com/VidaPetServices01/petshop-manager/internal/infra/repository"
	"github.com/VidaPetServices01/petshop-manager/internal/middleware"
	"github.com/VidaPetServices01/petshop-manager/internal/storage"
	ucAppointment "github.com/VidaPetServices01/petshop-manager/internal/usecase/appointment"
	ucClient "github.com/VidaPetServices01/petshop-manager/internal/usecase/client"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	statsCache *cache.StatsCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	photoStorage := storage.NewPhotoStorage(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createClientUC := ucClient.NewCreateClient(clientRepo, auditDispatcher)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditDispatcher)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)
	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	clientHandler := handlers.NewClientHandler(
		db, cfg, createClientUC, updateClientUC, clientRepo, statsCache, auditDispatcher,
	)
	petHandler := handlers.NewPetHandler(db, statsCache, photoStorage, clientRepo, auditDispatcher)
	serviceTypeHandler := handlers.NewServiceTypeHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		db, cfg, createAppointmentUC, updateStatusUC, statsCache, auditDispatcher,
	)
	cashHandler := handlers.NewCashHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	adminOnly := middleware.RequireRoles(middleware.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// AUTH (autenticado)
			// ------------------------------
			secured.GET("/auth/verify", authHandler.Verify)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			authAdmin := secured.Group("/auth")
			authAdmin.Use(adminOnly)
			{
				authAdmin.POST("/register", authHandler.Register)
				authAdmin.GET("/users", authHandler.ListUsers)
				authAdmin.PUT("/users/:id", authHandler.UpdateUser)
				authAdmin.DELETE("/users/:id", authHandler.DeleteUser)
				authAdmin.POST("/users/:id/reset-password", authHandler.ResetPassword)
				authAdmin.PATCH("/users/:id/status", authHandler.ToggleStatus)
			}

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/search", clientHandler.Search)
			secured.GET("/clients/stats", clientHandler.Stats)
			secured.POST("/clients/check-duplicate-field", clientHandler.CheckDuplicateField)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", adminOnly, clientHandler.Delete)

			// ------------------------------
			// PETS
			// ------------------------------
			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.GET("/pets/search", petHandler.Search)
			secured.GET("/pets/species", petHandler.Species)
			secured.GET("/pets/breeds", petHandler.Breeds)
			secured.GET("/pets/stats", petHandler.Stats)
			secured.GET("/pets/check-duplicate-name", petHandler.CheckDuplicateName)
			secured.GET("/pets/client/:clientId", petHandler.ListByClient)
			secured.GET("/pets/:id", petHandler.Get)
			secured.PUT("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", adminOnly, petHandler.Delete)
			secured.POST("/pets/:id/photo", petHandler.UploadPhoto)

			// ------------------------------
			// SERVICE TYPES
			// ------------------------------
			secured.GET("/service-types", serviceTypeHandler.List)
			secured.POST("/service-types", adminOnly, serviceTypeHandler.Create)
			secured.GET("/service-types/search", serviceTypeHandler.Search)
			secured.GET("/service-types/name/:name", serviceTypeHandler.GetByName)
			secured.GET("/service-types/:id", serviceTypeHandler.Get)
			secured.PUT("/service-types/:id", adminOnly, serviceTypeHandler.Update)
			secured.DELETE("/service-types/:id", adminOnly, serviceTypeHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/search", appointmentHandler.Search)
			secured.GET("/appointments/stats", appointmentHandler.Stats)
			secured.GET("/appointments/date/:date", appointmentHandler.ListByDate)
			secured.GET("/appointments/client/:clientId", appointmentHandler.ListByClient)
			secured.GET("/appointments/pet/:petId", appointmentHandler.ListByPet)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", adminOnly, appointmentHandler.Delete)

			// ------------------------------
			// CASH REGISTER
			// ------------------------------
			secured.GET("/cash-register", cashHandler.List)
			secured.POST("/cash-register", cashHandler.Create)
			secured.GET("/cash-register/summary", cashHandler.Summary)

			// ------------------------------
			// AUDIT
			// ------------------------------
			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
