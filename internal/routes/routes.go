package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princessangelsalon/salon-api/internal/audit"
	"github.com/princessangelsalon/salon-api/internal/config"
	"github.com/princessangelsalon/salon-api/internal/cooldown"
	"github.com/princessangelsalon/salon-api/internal/handlers"
	infraRepo "github.com/princessangelsalon/salon-api/internal/infra/repository"
	"github.com/princessangelsalon/salon-api/internal/middleware"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/notify"
	"github.com/princessangelsalon/salon-api/internal/report"
	"github.com/princessangelsalon/salon-api/internal/storage"
	ucAuth "github.com/princessangelsalon/salon-api/internal/usecase/auth"
	ucBooking "github.com/princessangelsalon/salon-api/internal/usecase/booking"
)

const resendWindow = 60 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	authRepo := infraRepo.NewAuthGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	notifier := notify.NewNotifier(notify.NewMailer(cfg))
	resendCooldown := cooldown.NewRedisCooldown(cfg, resendWindow)

	imageStore := storage.NewS3Store(cfg)
	reportGen := report.NewGenerator(db)

	// ======================================================
	// USE CASES
	// ======================================================
	tokens := ucAuth.NewTokenIssuer(cfg.JWTSecret)
	otpIssuer := ucAuth.NewOtpIssuer(authRepo, notifier)

	registerUC := ucAuth.NewRegister(authRepo, auditDispatcher)
	loginUC := ucAuth.NewLogin(authRepo, otpIssuer, tokens, auditDispatcher)
	verifyUC := ucAuth.NewVerifyOtp(authRepo, tokens, auditDispatcher)
	resendUC := ucAuth.NewResendOtp(authRepo, otpIssuer, resendCooldown)
	forgotUC := ucAuth.NewForgotPassword(authRepo, otpIssuer)
	updatePasswordUC := ucAuth.NewUpdatePassword(authRepo, tokens, auditDispatcher)

	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	rescheduleUC := ucBooking.NewRescheduleAppointment(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, verifyUC, resendUC, forgotUC, updatePasswordUC, authRepo,
	)
	appointmentHandler := handlers.NewAppointmentHandler(db, createAppointmentUC, rescheduleUC)
	userHandler := handlers.NewUserHandler(db)
	stylistHandler := handlers.NewStylistHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	feedbackHandler := handlers.NewFeedbackHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	superadminHandler := handlers.NewSuperadminHandler(db)
	reportHandler := handlers.NewReportHandler(reportGen)
	uploadHandler := handlers.NewUploadHandler(imageStore)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/verify-otp", authHandler.VerifyOtp)
		api.POST("/resend-otp", authHandler.ResendOtp)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/update-password", authHandler.UpdatePassword)
		api.GET("/security-status", authHandler.SecurityStatus)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/stylists", stylistHandler.List)
		api.GET("/services", serviceHandler.PublicList)

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		api.POST("/book-appointment", appointmentHandler.Book)
		api.PATCH("/reschedule-appointment/:id", appointmentHandler.Reschedule)
		api.PATCH("/cancel-appointment/:id", appointmentHandler.Cancel)
		api.GET("/user-appointments/:userId", appointmentHandler.ListForUser)
		api.GET("/appointment/:id", appointmentHandler.GetByID)

		api.GET("/user/:id", userHandler.GetByID)
		api.PATCH("/update-profile/:id", userHandler.UpdateProfile)
		api.PATCH("/change-password/:id", userHandler.ChangePassword)

		api.POST("/submit-feedback", feedbackHandler.Submit)

		api.GET("/notifications/:userId", notificationHandler.ListForUser)
		api.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

		// ------------------------------
		// ADMIN (authenticated)
		// ------------------------------
		{
			admin := api.Group("/admin")
			admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/appointments", appointmentHandler.AdminList)
				admin.GET("/appointments/today/approved/count", appointmentHandler.TodayApprovedCount)
				admin.PATCH("/update-appointment-status/:id", appointmentHandler.UpdateStatus)
				admin.DELETE("/complete-appointment/:id", appointmentHandler.Complete)

				admin.GET("/customers", userHandler.AdminListCustomers)
				admin.DELETE("/delete-user/:id", userHandler.AdminDeleteUser)

				admin.GET("/stylists", stylistHandler.List)
				admin.POST("/add-stylist", stylistHandler.Create)
				admin.PATCH("/update-stylist/:id", stylistHandler.Update)
				admin.DELETE("/delete-stylist/:id", stylistHandler.Delete)
				admin.POST("/stylist-image", uploadHandler.Image("stylists"))

				admin.GET("/availability", stylistHandler.ListAvailability)
				admin.POST("/add-availability", stylistHandler.CreateAvailability)
				admin.PATCH("/update-availability/:id", stylistHandler.UpdateAvailability)
				admin.DELETE("/delete-availability/:id", stylistHandler.DeleteAvailability)

				admin.GET("/services", serviceHandler.AdminList)
				admin.POST("/add-service", serviceHandler.Create)
				admin.PATCH("/update-service/:id", serviceHandler.Update)
				admin.DELETE("/delete-service/:id", serviceHandler.Delete)
				admin.POST("/service-image", uploadHandler.Image("services"))

				admin.GET("/feedback", feedbackHandler.AdminList)
				admin.DELETE("/feedback/:id", feedbackHandler.Delete)
				admin.GET("/total-feedback", feedbackHandler.Count)

				admin.POST("/send-notification", notificationHandler.Send)
				admin.POST("/notifications/send-all", notificationHandler.Broadcast)
			}
		}
	}

	// ======================================================
	// SUPERADMIN
	// ======================================================
	superadmin := r.Group("/superadmin")
	superadmin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleSuperadmin))
	{
		superadmin.GET("/overview", superadminHandler.Overview)

		superadmin.GET("/admins", superadminHandler.ListAdmins)
		superadmin.POST("/admins", superadminHandler.CreateAdmin)
		superadmin.PUT("/admins/:id", superadminHandler.UpdateAdmin)
		superadmin.DELETE("/admins/:id", superadminHandler.DeleteAdmin)

		superadmin.GET("/security", superadminHandler.ListSecuritySettings)
		superadmin.PUT("/security/:id", superadminHandler.UpdateSecuritySetting)

		superadmin.GET("/config", superadminHandler.GetConfig)
		superadmin.PUT("/config/:id", superadminHandler.UpdateConfig)

		superadmin.GET("/reports/:type", reportHandler.Export)
	}
}
