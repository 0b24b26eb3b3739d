package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princessangelsalon/salon-api/internal/config"
	dbpkg "github.com/princessangelsalon/salon-api/internal/db"
	"github.com/princessangelsalon/salon-api/internal/logger"
	"github.com/princessangelsalon/salon-api/internal/notify"
	"github.com/princessangelsalon/salon-api/internal/reminder"
	"github.com/princessangelsalon/salon-api/internal/routes"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	timezone.Set(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	reminders := reminder.NewScheduler(db, notify.NewTwilioSender(cfg), cfg.ReminderSpec)
	if err := reminders.Start(); err != nil {
		logger.Fatalf("failed to start reminder scheduler: %v", err)
	}
	defer reminders.Stop()

	logger.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
