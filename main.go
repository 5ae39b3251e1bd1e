package main

import (
	"time"

	"github.com/desafiofire/api/config"
	"github.com/desafiofire/api/models"
	"github.com/desafiofire/api/routes"
	"github.com/desafiofire/api/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.ChallengeDay{},
		&models.ChallengeTask{},
		&models.ChallengeResource{},
		&models.TaskCompletion{},
		&models.UserNote{},
		&models.Lead{},
		&models.TrackingEvent{},
		&models.WebhookEvent{},
		&models.PageView{},
	)

	r := routes.SetupRouter(db)

	// Prune old webhook audit rows in the background (best-effort)
	utils.StartWebhookEventPruner(time.Hour)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
