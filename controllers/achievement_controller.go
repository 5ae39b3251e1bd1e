package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/desafiofire/api/progression"
	"github.com/desafiofire/api/utils"
)

// AchievementController evaluates the static badge catalog against a member's counters.
type AchievementController struct {
	db *gorm.DB
}

// NewAchievementController creates an AchievementController.
func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{db: db}
}

// GetAchievements returns every badge with its unlock state plus the next
// locked badge in catalog order.
func (a *AchievementController) GetAchievements(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	days, err := loadDays(a.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load days")
		return
	}
	done, err := loadCompletedSet(a.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load progress")
		return
	}

	view := progression.BuildView(days, done)
	badges, next := progression.EvaluateBadges(view.CompletedTasks, view.CompletedDays)

	utils.Success(ctx, gin.H{
		"badges":          badges,
		"next_badge":      next,
		"tasks_completed": view.CompletedTasks,
		"days_completed":  view.CompletedDays,
	})
}
