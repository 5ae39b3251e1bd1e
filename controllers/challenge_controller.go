package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/desafiofire/api/models"
	"github.com/desafiofire/api/progression"
	"github.com/desafiofire/api/utils"
)

const (
	libraryCachePrefix = "cache:library:"
	libraryCacheKey    = libraryCachePrefix + "resources"
)

// ChallengeController serves the day list, individual days, task completion
// toggles and per-day notes for the authenticated member.
type ChallengeController struct {
	db *gorm.DB
}

// NewChallengeController creates a ChallengeController.
func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{db: db}
}

// loadDays returns all days ordered by day_number with tasks in display order.
func loadDays(db *gorm.DB) ([]models.ChallengeDay, error) {
	var days []models.ChallengeDay
	err := db.
		Preload("Tasks", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index ASC, id ASC") }).
		Preload("Resources").
		Order("day_number ASC").
		Find(&days).Error
	return days, err
}

// loadCompletedSet returns the set of task ids the user has completed.
func loadCompletedSet(db *gorm.DB, userID uint) (progression.CompletedSet, error) {
	var taskIDs []uint
	if err := db.Model(&models.TaskCompletion{}).Where("user_id = ?", userID).Pluck("task_id", &taskIDs).Error; err != nil {
		return nil, err
	}
	return progression.NewCompletedSet(taskIDs), nil
}

// ListDays returns every day with the member's lock/completion state and the
// aggregate progression view. An empty course yields an empty list, not an error.
func (c *ChallengeController) ListDays(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	days, err := loadDays(c.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load days")
		return
	}

	done, err := loadCompletedSet(c.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load progress")
		return
	}

	view := progression.BuildView(days, done)

	type dayItem struct {
		models.ChallengeDay
		State progression.DayState `json:"state"`
	}
	items := make([]dayItem, len(days))
	for i := range days {
		items[i] = dayItem{ChallengeDay: days[i], State: view.Days[i]}
	}

	utils.Success(ctx, gin.H{
		"days": items,
		"progression": gin.H{
			"active_day_number": view.ActiveDayNumber,
			"has_active_day":    view.HasActiveDay,
			"completed_days":    view.CompletedDays,
			"completed_tasks":   view.CompletedTasks,
			"overall_percent":   view.OverallPercent,
		},
	})
}

// GetDay returns one day by its number together with lock state, the member's
// per-day percent and clamped prev/next day numbers for navigation.
func (c *ChallengeController) GetDay(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil || number < 1 {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid day number")
		return
	}

	days, err := loadDays(c.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load days")
		return
	}

	idx := -1
	for i := range days {
		if days[i].DayNumber == number {
			idx = i
			break
		}
	}
	if idx == -1 {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}

	done, err := loadCompletedSet(c.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load progress")
		return
	}

	unlocked := progression.Unlocked(days, done)

	// Navigation clamps to neighbours that actually exist in the list.
	var prevNumber, nextNumber *int
	if idx > 0 {
		prevNumber = &days[idx-1].DayNumber
	}
	if idx < len(days)-1 {
		nextNumber = &days[idx+1].DayNumber
	}

	completedTaskIDs := make([]uint, 0, len(days[idx].Tasks))
	for _, task := range days[idx].Tasks {
		if _, ok := done[task.ID]; ok {
			completedTaskIDs = append(completedTaskIDs, task.ID)
		}
	}

	utils.Success(ctx, gin.H{
		"day":                days[idx],
		"locked":             !unlocked[idx],
		"complete":           progression.IsDayComplete(days[idx], done),
		"percent":            progression.DayPercent(days[idx], done),
		"completed_task_ids": completedTaskIDs,
		"prev_day_number":    prevNumber,
		"next_day_number":    nextNumber,
	})
}

// CurrentDay resolves the day the member should land on. With no content the
// response says so instead of failing, and the client routes to a default view.
func (c *ChallengeController) CurrentDay(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	days, err := loadDays(c.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load days")
		return
	}
	done, err := loadCompletedSet(c.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load progress")
		return
	}

	number, hasActive := progression.TargetDayNumber(days, done)
	utils.Success(ctx, gin.H{
		"active_day_number": number,
		"has_active_day":    hasActive,
	})
}

// CompleteTask marks a task done for the member. Replays are idempotent: the
// unique (user, task) index plus DoNothing keeps a single completion row.
func (c *ChallengeController) CompleteTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid task id")
		return
	}

	var task models.ChallengeTask
	if err := c.db.First(&task, taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40441, "task not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to load task")
		return
	}

	record := models.TaskCompletion{
		UserID:      userID,
		TaskID:      uint(taskID),
		CompletedAt: time.Now(),
	}
	if err := c.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to record completion")
		return
	}

	utils.SuccessMessage(ctx, "task completed")
}

// UncompleteTask removes a completion record; removing a non-existent record is a no-op.
func (c *ChallengeController) UncompleteTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	taskID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid task id")
		return
	}

	if err := c.db.Where("user_id = ? AND task_id = ?", userID, taskID).Delete(&models.TaskCompletion{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to remove completion")
		return
	}

	utils.SuccessMessage(ctx, "task unmarked")
}

// GetNote returns the member's note for a day, empty when none exists.
func (c *ChallengeController) GetNote(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid day number")
		return
	}

	var day models.ChallengeDay
	if err := c.db.Where("day_number = ?", number).First(&day).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}

	var note models.UserNote
	if err := c.db.Where("user_id = ? AND day_id = ?", userID, day.ID).First(&note).Error; err != nil {
		utils.Success(ctx, gin.H{"content": ""})
		return
	}
	utils.Success(ctx, gin.H{"content": note.Content, "updated_at": note.UpdatedAt})
}

// SaveNote upserts the member's note for a day.
func (c *ChallengeController) SaveNote(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid day number")
		return
	}

	type request struct {
		Content string `json:"content"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	var day models.ChallengeDay
	if err := c.db.Where("day_number = ?", number).First(&day).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}

	note := models.UserNote{
		UserID:    userID,
		DayID:     day.ID,
		Content:   utils.Sanitize(req.Content),
		UpdatedAt: time.Now(),
	}
	err = c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&note).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50045, "failed to save note")
		return
	}

	utils.SuccessMessage(ctx, "note saved")
}

// ListResources returns every resource across days for the library view.
// The result is identical for all members, so the serialized response is cached.
func (c *ChallengeController) ListResources(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(libraryCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	type libraryItem struct {
		models.ChallengeResource
		DayNumber int    `json:"day_number"`
		DayTitle  string `json:"day_title"`
	}
	var items []libraryItem
	err := c.db.Model(&models.ChallengeResource{}).
		Select("challenge_resources.*, challenge_days.day_number AS day_number, challenge_days.title AS day_title").
		Joins("JOIN challenge_days ON challenge_days.id = challenge_resources.day_id").
		Order("challenge_resources.created_at DESC").
		Scan(&items).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50046, "failed to load resources")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: gin.H{"resources": items}}
	utils.CacheSetJSON(libraryCacheKey, wrapper, time.Hour)
	utils.Success(ctx, gin.H{"resources": items})
}
