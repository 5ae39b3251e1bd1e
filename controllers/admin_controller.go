package controllers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/desafiofire/api/models"
	"github.com/desafiofire/api/progression"
	"github.com/desafiofire/api/utils"
)

// AdminController serves the panel backend: member management, challenge
// content editing and the dashboard numbers.
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates an AdminController.
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// --- Member management ---

// ListUsers returns a paginated member list, optionally filtered by a search
// term matched against name and email.
func (a *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := a.db.Model(&models.User{})
	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", like, like)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to count users")
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to load users")
		return
	}

	utils.Success(ctx, gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetUser returns one member with progress totals, completion percentage,
// last activity and their notes.
func (a *AdminController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid user id")
		return
	}

	var user models.User
	if err := a.db.First(&user, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40460, "user not found")
		return
	}

	days, err := loadDays(a.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load days")
		return
	}
	completed, err := loadCompletedSet(a.db, user.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load progress")
		return
	}
	view := progression.BuildView(days, completed)

	var lastCompletion models.TaskCompletion
	var lastActivity *time.Time
	if err := a.db.Where("user_id = ?", user.ID).
		Order("completed_at DESC").First(&lastCompletion).Error; err == nil {
		lastActivity = &lastCompletion.CompletedAt
	}

	var notes []models.UserNote
	a.db.Where("user_id = ?", user.ID).Order("day_id").Find(&notes)

	completedIDs := make([]uint, 0, len(completed))
	for id := range completed {
		completedIDs = append(completedIDs, id)
	}

	utils.Success(ctx, gin.H{
		"user":               user,
		"days_completed":     view.CompletedDays,
		"tasks_completed":    len(completed),
		"overall_percent":    view.OverallPercent,
		"last_activity":      lastActivity,
		"completed_task_ids": completedIDs,
		"notes":              notes,
	})
}

type adminCreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

// CreateUser provisions an account from the panel. When no password is given
// a random one is generated and returned once in the response.
func (a *AdminController) CreateUser(ctx *gin.Context) {
	var req adminCreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleMember
	}
	status := req.Status
	if status != models.StatusPending && status != models.StatusBlocked {
		status = models.StatusActive
	}

	password := req.Password
	generated := false
	if password == "" {
		var err error
		password, err = utils.GenerateRandomPassword(16)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to generate password")
			return
		}
		generated = true
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to hash password")
		return
	}

	user := models.User{
		Email:              req.Email,
		FullName:           req.FullName,
		Phone:              req.Phone,
		PasswordHash:       hash,
		Role:               role,
		Status:             status,
		MustChangePassword: generated,
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Error(ctx, http.StatusConflict, 40960, "email already registered")
		return
	}

	data := gin.H{"user": user}
	if generated {
		data["temporary_password"] = password
	}
	utils.Success(ctx, data)
}

type adminUpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

// UpdateUser patches profile fields, role, status or password.
func (a *AdminController) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid user id")
		return
	}

	var user models.User
	if err := a.db.First(&user, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40460, "user not found")
		return
	}

	var req adminUpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Role != nil {
		if *req.Role != models.RoleMember && *req.Role != models.RoleAdmin {
			utils.Error(ctx, http.StatusBadRequest, 40061, "invalid role")
			return
		}
		updates["role"] = *req.Role
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			utils.Error(ctx, http.StatusBadRequest, 40062, "invalid status")
			return
		}
		updates["status"] = *req.Status
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to hash password")
			return
		}
		updates["password_hash"] = hash
		updates["must_change_password"] = true
	}

	if len(updates) == 0 {
		utils.Success(ctx, gin.H{"user": user})
		return
	}
	if err := a.db.Model(&user).Updates(updates).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to update user")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// UpdateUserStatus is the status shortcut used by the member list.
func (a *AdminController) UpdateUserStatus(ctx *gin.Context) {
	a.updateSingleField(ctx, "status", func(v string) bool { return validStatus(v) })
}

// UpdateUserRole is the role shortcut used by the member list.
func (a *AdminController) UpdateUserRole(ctx *gin.Context) {
	a.updateSingleField(ctx, "role", func(v string) bool {
		return v == models.RoleMember || v == models.RoleAdmin
	})
}

func (a *AdminController) updateSingleField(ctx *gin.Context, field string, valid func(string) bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid user id")
		return
	}

	var req map[string]string
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	value, ok := req[field]
	if !ok || !valid(value) {
		utils.Error(ctx, http.StatusBadRequest, 40063, "invalid "+field)
		return
	}

	var user models.User
	if err := a.db.First(&user, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40460, "user not found")
		return
	}
	if err := a.db.Model(&user).Update(field, value).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to update user")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// DeleteUser removes an account and its progress rows. Only the panel can
// delete; inbound payment events never do.
func (a *AdminController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid user id")
		return
	}

	var user models.User
	if err := a.db.First(&user, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40460, "user not found")
		return
	}

	err = a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.TaskCompletion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserNote{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&user).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50065, "failed to delete user")
		return
	}
	utils.Sugar.Infof("admin deleted account %d (%s)", user.ID, user.Email)
	utils.SuccessMessage(ctx, "user deleted")
}

func validStatus(s string) bool {
	return s == models.StatusPending || s == models.StatusActive || s == models.StatusBlocked
}

// --- Dashboard ---

// GetStats returns the dashboard headline numbers.
func (a *AdminController) GetStats(ctx *gin.Context) {
	var total, active, blocked int64
	a.db.Model(&models.User{}).Where("role = ?", models.RoleMember).Count(&total)
	a.db.Model(&models.User{}).Where("role = ? AND status = ?", models.RoleMember, models.StatusActive).Count(&active)
	a.db.Model(&models.User{}).Where("role = ? AND status = ?", models.RoleMember, models.StatusBlocked).Count(&blocked)

	avgCompletion := a.averageCompletion()

	now := time.Now().In(time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var dailyViews int64
	a.db.Model(&models.PageView{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count), 0)").
		Scan(&dailyViews)

	utils.Success(ctx, gin.H{
		"total_members":   total,
		"active":          active,
		"blocked":         blocked,
		"avg_completion":  avgCompletion,
		"daily_pageviews": dailyViews,
	})
}

// averageCompletion computes the mean overall completion percentage across
// active members. Task counts come out of two grouped queries rather than one
// view per user.
func (a *AdminController) averageCompletion() int {
	var totalTasks int64
	a.db.Model(&models.ChallengeTask{}).Count(&totalTasks)
	if totalTasks == 0 {
		return 0
	}

	var memberIDs []uint
	a.db.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleMember, models.StatusActive).
		Pluck("id", &memberIDs)
	if len(memberIDs) == 0 {
		return 0
	}

	type countRow struct {
		UserID uint
		N      int64
	}
	var rows []countRow
	a.db.Model(&models.TaskCompletion{}).
		Select("user_id, COUNT(*) as n").
		Where("user_id IN ?", memberIDs).
		Group("user_id").
		Scan(&rows)

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.N
	}

	var sum float64
	for _, id := range memberIDs {
		sum += float64(counts[id]) / float64(totalTasks) * 100
	}
	return int(math.Round(sum / float64(len(memberIDs))))
}

// GetActivity returns the ten most recent task completions with member and
// task names for the dashboard feed.
func (a *AdminController) GetActivity(ctx *gin.Context) {
	type activityRow struct {
		UserID      uint      `json:"user_id"`
		UserName    string    `json:"user_name"`
		TaskID      uint      `json:"task_id"`
		TaskTitle   string    `json:"task_title"`
		DayNumber   int       `json:"day_number"`
		CompletedAt time.Time `json:"completed_at"`
	}

	var rows []activityRow
	err := a.db.Model(&models.TaskCompletion{}).
		Select(`task_completions.user_id, users.full_name AS user_name,
			task_completions.task_id, challenge_tasks.title AS task_title,
			challenge_days.day_number, task_completions.completed_at`).
		Joins("JOIN users ON users.id = task_completions.user_id").
		Joins("JOIN challenge_tasks ON challenge_tasks.id = task_completions.task_id").
		Joins("JOIN challenge_days ON challenge_days.id = challenge_tasks.day_id").
		Order("task_completions.completed_at DESC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50066, "failed to load activity")
		return
	}
	utils.Success(ctx, gin.H{"activity": rows})
}

// GetWebhookEvents returns the latest audit rows for delivery debugging.
func (a *AdminController) GetWebhookEvents(ctx *gin.Context) {
	var events []models.WebhookEvent
	if err := a.db.Order("created_at DESC").Limit(10).Find(&events).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50067, "failed to load webhook events")
		return
	}
	utils.Success(ctx, gin.H{"events": events})
}

// --- Content editor ---

type dayRequest struct {
	DayNumber        int    `json:"day_number" binding:"required,min=1"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	MorningMessage   string `json:"morning_message"`
	FireConcept      string `json:"fire_concept"`
	ExpectedResult   string `json:"expected_result"`
	ReflectionPrompt string `json:"reflection_prompt"`
}

func (r *dayRequest) apply(day *models.ChallengeDay) {
	day.DayNumber = r.DayNumber
	day.Title = r.Title
	day.Description = utils.Sanitize(r.Description)
	day.MorningMessage = utils.Sanitize(r.MorningMessage)
	day.FireConcept = utils.Sanitize(r.FireConcept)
	day.ExpectedResult = utils.Sanitize(r.ExpectedResult)
	day.ReflectionPrompt = utils.Sanitize(r.ReflectionPrompt)
}

// CreateDay adds a challenge day.
func (a *AdminController) CreateDay(ctx *gin.Context) {
	var req dayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	var day models.ChallengeDay
	req.apply(&day)
	if err := a.db.Create(&day).Error; err != nil {
		utils.Error(ctx, http.StatusConflict, 40961, "day number already exists")
		return
	}
	utils.Success(ctx, gin.H{"day": day})
}

// UpdateDay replaces a day's content fields.
func (a *AdminController) UpdateDay(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40064, "invalid day id")
		return
	}
	var day models.ChallengeDay
	if err := a.db.First(&day, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}
	var req dayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	req.apply(&day)
	if err := a.db.Save(&day).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50068, "failed to update day")
		return
	}
	// Library items carry the day title, so cached copies are stale now.
	utils.InvalidateByPrefix(libraryCachePrefix)
	utils.Success(ctx, gin.H{"day": day})
}

// DeleteDay removes a day together with its tasks, resources and the
// completions pointing at those tasks.
func (a *AdminController) DeleteDay(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40064, "invalid day id")
		return
	}
	var day models.ChallengeDay
	if err := a.db.First(&day, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}
	err = a.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint
		tx.Model(&models.ChallengeTask{}).Where("day_id = ?", day.ID).Pluck("id", &taskIDs)
		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.TaskCompletion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("day_id = ?", day.ID).Delete(&models.ChallengeTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("day_id = ?", day.ID).Delete(&models.ChallengeResource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("day_id = ?", day.ID).Delete(&models.UserNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&day).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50069, "failed to delete day")
		return
	}
	utils.InvalidateByPrefix(libraryCachePrefix)
	utils.SuccessMessage(ctx, "day deleted")
}

type taskRequest struct {
	DayID       uint   `json:"day_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// CreateTask adds a checklist item to a day.
func (a *AdminController) CreateTask(ctx *gin.Context) {
	var req taskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	var day models.ChallengeDay
	if err := a.db.First(&day, req.DayID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}
	task := models.ChallengeTask{
		DayID:       req.DayID,
		Title:       req.Title,
		Description: utils.Sanitize(req.Description),
		OrderIndex:  req.OrderIndex,
	}
	if err := a.db.Create(&task).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to create task")
		return
	}
	utils.Success(ctx, gin.H{"task": task})
}

// UpdateTask edits a checklist item.
func (a *AdminController) UpdateTask(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40065, "invalid task id")
		return
	}
	var task models.ChallengeTask
	if err := a.db.First(&task, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40441, "task not found")
		return
	}
	var req taskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	task.DayID = req.DayID
	task.Title = req.Title
	task.Description = utils.Sanitize(req.Description)
	task.OrderIndex = req.OrderIndex
	if err := a.db.Save(&task).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to update task")
		return
	}
	utils.Success(ctx, gin.H{"task": task})
}

// DeleteTask removes a checklist item and its completions.
func (a *AdminController) DeleteTask(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40065, "invalid task id")
		return
	}
	var task models.ChallengeTask
	if err := a.db.First(&task, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40441, "task not found")
		return
	}
	err = a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskCompletion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to delete task")
		return
	}
	utils.SuccessMessage(ctx, "task deleted")
}

type resourceRequest struct {
	DayID uint   `json:"day_id" binding:"required"`
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
	Type  string `json:"type"`
}

func validResourceType(t string) bool {
	switch t {
	case models.ResourcePDF, models.ResourceSheet, models.ResourceAudio,
		models.ResourceVideo, models.ResourceLink, models.ResourceCommunity:
		return true
	}
	return false
}

// CreateResource attaches support material to a day.
func (a *AdminController) CreateResource(ctx *gin.Context) {
	var req resourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	if req.Type == "" {
		req.Type = models.ResourceLink
	}
	if !validResourceType(req.Type) {
		utils.Error(ctx, http.StatusBadRequest, 40066, "invalid resource type")
		return
	}
	var day models.ChallengeDay
	if err := a.db.First(&day, req.DayID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "day not found")
		return
	}
	resource := models.ChallengeResource{
		DayID: req.DayID,
		Title: req.Title,
		URL:   req.URL,
		Type:  req.Type,
	}
	if err := a.db.Create(&resource).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50073, "failed to create resource")
		return
	}
	utils.CacheDelete(libraryCacheKey)
	utils.Success(ctx, gin.H{"resource": resource})
}

// UpdateResource edits support material.
func (a *AdminController) UpdateResource(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40067, "invalid resource id")
		return
	}
	var resource models.ChallengeResource
	if err := a.db.First(&resource, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40442, "resource not found")
		return
	}
	var req resourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}
	if req.Type == "" {
		req.Type = models.ResourceLink
	}
	if !validResourceType(req.Type) {
		utils.Error(ctx, http.StatusBadRequest, 40066, "invalid resource type")
		return
	}
	resource.DayID = req.DayID
	resource.Title = req.Title
	resource.URL = req.URL
	resource.Type = req.Type
	if err := a.db.Save(&resource).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50074, "failed to update resource")
		return
	}
	utils.CacheDelete(libraryCacheKey)
	utils.Success(ctx, gin.H{"resource": resource})
}

// DeleteResource removes support material.
func (a *AdminController) DeleteResource(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40067, "invalid resource id")
		return
	}
	var resource models.ChallengeResource
	if err := a.db.First(&resource, uint(id)).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40442, "resource not found")
		return
	}
	if err := a.db.Delete(&resource).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50075, "failed to delete resource")
		return
	}
	utils.CacheDelete(libraryCacheKey)
	utils.SuccessMessage(ctx, "resource deleted")
}
