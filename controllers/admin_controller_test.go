package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/desafiofire/api/models"
	"github.com/desafiofire/api/utils"
)

func createAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	admin := createMember(t, db, "admin@example.com", "admin-secret")
	require.NoError(t, db.Model(admin).Update("role", models.RoleAdmin).Error)
	admin.Role = models.RoleAdmin
	return admin
}

func newAdminRouter(db *gorm.DB, admin *models.User) *gin.Engine {
	r := gin.New()
	a := NewAdminController(db)
	g := r.Group("/admin", authAs(admin))
	g.GET("/users", a.ListUsers)
	g.GET("/users/:id", a.GetUser)
	g.POST("/users", a.CreateUser)
	g.PATCH("/users/:id", a.UpdateUser)
	g.PATCH("/users/:id/status", a.UpdateUserStatus)
	g.PATCH("/users/:id/role", a.UpdateUserRole)
	g.DELETE("/users/:id", a.DeleteUser)
	g.GET("/stats", a.GetStats)
	g.GET("/activity", a.GetActivity)
	g.GET("/webhook-events", a.GetWebhookEvents)
	g.POST("/days", a.CreateDay)
	g.PUT("/days/:id", a.UpdateDay)
	g.DELETE("/days/:id", a.DeleteDay)
	g.POST("/tasks", a.CreateTask)
	g.DELETE("/tasks/:id", a.DeleteTask)
	g.POST("/resources", a.CreateResource)
	g.DELETE("/resources/:id", a.DeleteResource)
	return r
}

func TestAdminListUsersSearch(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	createMember(t, db, "maria@example.com", "secret123")
	createMember(t, db, "joao@example.com", "secret123")
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodGet, "/admin/users?search=maria", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data struct {
			Users []models.User `json:"users"`
			Total int64         `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.EqualValues(t, 1, res.Data.Total)
	assert.Equal(t, "maria@example.com", res.Data.Users[0].Email)
}

func TestAdminGetUserProgress(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	days := seedChallenge(t, db, 2, 1)
	member := createMember(t, db, "maria@example.com", "secret123")
	require.NoError(t, db.Create(&models.TaskCompletion{UserID: member.ID, TaskID: days[0].Tasks[0].ID}).Error)
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodGet, fmt.Sprintf("/admin/users/%d", member.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data struct {
			DaysCompleted  int `json:"days_completed"`
			TasksCompleted int `json:"tasks_completed"`
			OverallPercent int `json:"overall_percent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Data.DaysCompleted)
	assert.Equal(t, 1, res.Data.TasksCompleted)
	assert.Equal(t, 50, res.Data.OverallPercent)
}

func TestAdminCreateUserGeneratesPassword(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodPost, "/admin/users", gin.H{
		"email":     "nova@example.com",
		"full_name": "Nova Aluna",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data struct {
			TemporaryPassword string `json:"temporary_password"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Data.TemporaryPassword)

	var user models.User
	require.NoError(t, db.Where("email = ?", "nova@example.com").First(&user).Error)
	assert.True(t, user.MustChangePassword)
	assert.True(t, utils.CheckPassword(user.PasswordHash, res.Data.TemporaryPassword))

	// duplicate email is rejected
	w = performJSON(r, http.MethodPost, "/admin/users", gin.H{
		"email":     "nova@example.com",
		"full_name": "Duplicada",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminStatusAndRoleShortcuts(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	member := createMember(t, db, "maria@example.com", "secret123")
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodPatch, fmt.Sprintf("/admin/users/%d/status", member.ID), gin.H{"status": models.StatusBlocked}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, member.ID).Error)
	assert.Equal(t, models.StatusBlocked, reloaded.Status)

	w = performJSON(r, http.MethodPatch, fmt.Sprintf("/admin/users/%d/status", member.ID), gin.H{"status": "NONSENSE"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(r, http.MethodPatch, fmt.Sprintf("/admin/users/%d/role", member.ID), gin.H{"role": models.RoleAdmin}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&reloaded, member.ID).Error)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
}

func TestAdminDeleteUserRemovesProgress(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	days := seedChallenge(t, db, 1, 1)
	member := createMember(t, db, "maria@example.com", "secret123")
	require.NoError(t, db.Create(&models.TaskCompletion{UserID: member.ID, TaskID: days[0].Tasks[0].ID}).Error)
	require.NoError(t, db.Create(&models.UserNote{UserID: member.ID, DayID: days[0].ID, Content: "nota"}).Error)
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodDelete, fmt.Sprintf("/admin/users/%d", member.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users, completions, notes int64
	db.Unscoped().Model(&models.User{}).Where("id = ?", member.ID).Count(&users)
	db.Model(&models.TaskCompletion{}).Where("user_id = ?", member.ID).Count(&completions)
	db.Model(&models.UserNote{}).Where("user_id = ?", member.ID).Count(&notes)
	assert.EqualValues(t, 0, users)
	assert.EqualValues(t, 0, completions)
	assert.EqualValues(t, 0, notes)
}

func TestAdminStats(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	seedChallenge(t, db, 2, 1)
	active := createMember(t, db, "ativa@example.com", "secret123")
	blocked := createMember(t, db, "bloqueada@example.com", "secret123")
	require.NoError(t, db.Model(blocked).Update("status", models.StatusBlocked).Error)

	// active member finished half the tasks
	var task models.ChallengeTask
	require.NoError(t, db.Order("id").First(&task).Error)
	require.NoError(t, db.Create(&models.TaskCompletion{UserID: active.ID, TaskID: task.ID}).Error)

	r := newAdminRouter(db, admin)
	w := performJSON(r, http.MethodGet, "/admin/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data struct {
			TotalMembers  int64 `json:"total_members"`
			Active        int64 `json:"active"`
			Blocked       int64 `json:"blocked"`
			AvgCompletion int   `json:"avg_completion"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.EqualValues(t, 2, res.Data.TotalMembers)
	assert.EqualValues(t, 1, res.Data.Active)
	assert.EqualValues(t, 1, res.Data.Blocked)
	assert.Equal(t, 50, res.Data.AvgCompletion)
}

func TestAdminActivityFeed(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	days := seedChallenge(t, db, 1, 2)
	member := createMember(t, db, "maria@example.com", "secret123")
	for _, task := range days[0].Tasks {
		require.NoError(t, db.Create(&models.TaskCompletion{UserID: member.ID, TaskID: task.ID}).Error)
	}
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodGet, "/admin/activity", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data struct {
			Activity []struct {
				UserName  string `json:"user_name"`
				DayNumber int    `json:"day_number"`
			} `json:"activity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Data.Activity, 2)
	assert.Equal(t, "Test Member", res.Data.Activity[0].UserName)
	assert.Equal(t, 1, res.Data.Activity[0].DayNumber)
}

func TestAdminContentEditor(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	r := newAdminRouter(db, admin)

	// create a day, HTML fields are sanitized
	w := performJSON(r, http.MethodPost, "/admin/days", gin.H{
		"day_number":  1,
		"title":       "Dia 1",
		"description": `<p>ok</p><script>alert(1)</script>`,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var day models.ChallengeDay
	require.NoError(t, db.Where("day_number = ?", 1).First(&day).Error)
	assert.NotContains(t, day.Description, "<script>")
	assert.Contains(t, day.Description, "<p>ok</p>")

	// duplicate day number conflicts
	w = performJSON(r, http.MethodPost, "/admin/days", gin.H{
		"day_number": 1,
		"title":      "Repetido",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// attach a task and a resource
	w = performJSON(r, http.MethodPost, "/admin/tasks", gin.H{
		"day_id": day.ID,
		"title":  "Tarefa 1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodPost, "/admin/resources", gin.H{
		"day_id": day.ID,
		"title":  "Planilha",
		"url":    "https://example.com/planilha",
		"type":   models.ResourceSheet,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodPost, "/admin/resources", gin.H{
		"day_id": day.ID,
		"title":  "Inválido",
		"url":    "https://example.com/x",
		"type":   "torrent",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// deleting the day cascades to tasks, resources and completions
	var task models.ChallengeTask
	require.NoError(t, db.Where("day_id = ?", day.ID).First(&task).Error)
	member := createMember(t, db, "maria@example.com", "secret123")
	require.NoError(t, db.Create(&models.TaskCompletion{UserID: member.ID, TaskID: task.ID}).Error)

	w = performJSON(r, http.MethodDelete, fmt.Sprintf("/admin/days/%d", day.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks, resources, completions int64
	db.Model(&models.ChallengeTask{}).Where("day_id = ?", day.ID).Count(&tasks)
	db.Model(&models.ChallengeResource{}).Where("day_id = ?", day.ID).Count(&resources)
	db.Model(&models.TaskCompletion{}).Count(&completions)
	assert.EqualValues(t, 0, tasks)
	assert.EqualValues(t, 0, resources)
	assert.EqualValues(t, 0, completions)
}

func TestAdminWebhookEventsLog(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db)
	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&models.WebhookEvent{
			DeliveryID: fmt.Sprintf("d-%d", i),
			Provider:   "hotmart",
			Payload:    "{}",
		}).Error)
	}
	r := newAdminRouter(db, admin)

	w := performJSON(r, http.MethodGet, "/admin/webhook-events", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data struct {
			Events []models.WebhookEvent `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Data.Events, 10)
}
