package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/desafiofire/api/config"
	"github.com/desafiofire/api/models"
	"github.com/desafiofire/api/utils"
)

// WebhookController processes purchase events from the payment provider and
// provisions accounts: approvals create or re-activate, revocations block.
type WebhookController struct {
	db *gorm.DB
}

// NewWebhookController creates a WebhookController.
func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{db: db}
}

type eventKind int

const (
	kindUnknown eventKind = iota
	kindApproval
	kindRevocation
)

var approvalEvents = map[string]struct{}{
	"PURCHASE_APPROVED": {},
	"APPROVED":          {},
	"SWITCH_PLAN":       {},
	"PURCHASE_COMPLETE": {},
	"COMPLETED":         {},
}

var revocationEvents = map[string]struct{}{
	"CANCELED":            {},
	"REFUNDED":            {},
	"CHARGEBACK":          {},
	"PURCHASE_CANCELED":   {},
	"PURCHASE_REFUNDED":   {},
	"PURCHASE_CHARGEBACK": {},
}

// paymentEvent is the normalized form of a provider delivery. All the
// field-presence fallbacks live in normalizePaymentEvent so the handler
// branches on typed values only.
type paymentEvent struct {
	Kind      eventKind
	Event     string
	Email     string // lowercased; empty when absent
	Name      string
	Phone     string
	ProductID string
	Price     string
	Currency  string
	Token     string
}

// normalizePaymentEvent flattens the provider's loosely shaped payload.
// Hotmart sends the shared secret in X-HOTMART-HOTTOK (legacy deliveries used
// h-hotmart-hook-token) or as a body field.
func normalizePaymentEvent(headers http.Header, body map[string]any) paymentEvent {
	ev := paymentEvent{}

	ev.Event = firstString(body, "event", "status")
	switch {
	case inSet(approvalEvents, ev.Event):
		ev.Kind = kindApproval
	case inSet(revocationEvents, ev.Event):
		ev.Kind = kindRevocation
	}

	email := getString(body, "email")
	if email == "" {
		email = digString(body, "data", "buyer", "email")
	}
	ev.Email = strings.ToLower(strings.TrimSpace(email))

	ev.Name = getString(body, "name")
	if ev.Name == "" {
		ev.Name = digString(body, "data", "buyer", "name")
	}
	if ev.Name == "" {
		ev.Name = "Novo Aluno"
	}

	ev.Phone = digString(body, "data", "buyer", "phone")
	if ev.Phone == "" {
		ev.Phone = getString(body, "phone_number")
	}

	ev.ProductID = anyToString(body["prod"])
	if ev.ProductID == "" {
		ev.ProductID = anyToString(dig(body, "data", "product", "id"))
	}
	ev.Price = anyToString(body["price"])
	if ev.Price == "" {
		ev.Price = anyToString(dig(body, "data", "purchase", "price", "value"))
	}
	ev.Currency = getString(body, "currency")
	if ev.Currency == "" {
		ev.Currency = digString(body, "data", "purchase", "price", "currency_code")
	}

	ev.Token = headers.Get("X-HOTMART-HOTTOK")
	if ev.Token == "" {
		ev.Token = headers.Get("h-hotmart-hook-token")
	}
	if ev.Token == "" {
		ev.Token = getString(body, "hottok")
	}

	return ev
}

// HandleHotmart is the inbound purchase-event endpoint. The provider contract
// is plain: 200 with a short message on success (including deliberate no-ops),
// 400/401 with {"error": ...} otherwise. Anything but success makes the
// provider retry, so benign absences must answer 200.
func (w *WebhookController) HandleHotmart(ctx *gin.Context) {
	raw, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	// Audit first: the raw payload is stored before any validation so failed
	// deliveries remain debuggable.
	audit := models.WebhookEvent{
		DeliveryID: uuid.NewString(),
		Provider:   "hotmart",
		Payload:    string(raw),
	}
	if err := w.db.Create(&audit).Error; err != nil {
		utils.Sugar.Errorf("failed to store webhook audit row: %v", err)
	}

	ev := normalizePaymentEvent(ctx.Request.Header, body)

	cfg := config.Get()
	if cfg.HotmartToken == "" {
		// Fail-open by explicit choice: without a configured token every
		// delivery is accepted, and the gap is logged loudly.
		utils.Sugar.Warnf("hotmart token not configured, accepting webhook delivery %s unverified", audit.DeliveryID)
	} else if ev.Token != cfg.HotmartToken {
		utils.Sugar.Errorf("invalid hotmart token on delivery %s event=%s", audit.DeliveryID, ev.Event)
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	switch ev.Kind {
	case kindApproval:
		w.handleApproval(ctx, ev)
	case kindRevocation:
		w.handleRevocation(ctx, ev)
	default:
		// Unrecognized events are accepted so the provider stops retrying.
		utils.Sugar.Infof("ignoring unrecognized webhook event %q", ev.Event)
		ctx.JSON(http.StatusOK, gin.H{"message": "Ignored"})
	}
}

// handleApproval activates an existing account or provisions a new one.
// Idempotent: the find-by-email check means a replayed approval touches the
// same account and never re-sends the welcome notifications.
func (w *WebhookController) handleApproval(ctx *gin.Context, ev paymentEvent) {
	if ev.Email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email not found in payload"})
		return
	}

	leadID := w.findLeadID(ev.Email)

	var user models.User
	err := w.db.Where("email = ?", ev.Email).First(&user).Error
	if err == nil {
		w.activateExisting(&user, leadID)
		ctx.JSON(http.StatusOK, gin.H{"message": "Processed"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		utils.Sugar.Errorf("webhook user lookup failed for %s: %v", ev.Email, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "account lookup failed"})
		return
	}

	password, err := utils.GenerateRandomPassword(16)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to generate password"})
		return
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to hash password"})
		return
	}

	user = models.User{
		Email:              ev.Email,
		FullName:           ev.Name,
		Phone:              ev.Phone,
		PasswordHash:       hash,
		Role:               models.RoleMember,
		Status:             models.StatusActive,
		MustChangePassword: true,
		LeadID:             leadID,
	}
	if err := w.db.Create(&user).Error; err != nil {
		// Concurrent delivery for the same email may have created the account
		// between lookup and insert; fall back to activating it.
		var existing models.User
		if lookupErr := w.db.Where("email = ?", ev.Email).First(&existing).Error; lookupErr == nil {
			w.activateExisting(&existing, leadID)
			ctx.JSON(http.StatusOK, gin.H{"message": "Processed"})
			return
		}
		utils.Sugar.Errorf("webhook user create failed for %s: %v", ev.Email, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to create account"})
		return
	}
	utils.Sugar.Infof("provisioned account %d for %s via webhook", user.ID, ev.Email)

	// Notification side effects are best-effort. The account exists and
	// stays provisioned even when every downstream endpoint is unreachable,
	// otherwise the provider would retry and double-process.
	if err := utils.SendInviteMail(ev.Email, ev.Name, password); err != nil {
		utils.Sugar.Warnf("invite mail failed for %s: %v", ev.Email, err)
	}
	cfg := config.Get()
	if cfg.WelcomeWebhookURL != "" {
		note := utils.WelcomeNotification{
			Email:    ev.Email,
			Password: password,
			Name:     ev.Name,
			Event:    "USER_CREATED",
			Phone:    ev.Phone,
		}
		if err := utils.PostWelcome(ctx.Request.Context(), cfg.WelcomeWebhookURL, note); err != nil {
			utils.Sugar.Warnf("welcome webhook failed for %s: %v", ev.Email, err)
		}
	}

	if leadID != nil {
		w.trackPurchase(*leadID, ev)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Processed"})
}

// handleRevocation blocks the account; it is never deleted so the block is
// reversible by a later approval. Absence of email or account is benign.
func (w *WebhookController) handleRevocation(ctx *gin.Context, ev paymentEvent) {
	if ev.Email == "" {
		utils.Sugar.Infof("revocation event %q without email, ignoring", ev.Event)
		ctx.JSON(http.StatusOK, gin.H{"message": "Email not found"})
		return
	}

	var user models.User
	if err := w.db.Where("email = ?", ev.Email).First(&user).Error; err != nil {
		utils.Sugar.Infof("revocation event %q for unknown account %s, ignoring", ev.Event, ev.Email)
		ctx.JSON(http.StatusOK, gin.H{"message": "User not found"})
		return
	}

	if err := w.db.Model(&user).Update("status", models.StatusBlocked).Error; err != nil {
		utils.Sugar.Errorf("failed to block account %d: %v", user.ID, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to block account"})
		return
	}
	utils.Sugar.Infof("blocked account %d due to event %s", user.ID, ev.Event)
	ctx.JSON(http.StatusOK, gin.H{"message": "Processed"})
}

func (w *WebhookController) activateExisting(user *models.User, leadID *uint) {
	// Role and must_change_password stay untouched on re-activation.
	updates := map[string]interface{}{"status": models.StatusActive}
	if leadID != nil {
		updates["lead_id"] = *leadID
	}
	if err := w.db.Model(user).Updates(updates).Error; err != nil {
		utils.Sugar.Errorf("failed to activate account %d: %v", user.ID, err)
		return
	}
	utils.Sugar.Infof("re-activated account %d", user.ID)
}

func (w *WebhookController) findLeadID(email string) *uint {
	var lead models.Lead
	if err := w.db.Where("email = ?", email).First(&lead).Error; err != nil {
		return nil
	}
	return &lead.ID
}

func (w *WebhookController) trackPurchase(leadID uint, ev paymentEvent) {
	data, _ := json.Marshal(map[string]string{
		"product_id": ev.ProductID,
		"provider":   "hotmart",
		"price":      ev.Price,
		"currency":   ev.Currency,
	})
	event := models.TrackingEvent{
		LeadID:    leadID,
		EventName: "Compra Realizada",
		EventData: string(data),
		ContextID: config.Get().TrackingContextID,
	}
	if err := w.db.Create(&event).Error; err != nil {
		utils.Sugar.Warnf("failed to track purchase for lead %d: %v", leadID, err)
	}
}

func inSet(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := getString(m, key); s != "" {
			return s
		}
	}
	return ""
}

// dig walks nested JSON objects, returning nil when any step is missing.
func dig(m map[string]any, path ...string) any {
	var current any = m
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return current
}

func digString(m map[string]any, path ...string) string {
	if s, ok := dig(m, path...).(string); ok {
		return s
	}
	return ""
}

func anyToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
