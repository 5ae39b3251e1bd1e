package utils

import (
	"log"
	"time"

	"github.com/desafiofire/api/config"
	"github.com/desafiofire/api/models"
)

// StartWebhookEventPruner launches a background goroutine that periodically
// deletes webhook audit rows older than the configured retention window.
// Best-effort: failures are logged and retried on the next tick.
func StartWebhookEventPruner(interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			db := config.DB()
			retention := config.Get().WebhookRetentionDays
			if retention <= 0 {
				continue
			}
			cutoff := time.Now().AddDate(0, 0, -retention)
			res := db.Where("created_at < ?", cutoff).Delete(&models.WebhookEvent{})
			if res.Error != nil {
				log.Printf("webhook event pruner failed: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 && Sugar != nil {
				Sugar.Infof("pruned %d webhook events older than %s", res.RowsAffected, cutoff.Format("2006-01-02"))
			}
		}
	}()
}
