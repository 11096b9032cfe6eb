package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"pawmart_backend/internals/configs"
	"pawmart_backend/internals/features/payment/model"
)

// StartPendingPaymentReconciler sweeps payments stuck in pending —
// initiations whose gateway call failed, or checkouts the customer
// abandoned without the gateway ever calling back. Stuck rows older than
// the TTL are expired to cancelled with a history entry.
func StartPendingPaymentReconciler(db *gorm.DB) {
	go func() {
		interval := configs.ReconcileInterval()
		for {
			sweep(db, configs.PendingPaymentTTL())
			time.Sleep(interval)
		}
	}()
}

func sweep(db *gorm.DB, ttl time.Duration) {
	log.Println("[RECONCILE] sweeping stale pending payments...")
	cutoff := StaleCutoff(time.Now(), ttl)

	var stale []model.Payment
	if err := db.
		Where("payment_status = ? AND created_at < ?", model.PaymentStatusPending, cutoff).
		Limit(100).
		Find(&stale).Error; err != nil {
		log.Printf("[RECONCILE ERROR] fetch stale rows: %v", err)
		return
	}
	if len(stale) == 0 {
		log.Println("[RECONCILE] nothing to expire")
		return
	}

	expired := 0
	for i := range stale {
		p := &stale[i]
		now := time.Now()
		res := db.Model(p).
			Where("payment_status = ?", model.PaymentStatusPending).
			Updates(map[string]any{
				"payment_status":       model.PaymentStatusCancelled,
				"payment_cancelled_at": &now,
				"payment_status_history": model.AppendHistoryExpr(model.StatusHistoryEntry{
					Status:  model.PaymentStatusCancelled,
					Details: "expired by reconciler",
				}),
			})
		if res.Error != nil {
			log.Printf("[RECONCILE ERROR] expire %s: %v", p.PaymentTranID, res.Error)
			continue
		}
		// a callback may have landed between the read and this guarded
		// write; RowsAffected==0 means it won
		expired += int(res.RowsAffected)
	}
	log.Printf("[RECONCILE] expired %d pending payments", expired)
}

// StaleCutoff returns the newest created_at a row may have and still be
// considered stale.
func StaleCutoff(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return now.Add(-ttl)
}
