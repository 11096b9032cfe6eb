package service

import (
	"context"
	"encoding/json"
	"log"

	"pawmart_backend/internals/features/payment/model"
)

// RecordIPN writes the notification onto the payment row keyed by
// tran_id. The two IPN columns are last-write-wins with no ordering
// guarantee relative to the terminal callbacks; replaying the same
// payload leaves them byte-identical. The status history gets one entry
// per delivery, appended in the UPDATE itself so a terminal callback
// committing concurrently keeps its own entry.
func (s *PaymentService) RecordIPN(ctx context.Context, tranID, status string, payload map[string]any) error {
	details, err := json.Marshal(payload)
	if err != nil {
		details = []byte(`{}`)
	}

	var pay model.Payment
	if err := s.DB.WithContext(ctx).Where("payment_tran_id = ?", tranID).First(&pay).Error; err != nil {
		// An IPN for a row we never created is logged, not failed — the
		// gateway would retry forever otherwise.
		log.Printf("[IPN] no payment row for tran_id=%s (status=%s)", tranID, status)
		return nil
	}

	return s.DB.WithContext(ctx).Model(&pay).Updates(map[string]any{
		"payment_ipn_status":  status,
		"payment_ipn_details": details,
		"payment_status_history": model.AppendHistoryExpr(model.StatusHistoryEntry{
			Status:  "ipn",
			Details: status,
			Payload: payload,
		}),
	}).Error
}
