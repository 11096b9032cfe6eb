package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawmart_backend/internals/features/payment/model"
	petModel "pawmart_backend/internals/features/pets/model"
	productModel "pawmart_backend/internals/features/products/model"
	volunteerModel "pawmart_backend/internals/features/volunteers/model"
)

// CallbackOutcome tells the controller which client page to redirect the
// browser to.
type CallbackOutcome int

const (
	// OutcomeApplied: the terminal state landed (or was already there —
	// a replayed callback is treated as applied, never re-applied).
	OutcomeApplied CallbackOutcome = iota
	// OutcomeUnknown: no payment row for the tran_id.
	OutcomeUnknown
	// OutcomeInconsistent: the status flip rolled back because the domain
	// side effect matched nothing; payment is failed + flagged.
	OutcomeInconsistent
)

// HandleSuccess flips pending→completed and applies exactly one domain
// side effect, both inside a single transaction. A zero-row side effect
// aborts the whole unit: the payment is then marked failed with a
// reconcile flag instead of staying silently completed.
func (s *PaymentService) HandleSuccess(ctx context.Context, tranID string, gatewayPayload map[string]any) (CallbackOutcome, error) {
	var sideEffectErr error

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pay model.Payment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_tran_id = ? AND payment_status = ?", tranID, model.PaymentStatusPending).
			First(&pay).Error
		if err != nil {
			return err
		}

		if err := s.applySideEffect(tx, &pay); err != nil {
			sideEffectErr = err
			return err
		}

		return tx.Model(&pay).Updates(map[string]any{
			"payment_status":       model.PaymentStatusCompleted,
			"payment_completed_at": nowPtr(),
			"payment_status_history": model.AppendHistoryExpr(model.StatusHistoryEntry{
				Status:  model.PaymentStatusCompleted,
				Details: "gateway success callback",
				Payload: gatewayPayload,
			}),
		}).Error
	})

	if txErr == nil {
		return OutcomeApplied, nil
	}

	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		return s.classifyMissingPending(ctx, tranID, model.PaymentStatusCompleted)
	}

	if sideEffectErr != nil {
		// Chosen fix for the completed-without-side-effect gap: roll the
		// payment to failed and flag it for reconciliation.
		log.Printf("[ERROR] side effect for %s: %v", tranID, sideEffectErr)
		if err := s.markFailedForReconcile(ctx, tranID, sideEffectErr.Error()); err != nil {
			log.Printf("[ERROR] reconcile mark for %s: %v", tranID, err)
		}
		return OutcomeInconsistent, sideEffectErr
	}
	return OutcomeInconsistent, txErr
}

// HandleFail flips pending→failed. Domain records are never touched.
func (s *PaymentService) HandleFail(ctx context.Context, tranID string, gatewayPayload map[string]any) (CallbackOutcome, error) {
	return s.handleSimpleTerminal(ctx, tranID, model.PaymentStatusFailed, "payment_failed_at", "gateway fail callback", gatewayPayload)
}

// HandleCancel flips pending→cancelled. Domain records are never touched.
func (s *PaymentService) HandleCancel(ctx context.Context, tranID string, gatewayPayload map[string]any) (CallbackOutcome, error) {
	return s.handleSimpleTerminal(ctx, tranID, model.PaymentStatusCancelled, "payment_cancelled_at", "gateway cancel callback", gatewayPayload)
}

func (s *PaymentService) handleSimpleTerminal(ctx context.Context, tranID, status, stampColumn, details string, payload map[string]any) (CallbackOutcome, error) {
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pay model.Payment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_tran_id = ? AND payment_status = ?", tranID, model.PaymentStatusPending).
			First(&pay).Error
		if err != nil {
			return err
		}
		return tx.Model(&pay).Updates(map[string]any{
			"payment_status": status,
			stampColumn:      nowPtr(),
			"payment_status_history": model.AppendHistoryExpr(model.StatusHistoryEntry{
				Status:  status,
				Details: details,
				Payload: payload,
			}),
		}).Error
	})

	if txErr == nil {
		return OutcomeApplied, nil
	}
	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		return s.classifyMissingPending(ctx, tranID, status)
	}
	return OutcomeUnknown, txErr
}

// classifyMissingPending decides between "unknown tran_id" and "late or
// duplicate callback on an already-terminal row".
func (s *PaymentService) classifyMissingPending(ctx context.Context, tranID, wantStatus string) (CallbackOutcome, error) {
	var pay model.Payment
	if err := s.DB.WithContext(ctx).Where("payment_tran_id = ?", tranID).First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OutcomeUnknown, ErrUnknownTransaction
		}
		return OutcomeUnknown, err
	}
	if pay.PaymentStatus == wantStatus {
		// replay of the same outcome: nothing to re-apply
		return OutcomeApplied, nil
	}
	log.Printf("[WARN] %s callback for %s but status is already %s", wantStatus, tranID, pay.PaymentStatus)
	return OutcomeUnknown, nil
}

/* ===================== Side effects ===================== */

// applySideEffect performs the single domain mutation a completed
// checkout implies, using guarded writes so a rerun can never apply
// twice.
func (s *PaymentService) applySideEffect(tx *gorm.DB, pay *model.Payment) error {
	switch pay.PaymentKind {
	case model.PaymentKindProduct:
		if pay.PaymentProductID == nil {
			return ErrSideEffectFailed
		}
		res := tx.Model(&productModel.Product{}).
			Where("product_id = ? AND product_stock_quantity > 0", *pay.PaymentProductID).
			UpdateColumn("product_stock_quantity", gorm.Expr("product_stock_quantity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSideEffectFailed
		}
		return nil

	case model.PaymentKindAdoptPet:
		if pay.PaymentPetID == nil {
			return ErrSideEffectFailed
		}
		details := petModel.MarshalAdoptionDetails(petModel.AdoptionDetails{
			CustomerName:  pay.PaymentCusName,
			CustomerEmail: pay.PaymentCusEmail,
			TranID:        pay.PaymentTranID,
			AdoptedAt:     time.Now(),
		})
		res := tx.Model(&petModel.Pet{}).
			Where("pet_id = ? AND pet_status = ?", *pay.PaymentPetID, petModel.PetStatusAvailable).
			Updates(map[string]any{
				"pet_status":          petModel.PetStatusAdopted,
				"pet_adoption_details": []byte(details),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSideEffectFailed
		}
		return nil

	case model.PaymentKindSlotBooking:
		if pay.PaymentVolunteerID == nil || pay.PaymentSlotID == nil {
			return ErrSideEffectFailed
		}
		var vol volunteerModel.Volunteer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("volunteer_id = ?", *pay.PaymentVolunteerID).
			First(&vol).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSideEffectFailed
			}
			return err
		}
		days, err := volunteerModel.DecodeAvailableDays(vol.VolunteerAvailableDays)
		if err != nil {
			return err
		}
		days, ok := volunteerModel.BookSlot(days, *pay.PaymentSlotID, pay.PaymentCusEmail)
		if !ok {
			return ErrSideEffectFailed
		}
		raw, err := volunteerModel.EncodeAvailableDays(days)
		if err != nil {
			return err
		}
		return tx.Model(&vol).UpdateColumn("volunteer_available_days", []byte(raw)).Error

	default:
		return ErrSideEffectFailed
	}
}

// markFailedForReconcile runs outside the rolled-back transaction.
func (s *PaymentService) markFailedForReconcile(ctx context.Context, tranID, reason string) error {
	return s.DB.WithContext(ctx).Model(&model.Payment{}).
		Where("payment_tran_id = ? AND payment_status = ?", tranID, model.PaymentStatusPending).
		Updates(map[string]any{
			"payment_status":             model.PaymentStatusFailed,
			"payment_failed_at":          nowPtr(),
			"payment_reconcile_required": true,
			"payment_status_history": model.AppendHistoryExpr(model.StatusHistoryEntry{
				Status:  model.PaymentStatusFailed,
				Details: "reconcile_required: " + reason,
			}),
		}).Error
}
