package service

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"pawmart_backend/internals/features/payment/model"
)

func TestHandleSuccessUnknownTran(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("PAW-ghost", model.PaymentStatusPending, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))
	mock.ExpectRollback()
	// no pending row, so the classifier looks the tran_id up without the
	// status guard
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	outcome, err := svc.HandleSuccess(context.Background(), "PAW-ghost", nil)
	assert.Equal(t, OutcomeUnknown, outcome)
	assert.ErrorIs(t, err, ErrUnknownTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSuccessReplayOnCompletedRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("PAW-done", model.PaymentStatusPending, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))
	mock.ExpectRollback()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-done", 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_tran_id", "payment_status"}).
			AddRow("PAW-done", model.PaymentStatusCompleted))

	// a duplicate success callback is applied-as-is, never re-applied
	outcome, err := svc.HandleSuccess(context.Background(), "PAW-done", nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func pendingPaymentRows(tranID, kind string, extraCols []string, extraVals []driver.Value) *sqlmock.Rows {
	cols := append([]string{
		"payment_id", "payment_tran_id", "payment_kind", "payment_status",
		"payment_cus_name", "payment_cus_email", "payment_status_history",
	}, extraCols...)
	vals := append([]driver.Value{
		"b7f8c7e2-4a1d-4a5e-9c3f-2a6d8e1f0b43", tranID, kind, model.PaymentStatusPending,
		"Karim", "karim@example.com", `[{"status":"pending"}]`,
	}, extraVals...)
	return sqlmock.NewRows(cols).AddRow(vals...)
}

func TestHandleSuccessProductDecrementsStockOnce(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("PAW-1700000000000-ab12", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("PAW-1700000000000-ab12", model.PaymentKindProduct,
			[]string{"payment_product_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"}))
	// the one domain write: atomic decrement guarded on stock remaining
	mock.ExpectExec(`UPDATE "products" SET "product_stock_quantity"=product_stock_quantity - 1 WHERE product_id = \$1 AND product_stock_quantity > 0`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_status"=\$\d+.*COALESCE\(payment_status_history, '\[\]'::jsonb\) \|\|`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleSuccess(context.Background(), "PAW-1700000000000-ab12", map[string]any{"val_id": "x"})
	assert.Equal(t, OutcomeApplied, outcome)
	assert.NoError(t, err)
	// ordered expectations: status flip plus exactly one side effect,
	// nothing else touched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSuccessAdoptMarksPetAdopted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("ADOPT-1700000000000-cd34", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("ADOPT-1700000000000-cd34", model.PaymentKindAdoptPet,
			[]string{"payment_pet_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"}))
	mock.ExpectExec(`UPDATE "pets" SET .*"pet_status"=\$\d+.*WHERE pet_id = \$\d+ AND pet_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_status"=\$\d+.*COALESCE\(payment_status_history`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleSuccess(context.Background(), "ADOPT-1700000000000-cd34", nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSuccessBookingBooksSlot(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("BOOK-1700000000000-ef56", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("BOOK-1700000000000-ef56", model.PaymentKindSlotBooking,
			[]string{"payment_volunteer_id", "payment_slot_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50", "slot-1"}))
	mock.ExpectQuery(`SELECT \* FROM "volunteers" WHERE volunteer_id = \$1 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"volunteer_id", "volunteer_available_days"}).
			AddRow("0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50",
				`[{"slotId":"slot-1","day":"Mon","time":"10:00","isBooked":false}]`))
	mock.ExpectExec(`UPDATE "volunteers" SET "volunteer_available_days"=\$1 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_status"=\$\d+.*COALESCE\(payment_status_history`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleSuccess(context.Background(), "BOOK-1700000000000-ef56", nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSuccessOutOfStockRollsBackAndFlags(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("PAW-1700000000000-ab12", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("PAW-1700000000000-ab12", model.PaymentKindProduct,
			[]string{"payment_product_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"}))
	// guarded decrement matches nothing: the whole unit rolls back, the
	// payment never goes completed
	mock.ExpectExec(`UPDATE "products" SET "product_stock_quantity"=product_stock_quantity - 1 WHERE product_id = \$1 AND product_stock_quantity > 0`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_reconcile_required"=\$\d+.*COALESCE\(payment_status_history.*WHERE payment_tran_id = \$\d+ AND payment_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleSuccess(context.Background(), "PAW-1700000000000-ab12", nil)
	assert.Equal(t, OutcomeInconsistent, outcome)
	assert.ErrorIs(t, err, ErrSideEffectFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSuccessAlreadyAdoptedPetRollsBackAndFlags(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("ADOPT-1700000000000-cd34", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("ADOPT-1700000000000-cd34", model.PaymentKindAdoptPet,
			[]string{"payment_pet_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"}))
	mock.ExpectExec(`UPDATE "pets" SET .*"pet_status"=\$\d+.*WHERE pet_id = \$\d+ AND pet_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_reconcile_required"=\$\d+.*WHERE payment_tran_id = \$\d+ AND payment_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleSuccess(context.Background(), "ADOPT-1700000000000-cd34", nil)
	assert.Equal(t, OutcomeInconsistent, outcome)
	assert.ErrorIs(t, err, ErrSideEffectFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleFailLeavesDomainUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("PAW-1700000000000-ab12", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("PAW-1700000000000-ab12", model.PaymentKindProduct,
			[]string{"payment_product_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"}))
	// only the payment row changes; stock stays where it was
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_failed_at"=\$\d+.*"payment_status"=\$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleFail(context.Background(), "PAW-1700000000000-ab12", nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCancelLeavesDomainUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("ADOPT-1700000000000-cd34", model.PaymentStatusPending, 1).
		WillReturnRows(pendingPaymentRows("ADOPT-1700000000000-cd34", model.PaymentKindAdoptPet,
			[]string{"payment_pet_id"},
			[]driver.Value{"0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"}))
	mock.ExpectExec(`UPDATE "payments" SET .*"payment_cancelled_at"=\$\d+.*"payment_status"=\$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, err := svc.HandleCancel(context.Background(), "ADOPT-1700000000000-cd34", nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCancelAfterFailIsNotApplied(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1 AND payment_status = \$2 .* FOR UPDATE`).
		WithArgs("PAW-flip", model.PaymentStatusPending, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))
	mock.ExpectRollback()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-flip", 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_tran_id", "payment_status"}).
			AddRow("PAW-flip", model.PaymentStatusFailed))

	// terminal states never transition between each other
	outcome, err := svc.HandleCancel(context.Background(), "PAW-flip", nil)
	assert.Equal(t, OutcomeUnknown, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
