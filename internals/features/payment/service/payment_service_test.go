package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pawmart_backend/internals/features/payment/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db, mock
}

func TestGetByTranIDUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-nope", 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	_, err := svc.GetByTranID(context.Background(), "PAW-nope")
	assert.ErrorIs(t, err, ErrUnknownTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTranIDFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	rows := sqlmock.NewRows([]string{"payment_tran_id", "payment_kind", "payment_status"}).
		AddRow("PAW-1700000000000-ab12", model.PaymentKindProduct, model.PaymentStatusCompleted)
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-1700000000000-ab12", 1).
		WillReturnRows(rows)

	pay, err := svc.GetByTranID(context.Background(), "PAW-1700000000000-ab12")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusCompleted, pay.PaymentStatus)
	assert.True(t, pay.IsTerminal())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordIPNUnknownTranIsSwallowed(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	// the gateway must get a 200 even for rows we never created
	err := svc.RecordIPN(context.Background(), "PAW-ghost", "VALID", map[string]any{"val_id": "x"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordIPNAppendsHistoryInSQL(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	rows := sqlmock.NewRows([]string{"payment_id", "payment_tran_id", "payment_status", "payment_status_history"}).
		AddRow("b7f8c7e2-4a1d-4a5e-9c3f-2a6d8e1f0b43", "PAW-1700000000000-ab12",
			model.PaymentStatusPending, `[{"status":"pending"}]`)
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_tran_id = \$1`).
		WithArgs("PAW-1700000000000-ab12", 1).
		WillReturnRows(rows)

	// the history entry rides inside the UPDATE as a jsonb concatenation,
	// never as a rewrite of the value read above — a terminal callback
	// committing in between keeps its own entry
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET .*COALESCE\(payment_status_history, '\[\]'::jsonb\) \|\| \$\d+::jsonb`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.RecordIPN(context.Background(), "PAW-1700000000000-ab12", "VALID", map[string]any{"val_id": "x"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReconcileRequired(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, nil, CallbackURLs{})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments" WHERE payment_reconcile_required = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_reconcile_required = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_tran_id", "payment_reconcile_required"}).
			AddRow("PAW-1700000000000-ab12", true))

	rows, total, err := svc.ListReconcileRequired(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].PaymentReconcileRequired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallbackURLsFromBase(t *testing.T) {
	cb := CallbackURLsFromBase("https://api.pawmart.example")
	assert.Equal(t, "https://api.pawmart.example/api/payments/success", cb.Success)
	assert.Equal(t, "https://api.pawmart.example/api/payments/fail", cb.Fail)
	assert.Equal(t, "https://api.pawmart.example/api/payments/cancel", cb.Cancel)
	assert.Equal(t, "https://api.pawmart.example/api/payments/ipn", cb.IPN)
}
