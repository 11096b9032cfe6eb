package route

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paymentController "pawmart_backend/internals/features/payment/controller"
	paymentService "pawmart_backend/internals/features/payment/service"
)

func TestReconcileListingUnderAdminGroup(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	svc := paymentService.NewPaymentService(db, nil, paymentService.CallbackURLs{})
	ctrl := paymentController.NewPaymentController(svc, nil)

	app := fiber.New()
	admin := app.Group("/api/a")
	PaymentAdminRoutes(admin.Group("/payments"), ctrl)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments" WHERE payment_reconcile_required = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_reconcile_required = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/a/payments/reconcile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
