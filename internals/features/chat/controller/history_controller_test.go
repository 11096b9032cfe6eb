package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHistoryApp(t *testing.T, callerEmail string) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_email", callerEmail)
		return c.Next()
	})
	ctrl := NewChatHistoryController(db)
	app.Post("/chats/:peer", ctrl.PostMessage)
	app.Post("/chats/:peer/locations", ctrl.PostLocation)
	return app, mock
}

func TestPostMessagePersistsCanonicalRoom(t *testing.T) {
	// the caller sorts second, so the stored room must lead with the peer
	app, mock := newHistoryApp(t, "rahim@example.com")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "chat_messages"`).
		WithArgs("karim@example.com-rahim@example.com", "rahim@example.com", "hello", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"chat_message_id"}).
			AddRow("b7f8c7e2-4a1d-4a5e-9c3f-2a6d8e1f0b43"))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/chats/karim@example.com", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostMessageRejectsBlankBody(t *testing.T) {
	app, mock := newHistoryApp(t, "rahim@example.com")

	req := httptest.NewRequest("POST", "/chats/karim@example.com", strings.NewReader(`{"message":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	// nothing reached the store
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostLocationPersistsPing(t *testing.T) {
	app, mock := newHistoryApp(t, "karim@example.com")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "location_pings"`).
		WithArgs("karim@example.com-rahim@example.com", "karim@example.com", 23.81, 90.41, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"location_ping_id"}).
			AddRow("0d9a4c73-57f2-4b8e-8f4a-6b1e2d3c4f50"))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/chats/rahim@example.com/locations",
		strings.NewReader(`{"latitude":23.81,"longitude":90.41}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
