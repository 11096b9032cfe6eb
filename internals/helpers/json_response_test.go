package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagingFor(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := pagingFor(t, "/")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := pagingFor(t, "/?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := pagingFor(t, "/?limit=5")
	assert.Equal(t, 5, p.PerPage)
}

func TestResolvePagingClampsGarbage(t *testing.T) {
	p := pagingFor(t, "/?page=-4&per_page=9999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	last := BuildPaginationFromPage(45, 3, 20)
	assert.False(t, last.HasNext)
}

func TestBuildPaginationEmpty(t *testing.T) {
	pg := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
