package response

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestNewListResponse(t *testing.T) {
	t.Run("middle page links both ways", func(t *testing.T) {
		c := testContext(t, "/room/?page=2&page_size=10&status=open")

		resp := NewListResponse(c, []string{"a"}, 2, 10, 35)

		assert.Equal(t, 35, resp.Count)
		require.NotNil(t, resp.Next)
		assert.Contains(t, *resp.Next, "page=3")
		assert.Contains(t, *resp.Next, "status=open")
		require.NotNil(t, resp.Previous)
		assert.Contains(t, *resp.Previous, "page=1")
	})

	t.Run("first page has no previous", func(t *testing.T) {
		c := testContext(t, "/room/?page=1&page_size=10")

		resp := NewListResponse(c, []string{"a"}, 1, 10, 35)

		assert.NotNil(t, resp.Next)
		assert.Nil(t, resp.Previous)
	})

	t.Run("last page has no next", func(t *testing.T) {
		c := testContext(t, "/room/?page=4&page_size=10")

		resp := NewListResponse(c, []string{"a"}, 4, 10, 35)

		assert.Nil(t, resp.Next)
		assert.NotNil(t, resp.Previous)
	})

	t.Run("empty results serialize as an empty array", func(t *testing.T) {
		c := testContext(t, "/room/")

		resp := NewListResponse(c, []string(nil), 1, 10, 0)

		assert.NotNil(t, resp.Results)
		assert.Len(t, resp.Results, 0)
		assert.Nil(t, resp.Next)
		assert.Nil(t, resp.Previous)
	})
}
