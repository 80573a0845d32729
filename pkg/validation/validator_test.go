package validation

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

func bindErr(t *testing.T, body string, target any) error {
	t.Helper()
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		Init()
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c.ShouldBindJSON(target)
}

type sample struct {
	Name  string  `json:"name" binding:"required,min=2,max=10"`
	Email string  `json:"email" binding:"required,email"`
	Price float64 `json:"price" binding:"gte=0"`
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var s sample
	err := bindErr(t, "{not json", &s)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_FieldMessages(t *testing.T) {
	var s sample
	err := bindErr(t, `{"name":"x","email":"nope","price":-1}`, &s)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at least 2 characters long", details["name"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be greater than or equal to 0", details["price"])
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	var s sample
	err := bindErr(t, `{}`, &s)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Equal(t, "is required", details["name"])
}
