package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Name     *string  `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Category *string  `json:"category" binding:"required"`
}

func bindBody(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var target bindTarget
	return BindJSON(c, &target)
}

func TestBindJSONReportsFirstMissingField(t *testing.T) {
	err := bindBody(t, `{"category": "main"}`)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: name", AsAppError(err).Message)

	err = bindBody(t, `{"name": "Pasta", "category": "main"}`)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: price", AsAppError(err).Message)
}

func TestBindJSONZeroValuesArePresent(t *testing.T) {
	assert.NoError(t, bindBody(t, `{"name": "", "price": 0, "category": ""}`))
}

func TestBindJSONInvalidValues(t *testing.T) {
	err := bindBody(t, `{"name": "Pasta", "price": -1, "category": "main"}`)
	require.Error(t, err)
	assert.Equal(t, "Invalid value for price", AsAppError(err).Message)

	err = bindBody(t, `{"name": "Pasta", "price": "ten", "category": "main"}`)
	require.Error(t, err)
	assert.Equal(t, "Invalid value for price", AsAppError(err).Message)

	err = bindBody(t, `[1, 2]`)
	require.Error(t, err)
	assert.Equal(t, KindInvalidFormat, AsAppError(err).Kind)
}

func TestValidate(t *testing.T) {
	name, category := "Pasta", "main"
	err := Validate(&bindTarget{Name: &name, Category: &category})
	require.Error(t, err)
	assert.Equal(t, KindMissingField, AsAppError(err).Kind)
	assert.Equal(t, "price", AsAppError(err).Field)
}
