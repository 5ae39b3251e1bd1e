package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(ctx *gin.Context)) (*httptest.ResponseRecorder, JSONResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	write(ctx)

	var body JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := record(t, func(ctx *gin.Context) {
		Success(ctx, gin.H{"answer": 42})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "success", body.Message)
	require.NotNil(t, body.Data)
	assert.Equal(t, float64(42), body.Data.(map[string]interface{})["answer"])
}

func TestSuccessMessageOmitsData(t *testing.T) {
	w, body := record(t, func(ctx *gin.Context) {
		SuccessMessage(ctx, "task completed")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "task completed", body.Message)
	assert.Nil(t, body.Data)
	assert.NotContains(t, w.Body.String(), `"data"`)
}

func TestErrorEnvelope(t *testing.T) {
	w, body := record(t, func(ctx *gin.Context) {
		Error(ctx, http.StatusNotFound, 40420, "day not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40420, body.Code)
	assert.Equal(t, "day not found", body.Message)
	assert.Nil(t, body.Data)
}

func TestRespondCustomStatus(t *testing.T) {
	w, body := record(t, func(ctx *gin.Context) {
		Respond(ctx, http.StatusCreated, 0, "created", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "created", body.Message)
	assert.NotNil(t, body.Data)
}
