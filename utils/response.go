package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope every member and admin endpoint answers with.
// Code 0 means success; non-zero codes refine the HTTP status with an
// application reason (40xxx client, 50xxx server) so the panel and the app can
// branch without parsing messages. The payment webhook is the one surface that
// skips this envelope: the provider only understands its own plain contract.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes the envelope with an explicit HTTP status.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success answers 200 with payload data.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// SuccessMessage answers 200 with a confirmation only, for mutations whose
// result the client already holds (task toggles, deletions, password changes).
func SuccessMessage(ctx *gin.Context, message string) {
	Respond(ctx, http.StatusOK, 0, message, nil)
}

// Error answers with a non-zero application code and no data.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}
