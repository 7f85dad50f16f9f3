package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, ...}. The
// site and the admin dashboard branch on the success flag, not on the
// HTTP status text, so the shape is part of the API contract.

func RespondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondStoreFailure reports an unexpected store error. The cause is
// logged at the boundary; the client only sees the generic message.
func RespondStoreFailure(ctx *gin.Context, message string, err error) {
	logStoreFailure(ctx, err)
	RespondError(ctx, http.StatusInternalServerError, message)
}

// RespondCreateFailure is the variant the create endpoints use: the
// production API includes the error detail string there.
func RespondCreateFailure(ctx *gin.Context, message string, err error) {
	logStoreFailure(ctx, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

func logStoreFailure(ctx *gin.Context, err error) {
	reqID, _ := ctx.Get("request_id")

	slog.Default().ErrorContext(ctx.Request.Context(), "store_failure",
		"err", err,
		"method", ctx.Request.Method,
		"route", ctx.FullPath(),
		"request_id", reqID,
	)
}
