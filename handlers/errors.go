// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"roombook/services/engine"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// policyStatus maps domain rejection codes onto HTTP statuses. Anything not
// listed is a plain bad request.
var policyStatus = map[string]int{
	engine.CodeNotFound:     http.StatusNotFound,
	engine.CodeUnauthorized: http.StatusForbidden,
	engine.CodeConflict:     http.StatusConflict,
}

// writeError renders a service error. Policy errors carry their code and, for
// conflicts, the id of the blocking reservation; everything else is an
// infrastructure failure hidden behind a generic 500.
func writeError(c *gin.Context, err error) {
	var pe *engine.PolicyError
	if errors.As(err, &pe) {
		status, ok := policyStatus[pe.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		body := utils.ErrorResponse{Message: pe.Message, Code: pe.Code}
		if pe.ConflictID != "" {
			body.Details = "conflictId=" + pe.ConflictID
		}
		c.JSON(status, body)
		return
	}

	utils.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred. Please try again later.")
}
