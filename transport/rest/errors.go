package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
)

const errInternal = "internal error"

var errorStatuses = []struct {
	err    error
	status int
}{
	{err: apperror.ErrInvalidMazeSize, status: http.StatusBadRequest},
	{err: apperror.ErrInvalidDirection, status: http.StatusBadRequest},
	{err: apperror.ErrPlayerNotFound, status: http.StatusNotFound},
	{err: apperror.ErrGameNotFound, status: http.StatusNotFound},
	{err: apperror.ErrNoActiveGame, status: http.StatusNotFound},
	{err: apperror.ErrDirectionBlocked, status: http.StatusConflict},
	{err: apperror.ErrGameFinished, status: http.StatusConflict},
}

// statusFor maps err onto an HTTP status and the message a client may see.
func statusFor(err error) (int, string) {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			return known.status, known.err.Error()
		}
	}

	return http.StatusInternalServerError, errInternal
}

func (that *Server) respondError(c *gin.Context, err error) {
	status, message := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, gin.H{"error": message})
}
