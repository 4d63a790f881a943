package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "crewpulse.io/crewpulse/internal/pkg/errors"
)

// RunDigestBatch handles GET /cron/digests. It runs the digest batch for
// the current minute and reports a per-recipient summary. Individual send
// failures are contained in the summary; only infrastructure failures
// (the candidate query itself) produce a 500.
func (s *Server) RunDigestBatch(c *gin.Context) {
	summary, err := s.digests.RunTick(c.Request.Context(), time.Now().Truncate(time.Minute))
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeCronRunFailed, "digest batch failed", http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RunBirthdayBatch handles GET /cron/birthdays. Zero candidates is a
// successful run with zero counts.
func (s *Server) RunBirthdayBatch(c *gin.Context) {
	summary, err := s.birthdays.Run(c.Request.Context(), time.Now())
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeCronRunFailed, "birthday batch failed", http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, summary)
}
