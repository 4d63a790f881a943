package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/pushsubscription"
	entuser "crewpulse.io/crewpulse/ent/user"
	apperrors "crewpulse.io/crewpulse/internal/pkg/errors"
)

type pushSubscribeJSON struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// SubscribePush handles POST /push/subscriptions. Browsers rotate
// subscription keys, so an existing row for the same user and endpoint is
// refreshed in place rather than duplicated.
func (s *Server) SubscribePush(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var body pushSubscribeJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInvalidBody, err.Error(), http.StatusBadRequest))
		return
	}

	existing, err := s.client.PushSubscription.Query().
		Where(
			pushsubscription.EndpointEQ(body.Endpoint),
			pushsubscription.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to save subscription", http.StatusInternalServerError))
		return
	}

	if existing != nil {
		updated, err := existing.Update().
			SetP256dh(body.Keys.P256dh).
			SetAuth(body.Keys.Auth).
			SetUserAgent(c.Request.UserAgent()).
			Save(ctx)
		if err != nil {
			abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to save subscription", http.StatusInternalServerError))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": updated.ID})
		return
	}

	created, err := s.client.PushSubscription.Create().
		SetID(uuid.NewString()).
		SetEndpoint(body.Endpoint).
		SetP256dh(body.Keys.P256dh).
		SetAuth(body.Keys.Auth).
		SetUserAgent(c.Request.UserAgent()).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to save subscription", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// UnsubscribePush handles DELETE /push/subscriptions. Removing an endpoint
// that is already gone is not an error.
func (s *Server) UnsubscribePush(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var body struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInvalidBody, err.Error(), http.StatusBadRequest))
		return
	}

	if _, err := s.client.PushSubscription.Delete().
		Where(
			pushsubscription.EndpointEQ(body.Endpoint),
			pushsubscription.HasUserWith(entuser.IDEQ(userID)),
		).
		Exec(ctx); err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete subscription", http.StatusInternalServerError))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetVAPIDPublicKey handles GET /push/vapid-public-key. An empty value
// tells the client push is not configured.
func (s *Server) GetVAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": s.pushCfg.VAPIDPublicKey})
}
