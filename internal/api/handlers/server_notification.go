package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/notification"
	entuser "crewpulse.io/crewpulse/ent/user"
	apperrors "crewpulse.io/crewpulse/internal/pkg/errors"
)

// notificationJSON is the wire shape of one feed entry.
type notificationJSON struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID string    `json:"relatedId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func notificationToAPI(n *ent.Notification) notificationJSON {
	return notificationJSON{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	page, pageSize = defaultPagination(page, pageSize)
	unreadOnly := c.Query("unreadOnly") == "true"

	query := s.client.Notification.Query().
		Where(notification.HasUserWith(entuser.IDEQ(userID)))
	if unreadOnly {
		query = query.Where(notification.ReadEQ(false))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list notifications", http.StatusInternalServerError))
		return
	}

	rows, err := query.
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list notifications", http.StatusInternalServerError))
		return
	}

	items := make([]notificationJSON, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationToAPI(n))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to count unread", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	// Ownership check: the row must belong to the caller.
	n, err := s.client.Notification.Query().
		Where(
			notification.IDEQ(id),
			notification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			abortWithError(c, apperrors.ErrNotificationNotFoundf(id))
			return
		}
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load notification", http.StatusInternalServerError))
		return
	}

	if !n.Read {
		n, err = s.client.Notification.UpdateOneID(id).
			SetRead(true).
			SetReadAt(time.Now()).
			Save(ctx)
		if err != nil {
			abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to update notification", http.StatusInternalServerError))
			return
		}
	}

	c.JSON(http.StatusOK, notificationToAPI(n))
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	updated, err := s.client.Notification.Update().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to update notifications", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteNotification handles DELETE /notifications/:id.
func (s *Server) DeleteNotification(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	deleted, err := s.client.Notification.Delete().
		Where(
			notification.IDEQ(id),
			notification.HasUserWith(entuser.IDEQ(userID)),
		).
		Exec(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete notification", http.StatusInternalServerError))
		return
	}
	if deleted == 0 {
		abortWithError(c, apperrors.ErrNotificationNotFoundf(id))
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteReadNotifications handles DELETE /notifications/read.
func (s *Server) DeleteReadNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	deleted, err := s.client.Notification.Delete().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ReadEQ(true),
		).
		Exec(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to delete notifications", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
