package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sky-herald.io/herald/ent"
	"sky-herald.io/herald/ent/notification"
	entuser "sky-herald.io/herald/ent/user"
	"sky-herald.io/herald/internal/api/middleware"
	"sky-herald.io/herald/internal/pkg/logger"
)

// inboxNotification is the wire shape of one notification record.
type inboxNotification struct {
	ID               int       `json:"id"`
	Text             string    `json:"text"`
	NotificationType string    `json:"notification_type"`
	URL              string    `json:"url"`
	Viewed           bool      `json:"viewed"`
	CreatedAt        time.Time `json:"created_at"`
}

type inboxPagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func defaultPagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	query := s.client.Notification.Query().
		Where(notification.HasUserWith(entuser.IDEQ(userID)))

	if c.Query("unread_only") == "true" {
		query = query.Where(notification.ViewedEQ(false))
	}

	page, perPage := defaultPagination(c)
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	notifications, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	items := make([]inboxNotification, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, inboxNotification{
			ID:               n.ID,
			Text:             n.Text,
			NotificationType: n.NotificationType,
			URL:              n.URL,
			Viewed:           n.Viewed,
			CreatedAt:        n.CreatedAt,
		})
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"pagination": inboxPagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ViewedEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationViewed handles POST /notifications/{id}/viewed.
func (s *Server) MarkNotificationViewed(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_FAILED"})
		return
	}

	// Verify the notification exists and belongs to the caller.
	n, err := s.client.Notification.Query().
		Where(
			notification.IDEQ(notificationID),
			notification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOTIFICATION_NOT_FOUND"})
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	if !n.Viewed {
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetViewed(true).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification viewed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsViewed handles POST /notifications/viewed-all.
func (s *Server) MarkAllNotificationsViewed(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ViewedEQ(false),
		).
		SetViewed(true).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications viewed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterPortalRoutes mounts the inbox endpoints behind JWT auth.
func (s *Server) RegisterPortalRoutes(r gin.IRouter) {
	authed := r.Group("/api", middleware.JWTAuth(s.jwtCfg.SigningKey))
	authed.GET("/notifications", s.ListNotifications)
	authed.GET("/notifications/unread-count", s.GetUnreadCount)
	authed.POST("/notifications/:id/viewed", s.MarkNotificationViewed)
	authed.POST("/notifications/viewed-all", s.MarkAllNotificationsViewed)

	r.GET("/health/live", s.GetLiveness)
	r.GET("/health/ready", s.GetReadiness)
}
