package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
)

// ingestRequest is the body the portal backend posts for each event.
type ingestRequest struct {
	TargetClassName string `json:"target_class_name"`
	TargetID        int    `json:"target_id"`
}

// GetQueueStatus handles GET / on the ingestion listener.
func (s *Server) GetQueueStatus(c *gin.Context) {
	c.JSON(http.StatusOK, envelope{
		Status: "success",
		Data:   map[string]interface{}{"queue_length": s.ingestor.QueueLen()},
	})
}

// IngestEvent handles POST / on the ingestion listener. The body names a
// portal record by class and id; recipients are computed, their records
// persisted, and each one enqueued for channel fan-out. An unrecognized
// class is accepted and yields zero recipients.
func (s *Server) IngestEvent(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{
			Status:  "error",
			Message: "Malformed JSON data",
		})
		return
	}

	event := domain.Event{
		Kind:     domain.EventKind(req.TargetClassName),
		TargetID: req.TargetID,
	}
	res, err := s.ingestor.Ingest(c.Request.Context(), event)
	if err != nil {
		logger.Error("Event ingestion failed",
			zap.String("target_class_name", req.TargetClassName),
			zap.Int("target_id", req.TargetID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, envelope{
			Status:  "error",
			Message: "Error processing notification",
		})
		return
	}

	c.JSON(http.StatusOK, envelope{
		Status: "success",
		Message: fmt.Sprintf("Notification accepted into queue for %d out of %d users",
			res.Candidates-res.Failures, res.Candidates),
		Data: map[string]interface{}{"queue_length": s.ingestor.QueueLen()},
	})
}

// RegisterIngestRoutes mounts the ingestion endpoints on the given router.
// The ingestion listener is trusted and carries no authentication; it must
// only be reachable from the portal backend's network.
func (s *Server) RegisterIngestRoutes(r gin.IRouter) {
	r.GET("/", s.GetQueueStatus)
	r.POST("/", s.IngestEvent)
}
