package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/notification"
	"sky-herald.io/herald/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

type fakeIngestor struct {
	gotEvent domain.Event
	result   *notification.Result
	err      error
	queueLen int
}

func (f *fakeIngestor) Ingest(_ context.Context, event domain.Event) (*notification.Result, error) {
	f.gotEvent = event
	if f.err != nil {
		return f.result, f.err
	}
	return f.result, nil
}

func (f *fakeIngestor) QueueLen() int { return f.queueLen }

func newIngestRouter(ing Ingestor) *gin.Engine {
	srv := NewServer(ServerDeps{Ingestor: ing})
	r := gin.New()
	srv.RegisterIngestRoutes(r)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func TestGetQueueStatus(t *testing.T) {
	r := newIngestRouter(&fakeIngestor{queueLen: 7, result: &notification.Result{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "success" {
		t.Errorf("status field = %v, want success", body["status"])
	}
	data := body["data"].(map[string]interface{})
	if data["queue_length"].(float64) != 7 {
		t.Errorf("queue_length = %v, want 7", data["queue_length"])
	}
}

func TestIngestEvent_Success(t *testing.T) {
	ing := &fakeIngestor{
		queueLen: 3,
		result:   &notification.Result{Candidates: 5, Failures: 2},
	}
	r := newIngestRouter(ing)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"target_class_name":"Classification","target_id":42}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != "success" {
		t.Errorf("status field = %v, want success", body["status"])
	}
	want := "Notification accepted into queue for 3 out of 5 users"
	if body["message"] != want {
		t.Errorf("message = %q, want %q", body["message"], want)
	}
	data := body["data"].(map[string]interface{})
	if data["queue_length"].(float64) != 3 {
		t.Errorf("queue_length = %v, want 3", data["queue_length"])
	}

	if ing.gotEvent.Kind != domain.KindClassification || ing.gotEvent.TargetID != 42 {
		t.Errorf("ingested event = %+v", ing.gotEvent)
	}
}

func TestIngestEvent_MalformedJSON(t *testing.T) {
	r := newIngestRouter(&fakeIngestor{result: &notification.Result{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"target_class`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "error" {
		t.Errorf("status field = %v, want error", body["status"])
	}
	if body["message"] != "Malformed JSON data" {
		t.Errorf("message = %q, want Malformed JSON data", body["message"])
	}
}

func TestIngestEvent_ProcessingError(t *testing.T) {
	r := newIngestRouter(&fakeIngestor{
		result: &notification.Result{Candidates: 2, Failures: 2},
		err:    errors.New("database unavailable"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"target_class_name":"Comment","target_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "error" {
		t.Errorf("status field = %v, want error", body["status"])
	}
	if body["message"] != "Error processing notification" {
		t.Errorf("message = %q, want Error processing notification", body["message"])
	}
}

func TestIngestEvent_UnrecognizedClassAccepted(t *testing.T) {
	ing := &fakeIngestor{result: &notification.Result{}}
	r := newIngestRouter(ing)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"target_class_name":"Telescope","target_id":9}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	want := "Notification accepted into queue for 0 out of 0 users"
	if body["message"] != want {
		t.Errorf("message = %q, want %q", body["message"], want)
	}
}
