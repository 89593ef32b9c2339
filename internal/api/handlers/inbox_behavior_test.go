package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sky-herald.io/herald/ent"
	entnotification "sky-herald.io/herald/ent/notification"
	entuser "sky-herald.io/herald/ent/user"
	"sky-herald.io/herald/internal/api/middleware"
	"sky-herald.io/herald/internal/testutil"
)

var testJWTCfg = middleware.JWTConfig{
	SigningKey: []byte("inbox-test-signing-key-1234567890"),
	Issuer:     "herald",
	ExpiresIn:  time.Hour,
}

func newInboxRouter(client *ent.Client) *gin.Engine {
	srv := NewServer(ServerDeps{
		EntClient: client,
		JWTCfg:    testJWTCfg,
		Ingestor:  &fakeIngestor{result: nil},
	})
	r := gin.New()
	srv.RegisterPortalRoutes(r)
	return r
}

func mustUser(t *testing.T, client *ent.Client, username string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetUsername(username).
		SetContactEmail(username + "@example.com").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

func mustNotification(t *testing.T, client *ent.Client, u *ent.User, text string, viewed bool) *ent.Notification {
	t.Helper()
	n, err := client.Notification.Create().
		SetText(text).
		SetNotificationType("favorite_sources_new_comment").
		SetURL("/source/ZTF21abc").
		SetViewed(viewed).
		SetUser(u).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
	return n
}

func authedRequest(t *testing.T, method, path string, userID int, username string) *http.Request {
	t.Helper()
	token, _, err := middleware.GenerateToken(testJWTCfg, userID, username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestInbox_ListScopedToCaller(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_list")
	router := newInboxRouter(client)

	alice := mustUser(t, client, "alice")
	bob := mustUser(t, client, "bob")
	mustNotification(t, client, alice, "for alice", false)
	mustNotification(t, client, alice, "also for alice", true)
	mustNotification(t, client, bob, "for bob", false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/notifications", alice.ID, "alice"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Items []inboxNotification `json:"items"`
		Pag   inboxPagination     `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(body.Items))
	}
	if body.Pag.Total != 2 {
		t.Errorf("total = %d, want 2", body.Pag.Total)
	}
	for _, item := range body.Items {
		if item.Text == "for bob" {
			t.Errorf("bob's notification leaked into alice's inbox")
		}
	}
}

func TestInbox_UnreadOnlyFilter(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_unread")
	router := newInboxRouter(client)

	alice := mustUser(t, client, "alice")
	mustNotification(t, client, alice, "fresh", false)
	mustNotification(t, client, alice, "seen", true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/notifications?unread_only=true", alice.ID, "alice"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Items []inboxNotification `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Text != "fresh" {
		t.Fatalf("items = %+v, want only the unviewed record", body.Items)
	}
}

func TestInbox_UnreadCount(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_count")
	router := newInboxRouter(client)

	alice := mustUser(t, client, "alice")
	mustNotification(t, client, alice, "one", false)
	mustNotification(t, client, alice, "two", false)
	mustNotification(t, client, alice, "old", true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/notifications/unread-count", alice.ID, "alice"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 2 {
		t.Errorf("count = %d, want 2", body.Count)
	}
}

func TestInbox_MarkViewed(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_mark")
	router := newInboxRouter(client)

	alice := mustUser(t, client, "alice")
	n := mustNotification(t, client, alice, "mark me", false)

	w := httptest.NewRecorder()
	path := "/api/notifications/" + strconv.Itoa(n.ID) + "/viewed"
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, path, alice.ID, "alice"))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	got, err := client.Notification.Get(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if !got.Viewed {
		t.Errorf("notification not marked viewed")
	}
}

func TestInbox_MarkViewedRejectsForeignRecord(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_foreign")
	router := newInboxRouter(client)

	alice := mustUser(t, client, "alice")
	bob := mustUser(t, client, "bob")
	n := mustNotification(t, client, bob, "bob's record", false)

	w := httptest.NewRecorder()
	path := "/api/notifications/" + strconv.Itoa(n.ID) + "/viewed"
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, path, alice.ID, "alice"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	got, err := client.Notification.Get(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if got.Viewed {
		t.Errorf("foreign record was modified")
	}
}

func TestInbox_MarkAllViewed(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_markall")
	router := newInboxRouter(client)

	alice := mustUser(t, client, "alice")
	mustNotification(t, client, alice, "one", false)
	mustNotification(t, client, alice, "two", false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/notifications/viewed-all", alice.ID, "alice"))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	remaining, err := client.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(alice.ID)),
			entnotification.ViewedEQ(false),
		).
		Count(context.Background())
	if err != nil {
		t.Fatalf("count unviewed: %v", err)
	}
	if remaining != 0 {
		t.Errorf("unviewed after mark-all = %d, want 0", remaining)
	}
}

func TestInbox_RequiresAuth(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_noauth")
	router := newInboxRouter(client)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

