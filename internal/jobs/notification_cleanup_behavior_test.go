package jobs

import (
	"context"
	"os"
	"testing"
	"time"

	"sky-herald.io/herald/ent"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func seedNotification(t *testing.T, client *ent.Client, u *ent.User, viewed bool, age time.Duration) *ent.Notification {
	t.Helper()
	n, err := client.Notification.Create().
		SetText("retention probe").
		SetNotificationType("favorite_sources_new_comment").
		SetViewed(viewed).
		SetCreatedAt(time.Now().UTC().Add(-age)).
		SetUser(u).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	return n
}

func TestNotificationCleanupWorkerWork_DeletesOnlyStaleViewed(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "cleanup_retention")
	ctx := context.Background()

	u, err := client.User.Create().
		SetUsername("retention.user").
		SetContactEmail("retention.user@example.com").
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	staleViewed := seedNotification(t, client, u, true, 100*24*time.Hour)
	staleUnviewed := seedNotification(t, client, u, false, 100*24*time.Hour)
	freshViewed := seedNotification(t, client, u, true, time.Hour)

	w := NewNotificationCleanupWorker(client, 90*24*time.Hour)
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("Work: %v", err)
	}

	if _, err := client.Notification.Get(ctx, staleViewed.ID); !ent.IsNotFound(err) {
		t.Errorf("stale viewed record survived cleanup: %v", err)
	}
	if _, err := client.Notification.Get(ctx, staleUnviewed.ID); err != nil {
		t.Errorf("stale unviewed record should be kept: %v", err)
	}
	if _, err := client.Notification.Get(ctx, freshViewed.ID); err != nil {
		t.Errorf("fresh viewed record should be kept: %v", err)
	}
}
