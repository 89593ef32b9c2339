package notification

import (
	"context"
	"os"
	"testing"
	"time"

	"sky-herald.io/herald/ent"
	entnotification "sky-herald.io/herald/ent/notification"
	entuser "sky-herald.io/herald/ent/user"
	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func mustCreateUser(t *testing.T, client *ent.Client, username string, preferences map[string]interface{}) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetUsername(username).
		SetContactEmail(username + "@example.com").
		SetContactPhone("+15550100").
		SetPreferences(preferences).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

func mustFavorite(t *testing.T, client *ent.Client, u *ent.User, objID string) {
	t.Helper()
	if _, err := client.Listing.Create().
		SetObjID(objID).
		SetListName("favorites").
		SetUser(u).
		Save(context.Background()); err != nil {
		t.Fatalf("favorite %q for user %d: %v", objID, u.ID, err)
	}
}

func favoriteSourcePrefs() map[string]interface{} {
	return map[string]interface{}{
		"notifications": map[string]interface{}{
			"favorite_sources": map[string]interface{}{"active": true},
		},
	}
}

func gcnPrefs(sets map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"notifications": map[string]interface{}{
			"gcn_events": map[string]interface{}{
				"active":     true,
				"properties": sets,
			},
		},
	}
}

func notificationsFor(t *testing.T, client *ent.Client, userID int) []*ent.Notification {
	t.Helper()
	recs, err := client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(userID))).
		All(context.Background())
	if err != nil {
		t.Fatalf("query notifications for user %d: %v", userID, err)
	}
	return recs
}

func TestMaterialize_CommentNotifiesFavoritedUsers(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_comment")
	ctx := context.Background()
	m := NewMaterializer(client)

	fav := mustCreateUser(t, client, "fav.user", favoriteSourcePrefs())
	mustFavorite(t, client, fav, "ZTF21abc")
	other := mustCreateUser(t, client, "other.user", favoriteSourcePrefs())
	mustFavorite(t, client, other, "ZTF21xyz")
	noPrefs := mustCreateUser(t, client, "silent.user", nil)
	mustFavorite(t, client, noPrefs, "ZTF21abc")

	comment, err := client.Comment.Create().
		SetObjID("ZTF21abc").
		SetText("spectacular rebrightening").
		Save(ctx)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindComment, TargetID: comment.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(res.Targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(res.Targets))
	}
	target := res.Targets[0]
	if target.User.ID != fav.ID {
		t.Errorf("recipient = %d, want %d", target.User.ID, fav.ID)
	}
	if target.NotificationType != "favorite_sources_new_comment" {
		t.Errorf("notification_type = %q, want favorite_sources_new_comment", target.NotificationType)
	}
	if target.URL != "/source/ZTF21abc" {
		t.Errorf("url = %q, want /source/ZTF21abc", target.URL)
	}

	recs := notificationsFor(t, client, fav.ID)
	if len(recs) != 1 {
		t.Fatalf("persisted records = %d, want 1", len(recs))
	}
	if recs[0].Viewed {
		t.Error("new record should start unviewed")
	}
	if len(notificationsFor(t, client, other.ID)) != 0 {
		t.Error("user without the favorite should get nothing")
	}
	if len(notificationsFor(t, client, noPrefs.ID)) != 0 {
		t.Error("user without preferences should get nothing")
	}
}

func TestMaterialize_CommentMentionsUser(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_mention")
	ctx := context.Background()
	m := NewMaterializer(client)

	mentioned := mustCreateUser(t, client, "jane.doe", map[string]interface{}{
		"notifications": map[string]interface{}{
			"mention": map[string]interface{}{"active": true},
		},
	})
	mustCreateUser(t, client, "not.mentioned", map[string]interface{}{
		"notifications": map[string]interface{}{
			"mention": map[string]interface{}{"active": true},
		},
	})

	comment, err := client.Comment.Create().
		SetObjID("ZTF21abc").
		SetText("@jane.doe can you take a spectrum?").
		Save(ctx)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindComment, TargetID: comment.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(res.Targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(res.Targets))
	}
	if res.Targets[0].User.ID != mentioned.ID {
		t.Errorf("recipient = %d, want mentioned user %d", res.Targets[0].User.ID, mentioned.ID)
	}
	if res.Targets[0].NotificationType != "mention" {
		t.Errorf("notification_type = %q, want mention", res.Targets[0].NotificationType)
	}
}

func TestMaterialize_ClassificationFavoriteBranchWins(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_classification")
	ctx := context.Background()
	m := NewMaterializer(client)

	bothPrefs := map[string]interface{}{
		"notifications": map[string]interface{}{
			"favorite_sources": map[string]interface{}{"active": true},
			"sources":          map[string]interface{}{"active": true},
		},
	}
	favUser := mustCreateUser(t, client, "fav.both", bothPrefs)
	mustFavorite(t, client, favUser, "ZTF21abc")
	sourcesOnly := mustCreateUser(t, client, "sources.only", bothPrefs)

	cls, err := client.Classification.Create().
		SetObjID("ZTF21abc").
		SetClassification("Ia").
		Save(ctx)
	if err != nil {
		t.Fatalf("create classification: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindClassification, TargetID: cls.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(res.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(res.Targets))
	}

	// The user with the favorite gets exactly one record on the favorite
	// path; the general sources subscription is not evaluated for them.
	favRecs := notificationsFor(t, client, favUser.ID)
	if len(favRecs) != 1 {
		t.Fatalf("favorited user records = %d, want 1", len(favRecs))
	}
	if favRecs[0].NotificationType != "favorite_sources_new_classification" {
		t.Errorf("favorited user type = %q, want favorite path", favRecs[0].NotificationType)
	}
	if favRecs[0].Text != "New classification *Ia* for source *ZTF21abc*" {
		t.Errorf("text = %q", favRecs[0].Text)
	}

	srcRecs := notificationsFor(t, client, sourcesOnly.ID)
	if len(srcRecs) != 1 {
		t.Fatalf("sources-only user records = %d, want 1", len(srcRecs))
	}
	if srcRecs[0].NotificationType != "sources_new_classification" {
		t.Errorf("sources-only user type = %q, want sources path", srcRecs[0].NotificationType)
	}
}

func TestMaterialize_DuplicateMaterializationCreatesDuplicates(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_duplicate")
	ctx := context.Background()
	m := NewMaterializer(client)

	u := mustCreateUser(t, client, "dup.user", favoriteSourcePrefs())
	mustFavorite(t, client, u, "ZTF21abc")

	comment, err := client.Comment.Create().
		SetObjID("ZTF21abc").
		SetText("first").
		Save(ctx)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	event := domain.Event{Kind: domain.KindComment, TargetID: comment.ID}
	for i := 0; i < 2; i++ {
		if _, err := m.Materialize(ctx, event); err != nil {
			t.Fatalf("Materialize() round %d error = %v", i, err)
		}
	}

	// There is no dedup key; the same event materialized twice yields
	// two records.
	if got := len(notificationsFor(t, client, u.ID)); got != 2 {
		t.Fatalf("records after double materialization = %d, want 2", got)
	}
}

func TestMaterialize_GcnTagOrAcrossFilterSets(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_gcn")
	ctx := context.Background()
	m := NewMaterializer(client)

	dateobs := time.Date(2026, 4, 2, 1, 13, 14, 0, time.UTC)

	subscribed := mustCreateUser(t, client, "gcn.user", gcnPrefs(map[string]interface{}{
		"setA": map[string]interface{}{"gcn_tags": []interface{}{"GRB"}},
		"setB": map[string]interface{}{"gcn_tags": []interface{}{"GW"}},
	}))
	noSets := mustCreateUser(t, client, "gcn.empty", gcnPrefs(map[string]interface{}{}))

	tag, err := client.GcnTag.Create().
		SetDateobs(dateobs).
		SetText("GRB").
		Save(ctx)
	if err != nil {
		t.Fatalf("create gcn tag: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindGcnTag, TargetID: tag.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	// One set matches, one does not: OR across sets means exactly one
	// notification for the subscribed user.
	if len(res.Targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(res.Targets))
	}
	if res.Targets[0].User.ID != subscribed.ID {
		t.Errorf("recipient = %d, want %d", res.Targets[0].User.ID, subscribed.ID)
	}
	if res.Targets[0].URL != "/gcn_events/2026-04-02T01:13:14" {
		t.Errorf("url = %q", res.Targets[0].URL)
	}

	// Zero configured sets means no subscription, not match-everything.
	if got := len(notificationsFor(t, client, noSets.ID)); got != 0 {
		t.Fatalf("empty-subscription user records = %d, want 0", got)
	}
}

func TestMaterialize_GcnNewTagsOptIn(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_newtags")
	ctx := context.Background()
	m := NewMaterializer(client)

	optedIn := mustCreateUser(t, client, "tags.user", map[string]interface{}{
		"notifications": map[string]interface{}{
			"gcn_events": map[string]interface{}{"active": true, "new_tags": true},
		},
	})

	tag, err := client.GcnTag.Create().
		SetDateobs(time.Date(2026, 4, 2, 1, 13, 14, 0, time.UTC)).
		SetText("BNS").
		Save(ctx)
	if err != nil {
		t.Fatalf("create gcn tag: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindGcnTag, TargetID: tag.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(res.Targets) != 1 || res.Targets[0].User.ID != optedIn.ID {
		t.Fatalf("new_tags opt-in should notify without filter sets, targets = %v", res.Targets)
	}
	if res.Targets[0].NotificationType != "gcn_events_new_tag" {
		t.Errorf("notification_type = %q", res.Targets[0].NotificationType)
	}
}

func TestMaterialize_MalformedFilterFailsOnlyThatUser(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_malformed")
	ctx := context.Background()
	m := NewMaterializer(client)

	broken := mustCreateUser(t, client, "broken.user", gcnPrefs(map[string]interface{}{
		"bad": map[string]interface{}{"gcn_properties": []interface{}{"far:oops:lt"}},
	}))
	healthy := mustCreateUser(t, client, "healthy.user", gcnPrefs(map[string]interface{}{
		"grb": map[string]interface{}{"gcn_tags": []interface{}{"GRB"}},
	}))

	dateobs := time.Date(2026, 4, 2, 1, 13, 14, 0, time.UTC)
	if _, err := client.GcnProperty.Create().
		SetDateobs(dateobs).
		SetData(map[string]interface{}{"far": 1e-9}).
		Save(ctx); err != nil {
		t.Fatalf("create gcn property: %v", err)
	}
	notice, err := client.GcnNotice.Create().
		SetDateobs(dateobs).
		SetNoticeType("FERMI_GBM_FIN_POS").
		Save(ctx)
	if err != nil {
		t.Fatalf("create gcn notice: %v", err)
	}
	if _, err := client.GcnTag.Create().
		SetDateobs(dateobs).
		SetText("GRB").
		Save(ctx); err != nil {
		t.Fatalf("create gcn tag: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindGcnNotice, TargetID: notice.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	// The corrupt filter degrades to a per-user failure; the healthy
	// subscription still gets its notification.
	if res.Failures != 1 {
		t.Errorf("failures = %d, want 1", res.Failures)
	}
	if len(res.Targets) != 1 || res.Targets[0].User.ID != healthy.ID {
		t.Fatalf("healthy user should still be notified, targets = %v", res.Targets)
	}
	if got := len(notificationsFor(t, client, broken.ID)); got != 0 {
		t.Errorf("broken user records = %d, want 0", got)
	}
}

func TestMaterialize_GroupAdmissionNotifiesAdmins(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_admission")
	ctx := context.Background()
	m := NewMaterializer(client)

	admin := mustCreateUser(t, client, "group.admin", nil)
	member := mustCreateUser(t, client, "group.member", nil)
	applicant := mustCreateUser(t, client, "the.applicant", nil)

	group, err := client.Group.Create().
		SetName("Partner Survey").
		AddUsers(member).
		AddAdmins(admin).
		Save(ctx)
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	gar, err := client.GroupAdmissionRequest.Create().
		SetStatus("pending").
		SetGroup(group).
		SetApplicant(applicant).
		Save(ctx)
	if err != nil {
		t.Fatalf("create admission request: %v", err)
	}

	res, err := m.Materialize(ctx, domain.Event{Kind: domain.KindGroupAdmissionRequest, TargetID: gar.ID})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	// Admins are notified even with empty preferences; plain members
	// are not candidates at all.
	if len(res.Targets) != 1 || res.Targets[0].User.ID != admin.ID {
		t.Fatalf("admin should be the only recipient, targets = %v", res.Targets)
	}
	if res.Targets[0].NotificationType != "group_admission_request" {
		t.Errorf("notification_type = %q", res.Targets[0].NotificationType)
	}
	if len(notificationsFor(t, client, member.ID)) != 0 {
		t.Error("plain member should get nothing")
	}
}

func TestMaterialize_UnknownEventYieldsNoCandidates(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_unknown")
	m := NewMaterializer(client)

	res, err := m.Materialize(context.Background(), domain.Event{Kind: "NotAKind", TargetID: 1})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if res.Candidates != 0 || len(res.Targets) != 0 {
		t.Fatalf("unknown kind should produce zero candidates, got %+v", res)
	}
}

func TestMaterialize_MissingRecordIsNotFound(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "materialize_missing")
	m := NewMaterializer(client)

	_, err := m.Materialize(context.Background(), domain.Event{Kind: domain.KindComment, TargetID: 999999})
	if err == nil {
		t.Fatal("missing target record should be an error")
	}
}
