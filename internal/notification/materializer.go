// Package notification turns portal events into persisted notification
// records and their dispatch-ready projections.
//
// The materializer owns the per-event-kind candidate rules: who could be
// interested, whether they may read the underlying record, and what the
// notification says. Channel eligibility is not decided here; that is
// the dispatcher's job at delivery time.
package notification

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"sky-herald.io/herald/ent"
	entgar "sky-herald.io/herald/ent/groupadmissionrequest"
	entlisting "sky-herald.io/herald/ent/listing"
	entanalysis "sky-herald.io/herald/ent/objanalysis"
	entuser "sky-herald.io/herald/ent/user"
	"sky-herald.io/herald/internal/domain"
	apperrors "sky-herald.io/herald/internal/pkg/errors"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/prefs"
)

// Notification type constants. The prefix identifies the resource type
// used for preference lookups at dispatch time.
const (
	TypeFavoriteNewClassification = "favorite_sources_new_classification"
	TypeFavoriteNewSpectrum       = "favorite_sources_new_spectrum"
	TypeFavoriteNewComment        = "favorite_sources_new_comment"
	TypeFavoriteNewListing        = "favorite_sources_new_listing"
	TypeSourceNewClassification   = "sources_new_classification"
	TypeSourceNewSpectrum         = "sources_new_spectrum"
	TypeMention                   = "mention"
	TypeGcnEvent                  = "gcn_events"
	TypeGcnNewTag                 = "gcn_events_new_tag"
	TypeNewFollowupRequest        = "facility_transactions_new_followup_request"
	TypeNewFacilityTransaction    = "facility_transactions_new_transaction"
	TypeAnalysisCompleted         = "analysis_services_completed"
	TypeNewObservationPlan        = "observation_plans_new_plan"
	TypeGroupAdmission            = "group_admission_request"
)

// mentionPattern extracts @username tokens from comment bodies.
var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_.\-]+)`)

// Result summarizes one materialization batch. Candidates counts the
// users a record was attempted for; Failures counts the attempts that
// errored. Gated-out users appear in neither.
type Result struct {
	Targets    []domain.NotificationTarget
	Candidates int
	Failures   int
}

// Materializer computes recipients for portal events and persists one
// notification record per (event, recipient) pair. Materializing the
// same event twice creates duplicates; there is no dedup key.
type Materializer struct {
	client *ent.Client
}

// NewMaterializer creates a materializer backed by the given Ent client.
func NewMaterializer(client *ent.Client) *Materializer {
	return &Materializer{client: client}
}

// Materialize resolves the event's recipients and creates their records.
// Each recipient is processed independently; one user's failure never
// aborts the batch. If every candidate fails and there was at least one,
// the batch itself is reported as failed.
func (m *Materializer) Materialize(ctx context.Context, event domain.Event) (*Result, error) {
	var (
		res *Result
		err error
	)
	switch event.Kind {
	case domain.KindClassification:
		res, err = m.onClassification(ctx, event.TargetID)
	case domain.KindSpectrum:
		res, err = m.onSpectrum(ctx, event.TargetID)
	case domain.KindComment:
		res, err = m.onComment(ctx, event.TargetID)
	case domain.KindListing:
		res, err = m.onListing(ctx, event.TargetID)
	case domain.KindGcnNotice:
		res, err = m.onGcnNotice(ctx, event.TargetID)
	case domain.KindLocalization:
		res, err = m.onLocalization(ctx, event.TargetID)
	case domain.KindGcnTag:
		res, err = m.onGcnTag(ctx, event.TargetID)
	case domain.KindFacilityTransaction:
		res, err = m.onFacilityTransaction(ctx, event.TargetID)
	case domain.KindFollowupRequest:
		res, err = m.onFollowupRequest(ctx, event.TargetID)
	case domain.KindObjAnalysis:
		res, err = m.onObjAnalysis(ctx, event.TargetID)
	case domain.KindObservationPlan:
		res, err = m.onObservationPlan(ctx, event.TargetID)
	case domain.KindGroupAdmissionRequest:
		res, err = m.onGroupAdmissionRequest(ctx, event.TargetID)
	default:
		return &Result{}, nil
	}
	if err != nil {
		return res, err
	}
	if res.Candidates > 0 && res.Failures == res.Candidates {
		return res, apperrors.ErrAllRecipientsFailedf(res.Candidates)
	}
	return res, nil
}

// create persists one record and returns its dispatch projection.
func (m *Materializer) create(ctx context.Context, u *ent.User, notificationType, text, url string) (domain.NotificationTarget, error) {
	rec, err := m.client.Notification.Create().
		SetText(text).
		SetNotificationType(notificationType).
		SetURL(url).
		SetUser(u).
		Save(ctx)
	if err != nil {
		return domain.NotificationTarget{}, fmt.Errorf("create notification for user %d: %w", u.ID, err)
	}
	return domain.NotificationTarget{
		ID:               rec.ID,
		User:             userRef(u),
		NotificationType: notificationType,
		Text:             text,
		URL:              url,
	}, nil
}

func userRef(u *ent.User) domain.UserRef {
	return domain.UserRef{
		ID:           u.ID,
		Username:     u.Username,
		ContactEmail: u.ContactEmail,
		ContactPhone: u.ContactPhone,
		Preferences:  u.Preferences,
	}
}

// add attempts one recipient and folds the outcome into the result.
func (r *Result) add(target domain.NotificationTarget, err error, userID int, kind string) {
	r.Candidates++
	if err != nil {
		r.Failures++
		logger.Error("Notification construction failed",
			zap.Int("user_id", userID),
			zap.String("event_kind", kind),
			zap.Error(err),
		)
		return
	}
	r.Targets = append(r.Targets, target)
}

// enabledUsers loads every enabled user; candidate rules filter from there.
func (m *Materializer) enabledUsers(ctx context.Context) ([]*ent.User, error) {
	return m.client.User.Query().
		Where(entuser.Enabled(true)).
		All(ctx)
}

// hasFavorited reports whether the user keeps obj on a favorites listing.
func (m *Materializer) hasFavorited(ctx context.Context, userID int, objID string) (bool, error) {
	return m.client.Listing.Query().
		Where(
			entlisting.ObjID(objID),
			entlisting.ListName("favorites"),
			entlisting.HasUserWith(entuser.IDEQ(userID)),
		).
		Exist(ctx)
}

// sourceActivity implements the shared candidate walk for classification
// and spectrum events. A user matching the favorite-sources path is not
// also evaluated for the general sources subscription on the same event;
// the favorite branch wins and the general branch is skipped.
func (m *Materializer) sourceActivity(ctx context.Context, objID, favoriteType, sourceType, text, url, kind string) (*Result, error) {
	users, err := m.enabledUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate users: %w", err)
	}

	res := &Result{}
	for _, u := range users {
		p := prefs.Parse(u.Preferences)

		if p.Resource(domain.ResourceFavoriteSources).Active {
			favorited, err := m.hasFavorited(ctx, u.ID, objID)
			if err != nil {
				res.add(domain.NotificationTarget{}, err, u.ID, kind)
				continue
			}
			if favorited {
				target, err := m.create(ctx, u, favoriteType, text, url)
				res.add(target, err, u.ID, kind)
				continue
			}
		}

		if sourceType != "" && p.Resource(domain.ResourceSources).Active {
			target, err := m.create(ctx, u, sourceType, text, url)
			res.add(target, err, u.ID, kind)
		}
	}
	return res, nil
}

func (m *Materializer) onClassification(ctx context.Context, id int) (*Result, error) {
	c, err := m.client.Classification.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindClassification), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load classification %d: %w", id, err)
	}

	text := fmt.Sprintf("New classification *%s* for source *%s*", c.Classification, c.ObjID)
	return m.sourceActivity(ctx, c.ObjID,
		TypeFavoriteNewClassification, TypeSourceNewClassification,
		text, "/source/"+c.ObjID, string(domain.KindClassification))
}

func (m *Materializer) onSpectrum(ctx context.Context, id int) (*Result, error) {
	s, err := m.client.Spectrum.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindSpectrum), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load spectrum %d: %w", id, err)
	}

	text := fmt.Sprintf("New spectrum for source *%s*", s.ObjID)
	return m.sourceActivity(ctx, s.ObjID,
		TypeFavoriteNewSpectrum, TypeSourceNewSpectrum,
		text, "/source/"+s.ObjID, string(domain.KindSpectrum))
}

// onComment notifies users who favorited the commented source, plus any
// users @-mentioned in the comment body. Comments have no general
// sources fallback; only the favorite and mention paths exist.
func (m *Materializer) onComment(ctx context.Context, id int) (*Result, error) {
	c, err := m.client.Comment.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindComment), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load comment %d: %w", id, err)
	}

	users, err := m.enabledUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate users: %w", err)
	}
	mentioned := mentionedUsernames(c.Text)
	url := "/source/" + c.ObjID

	res := &Result{}
	for _, u := range users {
		p := prefs.Parse(u.Preferences)

		if p.Resource(domain.ResourceFavoriteSources).Active {
			favorited, err := m.hasFavorited(ctx, u.ID, c.ObjID)
			if err != nil {
				res.add(domain.NotificationTarget{}, err, u.ID, string(domain.KindComment))
				continue
			}
			if favorited {
				text := fmt.Sprintf("New comment on source *%s*", c.ObjID)
				target, err := m.create(ctx, u, TypeFavoriteNewComment, text, url)
				res.add(target, err, u.ID, string(domain.KindComment))
				continue
			}
		}

		if mentioned[u.Username] && p.Resource(domain.ResourceMention).Active {
			text := fmt.Sprintf("You were mentioned in a comment on source *%s*", c.ObjID)
			target, err := m.create(ctx, u, TypeMention, text, url)
			res.add(target, err, u.ID, string(domain.KindComment))
		}
	}
	return res, nil
}

// onListing notifies other users who keep the same object favorited
// that the source gained activity.
func (m *Materializer) onListing(ctx context.Context, id int) (*Result, error) {
	l, err := m.client.Listing.Query().
		Where(entlisting.IDEQ(id)).
		WithUser().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindListing), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load listing %d: %w", id, err)
	}
	if l.ListName != "favorites" {
		return &Result{}, nil
	}

	users, err := m.enabledUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate users: %w", err)
	}

	text := fmt.Sprintf("Source *%s* was added to a favorites list", l.ObjID)
	url := "/source/" + l.ObjID

	res := &Result{}
	for _, u := range users {
		if l.Edges.User != nil && u.ID == l.Edges.User.ID {
			continue
		}
		if !prefs.Parse(u.Preferences).Resource(domain.ResourceFavoriteSources).Active {
			continue
		}
		favorited, err := m.hasFavorited(ctx, u.ID, l.ObjID)
		if err != nil {
			res.add(domain.NotificationTarget{}, err, u.ID, string(domain.KindListing))
			continue
		}
		if !favorited {
			continue
		}
		target, err := m.create(ctx, u, TypeFavoriteNewListing, text, url)
		res.add(target, err, u.ID, string(domain.KindListing))
	}
	return res, nil
}

func (m *Materializer) onObjAnalysis(ctx context.Context, id int) (*Result, error) {
	oa, err := m.client.ObjAnalysis.Query().
		Where(entanalysis.IDEQ(id)).
		WithOwner().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindObjAnalysis), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load analysis %d: %w", id, err)
	}

	res := &Result{}
	owner := oa.Edges.Owner
	if owner == nil || !owner.Enabled {
		return res, nil
	}
	if !prefs.Parse(owner.Preferences).Resource(domain.ResourceAnalysisServices).Active {
		return res, nil
	}

	text := fmt.Sprintf("Analysis *%s* for source *%s* is now %s", oa.AnalysisService, oa.ObjID, oa.Status)
	target, err := m.create(ctx, owner, TypeAnalysisCompleted, text, "/source/"+oa.ObjID)
	res.add(target, err, owner.ID, string(domain.KindObjAnalysis))
	return res, nil
}

// onGroupAdmissionRequest notifies the admins of the group being joined.
// Preference gating is skipped for the email channel downstream; in-app
// records are still created for every admin here.
func (m *Materializer) onGroupAdmissionRequest(ctx context.Context, id int) (*Result, error) {
	gar, err := m.client.GroupAdmissionRequest.Query().
		Where(entgar.IDEQ(id)).
		WithGroup().
		WithApplicant().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindGroupAdmissionRequest), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load admission request %d: %w", id, err)
	}
	group := gar.Edges.Group
	applicant := gar.Edges.Applicant
	if group == nil || applicant == nil {
		return &Result{}, nil
	}

	admins, err := m.client.Group.QueryAdmins(group).
		Where(entuser.Enabled(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load group admins: %w", err)
	}

	text := fmt.Sprintf("*%s* requested to join group *%s*", applicant.Username, group.Name)
	url := fmt.Sprintf("/group/%d", group.ID)

	res := &Result{}
	for _, admin := range admins {
		target, err := m.create(ctx, admin, TypeGroupAdmission, text, url)
		res.add(target, err, admin.ID, string(domain.KindGroupAdmissionRequest))
	}
	return res, nil
}

func mentionedUsernames(text string) map[string]bool {
	out := make(map[string]bool)
	for _, match := range mentionPattern.FindAllStringSubmatch(text, -1) {
		out[match[1]] = true
	}
	return out
}
