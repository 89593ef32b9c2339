package notification

import (
	"context"
	"fmt"
	"time"

	"sky-herald.io/herald/ent"
	entfacility "sky-herald.io/herald/ent/facilitytransaction"
	entfollowup "sky-herald.io/herald/ent/followuprequest"
	entobsplan "sky-herald.io/herald/ent/observationplanrequest"
	entshift "sky-herald.io/herald/ent/shift"
	entuser "sky-herald.io/herald/ent/user"
	"sky-herald.io/herald/internal/domain"
	apperrors "sky-herald.io/herald/internal/pkg/errors"
	"sky-herald.io/herald/internal/prefs"
)

// EntShiftLookup answers on-shift checks from the shifts table.
type EntShiftLookup struct {
	client *ent.Client
}

// NewEntShiftLookup creates a shift lookup backed by the given client.
func NewEntShiftLookup(client *ent.Client) *EntShiftLookup {
	return &EntShiftLookup{client: client}
}

// OnShiftNow reports whether the user belongs to a shift whose window
// contains the given instant.
func (s *EntShiftLookup) OnShiftNow(ctx context.Context, userID int, now time.Time) (bool, error) {
	return s.client.Shift.Query().
		Where(
			entshift.StartDateLTE(now),
			entshift.EndDateGTE(now),
			entshift.HasUsersWith(entuser.IDEQ(userID)),
		).
		Exist(ctx)
}

var _ prefs.ShiftLookup = (*EntShiftLookup)(nil)

// allocationAudience is the candidate set for allocation-scoped events:
// members of the group owning the allocation, the requester, and every
// user currently on shift. Group membership doubles as the read-access
// gate for the underlying request.
func (m *Materializer) allocationAudience(ctx context.Context, allocation *ent.Allocation, requester *ent.User) ([]*ent.User, error) {
	seen := make(map[int]struct{})
	var audience []*ent.User
	collect := func(users ...*ent.User) {
		for _, u := range users {
			if u == nil || !u.Enabled {
				continue
			}
			if _, ok := seen[u.ID]; ok {
				continue
			}
			seen[u.ID] = struct{}{}
			audience = append(audience, u)
		}
	}

	if allocation != nil {
		members, err := m.client.Allocation.QueryGroup(allocation).
			QueryUsers().
			Where(entuser.Enabled(true)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load allocation group members: %w", err)
		}
		collect(members...)
	}

	collect(requester)

	onShift, err := m.client.User.Query().
		Where(
			entuser.Enabled(true),
			entuser.HasShiftsWith(
				entshift.StartDateLTE(time.Now().UTC()),
				entshift.EndDateGTE(time.Now().UTC()),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load on-shift users: %w", err)
	}
	collect(onShift...)

	return audience, nil
}

// allocationFanOut creates records for the audience members whose
// subscription for resourceType is active.
func (m *Materializer) allocationFanOut(ctx context.Context, audience []*ent.User, resourceType domain.ResourceType, notificationType, text, url, kind string) *Result {
	res := &Result{}
	for _, u := range audience {
		if !prefs.Parse(u.Preferences).Resource(resourceType).Active {
			continue
		}
		target, err := m.create(ctx, u, notificationType, text, url)
		res.add(target, err, u.ID, kind)
	}
	return res
}

func (m *Materializer) onFollowupRequest(ctx context.Context, id int) (*Result, error) {
	fr, err := m.client.FollowupRequest.Query().
		Where(entfollowup.IDEQ(id)).
		WithAllocation().
		WithRequester().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindFollowupRequest), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load followup request %d: %w", id, err)
	}

	audience, err := m.allocationAudience(ctx, fr.Edges.Allocation, fr.Edges.Requester)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("New follow-up request for source *%s*", fr.ObjID)
	return m.allocationFanOut(ctx, audience, domain.ResourceFacilityTransactions,
		TypeNewFollowupRequest, text, "/source/"+fr.ObjID, string(domain.KindFollowupRequest)), nil
}

func (m *Materializer) onFacilityTransaction(ctx context.Context, id int) (*Result, error) {
	ft, err := m.client.FacilityTransaction.Query().
		Where(entfacility.IDEQ(id)).
		WithFollowupRequest(func(q *ent.FollowupRequestQuery) {
			q.WithAllocation().WithRequester()
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindFacilityTransaction), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load facility transaction %d: %w", id, err)
	}
	fr := ft.Edges.FollowupRequest
	if fr == nil {
		return &Result{}, nil
	}

	audience, err := m.allocationAudience(ctx, fr.Edges.Allocation, fr.Edges.Requester)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("New facility transaction by *%s* for the follow-up request of source *%s*", ft.Initiator, fr.ObjID)
	return m.allocationFanOut(ctx, audience, domain.ResourceFacilityTransactions,
		TypeNewFacilityTransaction, text, "/source/"+fr.ObjID, string(domain.KindFacilityTransaction)), nil
}

func (m *Materializer) onObservationPlan(ctx context.Context, id int) (*Result, error) {
	opr, err := m.client.ObservationPlanRequest.Query().
		Where(entobsplan.IDEQ(id)).
		WithAllocation().
		WithRequester().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindObservationPlan), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load observation plan request %d: %w", id, err)
	}

	audience, err := m.allocationAudience(ctx, opr.Edges.Allocation, opr.Edges.Requester)
	if err != nil {
		return nil, err
	}

	dateobs := opr.Dateobs.UTC().Format(dateobsFormat)
	text := fmt.Sprintf("New observation plan for GCN event *%s*", dateobs)
	return m.allocationFanOut(ctx, audience, domain.ResourceObservationPlans,
		TypeNewObservationPlan, text, "/gcn_events/"+dateobs, string(domain.KindObservationPlan)), nil
}
