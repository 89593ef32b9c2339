package notification

import (
	"context"
	"fmt"
	"time"

	"sky-herald.io/herald/ent"
	entgcnprop "sky-herald.io/herald/ent/gcnproperty"
	entgcntag "sky-herald.io/herald/ent/gcntag"
	entlocalization "sky-herald.io/herald/ent/localization"
	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/gcnfilter"
	apperrors "sky-herald.io/herald/internal/pkg/errors"
	"sky-herald.io/herald/internal/prefs"
)

const dateobsFormat = "2006-01-02T15:04:05"

// gcnEventData assembles everything the filter evaluator inspects for
// one dateobs: event tags, all attached property records, and the
// derived skymap tags/properties.
func (m *Materializer) gcnEventData(ctx context.Context, dateobs time.Time, bareNotice bool) (gcnfilter.EventData, error) {
	data := gcnfilter.EventData{BareNotice: bareNotice}

	tags, err := m.client.GcnTag.Query().
		Where(entgcntag.Dateobs(dateobs)).
		All(ctx)
	if err != nil {
		return data, fmt.Errorf("load gcn tags: %w", err)
	}
	for _, t := range tags {
		data.Tags = append(data.Tags, t.Text)
	}

	props, err := m.client.GcnProperty.Query().
		Where(entgcnprop.Dateobs(dateobs)).
		All(ctx)
	if err != nil {
		return data, fmt.Errorf("load gcn properties: %w", err)
	}
	for _, p := range props {
		data.Properties = append(data.Properties, p.Data)
	}

	if !bareNotice {
		locs, err := m.client.Localization.Query().
			Where(entlocalization.Dateobs(dateobs)).
			All(ctx)
		if err != nil {
			return data, fmt.Errorf("load localizations: %w", err)
		}
		for _, l := range locs {
			data.LocalizationTags = append(data.LocalizationTags, l.Tags...)
			data.LocalizationProperties = append(data.LocalizationProperties, l.Properties...)
		}
	}

	return data, nil
}

// gcnFanOut walks every enabled user with an active gcn_events
// subscription and evaluates their filter sets against the event. A
// malformed filter in one user's preferences fails that user only.
func (m *Materializer) gcnFanOut(ctx context.Context, data gcnfilter.EventData, newTagEvent bool, notificationType, text, url, kind string) (*Result, error) {
	users, err := m.enabledUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate users: %w", err)
	}

	res := &Result{}
	for _, u := range users {
		gcn := prefs.Parse(u.Preferences).Resource(domain.ResourceGcnEvents)
		if !gcn.Active {
			continue
		}

		// Tag creation has its own opt-in that bypasses filter sets.
		if newTagEvent && gcn.NewTags {
			target, err := m.create(ctx, u, notificationType, text, url)
			res.add(target, err, u.ID, kind)
			continue
		}

		match, err := gcnfilter.MatchesSubscription(gcn.FilterSets, data)
		if err != nil {
			res.add(domain.NotificationTarget{}, err, u.ID, kind)
			continue
		}
		if !match {
			continue
		}
		target, err := m.create(ctx, u, notificationType, text, url)
		res.add(target, err, u.ID, kind)
	}
	return res, nil
}

func (m *Materializer) onGcnNotice(ctx context.Context, id int) (*Result, error) {
	n, err := m.client.GcnNotice.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindGcnNotice), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load gcn notice %d: %w", id, err)
	}

	data, err := m.gcnEventData(ctx, n.Dateobs, true)
	if err != nil {
		return nil, err
	}
	data.NoticeType = n.NoticeType

	dateobs := n.Dateobs.UTC().Format(dateobsFormat)
	text := fmt.Sprintf("New GCN notice for event *%s*", dateobs)
	return m.gcnFanOut(ctx, data, false, TypeGcnEvent, text, "/gcn_events/"+dateobs, string(domain.KindGcnNotice))
}

func (m *Materializer) onLocalization(ctx context.Context, id int) (*Result, error) {
	l, err := m.client.Localization.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindLocalization), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load localization %d: %w", id, err)
	}

	data, err := m.gcnEventData(ctx, l.Dateobs, false)
	if err != nil {
		return nil, err
	}

	dateobs := l.Dateobs.UTC().Format(dateobsFormat)
	text := fmt.Sprintf("New localization *%s* for GCN event *%s*", l.LocalizationName, dateobs)
	return m.gcnFanOut(ctx, data, false, TypeGcnEvent, text, "/gcn_events/"+dateobs, string(domain.KindLocalization))
}

func (m *Materializer) onGcnTag(ctx context.Context, id int) (*Result, error) {
	t, err := m.client.GcnTag.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEventNotFoundf(string(domain.KindGcnTag), id)
	}
	if err != nil {
		return nil, fmt.Errorf("load gcn tag %d: %w", id, err)
	}

	data, err := m.gcnEventData(ctx, t.Dateobs, false)
	if err != nil {
		return nil, err
	}

	dateobs := t.Dateobs.UTC().Format(dateobsFormat)
	text := fmt.Sprintf("New tag *%s* on GCN event *%s*", t.Text, dateobs)
	return m.gcnFanOut(ctx, data, true, TypeGcnNewTag, text, "/gcn_events/"+dateobs, string(domain.KindGcnTag))
}
