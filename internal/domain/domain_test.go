package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEventKind(t *testing.T) {
	recognized := []string{
		"Classification", "Spectrum", "Comment", "GcnNotice", "Localization",
		"GcnTag", "FacilityTransaction", "FollowupRequest", "ObjAnalysis",
		"EventObservationPlan", "GroupAdmissionRequest", "Listing",
	}
	for _, name := range recognized {
		kind, ok := ParseEventKind(name)
		require.True(t, ok, "expected %q to be recognized", name)
		require.Equal(t, EventKind(name), kind)
	}

	for _, name := range []string{"", "classification", "Source", "VMCreation"} {
		_, ok := ParseEventKind(name)
		require.False(t, ok, "expected %q to be unrecognized", name)
	}
}

func TestEvent_ToJSON(t *testing.T) {
	event := Event{Kind: KindComment, TargetID: 42}

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, event, decoded)
}

func TestRecognizedResourceType(t *testing.T) {
	for _, rt := range []ResourceType{
		ResourceSources, ResourceFavoriteSources, ResourceGcnEvents,
		ResourceFacilityTransactions, ResourceMention, ResourceAnalysisServices,
		ResourceObservationPlans, ResourceGroupAdmissionRequest,
	} {
		require.True(t, RecognizedResourceType(rt))
	}
	require.False(t, RecognizedResourceType("comments"))
	require.False(t, RecognizedResourceType(""))
}

func TestNotificationTarget_ResourceType(t *testing.T) {
	tests := []struct {
		notificationType string
		want             ResourceType
	}{
		{"favorite_sources_new_comment", ResourceFavoriteSources},
		{"favorite_sources_new_classification", ResourceFavoriteSources},
		{"sources", ResourceSources},
		{"new_gcn_tag", "new_gcn_tag"},
		{"gcn_events", ResourceGcnEvents},
		{"facility_transactions", ResourceFacilityTransactions},
		{"mention", ResourceMention},
		{"group_admission_request", ResourceGroupAdmissionRequest},
	}
	for _, tt := range tests {
		target := NotificationTarget{NotificationType: tt.notificationType}
		require.Equal(t, tt.want, target.ResourceType(), "notification_type %q", tt.notificationType)
	}
}
