package domain

import "strings"

// Channel is a delivery channel for a notification.
type Channel string

const (
	ChannelPush     Channel = "push"
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelPhone    Channel = "phone"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSlack    Channel = "slack"
)

// ResourceType is the category of portal object a notification concerns.
// It is the primary key into per-user preference lookups.
type ResourceType string

const (
	ResourceSources               ResourceType = "sources"
	ResourceFavoriteSources       ResourceType = "favorite_sources"
	ResourceGcnEvents             ResourceType = "gcn_events"
	ResourceFacilityTransactions  ResourceType = "facility_transactions"
	ResourceMention               ResourceType = "mention"
	ResourceAnalysisServices      ResourceType = "analysis_services"
	ResourceObservationPlans      ResourceType = "observation_plans"
	ResourceGroupAdmissionRequest ResourceType = "group_admission_request"
)

// RecognizedResourceType reports whether rt is one of the eight resource
// types the preference resolver knows how to gate on.
func RecognizedResourceType(rt ResourceType) bool {
	switch rt {
	case ResourceSources, ResourceFavoriteSources, ResourceGcnEvents,
		ResourceFacilityTransactions, ResourceMention, ResourceAnalysisServices,
		ResourceObservationPlans, ResourceGroupAdmissionRequest:
		return true
	}
	return false
}

// UserRef is the denormalized slice of a user record the dispatcher needs
// at delivery time. Preferences stay in raw form here; the prefs package
// parses them once per dispatch attempt.
type UserRef struct {
	ID           int                    `json:"id"`
	Username     string                 `json:"username"`
	ContactEmail string                 `json:"contact_email"`
	ContactPhone string                 `json:"contact_phone"`
	Preferences  map[string]interface{} `json:"preferences"`
}

// NotificationTarget is the dispatch-ready projection of a persisted
// notification record. It is what travels through the fan-out queue;
// it is never persisted itself.
type NotificationTarget struct {
	ID               int                    `json:"id"`
	User             UserRef                `json:"user"`
	NotificationType string                 `json:"notification_type"`
	Text             string                 `json:"text"`
	URL              string                 `json:"url"`
	Content          map[string]interface{} `json:"content,omitempty"`
}

// ResourceTypeFor maps a notification_type string back to the resource
// type used for preference lookups. Notification types are formed as
// "<resource_type>" or "<resource_type>_<suffix>" by the materializer.
func (t NotificationTarget) ResourceType() ResourceType {
	for _, rt := range []ResourceType{
		ResourceFavoriteSources, ResourceGroupAdmissionRequest,
		ResourceFacilityTransactions, ResourceAnalysisServices,
		ResourceObservationPlans, ResourceGcnEvents, ResourceMention,
		ResourceSources,
	} {
		if t.NotificationType == string(rt) || strings.HasPrefix(t.NotificationType, string(rt)+"_") {
			return rt
		}
	}
	return ResourceType(t.NotificationType)
}
