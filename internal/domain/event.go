// Package domain provides domain models for Sky Herald.
//
// The notification engine works with a closed set of event kinds; the
// ingestion API maps incoming class names onto this set and everything
// downstream switches on the kind rather than on raw strings.
package domain

import "encoding/json"

// EventKind identifies the kind of portal event that can trigger
// notification fan-out.
type EventKind string

const (
	KindClassification        EventKind = "Classification"
	KindSpectrum              EventKind = "Spectrum"
	KindComment               EventKind = "Comment"
	KindGcnNotice             EventKind = "GcnNotice"
	KindLocalization          EventKind = "Localization"
	KindGcnTag                EventKind = "GcnTag"
	KindFacilityTransaction   EventKind = "FacilityTransaction"
	KindFollowupRequest       EventKind = "FollowupRequest"
	KindObjAnalysis           EventKind = "ObjAnalysis"
	KindObservationPlan       EventKind = "EventObservationPlan"
	KindGroupAdmissionRequest EventKind = "GroupAdmissionRequest"
	KindListing               EventKind = "Listing"
)

var eventKinds = map[string]EventKind{
	string(KindClassification):        KindClassification,
	string(KindSpectrum):              KindSpectrum,
	string(KindComment):               KindComment,
	string(KindGcnNotice):             KindGcnNotice,
	string(KindLocalization):          KindLocalization,
	string(KindGcnTag):                KindGcnTag,
	string(KindFacilityTransaction):   KindFacilityTransaction,
	string(KindFollowupRequest):       KindFollowupRequest,
	string(KindObjAnalysis):           KindObjAnalysis,
	string(KindObservationPlan):       KindObservationPlan,
	string(KindGroupAdmissionRequest): KindGroupAdmissionRequest,
	string(KindListing):               KindListing,
}

// ParseEventKind maps an ingestion-API class name onto an EventKind.
// Unrecognized names return ok=false; callers treat those as producing
// zero candidate users, not as an error.
func ParseEventKind(name string) (EventKind, bool) {
	k, ok := eventKinds[name]
	return k, ok
}

// Event pairs an event kind with the row id of the triggering record.
// The materializer loads the record itself; the event carries only the
// reference so it can travel through the ingestion API unchanged.
type Event struct {
	Kind     EventKind `json:"target_class_name"`
	TargetID int       `json:"target_id"`
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
