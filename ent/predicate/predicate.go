// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Allocation is the predicate function for allocation builders.
type Allocation func(*sql.Selector)

// Classification is the predicate function for classification builders.
type Classification func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// FacilityTransaction is the predicate function for facilitytransaction builders.
type FacilityTransaction func(*sql.Selector)

// FollowupRequest is the predicate function for followuprequest builders.
type FollowupRequest func(*sql.Selector)

// GcnNotice is the predicate function for gcnnotice builders.
type GcnNotice func(*sql.Selector)

// GcnProperty is the predicate function for gcnproperty builders.
type GcnProperty func(*sql.Selector)

// GcnTag is the predicate function for gcntag builders.
type GcnTag func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupAdmissionRequest is the predicate function for groupadmissionrequest builders.
type GroupAdmissionRequest func(*sql.Selector)

// Listing is the predicate function for listing builders.
type Listing func(*sql.Selector)

// Localization is the predicate function for localization builders.
type Localization func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// ObjAnalysis is the predicate function for objanalysis builders.
type ObjAnalysis func(*sql.Selector)

// ObservationPlanRequest is the predicate function for observationplanrequest builders.
type ObservationPlanRequest func(*sql.Selector)

// Shift is the predicate function for shift builders.
type Shift func(*sql.Selector)

// Spectrum is the predicate function for spectrum builders.
type Spectrum func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
