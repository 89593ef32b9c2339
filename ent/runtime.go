// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/classification"
	"sky-herald.io/herald/ent/comment"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/gcnnotice"
	"sky-herald.io/herald/ent/gcnproperty"
	"sky-herald.io/herald/ent/gcntag"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/listing"
	"sky-herald.io/herald/ent/localization"
	"sky-herald.io/herald/ent/notification"
	"sky-herald.io/herald/ent/objanalysis"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/schema"
	"sky-herald.io/herald/ent/shift"
	"sky-herald.io/herald/ent/spectrum"
	"sky-herald.io/herald/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	allocationMixin := schema.Allocation{}.Mixin()
	allocationMixinFields0 := allocationMixin[0].Fields()
	_ = allocationMixinFields0
	allocationFields := schema.Allocation{}.Fields()
	_ = allocationFields
	// allocationDescCreatedAt is the schema descriptor for created_at field.
	allocationDescCreatedAt := allocationMixinFields0[0].Descriptor()
	// allocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	allocation.DefaultCreatedAt = allocationDescCreatedAt.Default.(func() time.Time)
	// allocationDescUpdatedAt is the schema descriptor for updated_at field.
	allocationDescUpdatedAt := allocationMixinFields0[1].Descriptor()
	// allocation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	allocation.DefaultUpdatedAt = allocationDescUpdatedAt.Default.(func() time.Time)
	// allocation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	allocation.UpdateDefaultUpdatedAt = allocationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// allocationDescInstrument is the schema descriptor for instrument field.
	allocationDescInstrument := allocationFields[0].Descriptor()
	// allocation.InstrumentValidator is a validator for the "instrument" field. It is called by the builders before save.
	allocation.InstrumentValidator = func() func(string) error {
		validators := allocationDescInstrument.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(instrument string) error {
			for _, fn := range fns {
				if err := fn(instrument); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	classificationMixin := schema.Classification{}.Mixin()
	classificationMixinFields0 := classificationMixin[0].Fields()
	_ = classificationMixinFields0
	classificationFields := schema.Classification{}.Fields()
	_ = classificationFields
	// classificationDescCreatedAt is the schema descriptor for created_at field.
	classificationDescCreatedAt := classificationMixinFields0[0].Descriptor()
	// classification.DefaultCreatedAt holds the default value on creation for the created_at field.
	classification.DefaultCreatedAt = classificationDescCreatedAt.Default.(func() time.Time)
	// classificationDescObjID is the schema descriptor for obj_id field.
	classificationDescObjID := classificationFields[0].Descriptor()
	// classification.ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	classification.ObjIDValidator = func() func(string) error {
		validators := classificationDescObjID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(obj_id string) error {
			for _, fn := range fns {
				if err := fn(obj_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// classificationDescClassification is the schema descriptor for classification field.
	classificationDescClassification := classificationFields[1].Descriptor()
	// classification.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	classification.ClassificationValidator = func() func(string) error {
		validators := classificationDescClassification.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(classification string) error {
			for _, fn := range fns {
				if err := fn(classification); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	commentMixin := schema.Comment{}.Mixin()
	commentMixinFields0 := commentMixin[0].Fields()
	_ = commentMixinFields0
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentMixinFields0[0].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	// commentDescObjID is the schema descriptor for obj_id field.
	commentDescObjID := commentFields[0].Descriptor()
	// comment.ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	comment.ObjIDValidator = func() func(string) error {
		validators := commentDescObjID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(obj_id string) error {
			for _, fn := range fns {
				if err := fn(obj_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// commentDescText is the schema descriptor for text field.
	commentDescText := commentFields[1].Descriptor()
	// comment.TextValidator is a validator for the "text" field. It is called by the builders before save.
	comment.TextValidator = func() func(string) error {
		validators := commentDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	facilitytransactionMixin := schema.FacilityTransaction{}.Mixin()
	facilitytransactionMixinFields0 := facilitytransactionMixin[0].Fields()
	_ = facilitytransactionMixinFields0
	facilitytransactionFields := schema.FacilityTransaction{}.Fields()
	_ = facilitytransactionFields
	// facilitytransactionDescCreatedAt is the schema descriptor for created_at field.
	facilitytransactionDescCreatedAt := facilitytransactionMixinFields0[0].Descriptor()
	// facilitytransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	facilitytransaction.DefaultCreatedAt = facilitytransactionDescCreatedAt.Default.(func() time.Time)
	// facilitytransactionDescInitiator is the schema descriptor for initiator field.
	facilitytransactionDescInitiator := facilitytransactionFields[0].Descriptor()
	// facilitytransaction.InitiatorValidator is a validator for the "initiator" field. It is called by the builders before save.
	facilitytransaction.InitiatorValidator = facilitytransactionDescInitiator.Validators[0].(func(string) error)
	followuprequestMixin := schema.FollowupRequest{}.Mixin()
	followuprequestMixinFields0 := followuprequestMixin[0].Fields()
	_ = followuprequestMixinFields0
	followuprequestFields := schema.FollowupRequest{}.Fields()
	_ = followuprequestFields
	// followuprequestDescCreatedAt is the schema descriptor for created_at field.
	followuprequestDescCreatedAt := followuprequestMixinFields0[0].Descriptor()
	// followuprequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	followuprequest.DefaultCreatedAt = followuprequestDescCreatedAt.Default.(func() time.Time)
	// followuprequestDescUpdatedAt is the schema descriptor for updated_at field.
	followuprequestDescUpdatedAt := followuprequestMixinFields0[1].Descriptor()
	// followuprequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	followuprequest.DefaultUpdatedAt = followuprequestDescUpdatedAt.Default.(func() time.Time)
	// followuprequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	followuprequest.UpdateDefaultUpdatedAt = followuprequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// followuprequestDescObjID is the schema descriptor for obj_id field.
	followuprequestDescObjID := followuprequestFields[0].Descriptor()
	// followuprequest.ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	followuprequest.ObjIDValidator = func() func(string) error {
		validators := followuprequestDescObjID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(obj_id string) error {
			for _, fn := range fns {
				if err := fn(obj_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// followuprequestDescStatus is the schema descriptor for status field.
	followuprequestDescStatus := followuprequestFields[1].Descriptor()
	// followuprequest.DefaultStatus holds the default value on creation for the status field.
	followuprequest.DefaultStatus = followuprequestDescStatus.Default.(string)
	// followuprequest.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	followuprequest.StatusValidator = followuprequestDescStatus.Validators[0].(func(string) error)
	gcnnoticeMixin := schema.GcnNotice{}.Mixin()
	gcnnoticeMixinFields0 := gcnnoticeMixin[0].Fields()
	_ = gcnnoticeMixinFields0
	gcnnoticeFields := schema.GcnNotice{}.Fields()
	_ = gcnnoticeFields
	// gcnnoticeDescCreatedAt is the schema descriptor for created_at field.
	gcnnoticeDescCreatedAt := gcnnoticeMixinFields0[0].Descriptor()
	// gcnnotice.DefaultCreatedAt holds the default value on creation for the created_at field.
	gcnnotice.DefaultCreatedAt = gcnnoticeDescCreatedAt.Default.(func() time.Time)
	// gcnnoticeDescNoticeType is the schema descriptor for notice_type field.
	gcnnoticeDescNoticeType := gcnnoticeFields[1].Descriptor()
	// gcnnotice.NoticeTypeValidator is a validator for the "notice_type" field. It is called by the builders before save.
	gcnnotice.NoticeTypeValidator = gcnnoticeDescNoticeType.Validators[0].(func(string) error)
	gcnpropertyMixin := schema.GcnProperty{}.Mixin()
	gcnpropertyMixinFields0 := gcnpropertyMixin[0].Fields()
	_ = gcnpropertyMixinFields0
	gcnpropertyFields := schema.GcnProperty{}.Fields()
	_ = gcnpropertyFields
	// gcnpropertyDescCreatedAt is the schema descriptor for created_at field.
	gcnpropertyDescCreatedAt := gcnpropertyMixinFields0[0].Descriptor()
	// gcnproperty.DefaultCreatedAt holds the default value on creation for the created_at field.
	gcnproperty.DefaultCreatedAt = gcnpropertyDescCreatedAt.Default.(func() time.Time)
	gcntagMixin := schema.GcnTag{}.Mixin()
	gcntagMixinFields0 := gcntagMixin[0].Fields()
	_ = gcntagMixinFields0
	gcntagFields := schema.GcnTag{}.Fields()
	_ = gcntagFields
	// gcntagDescCreatedAt is the schema descriptor for created_at field.
	gcntagDescCreatedAt := gcntagMixinFields0[0].Descriptor()
	// gcntag.DefaultCreatedAt holds the default value on creation for the created_at field.
	gcntag.DefaultCreatedAt = gcntagDescCreatedAt.Default.(func() time.Time)
	// gcntagDescText is the schema descriptor for text field.
	gcntagDescText := gcntagFields[1].Descriptor()
	// gcntag.TextValidator is a validator for the "text" field. It is called by the builders before save.
	gcntag.TextValidator = func() func(string) error {
		validators := gcntagDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	groupMixin := schema.Group{}.Mixin()
	groupMixinFields0 := groupMixin[0].Fields()
	_ = groupMixinFields0
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupMixinFields0[0].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupMixinFields0[1].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[0].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	groupadmissionrequestMixin := schema.GroupAdmissionRequest{}.Mixin()
	groupadmissionrequestMixinFields0 := groupadmissionrequestMixin[0].Fields()
	_ = groupadmissionrequestMixinFields0
	groupadmissionrequestFields := schema.GroupAdmissionRequest{}.Fields()
	_ = groupadmissionrequestFields
	// groupadmissionrequestDescCreatedAt is the schema descriptor for created_at field.
	groupadmissionrequestDescCreatedAt := groupadmissionrequestMixinFields0[0].Descriptor()
	// groupadmissionrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	groupadmissionrequest.DefaultCreatedAt = groupadmissionrequestDescCreatedAt.Default.(func() time.Time)
	// groupadmissionrequestDescUpdatedAt is the schema descriptor for updated_at field.
	groupadmissionrequestDescUpdatedAt := groupadmissionrequestMixinFields0[1].Descriptor()
	// groupadmissionrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	groupadmissionrequest.DefaultUpdatedAt = groupadmissionrequestDescUpdatedAt.Default.(func() time.Time)
	// groupadmissionrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	groupadmissionrequest.UpdateDefaultUpdatedAt = groupadmissionrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// groupadmissionrequestDescStatus is the schema descriptor for status field.
	groupadmissionrequestDescStatus := groupadmissionrequestFields[0].Descriptor()
	// groupadmissionrequest.DefaultStatus holds the default value on creation for the status field.
	groupadmissionrequest.DefaultStatus = groupadmissionrequestDescStatus.Default.(string)
	// groupadmissionrequest.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	groupadmissionrequest.StatusValidator = groupadmissionrequestDescStatus.Validators[0].(func(string) error)
	listingMixin := schema.Listing{}.Mixin()
	listingMixinFields0 := listingMixin[0].Fields()
	_ = listingMixinFields0
	listingFields := schema.Listing{}.Fields()
	_ = listingFields
	// listingDescCreatedAt is the schema descriptor for created_at field.
	listingDescCreatedAt := listingMixinFields0[0].Descriptor()
	// listing.DefaultCreatedAt holds the default value on creation for the created_at field.
	listing.DefaultCreatedAt = listingDescCreatedAt.Default.(func() time.Time)
	// listingDescUpdatedAt is the schema descriptor for updated_at field.
	listingDescUpdatedAt := listingMixinFields0[1].Descriptor()
	// listing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	listing.DefaultUpdatedAt = listingDescUpdatedAt.Default.(func() time.Time)
	// listing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	listing.UpdateDefaultUpdatedAt = listingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// listingDescObjID is the schema descriptor for obj_id field.
	listingDescObjID := listingFields[0].Descriptor()
	// listing.ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	listing.ObjIDValidator = func() func(string) error {
		validators := listingDescObjID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(obj_id string) error {
			for _, fn := range fns {
				if err := fn(obj_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// listingDescListName is the schema descriptor for list_name field.
	listingDescListName := listingFields[1].Descriptor()
	// listing.DefaultListName holds the default value on creation for the list_name field.
	listing.DefaultListName = listingDescListName.Default.(string)
	// listing.ListNameValidator is a validator for the "list_name" field. It is called by the builders before save.
	listing.ListNameValidator = listingDescListName.Validators[0].(func(string) error)
	localizationMixin := schema.Localization{}.Mixin()
	localizationMixinFields0 := localizationMixin[0].Fields()
	_ = localizationMixinFields0
	localizationFields := schema.Localization{}.Fields()
	_ = localizationFields
	// localizationDescCreatedAt is the schema descriptor for created_at field.
	localizationDescCreatedAt := localizationMixinFields0[0].Descriptor()
	// localization.DefaultCreatedAt holds the default value on creation for the created_at field.
	localization.DefaultCreatedAt = localizationDescCreatedAt.Default.(func() time.Time)
	// localizationDescLocalizationName is the schema descriptor for localization_name field.
	localizationDescLocalizationName := localizationFields[1].Descriptor()
	// localization.LocalizationNameValidator is a validator for the "localization_name" field. It is called by the builders before save.
	localization.LocalizationNameValidator = func() func(string) error {
		validators := localizationDescLocalizationName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(localization_name string) error {
			for _, fn := range fns {
				if err := fn(localization_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescText is the schema descriptor for text field.
	notificationDescText := notificationFields[0].Descriptor()
	// notification.TextValidator is a validator for the "text" field. It is called by the builders before save.
	notification.TextValidator = func() func(string) error {
		validators := notificationDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescNotificationType is the schema descriptor for notification_type field.
	notificationDescNotificationType := notificationFields[1].Descriptor()
	// notification.NotificationTypeValidator is a validator for the "notification_type" field. It is called by the builders before save.
	notification.NotificationTypeValidator = notificationDescNotificationType.Validators[0].(func(string) error)
	// notificationDescViewed is the schema descriptor for viewed field.
	notificationDescViewed := notificationFields[3].Descriptor()
	// notification.DefaultViewed holds the default value on creation for the viewed field.
	notification.DefaultViewed = notificationDescViewed.Default.(bool)
	objanalysisMixin := schema.ObjAnalysis{}.Mixin()
	objanalysisMixinFields0 := objanalysisMixin[0].Fields()
	_ = objanalysisMixinFields0
	objanalysisFields := schema.ObjAnalysis{}.Fields()
	_ = objanalysisFields
	// objanalysisDescCreatedAt is the schema descriptor for created_at field.
	objanalysisDescCreatedAt := objanalysisMixinFields0[0].Descriptor()
	// objanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	objanalysis.DefaultCreatedAt = objanalysisDescCreatedAt.Default.(func() time.Time)
	// objanalysisDescUpdatedAt is the schema descriptor for updated_at field.
	objanalysisDescUpdatedAt := objanalysisMixinFields0[1].Descriptor()
	// objanalysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	objanalysis.DefaultUpdatedAt = objanalysisDescUpdatedAt.Default.(func() time.Time)
	// objanalysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	objanalysis.UpdateDefaultUpdatedAt = objanalysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	// objanalysisDescObjID is the schema descriptor for obj_id field.
	objanalysisDescObjID := objanalysisFields[0].Descriptor()
	// objanalysis.ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	objanalysis.ObjIDValidator = func() func(string) error {
		validators := objanalysisDescObjID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(obj_id string) error {
			for _, fn := range fns {
				if err := fn(obj_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// objanalysisDescAnalysisService is the schema descriptor for analysis_service field.
	objanalysisDescAnalysisService := objanalysisFields[1].Descriptor()
	// objanalysis.AnalysisServiceValidator is a validator for the "analysis_service" field. It is called by the builders before save.
	objanalysis.AnalysisServiceValidator = func() func(string) error {
		validators := objanalysisDescAnalysisService.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(analysis_service string) error {
			for _, fn := range fns {
				if err := fn(analysis_service); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// objanalysisDescStatus is the schema descriptor for status field.
	objanalysisDescStatus := objanalysisFields[2].Descriptor()
	// objanalysis.DefaultStatus holds the default value on creation for the status field.
	objanalysis.DefaultStatus = objanalysisDescStatus.Default.(string)
	// objanalysis.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	objanalysis.StatusValidator = objanalysisDescStatus.Validators[0].(func(string) error)
	observationplanrequestMixin := schema.ObservationPlanRequest{}.Mixin()
	observationplanrequestMixinFields0 := observationplanrequestMixin[0].Fields()
	_ = observationplanrequestMixinFields0
	observationplanrequestFields := schema.ObservationPlanRequest{}.Fields()
	_ = observationplanrequestFields
	// observationplanrequestDescCreatedAt is the schema descriptor for created_at field.
	observationplanrequestDescCreatedAt := observationplanrequestMixinFields0[0].Descriptor()
	// observationplanrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	observationplanrequest.DefaultCreatedAt = observationplanrequestDescCreatedAt.Default.(func() time.Time)
	// observationplanrequestDescUpdatedAt is the schema descriptor for updated_at field.
	observationplanrequestDescUpdatedAt := observationplanrequestMixinFields0[1].Descriptor()
	// observationplanrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	observationplanrequest.DefaultUpdatedAt = observationplanrequestDescUpdatedAt.Default.(func() time.Time)
	// observationplanrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	observationplanrequest.UpdateDefaultUpdatedAt = observationplanrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// observationplanrequestDescStatus is the schema descriptor for status field.
	observationplanrequestDescStatus := observationplanrequestFields[1].Descriptor()
	// observationplanrequest.DefaultStatus holds the default value on creation for the status field.
	observationplanrequest.DefaultStatus = observationplanrequestDescStatus.Default.(string)
	// observationplanrequest.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	observationplanrequest.StatusValidator = observationplanrequestDescStatus.Validators[0].(func(string) error)
	shiftMixin := schema.Shift{}.Mixin()
	shiftMixinFields0 := shiftMixin[0].Fields()
	_ = shiftMixinFields0
	shiftFields := schema.Shift{}.Fields()
	_ = shiftFields
	// shiftDescCreatedAt is the schema descriptor for created_at field.
	shiftDescCreatedAt := shiftMixinFields0[0].Descriptor()
	// shift.DefaultCreatedAt holds the default value on creation for the created_at field.
	shift.DefaultCreatedAt = shiftDescCreatedAt.Default.(func() time.Time)
	// shiftDescUpdatedAt is the schema descriptor for updated_at field.
	shiftDescUpdatedAt := shiftMixinFields0[1].Descriptor()
	// shift.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shift.DefaultUpdatedAt = shiftDescUpdatedAt.Default.(func() time.Time)
	// shift.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shift.UpdateDefaultUpdatedAt = shiftDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shiftDescName is the schema descriptor for name field.
	shiftDescName := shiftFields[0].Descriptor()
	// shift.NameValidator is a validator for the "name" field. It is called by the builders before save.
	shift.NameValidator = func() func(string) error {
		validators := shiftDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	spectrumMixin := schema.Spectrum{}.Mixin()
	spectrumMixinFields0 := spectrumMixin[0].Fields()
	_ = spectrumMixinFields0
	spectrumFields := schema.Spectrum{}.Fields()
	_ = spectrumFields
	// spectrumDescCreatedAt is the schema descriptor for created_at field.
	spectrumDescCreatedAt := spectrumMixinFields0[0].Descriptor()
	// spectrum.DefaultCreatedAt holds the default value on creation for the created_at field.
	spectrum.DefaultCreatedAt = spectrumDescCreatedAt.Default.(func() time.Time)
	// spectrumDescObjID is the schema descriptor for obj_id field.
	spectrumDescObjID := spectrumFields[0].Descriptor()
	// spectrum.ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	spectrum.ObjIDValidator = func() func(string) error {
		validators := spectrumDescObjID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(obj_id string) error {
			for _, fn := range fns {
				if err := fn(obj_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescContactEmail is the schema descriptor for contact_email field.
	userDescContactEmail := userFields[1].Descriptor()
	// user.ContactEmailValidator is a validator for the "contact_email" field. It is called by the builders before save.
	user.ContactEmailValidator = userDescContactEmail.Validators[0].(func(string) error)
	// userDescContactPhone is the schema descriptor for contact_phone field.
	userDescContactPhone := userFields[2].Descriptor()
	// user.ContactPhoneValidator is a validator for the "contact_phone" field. It is called by the builders before save.
	user.ContactPhoneValidator = userDescContactPhone.Validators[0].(func(string) error)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[4].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
