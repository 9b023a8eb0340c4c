// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mviorel/learninghub/ent/exportevent"
	"github.com/mviorel/learninghub/ent/profile"
	"github.com/mviorel/learninghub/ent/schema"
	"github.com/mviorel/learninghub/ent/staterecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exporteventFields := schema.ExportEvent{}.Fields()
	_ = exporteventFields
	// exporteventDescProfileID is the schema descriptor for profile_id field.
	exporteventDescProfileID := exporteventFields[0].Descriptor()
	// exportevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	exportevent.ProfileIDValidator = exporteventDescProfileID.Validators[0].(func(string) error)
	// exporteventDescLessonID is the schema descriptor for lesson_id field.
	exporteventDescLessonID := exporteventFields[1].Descriptor()
	// exportevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	exportevent.LessonIDValidator = exporteventDescLessonID.Validators[0].(func(string) error)
	// exporteventDescChecksum is the schema descriptor for checksum field.
	exporteventDescChecksum := exporteventFields[3].Descriptor()
	// exportevent.ChecksumValidator is a validator for the "checksum" field. It is called by the builders before save.
	exportevent.ChecksumValidator = exporteventDescChecksum.Validators[0].(func(string) error)
	// exporteventDescFingerprint is the schema descriptor for fingerprint field.
	exporteventDescFingerprint := exporteventFields[4].Descriptor()
	// exportevent.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	exportevent.FingerprintValidator = exporteventDescFingerprint.Validators[0].(func(string) error)
	// exporteventDescExportedAt is the schema descriptor for exported_at field.
	exporteventDescExportedAt := exporteventFields[5].Descriptor()
	// exportevent.DefaultExportedAt holds the default value on creation for the exported_at field.
	exportevent.DefaultExportedAt = exporteventDescExportedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescProfileID is the schema descriptor for profile_id field.
	profileDescProfileID := profileFields[0].Descriptor()
	// profile.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	profile.ProfileIDValidator = profileDescProfileID.Validators[0].(func(string) error)
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[1].Descriptor()
	// profile.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	profile.DisplayNameValidator = profileDescDisplayName.Validators[0].(func(string) error)
	// profileDescAvatar is the schema descriptor for avatar field.
	profileDescAvatar := profileFields[2].Descriptor()
	// profile.DefaultAvatar holds the default value on creation for the avatar field.
	profile.DefaultAvatar = profileDescAvatar.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	staterecordFields := schema.StateRecord{}.Fields()
	_ = staterecordFields
	// staterecordDescProfileID is the schema descriptor for profile_id field.
	staterecordDescProfileID := staterecordFields[0].Descriptor()
	// staterecord.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	staterecord.ProfileIDValidator = staterecordDescProfileID.Validators[0].(func(string) error)
	// staterecordDescNamespace is the schema descriptor for namespace field.
	staterecordDescNamespace := staterecordFields[1].Descriptor()
	// staterecord.NamespaceValidator is a validator for the "namespace" field. It is called by the builders before save.
	staterecord.NamespaceValidator = staterecordDescNamespace.Validators[0].(func(string) error)
	// staterecordDescUpdatedAt is the schema descriptor for updated_at field.
	staterecordDescUpdatedAt := staterecordFields[3].Descriptor()
	// staterecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staterecord.DefaultUpdatedAt = staterecordDescUpdatedAt.Default.(func() time.Time)
	// staterecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staterecord.UpdateDefaultUpdatedAt = staterecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
