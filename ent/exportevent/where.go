// Code generated by ent, DO NOT EDIT.

package exportevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mviorel/learninghub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldProfileID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldLessonID, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldGrade, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldChecksum, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldFingerprint, v))
}

// ExportedAt applies equality check predicate on the "exported_at" field. It's identical to ExportedAtEQ.
func ExportedAt(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldExportedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContainsFold(FieldProfileID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldGrade, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContainsFold(FieldChecksum, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldContainsFold(FieldFingerprint, v))
}

// ExportedAtEQ applies the EQ predicate on the "exported_at" field.
func ExportedAtEQ(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldEQ(FieldExportedAt, v))
}

// ExportedAtNEQ applies the NEQ predicate on the "exported_at" field.
func ExportedAtNEQ(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNEQ(FieldExportedAt, v))
}

// ExportedAtIn applies the In predicate on the "exported_at" field.
func ExportedAtIn(vs ...time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldIn(FieldExportedAt, vs...))
}

// ExportedAtNotIn applies the NotIn predicate on the "exported_at" field.
func ExportedAtNotIn(vs ...time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldNotIn(FieldExportedAt, vs...))
}

// ExportedAtGT applies the GT predicate on the "exported_at" field.
func ExportedAtGT(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGT(FieldExportedAt, v))
}

// ExportedAtGTE applies the GTE predicate on the "exported_at" field.
func ExportedAtGTE(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldGTE(FieldExportedAt, v))
}

// ExportedAtLT applies the LT predicate on the "exported_at" field.
func ExportedAtLT(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLT(FieldExportedAt, v))
}

// ExportedAtLTE applies the LTE predicate on the "exported_at" field.
func ExportedAtLTE(v time.Time) predicate.ExportEvent {
	return predicate.ExportEvent(sql.FieldLTE(FieldExportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExportEvent) predicate.ExportEvent {
	return predicate.ExportEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExportEvent) predicate.ExportEvent {
	return predicate.ExportEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExportEvent) predicate.ExportEvent {
	return predicate.ExportEvent(sql.NotPredicates(p))
}
