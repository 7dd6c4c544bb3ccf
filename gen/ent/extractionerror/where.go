// Code generated by ent, DO NOT EDIT.

package extractionerror

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLTE(FieldID, id))
}

// ResumeID applies equality check predicate on the "resume_id" field. It's identical to ResumeIDEQ.
func ResumeID(v uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldResumeID, v))
}

// FieldKind applies equality check predicate on the "field_kind" field. It's identical to FieldKindEQ.
func FieldKind(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldFieldKind, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldMessage, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldSeverity, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldResolved, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldResolvedAt, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldOccurredAt, v))
}

// ResumeIDEQ applies the EQ predicate on the "resume_id" field.
func ResumeIDEQ(v uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldResumeID, v))
}

// ResumeIDNEQ applies the NEQ predicate on the "resume_id" field.
func ResumeIDNEQ(v uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldResumeID, v))
}

// ResumeIDIn applies the In predicate on the "resume_id" field.
func ResumeIDIn(vs ...uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldResumeID, vs...))
}

// ResumeIDNotIn applies the NotIn predicate on the "resume_id" field.
func ResumeIDNotIn(vs ...uuid.UUID) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldResumeID, vs...))
}

// FieldKindEQ applies the EQ predicate on the "field_kind" field.
func FieldKindEQ(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldFieldKind, v))
}

// FieldKindNEQ applies the NEQ predicate on the "field_kind" field.
func FieldKindNEQ(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldFieldKind, v))
}

// FieldKindIn applies the In predicate on the "field_kind" field.
func FieldKindIn(vs ...string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldFieldKind, vs...))
}

// FieldKindNotIn applies the NotIn predicate on the "field_kind" field.
func FieldKindNotIn(vs ...string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldFieldKind, vs...))
}

// FieldKindGT applies the GT predicate on the "field_kind" field.
func FieldKindGT(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGT(FieldFieldKind, v))
}

// FieldKindGTE applies the GTE predicate on the "field_kind" field.
func FieldKindGTE(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGTE(FieldFieldKind, v))
}

// FieldKindLT applies the LT predicate on the "field_kind" field.
func FieldKindLT(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLT(FieldFieldKind, v))
}

// FieldKindLTE applies the LTE predicate on the "field_kind" field.
func FieldKindLTE(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLTE(FieldFieldKind, v))
}

// FieldKindContains applies the Contains predicate on the "field_kind" field.
func FieldKindContains(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldContains(FieldFieldKind, v))
}

// FieldKindHasPrefix applies the HasPrefix predicate on the "field_kind" field.
func FieldKindHasPrefix(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldHasPrefix(FieldFieldKind, v))
}

// FieldKindHasSuffix applies the HasSuffix predicate on the "field_kind" field.
func FieldKindHasSuffix(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldHasSuffix(FieldFieldKind, v))
}

// FieldKindEqualFold applies the EqualFold predicate on the "field_kind" field.
func FieldKindEqualFold(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEqualFold(FieldFieldKind, v))
}

// FieldKindContainsFold applies the ContainsFold predicate on the "field_kind" field.
func FieldKindContainsFold(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldContainsFold(FieldFieldKind, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldContainsFold(FieldMessage, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldContainsFold(FieldSeverity, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldResolved, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotNull(FieldResolvedAt))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.ExtractionError {
	return predicate.ExtractionError(sql.FieldLTE(FieldOccurredAt, v))
}

// HasResume applies the HasEdge predicate on the "resume" edge.
func HasResume() predicate.ExtractionError {
	return predicate.ExtractionError(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResumeTable, ResumeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResumeWith applies the HasEdge predicate on the "resume" edge with a given conditions (other predicates).
func HasResumeWith(preds ...predicate.Resume) predicate.ExtractionError {
	return predicate.ExtractionError(func(s *sql.Selector) {
		step := newResumeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionError) predicate.ExtractionError {
	return predicate.ExtractionError(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionError) predicate.ExtractionError {
	return predicate.ExtractionError(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionError) predicate.ExtractionError {
	return predicate.ExtractionError(sql.NotPredicates(p))
}
