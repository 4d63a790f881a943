// Code generated by ent, DO NOT EDIT.

package shiftswaprequest

import (
	"time"

	"crewpulse.io/crewpulse/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldReason, v))
}

// RespondedBy applies equality check predicate on the "responded_by" field. It's identical to RespondedByEQ.
func RespondedBy(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldRespondedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldContainsFold(FieldReason, v))
}

// RespondedByEQ applies the EQ predicate on the "responded_by" field.
func RespondedByEQ(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEQ(FieldRespondedBy, v))
}

// RespondedByNEQ applies the NEQ predicate on the "responded_by" field.
func RespondedByNEQ(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNEQ(FieldRespondedBy, v))
}

// RespondedByIn applies the In predicate on the "responded_by" field.
func RespondedByIn(vs ...string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIn(FieldRespondedBy, vs...))
}

// RespondedByNotIn applies the NotIn predicate on the "responded_by" field.
func RespondedByNotIn(vs ...string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotIn(FieldRespondedBy, vs...))
}

// RespondedByGT applies the GT predicate on the "responded_by" field.
func RespondedByGT(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGT(FieldRespondedBy, v))
}

// RespondedByGTE applies the GTE predicate on the "responded_by" field.
func RespondedByGTE(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldGTE(FieldRespondedBy, v))
}

// RespondedByLT applies the LT predicate on the "responded_by" field.
func RespondedByLT(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLT(FieldRespondedBy, v))
}

// RespondedByLTE applies the LTE predicate on the "responded_by" field.
func RespondedByLTE(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldLTE(FieldRespondedBy, v))
}

// RespondedByContains applies the Contains predicate on the "responded_by" field.
func RespondedByContains(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldContains(FieldRespondedBy, v))
}

// RespondedByHasPrefix applies the HasPrefix predicate on the "responded_by" field.
func RespondedByHasPrefix(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldHasPrefix(FieldRespondedBy, v))
}

// RespondedByHasSuffix applies the HasSuffix predicate on the "responded_by" field.
func RespondedByHasSuffix(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldHasSuffix(FieldRespondedBy, v))
}

// RespondedByIsNil applies the IsNil predicate on the "responded_by" field.
func RespondedByIsNil() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldIsNull(FieldRespondedBy))
}

// RespondedByNotNil applies the NotNil predicate on the "responded_by" field.
func RespondedByNotNil() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldNotNull(FieldRespondedBy))
}

// RespondedByEqualFold applies the EqualFold predicate on the "responded_by" field.
func RespondedByEqualFold(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldEqualFold(FieldRespondedBy, v))
}

// RespondedByContainsFold applies the ContainsFold predicate on the "responded_by" field.
func RespondedByContainsFold(v string) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.FieldContainsFold(FieldRespondedBy, v))
}

// HasRequester applies the HasEdge predicate on the "requester" edge.
func HasRequester() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequesterTable, RequesterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequesterWith applies the HasEdge predicate on the "requester" edge with a given conditions (other predicates).
func HasRequesterWith(preds ...predicate.User) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(func(s *sql.Selector) {
		step := newRequesterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTarget applies the HasEdge predicate on the "target" edge.
func HasTarget() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTargetWith applies the HasEdge predicate on the "target" edge with a given conditions (other predicates).
func HasTargetWith(preds ...predicate.User) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(func(s *sql.Selector) {
		step := newTargetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasShift applies the HasEdge predicate on the "shift" edge.
func HasShift() predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ShiftTable, ShiftColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasShiftWith applies the HasEdge predicate on the "shift" edge with a given conditions (other predicates).
func HasShiftWith(preds ...predicate.Shift) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(func(s *sql.Selector) {
		step := newShiftStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShiftSwapRequest) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShiftSwapRequest) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShiftSwapRequest) predicate.ShiftSwapRequest {
	return predicate.ShiftSwapRequest(sql.NotPredicates(p))
}
