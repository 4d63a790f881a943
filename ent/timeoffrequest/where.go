// Code generated by ent, DO NOT EDIT.

package timeoffrequest

import (
	"time"

	"crewpulse.io/crewpulse/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartsOn applies equality check predicate on the "starts_on" field. It's identical to StartsOnEQ.
func StartsOn(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldStartsOn, v))
}

// EndsOn applies equality check predicate on the "ends_on" field. It's identical to EndsOnEQ.
func EndsOn(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldEndsOn, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldReason, v))
}

// RespondedBy applies equality check predicate on the "responded_by" field. It's identical to RespondedByEQ.
func RespondedBy(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldRespondedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartsOnEQ applies the EQ predicate on the "starts_on" field.
func StartsOnEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldStartsOn, v))
}

// StartsOnNEQ applies the NEQ predicate on the "starts_on" field.
func StartsOnNEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldStartsOn, v))
}

// StartsOnIn applies the In predicate on the "starts_on" field.
func StartsOnIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldStartsOn, vs...))
}

// StartsOnNotIn applies the NotIn predicate on the "starts_on" field.
func StartsOnNotIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldStartsOn, vs...))
}

// StartsOnGT applies the GT predicate on the "starts_on" field.
func StartsOnGT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldStartsOn, v))
}

// StartsOnGTE applies the GTE predicate on the "starts_on" field.
func StartsOnGTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldStartsOn, v))
}

// StartsOnLT applies the LT predicate on the "starts_on" field.
func StartsOnLT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldStartsOn, v))
}

// StartsOnLTE applies the LTE predicate on the "starts_on" field.
func StartsOnLTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldStartsOn, v))
}

// EndsOnEQ applies the EQ predicate on the "ends_on" field.
func EndsOnEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldEndsOn, v))
}

// EndsOnNEQ applies the NEQ predicate on the "ends_on" field.
func EndsOnNEQ(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldEndsOn, v))
}

// EndsOnIn applies the In predicate on the "ends_on" field.
func EndsOnIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldEndsOn, vs...))
}

// EndsOnNotIn applies the NotIn predicate on the "ends_on" field.
func EndsOnNotIn(vs ...time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldEndsOn, vs...))
}

// EndsOnGT applies the GT predicate on the "ends_on" field.
func EndsOnGT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldEndsOn, v))
}

// EndsOnGTE applies the GTE predicate on the "ends_on" field.
func EndsOnGTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldEndsOn, v))
}

// EndsOnLT applies the LT predicate on the "ends_on" field.
func EndsOnLT(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldEndsOn, v))
}

// EndsOnLTE applies the LTE predicate on the "ends_on" field.
func EndsOnLTE(v time.Time) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldEndsOn, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldContainsFold(FieldReason, v))
}

// RespondedByEQ applies the EQ predicate on the "responded_by" field.
func RespondedByEQ(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEQ(FieldRespondedBy, v))
}

// RespondedByNEQ applies the NEQ predicate on the "responded_by" field.
func RespondedByNEQ(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNEQ(FieldRespondedBy, v))
}

// RespondedByIn applies the In predicate on the "responded_by" field.
func RespondedByIn(vs ...string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIn(FieldRespondedBy, vs...))
}

// RespondedByNotIn applies the NotIn predicate on the "responded_by" field.
func RespondedByNotIn(vs ...string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotIn(FieldRespondedBy, vs...))
}

// RespondedByGT applies the GT predicate on the "responded_by" field.
func RespondedByGT(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGT(FieldRespondedBy, v))
}

// RespondedByGTE applies the GTE predicate on the "responded_by" field.
func RespondedByGTE(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldGTE(FieldRespondedBy, v))
}

// RespondedByLT applies the LT predicate on the "responded_by" field.
func RespondedByLT(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLT(FieldRespondedBy, v))
}

// RespondedByLTE applies the LTE predicate on the "responded_by" field.
func RespondedByLTE(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldLTE(FieldRespondedBy, v))
}

// RespondedByContains applies the Contains predicate on the "responded_by" field.
func RespondedByContains(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldContains(FieldRespondedBy, v))
}

// RespondedByHasPrefix applies the HasPrefix predicate on the "responded_by" field.
func RespondedByHasPrefix(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldHasPrefix(FieldRespondedBy, v))
}

// RespondedByHasSuffix applies the HasSuffix predicate on the "responded_by" field.
func RespondedByHasSuffix(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldHasSuffix(FieldRespondedBy, v))
}

// RespondedByIsNil applies the IsNil predicate on the "responded_by" field.
func RespondedByIsNil() predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldIsNull(FieldRespondedBy))
}

// RespondedByNotNil applies the NotNil predicate on the "responded_by" field.
func RespondedByNotNil() predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldNotNull(FieldRespondedBy))
}

// RespondedByEqualFold applies the EqualFold predicate on the "responded_by" field.
func RespondedByEqualFold(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldEqualFold(FieldRespondedBy, v))
}

// RespondedByContainsFold applies the ContainsFold predicate on the "responded_by" field.
func RespondedByContainsFold(v string) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.FieldContainsFold(FieldRespondedBy, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.TimeOffRequest {
	return predicate.TimeOffRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TimeOffRequest) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TimeOffRequest) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TimeOffRequest) predicate.TimeOffRequest {
	return predicate.TimeOffRequest(sql.NotPredicates(p))
}
