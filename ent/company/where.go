// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"crewpulse.io/crewpulse/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// PrimaryColor applies equality check predicate on the "primary_color" field. It's identical to PrimaryColorEQ.
func PrimaryColor(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldPrimaryColor, v))
}

// SecondaryColor applies equality check predicate on the "secondary_color" field. It's identical to SecondaryColorEQ.
func SecondaryColor(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSecondaryColor, v))
}

// LogoURL applies equality check predicate on the "logo_url" field. It's identical to LogoURLEQ.
func LogoURL(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldLogoURL, v))
}

// FooterMessage applies equality check predicate on the "footer_message" field. It's identical to FooterMessageEQ.
func FooterMessage(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldFooterMessage, v))
}

// BirthdayNotificationsEnabled applies equality check predicate on the "birthday_notifications_enabled" field. It's identical to BirthdayNotificationsEnabledEQ.
func BirthdayNotificationsEnabled(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotificationsEnabled, v))
}

// BirthdayNotifySelf applies equality check predicate on the "birthday_notify_self" field. It's identical to BirthdayNotifySelfEQ.
func BirthdayNotifySelf(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotifySelf, v))
}

// BirthdayNotifyManagers applies equality check predicate on the "birthday_notify_managers" field. It's identical to BirthdayNotifyManagersEQ.
func BirthdayNotifyManagers(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotifyManagers, v))
}

// BirthdayNotifyTeam applies equality check predicate on the "birthday_notify_team" field. It's identical to BirthdayNotifyTeamEQ.
func BirthdayNotifyTeam(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotifyTeam, v))
}

// BirthdayMessageTemplate applies equality check predicate on the "birthday_message_template" field. It's identical to BirthdayMessageTemplateEQ.
func BirthdayMessageTemplate(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayMessageTemplate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// PrimaryColorEQ applies the EQ predicate on the "primary_color" field.
func PrimaryColorEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldPrimaryColor, v))
}

// PrimaryColorNEQ applies the NEQ predicate on the "primary_color" field.
func PrimaryColorNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldPrimaryColor, v))
}

// PrimaryColorIn applies the In predicate on the "primary_color" field.
func PrimaryColorIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldPrimaryColor, vs...))
}

// PrimaryColorNotIn applies the NotIn predicate on the "primary_color" field.
func PrimaryColorNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldPrimaryColor, vs...))
}

// PrimaryColorGT applies the GT predicate on the "primary_color" field.
func PrimaryColorGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldPrimaryColor, v))
}

// PrimaryColorGTE applies the GTE predicate on the "primary_color" field.
func PrimaryColorGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldPrimaryColor, v))
}

// PrimaryColorLT applies the LT predicate on the "primary_color" field.
func PrimaryColorLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldPrimaryColor, v))
}

// PrimaryColorLTE applies the LTE predicate on the "primary_color" field.
func PrimaryColorLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldPrimaryColor, v))
}

// PrimaryColorContains applies the Contains predicate on the "primary_color" field.
func PrimaryColorContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldPrimaryColor, v))
}

// PrimaryColorHasPrefix applies the HasPrefix predicate on the "primary_color" field.
func PrimaryColorHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldPrimaryColor, v))
}

// PrimaryColorHasSuffix applies the HasSuffix predicate on the "primary_color" field.
func PrimaryColorHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldPrimaryColor, v))
}

// PrimaryColorEqualFold applies the EqualFold predicate on the "primary_color" field.
func PrimaryColorEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldPrimaryColor, v))
}

// PrimaryColorContainsFold applies the ContainsFold predicate on the "primary_color" field.
func PrimaryColorContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldPrimaryColor, v))
}

// SecondaryColorEQ applies the EQ predicate on the "secondary_color" field.
func SecondaryColorEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSecondaryColor, v))
}

// SecondaryColorNEQ applies the NEQ predicate on the "secondary_color" field.
func SecondaryColorNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldSecondaryColor, v))
}

// SecondaryColorIn applies the In predicate on the "secondary_color" field.
func SecondaryColorIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldSecondaryColor, vs...))
}

// SecondaryColorNotIn applies the NotIn predicate on the "secondary_color" field.
func SecondaryColorNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldSecondaryColor, vs...))
}

// SecondaryColorGT applies the GT predicate on the "secondary_color" field.
func SecondaryColorGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldSecondaryColor, v))
}

// SecondaryColorGTE applies the GTE predicate on the "secondary_color" field.
func SecondaryColorGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldSecondaryColor, v))
}

// SecondaryColorLT applies the LT predicate on the "secondary_color" field.
func SecondaryColorLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldSecondaryColor, v))
}

// SecondaryColorLTE applies the LTE predicate on the "secondary_color" field.
func SecondaryColorLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldSecondaryColor, v))
}

// SecondaryColorContains applies the Contains predicate on the "secondary_color" field.
func SecondaryColorContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldSecondaryColor, v))
}

// SecondaryColorHasPrefix applies the HasPrefix predicate on the "secondary_color" field.
func SecondaryColorHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldSecondaryColor, v))
}

// SecondaryColorHasSuffix applies the HasSuffix predicate on the "secondary_color" field.
func SecondaryColorHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldSecondaryColor, v))
}

// SecondaryColorEqualFold applies the EqualFold predicate on the "secondary_color" field.
func SecondaryColorEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldSecondaryColor, v))
}

// SecondaryColorContainsFold applies the ContainsFold predicate on the "secondary_color" field.
func SecondaryColorContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldSecondaryColor, v))
}

// LogoURLEQ applies the EQ predicate on the "logo_url" field.
func LogoURLEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldLogoURL, v))
}

// LogoURLNEQ applies the NEQ predicate on the "logo_url" field.
func LogoURLNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldLogoURL, v))
}

// LogoURLIn applies the In predicate on the "logo_url" field.
func LogoURLIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldLogoURL, vs...))
}

// LogoURLNotIn applies the NotIn predicate on the "logo_url" field.
func LogoURLNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldLogoURL, vs...))
}

// LogoURLGT applies the GT predicate on the "logo_url" field.
func LogoURLGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldLogoURL, v))
}

// LogoURLGTE applies the GTE predicate on the "logo_url" field.
func LogoURLGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldLogoURL, v))
}

// LogoURLLT applies the LT predicate on the "logo_url" field.
func LogoURLLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldLogoURL, v))
}

// LogoURLLTE applies the LTE predicate on the "logo_url" field.
func LogoURLLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldLogoURL, v))
}

// LogoURLContains applies the Contains predicate on the "logo_url" field.
func LogoURLContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldLogoURL, v))
}

// LogoURLHasPrefix applies the HasPrefix predicate on the "logo_url" field.
func LogoURLHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldLogoURL, v))
}

// LogoURLHasSuffix applies the HasSuffix predicate on the "logo_url" field.
func LogoURLHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldLogoURL, v))
}

// LogoURLIsNil applies the IsNil predicate on the "logo_url" field.
func LogoURLIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldLogoURL))
}

// LogoURLNotNil applies the NotNil predicate on the "logo_url" field.
func LogoURLNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldLogoURL))
}

// LogoURLEqualFold applies the EqualFold predicate on the "logo_url" field.
func LogoURLEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldLogoURL, v))
}

// LogoURLContainsFold applies the ContainsFold predicate on the "logo_url" field.
func LogoURLContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldLogoURL, v))
}

// FooterMessageEQ applies the EQ predicate on the "footer_message" field.
func FooterMessageEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldFooterMessage, v))
}

// FooterMessageNEQ applies the NEQ predicate on the "footer_message" field.
func FooterMessageNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldFooterMessage, v))
}

// FooterMessageIn applies the In predicate on the "footer_message" field.
func FooterMessageIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldFooterMessage, vs...))
}

// FooterMessageNotIn applies the NotIn predicate on the "footer_message" field.
func FooterMessageNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldFooterMessage, vs...))
}

// FooterMessageGT applies the GT predicate on the "footer_message" field.
func FooterMessageGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldFooterMessage, v))
}

// FooterMessageGTE applies the GTE predicate on the "footer_message" field.
func FooterMessageGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldFooterMessage, v))
}

// FooterMessageLT applies the LT predicate on the "footer_message" field.
func FooterMessageLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldFooterMessage, v))
}

// FooterMessageLTE applies the LTE predicate on the "footer_message" field.
func FooterMessageLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldFooterMessage, v))
}

// FooterMessageContains applies the Contains predicate on the "footer_message" field.
func FooterMessageContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldFooterMessage, v))
}

// FooterMessageHasPrefix applies the HasPrefix predicate on the "footer_message" field.
func FooterMessageHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldFooterMessage, v))
}

// FooterMessageHasSuffix applies the HasSuffix predicate on the "footer_message" field.
func FooterMessageHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldFooterMessage, v))
}

// FooterMessageIsNil applies the IsNil predicate on the "footer_message" field.
func FooterMessageIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldFooterMessage))
}

// FooterMessageNotNil applies the NotNil predicate on the "footer_message" field.
func FooterMessageNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldFooterMessage))
}

// FooterMessageEqualFold applies the EqualFold predicate on the "footer_message" field.
func FooterMessageEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldFooterMessage, v))
}

// FooterMessageContainsFold applies the ContainsFold predicate on the "footer_message" field.
func FooterMessageContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldFooterMessage, v))
}

// BirthdayNotificationsEnabledEQ applies the EQ predicate on the "birthday_notifications_enabled" field.
func BirthdayNotificationsEnabledEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotificationsEnabled, v))
}

// BirthdayNotificationsEnabledNEQ applies the NEQ predicate on the "birthday_notifications_enabled" field.
func BirthdayNotificationsEnabledNEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldBirthdayNotificationsEnabled, v))
}

// BirthdayNotifySelfEQ applies the EQ predicate on the "birthday_notify_self" field.
func BirthdayNotifySelfEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotifySelf, v))
}

// BirthdayNotifySelfNEQ applies the NEQ predicate on the "birthday_notify_self" field.
func BirthdayNotifySelfNEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldBirthdayNotifySelf, v))
}

// BirthdayNotifyManagersEQ applies the EQ predicate on the "birthday_notify_managers" field.
func BirthdayNotifyManagersEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotifyManagers, v))
}

// BirthdayNotifyManagersNEQ applies the NEQ predicate on the "birthday_notify_managers" field.
func BirthdayNotifyManagersNEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldBirthdayNotifyManagers, v))
}

// BirthdayNotifyTeamEQ applies the EQ predicate on the "birthday_notify_team" field.
func BirthdayNotifyTeamEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayNotifyTeam, v))
}

// BirthdayNotifyTeamNEQ applies the NEQ predicate on the "birthday_notify_team" field.
func BirthdayNotifyTeamNEQ(v bool) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldBirthdayNotifyTeam, v))
}

// BirthdayVisibilityEQ applies the EQ predicate on the "birthday_visibility" field.
func BirthdayVisibilityEQ(v BirthdayVisibility) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayVisibility, v))
}

// BirthdayVisibilityNEQ applies the NEQ predicate on the "birthday_visibility" field.
func BirthdayVisibilityNEQ(v BirthdayVisibility) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldBirthdayVisibility, v))
}

// BirthdayVisibilityIn applies the In predicate on the "birthday_visibility" field.
func BirthdayVisibilityIn(vs ...BirthdayVisibility) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldBirthdayVisibility, vs...))
}

// BirthdayVisibilityNotIn applies the NotIn predicate on the "birthday_visibility" field.
func BirthdayVisibilityNotIn(vs ...BirthdayVisibility) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldBirthdayVisibility, vs...))
}

// BirthdayMessageTemplateEQ applies the EQ predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateNEQ applies the NEQ predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateIn applies the In predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldBirthdayMessageTemplate, vs...))
}

// BirthdayMessageTemplateNotIn applies the NotIn predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldBirthdayMessageTemplate, vs...))
}

// BirthdayMessageTemplateGT applies the GT predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateGTE applies the GTE predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateLT applies the LT predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateLTE applies the LTE predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateContains applies the Contains predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateHasPrefix applies the HasPrefix predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateHasSuffix applies the HasSuffix predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateEqualFold applies the EqualFold predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldBirthdayMessageTemplate, v))
}

// BirthdayMessageTemplateContainsFold applies the ContainsFold predicate on the "birthday_message_template" field.
func BirthdayMessageTemplateContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldBirthdayMessageTemplate, v))
}

// HasUsers applies the HasEdge predicate on the "users" edge.
func HasUsers() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsersTable, UsersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsersWith applies the HasEdge predicate on the "users" edge with a given conditions (other predicates).
func HasUsersWith(preds ...predicate.User) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newUsersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTeams applies the HasEdge predicate on the "teams" edge.
func HasTeams() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TeamsTable, TeamsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamsWith applies the HasEdge predicate on the "teams" edge with a given conditions (other predicates).
func HasTeamsWith(preds ...predicate.Team) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newTeamsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEmailTemplates applies the HasEdge predicate on the "email_templates" edge.
func HasEmailTemplates() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EmailTemplatesTable, EmailTemplatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailTemplatesWith applies the HasEdge predicate on the "email_templates" edge with a given conditions (other predicates).
func HasEmailTemplatesWith(preds ...predicate.EmailTemplate) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newEmailTemplatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatRooms applies the HasEdge predicate on the "chat_rooms" edge.
func HasChatRooms() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatRoomsTable, ChatRoomsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatRoomsWith applies the HasEdge predicate on the "chat_rooms" edge with a given conditions (other predicates).
func HasChatRoomsWith(preds ...predicate.ChatRoom) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newChatRoomsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
