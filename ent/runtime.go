// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"crewpulse.io/crewpulse/ent/chatmessage"
	"crewpulse.io/crewpulse/ent/chatroom"
	"crewpulse.io/crewpulse/ent/company"
	"crewpulse.io/crewpulse/ent/emailtemplate"
	"crewpulse.io/crewpulse/ent/message"
	"crewpulse.io/crewpulse/ent/notification"
	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/pushsubscription"
	"crewpulse.io/crewpulse/ent/schema"
	"crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	"crewpulse.io/crewpulse/ent/task"
	"crewpulse.io/crewpulse/ent/team"
	"crewpulse.io/crewpulse/ent/timeoffrequest"
	"crewpulse.io/crewpulse/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageMixinFields0[0].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescBody is the schema descriptor for body field.
	chatmessageDescBody := chatmessageFields[2].Descriptor()
	// chatmessage.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	chatmessage.BodyValidator = func() func(string) error {
		validators := chatmessageDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	chatroomMixin := schema.ChatRoom{}.Mixin()
	chatroomMixinFields0 := chatroomMixin[0].Fields()
	_ = chatroomMixinFields0
	chatroomFields := schema.ChatRoom{}.Fields()
	_ = chatroomFields
	// chatroomDescCreatedAt is the schema descriptor for created_at field.
	chatroomDescCreatedAt := chatroomMixinFields0[0].Descriptor()
	// chatroom.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatroom.DefaultCreatedAt = chatroomDescCreatedAt.Default.(func() time.Time)
	// chatroomDescUpdatedAt is the schema descriptor for updated_at field.
	chatroomDescUpdatedAt := chatroomMixinFields0[1].Descriptor()
	// chatroom.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatroom.DefaultUpdatedAt = chatroomDescUpdatedAt.Default.(func() time.Time)
	// chatroom.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatroom.UpdateDefaultUpdatedAt = chatroomDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chatroomDescName is the schema descriptor for name field.
	chatroomDescName := chatroomFields[1].Descriptor()
	// chatroom.NameValidator is a validator for the "name" field. It is called by the builders before save.
	chatroom.NameValidator = func() func(string) error {
		validators := chatroomDescName.Validators
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
	// chatroomDescIsGeneral is the schema descriptor for is_general field.
	chatroomDescIsGeneral := chatroomFields[2].Descriptor()
	// chatroom.DefaultIsGeneral holds the default value on creation for the is_general field.
	chatroom.DefaultIsGeneral = chatroomDescIsGeneral.Default.(bool)
	companyMixin := schema.Company{}.Mixin()
	companyMixinFields0 := companyMixin[0].Fields()
	_ = companyMixinFields0
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyMixinFields0[0].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyMixinFields0[1].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = func() func(string) error {
		validators := companyDescName.Validators
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
	// companyDescPrimaryColor is the schema descriptor for primary_color field.
	companyDescPrimaryColor := companyFields[2].Descriptor()
	// company.DefaultPrimaryColor holds the default value on creation for the primary_color field.
	company.DefaultPrimaryColor = companyDescPrimaryColor.Default.(string)
	// companyDescSecondaryColor is the schema descriptor for secondary_color field.
	companyDescSecondaryColor := companyFields[3].Descriptor()
	// company.DefaultSecondaryColor holds the default value on creation for the secondary_color field.
	company.DefaultSecondaryColor = companyDescSecondaryColor.Default.(string)
	// companyDescFooterMessage is the schema descriptor for footer_message field.
	companyDescFooterMessage := companyFields[5].Descriptor()
	// company.FooterMessageValidator is a validator for the "footer_message" field. It is called by the builders before save.
	company.FooterMessageValidator = companyDescFooterMessage.Validators[0].(func(string) error)
	// companyDescBirthdayNotificationsEnabled is the schema descriptor for birthday_notifications_enabled field.
	companyDescBirthdayNotificationsEnabled := companyFields[6].Descriptor()
	// company.DefaultBirthdayNotificationsEnabled holds the default value on creation for the birthday_notifications_enabled field.
	company.DefaultBirthdayNotificationsEnabled = companyDescBirthdayNotificationsEnabled.Default.(bool)
	// companyDescBirthdayNotifySelf is the schema descriptor for birthday_notify_self field.
	companyDescBirthdayNotifySelf := companyFields[7].Descriptor()
	// company.DefaultBirthdayNotifySelf holds the default value on creation for the birthday_notify_self field.
	company.DefaultBirthdayNotifySelf = companyDescBirthdayNotifySelf.Default.(bool)
	// companyDescBirthdayNotifyManagers is the schema descriptor for birthday_notify_managers field.
	companyDescBirthdayNotifyManagers := companyFields[8].Descriptor()
	// company.DefaultBirthdayNotifyManagers holds the default value on creation for the birthday_notify_managers field.
	company.DefaultBirthdayNotifyManagers = companyDescBirthdayNotifyManagers.Default.(bool)
	// companyDescBirthdayNotifyTeam is the schema descriptor for birthday_notify_team field.
	companyDescBirthdayNotifyTeam := companyFields[9].Descriptor()
	// company.DefaultBirthdayNotifyTeam holds the default value on creation for the birthday_notify_team field.
	company.DefaultBirthdayNotifyTeam = companyDescBirthdayNotifyTeam.Default.(bool)
	// companyDescBirthdayMessageTemplate is the schema descriptor for birthday_message_template field.
	companyDescBirthdayMessageTemplate := companyFields[11].Descriptor()
	// company.DefaultBirthdayMessageTemplate holds the default value on creation for the birthday_message_template field.
	company.DefaultBirthdayMessageTemplate = companyDescBirthdayMessageTemplate.Default.(string)
	// company.BirthdayMessageTemplateValidator is a validator for the "birthday_message_template" field. It is called by the builders before save.
	company.BirthdayMessageTemplateValidator = companyDescBirthdayMessageTemplate.Validators[0].(func(string) error)
	emailtemplateMixin := schema.EmailTemplate{}.Mixin()
	emailtemplateMixinFields0 := emailtemplateMixin[0].Fields()
	_ = emailtemplateMixinFields0
	emailtemplateFields := schema.EmailTemplate{}.Fields()
	_ = emailtemplateFields
	// emailtemplateDescCreatedAt is the schema descriptor for created_at field.
	emailtemplateDescCreatedAt := emailtemplateMixinFields0[0].Descriptor()
	// emailtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailtemplate.DefaultCreatedAt = emailtemplateDescCreatedAt.Default.(func() time.Time)
	// emailtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	emailtemplateDescUpdatedAt := emailtemplateMixinFields0[1].Descriptor()
	// emailtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailtemplate.DefaultUpdatedAt = emailtemplateDescUpdatedAt.Default.(func() time.Time)
	// emailtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailtemplate.UpdateDefaultUpdatedAt = emailtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emailtemplateDescSubject is the schema descriptor for subject field.
	emailtemplateDescSubject := emailtemplateFields[2].Descriptor()
	// emailtemplate.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	emailtemplate.SubjectValidator = func() func(string) error {
		validators := emailtemplateDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescBody is the schema descriptor for body field.
	emailtemplateDescBody := emailtemplateFields[3].Descriptor()
	// emailtemplate.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	emailtemplate.BodyValidator = func() func(string) error {
		validators := emailtemplateDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescEnabled is the schema descriptor for enabled field.
	emailtemplateDescEnabled := emailtemplateFields[4].Descriptor()
	// emailtemplate.DefaultEnabled holds the default value on creation for the enabled field.
	emailtemplate.DefaultEnabled = emailtemplateDescEnabled.Default.(bool)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields0[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescBody is the schema descriptor for body field.
	messageDescBody := messageFields[1].Descriptor()
	// message.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	message.BodyValidator = func() func(string) error {
		validators := messageDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messageDescRead is the schema descriptor for read field.
	messageDescRead := messageFields[2].Descriptor()
	// message.DefaultRead holds the default value on creation for the read field.
	message.DefaultRead = messageDescRead.Default.(bool)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	notificationpreferenceMixin := schema.NotificationPreference{}.Mixin()
	notificationpreferenceMixinFields0 := notificationpreferenceMixin[0].Fields()
	_ = notificationpreferenceMixinFields0
	notificationpreferenceFields := schema.NotificationPreference{}.Fields()
	_ = notificationpreferenceFields
	// notificationpreferenceDescCreatedAt is the schema descriptor for created_at field.
	notificationpreferenceDescCreatedAt := notificationpreferenceMixinFields0[0].Descriptor()
	// notificationpreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpreference.DefaultCreatedAt = notificationpreferenceDescCreatedAt.Default.(func() time.Time)
	// notificationpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	notificationpreferenceDescUpdatedAt := notificationpreferenceMixinFields0[1].Descriptor()
	// notificationpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpreference.DefaultUpdatedAt = notificationpreferenceDescUpdatedAt.Default.(func() time.Time)
	// notificationpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpreference.UpdateDefaultUpdatedAt = notificationpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationpreferenceDescEmailOnTaskAssigned is the schema descriptor for email_on_task_assigned field.
	notificationpreferenceDescEmailOnTaskAssigned := notificationpreferenceFields[1].Descriptor()
	// notificationpreference.DefaultEmailOnTaskAssigned holds the default value on creation for the email_on_task_assigned field.
	notificationpreference.DefaultEmailOnTaskAssigned = notificationpreferenceDescEmailOnTaskAssigned.Default.(bool)
	// notificationpreferenceDescEmailOnTaskCompleted is the schema descriptor for email_on_task_completed field.
	notificationpreferenceDescEmailOnTaskCompleted := notificationpreferenceFields[2].Descriptor()
	// notificationpreference.DefaultEmailOnTaskCompleted holds the default value on creation for the email_on_task_completed field.
	notificationpreference.DefaultEmailOnTaskCompleted = notificationpreferenceDescEmailOnTaskCompleted.Default.(bool)
	// notificationpreferenceDescEmailOnTaskComment is the schema descriptor for email_on_task_comment field.
	notificationpreferenceDescEmailOnTaskComment := notificationpreferenceFields[3].Descriptor()
	// notificationpreference.DefaultEmailOnTaskComment holds the default value on creation for the email_on_task_comment field.
	notificationpreference.DefaultEmailOnTaskComment = notificationpreferenceDescEmailOnTaskComment.Default.(bool)
	// notificationpreferenceDescEmailOnMention is the schema descriptor for email_on_mention field.
	notificationpreferenceDescEmailOnMention := notificationpreferenceFields[4].Descriptor()
	// notificationpreference.DefaultEmailOnMention holds the default value on creation for the email_on_mention field.
	notificationpreference.DefaultEmailOnMention = notificationpreferenceDescEmailOnMention.Default.(bool)
	// notificationpreferenceDescEmailOnDeadline is the schema descriptor for email_on_deadline field.
	notificationpreferenceDescEmailOnDeadline := notificationpreferenceFields[5].Descriptor()
	// notificationpreference.DefaultEmailOnDeadline holds the default value on creation for the email_on_deadline field.
	notificationpreference.DefaultEmailOnDeadline = notificationpreferenceDescEmailOnDeadline.Default.(bool)
	// notificationpreferenceDescEmailOnShiftAssigned is the schema descriptor for email_on_shift_assigned field.
	notificationpreferenceDescEmailOnShiftAssigned := notificationpreferenceFields[6].Descriptor()
	// notificationpreference.DefaultEmailOnShiftAssigned holds the default value on creation for the email_on_shift_assigned field.
	notificationpreference.DefaultEmailOnShiftAssigned = notificationpreferenceDescEmailOnShiftAssigned.Default.(bool)
	// notificationpreferenceDescEmailOnShiftSwap is the schema descriptor for email_on_shift_swap field.
	notificationpreferenceDescEmailOnShiftSwap := notificationpreferenceFields[7].Descriptor()
	// notificationpreference.DefaultEmailOnShiftSwap holds the default value on creation for the email_on_shift_swap field.
	notificationpreference.DefaultEmailOnShiftSwap = notificationpreferenceDescEmailOnShiftSwap.Default.(bool)
	// notificationpreferenceDescEmailOnTimeOff is the schema descriptor for email_on_time_off field.
	notificationpreferenceDescEmailOnTimeOff := notificationpreferenceFields[8].Descriptor()
	// notificationpreference.DefaultEmailOnTimeOff holds the default value on creation for the email_on_time_off field.
	notificationpreference.DefaultEmailOnTimeOff = notificationpreferenceDescEmailOnTimeOff.Default.(bool)
	// notificationpreferenceDescEmailOnMessage is the schema descriptor for email_on_message field.
	notificationpreferenceDescEmailOnMessage := notificationpreferenceFields[9].Descriptor()
	// notificationpreference.DefaultEmailOnMessage holds the default value on creation for the email_on_message field.
	notificationpreference.DefaultEmailOnMessage = notificationpreferenceDescEmailOnMessage.Default.(bool)
	// notificationpreferenceDescPushOnTaskAssigned is the schema descriptor for push_on_task_assigned field.
	notificationpreferenceDescPushOnTaskAssigned := notificationpreferenceFields[10].Descriptor()
	// notificationpreference.DefaultPushOnTaskAssigned holds the default value on creation for the push_on_task_assigned field.
	notificationpreference.DefaultPushOnTaskAssigned = notificationpreferenceDescPushOnTaskAssigned.Default.(bool)
	// notificationpreferenceDescPushOnTaskComment is the schema descriptor for push_on_task_comment field.
	notificationpreferenceDescPushOnTaskComment := notificationpreferenceFields[11].Descriptor()
	// notificationpreference.DefaultPushOnTaskComment holds the default value on creation for the push_on_task_comment field.
	notificationpreference.DefaultPushOnTaskComment = notificationpreferenceDescPushOnTaskComment.Default.(bool)
	// notificationpreferenceDescPushOnMention is the schema descriptor for push_on_mention field.
	notificationpreferenceDescPushOnMention := notificationpreferenceFields[12].Descriptor()
	// notificationpreference.DefaultPushOnMention holds the default value on creation for the push_on_mention field.
	notificationpreference.DefaultPushOnMention = notificationpreferenceDescPushOnMention.Default.(bool)
	// notificationpreferenceDescPushOnMessage is the schema descriptor for push_on_message field.
	notificationpreferenceDescPushOnMessage := notificationpreferenceFields[13].Descriptor()
	// notificationpreference.DefaultPushOnMessage holds the default value on creation for the push_on_message field.
	notificationpreference.DefaultPushOnMessage = notificationpreferenceDescPushOnMessage.Default.(bool)
	// notificationpreferenceDescPushOnShiftSwap is the schema descriptor for push_on_shift_swap field.
	notificationpreferenceDescPushOnShiftSwap := notificationpreferenceFields[14].Descriptor()
	// notificationpreference.DefaultPushOnShiftSwap holds the default value on creation for the push_on_shift_swap field.
	notificationpreference.DefaultPushOnShiftSwap = notificationpreferenceDescPushOnShiftSwap.Default.(bool)
	// notificationpreferenceDescPushOnTimeOff is the schema descriptor for push_on_time_off field.
	notificationpreferenceDescPushOnTimeOff := notificationpreferenceFields[15].Descriptor()
	// notificationpreference.DefaultPushOnTimeOff holds the default value on creation for the push_on_time_off field.
	notificationpreference.DefaultPushOnTimeOff = notificationpreferenceDescPushOnTimeOff.Default.(bool)
	// notificationpreferenceDescPushEnabled is the schema descriptor for push_enabled field.
	notificationpreferenceDescPushEnabled := notificationpreferenceFields[16].Descriptor()
	// notificationpreference.DefaultPushEnabled holds the default value on creation for the push_enabled field.
	notificationpreference.DefaultPushEnabled = notificationpreferenceDescPushEnabled.Default.(bool)
	// notificationpreferenceDescDailyDigest is the schema descriptor for daily_digest field.
	notificationpreferenceDescDailyDigest := notificationpreferenceFields[17].Descriptor()
	// notificationpreference.DefaultDailyDigest holds the default value on creation for the daily_digest field.
	notificationpreference.DefaultDailyDigest = notificationpreferenceDescDailyDigest.Default.(bool)
	// notificationpreferenceDescWeeklyDigest is the schema descriptor for weekly_digest field.
	notificationpreferenceDescWeeklyDigest := notificationpreferenceFields[18].Descriptor()
	// notificationpreference.DefaultWeeklyDigest holds the default value on creation for the weekly_digest field.
	notificationpreference.DefaultWeeklyDigest = notificationpreferenceDescWeeklyDigest.Default.(bool)
	// notificationpreferenceDescMonthlyDigest is the schema descriptor for monthly_digest field.
	notificationpreferenceDescMonthlyDigest := notificationpreferenceFields[19].Descriptor()
	// notificationpreference.DefaultMonthlyDigest holds the default value on creation for the monthly_digest field.
	notificationpreference.DefaultMonthlyDigest = notificationpreferenceDescMonthlyDigest.Default.(bool)
	// notificationpreferenceDescDigestTime is the schema descriptor for digest_time field.
	notificationpreferenceDescDigestTime := notificationpreferenceFields[20].Descriptor()
	// notificationpreference.DefaultDigestTime holds the default value on creation for the digest_time field.
	notificationpreference.DefaultDigestTime = notificationpreferenceDescDigestTime.Default.(string)
	// notificationpreference.DigestTimeValidator is a validator for the "digest_time" field. It is called by the builders before save.
	notificationpreference.DigestTimeValidator = notificationpreferenceDescDigestTime.Validators[0].(func(string) error)
	// notificationpreferenceDescDigestDayOfWeek is the schema descriptor for digest_day_of_week field.
	notificationpreferenceDescDigestDayOfWeek := notificationpreferenceFields[21].Descriptor()
	// notificationpreference.DefaultDigestDayOfWeek holds the default value on creation for the digest_day_of_week field.
	notificationpreference.DefaultDigestDayOfWeek = notificationpreferenceDescDigestDayOfWeek.Default.(int)
	// notificationpreference.DigestDayOfWeekValidator is a validator for the "digest_day_of_week" field. It is called by the builders before save.
	notificationpreference.DigestDayOfWeekValidator = func() func(int) error {
		validators := notificationpreferenceDescDigestDayOfWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(digest_day_of_week int) error {
			for _, fn := range fns {
				if err := fn(digest_day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationpreferenceDescDigestDayOfMonth is the schema descriptor for digest_day_of_month field.
	notificationpreferenceDescDigestDayOfMonth := notificationpreferenceFields[22].Descriptor()
	// notificationpreference.DefaultDigestDayOfMonth holds the default value on creation for the digest_day_of_month field.
	notificationpreference.DefaultDigestDayOfMonth = notificationpreferenceDescDigestDayOfMonth.Default.(int)
	// notificationpreference.DigestDayOfMonthValidator is a validator for the "digest_day_of_month" field. It is called by the builders before save.
	notificationpreference.DigestDayOfMonthValidator = func() func(int) error {
		validators := notificationpreferenceDescDigestDayOfMonth.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(digest_day_of_month int) error {
			for _, fn := range fns {
				if err := fn(digest_day_of_month); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	pushsubscriptionMixin := schema.PushSubscription{}.Mixin()
	pushsubscriptionMixinFields0 := pushsubscriptionMixin[0].Fields()
	_ = pushsubscriptionMixinFields0
	pushsubscriptionFields := schema.PushSubscription{}.Fields()
	_ = pushsubscriptionFields
	// pushsubscriptionDescCreatedAt is the schema descriptor for created_at field.
	pushsubscriptionDescCreatedAt := pushsubscriptionMixinFields0[0].Descriptor()
	// pushsubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	pushsubscription.DefaultCreatedAt = pushsubscriptionDescCreatedAt.Default.(func() time.Time)
	// pushsubscriptionDescEndpoint is the schema descriptor for endpoint field.
	pushsubscriptionDescEndpoint := pushsubscriptionFields[1].Descriptor()
	// pushsubscription.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	pushsubscription.EndpointValidator = func() func(string) error {
		validators := pushsubscriptionDescEndpoint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(endpoint string) error {
			for _, fn := range fns {
				if err := fn(endpoint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pushsubscriptionDescP256dh is the schema descriptor for p256dh field.
	pushsubscriptionDescP256dh := pushsubscriptionFields[2].Descriptor()
	// pushsubscription.P256dhValidator is a validator for the "p256dh" field. It is called by the builders before save.
	pushsubscription.P256dhValidator = pushsubscriptionDescP256dh.Validators[0].(func(string) error)
	// pushsubscriptionDescAuth is the schema descriptor for auth field.
	pushsubscriptionDescAuth := pushsubscriptionFields[3].Descriptor()
	// pushsubscription.AuthValidator is a validator for the "auth" field. It is called by the builders before save.
	pushsubscription.AuthValidator = pushsubscriptionDescAuth.Validators[0].(func(string) error)
	// pushsubscriptionDescUserAgent is the schema descriptor for user_agent field.
	pushsubscriptionDescUserAgent := pushsubscriptionFields[4].Descriptor()
	// pushsubscription.UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	pushsubscription.UserAgentValidator = pushsubscriptionDescUserAgent.Validators[0].(func(string) error)
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
	// shiftDescPosition is the schema descriptor for position field.
	shiftDescPosition := shiftFields[3].Descriptor()
	// shift.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	shift.PositionValidator = shiftDescPosition.Validators[0].(func(string) error)
	shiftswaprequestMixin := schema.ShiftSwapRequest{}.Mixin()
	shiftswaprequestMixinFields0 := shiftswaprequestMixin[0].Fields()
	_ = shiftswaprequestMixinFields0
	shiftswaprequestFields := schema.ShiftSwapRequest{}.Fields()
	_ = shiftswaprequestFields
	// shiftswaprequestDescCreatedAt is the schema descriptor for created_at field.
	shiftswaprequestDescCreatedAt := shiftswaprequestMixinFields0[0].Descriptor()
	// shiftswaprequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	shiftswaprequest.DefaultCreatedAt = shiftswaprequestDescCreatedAt.Default.(func() time.Time)
	// shiftswaprequestDescUpdatedAt is the schema descriptor for updated_at field.
	shiftswaprequestDescUpdatedAt := shiftswaprequestMixinFields0[1].Descriptor()
	// shiftswaprequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shiftswaprequest.DefaultUpdatedAt = shiftswaprequestDescUpdatedAt.Default.(func() time.Time)
	// shiftswaprequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shiftswaprequest.UpdateDefaultUpdatedAt = shiftswaprequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shiftswaprequestDescReason is the schema descriptor for reason field.
	shiftswaprequestDescReason := shiftswaprequestFields[2].Descriptor()
	// shiftswaprequest.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	shiftswaprequest.ReasonValidator = shiftswaprequestDescReason.Validators[0].(func(string) error)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields0[0].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskMixinFields0[1].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[1].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = func() func(string) error {
		validators := taskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	teamMixin := schema.Team{}.Mixin()
	teamMixinFields0 := teamMixin[0].Fields()
	_ = teamMixinFields0
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamMixinFields0[0].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamMixinFields0[1].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[1].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = func() func(string) error {
		validators := teamDescName.Validators
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
	timeoffrequestMixin := schema.TimeOffRequest{}.Mixin()
	timeoffrequestMixinFields0 := timeoffrequestMixin[0].Fields()
	_ = timeoffrequestMixinFields0
	timeoffrequestFields := schema.TimeOffRequest{}.Fields()
	_ = timeoffrequestFields
	// timeoffrequestDescCreatedAt is the schema descriptor for created_at field.
	timeoffrequestDescCreatedAt := timeoffrequestMixinFields0[0].Descriptor()
	// timeoffrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeoffrequest.DefaultCreatedAt = timeoffrequestDescCreatedAt.Default.(func() time.Time)
	// timeoffrequestDescUpdatedAt is the schema descriptor for updated_at field.
	timeoffrequestDescUpdatedAt := timeoffrequestMixinFields0[1].Descriptor()
	// timeoffrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeoffrequest.DefaultUpdatedAt = timeoffrequestDescUpdatedAt.Default.(func() time.Time)
	// timeoffrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeoffrequest.UpdateDefaultUpdatedAt = timeoffrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeoffrequestDescReason is the schema descriptor for reason field.
	timeoffrequestDescReason := timeoffrequestFields[4].Descriptor()
	// timeoffrequest.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	timeoffrequest.ReasonValidator = timeoffrequestDescReason.Validators[0].(func(string) error)
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
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = func() func(string) error {
		validators := userDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[7].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
