// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sender_id", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 8192},
		{Name: "chat_room_messages", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_rooms_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{ChatRoomsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ChatRoomsColumns holds the columns for the "chat_rooms" table.
	ChatRoomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "is_general", Type: field.TypeBool, Default: false},
		{Name: "company_chat_rooms", Type: field.TypeString},
	}
	// ChatRoomsTable holds the schema information for the "chat_rooms" table.
	ChatRoomsTable = &schema.Table{
		Name:       "chat_rooms",
		Columns:    ChatRoomsColumns,
		PrimaryKey: []*schema.Column{ChatRoomsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_rooms_companies_chat_rooms",
				Columns:    []*schema.Column{ChatRoomsColumns[5]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatroom_is_general_company_chat_rooms",
				Unique:  false,
				Columns: []*schema.Column{ChatRoomsColumns[4], ChatRoomsColumns[5]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "primary_color", Type: field.TypeString, Default: "#3b82f6"},
		{Name: "secondary_color", Type: field.TypeString, Default: "#8b5cf6"},
		{Name: "logo_url", Type: field.TypeString, Nullable: true},
		{Name: "footer_message", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "birthday_notifications_enabled", Type: field.TypeBool, Default: true},
		{Name: "birthday_notify_self", Type: field.TypeBool, Default: true},
		{Name: "birthday_notify_managers", Type: field.TypeBool, Default: true},
		{Name: "birthday_notify_team", Type: field.TypeBool, Default: false},
		{Name: "birthday_visibility", Type: field.TypeEnum, Enums: []string{"PUBLIC", "PRIVATE"}, Default: "PRIVATE"},
		{Name: "birthday_message_template", Type: field.TypeString, Size: 1024, Default: "Happy birthday, {{name}}! 🎉"},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_name",
				Unique:  true,
				Columns: []*schema.Column{CompaniesColumns[3]},
			},
		},
	}
	// EmailTemplatesColumns holds the columns for the "email_templates" table.
	EmailTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"WELCOME", "PASSWORD_RESET", "TEAM_INVITE", "NOTIFICATION"}},
		{Name: "subject", Type: field.TypeString, Size: 512},
		{Name: "body", Type: field.TypeString, Size: 8192},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "company_email_templates", Type: field.TypeString},
	}
	// EmailTemplatesTable holds the schema information for the "email_templates" table.
	EmailTemplatesTable = &schema.Table{
		Name:       "email_templates",
		Columns:    EmailTemplatesColumns,
		PrimaryKey: []*schema.Column{EmailTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_templates_companies_email_templates",
				Columns:    []*schema.Column{EmailTemplatesColumns[7]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "emailtemplate_type_company_email_templates",
				Unique:  true,
				Columns: []*schema.Column{EmailTemplatesColumns[3], EmailTemplatesColumns[7]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "body", Type: field.TypeString, Size: 8192},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "user_sent_messages", Type: field.TypeString},
		{Name: "user_received_messages", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_users_sent_messages",
				Columns:    []*schema.Column{MessagesColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "messages_users_received_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_read_user_received_messages",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[5]},
			},
			{
				Name:    "message_created_at_user_received_messages",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"MESSAGE", "TASK_ASSIGNED", "TASK_COMPLETED", "TASK_COMMENT", "SHIFT_ASSIGNED", "SHIFT_SWAP", "TIME_OFF", "MENTION", "DEADLINE", "BIRTHDAY", "REPORT", "SYSTEM", "CHAT"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "related_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_notifications", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[6], NotificationsColumns[8]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[8]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// NotificationPreferencesColumns holds the columns for the "notification_preferences" table.
	NotificationPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email_on_task_assigned", Type: field.TypeBool, Default: true},
		{Name: "email_on_task_completed", Type: field.TypeBool, Default: true},
		{Name: "email_on_task_comment", Type: field.TypeBool, Default: true},
		{Name: "email_on_mention", Type: field.TypeBool, Default: true},
		{Name: "email_on_deadline", Type: field.TypeBool, Default: true},
		{Name: "email_on_shift_assigned", Type: field.TypeBool, Default: true},
		{Name: "email_on_shift_swap", Type: field.TypeBool, Default: true},
		{Name: "email_on_time_off", Type: field.TypeBool, Default: true},
		{Name: "email_on_message", Type: field.TypeBool, Default: true},
		{Name: "push_on_task_assigned", Type: field.TypeBool, Default: true},
		{Name: "push_on_task_comment", Type: field.TypeBool, Default: true},
		{Name: "push_on_mention", Type: field.TypeBool, Default: true},
		{Name: "push_on_message", Type: field.TypeBool, Default: true},
		{Name: "push_on_shift_swap", Type: field.TypeBool, Default: true},
		{Name: "push_on_time_off", Type: field.TypeBool, Default: true},
		{Name: "push_enabled", Type: field.TypeBool, Default: true},
		{Name: "daily_digest", Type: field.TypeBool, Default: false},
		{Name: "weekly_digest", Type: field.TypeBool, Default: false},
		{Name: "monthly_digest", Type: field.TypeBool, Default: false},
		{Name: "digest_time", Type: field.TypeString, Size: 5, Default: "08:00"},
		{Name: "digest_day_of_week", Type: field.TypeInt, Default: 1},
		{Name: "digest_day_of_month", Type: field.TypeInt, Default: 1},
		{Name: "user_preference", Type: field.TypeString, Unique: true},
	}
	// NotificationPreferencesTable holds the schema information for the "notification_preferences" table.
	NotificationPreferencesTable = &schema.Table{
		Name:       "notification_preferences",
		Columns:    NotificationPreferencesColumns,
		PrimaryKey: []*schema.Column{NotificationPreferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notification_preferences_users_preference",
				Columns:    []*schema.Column{NotificationPreferencesColumns[25]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PushSubscriptionsColumns holds the columns for the "push_subscriptions" table.
	PushSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "endpoint", Type: field.TypeString, Size: 2048},
		{Name: "p256dh", Type: field.TypeString},
		{Name: "auth", Type: field.TypeString},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "user_push_subscriptions", Type: field.TypeString},
	}
	// PushSubscriptionsTable holds the schema information for the "push_subscriptions" table.
	PushSubscriptionsTable = &schema.Table{
		Name:       "push_subscriptions",
		Columns:    PushSubscriptionsColumns,
		PrimaryKey: []*schema.Column{PushSubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "push_subscriptions_users_push_subscriptions",
				Columns:    []*schema.Column{PushSubscriptionsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pushsubscription_endpoint_user_push_subscriptions",
				Unique:  true,
				Columns: []*schema.Column{PushSubscriptionsColumns[2], PushSubscriptionsColumns[6]},
			},
		},
	}
	// ShiftsColumns holds the columns for the "shifts" table.
	ShiftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime},
		{Name: "position", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "user_shifts", Type: field.TypeString},
	}
	// ShiftsTable holds the schema information for the "shifts" table.
	ShiftsTable = &schema.Table{
		Name:       "shifts",
		Columns:    ShiftsColumns,
		PrimaryKey: []*schema.Column{ShiftsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shifts_users_shifts",
				Columns:    []*schema.Column{ShiftsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "shift_starts_at_user_shifts",
				Unique:  false,
				Columns: []*schema.Column{ShiftsColumns[3], ShiftsColumns[6]},
			},
		},
	}
	// ShiftSwapRequestsColumns holds the columns for the "shift_swap_requests" table.
	ShiftSwapRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED", "CANCELLED"}, Default: "PENDING"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "responded_by", Type: field.TypeString, Nullable: true},
		{Name: "shift_swap_requests", Type: field.TypeString},
		{Name: "user_swap_requests", Type: field.TypeString},
		{Name: "user_swap_targets", Type: field.TypeString, Nullable: true},
	}
	// ShiftSwapRequestsTable holds the schema information for the "shift_swap_requests" table.
	ShiftSwapRequestsTable = &schema.Table{
		Name:       "shift_swap_requests",
		Columns:    ShiftSwapRequestsColumns,
		PrimaryKey: []*schema.Column{ShiftSwapRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shift_swap_requests_shifts_swap_requests",
				Columns:    []*schema.Column{ShiftSwapRequestsColumns[6]},
				RefColumns: []*schema.Column{ShiftsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "shift_swap_requests_users_swap_requests",
				Columns:    []*schema.Column{ShiftSwapRequestsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "shift_swap_requests_users_swap_targets",
				Columns:    []*schema.Column{ShiftSwapRequestsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "shiftswaprequest_created_at_user_swap_requests",
				Unique:  false,
				Columns: []*schema.Column{ShiftSwapRequestsColumns[1], ShiftSwapRequestsColumns[7]},
			},
			{
				Name:    "shiftswaprequest_created_at_user_swap_targets",
				Unique:  false,
				Columns: []*schema.Column{ShiftSwapRequestsColumns[1], ShiftSwapRequestsColumns[8]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 512},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"TODO", "IN_PROGRESS", "COMPLETED"}, Default: "TODO"},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "user_created_tasks", Type: field.TypeString},
		{Name: "user_assigned_tasks", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_users_created_tasks",
				Columns:    []*schema.Column{TasksColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_users_assigned_tasks",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_created_at_user_assigned_tasks",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[7]},
			},
			{
				Name:    "task_created_at_user_created_tasks",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[6]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "company_teams", Type: field.TypeString},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teams_companies_teams",
				Columns:    []*schema.Column{TeamsColumns[4]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "team_name_company_teams",
				Unique:  true,
				Columns: []*schema.Column{TeamsColumns[3], TeamsColumns[4]},
			},
		},
	}
	// TimeOffRequestsColumns holds the columns for the "time_off_requests" table.
	TimeOffRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "starts_on", Type: field.TypeTime},
		{Name: "ends_on", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED", "CANCELLED"}, Default: "PENDING"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "responded_by", Type: field.TypeString, Nullable: true},
		{Name: "user_time_off_requests", Type: field.TypeString},
	}
	// TimeOffRequestsTable holds the schema information for the "time_off_requests" table.
	TimeOffRequestsTable = &schema.Table{
		Name:       "time_off_requests",
		Columns:    TimeOffRequestsColumns,
		PrimaryKey: []*schema.Column{TimeOffRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "time_off_requests_users_time_off_requests",
				Columns:    []*schema.Column{TimeOffRequestsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timeoffrequest_created_at_user_time_off_requests",
				Unique:  false,
				Columns: []*schema.Column{TimeOffRequestsColumns[1], TimeOffRequestsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "first_name", Type: field.TypeString, Size: 255},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "MANAGER", "EMPLOYEE"}, Default: "EMPLOYEE"},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "company_users", Type: field.TypeString},
		{Name: "team_members", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_companies_users",
				Columns:    []*schema.Column{UsersColumns[11]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "users_teams_members",
				Columns:    []*schema.Column{UsersColumns[12]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ChatRoomsTable,
		CompaniesTable,
		EmailTemplatesTable,
		MessagesTable,
		NotificationsTable,
		NotificationPreferencesTable,
		PushSubscriptionsTable,
		ShiftsTable,
		ShiftSwapRequestsTable,
		TasksTable,
		TeamsTable,
		TimeOffRequestsTable,
		UsersTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatRoomsTable
	ChatRoomsTable.ForeignKeys[0].RefTable = CompaniesTable
	EmailTemplatesTable.ForeignKeys[0].RefTable = CompaniesTable
	MessagesTable.ForeignKeys[0].RefTable = UsersTable
	MessagesTable.ForeignKeys[1].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	NotificationPreferencesTable.ForeignKeys[0].RefTable = UsersTable
	PushSubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
	ShiftsTable.ForeignKeys[0].RefTable = UsersTable
	ShiftSwapRequestsTable.ForeignKeys[0].RefTable = ShiftsTable
	ShiftSwapRequestsTable.ForeignKeys[1].RefTable = UsersTable
	ShiftSwapRequestsTable.ForeignKeys[2].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[1].RefTable = UsersTable
	TeamsTable.ForeignKeys[0].RefTable = CompaniesTable
	TimeOffRequestsTable.ForeignKeys[0].RefTable = UsersTable
	UsersTable.ForeignKeys[0].RefTable = CompaniesTable
	UsersTable.ForeignKeys[1].RefTable = TeamsTable
}
