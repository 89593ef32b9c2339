// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AllocationsColumns holds the columns for the "allocations" table.
	AllocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "instrument", Type: field.TypeString, Size: 255},
		{Name: "group_allocations", Type: field.TypeInt},
	}
	// AllocationsTable holds the schema information for the "allocations" table.
	AllocationsTable = &schema.Table{
		Name:       "allocations",
		Columns:    AllocationsColumns,
		PrimaryKey: []*schema.Column{AllocationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "allocations_groups_allocations",
				Columns:    []*schema.Column{AllocationsColumns[4]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ClassificationsColumns holds the columns for the "classifications" table.
	ClassificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "obj_id", Type: field.TypeString, Size: 255},
		{Name: "classification", Type: field.TypeString, Size: 255},
	}
	// ClassificationsTable holds the schema information for the "classifications" table.
	ClassificationsTable = &schema.Table{
		Name:       "classifications",
		Columns:    ClassificationsColumns,
		PrimaryKey: []*schema.Column{ClassificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "classification_obj_id",
				Unique:  false,
				Columns: []*schema.Column{ClassificationsColumns[2]},
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "obj_id", Type: field.TypeString, Size: 255},
		{Name: "text", Type: field.TypeString, Size: 4096},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comment_obj_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[2]},
			},
		},
	}
	// FacilityTransactionsColumns holds the columns for the "facility_transactions" table.
	FacilityTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "initiator", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "followup_request_transactions", Type: field.TypeInt},
	}
	// FacilityTransactionsTable holds the schema information for the "facility_transactions" table.
	FacilityTransactionsTable = &schema.Table{
		Name:       "facility_transactions",
		Columns:    FacilityTransactionsColumns,
		PrimaryKey: []*schema.Column{FacilityTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "facility_transactions_followup_requests_transactions",
				Columns:    []*schema.Column{FacilityTransactionsColumns[3]},
				RefColumns: []*schema.Column{FollowupRequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// FollowupRequestsColumns holds the columns for the "followup_requests" table.
	FollowupRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "obj_id", Type: field.TypeString, Size: 255},
		{Name: "status", Type: field.TypeString, Size: 255, Default: "pending submission"},
		{Name: "allocation_followup_requests", Type: field.TypeInt},
		{Name: "followup_request_requester", Type: field.TypeInt},
	}
	// FollowupRequestsTable holds the schema information for the "followup_requests" table.
	FollowupRequestsTable = &schema.Table{
		Name:       "followup_requests",
		Columns:    FollowupRequestsColumns,
		PrimaryKey: []*schema.Column{FollowupRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "followup_requests_allocations_followup_requests",
				Columns:    []*schema.Column{FollowupRequestsColumns[5]},
				RefColumns: []*schema.Column{AllocationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "followup_requests_users_requester",
				Columns:    []*schema.Column{FollowupRequestsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "followuprequest_obj_id",
				Unique:  false,
				Columns: []*schema.Column{FollowupRequestsColumns[3]},
			},
		},
	}
	// GcnNoticesColumns holds the columns for the "gcn_notices" table.
	GcnNoticesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dateobs", Type: field.TypeTime},
		{Name: "notice_type", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// GcnNoticesTable holds the schema information for the "gcn_notices" table.
	GcnNoticesTable = &schema.Table{
		Name:       "gcn_notices",
		Columns:    GcnNoticesColumns,
		PrimaryKey: []*schema.Column{GcnNoticesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gcnnotice_dateobs",
				Unique:  false,
				Columns: []*schema.Column{GcnNoticesColumns[2]},
			},
		},
	}
	// GcnPropertiesColumns holds the columns for the "gcn_properties" table.
	GcnPropertiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dateobs", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// GcnPropertiesTable holds the schema information for the "gcn_properties" table.
	GcnPropertiesTable = &schema.Table{
		Name:       "gcn_properties",
		Columns:    GcnPropertiesColumns,
		PrimaryKey: []*schema.Column{GcnPropertiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gcnproperty_dateobs",
				Unique:  false,
				Columns: []*schema.Column{GcnPropertiesColumns[2]},
			},
		},
	}
	// GcnTagsColumns holds the columns for the "gcn_tags" table.
	GcnTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dateobs", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 255},
	}
	// GcnTagsTable holds the schema information for the "gcn_tags" table.
	GcnTagsTable = &schema.Table{
		Name:       "gcn_tags",
		Columns:    GcnTagsColumns,
		PrimaryKey: []*schema.Column{GcnTagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gcntag_dateobs_text",
				Unique:  true,
				Columns: []*schema.Column{GcnTagsColumns[2], GcnTagsColumns[3]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_name",
				Unique:  true,
				Columns: []*schema.Column{GroupsColumns[3]},
			},
		},
	}
	// GroupAdmissionRequestsColumns holds the columns for the "group_admission_requests" table.
	GroupAdmissionRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Size: 64, Default: "pending"},
		{Name: "group_admission_request_group", Type: field.TypeInt},
		{Name: "group_admission_request_applicant", Type: field.TypeInt},
	}
	// GroupAdmissionRequestsTable holds the schema information for the "group_admission_requests" table.
	GroupAdmissionRequestsTable = &schema.Table{
		Name:       "group_admission_requests",
		Columns:    GroupAdmissionRequestsColumns,
		PrimaryKey: []*schema.Column{GroupAdmissionRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_admission_requests_groups_group",
				Columns:    []*schema.Column{GroupAdmissionRequestsColumns[4]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "group_admission_requests_users_applicant",
				Columns:    []*schema.Column{GroupAdmissionRequestsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ListingsColumns holds the columns for the "listings" table.
	ListingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "obj_id", Type: field.TypeString, Size: 255},
		{Name: "list_name", Type: field.TypeString, Size: 255, Default: "favorites"},
		{Name: "user_listings", Type: field.TypeInt},
	}
	// ListingsTable holds the schema information for the "listings" table.
	ListingsTable = &schema.Table{
		Name:       "listings",
		Columns:    ListingsColumns,
		PrimaryKey: []*schema.Column{ListingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listings_users_listings",
				Columns:    []*schema.Column{ListingsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "listing_obj_id_list_name",
				Unique:  false,
				Columns: []*schema.Column{ListingsColumns[3], ListingsColumns[4]},
			},
		},
	}
	// LocalizationsColumns holds the columns for the "localizations" table.
	LocalizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dateobs", Type: field.TypeTime},
		{Name: "localization_name", Type: field.TypeString, Size: 255},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
	}
	// LocalizationsTable holds the schema information for the "localizations" table.
	LocalizationsTable = &schema.Table{
		Name:       "localizations",
		Columns:    LocalizationsColumns,
		PrimaryKey: []*schema.Column{LocalizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "localization_dateobs",
				Unique:  false,
				Columns: []*schema.Column{LocalizationsColumns[2]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 2048},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "viewed", Type: field.TypeBool, Default: false},
		{Name: "user_notifications", Type: field.TypeInt},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_viewed_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[5], NotificationsColumns[6]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[6]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// ObjAnalysesColumns holds the columns for the "obj_analyses" table.
	ObjAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "obj_id", Type: field.TypeString, Size: 255},
		{Name: "analysis_service", Type: field.TypeString, Size: 255},
		{Name: "status", Type: field.TypeString, Size: 64, Default: "completed"},
		{Name: "obj_analysis_owner", Type: field.TypeInt},
	}
	// ObjAnalysesTable holds the schema information for the "obj_analyses" table.
	ObjAnalysesTable = &schema.Table{
		Name:       "obj_analyses",
		Columns:    ObjAnalysesColumns,
		PrimaryKey: []*schema.Column{ObjAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "obj_analyses_users_owner",
				Columns:    []*schema.Column{ObjAnalysesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "objanalysis_obj_id",
				Unique:  false,
				Columns: []*schema.Column{ObjAnalysesColumns[3]},
			},
		},
	}
	// ObservationPlanRequestsColumns holds the columns for the "observation_plan_requests" table.
	ObservationPlanRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "dateobs", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Size: 255, Default: "pending submission"},
		{Name: "allocation_observation_plan_requests", Type: field.TypeInt},
		{Name: "observation_plan_request_requester", Type: field.TypeInt},
	}
	// ObservationPlanRequestsTable holds the schema information for the "observation_plan_requests" table.
	ObservationPlanRequestsTable = &schema.Table{
		Name:       "observation_plan_requests",
		Columns:    ObservationPlanRequestsColumns,
		PrimaryKey: []*schema.Column{ObservationPlanRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "observation_plan_requests_allocations_observation_plan_requests",
				Columns:    []*schema.Column{ObservationPlanRequestsColumns[5]},
				RefColumns: []*schema.Column{AllocationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "observation_plan_requests_users_requester",
				Columns:    []*schema.Column{ObservationPlanRequestsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "observationplanrequest_dateobs",
				Unique:  false,
				Columns: []*schema.Column{ObservationPlanRequestsColumns[3]},
			},
		},
	}
	// ShiftsColumns holds the columns for the "shifts" table.
	ShiftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
	}
	// ShiftsTable holds the schema information for the "shifts" table.
	ShiftsTable = &schema.Table{
		Name:       "shifts",
		Columns:    ShiftsColumns,
		PrimaryKey: []*schema.Column{ShiftsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "shift_start_date_end_date",
				Unique:  false,
				Columns: []*schema.Column{ShiftsColumns[4], ShiftsColumns[5]},
			},
		},
	}
	// SpectrumsColumns holds the columns for the "spectrums" table.
	SpectrumsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "obj_id", Type: field.TypeString, Size: 255},
	}
	// SpectrumsTable holds the schema information for the "spectrums" table.
	SpectrumsTable = &schema.Table{
		Name:       "spectrums",
		Columns:    SpectrumsColumns,
		PrimaryKey: []*schema.Column{SpectrumsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "spectrum_obj_id",
				Unique:  false,
				Columns: []*schema.Column{SpectrumsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "contact_email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// GroupUsersColumns holds the columns for the "group_users" table.
	GroupUsersColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// GroupUsersTable holds the schema information for the "group_users" table.
	GroupUsersTable = &schema.Table{
		Name:       "group_users",
		Columns:    GroupUsersColumns,
		PrimaryKey: []*schema.Column{GroupUsersColumns[0], GroupUsersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_users_group_id",
				Columns:    []*schema.Column{GroupUsersColumns[0]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_users_user_id",
				Columns:    []*schema.Column{GroupUsersColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// GroupAdminsColumns holds the columns for the "group_admins" table.
	GroupAdminsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// GroupAdminsTable holds the schema information for the "group_admins" table.
	GroupAdminsTable = &schema.Table{
		Name:       "group_admins",
		Columns:    GroupAdminsColumns,
		PrimaryKey: []*schema.Column{GroupAdminsColumns[0], GroupAdminsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_admins_group_id",
				Columns:    []*schema.Column{GroupAdminsColumns[0]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_admins_user_id",
				Columns:    []*schema.Column{GroupAdminsColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ShiftUsersColumns holds the columns for the "shift_users" table.
	ShiftUsersColumns = []*schema.Column{
		{Name: "shift_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ShiftUsersTable holds the schema information for the "shift_users" table.
	ShiftUsersTable = &schema.Table{
		Name:       "shift_users",
		Columns:    ShiftUsersColumns,
		PrimaryKey: []*schema.Column{ShiftUsersColumns[0], ShiftUsersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shift_users_shift_id",
				Columns:    []*schema.Column{ShiftUsersColumns[0]},
				RefColumns: []*schema.Column{ShiftsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "shift_users_user_id",
				Columns:    []*schema.Column{ShiftUsersColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AllocationsTable,
		ClassificationsTable,
		CommentsTable,
		FacilityTransactionsTable,
		FollowupRequestsTable,
		GcnNoticesTable,
		GcnPropertiesTable,
		GcnTagsTable,
		GroupsTable,
		GroupAdmissionRequestsTable,
		ListingsTable,
		LocalizationsTable,
		NotificationsTable,
		ObjAnalysesTable,
		ObservationPlanRequestsTable,
		ShiftsTable,
		SpectrumsTable,
		UsersTable,
		GroupUsersTable,
		GroupAdminsTable,
		ShiftUsersTable,
	}
)

func init() {
	AllocationsTable.ForeignKeys[0].RefTable = GroupsTable
	FacilityTransactionsTable.ForeignKeys[0].RefTable = FollowupRequestsTable
	FollowupRequestsTable.ForeignKeys[0].RefTable = AllocationsTable
	FollowupRequestsTable.ForeignKeys[1].RefTable = UsersTable
	GroupAdmissionRequestsTable.ForeignKeys[0].RefTable = GroupsTable
	GroupAdmissionRequestsTable.ForeignKeys[1].RefTable = UsersTable
	ListingsTable.ForeignKeys[0].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	ObjAnalysesTable.ForeignKeys[0].RefTable = UsersTable
	ObservationPlanRequestsTable.ForeignKeys[0].RefTable = AllocationsTable
	ObservationPlanRequestsTable.ForeignKeys[1].RefTable = UsersTable
	GroupUsersTable.ForeignKeys[0].RefTable = GroupsTable
	GroupUsersTable.ForeignKeys[1].RefTable = UsersTable
	GroupAdminsTable.ForeignKeys[0].RefTable = GroupsTable
	GroupAdminsTable.ForeignKeys[1].RefTable = UsersTable
	ShiftUsersTable.ForeignKeys[0].RefTable = ShiftsTable
	ShiftUsersTable.ForeignKeys[1].RefTable = UsersTable
}
