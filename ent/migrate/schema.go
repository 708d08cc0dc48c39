// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Unique: true},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_requests_checkpoint",
				Columns:    []*schema.Column{CheckpointsColumns[4]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// CoverageAnalysesColumns holds the columns for the "coverage_analyses" table.
	CoverageAnalysesColumns = []*schema.Column{
		{Name: "coverage_id", Type: field.TypeString, Unique: true},
		{Name: "requirement", Type: field.TypeString, Size: 2147483647},
		{Name: "covered", Type: field.TypeBool, Default: false},
		{Name: "covered_by", Type: field.TypeJSON, Nullable: true},
		{Name: "quality", Type: field.TypeEnum, Enums: []string{"good", "weak", "none"}, Default: "none"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// CoverageAnalysesTable holds the schema information for the "coverage_analyses" table.
	CoverageAnalysesTable = &schema.Table{
		Name:       "coverage_analyses",
		Columns:    CoverageAnalysesColumns,
		PrimaryKey: []*schema.Column{CoverageAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "coverage_analyses_requests_coverage",
				Columns:    []*schema.Column{CoverageAnalysesColumns[6]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "coverageanalysis_request_id",
				Unique:  false,
				Columns: []*schema.Column{CoverageAnalysesColumns[6]},
			},
			{
				Name:    "coverageanalysis_covered",
				Unique:  false,
				Columns: []*schema.Column{CoverageAnalysesColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_requests_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// GenerationMetricsColumns holds the columns for the "generation_metrics" table.
	GenerationMetricsColumns = []*schema.Column{
		{Name: "metric_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"reconnaissance", "generation", "validation", "optimization"}},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "retry", "failed"}},
		{Name: "duration_ms", Type: field.TypeInt},
		{Name: "tokens_prompt", Type: field.TypeInt, Default: 0},
		{Name: "tokens_completion", Type: field.TypeInt, Default: 0},
		{Name: "tokens_total", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// GenerationMetricsTable holds the schema information for the "generation_metrics" table.
	GenerationMetricsTable = &schema.Table{
		Name:       "generation_metrics",
		Columns:    GenerationMetricsColumns,
		PrimaryKey: []*schema.Column{GenerationMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generation_metrics_requests_metrics",
				Columns:    []*schema.Column{GenerationMetricsColumns[11]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generationmetric_request_id_stage_attempt",
				Unique:  true,
				Columns: []*schema.Column{GenerationMetricsColumns[11], GenerationMetricsColumns[1], GenerationMetricsColumns[2]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "request_type", Type: field.TypeEnum, Enums: []string{"ui", "api"}},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "requirements", Type: field.TypeJSON},
		{Name: "test_types", Type: field.TypeJSON, Nullable: true},
		{Name: "openapi_url", Type: field.TypeString, Nullable: true},
		{Name: "openapi_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "reconnaissance", "generation", "validation", "optimization", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "requeue_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "request_status",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[8]},
			},
			{
				Name:    "request_request_type",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[1]},
			},
			{
				Name:    "request_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[8], RequestsColumns[15]},
			},
			{
				Name:    "request_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[8], RequestsColumns[13]},
			},
			{
				Name:    "request_pod_id",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('reconnaissance', 'generation', 'validation', 'optimization')",
				},
			},
		},
	}
	// SecurityAuditLogsColumns holds the columns for the "security_audit_logs" table.
	SecurityAuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "test_index", Type: field.TypeInt, Default: 0},
		{Name: "layer", Type: field.TypeEnum, Enums: []string{"static", "ast", "behavioral"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low"}},
		{Name: "pattern", Type: field.TypeString},
		{Name: "snippet", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
	}
	// SecurityAuditLogsTable holds the schema information for the "security_audit_logs" table.
	SecurityAuditLogsTable = &schema.Table{
		Name:       "security_audit_logs",
		Columns:    SecurityAuditLogsColumns,
		PrimaryKey: []*schema.Column{SecurityAuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "security_audit_logs_requests_audit_logs",
				Columns:    []*schema.Column{SecurityAuditLogsColumns[7]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "securityauditlog_severity",
				Unique:  false,
				Columns: []*schema.Column{SecurityAuditLogsColumns[3]},
			},
			{
				Name:    "securityauditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{SecurityAuditLogsColumns[6]},
			},
		},
	}
	// TestCasesColumns holds the columns for the "test_cases" table.
	TestCasesColumns = []*schema.Column{
		{Name: "test_case_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "test_type", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "valid", Type: field.TypeBool, Default: false},
		{Name: "duplicate_of", Type: field.TypeString, Nullable: true},
		{Name: "similarity", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// TestCasesTable holds the schema information for the "test_cases" table.
	TestCasesTable = &schema.Table{
		Name:       "test_cases",
		Columns:    TestCasesColumns,
		PrimaryKey: []*schema.Column{TestCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_cases_requests_test_cases",
				Columns:    []*schema.Column{TestCasesColumns[10]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testcase_request_id_name",
				Unique:  true,
				Columns: []*schema.Column{TestCasesColumns[10], TestCasesColumns[1]},
			},
			{
				Name:    "testcase_test_type",
				Unique:  false,
				Columns: []*schema.Column{TestCasesColumns[4]},
			},
			{
				Name:    "testcase_valid_score",
				Unique:  false,
				Columns: []*schema.Column{TestCasesColumns[6], TestCasesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		CoverageAnalysesTable,
		EventsTable,
		GenerationMetricsTable,
		RequestsTable,
		SecurityAuditLogsTable,
		TestCasesTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = RequestsTable
	CoverageAnalysesTable.ForeignKeys[0].RefTable = RequestsTable
	EventsTable.ForeignKeys[0].RefTable = RequestsTable
	GenerationMetricsTable.ForeignKeys[0].RefTable = RequestsTable
	SecurityAuditLogsTable.ForeignKeys[0].RefTable = RequestsTable
	TestCasesTable.ForeignKeys[0].RefTable = RequestsTable
}
