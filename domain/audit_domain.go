package domain

import "time"

var (
	MessageSuccessGetAuditLogs = "audit logs retrieved successfully"
	MessageFailedGetAuditLogs  = "failed to retrieve audit logs"
)

type AuditLogResponse struct {
	ID        string    `json:"id"`
	TableName string    `json:"table_name"`
	RecordID  string    `json:"record_id"`
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}
