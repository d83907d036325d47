package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// CandidateSortFields contains allowed sort fields for candidates
var CandidateSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"full_name":         true,
	"personal_email":    true,
	"mobile_number":     true,
	"experience_level":  true,
	"batch_label":       true,
	"year":              true,
	"status":            true,
	"ld_status":         true,
	"allocation_status": true,
	"ld_updated_at":     true,
	"sent_to_ld_at":     true,
	"sent_to_ops_at":    true,
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"emp_id":     true,
	"name":       true,
	"email":      true,
	"team":       true,
	"is_active":  true,
}

// DeploymentSortFields contains allowed sort fields for deployment records
var DeploymentSortFields = map[string]bool{
	"id":                     true,
	"created_at":             true,
	"updated_at":             true,
	"candidate_name":         true,
	"candidate_emp_id":       true,
	"client":                 true,
	"to_team":                true,
	"deployment_date":        true,
	"doj":                    true,
	"status":                 true,
	"mail_status":            true,
	"exit_date":              true,
	"internal_transfer_date": true,
}
