// Package taxonomy holds the shared vocabulary of the classification
// overlay: sentinel names, name normalization, report classes, and the
// closed set of error kinds the transport layer maps to HTTP statuses.
package taxonomy

import "strings"

// ReservedGroupName is the group that permanently holds the two sentinel
// categories. It is seeded at bootstrap and never created through the API.
const ReservedGroupName = "Unclassified"

// Sentinel category names. Every transaction can always fall back to one
// of these; they are immune to rename, move, and delete.
const (
	UncategorizedName   = "Uncategorized"
	DeletedCategoryName = "Deleted Category"
)

// SentinelNames lists the protected category names under the reserved group.
var SentinelNames = []string{UncategorizedName, DeletedCategoryName}

// NormalizeName trims surrounding whitespace. All uniqueness comparisons
// are case-insensitive on the normalized form.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NamesEqual reports whether two names collide under the uniqueness rule.
func NamesEqual(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// IsSentinelName reports whether name matches one of the sentinel names.
func IsSentinelName(name string) bool {
	for _, s := range SentinelNames {
		if strings.EqualFold(NormalizeName(name), s) {
			return true
		}
	}
	return false
}

// ReportClass drives downstream spend/income accounting. Transfer
// categories are excluded from income and spend totals.
type ReportClass string

const (
	ReportClassAuto     ReportClass = "auto"
	ReportClassTransfer ReportClass = "transfer"
)

// ParseReportClass normalizes and validates a report class value.
func ParseReportClass(s string) (ReportClass, error) {
	switch ReportClass(strings.ToLower(strings.TrimSpace(s))) {
	case ReportClassAuto:
		return ReportClassAuto, nil
	case ReportClassTransfer:
		return ReportClassTransfer, nil
	default:
		return "", Validationf("report_class must be one of: auto, transfer (got %q)", s)
	}
}
