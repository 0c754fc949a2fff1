package report

import (
	"fmt"
)

// ValidationError describes one field of a report that breaks the input contract.
type ValidationError struct {
	// Field is the path to the offending field (e.g. "authored_prs[2].number").
	Field string

	// Value is the offending value.
	Value any

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult collects every contract violation found in a report.
type ValidationResult struct {
	Errors []ValidationError
}

// Valid returns true if no violations were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns the violations as strings, in discovery order.
func (r *ValidationResult) Messages() []string {
	messages := make([]string, 0, len(r.Errors))
	for i := range r.Errors {
		messages = append(messages, r.Errors[i].Error())
	}
	return messages
}

func (r *ValidationResult) add(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks d against the aggregator's contract.
// Renderers do not call it: they render whatever they are given. Callers that
// accept reports from outside use it to warn about malformed input.
func Validate(d *Data) *ValidationResult {
	result := &ValidationResult{}
	if d == nil {
		result.add("", nil, "report is nil")
		return result
	}

	if d.User == "" {
		result.add("user", d.User, "must not be empty")
	}
	if d.DateFrom == "" {
		result.add("date_from", d.DateFrom, "must not be empty")
	}
	if d.DateTo == "" {
		result.add("date_to", d.DateTo, "must not be empty")
	}
	if d.Summary.IsRange == d.SingleDay() {
		result.add("summary.is_range", d.Summary.IsRange,
			"is %t but the report covers %s", d.Summary.IsRange, d.Period(RangeSeparator))
	}

	for i, pr := range d.AuthoredPRs {
		field := fmt.Sprintf("authored_prs[%d]", i)
		validateRef(result, field, pr.Repo, pr.Number)
		validateStatus(result, field, pr.Status)
		if pr.Additions < 0 {
			result.add(field+".additions", pr.Additions, "must not be negative")
		}
		if pr.Deletions < 0 {
			result.add(field+".deletions", pr.Deletions, "must not be negative")
		}
		if !pr.Contributed && pr.OriginalAuthor != "" {
			result.add(field+".original_author", pr.OriginalAuthor, "is only allowed on contributed PRs")
		}
	}

	for i, pr := range d.ReviewedPRs {
		field := fmt.Sprintf("reviewed_prs[%d]", i)
		validateRef(result, field, pr.Repo, pr.Number)
		validateStatus(result, field, pr.Status)
	}

	for i, pr := range d.WaitingPRs {
		field := fmt.Sprintf("waiting_prs[%d]", i)
		validateRef(result, field, pr.Repo, pr.Number)
		if len(pr.Reviewers) == 0 {
			result.add(field+".reviewers", pr.Reviewers, "must name at least one reviewer")
		}
		if pr.DaysWaiting < 0 {
			result.add(field+".days_waiting", pr.DaysWaiting, "must not be negative")
		}
	}

	s := d.Summary
	counts := []struct {
		field string
		n     int
	}{
		{"summary.total_prs", s.TotalPRs},
		{"summary.repo_count", s.RepoCount},
		{"summary.merged_count", s.MergedCount},
		{"summary.open_count", s.OpenCount},
	}
	for _, c := range counts {
		if c.n < 0 {
			result.add(c.field, c.n, "must not be negative")
		}
	}

	return result
}

func validateRef(result *ValidationResult, field, repo string, number int) {
	if repo == "" {
		result.add(field+".repo", repo, "must not be empty")
	}
	if number <= 0 {
		result.add(field+".number", number, "must be positive")
	}
}

func validateStatus(result *ValidationResult, field string, status Status) {
	if !status.IsValid() {
		result.add(field+".status", status, "unknown status %q", status)
	}
}
