// Package report defines the activity report consumed by the renderers.
//
// A Data value is built once by the upstream aggregator (or decoded from its
// JSON/YAML output), handed to one or more renderers, and never mutated. All
// types are plain values, so concurrent read-only use is safe.
package report

// Status is the state of a pull request.
type Status string

// Known pull request states.
const (
	StatusOpen   Status = "Open"
	StatusDraft  Status = "Draft"
	StatusMerged Status = "Merged"
	StatusClosed Status = "Closed"
)

// IsValid returns true if s is one of the known states.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusDraft, StatusMerged, StatusClosed:
		return true
	default:
		return false
	}
}

// ShowsDiffStats reports whether line counts are shown for a PR in this state.
// Only PRs still in flight carry them; unknown states never do.
func (s Status) ShowsDiffStats() bool {
	return s == StatusOpen || s == StatusDraft
}

// String returns the status as written in reports.
func (s Status) String() string {
	return string(s)
}

// AuthoredPR is a pull request the user opened or pushed commits to.
type AuthoredPR struct {
	Repo      string `json:"repo" yaml:"repo"`
	Title     string `json:"title" yaml:"title"`
	Number    int    `json:"number" yaml:"number"`
	Status    Status `json:"status" yaml:"status"`
	Additions int    `json:"additions" yaml:"additions"`
	Deletions int    `json:"deletions" yaml:"deletions"`

	// Contributed marks a PR opened by someone else that the user committed to.
	Contributed bool `json:"contributed" yaml:"contributed"`

	// OriginalAuthor is the PR opener for contributed PRs. Empty means absent.
	OriginalAuthor string `json:"original_author,omitempty" yaml:"original_author,omitempty"`
}

// Author returns the original author to credit, or "" when there is none.
// The stored value is ignored unless the PR is a contribution.
func (pr AuthoredPR) Author() string {
	if !pr.Contributed {
		return ""
	}
	return pr.OriginalAuthor
}

// ReviewedPR is a pull request the user reviewed or approved.
type ReviewedPR struct {
	Repo   string `json:"repo" yaml:"repo"`
	Title  string `json:"title" yaml:"title"`
	Number int    `json:"number" yaml:"number"`
	Author string `json:"author" yaml:"author"`
	Status Status `json:"status" yaml:"status"`
}

// WaitingPR is one of the user's pull requests that still awaits review.
type WaitingPR struct {
	Repo        string   `json:"repo" yaml:"repo"`
	Title       string   `json:"title" yaml:"title"`
	Number      int      `json:"number" yaml:"number"`
	Reviewers   []string `json:"reviewers" yaml:"reviewers"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	DaysWaiting int      `json:"days_waiting" yaml:"days_waiting"`
}

// SummaryStats holds the aggregate figures shown at the end of a report.
type SummaryStats struct {
	TotalPRs    int      `json:"total_prs" yaml:"total_prs"`
	RepoCount   int      `json:"repo_count" yaml:"repo_count"`
	MergedCount int      `json:"merged_count" yaml:"merged_count"`
	OpenCount   int      `json:"open_count" yaml:"open_count"`
	Themes      []string `json:"themes" yaml:"themes"`
	IsRange     bool     `json:"is_range" yaml:"is_range"`
}

// Data is the root of a report.
type Data struct {
	User     string `json:"user" yaml:"user"`
	DateFrom string `json:"date_from" yaml:"date_from"`
	DateTo   string `json:"date_to" yaml:"date_to"`

	AuthoredPRs []AuthoredPR `json:"authored_prs" yaml:"authored_prs"`
	ReviewedPRs []ReviewedPR `json:"reviewed_prs" yaml:"reviewed_prs"`
	WaitingPRs  []WaitingPR  `json:"waiting_prs" yaml:"waiting_prs"`

	Summary SummaryStats `json:"summary" yaml:"summary"`
}

// Option customizes a Data built by New.
type Option func(*Data)

// WithAuthored sets the authored/contributed PRs.
func WithAuthored(prs ...AuthoredPR) Option {
	return func(d *Data) { d.AuthoredPRs = prs }
}

// WithReviewed sets the reviewed/approved PRs.
func WithReviewed(prs ...ReviewedPR) Option {
	return func(d *Data) { d.ReviewedPRs = prs }
}

// WithWaiting sets the PRs waiting for review.
func WithWaiting(prs ...WaitingPR) Option {
	return func(d *Data) { d.WaitingPRs = prs }
}

// WithSummary sets the aggregate statistics.
func WithSummary(s SummaryStats) Option {
	return func(d *Data) { d.Summary = s }
}

// New creates a report for user covering dateFrom..dateTo.
// PR lists default to empty and the summary to zero values with IsRange unset.
func New(user, dateFrom, dateTo string, opts ...Option) *Data {
	d := &Data{
		User:     user,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.normalize()
	return d
}

// normalize replaces nil slices with empty ones so decoded and constructed
// reports look the same to renderers and encoders.
func (d *Data) normalize() {
	if d.AuthoredPRs == nil {
		d.AuthoredPRs = []AuthoredPR{}
	}
	if d.ReviewedPRs == nil {
		d.ReviewedPRs = []ReviewedPR{}
	}
	if d.WaitingPRs == nil {
		d.WaitingPRs = []WaitingPR{}
	}
	if d.Summary.Themes == nil {
		d.Summary.Themes = []string{}
	}
}

// SingleDay reports whether the report covers exactly one day.
func (d *Data) SingleDay() bool {
	return d.DateFrom == d.DateTo
}

// Period returns the covered dates: DateFrom alone for a single day,
// otherwise DateFrom and DateTo joined by sep.
func (d *Data) Period(sep string) string {
	if d.SingleDay() {
		return d.DateFrom
	}
	return d.DateFrom + sep + d.DateTo
}
