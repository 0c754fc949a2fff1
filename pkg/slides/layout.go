// Package slides renders an activity report as a PresentationML (.pptx) deck.
//
// Layout and serialization are separate steps. Build turns a report into a
// Deck of titled slides holding plain paragraph descriptors; Encode writes a
// Deck as a .pptx archive and Decode reads one back.
package slides

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yaklabco/dailyreport/pkg/report"
)

// Layout selects the slide layout a slide is placed on.
type Layout int

const (
	// LayoutTitle is a centered title with a subtitle.
	LayoutTitle Layout = iota

	// LayoutContent is a title above a bulleted body.
	LayoutContent
)

// String returns the layout name as shown by PowerPoint.
func (l Layout) String() string {
	switch l {
	case LayoutTitle:
		return "Title Slide"
	case LayoutContent:
		return "Title and Content"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Font sizes in points.
const (
	HeadingSizePt = 14
	EntrySizePt   = 12
	SummarySizePt = 14
)

// Fixed slide text.
const (
	DeckTitle    = "Activity Report"
	SummaryTitle = "Summary"

	AuthoredHeading = "Authored / Contributed"
	ReviewedHeading = "Reviewed"
	WaitingHeading  = "Waiting for Review"
)

// Paragraph is one line of slide body text.
type Paragraph struct {
	Text string

	// Level is the outline level, 0 for top-level bullets.
	Level int

	Bold bool

	// SizePt is the font size in points. Zero inherits the layout's size.
	SizePt int
}

// Slide is a single slide: a title and an ordered body.
type Slide struct {
	Layout Layout
	Title  string
	Body   []Paragraph
}

// Text returns the body paragraphs joined by newlines.
func (s Slide) Text() string {
	lines := make([]string, len(s.Body))
	for i, p := range s.Body {
		lines[i] = p.Text
	}
	return strings.Join(lines, "\n")
}

// Deck is an ordered sequence of slides.
type Deck struct {
	// Author is recorded in the document properties.
	Author string

	Slides []Slide
}

// Titles returns the slide titles in order.
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title
	}
	return titles
}

// RepoGroup holds every PR of a report that belongs to one repository,
// in input order per list.
type RepoGroup struct {
	Repo     string
	Authored []report.AuthoredPR
	Reviewed []report.ReviewedPR
	Waiting  []report.WaitingPR
}

// GroupByRepo buckets the authored, reviewed and waiting PRs by repository.
// Groups are returned sorted by repository name, not by first appearance.
func GroupByRepo(r *report.Data) []RepoGroup {
	groups := make(map[string]*RepoGroup)
	group := func(repo string) *RepoGroup {
		g, ok := groups[repo]
		if !ok {
			g = &RepoGroup{Repo: repo}
			groups[repo] = g
		}
		return g
	}

	for _, pr := range r.AuthoredPRs {
		g := group(pr.Repo)
		g.Authored = append(g.Authored, pr)
	}
	for _, pr := range r.ReviewedPRs {
		g := group(pr.Repo)
		g.Reviewed = append(g.Reviewed, pr)
	}
	for _, pr := range r.WaitingPRs {
		g := group(pr.Repo)
		g.Waiting = append(g.Waiting, pr)
	}

	result := make([]RepoGroup, 0, len(groups))
	for _, repo := range slices.Sorted(maps.Keys(groups)) {
		result = append(result, *groups[repo])
	}
	return result
}

// Build lays out the deck for r: a title slide, one slide per repository and
// a summary slide. It performs no I/O.
func Build(r *report.Data) *Deck {
	groups := GroupByRepo(r)

	deck := &Deck{
		Author: r.User,
		Slides: make([]Slide, 0, len(groups)+2),
	}

	deck.Slides = append(deck.Slides, Slide{
		Layout: LayoutTitle,
		Title:  DeckTitle,
		Body: []Paragraph{
			{Text: r.User},
			{Text: r.Period(report.RangeSeparator)},
		},
	})

	for _, g := range groups {
		deck.Slides = append(deck.Slides, projectSlide(g))
	}

	deck.Slides = append(deck.Slides, summarySlide(r.Summary))
	return deck
}

func projectSlide(g RepoGroup) Slide {
	var body []Paragraph
	heading := func(text string) {
		body = append(body, Paragraph{Text: text, Bold: true, SizePt: HeadingSizePt})
	}
	entry := func(text string) {
		body = append(body, Paragraph{Text: text, Level: 1, SizePt: EntrySizePt})
	}

	if len(g.Authored) > 0 {
		heading(AuthoredHeading)
		for _, pr := range g.Authored {
			entry(authoredText(pr))
		}
	}
	if len(g.Reviewed) > 0 {
		heading(ReviewedHeading)
		for _, pr := range g.Reviewed {
			entry(fmt.Sprintf("%s #%d (%s) -- %s", pr.Title, pr.Number, pr.Author, pr.Status))
		}
	}
	if len(g.Waiting) > 0 {
		heading(WaitingHeading)
		for _, pr := range g.Waiting {
			entry(fmt.Sprintf("%s #%d -- reviewer: %s -- %d days",
				pr.Title, pr.Number, strings.Join(pr.Reviewers, ", "), pr.DaysWaiting))
		}
	}

	return Slide{Layout: LayoutContent, Title: g.Repo, Body: body}
}

func authoredText(pr report.AuthoredPR) string {
	author, stats := report.PlainTypography.Suffixes(pr)
	return fmt.Sprintf("%s #%d%s -- %s%s", pr.Title, pr.Number, author, pr.Status, stats)
}

func summarySlide(s report.SummaryStats) Slide {
	lines := []string{
		fmt.Sprintf("Total PRs: %d", s.TotalPRs),
		fmt.Sprintf("Repositories: %d", s.RepoCount),
		fmt.Sprintf("%d %s", s.MergedCount, s.MergedLabel()),
		fmt.Sprintf("%d still open", s.OpenCount),
		"Key themes: " + s.ThemesString(),
	}

	body := make([]Paragraph, len(lines))
	for i, text := range lines {
		body[i] = Paragraph{Text: text, SizePt: SummarySizePt}
	}
	return Slide{Layout: LayoutContent, Title: SummaryTitle, Body: body}
}

// DefaultFilename returns the file name used when no output path is given:
// daily-report-<from>.pptx for a single day, daily-report-<from>_<to>.pptx
// for a range.
func DefaultFilename(r *report.Data) string {
	if r.SingleDay() {
		return "daily-report-" + r.DateFrom + ".pptx"
	}
	return "daily-report-" + r.DateFrom + "_" + r.DateTo + ".pptx"
}
