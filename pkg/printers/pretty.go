// Package printers renders collections and derived views for the
// terminal.
package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/vita/pkg/dashboard"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/settings"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) id(id string) string {
	if !pp.ShowID {
		return ""
	}
	return id
}

// Papers prints one row per paper: stage, title, target journal.
func (pp *PrettyPrint) Papers(papers ...*record.Paper) {
	if len(papers) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, p := range papers {
		if pp.ShowID {
			tbl.AddRow(p.ID, p.Stage.Label(), p.Title, p.TargetJournal)
		} else {
			tbl.AddRow(p.Stage.Label(), p.Title, p.TargetJournal)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Courses(courses ...*record.Course) {
	if len(courses) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, c := range courses {
		term := strings.TrimSpace(fmt.Sprintf("%s %d", c.Semester, c.Year))
		if pp.ShowID {
			tbl.AddRow(c.ID, c.Code, c.Name, term, c.Schedule)
		} else {
			tbl.AddRow(c.Code, c.Name, term, c.Schedule)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Grants(grants ...*record.Grant) {
	if len(grants) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, g := range grants {
		if pp.ShowID {
			tbl.AddRow(g.ID, string(g.Status), g.Title, g.Agency, Currency(g.Amount))
		} else {
			tbl.AddRow(string(g.Status), g.Title, g.Agency, Currency(g.Amount))
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Reviews(reviews ...*record.PeerReview) {
	if len(reviews) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, r := range reviews {
		if pp.ShowID {
			tbl.AddRow(r.ID, string(r.Status), r.ManuscriptTitle, r.Journal, r.DueDate)
		} else {
			tbl.AddRow(string(r.Status), r.ManuscriptTitle, r.Journal, r.DueDate)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Students(students ...*record.Student) {
	if len(students) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, s := range students {
		if pp.ShowID {
			tbl.AddRow(s.ID, string(s.Level), s.Name, string(s.Status), s.Program)
		} else {
			tbl.AddRow(string(s.Level), s.Name, string(s.Status), s.Program)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Conferences(confs ...*record.Conference) {
	if len(confs) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, c := range confs {
		if pp.ShowID {
			tbl.AddRow(c.ID, string(c.Status), c.Name, c.Location, c.StartDate)
		} else {
			tbl.AddRow(string(c.Status), c.Name, c.Location, c.StartDate)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) ServiceRoles(roles ...*record.ServiceRole) {
	if len(roles) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, r := range roles {
		active := ""
		if r.IsActive {
			active = "active"
		}
		if pp.ShowID {
			tbl.AddRow(r.ID, r.Title, r.Organization, r.Type, active)
		} else {
			tbl.AddRow(r.Title, r.Organization, r.Type, active)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) EditorialRoles(roles ...*record.EditorialRole) {
	if len(roles) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, r := range roles {
		active := ""
		if r.IsActive {
			active = "active"
		}
		if pp.ShowID {
			tbl.AddRow(r.ID, r.Role, r.Journal, active)
		} else {
			tbl.AddRow(r.Role, r.Journal, active)
		}
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Folders(folders ...*record.LinkedFolder) {
	if len(folders) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, f := range folders {
		if pp.ShowID {
			tbl.AddRow(f.ID, f.Name, f.Module, f.Path)
		} else {
			tbl.AddRow(f.Name, f.Module, f.Path)
		}
	}
	pp.flush(tbl)
}

// Pipeline prints stage groups, each stage as a sub-heading with its
// papers beneath.
func (pp *PrettyPrint) Pipeline(groups []dashboard.StageGroup) {
	if len(groups) == 0 {
		pp.none()
		return
	}
	h := color.New(color.Bold)
	c := color.New(color.Faint)
	for _, g := range groups {
		_, _ = h.Print(g.Stage.Label())
		_, _ = c.Printf(" (%d)\n", len(g.Papers))
		tbl := pp.table()
		for _, p := range g.Papers {
			if pp.ShowID {
				tbl.AddRow(p.ID, p.Title, p.TargetJournal)
			} else {
				tbl.AddRow(p.Title, p.TargetJournal)
			}
		}
		pp.flush(tbl)
	}
}

// Deadlines prints the merged timeline. Overdue rows are highlighted.
func (pp *PrettyPrint) Deadlines(items []dashboard.Deadline) {
	if len(items) == 0 {
		pp.none()
		return
	}
	overdue := color.New(color.FgHiRed, color.Bold)
	plain := color.New()
	faint := color.New(color.Faint)

	tbl := pp.table()
	for _, item := range items {
		date := item.Date.Format("2006-01-02")
		flag := ""
		if item.Overdue {
			flag = overdue.Sprint("overdue")
			date = overdue.Sprint(date)
		}
		tbl.AddRow(date, faint.Sprintf("%-11s", item.Module.Label()), plain.Sprint(item.Label), faint.Sprint(item.Detail), flag)
	}
	pp.flush(tbl)
}

// Stats prints the summary stat cards as rows.
func (pp *PrettyPrint) Stats(counts dashboard.Counts, summary string) {
	tbl := pp.table()
	trend := summary
	if trend == "" {
		trend = "no active papers"
	}
	tbl.AddRow("Papers in Pipeline", counts.PipelinePapers, trend)
	tbl.AddRow("Active Courses", counts.ActiveCourses, "")
	funded := "no funded grants"
	if counts.TotalFunded > 0 {
		funded = Currency(counts.TotalFunded) + " total funded"
	}
	tbl.AddRow("Active Grants", counts.FundedGrants, funded)
	tbl.AddRow("Pending Reviews", counts.PendingReviews, "")
	tbl.AddRow("Active Students", counts.ActiveStudents, "")
	tbl.AddRow("Upcoming Conferences", counts.UpcomingConferences, "")
	pp.flush(tbl)
}

// Settings dumps the preferences record, masking the credential.
func (pp *PrettyPrint) Settings(s settings.Settings) {
	tbl := pp.table()
	tbl.AddRow("theme", string(s.Theme))
	tbl.AddRow("accent", string(s.AccentColor))
	panes := make([]string, 0, len(s.VisiblePanes))
	for _, p := range s.VisiblePanes {
		panes = append(panes, string(p))
	}
	tbl.AddRow("panes", strings.Join(panes, ", "))
	timeout := "disabled"
	if s.ScreensaverTimeout > 0 {
		timeout = fmt.Sprintf("%dm", s.ScreensaverTimeout)
	}
	tbl.AddRow("screensaver", timeout)
	if s.AIProvider != "" {
		tbl.AddRow("ai provider", s.AIProvider)
	}
	if s.APIKey != "" {
		tbl.AddRow("api key", mask(s.APIKey))
	}
	if s.ScholarProfileURL != "" {
		tbl.AddRow("scholar profile", s.ScholarProfileURL)
	}
	if s.ScholarStats != nil {
		tbl.AddRow("citations", s.ScholarStats.Citations)
		tbl.AddRow("h-index", s.ScholarStats.HIndex)
		tbl.AddRow("i10-index", s.ScholarStats.I10Index)
		tbl.AddRow("stats updated", s.ScholarStats.UpdatedAt.String())
	}
	pp.flush(tbl)
}

func mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// Currency formats a grant amount in whole dollars.
func Currency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + "$" + string(out)
}
