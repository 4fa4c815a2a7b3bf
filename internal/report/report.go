package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nerrad567/featuregate/internal/access"
	"github.com/nerrad567/featuregate/internal/access/source"
)

// tabwriter settings shared by every table.
const (
	minWidth = 0
	tabWidth = 4
	padding  = 2
)

// RoleReport summarises what one role can reach.
type RoleReport struct {
	Role       access.Role      `json:"role"`
	Found      bool             `json:"found"`
	Features   []access.Feature `json:"features"`
	Count      int              `json:"count"`
	TotalKnown int              `json:"total_known"`

	// Missing lists the known features the role does not have, in
	// enumeration order. For an unknown role it is every known feature.
	Missing []access.Feature `json:"missing"`
}

// ForRole builds the report for role. An unknown role yields Found false
// and a zero count; it is not an error.
func ForRole(reg *access.Registry, role access.Role) RoleReport {
	rep := RoleReport{
		Role:       role,
		Features:   []access.Feature{},
		TotalKnown: reg.TotalKnownFeatures(),
		Missing:    []access.Feature{},
	}

	if entry, ok := reg.FindByRole(role); ok {
		rep.Found = true
		if entry.Features != nil {
			rep.Features = entry.Features
		}
		rep.Count = reg.FeatureCount(role)
	}

	for _, f := range access.KnownFeatures() {
		if !reg.HasFeature(role, f) {
			rep.Missing = append(rep.Missing, f)
		}
	}
	return rep
}

// ForAll builds a report for every registered role, in registry order.
func ForAll(reg *access.Registry) []RoleReport {
	roles := reg.Roles()
	reports := make([]RoleReport, len(roles))
	for i, role := range roles {
		reports[i] = ForRole(reg, role)
	}
	return reports
}

// WriteRoles writes one row per report.
func WriteRoles(w io.Writer, reports []RoleReport) error {
	tw := tabwriter.NewWriter(w, minWidth, tabWidth, padding, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ROLE\tFOUND\tFEATURES\tCOUNT")
	for _, r := range reports {
		_, _ = fmt.Fprintf(tw, "%s\t%t\t%s\t%d/%d\n",
			r.Role, r.Found, joinFeatures(r.Features), r.Count, r.TotalKnown)
	}
	return tw.Flush()
}

// WriteRole writes a single report as key/value lines.
func WriteRole(w io.Writer, r RoleReport) error {
	tw := tabwriter.NewWriter(w, minWidth, tabWidth, padding, ' ', 0)
	_, _ = fmt.Fprintf(tw, "role:\t%s\n", r.Role)
	_, _ = fmt.Fprintf(tw, "found:\t%t\n", r.Found)
	_, _ = fmt.Fprintf(tw, "features:\t%s\n", joinFeatures(r.Features))
	_, _ = fmt.Fprintf(tw, "count:\t%d\n", r.Count)
	_, _ = fmt.Fprintf(tw, "total known:\t%d\n", r.TotalKnown)
	_, _ = fmt.Fprintf(tw, "missing:\t%s\n", joinFeatures(r.Missing))
	return tw.Flush()
}

// WriteFeatures writes the feature enumeration, one per line with its index.
func WriteFeatures(w io.Writer, features []access.Feature) error {
	tw := tabwriter.NewWriter(w, minWidth, tabWidth, padding, ' ', 0)
	_, _ = fmt.Fprintln(tw, "INDEX\tFEATURE")
	for i, f := range features {
		_, _ = fmt.Fprintf(tw, "%d\t%s\n", i, f)
	}
	return tw.Flush()
}

// WriteDecision writes the outcome of a single check.
func WriteDecision(w io.Writer, role access.Role, feature access.Feature, d access.Decision) error {
	_, err := fmt.Fprintf(w, "%s %s: %s\n", role, feature, d)
	return err
}

// WriteIssues writes one line per fixture issue, or "no issues".
func WriteIssues(w io.Writer, sourceName string, issues []source.Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintf(w, "%s: no issues\n", sourceName)
		return err
	}
	for _, issue := range issues {
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", sourceName, issue.Kind, issue); err != nil {
			return err
		}
	}
	return nil
}

func joinFeatures(features []access.Feature) string {
	if len(features) == 0 {
		return "-"
	}
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}
