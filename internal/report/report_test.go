package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nerrad567/featuregate/internal/access"
	"github.com/nerrad567/featuregate/internal/access/source"
)

func testRegistry() *access.Registry {
	return access.NewRegistry(
		access.Entry{Role: access.RoleOwner, Features: []access.Feature{access.FeatureSettings, access.FeatureBilling}},
		access.Entry{Role: access.RoleAdmin, Features: []access.Feature{access.FeatureSettings}},
	)
}

func TestForRole_Found(t *testing.T) {
	rep := ForRole(testRegistry(), access.RoleOwner)

	if !rep.Found {
		t.Fatal("Found = false, want true")
	}
	if rep.Count != 2 {
		t.Errorf("Count = %d, want 2", rep.Count)
	}
	if rep.TotalKnown != len(access.KnownFeatures()) {
		t.Errorf("TotalKnown = %d, want %d", rep.TotalKnown, len(access.KnownFeatures()))
	}
	if got, want := len(rep.Missing), rep.TotalKnown-rep.Count; got != want {
		t.Errorf("len(Missing) = %d, want %d", got, want)
	}
	for _, f := range rep.Missing {
		if f == access.FeatureSettings || f == access.FeatureBilling {
			t.Errorf("Missing contains assigned feature %s", f)
		}
	}
}

func TestForRole_Unknown(t *testing.T) {
	rep := ForRole(testRegistry(), access.RoleMember)

	if rep.Found {
		t.Error("Found = true, want false")
	}
	if rep.Count != 0 {
		t.Errorf("Count = %d, want 0", rep.Count)
	}
	if len(rep.Features) != 0 {
		t.Errorf("Features = %v, want empty", rep.Features)
	}
	if len(rep.Missing) != rep.TotalKnown {
		t.Errorf("len(Missing) = %d, want %d", len(rep.Missing), rep.TotalKnown)
	}
}

func TestForAll(t *testing.T) {
	reports := ForAll(testRegistry())
	if len(reports) != 2 {
		t.Fatalf("len(reports) = %d, want 2", len(reports))
	}
	if reports[0].Role != access.RoleOwner || reports[1].Role != access.RoleAdmin {
		t.Errorf("roles = %s,%s, want owner,admin", reports[0].Role, reports[1].Role)
	}
}

func TestWriteRoles(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRoles(&buf, ForAll(testRegistry())); err != nil {
		t.Fatalf("WriteRoles() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ROLE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "SETTINGS,BILLING") || !strings.Contains(lines[1], "2/7") {
		t.Errorf("owner row = %q", lines[1])
	}
}

func TestWriteRole_Unknown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRole(&buf, ForRole(testRegistry(), "guest")); err != nil {
		t.Fatalf("WriteRole() error = %v", err)
	}

	fields := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		key, value, _ := strings.Cut(line, ":")
		fields[key] = strings.TrimSpace(value)
	}

	want := map[string]string{"role": "guest", "found": "false", "features": "-", "count": "0"}
	for key, value := range want {
		if fields[key] != value {
			t.Errorf("%s = %q, want %q", key, fields[key], value)
		}
	}
}

func TestWriteFeatures(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFeatures(&buf, access.KnownFeatures()); err != nil {
		t.Fatalf("WriteFeatures() error = %v", err)
	}
	if !strings.Contains(buf.String(), "AUDIT_LOG") {
		t.Errorf("output missing AUDIT_LOG:\n%s", buf.String())
	}
}

func TestWriteDecision(t *testing.T) {
	tests := []struct {
		role    access.Role
		feature access.Feature
		want    string
	}{
		{access.RoleOwner, access.FeatureBilling, "owner BILLING: granted\n"},
		{access.RoleAdmin, access.FeatureBilling, "admin BILLING: denied\n"},
		{"guest", access.FeatureBilling, "guest BILLING: unknown_role\n"},
	}

	reg := testRegistry()
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteDecision(&buf, tt.role, tt.feature, reg.Resolve(tt.role, tt.feature)); err != nil {
				t.Fatalf("WriteDecision() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteDecision() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteIssues(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteIssues(&buf, "builtin", nil); err != nil {
		t.Fatalf("WriteIssues() error = %v", err)
	}
	if buf.String() != "builtin: no issues\n" {
		t.Errorf("WriteIssues(nil) = %q", buf.String())
	}

	buf.Reset()
	issues := []source.Issue{
		{Kind: source.IssueUnknownRole, Index: 0, Role: "guest"},
		{Kind: source.IssueDuplicateRole, Index: 2, Role: "owner"},
	}
	if err := WriteIssues(&buf, "file:p.yaml", issues); err != nil {
		t.Fatalf("WriteIssues() error = %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("got %d lines, want 2:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "file:p.yaml: unknown_role") {
		t.Errorf("output = %q", buf.String())
	}
}
