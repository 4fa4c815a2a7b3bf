package source

import (
	"fmt"

	"github.com/nerrad567/featuregate/internal/access"
)

// IssueKind classifies a fixture defect.
type IssueKind string

// Issue kinds reported by Validate.
const (
	IssueEmptyRole        IssueKind = "empty_role"
	IssueUnknownRole      IssueKind = "unknown_role"
	IssueDuplicateRole    IssueKind = "duplicate_role"
	IssueUnknownFeature   IssueKind = "unknown_feature"
	IssueDuplicateFeature IssueKind = "duplicate_feature"
)

// Issue is one defect found in a fixture.
type Issue struct {
	Kind IssueKind

	// Index is the position of the offending entry in the fixture.
	Index int

	Role    access.Role
	Feature access.Feature
}

// String renders the issue for humans.
func (i Issue) String() string {
	switch i.Kind {
	case IssueEmptyRole:
		return fmt.Sprintf("entry %d: role name is empty", i.Index)
	case IssueUnknownRole:
		return fmt.Sprintf("entry %d: unknown role %q", i.Index, i.Role)
	case IssueDuplicateRole:
		return fmt.Sprintf("entry %d: role %q already defined, entry ignored", i.Index, i.Role)
	case IssueUnknownFeature:
		return fmt.Sprintf("entry %d: role %q: unknown feature %q", i.Index, i.Role, i.Feature)
	case IssueDuplicateFeature:
		return fmt.Sprintf("entry %d: role %q: feature %q listed twice", i.Index, i.Role, i.Feature)
	default:
		return fmt.Sprintf("entry %d: %s", i.Index, i.Kind)
	}
}

// Validate reports every entry or feature that access.NewRegistry would
// ignore. Issues are ordered by entry, then by feature position.
//
// Features of a duplicate or unknown role are not inspected: the whole
// entry is ignored by the registry.
func Validate(entries []access.Entry) []Issue {
	var issues []Issue
	seen := make(map[access.Role]bool, len(entries))

	for i, e := range entries {
		switch {
		case e.Role == "":
			issues = append(issues, Issue{Kind: IssueEmptyRole, Index: i})
			continue
		case !e.Role.IsKnown():
			issues = append(issues, Issue{Kind: IssueUnknownRole, Index: i, Role: e.Role})
			continue
		case seen[e.Role]:
			issues = append(issues, Issue{Kind: IssueDuplicateRole, Index: i, Role: e.Role})
			continue
		}
		seen[e.Role] = true

		features := make(map[access.Feature]bool, len(e.Features))
		for _, f := range e.Features {
			if !f.IsKnown() {
				issues = append(issues, Issue{Kind: IssueUnknownFeature, Index: i, Role: e.Role, Feature: f})
				continue
			}
			if features[f] {
				issues = append(issues, Issue{Kind: IssueDuplicateFeature, Index: i, Role: e.Role, Feature: f})
				continue
			}
			features[f] = true
		}
	}

	return issues
}
