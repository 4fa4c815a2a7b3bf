package access

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "owner", input: "owner", want: RoleOwner},
		{name: "platform admin", input: "platformAdmin", want: RolePlatformAdmin},
		{name: "case sensitive", input: "Owner", wantErr: true},
		{name: "unknown", input: "guest", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRole) {
					t.Errorf("ParseRole(%q) error = %v, want ErrUnknownRole", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFeature(t *testing.T) {
	if f, err := ParseFeature("BILLING"); err != nil || f != FeatureBilling {
		t.Errorf("ParseFeature(BILLING) = %q, %v", f, err)
	}
	if _, err := ParseFeature("billing"); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("ParseFeature(billing) error = %v, want ErrUnknownFeature", err)
	}
}

func TestKnownRoles_ReturnsCopy(t *testing.T) {
	roles := KnownRoles()
	roles[0] = "modified"

	if KnownRoles()[0] == "modified" {
		t.Error("KnownRoles should return a copy")
	}
}

func TestKnownFeatures_Unique(t *testing.T) {
	seen := make(map[Feature]bool)
	for _, f := range KnownFeatures() {
		if seen[f] {
			t.Errorf("feature %s listed twice", f)
		}
		seen[f] = true
		if !f.IsKnown() {
			t.Errorf("%s should be known", f)
		}
	}
	if len(seen) > maxFeatures {
		t.Errorf("feature enumeration has %d entries, bitset holds %d", len(seen), maxFeatures)
	}
}

func TestDefaultEntries_Valid(t *testing.T) {
	seen := make(map[Role]bool)
	for _, e := range DefaultEntries() {
		if !e.Role.IsKnown() {
			t.Errorf("default entry uses unknown role %q", e.Role)
		}
		if seen[e.Role] {
			t.Errorf("default table lists %s twice", e.Role)
		}
		seen[e.Role] = true
		for _, f := range e.Features {
			if !f.IsKnown() {
				t.Errorf("%s uses unknown feature %q", e.Role, f)
			}
		}
	}
}

func TestFeatureSet(t *testing.T) {
	var s featureSet
	s = s.set(0).set(3).set(3)

	if !s.has(0) || !s.has(3) {
		t.Error("set bits should be reported")
	}
	if s.has(1) {
		t.Error("unset bit should not be reported")
	}
	if s.count() != 2 {
		t.Errorf("count() = %d, want 2", s.count())
	}
	if s.has(-1) || s.has(maxFeatures) {
		t.Error("out-of-range bits should never be set")
	}
	if s.set(maxFeatures) != s {
		t.Error("setting an out-of-range bit should be a no-op")
	}
}
