package access

import "fmt"

// Feature identifies a discrete capability or settings area gated by role.
type Feature string

// Feature constants.
const (
	FeatureSettings     Feature = "SETTINGS"
	FeatureBilling      Feature = "BILLING"
	FeatureUsers        Feature = "USERS"
	FeatureProducts     Feature = "PRODUCTS"
	FeatureReports      Feature = "REPORTS"
	FeatureIntegrations Feature = "INTEGRATIONS"
	FeatureAuditLog     Feature = "AUDIT_LOG"
)

// knownFeatures is the closed feature enumeration. A feature's position in
// this slice is its bit in a featureSet, so new features are appended only.
var knownFeatures = []Feature{
	FeatureSettings,
	FeatureBilling,
	FeatureUsers,
	FeatureProducts,
	FeatureReports,
	FeatureIntegrations,
	FeatureAuditLog,
}

// featureIndex maps each known feature to its bit position.
var featureIndex = func() map[Feature]int {
	idx := make(map[Feature]int, len(knownFeatures))
	for i, f := range knownFeatures {
		idx[f] = i
	}
	return idx
}()

// KnownFeatures returns the feature enumeration in canonical order.
// The returned slice is a copy.
func KnownFeatures() []Feature {
	features := make([]Feature, len(knownFeatures))
	copy(features, knownFeatures)
	return features
}

// IsKnown reports whether f belongs to the feature enumeration.
func (f Feature) IsKnown() bool {
	_, ok := featureIndex[f]
	return ok
}

// String implements fmt.Stringer.
func (f Feature) String() string {
	return string(f)
}

// ParseFeature converts configuration text into a Feature.
// Returns ErrUnknownFeature for names outside the enumeration.
func ParseFeature(s string) (Feature, error) {
	f := Feature(s)
	if !f.IsKnown() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
	}
	return f, nil
}
