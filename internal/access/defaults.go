package access

// defaultEntries is the bundled role table used when no fixture is configured.
// Owner holds every feature; platformAdmin is deliberately kept out of BILLING.
var defaultEntries = []Entry{
	{
		Role: RoleOwner,
		Features: []Feature{
			FeatureSettings,
			FeatureBilling,
			FeatureUsers,
			FeatureProducts,
			FeatureReports,
			FeatureIntegrations,
			FeatureAuditLog,
		},
	},
	{
		Role: RoleAdmin,
		Features: []Feature{
			FeatureSettings,
			FeatureUsers,
			FeatureProducts,
			FeatureReports,
		},
	},
	{
		Role: RoleMember,
		Features: []Feature{
			FeatureProducts,
		},
	},
	{
		Role: RolePlatformAdmin,
		Features: []Feature{
			FeatureSettings,
			FeatureUsers,
			FeatureIntegrations,
			FeatureAuditLog,
		},
	},
}

// DefaultEntries returns a copy of the bundled role table.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	for i, e := range defaultEntries {
		entries[i] = e.clone()
	}
	return entries
}

// Default builds a Registry from the bundled role table.
func Default() *Registry {
	return NewRegistry(DefaultEntries()...)
}
