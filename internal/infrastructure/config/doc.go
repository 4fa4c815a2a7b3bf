// Package config handles loading and validating featuregate configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (FEATUREGATE_*)
//   - Validation of required fields
//   - Default value handling
//
// Configuration is loaded once at startup. The permission table itself is
// not part of this file; permissions.source only says where to find it.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Permissions.Source)
package config
