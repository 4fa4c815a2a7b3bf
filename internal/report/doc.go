// Package report renders registry query results for humans.
//
// It is the diagnostic sink of the featuregate CLI: role reports are
// written as aligned tables with text/tabwriter, fixture issues as one
// line each. Nothing here mutates the registry.
package report
