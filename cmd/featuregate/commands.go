package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nerrad567/featuregate/internal/access"
	"github.com/nerrad567/featuregate/internal/report"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

func newRolesCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List every registered role with its features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}

			reports := report.ForAll(reg)
			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			return report.WriteRoles(cmd.OutOrStdout(), reports)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "features",
		Short:       "List the known features",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteFeatures(cmd.OutOrStdout(), access.KnownFeatures())
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <role>",
		Short: "Show the features of one role",
		Long: `Show the features of one role.

A role that is not in the table is reported with found: false; this is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}

			rep := report.ForRole(reg, access.Role(args[0]))
			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			return report.WriteRole(cmd.OutOrStdout(), rep)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <role> <feature>",
		Short: "Check whether a role has a feature",
		Long: `Check whether a role has a feature.

Prints granted, denied, or unknown_role when the role is not in the table.
The feature must be one of the known features.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			feature, err := access.ParseFeature(args[1])
			if err != nil {
				return err
			}

			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}

			role := access.Role(args[0])
			return report.WriteDecision(cmd.OutOrStdout(), role, feature, reg.Resolve(role, feature))
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report defects in the configured permission source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, issues, name, err := a.build(cmd.Context(), false)
			if err != nil {
				return err
			}

			if err := report.WriteIssues(cmd.OutOrStdout(), name, issues); err != nil {
				return err
			}
			if len(issues) > 0 {
				return fmt.Errorf("%s: %w (%d)", name, errFixtureIssues, len(issues))
			}
			return nil
		},
	}
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", outputTable, "output format: table or json")
}

func checkOutput(output string) error {
	switch output {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table or json)", output)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
