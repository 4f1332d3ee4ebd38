package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/tower-placement/textio"
)

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <instance> <solution>",
		Short: "Check a solution against its instance and recompute its penalty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args[0], args[1])
		},
	}
}

func runAudit(cmd *cobra.Command, instancePath, solutionPath string) error {
	in, err := openInput(cmd, instancePath)
	if err != nil {
		return err
	}
	inst, err := textio.ParseInstance(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("read instance %s: %w", instancePath, err)
	}

	in, err = openInput(cmd, solutionPath)
	if err != nil {
		return err
	}
	sol, err := textio.ParseSolution(in, inst)
	in.Close()
	if err != nil {
		return fmt.Errorf("read solution %s: %w", solutionPath, err)
	}

	out := cmd.OutOrStdout()
	if err := sol.Validate(); err != nil {
		fmt.Fprintf(out, "valid: false\ntowers: %d\n", len(sol.Towers))
		return fmt.Errorf("solution %s: %w", solutionPath, err)
	}
	fmt.Fprintf(out, "valid: true\ntowers: %d\npenalty: %s\n", len(sol.Towers), formatPenalty(sol.Penalty()))
	return nil
}

func formatPenalty(p float64) string {
	return fmt.Sprintf("%.6f", p)
}
