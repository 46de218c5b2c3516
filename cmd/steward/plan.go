package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/steward/internal/placement"
)

var planCmd = &cobra.Command{
	Use:   "plan FILE...",
	Short: "Build placement plans for a batch of files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		root, _ := cmd.Flags().GetString("root")

		userID, err := userFlag(cmd)
		if err != nil {
			return err
		}

		ec, err := newEngineContext("PlanBatch")
		if err != nil {
			return err
		}
		defer ec.Close()

		plans, err := ec.engine.Planner.PlanBatch(cmd.Context(), userID, args, root)
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(plans)
		}

		for _, p := range plans {
			printPlan(p)
		}
		return nil
	},
}

func printPlan(p placement.Plan) {
	marker := " "
	if p.IsFallback {
		marker = "!"
	}
	fmt.Printf("%s %s\n", marker, p.File)
	for _, step := range p.Steps {
		fmt.Printf("    %-6s -> %s\n", step.Kind, step.Target)
	}
	fmt.Printf("    %s (confidence %.2f)\n", p.Reason, p.Confidence)
}

func init() {
	planCmd.Flags().Bool("json", false, "Emit plans as JSON")
	planCmd.Flags().String("user", "", "User ID owning the destination memory")
	planCmd.Flags().String("root", "", "Source root for fallback placement")
	planCmd.MarkFlagRequired("user")
	planCmd.MarkFlagRequired("root")
	rootCmd.AddCommand(planCmd)
}
