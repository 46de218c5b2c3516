package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/steward/internal/destinations"
	"github.com/JaimeStill/steward/pkg/pagination"
)

var destCmd = &cobra.Command{
	Use:   "dest",
	Short: "Manage destination memory",
}

var destListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active destinations",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")

		userID, err := userFlag(cmd)
		if err != nil {
			return err
		}

		ec, err := newEngineContext("ListDestinations")
		if err != nil {
			return err
		}
		defer ec.Close()

		req := pagination.PageRequest{Page: page, PageSize: size}
		if search != "" {
			req.Search = &search
		}

		var filters destinations.Filters
		if category != "" {
			filters.Category = &category
		}

		result, err := ec.engine.Destinations.List(cmd.Context(), userID, req, filters)
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(result)
		}

		if len(result.Data) == 0 {
			fmt.Println("No destinations recorded.")
			return nil
		}

		for _, d := range result.Data {
			lastUsed := "never"
			if d.LastUsedAt != nil {
				lastUsed = d.LastUsedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%s  %-10s  %4d use(s)  %-19s  %s  %s\n",
				d.ID, d.Category, d.UsageCount, lastUsed, d.Color, d.Path)
		}
		fmt.Printf("\npage %d/%d (%d total)\n", result.Page, result.TotalPages, result.Total)
		return nil
	},
}

var destAddCmd = &cobra.Command{
	Use:   "add PATH",
	Short: "Record a destination folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		color, _ := cmd.Flags().GetString("color")
		client, _ := cmd.Flags().GetString("client")

		userID, err := userFlag(cmd)
		if err != nil {
			return err
		}

		clientID, err := uuid.Parse(client)
		if err != nil {
			return fmt.Errorf("invalid --client: %w", err)
		}

		ec, err := newEngineContext("AddDestination")
		if err != nil {
			return err
		}
		defer ec.Close()

		add := destinations.AddCommand{ClientID: clientID, Path: args[0], Category: category}
		if color != "" {
			add.Color = &color
		}

		d, err := ec.engine.Destinations.Add(cmd.Context(), userID, add)
		if err != nil {
			return err
		}

		fmt.Printf("Added %s (%s) with color %s\n", d.Path, d.Category, d.Color)
		fmt.Printf("ID: %s\n", d.ID)
		return nil
	},
}

var destRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a destination and its descendants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := userFlag(cmd)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid destination id: %w", err)
		}

		ec, err := newEngineContext("RemoveDestination")
		if err != nil {
			return err
		}
		defer ec.Close()

		removed, err := ec.engine.Destinations.Remove(cmd.Context(), userID, id)
		if err != nil {
			return err
		}

		fmt.Printf("Removed %d destination(s):\n", len(removed))
		for _, d := range removed {
			fmt.Printf("  %s\n", d.Path)
		}
		return nil
	},
}

var destUseCmd = &cobra.Command{
	Use:   "use PATH",
	Short: "Record a confirmed use of a destination path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := userFlag(cmd)
		if err != nil {
			return err
		}

		ec, err := newEngineContext("RecordUse")
		if err != nil {
			return err
		}
		defer ec.Close()

		if err := ec.engine.Destinations.RecordUse(cmd.Context(), userID, args[0]); err != nil {
			return err
		}

		fmt.Printf("Recorded use of %s\n", args[0])
		return nil
	},
}

func init() {
	destListCmd.Flags().String("user", "", "User ID owning the destination memory")
	destListCmd.Flags().Int("page", 1, "Page number")
	destListCmd.Flags().Int("size", 0, "Page size (0 uses the configured default)")
	destListCmd.Flags().String("category", "", "Filter by category")
	destListCmd.Flags().String("search", "", "Search path and category")
	destListCmd.Flags().Bool("json", false, "Emit the page as JSON")
	destListCmd.MarkFlagRequired("user")

	destAddCmd.Flags().String("user", "", "User ID owning the destination memory")
	destAddCmd.Flags().String("category", "", "Content category")
	destAddCmd.Flags().String("color", "", "Hex color (auto-assigned when omitted)")
	destAddCmd.Flags().String("client", "", "Client ID recording the destination")
	destAddCmd.MarkFlagRequired("user")
	destAddCmd.MarkFlagRequired("category")
	destAddCmd.MarkFlagRequired("client")

	destRemoveCmd.Flags().String("user", "", "User ID owning the destination memory")
	destRemoveCmd.MarkFlagRequired("user")

	destUseCmd.Flags().String("user", "", "User ID owning the destination memory")
	destUseCmd.MarkFlagRequired("user")

	destCmd.AddCommand(destListCmd)
	destCmd.AddCommand(destAddCmd)
	destCmd.AddCommand(destRemoveCmd)
	destCmd.AddCommand(destUseCmd)
	rootCmd.AddCommand(destCmd)
}
