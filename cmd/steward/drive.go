package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/steward/internal/drives"
	"github.com/JaimeStill/steward/pkg/formatting"
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Manage drive identities and mounts",
}

var driveResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Derive a durable identity from device attributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		serial, _ := cmd.Flags().GetString("serial")
		fsUUID, _ := cmd.Flags().GetString("fs-uuid")
		label, _ := cmd.Flags().GetString("label")
		sizeArg, _ := cmd.Flags().GetString("size")

		var size int64
		if sizeArg != "" {
			parsed, err := formatting.ParseBytes(sizeArg)
			if err != nil {
				return fmt.Errorf("invalid --size: %w", err)
			}
			size = parsed
		}

		identity := drives.Resolve(drives.DeviceRef{
			Serial:    serial,
			FsUUID:    fsUUID,
			Label:     label,
			SizeBytes: size,
		})
		if identity == nil {
			return fmt.Errorf("no durable identity signal (need serial, fs uuid, or label with size)")
		}

		if asJSON {
			return printJSON(identity)
		}

		fmt.Printf("Identity:   %s\n", identity.Value)
		fmt.Printf("Method:     %s\n", identity.Method)
		fmt.Printf("Confidence: %s\n", identity.Confidence)
		if size > 0 {
			fmt.Printf("Size:       %s\n", formatting.FormatBytes(size, 1))
		}
		return nil
	},
}

var driveRecordCmd = &cobra.Command{
	Use:   "record IDENTITY",
	Short: "Record a drive mount for a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := cmd.Flags().GetString("client")
		mount, _ := cmd.Flags().GetString("mount")

		clientID, err := uuid.Parse(client)
		if err != nil {
			return fmt.Errorf("invalid --client: %w", err)
		}

		ec, err := newEngineContext("RecordMount")
		if err != nil {
			return err
		}
		defer ec.Close()

		m, err := ec.engine.Drives.RecordMount(cmd.Context(), drives.RecordCommand{
			DriveIdentity: args[0],
			ClientID:      clientID,
			MountPoint:    mount,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s at %s for client %s\n", m.DriveIdentity, m.MountPoint, m.ClientID)
		return nil
	},
}

var driveMountsCmd = &cobra.Command{
	Use:   "mounts IDENTITY",
	Short: "List recorded mounts for a drive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		ec, err := newEngineContext("ListMounts")
		if err != nil {
			return err
		}
		defer ec.Close()

		mounts, err := ec.engine.Drives.Mounts(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(mounts)
		}

		if len(mounts) == 0 {
			fmt.Println("No mounts recorded.")
			return nil
		}

		for _, m := range mounts {
			state := "available"
			if !m.Available {
				state = "unavailable"
			}
			fmt.Printf("%s  %-11s  %s  %s\n",
				m.ClientID, state, m.LastSeenAt.Format("2006-01-02 15:04:05"), m.MountPoint)
		}
		return nil
	},
}

func init() {
	driveResolveCmd.Flags().String("serial", "", "Hardware serial number")
	driveResolveCmd.Flags().String("fs-uuid", "", "Filesystem UUID")
	driveResolveCmd.Flags().String("label", "", "Volume label")
	driveResolveCmd.Flags().String("size", "", "Volume size (raw bytes or human-readable, e.g. 500GB)")
	driveResolveCmd.Flags().Bool("json", false, "Emit the identity as JSON")

	driveRecordCmd.Flags().String("client", "", "Client ID recording the mount")
	driveRecordCmd.Flags().String("mount", "", "Mount point on this client")
	driveRecordCmd.MarkFlagRequired("client")
	driveRecordCmd.MarkFlagRequired("mount")

	driveMountsCmd.Flags().Bool("json", false, "Emit mounts as JSON")

	driveCmd.AddCommand(driveResolveCmd)
	driveCmd.AddCommand(driveRecordCmd)
	driveCmd.AddCommand(driveMountsCmd)
	rootCmd.AddCommand(driveCmd)
}
