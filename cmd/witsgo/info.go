package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Report the data schema versions the store supports",
		Run: func(cmd *cobra.Command, args []string) {
			c, err := newStoreClient()
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			versions, err := c.GetVersion(cmd.Context())
			if err != nil {
				cmd.PrintErrln(err)
				return
			}
			cmd.Println(versions)
		},
	}
}

func capsCmd() *cobra.Command {
	var dataVersion string

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Fetch the store's capabilities document",
		Run: func(cmd *cobra.Command, args []string) {
			c, err := newStoreClient()
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			caps, err := c.GetCap(cmd.Context(), dataVersion)
			if err != nil {
				cmd.PrintErrln(err)
				return
			}
			cmd.Println(caps)
		},
	}

	cmd.Flags().StringVar(&dataVersion, "data-version", "1.4.1.1", "Data schema version to ask capabilities for")

	return cmd
}

func basemsgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basemsg <code>",
		Short: "Resolve the message text for a result code",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				cmd.PrintErrln("Must specify a result code")
				return
			}

			code, err := strconv.ParseInt(args[0], 10, 16)
			if err != nil {
				cmd.PrintErrln("Result code must be a number:", err)
				return
			}

			c, err := newStoreClient()
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			msg, err := c.GetBaseMsg(cmd.Context(), int16(code))
			if err != nil {
				cmd.PrintErrln(err)
				return
			}
			cmd.Println(msg)
		},
	}
}
