package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the label catalog faces are named from",
	RunE: func(cmd *cobra.Command, args []string) error {

		cfg, err := loadConfig()

		if err != nil {
			return err
		}

		labels, err := catalog(cfg)

		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d labels\n", len(labels))
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(labels, ", "))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}
