package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/talentdesk/internal/app"
)

func newLogsCmd(v *viper.Viper) *cobra.Command {
	var (
		lines int
		level string
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the console log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, path, err := app.Logs(appOptions(v), lines, level)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log records in %s\n", path)
				return nil
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of records to print")
	cmd.Flags().StringVar(&level, "level", "info", "minimum level (debug, info, warn, error)")
	return cmd
}
