package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/talentdesk/internal/app"
	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/table"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	var (
		search string
		preset string
		sortBy string
		out    string
		where  []string
	)

	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Write the filtered rows of a resource to an xlsx file",
		Long: "Fetch one resource and write the rows the console would show for the\n" +
			"given search, preset and sort.\n\nResources: " + resourceNames(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := recruit.ParseResource(args[0])
			if err != nil {
				return err
			}
			filters, err := parseWhere(where)
			if err != nil {
				return err
			}
			path, rows, err := app.Export(cmd.Context(), appOptions(v), app.ExportOptions{
				Resource: res,
				Search:   search,
				Preset:   preset,
				Sort:     sortBy,
				Where:    filters,
				Out:      out,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", rows, path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&search, "search", "s", "", "search text")
	f.StringVarP(&preset, "preset", "p", "", "search columns preset, e.g. \"Last name\" or \"Exact\"")
	f.StringVar(&sortBy, "sort", "", "sort choice (Newest or Oldest)")
	f.StringVarP(&out, "out", "o", "", "output file (default <resource>-<timestamp>.xlsx)")
	f.StringArrayVarP(&where, "where", "w", nil, "fixed filter column=value, repeatable")
	return cmd
}

func parseWhere(pairs []string) ([]table.ColumnFilter, error) {
	out := make([]table.ColumnFilter, 0, len(pairs))
	for _, pair := range pairs {
		col, val, ok := strings.Cut(pair, "=")
		col = strings.TrimSpace(col)
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid --where %q, want column=value", pair)
		}
		out = append(out, table.ColumnFilter{ColumnID: col, Value: strings.TrimSpace(val)})
	}
	return out, nil
}

func resourceNames() string {
	names := make([]string, 0, len(recruit.Resources))
	for _, r := range recruit.Resources {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
