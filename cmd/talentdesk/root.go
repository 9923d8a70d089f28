package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/talentdesk/internal/app"
	"github.com/five82/talentdesk/internal/config"
)

const appName = "talentdesk"

// newViper reads TALENTDESK_* variables, e.g. TALENTDESK_API_TOKEN for --api-token.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TALENTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "talentdesk is a terminal console for the recruitment pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := appOptions(v)
			opts.ExportDir = v.GetString("export-dir")
			return app.Run(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ~/.config/talentdesk/config.toml)")
	pf.String("prefs", "", "preferences file (default ~/.config/talentdesk/prefs.toml)")
	pf.String("api-url", "", "recruitment API base URL")
	pf.String("api-token", "", "bearer token sent to the API")
	pf.String("log-file", "", "log file path")
	pf.Int("poll", 0, "refresh interval in seconds")
	pf.BoolP("debug", "d", false, "verbose/debug logging")
	pf.BoolP("json", "j", false, "json format for logging")
	root.Flags().String("export-dir", "", "directory for exports started from the console")

	// Flags win over TALENTDESK_* variables, which win over the config file.
	_ = v.BindPFlags(pf)
	_ = v.BindPFlags(root.Flags())

	root.AddCommand(newExportCmd(v), newLogsCmd(v), newVersionCmd())
	return root
}

func appOptions(v *viper.Viper) app.Options {
	return app.Options{
		ConfigPath: v.GetString("config"),
		PrefsPath:  v.GetString("prefs"),
		Overrides: config.Config{
			APIURL:      v.GetString("api-url"),
			APIToken:    v.GetString("api-token"),
			LogPath:     v.GetString("log-file"),
			PollSeconds: v.GetInt("poll"),
		},
		JSONLog: v.GetBool("json"),
		Debug:   v.GetBool("debug"),
	}
}
