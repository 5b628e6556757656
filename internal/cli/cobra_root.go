package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// buildRootCmdWith constructs the cobra command tree wired to the fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "zpack",
		Short:         "Package Amazing Z-Image workflow releases",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfg.WorkDir, "workdir", "C", cfg.WorkDir, "Working directory holding the workflow files (defaults ZPACK_WORKDIR or .)")
	root.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Optional config file (.yaml/.json/.toml) overriding families and fixed filenames")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults ZPACK_LOG_LEVEL or info)")

	releaseCmd := &cobra.Command{
		Use:   "release [version] [output-dir]",
		Short: "Build one zip archive per workflow family",
		Example: "  zpack release v1.2.3\n" +
			"  zpack release v1.2.3 /tmp/out\n" +
			"  zpack release            # placeholder version, system temp output",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, outputBase := "", ""
			if len(args) > 0 {
				version = args[0]
			}
			if len(args) > 1 {
				outputBase = args[1]
			}
			return fnRelease(cfg, version, outputBase)
		},
	}
	releaseCmd.Flags().BoolVar(&cfg.SkipValidate, "skip-validate", envBool("ZPACK_SKIP_VALIDATE", false), "Skip parsing bundled workflows as ComfyUI graphs")
	releaseCmd.Flags().BoolVar(&cfg.NoProgress, "no-progress", false, "Disable the archiving progress bar")
	root.AddCommand(releaseCmd)

	validateCmd := &cobra.Command{
		Use:     "validate [dir]",
		Short:   "Parse every family's workflow files as ComfyUI graphs",
		Example: "  zpack validate\n  zpack validate ./workflows",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.WorkDir
			if len(args) > 0 {
				dir = args[0]
			}
			return fnValidate(cfg, dir)
		},
	}
	root.AddCommand(validateCmd)

	stylesCmd := &cobra.Command{
		Use:     "styles <family>",
		Short:   "Print the styles declared in a family's style listing",
		Example: "  zpack styles amazing-z-image",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnStyles(cfg, args[0])
		},
	}
	root.AddCommand(stylesCmd)

	familiesCmd := &cobra.Command{
		Use:   "families",
		Short: "List configured families and the archives they produce",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			return fnFamilies(cfg, version)
		},
	}
	familiesCmd.Flags().String("version", "", "Show archive names for this version")
	root.AddCommand(familiesCmd)

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}
