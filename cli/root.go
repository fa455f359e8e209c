package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

const configFlag = "config"

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "screener <command> <subcommand> [flags]",
		Short:         "Stock, product and task screening service",
		Long:          "Screen stocks, browse products and track tasks over HTTP.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ screener server start
		$ screener stock list -f max_pe_ratio=20
		$ screener product view EB-GO
		$ screener task block T-1 "waiting on review"
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'screener <command> --help' for info about a command.
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := cmd.Flags().GetString(configFlag)
			if err != nil || cfgFile == "" {
				return err
			}
			return LoadConfigFromFlag(cfgFile, cfg)
		},
	}

	rootCmd.AddCommand(
		serverCmd(cfg),
		configCommand(cfg),
		stocksCommand(cfg),
		productsCommand(cfg),
		tasksCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("screener"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
