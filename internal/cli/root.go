package cli

import (
	"fmt"
	"os"

	"lab_hours_bot/internal/config"
	"lab_hours_bot/internal/logger"
	"lab_hours_bot/internal/repository"
	"lab_hours_bot/internal/service"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs to build its dependencies.
type app struct {
	fs      afero.Fs
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd builds the command tree against the real filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs(), viper.New())
}

func newRootCmd(fs afero.Fs, v *viper.Viper) *cobra.Command {
	a := &app{fs: fs, v: v}

	root := &cobra.Command{
		Use:   "lab-hours-bot",
		Short: "Chat bot that logs worked hours to a CSV ledger",
		Long: `lab-hours-bot logs messages like "14:30-16:30 doing tasks" to a CSV file
and answers "show" or "show MM-YYYY" with a summary and total hours.

Serve it over HTTP for a chat channel, or talk to it directly with "chat".`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./configs/config.yml)")
	flags.String("ledger", "", "path of the hours CSV file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	bindFlag(v, "ledger.path", flags.Lookup("ledger"))
	bindFlag(v, "log.level", flags.Lookup("log-level"))

	root.AddCommand(a.newServeCmd(), a.newChatCmd(), a.newShowCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	cobra.CheckErr(v.BindPFlag(key, f))
}

// build loads config and wires the service layer.
func (a *app) build() (config.Config, *logger.Logger, *service.Service, error) {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log := logger.Get(cfg.Log.Level)

	repos := repository.NewRepository(a.fs, cfg.Ledger.Path)
	return cfg, log, service.NewService(repos, log), nil
}
