package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jimmicro/version"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimyag/assetdash/internal/assetdash"
	"github.com/jimyag/assetdash/internal/assetdash/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// newRootCmd 不带子命令时启动 HTTP 服务
func newRootCmd() *cobra.Command {
	var cfgFile string
	v := config.NewViper()

	loadConfig := func() (*config.Config, error) {
		return config.Load(v, cfgFile)
	}

	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		server, err := assetdash.New(cfg)
		if err != nil {
			return err
		}
		return server.Run(cmd.Context())
	}

	cmd := &cobra.Command{
		Use:           "assetdash",
		Short:         "Security asset dashboard for certificates, SSH keys, code signing keys and audit logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.assetdash.yaml or ./.assetdash.yaml)")
	flags.String("address", v.GetString(config.KeyAddress), "HTTP listen address")
	flags.String("data-dir", v.GetString(config.KeyDataDir), "data directory for the snapshot store and logs")
	flags.String("log-level", v.GetString(config.KeyLogLevel), "log level (debug, info, warn, error)")
	flags.Duration("load-latency", v.GetDuration(config.KeyLoadLatency), "artificial delay before each collection load")

	bindFlag(v, config.KeyAddress, cmd, "address")
	bindFlag(v, config.KeyDataDir, cmd, "data-dir")
	bindFlag(v, config.KeyLogLevel, cmd, "log-level")
	bindFlag(v, config.KeyLoadLatency, cmd, "load-latency")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and the web dashboard",
		RunE:  serve,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return assetdash.RunTUI(cmd.Context(), cfg)
		},
	})

	return cmd
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	cobra.CheckErr(v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)))
}
