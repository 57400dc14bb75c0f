package cli

import (
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

type app struct {
	configPath string
	flags      *Config
	cfg        *Config
	log        *log.Entry
}

func NewRootCommand() *cobra.Command {
	a := &app{
		flags: DefaultConfig(),
	}
	cmd := &cobra.Command{
		Use:           "strhash",
		Short:         "Exercise a fixed-capacity chained string hash table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	a.flags.bindFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newHashCommand(a),
		newLoadCommand(a),
	)
	return cmd
}

// setup resolves the configuration: defaults, then the config file, then the
// flags given on the command line.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		loaded, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.override(cmd.Flags(), a.flags)
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(level)
	a.cfg = cfg
	a.log = logger.WithFields(log.Fields{"cmd": cmd.Name()})
	a.log.WithFields(log.Fields{
		"capacity":    cfg.Capacity,
		"hash":        cfg.Hash,
		"max_entries": cfg.MaxEntries,
	}).Debug("configuration resolved")
	return nil
}

func (a *app) tableLogger() *log.Entry {
	return a.log.WithField("component", "hashtable")
}
