// Package cmd is the cardodge command line
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/game"
	"github.com/golangdaddy/cardodge/models"
	"github.com/golangdaddy/cardodge/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	root := &cobra.Command{
		Use:          "cardodge",
		Short:        "Dodge traffic on a road that keeps getting wider",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String("scores", "", "high score file (default ~/.cardodge/scores.json)")

	f := root.Flags()
	f.String("frontend", config.FrontendDesktop, "desktop or terminal")
	f.Bool("shoulder", false, "open and close a shoulder lane on a timer")
	f.Int64("seed", 0, "random seed, 0 picks one from the clock")
	f.Bool("mute", false, "disable sound")
	f.Float64("scale", 1, "desktop window scale")

	bindFlags(v, map[string]*pflag.Flag{
		"storage.path":     pf.Lookup("scores"),
		"frontend.kind":    f.Lookup("frontend"),
		"shoulder.enabled": f.Lookup("shoulder"),
		"frontend.seed":    f.Lookup("seed"),
		"frontend.mute":    f.Lookup("mute"),
		"frontend.scale":   f.Lookup("scale"),
	})

	root.AddCommand(newHighScoreCmd(v, &cfgFile))
	return root
}

func bindFlags(v *viper.Viper, flags map[string]*pflag.Flag) {
	for key, flag := range flags {
		if err := v.BindPFlag(key, flag); err != nil {
			// Only fails on a nil flag, which is a wiring mistake
			panic(fmt.Sprintf("failed to bind flag for %s: %v", key, err))
		}
	}
}

// scoreStore opens the configured high score file
func scoreStore(cfg *config.Config) *models.FileStore {
	path := cfg.Storage.Path
	if path == "" {
		path = models.DefaultPath()
	}
	return models.NewFileStore(path)
}

func play(ctx context.Context, cfg *config.Config) error {
	store := scoreStore(cfg)

	// The terminal frontend owns the screen, so logs go to a file beside
	// the scores instead.
	var out io.Writer = os.Stderr
	if cfg.Frontend.Kind == config.FrontendTerminal {
		logFile, err := openLogFile(filepath.Join(filepath.Dir(store.Path()), "cardodge.log"))
		if err != nil {
			return err
		}
		defer logFile.Close()
		out = logFile
	}
	engineLog := log.New(out, "[engine] ", log.LstdFlags)

	seed := cfg.Frontend.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engineLog.Printf("Using seed %d, scores at %s", seed, store.Path())

	eng, err := engine.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	session := engine.NewSession(eng, store, engineLog)

	switch cfg.Frontend.Kind {
	case config.FrontendTerminal:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tui.Run(ctx, session, tui.Options{
			Mute:   cfg.Frontend.Mute,
			Logger: log.New(out, "[tui] ", log.LstdFlags),
		})
	default:
		return game.Run(session, game.Options{
			Scale:  cfg.Frontend.Scale,
			Mute:   cfg.Frontend.Mute,
			Seed:   seed,
			Logger: log.New(out, "[desktop] ", log.LstdFlags),
		})
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
