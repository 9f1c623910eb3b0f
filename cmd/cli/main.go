package main

import (
	"fmt"
	"os"

	"shortlist/pkg/config"
	"shortlist/pkg/core"
	"shortlist/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configPath string
	indexKind  string
	noSeed     bool
)

var rootCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Skill-based candidate shortlisting",
	Long: `shortlist keeps candidates (name, skill, score) in a balanced ordered
index and lets you list them by score or search them by skill.`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to shortlist.yaml")
	rootCmd.Flags().StringVar(&indexKind, "index", "", "index kind override (avl, btree)")
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty index")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if indexKind != "" {
		cfg.Index.Kind = indexKind
	}

	logger := logging.New(cfg.Log)
	sl, err := core.NewShortlist(cfg, logger)
	if err != nil {
		return err
	}
	if !noSeed {
		sl.Seed(cfg.Seed)
	}

	NewMenu(sl, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Display).Run()
	logger.Debug("session stats", "stats", sl.Stats())
	return nil
}
