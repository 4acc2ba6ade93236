package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/slipway-ci/slipway/internal/adapters/docker"
	"github.com/slipway-ci/slipway/internal/adapters/git"
	"github.com/slipway-ci/slipway/internal/adapters/store"
	"github.com/slipway-ci/slipway/internal/config"
	"github.com/slipway-ci/slipway/internal/core/pipeline"
	"github.com/slipway-ci/slipway/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "slipway",
	Short: "Build and push container images from git repositories",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the build/push pipeline once for a repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := viper.GetString("repo")
		if repo == "" {
			return fmt.Errorf("--repo is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		source := git.NewAdapter(logger)
		builder, err := docker.NewBuilder(logger)
		if err != nil {
			return err
		}
		registry, err := docker.NewRegistry(cfg.Registry, logger)
		if err != nil {
			return err
		}

		pipe := pipeline.New(source, builder, registry, store.NewMemory(), cfg.ImageRepo, logger)
		build, err := pipe.Enqueue(repo, viper.GetString("ref"), viper.GetString("sha"))
		if err != nil {
			return err
		}
		if err := pipe.Run(cmd.Context(), build); err != nil {
			return err
		}
		logger.Info("pipeline completed", zap.String("build", build.ID))
		return nil
	},
}

func init() {
	runCmd.Flags().String("repo", "", "Repository clone URL")
	runCmd.Flags().String("sha", "", "Commit SHA to build (defaults to HEAD)")
	runCmd.Flags().String("ref", "refs/heads/main", "Git ref being built")
	viper.BindPFlags(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
