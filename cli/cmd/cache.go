package cmd

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/docwiki/goscan"
	"github.com/vippsas/docwiki/store"
	"github.com/vippsas/docwiki/wikidoc"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Scan the directory tree and populate the comment cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, err := uuid.NewV4()
		if err != nil {
			return err
		}
		logger := logrus.StandardLogger().WithField("run_id", runID.String())

		cfg, err := LoadConfig()
		if err != nil {
			logger.WithError(err).Warn("no config found, using in-memory store")
			cfg = Config{}
		}

		ctx := context.Background()
		s, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		reporter := wikidoc.NewLogReporter(logger)
		pkgs, err := goscan.Load(directory, "./...")
		if err != nil {
			return err
		}
		comments, err := goscan.Scan(ctx, pkgs, reporter)
		if err != nil {
			return err
		}

		var stored, reused int
		for _, c := range comments {
			key := store.ContentKey(c.Raw)

			if _, ok, err := s.Get(ctx, key); err != nil {
				return err
			} else if ok {
				reused++
				continue
			}

			if err := s.Put(ctx, key, c.Parsed); err != nil {
				return err
			}
			stored++
		}

		logger.WithFields(logrus.Fields{"stored": stored, "reused": reused}).Info("cache run complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
