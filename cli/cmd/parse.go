package cmd

import (
	"context"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/docwiki/goscan"
	"github.com/vippsas/docwiki/wikidoc"
)

var debug bool

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Scan the directory tree and report every parsed documentation comment",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()
		reporter := wikidoc.NewLogReporter(logger)

		pkgs, err := goscan.Load(directory, "./...")
		if err != nil {
			return err
		}

		comments, err := goscan.Scan(context.Background(), pkgs, reporter)
		if err != nil {
			return err
		}

		for _, c := range comments {
			fmt.Printf("%s.%s (%s:%d)\n", c.Package, c.Decl, c.Pos.File, c.Pos.Line)
			if debug {
				fmt.Println(repr.String(c.Parsed, repr.Indent("  ")))
				continue
			}
			fmt.Println(wikidoc.Render(c.Parsed.Short))
		}

		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&debug, "debug", false, "dump the full parsed AST for each comment via repr")
	rootCmd.AddCommand(parseCmd)
}
