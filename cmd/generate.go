package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/cometdom/internal/codegen"
	"github.com/brogergvhs/cometdom/internal/config"
	"github.com/brogergvhs/cometdom/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagGenOutput string
	flagGenMinify bool
	flagGenStdout bool
	flagGenCheck  bool
)

func init() {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the comet-dom.js module from the element registry",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	generateCmd.Flags().StringVarP(&flagGenOutput, "out", "o", "", "output path of the module (default js/comet-dom.js)")
	generateCmd.Flags().BoolVar(&flagGenMinify, "minify", false, "minify the generated module")
	generateCmd.Flags().BoolVar(&flagGenStdout, "stdout", false, "print the module instead of writing it")
	generateCmd.Flags().BoolVar(&flagGenCheck, "check", false, "fail if the module on disk is out of date, write nothing")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagGenOutput,
		Minify:       flagGenMinify,
	})
	if err != nil {
		return err
	}

	logSvc := newLogger(cfg.Debug)
	defer logSvc.Sync()
	logSvc.Debugf("Config file: %s\n", usedPath)

	opts := codegen.Options{Path: cfg.Output, Minify: cfg.Minify}

	if flagGenStdout {
		return codegen.Render(os.Stdout, opts)
	}

	if flagGenCheck {
		stale, err := codegen.Stale(cfg.Output, opts)
		if err != nil {
			return err
		}
		if stale {
			return fmt.Errorf("%s is out of date, run `cometdom generate`", cfg.Output)
		}
		logSvc.Infof("%s is up to date\n", cfg.Output)
		return nil
	}

	n, err := codegen.WriteFile(cfg.Output, opts)
	if err != nil {
		return err
	}

	logSvc.Infof("Wrote %s (%s)\n", cfg.Output, util.Human(n))
	return nil
}
