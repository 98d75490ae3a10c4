package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/brogergvhs/cometdom/internal/config"
	"github.com/brogergvhs/cometdom/internal/dom"
	"github.com/brogergvhs/cometdom/internal/registry"

	"github.com/spf13/cobra"
)

var flagBindingsPage string

func init() {
	bindingsCmd := &cobra.Command{
		Use:   "bindings",
		Short: "List the element registry, optionally resolved against a page",
		Args:  cobra.NoArgs,
		RunE:  runBindings,
	}

	bindingsCmd.Flags().StringVar(&flagBindingsPage, "page", "", "HTML file or URL to resolve the bindings against")

	rootCmd.AddCommand(bindingsCmd)
}

func runBindings(cmd *cobra.Command, _ []string) error {
	var reg *registry.Registry
	if flagBindingsPage != "" {
		cfg, _, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		logSvc := newLogger(cfg.Debug)
		defer logSvc.Sync()

		client, err := newPageClient(cfg, logSvc)
		if err != nil {
			return err
		}

		doc, err := dom.NewLoader(client, logSvc).Load(cmd.Context(), flagBindingsPage)
		if err != nil {
			return err
		}
		reg = registry.Build(doc)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	header := "SECTION\tNAME\tLOOKUP\tSELECTOR"
	if reg != nil {
		header += "\tFOUND"
	}
	_, _ = fmt.Fprintln(w, header)

	for _, s := range registry.Sections() {
		for _, b := range s.Bindings {
			sel := b.Selector
			if b.Lookup == registry.Group {
				sel = fmt.Sprintf("%d members", len(b.Members))
			}
			row := fmt.Sprintf("%s\t%s\t%s\t%s", s.Title, b.Name, b.Lookup, sel)
			if reg != nil {
				row += "\t" + found(reg, b)
			}
			_, _ = fmt.Fprintln(w, row)
		}
	}

	return w.Flush()
}

func found(reg *registry.Registry, b registry.Binding) string {
	switch b.Lookup {
	case registry.QueryAll:
		return fmt.Sprintf("%d", len(reg.All(b.Name)))
	case registry.Group:
		n := 0
		views := reg.Views()
		for _, v := range views {
			if v.Ref.Present() {
				n++
			}
		}
		return fmt.Sprintf("%d/%d", n, len(views))
	default:
		if reg.Ref(b.Name).Present() {
			return "yes"
		}
		return "no"
	}
}
