package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"git.home.luguber.info/inful/postindex/internal/catalog"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Tag     string `short:"t" help:"Only posts carrying this tag"`
	Page    int    `short:"p" help:"Page number (1-based)" default:"1"`
	PerPage int    `name:"per-page" help:"Posts per page" default:"10"`
}

func (l *ListCmd) Run(global *Global, root *CLI) error {
	cat, err := loadCatalog(root)
	if err != nil {
		return err
	}

	page, err := cat.FilterByTag(l.Tag).Page(l.Page, l.PerPage)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(global.out(), 0, 0, 2, ' ', 0)
	for _, p := range page.Items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Date, p.Title, p.Permalink, strings.Join(p.Tags, ","))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	global.printf("Page %d of %d\n", page.Number, page.TotalPages)
	return nil
}

func loadCatalog(root *CLI) (*catalog.Catalog, error) {
	cfg, err := root.LoadConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Load(cfg.Output.Path)
}
