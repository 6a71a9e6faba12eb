package commands

import (
	"git.home.luguber.info/inful/postindex/internal/index"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Source string `short:"s" help:"Source directory with posts (overrides source.directory)"`
	Output string `short:"o" help:"Output JSON file (overrides output.path)"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if g.Source != "" {
		cfg.Source.Directory = g.Source
	}
	if g.Output != "" {
		cfg.Output.Path = g.Output
	}

	gen, err := index.FromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	for _, name := range res.Skipped {
		global.printf("Skipped unreadable file %s\n", name)
	}
	global.printf("Generated %d blog posts in %s\n", res.Count, res.OutputPath)
	return nil
}
