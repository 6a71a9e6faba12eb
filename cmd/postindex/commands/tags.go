package commands

// TagsCmd implements the 'tags' command.
type TagsCmd struct{}

func (t *TagsCmd) Run(global *Global, root *CLI) error {
	cat, err := loadCatalog(root)
	if err != nil {
		return err
	}
	for _, tc := range cat.Tags() {
		global.printf("%s (%d)\n", tc.Tag, tc.Count)
	}
	return nil
}
