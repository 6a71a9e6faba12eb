package commands

import (
	"math/rand/v2"

	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
)

// RandomCmd implements the 'random' command.
type RandomCmd struct {
	Seed uint64 `help:"Seed for a reproducible pick (0 picks freshly each run)"`
}

func (r *RandomCmd) Run(global *Global, root *CLI) error {
	cat, err := loadCatalog(root)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if r.Seed != 0 {
		rng = rand.New(rand.NewPCG(r.Seed, r.Seed))
	}
	post, ok := cat.Random(rng)
	if !ok {
		return ierrors.New(ierrors.CategoryValidation, ierrors.SeverityError, "the index contains no posts")
	}
	global.printf("%s\t%s\n", post.Permalink, post.Title)
	return nil
}
