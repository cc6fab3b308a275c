package prompt

import (
	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
)

// FuzzyMultiSelect presents a full-screen fuzzy picker over the choices.
// Tab marks entries, enter confirms. Aborting the picker (esc / ctrl-c) is
// treated as an empty selection, which the bootstrap flow permits.
//
// Only usable when stdin is a terminal; line-based sessions go through
// Prompter.MultiSelect instead.
func FuzzyMultiSelect(title string, choices []Choice) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	idxs, err := fuzzyfinder.FindMulti(
		choices,
		func(i int) string { return choices[i].Title },
		fuzzyfinder.WithHeader(title),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "folder selection failed")
	}

	selected := make([]string, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, choices[i].Value)
	}
	return selected, nil
}
