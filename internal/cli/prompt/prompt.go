// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for prompt outcomes.
var (
	// ErrInvalidSelection indicates the selection is not a list index.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCancelled indicates input ended before an answer was given.
	ErrCancelled = errors.New("prompt cancelled")
)

// Choice is one selectable option: a display title and the value recorded
// when selected. For folder choices both fields are the directory name.
type Choice struct {
	Title string
	Value string
}

// Prompter reads answers from a reader and writes questions to a writer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter using stdin and stdout.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a Prompter with a custom reader and writer for testing.
func NewWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Confirm asks a yes/no question and returns the answer. An empty response
// selects the default. Unrecognized input re-prompts; end of input returns
// ErrCancelled.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", question, hint)

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return false, errors.Wrap(ErrCancelled, question)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please answer 'y' or 'n'")
		}
	}
}

// MultiSelect presents a numbered list of choices and reads a
// comma-separated list of indices. An empty response is a valid empty
// selection. Out-of-range or non-numeric input returns ErrInvalidSelection.
func (p *Prompter) MultiSelect(title string, choices []Choice) ([]string, error) {
	fmt.Fprintln(p.out, title)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, c.Title)
	}
	fmt.Fprint(p.out, "Select (comma-separated numbers, empty for none): ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrCancelled, title)
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var selected []string
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", field)
		}
		if idx < 1 || idx > len(choices) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", idx, len(choices))
		}
		selected = append(selected, choices[idx-1].Value)
	}

	return selected, nil
}
