package rm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/quill/pkg/notebook"
)

// Confirmer asks the user a yes/no question before destructive work.
type Confirmer interface {
	Confirm(prompt string) bool
}

// StdioConfirmer prompts on stdout and reads the answer from stdin.
type StdioConfirmer struct{}

func (StdioConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Rm deletes a note after confirmation.
type Rm struct {
	ID    string
	Force bool

	Notebook *notebook.Notebook
	Confirm  Confirmer
}

func (r *Rm) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not delete, no notebook")
	}

	n, err := r.Notebook.Resolve(r.ID)
	if err != nil {
		return err
	}

	if !r.Force {
		confirm := r.Confirm
		if confirm == nil {
			confirm = StdioConfirmer{}
		}
		if !confirm.Confirm(fmt.Sprintf("Delete %q", n.Title)) {
			// Declined: no state change, no error.
			return nil
		}
	}

	r.Notebook.Delete(n.ID)
	if err := r.Notebook.Flush(); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
