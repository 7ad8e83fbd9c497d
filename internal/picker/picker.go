// Package picker provides the native folder-selection dialog used to
// choose a workspace directory.
package picker

import (
	"github.com/sqweek/dialog"
)

// Native opens the operating system's folder browser. It implements
// workspace.Picker.
type Native struct{}

// New creates a Native picker.
func New() *Native {
	return &Native{}
}

// PickFolder shows the folder dialog with the given title and blocks
// until the user chooses or dismisses it. Dismissal returns an empty
// path with no error; any other dialog failure is returned as-is.
func (n *Native) PickFolder(title string) (string, error) {
	path, err := dialog.Directory().Title(title).Browse()
	if err != nil {
		if err == dialog.ErrCancelled {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
