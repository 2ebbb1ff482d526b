package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/renato0307/gitprompt/internal/domain"
)

// operationMarkers maps files in the per-worktree git dir to the operation they signal
var operationMarkers = []struct {
	name string
	op   domain.Operation
}{
	{"rebase-merge", domain.OperationRebase},
	{"rebase-apply", domain.OperationRebase},
	{"CHERRY_PICK_HEAD", domain.OperationCherryPick},
	{"BISECT_LOG", domain.OperationBisect},
	{"MERGE_HEAD", domain.OperationMerge},
}

// detectOperations returns every operation whose marker is present, in marker order
func detectOperations(gitDir string) ([]domain.Operation, error) {
	var present []domain.Operation
	for _, marker := range operationMarkers {
		_, err := os.Stat(filepath.Join(gitDir, marker.name))
		switch {
		case err == nil:
			present = append(present, marker.op)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to stat %s: %w", marker.name, err)
		}
	}
	return present, nil
}
