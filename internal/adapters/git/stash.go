package git

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/renato0307/gitprompt/internal/domain"
)

// readStashState counts entries in the stash reflog of the common git dir.
// Every stash entry is one reflog line; no reflog means no stash.
func readStashState(repo domain.RepositoryHandle) (domain.RawStashState, error) {
	file, err := os.Open(filepath.Join(repo.CommonDir, "logs", "refs", "stash"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RawStashState{}, nil
		}
		return domain.RawStashState{}, err
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.RawStashState{}, err
	}

	return domain.RawStashState{Count: count}, nil
}
