package git

import (
	"bytes"
	"context"
	"fmt"

	"github.com/renato0307/gitprompt/internal/domain"
)

// Untracked file modes accepted by git status --untracked-files
const (
	UntrackedAll    = "all"
	UntrackedNo     = "no"
	UntrackedNormal = "normal"
)

// readDiffCounts runs a single porcelain v2 status, which compares HEAD, index and worktree
func readDiffCounts(ctx context.Context, runner commandRunner, repo domain.RepositoryHandle, untracked string) (domain.RawDiffCounts, error) {
	if untracked == "" {
		untracked = UntrackedAll
	}

	out, err := runner.Output(ctx, repo.Root,
		"status",
		"--porcelain=v2",
		"-z",
		"--untracked-files="+untracked,
		"--ignore-submodules=all",
	)
	if err != nil {
		return domain.RawDiffCounts{}, err
	}

	return parsePorcelainV2(out)
}

// parsePorcelainV2 counts NUL-terminated porcelain v2 records.
//
//	1 XY ...            ordinary change: X is index vs HEAD, Y is worktree vs index
//	2 XY ... <path>     rename or copy, followed by one extra field with the original path
//	u XY ...            unmerged path
//	? <path>            untracked path
//
// X and Y are '.' when unchanged, so a path staged and then modified again counts in both.
// Untracked paths also count as added on the worktree side.
func parsePorcelainV2(out []byte) (domain.RawDiffCounts, error) {
	var counts domain.RawDiffCounts

	fields := bytes.Split(out, []byte{0})
	for i := 0; i < len(fields); i++ {
		record := fields[i]
		if len(record) == 0 {
			continue
		}

		switch record[0] {
		case '#', '!':
			// headers and ignored files
		case '1', '2':
			if len(record) < 4 || record[1] != ' ' {
				return domain.RawDiffCounts{}, fmt.Errorf("malformed status record: %q", record)
			}
			if record[2] != '.' {
				counts.Staged++
				countKind(&counts.Index, record[2])
			}
			if record[3] != '.' {
				counts.Unstaged++
				countKind(&counts.Worktree, record[3])
			}
			if record[0] == '2' {
				i++ // skip original path
			}
		case 'u':
			counts.Conflicted++
		case '?':
			counts.Untracked++
			counts.Worktree.Added++
		default:
			return domain.RawDiffCounts{}, fmt.Errorf("unknown status record: %q", record)
		}
	}

	return counts, nil
}

// countKind classifies one XY status letter
func countKind(kinds *domain.ChangeKinds, code byte) {
	switch code {
	case 'A', 'C':
		kinds.Added++
	case 'D':
		kinds.Deleted++
	default:
		kinds.Modified++
	}
}
