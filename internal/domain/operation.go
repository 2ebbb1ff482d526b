package domain

import (
	"fmt"
	"strings"
)

// Operation is a multi-step repository operation that is paused or in flight
type Operation int

const (
	OperationNone Operation = iota
	OperationMerge
	OperationRebase
	OperationCherryPick
	OperationBisect
)

// DefaultOperationPrecedence decides which marker wins when several are present
var DefaultOperationPrecedence = []Operation{
	OperationRebase,
	OperationCherryPick,
	OperationBisect,
	OperationMerge,
}

var operationNames = map[Operation]string{
	OperationNone:       "none",
	OperationMerge:      "merge",
	OperationRebase:     "rebase",
	OperationCherryPick: "cherry-pick",
	OperationBisect:     "bisect",
}

// String returns the flag-style name of the operation
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// ParseOperation parses a flag-style operation name such as "cherry-pick"
func ParseOperation(name string) (Operation, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	if normalized == "cherrypick" {
		normalized = "cherry-pick"
	}

	for op, n := range operationNames {
		if n == normalized && op != OperationNone {
			return op, nil
		}
	}
	return OperationNone, fmt.Errorf("unknown operation '%s'", name)
}

// ParsePrecedence turns a list of operation names into a precedence order.
// Operations missing from names keep their default relative order after the listed ones,
// so a present marker is never dropped.
func ParsePrecedence(names []string) ([]Operation, error) {
	seen := make(map[Operation]bool, len(DefaultOperationPrecedence))
	order := make([]Operation, 0, len(DefaultOperationPrecedence))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		op, err := ParseOperation(name)
		if err != nil {
			return nil, err
		}
		if seen[op] {
			return nil, fmt.Errorf("operation '%s' listed more than once", op)
		}
		seen[op] = true
		order = append(order, op)
	}

	for _, op := range DefaultOperationPrecedence {
		if !seen[op] {
			order = append(order, op)
		}
	}
	return order, nil
}

// ResolveOperation picks the highest-precedence operation among the present markers.
// A nil precedence means DefaultOperationPrecedence.
func ResolveOperation(present []Operation, precedence []Operation) Operation {
	if len(present) == 0 {
		return OperationNone
	}
	if precedence == nil {
		precedence = DefaultOperationPrecedence
	}

	found := make(map[Operation]bool, len(present))
	for _, op := range present {
		found[op] = true
	}

	for _, op := range precedence {
		if found[op] {
			return op
		}
	}
	return OperationNone
}
