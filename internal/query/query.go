// Package query implements the in-memory projections applied to task lists
// fetched from the store: lookup, search, filtering, grouping and counting.
// All operations are pure single-pass scans; none mutate the store.
package query

import (
	"errors"
	"strings"

	"github.com/vishant-raz/notion-gpt-api/internal/model"
)

// ErrNotFound is returned when no task matches the given command.
var ErrNotFound = errors.New("task not found")

// skip reports whether a record is too malformed to participate in a scan.
// A task whose title field could not be extracted maps to an empty Command.
func skip(t model.Task) bool {
	return t.Command == ""
}

// FindByCommand returns the first task whose command equals the given one.
// Matching is exact when caseSensitive is set, case-insensitive otherwise.
// If several records share a command, whichever the store returned first
// wins; the store does not guarantee a stable order across calls.
func FindByCommand(tasks []model.Task, command string, caseSensitive bool) (model.Task, error) {
	for _, t := range tasks {
		if skip(t) {
			continue
		}
		if caseSensitive {
			if t.Command == command {
				return t, nil
			}
		} else if strings.EqualFold(t.Command, command) {
			return t, nil
		}
	}
	return model.Task{}, ErrNotFound
}

// Search returns the tasks whose command contains the query as a
// case-insensitive substring, preserving input order.
func Search(tasks []model.Task, queryText string) []model.Task {
	needle := strings.ToLower(queryText)
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if skip(t) {
			continue
		}
		if strings.Contains(strings.ToLower(t.Command), needle) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByStatus returns the tasks whose status equals the given one under
// case-insensitive comparison, preserving input order.
func FilterByStatus(tasks []model.Task, status string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if skip(t) {
			continue
		}
		if strings.EqualFold(t.Status, status) {
			out = append(out, t)
		}
	}
	return out
}

// GroupByStatus maps each status to the commands holding it, in input order.
func GroupByStatus(tasks []model.Task) map[string][]string {
	grouped := make(map[string][]string)
	for _, t := range tasks {
		if skip(t) {
			continue
		}
		grouped[t.Status] = append(grouped[t.Status], t.Command)
	}
	return grouped
}

// CountByStatus maps each status to the number of tasks holding it.
func CountByStatus(tasks []model.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		if skip(t) {
			continue
		}
		counts[t.Status]++
	}
	return counts
}

// FilterByCreatedDatePrefix returns the tasks whose created_at timestamp
// starts with the given ISO date prefix (e.g. "2024-05-01" matches any
// timestamp on that day). Tasks missing the field are excluded.
func FilterByCreatedDatePrefix(tasks []model.Task, isoDatePrefix string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if skip(t) || t.CreatedAt == "" {
			continue
		}
		if strings.HasPrefix(t.CreatedAt, isoDatePrefix) {
			out = append(out, t)
		}
	}
	return out
}
