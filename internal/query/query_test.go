package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishant-raz/notion-gpt-api/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Command: "A", Status: "Todo"},
		{ID: "2", Command: "B", Status: "Done"},
		{ID: "3", Command: "C", Status: "Todo"},
	}
}

func TestFindByCommand(t *testing.T) {
	tasks := sampleTasks()

	t.Run("exact match", func(t *testing.T) {
		got, err := FindByCommand(tasks, "B", true)
		require.NoError(t, err)
		assert.Equal(t, "2", got.ID)
	})

	t.Run("exact match is case sensitive", func(t *testing.T) {
		_, err := FindByCommand(tasks, "b", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		got, err := FindByCommand([]model.Task{{ID: "x", Command: "foo"}}, "Foo", false)
		require.NoError(t, err)
		assert.Equal(t, "x", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindByCommand(tasks, "missing", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("first match wins on duplicates", func(t *testing.T) {
		dupes := []model.Task{
			{ID: "first", Command: "X", Status: "Todo"},
			{ID: "second", Command: "X", Status: "Done"},
		}
		got, err := FindByCommand(dupes, "X", true)
		require.NoError(t, err)
		assert.Equal(t, "first", got.ID)
	})
}

func TestSearch(t *testing.T) {
	tasks := []model.Task{
		{Command: "deploy api", Status: "Todo"},
		{Command: "Deploy web", Status: "Done"},
		{Command: "write docs", Status: "Todo"},
	}

	t.Run("case-insensitive substring, order preserved", func(t *testing.T) {
		got := Search(tasks, "DEPLOY")
		require.Len(t, got, 2)
		assert.Equal(t, "deploy api", got[0].Command)
		assert.Equal(t, "Deploy web", got[1].Command)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Search(tasks, "deploy")
		twice := Search(once, "deploy")
		assert.Equal(t, once, twice)
	})

	t.Run("no match yields empty, not nil", func(t *testing.T) {
		got := Search(tasks, "zzz")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterByStatus(t *testing.T) {
	tasks := sampleTasks()

	got := FilterByStatus(tasks, "done")
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Command)
	assert.Equal(t, "Done", got[0].Status)

	// Filter length must agree with the status tally.
	counts := CountByStatus(tasks)
	for status, n := range counts {
		assert.Len(t, FilterByStatus(tasks, status), n)
	}
}

func TestGroupByStatus(t *testing.T) {
	tasks := sampleTasks()

	grouped := GroupByStatus(tasks)
	assert.Equal(t, map[string][]string{
		"Todo": {"A", "C"},
		"Done": {"B"},
	}, grouped)

	// Flattening the groups must give back exactly the input commands.
	total := 0
	seen := map[string]int{}
	for _, commands := range grouped {
		total += len(commands)
		for _, c := range commands {
			seen[c]++
		}
	}
	assert.Equal(t, len(tasks), total)
	for _, task := range tasks {
		assert.Equal(t, 1, seen[task.Command])
	}
}

func TestCountByStatus(t *testing.T) {
	tasks := sampleTasks()

	counts := CountByStatus(tasks)
	assert.Equal(t, map[string]int{"Todo": 2, "Done": 1}, counts)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, len(tasks), sum)
}

func TestFilterByCreatedDatePrefix(t *testing.T) {
	tasks := []model.Task{
		{Command: "early", Status: "Todo", CreatedAt: "2024-05-01T23:59:59Z"},
		{Command: "late", Status: "Todo", CreatedAt: "2024-05-02T10:00:00Z"},
		{Command: "undated", Status: "Todo"},
	}

	got := FilterByCreatedDatePrefix(tasks, "2024-05-01")
	require.Len(t, got, 1)
	assert.Equal(t, "early", got[0].Command)
}

func TestMalformedRecordsAreSkipped(t *testing.T) {
	tasks := []model.Task{
		{ID: "ok", Command: "A", Status: "Todo"},
		{ID: "broken", Command: "", Status: "Todo"}, // title extraction failed
	}

	_, err := FindByCommand(tasks, "", false)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, Search(tasks, ""), 1)
	assert.Len(t, FilterByStatus(tasks, "todo"), 1)
	assert.Equal(t, map[string][]string{"Todo": {"A"}}, GroupByStatus(tasks))
	assert.Equal(t, map[string]int{"Todo": 1}, CountByStatus(tasks))
}
