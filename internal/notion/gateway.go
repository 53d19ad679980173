package notion

import (
	"context"
	"fmt"

	"github.com/vishant-raz/notion-gpt-api/internal/model"
)

// Property names the task database must define.
const (
	PropCommand     = "Command"
	PropAction      = "Action"
	PropStatus      = "Status"
	PropCreatedAt   = "Created At"
	PropLastUpdated = "Last Updated"
)

// Gateway is the store contract consumed by the request handlers. The
// concrete client and the in-memory fake used in tests both satisfy it.
type Gateway interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, command, action, status string) error
	UpdateTask(ctx context.Context, id, action, status string) error
	CompleteTask(ctx context.Context, id string) error
	ArchiveTask(ctx context.Context, id string) error
	DuplicateTask(ctx context.Context, task model.Task) error
	ValidateSchema(ctx context.Context) error
}

// taskFromPage maps a page onto a task record. Missing or malformed
// properties map to zero values; downstream scans skip records without a
// command instead of failing the listing.
func taskFromPage(p Page) model.Task {
	t := model.Task{ID: p.ID}
	t.Command, _ = p.Title(PropCommand)
	t.Action, _ = p.RichTextValue(PropAction)
	t.Status, _ = p.SelectValue(PropStatus)
	t.CreatedAt, _ = p.RichTextValue(PropCreatedAt)
	t.LastUpdated, _ = p.RichTextValue(PropLastUpdated)
	return t
}

func taskProperties(t model.Task) Properties {
	return Properties{
		PropCommand:     TitleProperty(t.Command),
		PropAction:      RichTextProperty(t.Action),
		PropStatus:      SelectProperty(t.Status),
		PropCreatedAt:   RichTextProperty(t.CreatedAt),
		PropLastUpdated: RichTextProperty(t.LastUpdated),
	}
}

// ListTasks fetches the full active record list from the store.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	pages, err := c.QueryDatabase(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(pages))
	for _, p := range pages {
		if p.Archived {
			continue
		}
		tasks = append(tasks, taskFromPage(p))
	}
	return tasks, nil
}

// CreateTask adds a new record with both timestamps set to now.
func (c *Client) CreateTask(ctx context.Context, command, action, status string) error {
	return c.CreatePage(ctx, taskProperties(model.NewTask(command, action, status)))
}

// UpdateTask overwrites action and status on the record and refreshes
// last_updated. created_at is never touched after creation.
func (c *Client) UpdateTask(ctx context.Context, id, action, status string) error {
	return c.UpdatePage(ctx, id, Properties{
		PropAction:      RichTextProperty(action),
		PropStatus:      SelectProperty(status),
		PropLastUpdated: RichTextProperty(model.Timestamp()),
	})
}

// CompleteTask sets the record's status to Done and refreshes last_updated.
func (c *Client) CompleteTask(ctx context.Context, id string) error {
	return c.UpdatePage(ctx, id, Properties{
		PropStatus:      SelectProperty(model.StatusDone),
		PropLastUpdated: RichTextProperty(model.Timestamp()),
	})
}

// ArchiveTask soft-deletes the record.
func (c *Client) ArchiveTask(ctx context.Context, id string) error {
	return c.ArchivePage(ctx, id)
}

// DuplicateTask creates a copy of the task with a suffixed command and
// fresh timestamps.
func (c *Client) DuplicateTask(ctx context.Context, task model.Task) error {
	return c.CreatePage(ctx, taskProperties(task.Duplicate()))
}

// ValidateSchema checks that the database defines the required properties.
// Called once at startup; a missing property is fatal.
func (c *Client) ValidateSchema(ctx context.Context) error {
	schema, err := c.RetrieveSchema(ctx)
	if err != nil {
		return fmt.Errorf("failed to validate database schema: %w", err)
	}
	for _, name := range []string{PropCommand, PropAction, PropStatus} {
		if !schema[name] {
			return fmt.Errorf("database schema missing required property: %s", name)
		}
	}
	return nil
}
