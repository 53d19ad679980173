package server

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vishant-raz/notion-gpt-api/internal/model"
	"github.com/vishant-raz/notion-gpt-api/internal/query"
)

// fakeGateway is an in-memory stand-in for the Notion store.
type fakeGateway struct {
	mu       sync.Mutex
	tasks    []model.Task
	archived map[string]bool
	err      error // when set, every call fails with it
}

func newFakeGateway(tasks ...model.Task) *fakeGateway {
	f := &fakeGateway{archived: make(map[string]bool)}
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		f.tasks = append(f.tasks, t)
	}
	return f
}

func (f *fakeGateway) ListTasks(_ context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		if !f.archived[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeGateway) CreateTask(_ context.Context, command, action, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	t := model.NewTask(command, action, status)
	t.ID = uuid.NewString()
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeGateway) UpdateTask(_ context.Context, id, action, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Action = action
			f.tasks[i].Status = status
			f.tasks[i].LastUpdated = model.Timestamp()
			return nil
		}
	}
	return query.ErrNotFound
}

func (f *fakeGateway) CompleteTask(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Status = model.StatusDone
			f.tasks[i].LastUpdated = model.Timestamp()
			return nil
		}
	}
	return query.ErrNotFound
}

func (f *fakeGateway) ArchiveTask(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.archived[id] = true
	return nil
}

func (f *fakeGateway) DuplicateTask(_ context.Context, task model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	dup := task.Duplicate()
	dup.ID = uuid.NewString()
	f.tasks = append(f.tasks, dup)
	return nil
}

func (f *fakeGateway) ValidateSchema(_ context.Context) error {
	return f.err
}

func (f *fakeGateway) get(command string) (model.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.Command == command && !f.archived[t.ID] {
			return t, true
		}
	}
	return model.Task{}, false
}
