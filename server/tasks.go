package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vishant-raz/notion-gpt-api/internal/logger"
	"github.com/vishant-raz/notion-gpt-api/internal/model"
	"github.com/vishant-raz/notion-gpt-api/internal/query"
)

type taskRequest struct {
	Command string `json:"command"`
	Action  string `json:"action"`
	Status  string `json:"status"`
}

type commandRequest struct {
	Command string `json:"command"`
}

// upstreamError converts a failed store call into a 500 carrying the
// upstream message.
func (s *Server) upstreamError(c echo.Context, msg string, err error) error {
	logger.Error(msg, logger.F("error", err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
}

// handleCreate adds a new task record
func (s *Server) handleCreate(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil || req.Command == "" || req.Action == "" || req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
	}

	if err := s.gateway.CreateTask(c.Request().Context(), req.Command, req.Action, req.Status); err != nil {
		return s.upstreamError(c, "Create failed", err)
	}

	logger.Info("Task created", logger.F("command", req.Command))
	return c.JSON(http.StatusOK, map[string]string{"message": "Created"})
}

// handleFetch lists every active task as {Command, Status}
func (s *Server) handleFetch(c echo.Context) error {
	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Fetch failed", err)
	}
	return c.JSON(http.StatusOK, model.Summarize(tasks))
}

// handleUpdate overwrites action and status on the task matching command
func (s *Server) handleUpdate(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil || req.Command == "" || req.Action == "" || req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
	}

	ctx := c.Request().Context()
	tasks, err := s.gateway.ListTasks(ctx)
	if err != nil {
		return s.upstreamError(c, "Update failed", err)
	}

	task, err := query.FindByCommand(tasks, req.Command, true)
	if errors.Is(err, query.ErrNotFound) {
		return notFound(c)
	}

	if err := s.gateway.UpdateTask(ctx, task.ID, req.Action, req.Status); err != nil {
		return s.upstreamError(c, "Update failed", err)
	}

	logger.Info("Task updated", logger.F("command", req.Command))
	return c.JSON(http.StatusOK, map[string]string{"message": "Updated"})
}

// handleDelete archives the task matching command; the store drops archived
// records from later fetches
func (s *Server) handleDelete(c echo.Context) error {
	var req commandRequest
	if err := c.Bind(&req); err != nil || req.Command == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: command"})
	}

	ctx := c.Request().Context()
	tasks, err := s.gateway.ListTasks(ctx)
	if err != nil {
		return s.upstreamError(c, "Delete failed", err)
	}

	task, err := query.FindByCommand(tasks, req.Command, true)
	if errors.Is(err, query.ErrNotFound) {
		return notFound(c)
	}

	if err := s.gateway.ArchiveTask(ctx, task.ID); err != nil {
		return s.upstreamError(c, "Delete failed", err)
	}

	logger.Info("Task archived", logger.F("command", req.Command))
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}

// handleSearch lists tasks whose command contains the query text
func (s *Server) handleSearch(c echo.Context) error {
	queryText := c.QueryParam("query")
	if queryText == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing query parameter"})
	}

	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Search failed", err)
	}
	return c.JSON(http.StatusOK, model.Summarize(query.Search(tasks, queryText)))
}

// handleFilter lists tasks holding the given status
func (s *Server) handleFilter(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing status parameter"})
	}

	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Filter failed", err)
	}
	return c.JSON(http.StatusOK, model.Summarize(query.FilterByStatus(tasks, status)))
}

// handleGrouped maps each status to its commands
func (s *Server) handleGrouped(c echo.Context) error {
	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Grouped fetch failed", err)
	}
	return c.JSON(http.StatusOK, query.GroupByStatus(tasks))
}

// handleGetTask returns one task by command, matched case-insensitively
func (s *Server) handleGetTask(c echo.Context) error {
	command := c.QueryParam("command")
	if command == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing command parameter"})
	}

	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Get-task failed", err)
	}

	task, err := query.FindByCommand(tasks, command, false)
	if errors.Is(err, query.ErrNotFound) {
		return notFound(c)
	}

	return c.JSON(http.StatusOK, model.Detail{
		Command: task.Command,
		Status:  task.Status,
		Action:  task.Action,
	})
}

// handleStatusCounts tallies tasks per status
func (s *Server) handleStatusCounts(c echo.Context) error {
	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Status counts failed", err)
	}
	return c.JSON(http.StatusOK, query.CountByStatus(tasks))
}

// handleDuplicate clones the task matching command with a suffixed title
// and fresh timestamps
func (s *Server) handleDuplicate(c echo.Context) error {
	var req commandRequest
	if err := c.Bind(&req); err != nil || req.Command == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: command"})
	}

	ctx := c.Request().Context()
	tasks, err := s.gateway.ListTasks(ctx)
	if err != nil {
		return s.upstreamError(c, "Duplicate failed", err)
	}

	task, err := query.FindByCommand(tasks, req.Command, true)
	if errors.Is(err, query.ErrNotFound) {
		return notFound(c)
	}

	if err := s.gateway.DuplicateTask(ctx, task); err != nil {
		return s.upstreamError(c, "Duplicate failed", err)
	}

	logger.Info("Task duplicated", logger.F("command", req.Command))
	return c.JSON(http.StatusOK, map[string]string{"message": "Duplicated"})
}

// handleComplete marks the task matching command as Done
func (s *Server) handleComplete(c echo.Context) error {
	var req commandRequest
	if err := c.Bind(&req); err != nil || req.Command == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: command"})
	}

	ctx := c.Request().Context()
	tasks, err := s.gateway.ListTasks(ctx)
	if err != nil {
		return s.upstreamError(c, "Complete failed", err)
	}

	task, err := query.FindByCommand(tasks, req.Command, true)
	if errors.Is(err, query.ErrNotFound) {
		return notFound(c)
	}

	if err := s.gateway.CompleteTask(ctx, task.ID); err != nil {
		return s.upstreamError(c, "Complete failed", err)
	}

	logger.Info("Task completed", logger.F("command", req.Command))
	return c.JSON(http.StatusOK, map[string]string{"message": "Marked complete"})
}

// handleDailySummary lists tasks created on the current server date
func (s *Server) handleDailySummary(c echo.Context) error {
	today := time.Now().Format("2006-01-02")

	tasks, err := s.gateway.ListTasks(c.Request().Context())
	if err != nil {
		return s.upstreamError(c, "Daily summary failed", err)
	}
	return c.JSON(http.StatusOK, model.Summarize(query.FilterByCreatedDatePrefix(tasks, today)))
}
