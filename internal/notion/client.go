// Package notion is the gateway to the external Notion collection holding
// the task records. The store is the sole source of truth; nothing is
// cached between requests.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
)

// APIError is a non-2xx response from the store, decoded from Notion's
// error body.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("notion: %s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("notion: request failed with status %d", e.Status)
}

// Client talks to the Notion API for a single database.
type Client struct {
	baseURL    string
	token      string
	databaseID string
	httpClient *http.Client
}

// NewClient creates a client for the given integration token and database
func NewClient(token, databaseID string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		databaseID: databaseID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint. Used by tests against a stub server.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryDatabase returns every non-archived page in the database, following
// the store's pagination cursor until exhausted.
func (c *Client) QueryDatabase(ctx context.Context) ([]Page, error) {
	var pages []Page
	cursor := ""
	for {
		var resp queryResponse
		path := fmt.Sprintf("/databases/%s/query", c.databaseID)
		if err := c.do(ctx, http.MethodPost, path, queryRequest{StartCursor: cursor}, &resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

type createPageRequest struct {
	Parent     map[string]string `json:"parent"`
	Properties Properties        `json:"properties"`
}

// CreatePage adds a new page with the given properties to the database.
func (c *Client) CreatePage(ctx context.Context, props Properties) error {
	req := createPageRequest{
		Parent:     map[string]string{"database_id": c.databaseID},
		Properties: props,
	}
	return c.do(ctx, http.MethodPost, "/pages", req, nil)
}

type updatePageRequest struct {
	Properties Properties `json:"properties,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// UpdatePage overwrites the given properties on an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, props Properties) error {
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, updatePageRequest{Properties: props}, nil)
}

// ArchivePage soft-deletes a page. Archived pages drop out of query results
// on the store side.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	archived := true
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, updatePageRequest{Archived: &archived}, nil)
}

type databaseResponse struct {
	Properties map[string]struct {
		Type string `json:"type"`
	} `json:"properties"`
}

// RetrieveSchema returns the names of the properties defined on the database.
func (c *Client) RetrieveSchema(ctx context.Context) (map[string]bool, error) {
	var resp databaseResponse
	if err := c.do(ctx, http.MethodGet, "/databases/"+c.databaseID, nil, &resp); err != nil {
		return nil, err
	}
	schema := make(map[string]bool, len(resp.Properties))
	for name := range resp.Properties {
		schema[name] = true
	}
	return schema, nil
}
