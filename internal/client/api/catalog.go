package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/acadex/acadex/internal/common"
)

// Course is one sellable catalog item.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// LiveClass is a scheduled live session.
type LiveClass struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	Description string    `json:"description"`
}

// DownloadItem is a purchasable study material. URL is empty when the server
// has no object storage configured.
type DownloadItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Courses returns the full catalog grouped by category key.
func (c *Client) Courses(ctx context.Context) (map[string][]Course, error) {
	var out struct {
		Courses map[string][]Course `json:"courses"`
	}
	if err := c.getJSON(ctx, "/api/courses", "", &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// Category returns the catalog items under one category key.
func (c *Client) Category(ctx context.Context, key string) ([]Course, error) {
	var out struct {
		Items []Course `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/courses/"+key, "", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Live returns the upcoming live sessions.
func (c *Client) Live(ctx context.Context) ([]LiveClass, error) {
	var out struct {
		Items []LiveClass `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/live", "", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Downloads returns the authenticated user's downloadable materials.
func (c *Client) Downloads(ctx context.Context, token string) ([]DownloadItem, error) {
	var out struct {
		Items []DownloadItem `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/downloads", token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
