package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"courses": map[string][]Course{
			"free": {{ID: 1, Title: "Intro to Algebra"}},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	courses, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses["free"], 1)
	assert.Equal(t, "Intro to Algebra", courses["free"][0].Title)
}

func TestCategoryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Category not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Category(context.Background(), "nope")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Category not found", apiErr.Message)
}

func TestDownloadsSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"items": []DownloadItem{
			{ID: 1, Title: "Physics Formula Handbook", Type: "pdf"},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	items, err := c.Downloads(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "pdf", items[0].Type)
}
