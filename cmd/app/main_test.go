package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/png?width=50&height=abc&points=9&remove=2&random=true", nil)
	p := parseParams(r)
	assert.Equal(t, params{width: 50, height: 1000, points: 9, remove: 2, random: true}, p)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, params{width: 1000, height: 1000, points: 12}, parseParams(r))
}

func TestBuild_Grid(t *testing.T) {
	tr, err := build(params{width: 30, height: 30, points: 9}, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 9, tr.Len())
	assert.Len(t, tr.Triangles(), 8)
	assert.NoError(t, tr.Validate())

	tr, err = build(params{width: 30, height: 30, points: 9, remove: 20}, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
}

func TestDiagramHandler(t *testing.T) {
	form := url.Values{"width": {"200"}, "height": {"200"}, "points": {"16"}, "remove": {"3"}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	diagramHandler(w, r)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "Триангуляция Делоне")
	assert.Contains(t, body, "[app] Точки удалены")
}

func TestPNGHandler(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/png?points=5&random=true&width=10&height=10", nil)
	w := httptest.NewRecorder()

	pngHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))
}
