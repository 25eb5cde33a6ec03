// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/kinograph/kinograph/internal/catalog"
	"github.com/kinograph/kinograph/internal/graph"
	"github.com/kinograph/kinograph/internal/logging"
	"github.com/kinograph/kinograph/internal/models"
	"github.com/kinograph/kinograph/internal/recommend"
)

// routerMovies is the shared fixture catalog. With balanced 5/5/5
// weights, recommendations for movie 2 (Inception) rank: Interstellar
// (genre+rating+director = 15), The Dark Knight (rating+director = 10,
// rating 9.0), The Matrix (genre+rating = 10, rating 8.7), Heat
// (rating = 5, the 0.5 difference is inclusive).
func routerMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: 1, Title: "The Matrix", Genre: "Sci-Fi", Rating: 8.7, Director: "Lana Wachowski"},
		{ID: 2, Title: "Inception", Genre: "Sci-Fi", Rating: 8.8, Director: "Christopher Nolan"},
		{ID: 3, Title: "Interstellar", Genre: "Sci-Fi", Rating: 8.6, Director: "Christopher Nolan"},
		{ID: 4, Title: "Heat", Genre: "Crime", Rating: 8.3, Director: "Michael Mann"},
		{ID: 5, Title: "The Dark Knight", Genre: "Action", Rating: 9.0, Director: "Christopher Nolan"},
	}
}

// newTestRouter builds a fully wired router over the fixture catalog.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := catalog.NewStore()
	for _, m := range routerMovies() {
		store.Insert(m)
	}
	g := graph.Build(store)

	engine, err := recommend.NewEngine(store, g, nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(func() { _ = engine.Close() })

	handler := NewHandler(store, g, engine, nil)
	return NewRouter(handler, nil).Routes()
}

// newDegradedRouter builds a router whose handler has no dependencies
// wired, as during boot before the catalog load finishes.
func newDegradedRouter(t *testing.T) http.Handler {
	t.Helper()

	handler := NewHandler(nil, nil, nil, nil)
	return NewRouter(handler, nil).Routes()
}

// envelope mirrors APIResponse but keeps data raw so tests can decode
// it into the endpoint's concrete payload type.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && w.Body.Len() > 0 {
		if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
			t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
		}
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()

	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, string(env.Data))
	}
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/health/live", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !env.Success {
		t.Error("expected success envelope")
	}

	var data map[string]interface{}
	decodeData(t, env, &data)
	if data["alive"] != true {
		t.Errorf("alive = %v, want true", data["alive"])
	}
}

func TestRouterHealthReady(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/health/ready", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var data map[string]interface{}
	decodeData(t, env, &data)
	if data["status"] != "ready" {
		t.Errorf("status = %v, want ready", data["status"])
	}
	if data["catalog_loaded"] != true || data["graph_ready"] != true || data["engine_ready"] != true {
		t.Errorf("unexpected readiness detail: %v", data)
	}
}

func TestRouterHealthReadyDegraded(t *testing.T) {
	router := newDegradedRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/health/ready", "")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var data map[string]interface{}
	decodeData(t, env, &data)
	if data["status"] != "not_ready" {
		t.Errorf("status = %v, want not_ready", data["status"])
	}
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var health models.HealthStatus
	decodeData(t, env, &health)
	if health.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", health.Status)
	}
	if health.Version == "" {
		t.Error("expected a version string")
	}
	if health.MovieCount != len(routerMovies()) {
		t.Errorf("MovieCount = %d, want %d", health.MovieCount, len(routerMovies()))
	}
}

func TestRouterListMovies(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/movies", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var movies []catalog.Movie
	decodeData(t, env, &movies)
	if len(movies) != 5 {
		t.Fatalf("got %d movies, want 5", len(movies))
	}
	// Store listing is ordered by ID.
	if movies[0].ID != 1 || movies[4].ID != 5 {
		t.Errorf("unexpected order: first=%d last=%d", movies[0].ID, movies[4].ID)
	}

	if env.Meta == nil || env.Meta.Pagination == nil {
		t.Fatal("expected pagination metadata")
	}
	if env.Meta.Pagination.Total != 5 {
		t.Errorf("Total = %d, want 5", env.Meta.Pagination.Total)
	}
	if env.Meta.Pagination.HasMore {
		t.Error("HasMore = true, want false")
	}
}

func TestRouterListMoviesPagination(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/movies?limit=2&offset=0", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var movies []catalog.Movie
	decodeData(t, env, &movies)
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].ID != 1 || movies[1].ID != 2 {
		t.Errorf("unexpected page: %d, %d", movies[0].ID, movies[1].ID)
	}
	if env.Meta == nil || env.Meta.Pagination == nil {
		t.Fatal("expected pagination metadata")
	}
	if !env.Meta.Pagination.HasMore {
		t.Error("HasMore = false, want true")
	}

	// Last page.
	w, env = doRequest(t, router, http.MethodGet, "/api/v1/movies?limit=2&offset=4", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	decodeData(t, env, &movies)
	if len(movies) != 1 {
		t.Fatalf("got %d movies, want 1", len(movies))
	}
	if movies[0].ID != 5 {
		t.Errorf("ID = %d, want 5", movies[0].ID)
	}
	if env.Meta.Pagination.HasMore {
		t.Error("HasMore = true, want false")
	}
}

func TestRouterListMoviesInvalidLimit(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/movies?limit=501", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidationFailed)
	}
}

func TestRouterGetMovie(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/movies/3", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var movie catalog.Movie
	decodeData(t, env, &movie)
	if movie.ID != 3 || movie.Title != "Interstellar" {
		t.Errorf("got %d %q, want 3 Interstellar", movie.ID, movie.Title)
	}
	if movie.Director != "Christopher Nolan" {
		t.Errorf("Director = %q", movie.Director)
	}
}

func TestRouterGetMovieNotFound(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/movies/999", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if env.Success {
		t.Error("expected error envelope")
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeNotFound)
	}
}

func TestRouterGetMovieInvalidID(t *testing.T) {
	router := newTestRouter(t)

	for _, id := range []string{"abc", "0", "-1"} {
		w, env := doRequest(t, router, http.MethodGet, "/api/v1/movies/"+id, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want %d", id, w.Code, http.StatusBadRequest)
			continue
		}
		if env.Error == nil || env.Error.Code != ErrCodeBadRequest {
			t.Errorf("id %q: error = %+v", id, env.Error)
		}
	}
}

func TestRouterSearch(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/search?name=matrix", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var movies []catalog.Movie
	decodeData(t, env, &movies)
	if len(movies) != 1 {
		t.Fatalf("got %d results, want 1", len(movies))
	}
	if movies[0].ID != 1 {
		t.Errorf("ID = %d, want 1", movies[0].ID)
	}
}

func TestRouterSearchMissingName(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/search", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidationFailed)
	}
}

func TestRouterRecommendByID(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"movie_id": 2}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)

	if resp.BaseMovie.ID != 2 {
		t.Errorf("BaseMovie.ID = %d, want 2", resp.BaseMovie.ID)
	}
	if resp.Weights != (recommend.Weights{Genre: 5, Rating: 5, Director: 5}) {
		t.Errorf("Weights = %+v, want balanced defaults", resp.Weights)
	}

	wantOrder := []int{3, 5, 1, 4}
	wantScores := []int{15, 10, 10, 5}
	if len(resp.Recommendations) != len(wantOrder) {
		t.Fatalf("got %d recommendations, want %d", len(resp.Recommendations), len(wantOrder))
	}
	for i, rec := range resp.Recommendations {
		if rec.ID != wantOrder[i] {
			t.Errorf("recommendation %d: ID = %d, want %d", i, rec.ID, wantOrder[i])
		}
		if rec.Score != wantScores[i] {
			t.Errorf("recommendation %d: Score = %d, want %d", i, rec.Score, wantScores[i])
		}
	}
}

func TestRouterRecommendByName(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"movie_name": "inception"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if resp.BaseMovie.ID != 2 {
		t.Errorf("BaseMovie.ID = %d, want 2", resp.BaseMovie.ID)
	}
}

func TestRouterRecommendCustomWeights(t *testing.T) {
	router := newTestRouter(t)

	// Director-only scoring drops everything but the Nolan movies.
	body := `{"movie_id": 2, "genre_weight": 0, "rating_weight": 0, "director_weight": 10}`
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if len(resp.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(resp.Recommendations))
	}
	// Same score 10, ordered by rating: The Dark Knight 9.0, Interstellar 8.6.
	if resp.Recommendations[0].ID != 5 || resp.Recommendations[1].ID != 3 {
		t.Errorf("order = [%d %d], want [5 3]",
			resp.Recommendations[0].ID, resp.Recommendations[1].ID)
	}
}

func TestRouterRecommendZeroWeights(t *testing.T) {
	router := newTestRouter(t)

	body := `{"movie_id": 2, "genre_weight": 0, "rating_weight": 0, "director_weight": 0}`
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if len(resp.Recommendations) != 0 {
		t.Errorf("got %d recommendations, want 0", len(resp.Recommendations))
	}
}

func TestRouterRecommendMaxResults(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"movie_id": 2, "max_results": 2}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if len(resp.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(resp.Recommendations))
	}
	if resp.Recommendations[0].ID != 3 || resp.Recommendations[1].ID != 5 {
		t.Errorf("order = [%d %d], want [3 5]",
			resp.Recommendations[0].ID, resp.Recommendations[1].ID)
	}
}

func TestRouterRecommendMissingSelector(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env.Error == nil || env.Error.Code != ErrCodeBadRequest {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeBadRequest)
	}
}

func TestRouterRecommendUnknownMovie(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"movie_id": 999}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeNotFound)
	}
}

func TestRouterRecommendInvalidWeight(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"movie_id": 2, "genre_weight": 11}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidationFailed)
	}
}

func TestRouterRecommendMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env.Error == nil {
		t.Error("expected error envelope")
	}
}

func TestRouterRecommendNotReady(t *testing.T) {
	router := newDegradedRouter(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"movie_id": 2}`)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeServiceUnavailable)
	}
}

func TestRouterRecommendMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/recommend", "")

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouterGraphStats(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/graph", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var stats graph.Stats
	decodeData(t, env, &stats)
	if stats.Nodes != 5 {
		t.Errorf("Nodes = %d, want 5", stats.Nodes)
	}
	if stats.Relations != 30 {
		t.Errorf("Relations = %d, want 30", stats.Relations)
	}
	if stats.Components != 1 {
		t.Errorf("Components = %d, want 1", stats.Components)
	}
	if stats.ByKind["close_rating"] != 18 {
		t.Errorf("close_rating = %d, want 18", stats.ByKind["close_rating"])
	}
}

func TestRouterGraphStatsUnavailable(t *testing.T) {
	router := newDegradedRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/graph", "")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeServiceUnavailable)
	}
}

func TestRouterStatus(t *testing.T) {
	router := newTestRouter(t)

	// Prime the performance monitor so the status payload includes
	// endpoint statistics.
	doRequest(t, router, http.MethodGet, "/api/v1/movies", "")

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/status", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var status ServerStatus
	decodeData(t, env, &status)
	if status.Version == "" {
		t.Error("expected a version string")
	}
	if status.Catalog.MovieCount != 5 {
		t.Errorf("Catalog.MovieCount = %d, want 5", status.Catalog.MovieCount)
	}
	if status.Graph == nil || status.Graph.Nodes != 5 {
		t.Errorf("Graph = %+v, want 5 nodes", status.Graph)
	}
	if len(status.Performance) == 0 {
		t.Error("expected performance statistics after a primed request")
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/metrics", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.Len() == 0 {
		t.Error("expected prometheus exposition output")
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/movies", "")

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}

func TestRouterRequestIDInMeta(t *testing.T) {
	router := newTestRouter(t)

	_, env := doRequest(t, router, http.MethodGet, "/api/v1/movies", "")

	if env.Meta == nil || env.Meta.RequestID == "" {
		t.Error("expected a request ID in response metadata")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/nope", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeNotFound)
	}
}

func TestRouterGzipResponse(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", got)
	}
}

func BenchmarkRouterRecommend(b *testing.B) {
	store := catalog.NewStore()
	for _, m := range routerMovies() {
		store.Insert(m)
	}
	g := graph.Build(store)

	engine, err := recommend.NewEngine(store, g, nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		b.Fatalf("NewEngine() error = %v", err)
	}
	defer engine.Close()

	handler := NewHandler(store, g, engine, nil)
	r := NewRouter(handler, nil)
	// The benchmark fires far more requests than the per-IP limit allows.
	r.security = NewChiMiddlewareFromConfig(nil, 0, time.Minute, true)
	router := r.Routes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body := strings.NewReader(fmt.Sprintf(`{"movie_id": %d}`, (i%5)+1))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("status = %d", w.Code)
		}
	}
}
