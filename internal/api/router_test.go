package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gatherly/server/internal/bus"
	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/gatherly/server/internal/graph"
	"github.com/gatherly/server/internal/storage/jsonfile"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *bus.Bus) {
	t.Helper()

	store, err := jsonfile.Create(filepath.Join(t.TempDir(), "data.json"), zerolog.Nop())
	require.NoError(t, err)

	b := bus.New(zerolog.Nop())
	logger := zerolog.Nop()
	resolver := graph.NewResolver(
		users.NewService(store.Users(), b, logger),
		events.NewService(store.Events(), b, logger),
		locations.NewService(store.Locations(), b, logger),
		participants.NewService(store.Participants(), b, logger),
		b,
		logger,
	)

	router, err := NewRouter(config.Defaults(), resolver, nil, logger)
	require.NoError(t, err)
	return router, b
}

func postGraphQL(t *testing.T, router http.Handler, query string) map[string]interface{} {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Data   map[string]interface{} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Empty(t, res.Errors, "unexpected errors for %s", query)
	return res.Data
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "gatherly_")
}

func TestCorrelationHeaderOnResponses(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestGraphQLMutationAndQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	data := postGraphQL(t, router, `mutation { addUser(username: "alice", email: "alice@example.com") { id username } }`)
	added := data["addUser"].(map[string]interface{})
	require.Equal(t, "alice", added["username"])
	id := added["id"].(string)

	data = postGraphQL(t, router, `{ users { id email } }`)
	list := data["users"].([]interface{})
	require.Len(t, list, 1)
	require.Equal(t, id, list[0].(map[string]interface{})["id"])
}

func TestSubscriptionStreamDeliversEvents(t *testing.T) {
	router, b := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	streamURL := server.URL + "/graphql/stream?query=" +
		url.QueryEscape(`subscription { userCreated { username } }`)
	resp, err := http.Get(streamURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	readLine := func() string {
		select {
		case line := <-lines:
			return line
		case <-time.After(2 * time.Second):
			t.Fatal("timed out reading stream")
			return ""
		}
	}

	require.Equal(t, "event: ready", readLine())

	require.Eventually(t, func() bool {
		return b.SubscriberCount(bus.TopicUserCreated) > 0
	}, time.Second, 5*time.Millisecond)

	body := bytes.NewReader([]byte(`{"query":"mutation { addUser(username: \"alice\", email: \"alice@example.com\") { id } }"}`))
	mutResp, err := http.Post(server.URL+"/graphql", "application/json", body)
	require.NoError(t, err)
	mutResp.Body.Close()
	require.Equal(t, http.StatusOK, mutResp.StatusCode)

	var dataLine string
	for dataLine == "" {
		line := readLine()
		if strings.HasPrefix(line, "data: ") && line != "data: {}" {
			dataLine = strings.TrimPrefix(line, "data: ")
		}
	}

	var result struct {
		Data struct {
			UserCreated struct {
				Username string `json:"username"`
			} `json:"userCreated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(dataLine), &result))
	require.Equal(t, "alice", result.Data.UserCreated.Username)
}

func TestSubscriptionStreamRejectsMissingQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql/stream", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
