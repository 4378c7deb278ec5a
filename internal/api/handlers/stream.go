package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
)

type subscriptionRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// SubscriptionStream serves GraphQL subscriptions over server-sent events.
// The subscription document arrives either as a POST body or as GET query
// parameters; each execution result is written as one "next" SSE event. The
// stream ends when the client disconnects.
func SubscriptionStream(schema graphql.Schema, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parseSubscriptionRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Query == "" {
			http.Error(w, "query is required", http.StatusBadRequest)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ctx := r.Context()
		results := graphql.Subscribe(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        ctx,
		})

		// Confirm the stream is live before the first delivery.
		fmt.Fprint(w, "event: ready\ndata: {}\n\n")
		flusher.Flush()

		for {
			select {
			case <-ctx.Done():
				return
			case res, open := <-results:
				if !open {
					return
				}
				payload, err := json.Marshal(res)
				if err != nil {
					logger.Error().Err(err).Msg("marshal subscription result")
					continue
				}
				fmt.Fprintf(w, "event: next\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	})
}

func parseSubscriptionRequest(r *http.Request) (subscriptionRequest, error) {
	var req subscriptionRequest

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, fmt.Errorf("invalid variables: %w", err)
			}
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid request body: %w", err)
		}
	default:
		return req, fmt.Errorf("method %s not allowed", r.Method)
	}

	return req, nil
}
