package observability

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/baxromumarov/job-board/internal/client"
	"github.com/baxromumarov/job-board/internal/store"
)

func TestClassifyFetchError(t *testing.T) {
	decodeErr := json.Unmarshal([]byte("{"), &struct{}{})

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ErrorUnknown},
		{"unauthorized", &client.FetchError{Status: http.StatusUnauthorized}, ErrorAuth},
		{"forbidden wrapped", fmt.Errorf("list: %w", &client.FetchError{Status: http.StatusForbidden}), ErrorAuth},
		{"server error", &client.FetchError{Status: http.StatusBadGateway}, ErrorNetwork},
		{"decode", fmt.Errorf("decode offers: %w", decodeErr), ErrorParsing},
		{"transport", errors.New("dial tcp: connection refused"), ErrorNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFetchError(tt.err); got != tt.want {
				t.Fatalf("ClassifyFetchError(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyStoreError(t *testing.T) {
	if got := ClassifyStoreError(fmt.Errorf("get: %w", store.ErrNotFound)); got != ErrorNotFound {
		t.Fatalf("not found classified as %q", got)
	}
	if got := ClassifyStoreError(errors.New("pq: relation does not exist")); got != ErrorStore {
		t.Fatalf("db error classified as %q", got)
	}
}

func TestSnapshotCounts(t *testing.T) {
	before := Snapshot()

	IncRequest("GET /api/offreEmploi/")
	IncError(ErrorAuth, "api")
	AddOffersListed(3)
	AddOffersListed(-1)

	after := Snapshot()
	if after.RequestsServed != before.RequestsServed+1 {
		t.Errorf("RequestsServed = %d, want %d", after.RequestsServed, before.RequestsServed+1)
	}
	if after.OffersListed != before.OffersListed+3 {
		t.Errorf("OffersListed = %d, want %d", after.OffersListed, before.OffersListed+3)
	}
	if after.ErrorsByComponent["api"] != before.ErrorsByComponent["api"]+1 {
		t.Errorf("ErrorsByComponent[api] = %d", after.ErrorsByComponent["api"])
	}
}
