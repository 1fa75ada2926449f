package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baxromumarov/job-board/internal/client"
	"github.com/baxromumarov/job-board/internal/store"
)

const (
	ErrorNetwork  = "network"
	ErrorParsing  = "parsing"
	ErrorAuth     = "auth"
	ErrorStore    = "store"
	ErrorNotFound = "not_found"
	ErrorUnknown  = "unknown"
)

func ClassifyFetchError(err error) string {
	if err == nil {
		return ErrorUnknown
	}
	var fe *client.FetchError
	if errors.As(err, &fe) {
		switch {
		case fe.Status == http.StatusUnauthorized || fe.Status == http.StatusForbidden:
			return ErrorAuth
		default:
			return ErrorNetwork
		}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrorParsing
	}
	return ErrorNetwork
}

func ClassifyStoreError(err error) string {
	if err == nil {
		return ErrorUnknown
	}
	if errors.Is(err, store.ErrNotFound) {
		return ErrorNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorNetwork
	}
	return ErrorStore
}
