package graphql

import (
	"context"
	"errors"

	"github.com/whiskers/catgraph/internal/core/domain"
	"github.com/whiskers/catgraph/pkg/logger"
)

// Error codes reported in extensions.code.
const (
	CodeNotFound               = "NOT_FOUND"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeBadUserInput           = "BAD_USER_INPUT"
	CodeUpstreamFetchFailed    = "UPSTREAM_FETCH_FAILED"
	CodeInternal               = "INTERNAL_SERVER_ERROR"
	CodePersistedQueryNotFound = "PERSISTED_QUERY_NOT_FOUND"
)

// Error is a resolver error carrying a client-facing code. The engine copies
// Extensions into the response.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// toGraphQLError maps domain errors to their codes. Unknown errors are logged
// and hidden behind a generic message.
func toGraphQLError(ctx context.Context, field string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		return &Error{Code: CodeUnauthorized, Message: domain.ErrNotAuthorized.Error(), cause: err}
	case errors.Is(err, domain.ErrCatNotFound):
		return &Error{Code: CodeNotFound, Message: domain.ErrCatNotFound.Error(), cause: err}
	case errors.Is(err, domain.ErrUpstreamFetch):
		return &Error{Code: CodeUpstreamFetchFailed, Message: domain.ErrUpstreamFetch.Error(), cause: err}
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrInvalidInput):
		return &Error{Code: CodeBadUserInput, Message: err.Error(), cause: err}
	}

	logger.FromContext(ctx).Error().Err(err).Str("field", field).Msg("unhandled resolver error")
	return &Error{Code: CodeInternal, Message: "internal server error", cause: err}
}
