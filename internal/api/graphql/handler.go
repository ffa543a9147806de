package graphql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/labstack/echo/v4"

	"github.com/whiskers/catgraph/internal/pkg/metrics"
	"github.com/whiskers/catgraph/pkg/logger"
)

// QueryStore holds persisted query documents by SHA-256 hash.
type QueryStore interface {
	Get(ctx context.Context, hash string) (query string, ok bool, err error)
	Put(ctx context.Context, hash, query string) error
}

// Handler serves POST /graphql.
type Handler struct {
	schema  *graphql.Schema
	queries QueryStore
}

// NewHandler returns a handler executing against schema. queries may be nil,
// in which case persisted queries are not supported.
func NewHandler(schema *graphql.Schema, queries QueryStore) *Handler {
	return &Handler{schema: schema, queries: queries}
}

type persistedQuery struct {
	Version    int    `json:"version"`
	SHA256Hash string `json:"sha256Hash"`
}

type requestExtensions struct {
	PersistedQuery *persistedQuery `json:"persistedQuery,omitempty"`
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Extensions    *requestExtensions     `json:"extensions,omitempty"`
}

// Serve executes a GraphQL operation.
//
// @Summary      Execute a GraphQL operation
// @Description  Runs a query or mutation against the cat and user schema. Supports automatic persisted queries via extensions.persistedQuery.
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      graphQLRequest  true  "GraphQL request"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /graphql [post]
func (h *Handler) Serve(c echo.Context) error {
	var req graphQLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	query, qerr := h.resolveQuery(ctx, req)
	if qerr != nil {
		metrics.GraphQLErrorsTotal.WithLabelValues(errorCode(qerr)).Inc()
		return c.JSON(http.StatusOK, &graphql.Response{Errors: []*gqlerrors.QueryError{qerr}})
	}

	op := req.OperationName
	if op == "" {
		op = "anonymous"
	}

	start := time.Now()
	resp := h.schema.Exec(ctx, query, req.OperationName, req.Variables)
	metrics.GraphQLOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if len(resp.Errors) > 0 {
		outcome = "error"
		for _, e := range resp.Errors {
			metrics.GraphQLErrorsTotal.WithLabelValues(errorCode(e)).Inc()
		}
	}
	metrics.GraphQLOperationsTotal.WithLabelValues(op, outcome).Inc()

	return c.JSON(http.StatusOK, resp)
}

// resolveQuery applies the automatic persisted query protocol: a hash alone
// is looked up, a hash with a query is verified and stored.
func (h *Handler) resolveQuery(ctx context.Context, req graphQLRequest) (string, *gqlerrors.QueryError) {
	if req.Extensions == nil || req.Extensions.PersistedQuery == nil || h.queries == nil {
		return req.Query, nil
	}
	hash := req.Extensions.PersistedQuery.SHA256Hash
	log := logger.FromContext(ctx)

	if req.Query == "" {
		query, ok, err := h.queries.Get(ctx, hash)
		if err != nil {
			log.Error().Err(err).Str("hash", hash).Msg("persisted query lookup failed")
			return "", queryError(CodeInternal, "internal server error")
		}
		if !ok {
			metrics.PersistedQueriesTotal.WithLabelValues("miss").Inc()
			return "", queryError(CodePersistedQueryNotFound, "PersistedQueryNotFound")
		}
		metrics.PersistedQueriesTotal.WithLabelValues("hit").Inc()
		return query, nil
	}

	sum := sha256.Sum256([]byte(req.Query))
	if hex.EncodeToString(sum[:]) != hash {
		return "", queryError(CodeBadUserInput, "provided sha does not match query")
	}
	if err := h.queries.Put(ctx, hash, req.Query); err != nil {
		// The query itself is still executable.
		log.Warn().Err(err).Str("hash", hash).Msg("persisted query store failed")
	} else {
		metrics.PersistedQueriesTotal.WithLabelValues("register").Inc()
	}
	return req.Query, nil
}

func queryError(code, msg string) *gqlerrors.QueryError {
	return &gqlerrors.QueryError{
		Message:    msg,
		Extensions: map[string]interface{}{"code": code},
	}
}

// errorCode reads extensions.code, defaulting to GRAPHQL_VALIDATION_FAILED for
// errors raised by the engine itself.
func errorCode(e *gqlerrors.QueryError) string {
	if code, ok := e.Extensions["code"].(string); ok {
		return code
	}
	return "GRAPHQL_VALIDATION_FAILED"
}
