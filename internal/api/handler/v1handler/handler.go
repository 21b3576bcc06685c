// Package v1handler serves version 1 of the catalog HTTP API.
package v1handler

import (
	"catalog/internal/domains"
	"catalog/pkg/logger"
	"catalog/pkg/serrors"
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Domains  domains.Lister
	Resolver domains.BatchResolver
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux under prefix. Every route is wrapped by
// sec so handlers always find a session in the request context.
func (h Handler) Register(mux *http.ServeMux, prefix string, sec *SecHandler) {
	mux.Handle("GET "+prefix+"/domains", sec.Middleware(http.HandlerFunc(h.ListDomains)))
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes e as {"code":...,"message":...}.
func (e ErrorResponse) Encode(enc *jx.Encoder) {
	enc.ObjStart()
	enc.FieldStart("code")
	enc.Str(e.Code)
	enc.FieldStart("message")
	enc.Str(e.Message)
	enc.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status code.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// defaultMessages are returned when a semantic error carries no message of its own.
var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "authentication required",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrListFailed:   "could not list entities",
	serrors.ErrInternal:     "internal error",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrListFailed:   http.StatusInternalServerError,
	serrors.ErrInternal:     http.StatusInternalServerError,
}

// NewError maps err to a response. Only the message attached to a semantic
// error reaches the client; wrapped causes and plain errors are only logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == nil {
		kind = serrors.ErrInternal
	}

	code := statusCodes[kind]
	if code >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	message := defaultMessages[kind]
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	return &ErrorStatusCode{
		StatusCode: code,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, res.Response.Encode)
}
