package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/erplite/pkg/binder"
	"github.com/dmitrymomot/erplite/pkg/environment"
	"github.com/dmitrymomot/erplite/pkg/logger"
	"github.com/dmitrymomot/erplite/pkg/requestid"
	"github.com/dmitrymomot/erplite/pkg/validator"
)

// ErrorMapping answers As whenever errors.Is(err, Err).
type ErrorMapping struct {
	Err error
	As  HTTPError
}

type ErrorHandlerConfig struct {
	// Mappings are checked in order after validation errors.
	Mappings []ErrorMapping
}

type errorInfo struct {
	status  int
	code    string
	message string
	details map[string][]string
}

var binderMappings = []ErrorMapping{
	{Err: binder.ErrMissingContentType, As: ErrUnsupportedMediaType},
	{Err: binder.ErrUnsupportedMediaType, As: ErrUnsupportedMediaType},
	{Err: binder.ErrBodyTooLarge, As: ErrRequestTooLarge},
	{Err: binder.ErrFailedToParseJSON, As: ErrBadRequest},
	{Err: binder.ErrFailedToParseQuery, As: ErrBadRequest},
	{Err: binder.ErrFailedToParsePath, As: ErrBadRequest},
}

func classify(err error, mappings []ErrorMapping) errorInfo {
	var verr ValidationError
	if errors.As(err, &verr) {
		return validationInfo(verr)
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return validationInfo(FromValidationErrors(verrs))
	}

	for _, set := range [][]ErrorMapping{mappings, binderMappings} {
		for _, m := range set {
			if errors.Is(err, m.Err) {
				return httpInfo(m.As, err)
			}
		}
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		return httpInfo(herr, err)
	}
	return httpInfo(ErrInternalServerError, err)
}

func validationInfo(verr ValidationError) errorInfo {
	info := errorInfo{
		status:  http.StatusUnprocessableEntity,
		code:    "validation_error",
		message: "the submitted data is invalid",
	}
	if len(verr) > 0 {
		info.details = map[string][]string(verr)
	}
	return info
}

func httpInfo(herr HTTPError, err error) errorInfo {
	info := errorInfo{status: herr.Code, code: herr.Key, message: http.StatusText(herr.Code)}
	if herr.Code < http.StatusInternalServerError && !errors.Is(herr, err) {
		info.message = err.Error()
	}
	return info
}

// NewErrorHandler renders the JSON error envelope and logs at warn for 4xx and
// error for 5xx. Server error causes reach the client only in development.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classify(err, cfg.Mappings)

		level := slog.LevelWarn
		if info.status >= http.StatusInternalServerError {
			level = slog.LevelError
			if environment.IsDevelopment(r.Context()) {
				info.message = err.Error()
			}
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Status(info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)

		w := ctx.ResponseWriter()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(info.status)
		body := Envelope{Error: &ErrorDetail{Code: info.code, Message: info.message, Details: info.details}}
		if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response", logger.Error(encErr))
		}
	}
}
