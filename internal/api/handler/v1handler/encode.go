package v1handler

import (
	"catalog/pkg/logger"
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(enc *jx.Encoder)) {
	enc := jx.GetEncoder()
	defer jx.PutEncoder(enc)

	encode(enc)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := enc.WriteTo(w); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(errors.Wrap(err, "write json")))
	}
}
