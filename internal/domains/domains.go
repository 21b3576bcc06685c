package domains

import (
	"catalog/pkg/async"
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"catalog/pkg/metrics"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/authz"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "catalog/internal/domains"

// lister is the concrete implementation of the Lister interface. It holds no
// per-request state, so a single value serves concurrent calls.
type lister struct {
	options    Options
	storage    storage.EntityStorage
	authorizer authz.Authorizer

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

var _ Lister = (*lister)(nil)

// New returns a Lister reading from s and gated by authorizer.
func New(s storage.EntityStorage, authorizer authz.Authorizer, options Options) (Lister, error) {
	mp := options.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := options.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	requests, err := meter.Int64Counter("catalog.domains.list.requests",
		metric.WithDescription("Number of domain list operations by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create list counter: %w", err)
	}
	duration, err := meter.Float64Histogram("catalog.domains.list.duration",
		metric.WithDescription("Latency of domain list operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create list histogram: %w", err)
	}

	return &lister{
		options:    options,
		storage:    s,
		authorizer: authorizer,
		tracer:     tp.Tracer(instrumentationName),
		requests:   requests,
		duration:   duration,
	}, nil
}

func (l *lister) List(ctx context.Context, session domain.Session, req ListRequest) *async.Future[ListResult] {
	return async.Go(ctx, func(ctx context.Context) (ListResult, error) {
		return l.list(ctx, session, req)
	})
}

func (l *lister) list(ctx context.Context, session domain.Session, req ListRequest) (res ListResult, err error) {
	ctx, span := l.tracer.Start(ctx, "domains.List",
		trace.WithAttributes(attribute.String("catalog.actor", session.Actor.String())))
	started := time.Now()
	defer func() {
		outcome := attribute.String("outcome", outcomeOf(err))
		l.requests.Add(ctx, 1, metric.WithAttributes(outcome))
		l.duration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if !l.authorizer.CanManageDomains(ctx, session) {
		logger.Info(ctx, "domain listing denied", zap.Stringer("actor", session.Actor))

		return ListResult{}, serrors.With(serrors.ErrForbidden,
			"unauthorized to perform this action, please contact your administrator")
	}

	start := valueOr(req.Start, l.options.DefaultStart)
	count := valueOr(req.Count, l.options.DefaultCount)
	span.SetAttributes(attribute.Int("catalog.start", start), attribute.Int("catalog.count", count))

	page, err := l.storage.ListEntities(ctx, domain.EntityTypeDomain, storage.Filter{}, start, count)
	if err != nil {
		logger.Error(ctx, "could not list domains",
			zap.Int("start", start), zap.Int("count", count), zap.Error(err))

		return ListResult{}, serrors.Wrap(serrors.ErrListFailed, err, "failed to list domains")
	}

	stubs := make([]domain.DomainStub, 0, len(page.Urns))
	for _, urn := range page.Urns {
		stubs = append(stubs, domain.NewDomainStub(urn))
	}

	return ListResult{
		Start:   page.Start,
		Count:   page.Count,
		Total:   page.Total,
		Domains: stubs,
	}, nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}

	return *v
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, serrors.ErrForbidden):
		return "forbidden"
	default:
		return "failed"
	}
}
