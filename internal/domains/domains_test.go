package domains_test

import (
	"catalog/internal/config"
	"catalog/internal/domains"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	mockauthz "catalog/internal/authz/mock"
	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"
	mockstorage "catalog/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

var (
	authorized   = domain.Session{Actor: "urn:li:corpuser:alice", Authenticated: true}
	unauthorized = domain.Session{Actor: "urn:li:corpuser:mallory", Authenticated: true}
)

func intPtr(v int) *int { return &v }

func newTestLister(t *testing.T, options domains.Options) (
	*mockstorage.MockEntityStorage, *mockauthz.MockAuthorizer, domains.Lister) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockEntityStorage(ctrl)
	az := mockauthz.NewMockAuthorizer(ctrl)
	l, err := domains.New(st, az, options)
	require.NoError(t, err)

	return st, az, l
}

func await(t *testing.T, f interface {
	Await(ctx context.Context) (domains.ListResult, error)
}) (domains.ListResult, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return f.Await(ctx)
}

func TestList_Unauthorized_StoreNeverCalled(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	az.EXPECT().CanManageDomains(gomock.Any(), unauthorized).Return(false)
	st.EXPECT().ListEntities(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := await(t, l.List(context.Background(), unauthorized, domains.ListRequest{}))
	require.ErrorIs(t, err, serrors.ErrForbidden)
	require.NotErrorIs(t, err, serrors.ErrListFailed)
	require.Empty(t, res.Domains)
}

func TestList_AnonymousSession(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	az.EXPECT().CanManageDomains(gomock.Any(), domain.Anonymous).Return(false)
	st.EXPECT().ListEntities(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := await(t, l.List(context.Background(), domain.Anonymous, domains.ListRequest{Start: intPtr(0)}))
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestList_Defaults(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 20).
		Return(storage.EntityPage{Start: 0, Count: 20, Total: 0, Urns: []domain.Urn{}}, nil)

	res, err := await(t, l.List(context.Background(), authorized, domains.ListRequest{}))
	require.NoError(t, err)
	require.Equal(t, domains.ListResult{Start: 0, Count: 20, Total: 0, Domains: []domain.DomainStub{}}, res)
}

func TestList_PartialDefaults(t *testing.T) {
	tests := []struct {
		name         string
		req          domains.ListRequest
		start, count int
	}{
		{name: "start only", req: domains.ListRequest{Start: intPtr(40)}, start: 40, count: 20},
		{name: "count only", req: domains.ListRequest{Count: intPtr(5)}, start: 0, count: 5},
		{name: "both", req: domains.ListRequest{Start: intPtr(7), Count: intPtr(3)}, start: 7, count: 3},
		{name: "zero count", req: domains.ListRequest{Count: intPtr(0)}, start: 0, count: 0},
		{name: "beyond defaults", req: domains.ListRequest{Count: intPtr(10000)}, start: 0, count: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, az, l := newTestLister(t, domains.DefaultOptions())
			az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
			st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, tt.start, tt.count).
				Return(storage.EntityPage{Start: tt.start, Count: tt.count}, nil)

			res, err := await(t, l.List(context.Background(), authorized, tt.req))
			require.NoError(t, err)
			require.Equal(t, tt.start, res.Start)
			require.Equal(t, tt.count, res.Count)
		})
	}
}

func TestList_OverriddenDefaults(t *testing.T) {
	st, az, l := newTestLister(t, domains.Options{DefaultStart: 10, DefaultCount: 50})
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 10, 50).
		Return(storage.EntityPage{Start: 10, Count: 50, Total: 12}, nil)

	res, err := await(t, l.List(context.Background(), authorized, domains.ListRequest{}))
	require.NoError(t, err)
	require.Equal(t, 12, res.Total)
}

func TestList_PreservesOrder(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 20).
		Return(storage.EntityPage{Start: 0, Count: 20, Total: 4, Urns: []domain.Urn{"c", "a", "b", "a"}}, nil)

	res, err := await(t, l.List(context.Background(), authorized, domains.ListRequest{}))
	require.NoError(t, err)
	require.Equal(t, []domain.DomainStub{
		{ID: "c", Kind: domain.EntityTypeDomain},
		{ID: "a", Kind: domain.EntityTypeDomain},
		{ID: "b", Kind: domain.EntityTypeDomain},
		{ID: "a", Kind: domain.EntityTypeDomain},
	}, res.Domains)
}

func TestList_MetadataPassThrough(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 5, 20).
		Return(storage.EntityPage{Start: 5, Count: 20, Total: 42, Urns: []domain.Urn{"x"}}, nil)

	res, err := await(t, l.List(context.Background(), authorized, domains.ListRequest{Start: intPtr(5)}))
	require.NoError(t, err)
	require.Equal(t, 5, res.Start)
	require.Equal(t, 20, res.Count)
	require.Equal(t, 42, res.Total)
	require.Len(t, res.Domains, 1)
}

func TestList_StoreFailure(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	cause := context.DeadlineExceeded
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 20).
		Return(storage.EntityPage{Total: 3, Urns: []domain.Urn{"a"}}, cause).Times(1)

	res, err := await(t, l.List(context.Background(), authorized, domains.ListRequest{}))
	require.ErrorIs(t, err, serrors.ErrListFailed)
	require.ErrorIs(t, err, cause)
	require.Equal(t, domains.ListResult{}, res)
}

func TestList_EndToEnd(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 2).
		Return(storage.EntityPage{
			Start: 0, Count: 2, Total: 5,
			Urns: []domain.Urn{"urn:domain:eng", "urn:domain:sales"},
		}, nil)

	res, err := await(t, l.List(context.Background(), authorized,
		domains.ListRequest{Start: intPtr(0), Count: intPtr(2)}))
	require.NoError(t, err)
	require.Equal(t, domains.ListResult{
		Start: 0, Count: 2, Total: 5,
		Domains: []domain.DomainStub{
			{ID: "urn:domain:eng", Kind: "DOMAIN"},
			{ID: "urn:domain:sales", Kind: "DOMAIN"},
		},
	}, res)
}

func TestList_ReturnsBeforeStoreCompletes(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	release := make(chan struct{})
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 20).
		DoAndReturn(func(context.Context, domain.EntityType, storage.Filter, int, int) (storage.EntityPage, error) {
			<-release

			return storage.EntityPage{Count: 20}, nil
		})

	f := l.List(context.Background(), authorized, domains.ListRequest{})
	select {
	case <-f.Done():
		t.Fatal("future completed before the store returned")
	default:
	}

	close(release)
	_, err := await(t, f)
	require.NoError(t, err)
}

type ctxKey struct{}

func TestList_PropagatesCallerContext(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	ctx := context.WithValue(context.Background(), ctxKey{}, "request-1")
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).DoAndReturn(
		func(ctx context.Context, _ domain.Session) bool {
			require.Equal(t, "request-1", ctx.Value(ctxKey{}))

			return true
		})
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 20).DoAndReturn(
		func(ctx context.Context, _ domain.EntityType, _ storage.Filter, _, _ int) (storage.EntityPage, error) {
			require.Equal(t, "request-1", ctx.Value(ctxKey{}))

			return storage.EntityPage{Count: 20}, nil
		})

	_, err := await(t, l.List(ctx, authorized, domains.ListRequest{}))
	require.NoError(t, err)
}

func TestList_Concurrent(t *testing.T) {
	st, az, l := newTestLister(t, domains.DefaultOptions())
	const calls = 16
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true).Times(calls)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, gomock.Any(), 1).
		DoAndReturn(func(_ context.Context, _ domain.EntityType, _ storage.Filter, start, count int) (storage.EntityPage, error) {
			return storage.EntityPage{Start: start, Count: count, Total: calls,
				Urns: []domain.Urn{domain.NewUrn(domain.EntityTypeDomain, string(rune('a' + start)))}}, nil
		}).Times(calls)

	var wg sync.WaitGroup
	for i := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()

			res, err := await(t, l.List(context.Background(), authorized,
				domains.ListRequest{Start: intPtr(i), Count: intPtr(1)}))
			if err != nil {
				t.Errorf("unexpected error: %v", err)

				return
			}
			if res.Start != i || len(res.Domains) != 1 ||
				res.Domains[0].ID != domain.NewUrn(domain.EntityTypeDomain, string(rune('a'+i))) {
				t.Errorf("unexpected result for start %d: %+v", i, res)
			}
		}()
	}
	wg.Wait()
}

func TestList_Instrumentation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	recorder := tracetest.NewSpanRecorder()
	st, az, l := newTestLister(t, domains.Options{
		DefaultStart:   domains.DefaultStart,
		DefaultCount:   domains.DefaultCount,
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)),
	})
	az.EXPECT().CanManageDomains(gomock.Any(), authorized).Return(true)
	st.EXPECT().ListEntities(gomock.Any(), domain.EntityTypeDomain, storage.Filter{}, 0, 20).
		Return(storage.EntityPage{}, errors.New("boom"))

	_, err := await(t, l.List(context.Background(), authorized, domains.ListRequest{}))
	require.ErrorIs(t, err, serrors.ErrListFailed)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "domains.List", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var requests metricdata.Sum[int64]
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name == "catalog.domains.list.requests" {
			requests = m.Data.(metricdata.Sum[int64]) //nolint: forcetypeassert
		}
	}
	require.Len(t, requests.DataPoints, 1)
	require.Equal(t, int64(1), requests.DataPoints[0].Value)
	outcome, ok := requests.DataPoints[0].Attributes.Value("outcome")
	require.True(t, ok)
	require.Equal(t, "failed", outcome.AsString())
}

func TestDefaultOptions(t *testing.T) {
	require.Equal(t, domains.Options{DefaultStart: 0, DefaultCount: 20}, domains.DefaultOptions())
}

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.Domains.DefaultStart = 3
	cfg.Domains.DefaultCount = 7

	require.Equal(t, domains.Options{DefaultStart: 3, DefaultCount: 7}, domains.NewOptions(&cfg))
}
