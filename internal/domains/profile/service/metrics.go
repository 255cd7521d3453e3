package service

import (
	"context"
	"eventzone/internal/domains/profile/model/dto"
	gDto "eventzone/shared/dto"
	"eventzone/shared/metrics"
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
)

var _ Profile = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter kitmetrics.Counter
	latency kitmetrics.Histogram
	svc     Profile
}

// NewMetrics instruments each method of svc with a request counter and latency histogram.
func NewMetrics(svc Profile, counter kitmetrics.Counter, latency kitmetrics.Histogram) Profile {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) observe(method string, begin time.Time) {
	mm.counter.With(metrics.MethodLabel, method).Add(1)
	mm.latency.With(metrics.MethodLabel, method).Observe(time.Since(begin).Seconds())
}

func (mm *metricsMiddleware) Create(ctx context.Context, req dto.CreateProfileRequest) (dto.ProfileResponse, error) {
	defer mm.observe("create", time.Now())

	return mm.svc.Create(ctx, req)
}

func (mm *metricsMiddleware) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProfilesResponse, error) {
	defer mm.observe("get_all", time.Now())

	return mm.svc.GetAll(ctx, req, filter)
}

func (mm *metricsMiddleware) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	defer mm.observe("count", time.Now())

	return mm.svc.Count(ctx, req, filter)
}

func (mm *metricsMiddleware) Get(ctx context.Context, id string) (dto.ProfileResponse, error) {
	defer mm.observe("get", time.Now())

	return mm.svc.Get(ctx, id)
}

func (mm *metricsMiddleware) UpdateTimezone(ctx context.Context, req dto.UpdateTimezoneRequest, id string) (dto.ProfileResponse, error) {
	defer mm.observe("update_timezone", time.Now())

	return mm.svc.UpdateTimezone(ctx, req, id)
}
