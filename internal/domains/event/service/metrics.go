package service

import (
	"context"
	"eventzone/internal/domains/event/model/dto"
	gDto "eventzone/shared/dto"
	"eventzone/shared/metrics"
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
)

var _ Event = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter kitmetrics.Counter
	latency kitmetrics.Histogram
	svc     Event
}

func NewMetrics(svc Event, counter kitmetrics.Counter, latency kitmetrics.Histogram) Event {
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

func (mm *metricsMiddleware) Create(ctx context.Context, req dto.EventRequest) (dto.EventResponse, error) {
	defer mm.observe("create", time.Now())

	return mm.svc.Create(ctx, req)
}

func (mm *metricsMiddleware) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error) {
	defer mm.observe("get_all", time.Now())

	return mm.svc.GetAll(ctx, req, filter)
}

func (mm *metricsMiddleware) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	defer mm.observe("count", time.Now())

	return mm.svc.Count(ctx, req, filter)
}

func (mm *metricsMiddleware) Get(ctx context.Context, id string) (dto.EventResponse, error) {
	defer mm.observe("get", time.Now())

	return mm.svc.Get(ctx, id)
}

func (mm *metricsMiddleware) GetByProfile(ctx context.Context, profileID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error) {
	defer mm.observe("get_by_profile", time.Now())

	return mm.svc.GetByProfile(ctx, profileID, req, filter)
}

func (mm *metricsMiddleware) Update(ctx context.Context, req dto.EventRequest, id string) (dto.EventResponse, error) {
	defer mm.observe("update", time.Now())

	return mm.svc.Update(ctx, req, id)
}

func (mm *metricsMiddleware) Delete(ctx context.Context, id string) error {
	defer mm.observe("delete", time.Now())

	return mm.svc.Delete(ctx, id)
}

func (mm *metricsMiddleware) ExportCalendar(ctx context.Context, profileID string) (dto.CalendarExport, error) {
	defer mm.observe("export_calendar", time.Now())

	return mm.svc.ExportCalendar(ctx, profileID)
}
