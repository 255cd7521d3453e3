package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"eventzone/config"
	"eventzone/infras/kafka"
	kafkaMocks "eventzone/infras/kafka/mocks"
	"eventzone/infras/otel/mocks"
	eventMocks "eventzone/internal/domains/event/mocks"
	"eventzone/internal/domains/event/model"
	"eventzone/internal/domains/event/model/dto"
	"eventzone/internal/domains/event/service"
	profileMocks "eventzone/internal/domains/profile/mocks"
	profileModel "eventzone/internal/domains/profile/model"
	cacheMocks "eventzone/shared/cache/mocks"
	"eventzone/shared/clock"
	gDto "eventzone/shared/dto"
	"eventzone/shared/failure"
	gModel "eventzone/shared/model"
	"eventzone/shared/timezone"
)

const (
	eventID      = "5b7e9c2a-1d3f-4e6a-8b9c-0d1e2f3a4b5c"
	aliceID      = "0d8f3c1e-6b7a-4c2d-9e5f-1a2b3c4d5e6f"
	bobID        = "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
	changedTopic = "event-changed"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo        *eventMocks.MockEvent
	profileRepo *profileMocks.MockProfile
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
	tracer      *mocks.Recorder
	svc         service.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.EventChanged = changedTopic

	f := &fixture{
		repo:        eventMocks.NewMockEvent(ctrl),
		profileRepo: profileMocks.NewMockProfile(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
		tracer:      mocks.NewRecorder(),
	}

	f.svc = service.New(f.repo, f.profileRepo, cfg, f.cache, f.tracer, f.kafka, timezone.New(clock.NewFixed(fixedNow)))

	return f
}

// expectWrite accepts the cache invalidation and notification that follow a successful write.
func (f *fixture) expectWrite() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), changedTopic, gomock.Any()).Return(nil)
}

func newYorkRequest(profileIDs ...string) dto.EventRequest {
	return dto.EventRequest{
		Title:      "Standup",
		Timezone:   "America/New_York",
		StartAt:    "2024-03-10T01:30:00-05:00",
		EndAt:      "2024-03-10T03:30:00-04:00",
		ProfileIDs: profileIDs,
	}
}

func storedEvent() model.Event {
	return model.Event{
		ID:         eventID,
		Title:      "Standup",
		Timezone:   "America/New_York",
		StartAt:    time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC),
		EndAt:      time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC),
		Metadata:   gModel.NewMetadata(fixedNow),
		ProfileIDs: []string{aliceID},
	}
}

func TestEventService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.EventRequest
		setupMock   func(f *fixture)
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful creation",
			req:  newYorkRequest(aliceID, bobID, aliceID),
			setupMock: func(f *fixture) {
				f.profileRepo.EXPECT().GetByIDs(gomock.Any(), []string{aliceID, bobID}).Return([]profileModel.Profile{
					{ID: aliceID}, {ID: bobID},
				}, nil)
				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e model.Event) error {
						assert.Equal(t, time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC), e.StartAt)
						assert.Equal(t, time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC), e.EndAt)
						assert.Equal(t, []string{aliceID, bobID}, e.ProfileIDs)
						assert.Equal(t, fixedNow, e.CreatedAt)

						return nil
					})
				f.expectWrite()
			},
		},
		{
			name: "unknown profile",
			req:  newYorkRequest(aliceID, bobID),
			setupMock: func(f *fixture) {
				f.profileRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]profileModel.Profile{{ID: aliceID}}, nil)
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Profile with id " + bobID + " not found",
		},
		{
			name:        "malformed profile id",
			req:         newYorkRequest("nope"),
			setupMock:   func(*fixture) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Profile with id nope not found",
		},
		{
			name: "end before start",
			req: dto.EventRequest{
				Title:      "Standup",
				Timezone:   "UTC",
				StartAt:    "2024-03-10T10:00:00Z",
				EndAt:      "2024-03-10T09:00:00Z",
				ProfileIDs: []string{aliceID},
			},
			setupMock:   func(*fixture) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: "End date/time must be after start date/time",
		},
		{
			name: "repository error",
			req:  newYorkRequest(aliceID),
			setupMock: func(f *fixture) {
				f.profileRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]profileModel.Profile{{ID: aliceID}}, nil)
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "profile deleted before insert",
			req:  newYorkRequest(aliceID),
			setupMock: func(f *fixture) {
				f.profileRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]profileModel.Profile{{ID: aliceID}}, nil)
				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to create event: %w", &pq.Error{Code: "23503"}))
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: "One or more profiles were removed while saving the event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "2024-03-10 01:30:00", res.StartAt)
			assert.Equal(t, "2024-03-10 03:30:00", res.EndAt)
			assert.Equal(t, "2024-03-10T06:30:00Z", res.StartAtUTC)
			assert.Equal(t, "America/New_York", res.DisplayTimezone)
			assert.Equal(t, "2024-03-01 07:00:00", res.CreatedAt)
		})
	}
}

func TestEventService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "cache hit",
			id:   eventID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "event:get:"+eventID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.EventResponse)
						res.FromModel(storedEvent(), "")

						return nil
					})
			},
		},
		{
			name: "cache miss loads from repository",
			id:   eventID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), eventID).Return(storedEvent(), nil)
				f.cache.EXPECT().Save(gomock.Any(), "event:get:"+eventID, gomock.Any(), 3600).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			id:   eventID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), eventID).Return(model.Event{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed id",
			id:        "42",
			setupMock: func(*fixture) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, eventID, res.ID)
			assert.Equal(t, []string{aliceID}, res.ProfileIDs)
			assert.Equal(t, "2024-03-10 01:30:00", res.StartAt)
		})
	}
}

func TestEventService_TracesErrors(t *testing.T) {
	t.Run("repository failure is recorded on the span", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), eventID).Return(model.Event{}, errors.New("db down"))

		_, err := f.svc.Get(context.Background(), eventID)
		require.Error(t, err)

		assert.Equal(t, []string{"service.event.Get"}, f.tracer.Spans())
		require.Len(t, f.tracer.Errors(), 1)
		assert.ErrorContains(t, f.tracer.Errors()[0], "db down")
	})

	t.Run("validation failure is recorded on the span", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), dto.EventRequest{})
		require.Error(t, err)

		require.Len(t, f.tracer.Errors(), 1)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(f.tracer.Errors()[0]))
	})

	t.Run("success records nothing", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), eventID).Return(storedEvent(), nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := f.svc.Get(context.Background(), eventID)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Empty(t, f.tracer.Errors())
	})
}

func TestEventService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Event{storedEvent()}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "America/New_York", res.Events[0].DisplayTimezone)
}

func TestEventService_GetByProfile(t *testing.T) {
	tokyo := profileModel.Profile{ID: aliceID, Name: "Alice", Timezone: "Asia/Tokyo"}

	tests := []struct {
		name      string
		profileID string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name:      "events rendered in profile timezone",
			profileID: aliceID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.profileRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tokyo, nil)
				f.repo.EXPECT().CountByProfile(gomock.Any(), aliceID, gDto.FilterGroup{}).Return(1, nil)
				f.repo.EXPECT().
					GetByProfile(gomock.Any(), aliceID, gDto.QueryParams{Page: 1, Limit: 10, SortBy: "events.start_at", SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}).
					Return([]model.Event{storedEvent()}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()
			},
		},
		{
			name:      "profile not found",
			profileID: aliceID,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.profileRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profileModel.Profile{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed profile id",
			profileID: "alice",
			setupMock: func(*fixture) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetByProfile(context.Background(), tt.profileID, gDto.QueryParams{Page: 1, Limit: 10, SortBy: "title"}, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			require.Len(t, res.Events, 1)
			assert.Equal(t, "Asia/Tokyo", res.Events[0].DisplayTimezone)
			assert.Equal(t, "2024-03-10 15:30:00", res.Events[0].StartAt)
			assert.Equal(t, "2024-03-10 16:30:00", res.Events[0].EndAt)
			assert.Equal(t, "America/New_York", res.Events[0].Timezone)
		})
	}
}

func TestEventService_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), eventID).Return(storedEvent(), nil)
				f.profileRepo.EXPECT().GetByIDs(gomock.Any(), []string{bobID}).Return([]profileModel.Profile{{ID: bobID}}, nil)
				f.repo.EXPECT().
					Replace(gomock.Any(), eventID, gomock.Any(), []string{bobID}).
					DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ []string) error {
						assert.Equal(t, "America/New_York", fields[model.FieldTimezone])
						assert.Equal(t, fixedNow, fields["modified_at"])

						return nil
					})
				f.expectWrite()
			},
		},
		{
			name: "event not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), eventID).Return(model.Event{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "replace error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), eventID).Return(storedEvent(), nil)
				f.profileRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]profileModel.Profile{{ID: bobID}}, nil)
				f.repo.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), newYorkRequest(bobID), eventID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{bobID}, res.ProfileIDs)
			assert.Equal(t, "2024-03-01 07:00:00", res.ModifiedAt)
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	t.Run("publishes deletion", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), eventID).Return(storedEvent(), nil)
		f.repo.EXPECT().Delete(gomock.Any(), eventID).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), "event:get:"+eventID).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		f.kafka.EXPECT().
			SendMessages(gomock.Any(), changedTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)

				return nil
			})

		err := f.svc.Delete(context.Background(), eventID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), eventID).Return(model.Event{}, nil)

		err := f.svc.Delete(context.Background(), eventID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestEventService_GetByProfileWithRange(t *testing.T) {
	f := newFixture(t)

	rangeFilter, err := dto.RangeFilter("2024-03-10T00:00:00Z", "2024-03-11T00:00:00Z")
	require.NoError(t, err)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "events.start_at", SortDir: gDto.SortDirAsc}

	var cacheKey string

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any) error {
			cacheKey = key

			return errors.New("cache miss")
		})
	f.profileRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(profileModel.Profile{ID: aliceID, Name: "Alice", Timezone: "Asia/Tokyo"}, nil)
	f.repo.EXPECT().CountByProfile(gomock.Any(), aliceID, rangeFilter).Return(1, nil)
	f.repo.EXPECT().GetByProfile(gomock.Any(), aliceID, params, rangeFilter).Return([]model.Event{storedEvent()}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()

	res, err := f.svc.GetByProfile(context.Background(), aliceID, gDto.QueryParams{Page: 1, Limit: 10}, rangeFilter)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Contains(t, cacheKey, "range_from=")
	assert.Contains(t, cacheKey, "range_to=")
}

func TestEventService_ExportCalendar(t *testing.T) {
	f := newFixture(t)

	f.profileRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profileModel.Profile{ID: aliceID, Name: "Alice", Timezone: "Asia/Tokyo"}, nil)
	f.repo.EXPECT().
		GetByProfile(gomock.Any(), aliceID, gDto.QueryParams{SortBy: "events.start_at", SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}).
		Return([]model.Event{storedEvent()}, nil)

	res, err := f.svc.ExportCalendar(context.Background(), aliceID)

	require.NoError(t, err)
	assert.Equal(t, aliceID+".ics", res.FileName)
	assert.Contains(t, res.Content, "X-WR-TIMEZONE:Asia/Tokyo")
	assert.Contains(t, res.Content, "SUMMARY:Standup")
	assert.Contains(t, res.Content, "DTSTART:20240310T063000Z")
}
