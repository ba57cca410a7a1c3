package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	YearKeyPrefix = "holidays:year:"
	yearCacheTTL  = 24 * time.Hour
)

func GetYearKey(year int) string {
	return fmt.Sprintf("%s%d", YearKeyPrefix, year)
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	IsWorkingDay(ctx context.Context, date time.Time) (bool, error)
	WorkingDays(ctx context.Context, start, end time.Time) (int, error)
	WorkingDateOffset(ctx context.Context, start time.Time, days int) (time.Time, error)
	List(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) IsWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	cal, err := s.calendar(ctx, date.Year(), date.Year())
	if err != nil {
		return false, err
	}
	return cal.IsWorkingDay(date), nil
}

func (s *service) WorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	if DateOnly(end).Before(DateOnly(start)) {
		return 0, nil
	}
	cal, err := s.calendar(ctx, start.Year(), end.Year())
	if err != nil {
		return 0, err
	}
	return cal.WorkingDays(start, end), nil
}

// WorkingDateOffset loads the start year and the following one, which covers
// any occasion length.
func (s *service) WorkingDateOffset(ctx context.Context, start time.Time, days int) (time.Time, error) {
	cal, err := s.calendar(ctx, start.Year(), start.Year()+1)
	if err != nil {
		return time.Time{}, err
	}
	return cal.WorkingDateOffset(start, days), nil
}

func (s *service) calendar(ctx context.Context, fromYear, toYear int) (Calendar, error) {
	var dates []time.Time
	for y := fromYear; y <= toYear; y++ {
		holidays, err := s.List(ctx, y)
		if err != nil {
			return Calendar{}, err
		}
		for _, h := range holidays {
			d, err := time.Parse(DateLayout, h.Date)
			if err != nil {
				continue
			}
			dates = append(dates, d)
		}
	}
	return NewCalendar(dates...), nil
}

func (s *service) List(ctx context.Context, year int) ([]HolidayResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if year < 1 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}
	cacheKey := GetYearKey(year)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []HolidayResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		holidays, err := s.repo.FindByYear(ctx, year)
		if err != nil {
			l.Error("failed to load holidays", zap.Int("year", year), zap.Error(err))
			return nil, err
		}

		resp := mapToListResponse(holidays)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, yearCacheTTL).Err(); err != nil {
					l.Warn("failed to cache holidays", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]HolidayResponse), nil
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	l.Debug("create holiday", zap.String("date", req.Date))

	date, err := time.Parse(DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		l.Warn("create holiday validation failed", zap.String("date", req.Date))
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}

	exists, err := s.repo.ExistsOnDate(ctx, date)
	if err != nil {
		l.Error("failed to check holiday date", zap.Error(err))
		return HolidayResponse{}, err
	}
	if exists {
		return HolidayResponse{}, holidayerrors.ErrHolidayExists
	}

	h := &Holiday{
		ID:   uuid.New(),
		Date: date,
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.repo.Create(ctx, h); err != nil {
		l.Error("failed to create holiday", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.invalidateYear(ctx, date.Year())
	l.Info("holiday created", zap.String("holiday_id", h.ID.String()), zap.String("date", req.Date))

	return mapToResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return holidayerrors.ErrHolidayNotFound
	}

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return holidayerrors.ErrHolidayNotFound
		}
		l.Error("failed to load holiday", zap.String("holiday_id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete holiday", zap.String("holiday_id", id), zap.Error(err))
		return err
	}

	s.invalidateYear(ctx, h.Date.Year())
	l.Info("holiday deleted", zap.String("holiday_id", id))
	return nil
}

func (s *service) invalidateYear(ctx context.Context, year int) {
	l := contextutil.ScopedLogger(ctx, s.logger)
	if s.rdb == nil {
		return
	}
	cacheKey := GetYearKey(year)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		l.Error("failed to invalidate holiday cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID.String(),
		Date: h.Date.Format(DateLayout),
		Name: h.Name,
	}
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	res := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		res[i] = mapToResponse(h)
	}
	return res
}
