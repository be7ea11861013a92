package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"
	"eldercare-manager-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthDataNotFound = errors.New("health data not found")
	ErrDeviceNotFound     = errors.New("health device not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use YYYY-MM-DD HH:MM:SS")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)

// Wire formats for timestamps and dates.
const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

// samplesPerDayCap bounds range queries: one sample per hour is the
// expected ingest rate, so days*24 rows covers a full window.
const samplesPerDayCap = 24

type HealthDataUsecase interface {
	Create(ctx context.Context, req *dto.CreateHealthDataRequest) (*dto.HealthDataResponse, error)
	Update(ctx context.Context, req *dto.UpdateHealthDataRequest) (*dto.HealthDataResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.HealthDataResponse, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
	Page(ctx context.Context, filter repository.HealthDataFilter) (*dto.PageResponse, error)
	GetByDateRange(ctx context.Context, userID int64, startDate, endDate string) ([]dto.HealthDataResponse, error)
	GetLatest(ctx context.Context, userID int64) (*dto.HealthDataResponse, error)
	GenerateHealthReport(ctx context.Context, userID int64, startDate, endDate string) (*dto.HealthReportResponse, error)
}

type healthDataUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	healthDataRepo repository.HealthDataRepository
	deviceRepo     repository.HealthDeviceRepository
	latestCache    *service.LatestHealthCache
}

func NewHealthDataUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthDataRepo repository.HealthDataRepository,
	deviceRepo repository.HealthDeviceRepository,
	latestCache *service.LatestHealthCache,
) HealthDataUsecase {
	return &healthDataUsecase{
		db:             db,
		log:            log,
		healthDataRepo: healthDataRepo,
		deviceRepo:     deviceRepo,
		latestCache:    latestCache,
	}
}

func (u *healthDataUsecase) Create(ctx context.Context, req *dto.CreateHealthDataRequest) (*dto.HealthDataResponse, error) {
	device, err := u.deviceRepo.FindByID(u.db.WithContext(ctx), req.HealthDeviceID)
	if err != nil {
		u.log.Warnf("Failed to find health device: %+v", err)
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		timestamp, err = time.ParseInLocation(timeLayout, req.Timestamp, time.Local)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
	}

	data := &entity.HealthData{
		UserID:                 req.UserID,
		HealthDeviceID:         &req.HealthDeviceID,
		AiDeviceID:             req.AiDeviceID,
		Timestamp:              timestamp,
		DataType:               req.DataType,
		HeartRate:              req.HeartRate,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		BloodGlucose:           req.BloodGlucose,
		BodyTemperature:        req.BodyTemperature,
		BloodOxygen:            req.BloodOxygen,
		StepCount:              req.StepCount,
		ActivityLevel:          req.ActivityLevel,
		SleepDuration:          req.SleepDuration,
		FallDetected:           req.FallDetected,
		AbnormalHeartRate:      req.AbnormalHeartRate,
		DataSource:             req.DataSource,
		RawData:                req.RawData,
	}

	if err := u.healthDataRepo.Create(u.db.WithContext(ctx), data); err != nil {
		u.log.Warnf("Failed to create health data: %+v", err)
		return nil, err
	}

	u.latestCache.Set(ctx, data)

	return converter.HealthDataToResponse(data), nil
}

func (u *healthDataUsecase) Update(ctx context.Context, req *dto.UpdateHealthDataRequest) (*dto.HealthDataResponse, error) {
	data, err := u.healthDataRepo.FindByID(u.db.WithContext(ctx), req.ID)
	if err != nil {
		u.log.Warnf("Failed to find health data: %+v", err)
		return nil, err
	}
	if data == nil {
		return nil, ErrHealthDataNotFound
	}

	if req.HeartRate != nil {
		data.HeartRate = req.HeartRate
	}
	if req.BloodPressureSystolic != nil {
		data.BloodPressureSystolic = req.BloodPressureSystolic
	}
	if req.BloodPressureDiastolic != nil {
		data.BloodPressureDiastolic = req.BloodPressureDiastolic
	}
	if req.BloodGlucose != nil {
		data.BloodGlucose = req.BloodGlucose
	}
	if req.BodyTemperature != nil {
		data.BodyTemperature = req.BodyTemperature
	}
	if req.BloodOxygen != nil {
		data.BloodOxygen = req.BloodOxygen
	}
	if req.ActivityLevel != "" {
		data.ActivityLevel = req.ActivityLevel
	}
	if req.FallDetected != nil {
		data.FallDetected = *req.FallDetected
	}
	if req.DataQuality != "" {
		data.DataQuality = req.DataQuality
	}

	if err := u.healthDataRepo.Update(u.db.WithContext(ctx), data); err != nil {
		u.log.Warnf("Failed to update health data: %+v", err)
		return nil, err
	}

	return converter.HealthDataToResponse(data), nil
}

func (u *healthDataUsecase) GetByID(ctx context.Context, id int64) (*dto.HealthDataResponse, error) {
	data, err := u.healthDataRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health data: %+v", err)
		return nil, err
	}
	if data == nil {
		return nil, ErrHealthDataNotFound
	}

	return converter.HealthDataToResponse(data), nil
}

func (u *healthDataUsecase) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := u.healthDataRepo.DeleteByIDs(u.db.WithContext(ctx), ids); err != nil {
		u.log.Warnf("Failed to delete health data: %+v", err)
		return err
	}
	return nil
}

func (u *healthDataUsecase) Page(ctx context.Context, filter repository.HealthDataFilter) (*dto.PageResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	list, total, err := u.healthDataRepo.Page(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to page health data: %+v", err)
		return nil, err
	}

	return &dto.PageResponse{
		List:  converter.HealthDataToResponses(list),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (u *healthDataUsecase) GetByDateRange(ctx context.Context, userID int64, startDate, endDate string) ([]dto.HealthDataResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := int(end.Sub(start).Hours()/24) + 1
	limit := days * samplesPerDayCap

	list, err := u.healthDataRepo.FindWindow(u.db.WithContext(ctx), userID, start, end, limit)
	if err != nil {
		u.log.Warnf("Failed to query health data range: %+v", err)
		return nil, err
	}

	return converter.HealthDataToResponses(list), nil
}

func (u *healthDataUsecase) GetLatest(ctx context.Context, userID int64) (*dto.HealthDataResponse, error) {
	if cached, _ := u.latestCache.Get(ctx, userID); cached != nil {
		return converter.HealthDataToResponse(cached), nil
	}

	data, err := u.healthDataRepo.FindLatestByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find latest health data: %+v", err)
		return nil, err
	}
	if data == nil {
		return nil, ErrHealthDataNotFound
	}

	u.latestCache.Set(ctx, data)

	return converter.HealthDataToResponse(data), nil
}

// GenerateHealthReport averages vitals over the inclusive date window.
// Averages skip null readings; a window with no usable heart-rate data
// reports health_status "no_data".
func (u *healthDataUsecase) GenerateHealthReport(ctx context.Context, userID int64, startDate, endDate string) (*dto.HealthReportResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	list, err := u.healthDataRepo.FindByUserAndRange(u.db.WithContext(ctx), userID, start, end)
	if err != nil {
		u.log.Warnf("Failed to query health data for report: %+v", err)
		return nil, err
	}

	var (
		hrSum, hrCount   int
		sysSum, sysCount int
		tempSum          float64
		tempCount        int
	)

	for i := range list {
		if list[i].HeartRate != nil {
			hrSum += *list[i].HeartRate
			hrCount++
		}
		if list[i].BloodPressureSystolic != nil {
			sysSum += *list[i].BloodPressureSystolic
			sysCount++
		}
		if list[i].BodyTemperature != nil {
			tempSum += *list[i].BodyTemperature
			tempCount++
		}
	}

	report := &dto.HealthReportResponse{
		UserID:       userID,
		StartDate:    startDate,
		EndDate:      endDate,
		DataCount:    len(list),
		HealthStatus: "no_data",
	}

	if hrCount > 0 {
		report.AverageHeartRate = round2(float64(hrSum) / float64(hrCount))
	}
	if sysCount > 0 {
		report.AverageSystolicBP = round2(float64(sysSum) / float64(sysCount))
	}
	if tempCount > 0 {
		report.AverageTemperature = round2(tempSum / float64(tempCount))
	}
	if report.AverageHeartRate > 0 {
		report.HealthStatus = "normal"
	}

	return report, nil
}

// parseDateRange maps YYYY-MM-DD bounds to [start 00:00:00, end 23:59:59].
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
