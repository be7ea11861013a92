package usecase

import (
	"io"
	"testing"
	"time"

	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB returns a gorm DB backed by sqlmock. Most usecase tests mock
// the repositories and only need the DB as a pass-through handle.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mockDB
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.ParseInLocation(timeLayout, value, time.Local)
	require.NoError(t, err)
	return ts
}

// Repository mocks

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	args := m.Called(db, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	args := m.Called(db, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByPhone(db *gorm.DB, phone string) (*entity.User, error) {
	args := m.Called(db, phone)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type MockHealthDataRepository struct {
	mock.Mock
}

func (m *MockHealthDataRepository) Create(db *gorm.DB, data *entity.HealthData) error {
	args := m.Called(db, data)
	return args.Error(0)
}

func (m *MockHealthDataRepository) Update(db *gorm.DB, data *entity.HealthData) error {
	args := m.Called(db, data)
	return args.Error(0)
}

func (m *MockHealthDataRepository) FindByID(db *gorm.DB, id int64) (*entity.HealthData, error) {
	args := m.Called(db, id)
	data, _ := args.Get(0).(*entity.HealthData)
	return data, args.Error(1)
}

func (m *MockHealthDataRepository) DeleteByIDs(db *gorm.DB, ids []int64) error {
	args := m.Called(db, ids)
	return args.Error(0)
}

func (m *MockHealthDataRepository) Page(db *gorm.DB, filter repository.HealthDataFilter) ([]entity.HealthData, int64, error) {
	args := m.Called(db, filter)
	list, _ := args.Get(0).([]entity.HealthData)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockHealthDataRepository) FindByUserAndRange(db *gorm.DB, userID int64, start, end time.Time) ([]entity.HealthData, error) {
	args := m.Called(db, userID, start, end)
	list, _ := args.Get(0).([]entity.HealthData)
	return list, args.Error(1)
}

func (m *MockHealthDataRepository) FindWindow(db *gorm.DB, userID int64, start, end time.Time, limit int) ([]entity.HealthData, error) {
	args := m.Called(db, userID, start, end, limit)
	list, _ := args.Get(0).([]entity.HealthData)
	return list, args.Error(1)
}

func (m *MockHealthDataRepository) FindLatestByUser(db *gorm.DB, userID int64) (*entity.HealthData, error) {
	args := m.Called(db, userID)
	data, _ := args.Get(0).(*entity.HealthData)
	return data, args.Error(1)
}

type MockHealthDeviceRepository struct {
	mock.Mock
}

func (m *MockHealthDeviceRepository) Create(db *gorm.DB, device *entity.HealthDevice) error {
	args := m.Called(db, device)
	return args.Error(0)
}

func (m *MockHealthDeviceRepository) Update(db *gorm.DB, device *entity.HealthDevice) error {
	args := m.Called(db, device)
	return args.Error(0)
}

func (m *MockHealthDeviceRepository) FindByID(db *gorm.DB, id int64) (*entity.HealthDevice, error) {
	args := m.Called(db, id)
	device, _ := args.Get(0).(*entity.HealthDevice)
	return device, args.Error(1)
}

func (m *MockHealthDeviceRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.HealthDevice, error) {
	args := m.Called(db, userID)
	list, _ := args.Get(0).([]entity.HealthDevice)
	return list, args.Error(1)
}

func (m *MockHealthDeviceRepository) FindConnectedByUserID(db *gorm.DB, userID int64) ([]entity.HealthDevice, error) {
	args := m.Called(db, userID)
	list, _ := args.Get(0).([]entity.HealthDevice)
	return list, args.Error(1)
}

func (m *MockHealthDeviceRepository) FindByMacAddress(db *gorm.DB, mac string) (*entity.HealthDevice, error) {
	args := m.Called(db, mac)
	device, _ := args.Get(0).(*entity.HealthDevice)
	return device, args.Error(1)
}

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Create(db *gorm.DB, reminder *entity.Reminder) error {
	args := m.Called(db, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) Update(db *gorm.DB, reminder *entity.Reminder) error {
	args := m.Called(db, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) FindByID(db *gorm.DB, id int64) (*entity.Reminder, error) {
	args := m.Called(db, id)
	reminder, _ := args.Get(0).(*entity.Reminder)
	return reminder, args.Error(1)
}

func (m *MockReminderRepository) Delete(db *gorm.DB, id int64) error {
	args := m.Called(db, id)
	return args.Error(0)
}

func (m *MockReminderRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.Reminder, error) {
	args := m.Called(db, userID)
	list, _ := args.Get(0).([]entity.Reminder)
	return list, args.Error(1)
}

func (m *MockReminderRepository) FindByUserAndType(db *gorm.DB, userID int64, reminderType string) ([]entity.Reminder, error) {
	args := m.Called(db, userID, reminderType)
	list, _ := args.Get(0).([]entity.Reminder)
	return list, args.Error(1)
}

func (m *MockReminderRepository) FindPendingDue(db *gorm.DB, now time.Time) ([]entity.Reminder, error) {
	args := m.Called(db, now)
	list, _ := args.Get(0).([]entity.Reminder)
	return list, args.Error(1)
}

func (m *MockReminderRepository) FindDayByUser(db *gorm.DB, userID int64, dayStart, dayEnd time.Time) ([]entity.Reminder, error) {
	args := m.Called(db, userID, dayStart, dayEnd)
	list, _ := args.Get(0).([]entity.Reminder)
	return list, args.Error(1)
}

func (m *MockReminderRepository) FindWindowByUser(db *gorm.DB, userID int64, start, end time.Time, limit int) ([]entity.Reminder, error) {
	args := m.Called(db, userID, start, end, limit)
	list, _ := args.Get(0).([]entity.Reminder)
	return list, args.Error(1)
}

type MockEmergencyCallRepository struct {
	mock.Mock
}

func (m *MockEmergencyCallRepository) Create(db *gorm.DB, call *entity.EmergencyCall) error {
	args := m.Called(db, call)
	return args.Error(0)
}

func (m *MockEmergencyCallRepository) Update(db *gorm.DB, call *entity.EmergencyCall) error {
	args := m.Called(db, call)
	return args.Error(0)
}

func (m *MockEmergencyCallRepository) FindByID(db *gorm.DB, id int64) (*entity.EmergencyCall, error) {
	args := m.Called(db, id)
	call, _ := args.Get(0).(*entity.EmergencyCall)
	return call, args.Error(1)
}

func (m *MockEmergencyCallRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.EmergencyCall, error) {
	args := m.Called(db, userID)
	list, _ := args.Get(0).([]entity.EmergencyCall)
	return list, args.Error(1)
}

func (m *MockEmergencyCallRepository) FindUnresolved(db *gorm.DB) ([]entity.EmergencyCall, error) {
	args := m.Called(db)
	list, _ := args.Get(0).([]entity.EmergencyCall)
	return list, args.Error(1)
}

func (m *MockEmergencyCallRepository) FindBySeverity(db *gorm.DB, userID int64, severity int) ([]entity.EmergencyCall, error) {
	args := m.Called(db, userID, severity)
	list, _ := args.Get(0).([]entity.EmergencyCall)
	return list, args.Error(1)
}

func (m *MockEmergencyCallRepository) FindWindowByUser(db *gorm.DB, userID int64, start, end time.Time) ([]entity.EmergencyCall, error) {
	args := m.Called(db, userID, start, end)
	list, _ := args.Get(0).([]entity.EmergencyCall)
	return list, args.Error(1)
}

type MockSystemConfigRepository struct {
	mock.Mock
}

func (m *MockSystemConfigRepository) Create(db *gorm.DB, cfg *entity.SystemConfig) error {
	args := m.Called(db, cfg)
	return args.Error(0)
}

func (m *MockSystemConfigRepository) Update(db *gorm.DB, cfg *entity.SystemConfig) error {
	args := m.Called(db, cfg)
	return args.Error(0)
}

func (m *MockSystemConfigRepository) FindByKey(db *gorm.DB, key string) (*entity.SystemConfig, error) {
	args := m.Called(db, key)
	cfg, _ := args.Get(0).(*entity.SystemConfig)
	return cfg, args.Error(1)
}

func (m *MockSystemConfigRepository) FindByCategory(db *gorm.DB, category string) ([]entity.SystemConfig, error) {
	args := m.Called(db, category)
	list, _ := args.Get(0).([]entity.SystemConfig)
	return list, args.Error(1)
}

func (m *MockSystemConfigRepository) FindPublic(db *gorm.DB) ([]entity.SystemConfig, error) {
	args := m.Called(db)
	list, _ := args.Get(0).([]entity.SystemConfig)
	return list, args.Error(1)
}
