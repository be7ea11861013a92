package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConfigNotFound     = errors.New("config key not found")
	ErrConfigKeyExists    = errors.New("config key already exists")
	ErrInvalidConfigValue = errors.New("config value does not match its declared type")
)

type SystemConfigUsecase interface {
	Create(ctx context.Context, req *dto.CreateConfigRequest) (*dto.ConfigResponse, error)
	GetByKey(ctx context.Context, key string) (*dto.ConfigResponse, error)
	GetByCategory(ctx context.Context, category string) ([]dto.ConfigResponse, error)
	GetPublic(ctx context.Context) ([]dto.ConfigResponse, error)
	UpdateValue(ctx context.Context, key string, value string) (*dto.ConfigResponse, error)
	BatchUpdate(ctx context.Context, configs map[string]string) (*dto.BatchUpdateResult, error)
}

type systemConfigUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	configRepo repository.SystemConfigRepository
}

func NewSystemConfigUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	configRepo repository.SystemConfigRepository,
) SystemConfigUsecase {
	return &systemConfigUsecase{
		db:         db,
		log:        log,
		configRepo: configRepo,
	}
}

func (u *systemConfigUsecase) Create(ctx context.Context, req *dto.CreateConfigRequest) (*dto.ConfigResponse, error) {
	existing, err := u.configRepo.FindByKey(u.db.WithContext(ctx), req.ConfigKey)
	if err != nil {
		u.log.Warnf("Failed to check config key: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrConfigKeyExists
	}

	if !validateConfigValue(req.ConfigType, req.ConfigValue) {
		return nil, ErrInvalidConfigValue
	}

	cfg := &entity.SystemConfig{
		ConfigKey:   req.ConfigKey,
		ConfigValue: req.ConfigValue,
		ConfigType:  req.ConfigType,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
	}

	if err := u.configRepo.Create(u.db.WithContext(ctx), cfg); err != nil {
		u.log.Warnf("Failed to create config: %+v", err)
		return nil, err
	}

	return converter.SystemConfigToResponse(cfg), nil
}

func (u *systemConfigUsecase) GetByKey(ctx context.Context, key string) (*dto.ConfigResponse, error) {
	cfg, err := u.configRepo.FindByKey(u.db.WithContext(ctx), key)
	if err != nil {
		u.log.Warnf("Failed to find config: %+v", err)
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}

	return converter.SystemConfigToResponse(cfg), nil
}

func (u *systemConfigUsecase) GetByCategory(ctx context.Context, category string) ([]dto.ConfigResponse, error) {
	configs, err := u.configRepo.FindByCategory(u.db.WithContext(ctx), category)
	if err != nil {
		u.log.Warnf("Failed to list configs by category: %+v", err)
		return nil, err
	}

	return converter.SystemConfigsToResponses(configs), nil
}

func (u *systemConfigUsecase) GetPublic(ctx context.Context) ([]dto.ConfigResponse, error) {
	configs, err := u.configRepo.FindPublic(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list public configs: %+v", err)
		return nil, err
	}

	return converter.SystemConfigsToResponses(configs), nil
}

func (u *systemConfigUsecase) UpdateValue(ctx context.Context, key string, value string) (*dto.ConfigResponse, error) {
	cfg, err := u.configRepo.FindByKey(u.db.WithContext(ctx), key)
	if err != nil {
		u.log.Warnf("Failed to find config: %+v", err)
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}

	if !validateConfigValue(cfg.ConfigType, value) {
		return nil, ErrInvalidConfigValue
	}

	cfg.ConfigValue = value

	if err := u.configRepo.Update(u.db.WithContext(ctx), cfg); err != nil {
		u.log.Warnf("Failed to update config: %+v", err)
		return nil, err
	}

	return converter.SystemConfigToResponse(cfg), nil
}

// BatchUpdate applies each key independently. A key that is missing or
// fails validation is reported and skipped; successful keys stay applied.
func (u *systemConfigUsecase) BatchUpdate(ctx context.Context, configs map[string]string) (*dto.BatchUpdateResult, error) {
	keys := make([]string, 0, len(configs))
	for key := range configs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &dto.BatchUpdateResult{FailedKeys: []string{}}
	for _, key := range keys {
		if _, err := u.UpdateValue(ctx, key, configs[key]); err != nil {
			u.log.Warnf("Batch config update skipped key %s: %+v", key, err)
			result.FailedKeys = append(result.FailedKeys, key)
			continue
		}
		result.Updated++
	}

	return result, nil
}

// validateConfigValue checks the raw value against the declared type.
// string accepts anything.
func validateConfigValue(configType, value string) bool {
	switch configType {
	case entity.ConfigTypeNumber:
		_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil
	case entity.ConfigTypeBoolean:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "false", "1", "0", "yes", "no":
			return true
		}
		return false
	case entity.ConfigTypeJSON:
		return json.Valid([]byte(value))
	default:
		return true
	}
}
