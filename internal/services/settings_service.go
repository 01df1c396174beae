package services

import (
	"strconv"

	"gorm.io/gorm"

	"complaints_backend_echo/internal/models"
)

const (
	defaultAnnualPrice     = "50000"
	defaultGracePeriodDays = 7
)

// SettingsService reads and updates admin-managed key/value settings
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// AnnualPrice returns the annual subscription price in YER, seeding
// the default on first read
func (s *SettingsService) AnnualPrice() (float64, error) {
	setting, err := s.getOrSeed(
		models.SettingAnnualSubscriptionPrice,
		defaultAnnualPrice,
		"Annual subscription price in Yemeni Rial",
	)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(setting.Value, 64)
}

// GracePeriodDays returns the expiry grace window applied to
// subscriptions with the grace flag enabled
func (s *SettingsService) GracePeriodDays() int {
	setting, err := s.getOrSeed(
		models.SettingGracePeriodDays,
		strconv.Itoa(defaultGracePeriodDays),
		"Days an expiring subscription with grace enabled stays active past its end date",
	)
	if err != nil {
		return defaultGracePeriodDays
	}
	days, err := strconv.Atoi(setting.Value)
	if err != nil || days < 0 {
		return defaultGracePeriodDays
	}
	return days
}

// All returns every setting row
func (s *SettingsService) All() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert writes the given key/value pairs, creating missing keys
func (s *SettingsService) Upsert(values map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			var setting models.Setting
			err := tx.Where("key = ?", key).First(&setting).Error
			if err == gorm.ErrRecordNotFound {
				if err := tx.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			if err := tx.Model(&setting).Update("value", value).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SettingsService) getOrSeed(key, value, description string) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		setting = models.Setting{Key: key, Value: value, Description: description}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
