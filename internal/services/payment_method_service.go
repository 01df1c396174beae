package services

import (
	"gorm.io/gorm"

	"complaints_backend_echo/internal/models"
)

// PaymentMethodInput carries admin-editable payment method fields.
// Pointer fields distinguish "not sent" from zero values on update.
type PaymentMethodInput struct {
	Name          *string `json:"name"`
	AccountNumber *string `json:"account_number"`
	AccountHolder *string `json:"account_holder"`
	QRImagePath   *string `json:"qr_image_path"`
	Notes         *string `json:"notes"`
	IsActive      *bool   `json:"is_active"`
	DisplayOrder  *int    `json:"display_order"`
}

// PaymentMethodService is the admin-owned registry of payment
// channels. The normal way to retire a method is the is_active
// soft-disable; Delete is a separate destructive action and still only
// soft-deletes the row so existing payments keep their reference.
type PaymentMethodService struct {
	db *gorm.DB
}

func NewPaymentMethodService(db *gorm.DB) *PaymentMethodService {
	return &PaymentMethodService{db: db}
}

// ListActive returns enabled methods in display order, for traders
func (s *PaymentMethodService) ListActive() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := s.db.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// ListAll returns every method in display order, for admins
func (s *PaymentMethodService) ListAll() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := s.db.Order("display_order asc").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Create adds a new payment method
func (s *PaymentMethodService) Create(in PaymentMethodInput) (*models.PaymentMethod, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, ValidationError("name is required")
	}
	if in.AccountNumber == nil || *in.AccountNumber == "" {
		return nil, ValidationError("account_number is required")
	}
	if in.AccountHolder == nil || *in.AccountHolder == "" {
		return nil, ValidationError("account_holder is required")
	}

	method := models.PaymentMethod{
		Name:          *in.Name,
		AccountNumber: *in.AccountNumber,
		AccountHolder: *in.AccountHolder,
		IsActive:      true,
	}
	if in.QRImagePath != nil {
		method.QRImagePath = *in.QRImagePath
	}
	if in.Notes != nil {
		method.Notes = *in.Notes
	}
	if in.IsActive != nil {
		method.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		method.DisplayOrder = *in.DisplayOrder
	}

	if err := s.db.Create(&method).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

// Update applies the fields present in the input
func (s *PaymentMethodService) Update(id uint, in PaymentMethodInput) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := s.db.First(&method, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("payment method")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.AccountNumber != nil {
		updates["account_number"] = *in.AccountNumber
	}
	if in.AccountHolder != nil {
		updates["account_holder"] = *in.AccountHolder
	}
	if in.QRImagePath != nil {
		updates["qr_image_path"] = *in.QRImagePath
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.DisplayOrder != nil {
		updates["display_order"] = *in.DisplayOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&method).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &method, nil
}

// Delete removes a method from the registry (soft delete)
func (s *PaymentMethodService) Delete(id uint) error {
	res := s.db.Delete(&models.PaymentMethod{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFoundError("payment method")
	}
	return nil
}
