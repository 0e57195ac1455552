package repositories

import (
	"errors"

	"qr-inventory/models"

	"gorm.io/gorm"
)

type IQRCodeRepository interface {
	FindByCode(code string) (*models.QRCode, error)
	FindLinkedItems(qrcodeID uint) ([]models.LinkedItem, error)
	LinkItem(code string, name string, sku string, qty int) error
}

type QRCodeRepository struct {
	db *gorm.DB
}

func NewQRCodeRepository(db *gorm.DB) IQRCodeRepository {
	return &QRCodeRepository{db: db}
}

// FindByCode returns (nil, nil) when no row matches; an unknown code is not
// an error at this layer.
func (r *QRCodeRepository) FindByCode(code string) (*models.QRCode, error) {
	var qrcode models.QRCode
	result := r.db.First(&qrcode, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &qrcode, nil
}

func (r *QRCodeRepository) FindLinkedItems(qrcodeID uint) ([]models.LinkedItem, error) {
	var items []models.LinkedItem
	result := r.db.Table("items").
		Select("items.name, items.sku, code_items.qty").
		Joins("JOIN code_items ON code_items.item_id = items.id").
		Where("code_items.qr_code_id = ?", qrcodeID).
		Scan(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

// LinkItem materializes one import record: the code row is reused when it
// already exists, the item row is always inserted fresh. All three writes
// run in a single transaction so a failure cannot leave an orphaned item.
func (r *QRCodeRepository) LinkItem(code string, name string, sku string, qty int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var qrcode models.QRCode
		if err := tx.Where(models.QRCode{Code: code}).FirstOrCreate(&qrcode).Error; err != nil {
			return err
		}

		item := models.Item{Name: name, Sku: sku}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		link := models.CodeItem{QRCodeID: qrcode.ID, ItemID: item.ID, Qty: qty}
		return tx.Create(&link).Error
	})
}
