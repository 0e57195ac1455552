package services

import (
	"errors"
	"regexp"
	"strings"

	"qr-inventory/constants"
	"qr-inventory/dto"
	"qr-inventory/models"
	"qr-inventory/repositories"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9-]{3,40}$`)

// NormalizeCode trims and upper-cases a raw scan code and validates its
// format. Normalization is idempotent.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !codePattern.MatchString(code) {
		return "", errors.New(constants.ErrInvalidCode)
	}
	return code, nil
}

type IQRCodeService interface {
	Lookup(rawCode string) (*dto.LookupResponse, error)
}

type QRCodeService struct {
	repository repositories.IQRCodeRepository
}

func NewQRCodeService(repository repositories.IQRCodeRepository) IQRCodeService {
	return &QRCodeService{repository: repository}
}

// Lookup resolves a scanned code to its linked items. An unknown code is not
// an error: it returns the normalized code with an empty item list, so a code
// with zero items and a code that was never imported look the same.
func (s *QRCodeService) Lookup(rawCode string) (*dto.LookupResponse, error) {
	code, err := NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	qrcode, err := s.repository.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if qrcode == nil {
		return &dto.LookupResponse{Code: code, Items: []models.LinkedItem{}}, nil
	}

	items, err := s.repository.FindLinkedItems(qrcode.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.LinkedItem{}
	}
	return &dto.LookupResponse{Code: code, Items: items}, nil
}
