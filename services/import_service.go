package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"qr-inventory/constants"
	"qr-inventory/dto"
	"qr-inventory/repositories"
)

type IImportService interface {
	Import(fileBytes []byte) (*dto.ImportSummary, error)
}

type ImportService struct {
	repository repositories.IQRCodeRepository
}

func NewImportService(repository repositories.IQRCodeRepository) IImportService {
	return &ImportService{repository: repository}
}

// Import parses delimited tabular data with a header row into
// {code, name, sku, qty} records and materializes them. Rows whose code fails
// normalization are skipped; rows that hit a storage error are counted as
// failed and the remaining rows are still processed.
func (s *ImportService) Import(fileBytes []byte) (*dto.ImportSummary, error) {
	reader := csv.NewReader(bytes.NewReader(fileBytes))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New(constants.ErrInvalidFile)
	}

	codeIdx, nameIdx, skuIdx, qtyIdx := -1, -1, -1, -1
	for i, column := range header {
		switch strings.ToLower(strings.TrimSpace(column)) {
		case "code":
			codeIdx = i
		case "name":
			nameIdx = i
		case "sku":
			skuIdx = i
		case "qty":
			qtyIdx = i
		}
	}
	if codeIdx == -1 {
		return nil, errors.New(constants.ErrInvalidFile)
	}

	summary := dto.ImportSummary{Ok: true}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Failed++
			continue
		}

		code, err := NormalizeCode(field(record, codeIdx))
		if err != nil {
			summary.Skipped++
			continue
		}

		qty := 1
		if n, err := strconv.Atoi(strings.TrimSpace(field(record, qtyIdx))); err == nil {
			qty = n
		}

		if err := s.repository.LinkItem(code, field(record, nameIdx), field(record, skuIdx), qty); err != nil {
			log.Printf("Import: failed to link item for code %s: %v", code, err)
			summary.Failed++
			continue
		}
		summary.Created++
	}

	return &summary, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
