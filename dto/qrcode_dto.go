package dto

import "qr-inventory/models"

type LookupResponse struct {
	Code  string              `json:"code"`
	Items []models.LinkedItem `json:"items"`
}

// ImportSummary reports per-row outcomes of a bulk import. Skipped rows are
// those whose code failed normalization; failed rows hit a storage error.
type ImportSummary struct {
	Ok      bool `json:"ok"`
	Created int  `json:"created"`
	Skipped int  `json:"skipped"`
	Failed  int  `json:"failed"`
}
