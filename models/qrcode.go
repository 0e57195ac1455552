package models

import "gorm.io/gorm"

// QRCode holds one normalized scan code. The code string is the lookup key,
// so it must be normalized before every insert and query.
type QRCode struct {
	gorm.Model
	Code string `gorm:"not null;unique"`
}

// Item rows are created freely by the importer; there is no uniqueness
// constraint on name or sku.
type Item struct {
	gorm.Model
	Name  string `gorm:"not null"`
	Sku   string
	Notes string
}

// CodeItem links a code to an item with a quantity. The composite primary key
// allows at most one link per (code, item) pair.
type CodeItem struct {
	QRCodeID uint `gorm:"primaryKey"`
	ItemID   uint `gorm:"primaryKey"`
	Qty      int  `gorm:"not null;default:1"`
}

// LinkedItem is the join-query row returned by a lookup.
type LinkedItem struct {
	Name string `json:"name"`
	Sku  string `json:"sku"`
	Qty  int    `json:"qty"`
}
