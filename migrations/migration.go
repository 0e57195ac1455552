package main

import (
	"qr-inventory/infra"
	"qr-inventory/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.QRCode{}, &models.Item{}, &models.CodeItem{}); err != nil {
		panic("Failed to migrate database")
	}
}
