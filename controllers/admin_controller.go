package controllers

import (
	"io"
	"log"
	"net/http"

	"qr-inventory/constants"
	"qr-inventory/services"

	"github.com/gin-gonic/gin"
)

type IAdminController interface {
	Import(ctx *gin.Context)
}

type AdminController struct {
	service services.IImportService
}

func NewAdminController(service services.IImportService) IAdminController {
	return &AdminController{service: service}
}

func (c *AdminController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrFileRequired})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	summary, err := c.service.Import(fileBytes)
	if err != nil {
		log.Printf("Import error: %v", err)
		if err.Error() == constants.ErrInvalidFile {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidFile})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
