package controllers

import (
	"net/http"

	"qr-inventory/constants"
	"qr-inventory/services"

	"github.com/gin-gonic/gin"
)

type IQRCodeController interface {
	Lookup(ctx *gin.Context)
}

type QRCodeController struct {
	service services.IQRCodeService
}

func NewQRCodeController(service services.IQRCodeService) IQRCodeController {
	return &QRCodeController{service: service}
}

func (c *QRCodeController) Lookup(ctx *gin.Context) {
	response, err := c.service.Lookup(ctx.Param("code"))
	if err != nil {
		if err.Error() == constants.ErrInvalidCode {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidCode})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
