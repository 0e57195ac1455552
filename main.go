package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qr-inventory/constants"
	"qr-inventory/controllers"
	"qr-inventory/infra"
	"qr-inventory/middlewares"
	"qr-inventory/models"
	"qr-inventory/repositories"
	"qr-inventory/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)
	authController := controllers.NewAuthController(authService)

	qrcodeRepository := repositories.NewQRCodeRepository(db)
	qrcodeService := services.NewQRCodeService(qrcodeRepository)
	qrcodeController := controllers.NewQRCodeController(qrcodeService)

	importService := services.NewImportService(qrcodeRepository)
	adminController := controllers.NewAdminController(importService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "QR Scan API is running")
	})

	authRouter := r.Group("/api/auth")
	authRouter.POST("/register", authController.Signup)
	authRouter.POST("/login", authController.Login)

	qrcodeRouter := r.Group("/api/qrcodes", middlewares.AuthMiddleware(authService))
	qrcodeRouter.GET("/:code", qrcodeController.Lookup)

	adminRouter := r.Group("/api/admin",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin))
	adminRouter.POST("/import", adminController.Import)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()

	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.QRCode{}, &models.Item{}, &models.CodeItem{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	db := initDB()

	// Refuse to start without an explicit signing secret; a baked-in default
	// would let anyone forge tokens.
	if os.Getenv("SECRET_KEY") == "" {
		log.Fatal("SECRET_KEY is not set")
	}

	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
