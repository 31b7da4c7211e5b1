// File: roombook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombook/config"
	"roombook/database"
	reservationRepoPkg "roombook/database/repository/reservation"
	roomRepoPkg "roombook/database/repository/room"
	"roombook/handlers"
	"roombook/routes"
	reservationSvc "roombook/services/reservation"
	roomSvc "roombook/services/room"
	"roombook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	// services.
	roomLock := &utils.RoomLock{
		Client: utils.GetLockClient(),
		TTL:    time.Duration(config.AppConfig.LockTTLSeconds) * time.Second,
	}
	roomService := roomSvc.NewDefaultRoomService(roomRepo)
	reservationService := reservationSvc.NewDefaultReservationService(roomRepo, reservationRepo, roomLock)

	handlerBundle := handlers.NewHandlerBundle(roomService, reservationService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
