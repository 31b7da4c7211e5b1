package routes

import (
	"net/http"
	"time"

	"roombook/handlers"
	"roombook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers the room catalogue and availability endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.IdentityMiddleware())
		api.GET("", hb.ListRooms)
		api.GET("/:roomID", hb.GetRoom)
		api.GET("/:roomID/exceptions", hb.ListRoomExceptions)

		// Availability views
		api.GET("/:roomID/days/:date", hb.DayStatus)
		api.GET("/:roomID/days/:date/options", hb.StartTimeOptions)
		api.GET("/:roomID/months/:month", hb.MonthStatus)
		api.GET("/:roomID/reservations", hb.ListRoomReservations)
	}
}

// RegisterReservationRoutes registers the booking lifecycle endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.IdentityMiddleware())
		api.POST("", hb.CreateReservation)
		api.GET("/mine", hb.ListMyReservations)
		api.GET("/:reservationID", hb.GetReservation)
		api.DELETE("/:reservationID", hb.CancelReservation)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.IdentityMiddleware(), middleware.AdminMiddleware())
		adminGroup.POST("/rooms", hb.CreateRoom)
		adminGroup.PUT("/rooms/:roomID", hb.UpdateRoom)
		adminGroup.DELETE("/rooms/:roomID", hb.DeleteRoom)
		adminGroup.PUT("/rooms/:roomID/exceptions", hb.SetRoomException)
		adminGroup.DELETE("/rooms/:roomID/exceptions/:date", hb.DeleteRoomException)
		adminGroup.GET("/reservations", hb.ListAllReservations)
		adminGroup.PUT("/reservations/:reservationID", hb.UpdateReservation)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID", "X-User-Name", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterRoomRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
