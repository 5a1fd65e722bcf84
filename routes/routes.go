package routes

import (
	"net/http"
	"time"

	"estia/handlers"
	"estia/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAgentRoutes registers agent account endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agents")
	{
		api.POST("/register", hb.Agent.RegisterAgentHandler)
		api.POST("/login", hb.Agent.AuthenticateAgentHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthAgentMiddleware(hb.AgentRepo))
		api.GET("/me", hb.Agent.GetAgentHandler)
		api.PUT("/me", hb.Agent.UpdateAgentHandler)
		api.DELETE("/me", hb.Agent.DeleteAgentHandler)
		api.DELETE("/token", hb.Agent.RevokeAuthTokenHandler)
		api.PUT("/password", hb.Agent.UpdateAgentPasswordHandler)
		api.POST("/subscribe", hb.Agent.StartSubscriptionHandler)
		api.GET("/subscription", hb.Agent.GetSubscriptionHandler)
	}
}

// RegisterClientRoutes registers client CRUD and per-client match endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	api.Use(middleware.JWTAuthAgentMiddleware(hb.AgentRepo))
	{
		api.POST("", hb.Client.CreateClientHandler)
		api.GET("", hb.Client.ListClientsHandler)
		api.GET("/:id", hb.Client.GetClientHandler)
		api.PUT("/:id", hb.Client.UpdateClientHandler)
		api.DELETE("/:id", hb.Client.DeleteClientHandler)

		// Match features require an active subscription.
		api.GET("/:id/matches", middleware.RequireActiveSubscription(hb.AgentRepo), hb.Match.ClientMatchesHandler)
	}
}

// RegisterPropertyRoutes registers property CRUD, photo and buyer-match endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	api.Use(middleware.JWTAuthAgentMiddleware(hb.AgentRepo))
	{
		api.POST("", hb.Property.CreatePropertyHandler)
		api.GET("", hb.Property.ListPropertiesHandler)
		api.GET("/:id", hb.Property.GetPropertyHandler)
		api.PUT("/:id", hb.Property.UpdatePropertyHandler)
		api.DELETE("/:id", hb.Property.DeletePropertyHandler)

		api.POST("/:id/photos", hb.Property.UploadPhotoHandler)
		api.DELETE("/:id/photos/:photoId", hb.Property.DeletePhotoHandler)

		api.GET("/:id/buyers", middleware.RequireActiveSubscription(hb.AgentRepo), hb.Match.PropertyBuyersHandler)
	}
}

// RegisterMatchRoutes registers match visibility endpoints.
func RegisterMatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/matches")
	api.Use(middleware.JWTAuthAgentMiddleware(hb.AgentRepo))
	api.Use(middleware.RequireActiveSubscription(hb.AgentRepo))
	{
		api.POST("/viewed", hb.Match.MarkViewedHandler)
		api.POST("/exclude", hb.Match.ExcludeMatchHandler)
	}
}

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthAgentMiddleware(hb.AgentRepo))
	{
		api.POST("", hb.Appointment.CreateAppointmentHandler)
		api.GET("", hb.Appointment.ListAppointmentsHandler)
		api.GET("/:id", hb.Appointment.GetAppointmentHandler)
		api.PUT("/:id", hb.Appointment.UpdateAppointmentHandler)
		api.DELETE("/:id", hb.Appointment.DeleteAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Estia"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAgentRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterMatchRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
