package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rcmunich/robert-chang-portfolio/internal/config"
	"github.com/rcmunich/robert-chang-portfolio/internal/handler"
	middlewarepkg "github.com/rcmunich/robert-chang-portfolio/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Contact *handler.ContactHandler
	Content *handler.ContentHandler
}

// Register wires all HTTP routes for the API. Content writes share one
// token bucket; the contact form is limited per client inside the service.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	writes := middlewarepkg.Throttle(cfg.RateLimitAdmin)

	api.POST("/contact", handlers.Contact.Submit)
	api.GET("/contact", handlers.Contact.List)
	api.PATCH("/contact/:id/status", handlers.Contact.UpdateStatus, writes)

	api.GET("/profile", handlers.Content.Profile)
	api.PUT("/profile", handlers.Content.UpdateProfile, writes)

	api.GET("/experience", handlers.Content.Experiences)
	api.GET("/experience/:id", handlers.Content.Experience)
	api.POST("/experience", handlers.Content.CreateExperience, writes)
	api.PUT("/experience/:id", handlers.Content.UpdateExperience, writes)
	api.DELETE("/experience/:id", handlers.Content.DeleteExperience, writes)

	api.GET("/testimonials", handlers.Content.Testimonials)
	api.GET("/testimonials/:id", handlers.Content.Testimonial)
	api.POST("/testimonials", handlers.Content.CreateTestimonial, writes)
	api.PUT("/testimonials/:id", handlers.Content.UpdateTestimonial, writes)
	api.DELETE("/testimonials/:id", handlers.Content.DeleteTestimonial, writes)

	api.GET("/expertise", handlers.Content.Expertise)
	api.PUT("/expertise", handlers.Content.UpdateExpertise, writes)
}
