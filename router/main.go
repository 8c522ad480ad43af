package router

import (
	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/handlers"
	appointment_handlers "github.com/everestllcweb-png/backend/handlers/appointment"
	auth_handlers "github.com/everestllcweb-png/backend/handlers/auth"
	blog_handlers "github.com/everestllcweb-png/backend/handlers/blog"
	class_handlers "github.com/everestllcweb-png/backend/handlers/class"
	course_handlers "github.com/everestllcweb-png/backend/handlers/course"
	destination_handlers "github.com/everestllcweb-png/backend/handlers/destination"
	review_handlers "github.com/everestllcweb-png/backend/handlers/review"
	settings_handlers "github.com/everestllcweb-png/backend/handlers/settings"
	slider_handlers "github.com/everestllcweb-png/backend/handlers/slider"
	team_handlers "github.com/everestllcweb-png/backend/handlers/team"
	university_handlers "github.com/everestllcweb-png/backend/handlers/university"
	upload_handlers "github.com/everestllcweb-png/backend/handlers/upload"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/services/digitalocean"
	"github.com/everestllcweb-png/backend/services/upload"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Dependencies are the long-lived components the routes are built from
type Dependencies struct {
	Env      *config.EnviornmentVariable
	Store    database.Storage
	Sessions *session.Store
	// Spaces is nil when DigitalOcean Spaces is not configured
	Spaces *digitalocean.SpacesClient
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	svc := services.NewServices(deps.Store.Repositories(), validation.NewValidator())

	authMiddleware := middleware.NewAuthMiddleware(deps.Sessions)
	admin := authMiddleware.Required()

	authHandler := auth_handlers.NewAuthHandler(svc.Auth, deps.Sessions)
	settingsHandler := settings_handlers.NewSettingsHandler(svc.Settings)
	sliderHandler := slider_handlers.NewSliderHandler(svc.Sliders)
	universityHandler := university_handlers.NewUniversityHandler(svc.Universities)
	courseHandler := course_handlers.NewCourseHandler(svc.Courses)
	destinationHandler := destination_handlers.NewDestinationHandler(svc.Destinations)
	classHandler := class_handlers.NewClassHandler(svc.Classes)
	blogHandler := blog_handlers.NewBlogHandler(svc.Blogs)
	reviewHandler := review_handlers.NewReviewHandler(svc.Reviews)
	appointmentHandler := appointment_handlers.NewAppointmentHandler(svc.Appointments)
	teamHandler := team_handlers.NewTeamHandler(svc.Teams)
	uploadHandler := upload_handlers.NewUploadHandler(upload.NewSigner(deps.Env), deps.Spaces)

	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:      deps.Env.AllowedOrigins(),
		CookieEncryptionKey: deps.Env.COOKIE_ENCRYPTION_KEY,
	})

	// Health check endpoints (public)
	app.Get("/health", handlers.HandleCheckHealth)

	// Every API route knows whether the caller is an admin
	api := app.Group("/api", authMiddleware.Optional())
	api.Get("/health", handlers.HandleAPIHealth(deps.Store))

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/check", authHandler.Check)
	authGroup.Get("/me", admin, authHandler.Me)

	// Settings singleton
	api.Get("/settings", settingsHandler.GetSettings)           // Public
	api.Put("/settings", admin, settingsHandler.UpdateSettings) // Admin only

	// Sliders routes
	sliders := api.Group("/sliders")
	sliders.Get("/", sliderHandler.ListSliders)               // Public: active only unless admin
	sliders.Get("/:id", sliderHandler.GetSlider)              // Public: active only unless admin
	sliders.Post("/", admin, sliderHandler.CreateSlider)      // Admin only
	sliders.Put("/:id", admin, sliderHandler.UpdateSlider)    // Admin only
	sliders.Delete("/:id", admin, sliderHandler.DeleteSlider) // Admin only

	// Universities routes
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.ListUniversities)
	universities.Get("/:id", universityHandler.GetUniversity)
	universities.Post("/", admin, universityHandler.CreateUniversity)
	universities.Put("/:id", admin, universityHandler.UpdateUniversity)
	universities.Delete("/:id", admin, universityHandler.DeleteUniversity)

	// Courses routes
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Post("/", admin, courseHandler.CreateCourse)
	courses.Put("/:id", admin, courseHandler.UpdateCourse)
	courses.Delete("/:id", admin, courseHandler.DeleteCourse)

	// Destinations routes
	destinations := api.Group("/destinations")
	destinations.Get("/", destinationHandler.ListDestinations)
	destinations.Get("/:id", destinationHandler.GetDestination)
	destinations.Post("/", admin, destinationHandler.CreateDestination)
	destinations.Put("/:id", admin, destinationHandler.UpdateDestination)
	destinations.Delete("/:id", admin, destinationHandler.DeleteDestination)

	// Classes routes
	classes := api.Group("/classes")
	classes.Get("/", classHandler.ListClasses)
	classes.Get("/:id", classHandler.GetClass)
	classes.Post("/", admin, classHandler.CreateClass)
	classes.Put("/:id", admin, classHandler.UpdateClass)
	classes.Delete("/:id", admin, classHandler.DeleteClass)

	// Blogs routes (public sees published posts only)
	blogs := api.Group("/blogs")
	blogs.Get("/", blogHandler.ListBlogs)
	blogs.Get("/slug/:slug", blogHandler.GetBlogBySlug)
	blogs.Get("/:id", blogHandler.GetBlog)
	blogs.Post("/", admin, blogHandler.CreateBlog)
	blogs.Put("/:id", admin, blogHandler.UpdateBlog)
	blogs.Delete("/:id", admin, blogHandler.DeleteBlog)

	// Reviews routes
	reviews := api.Group("/reviews")
	reviews.Get("/", reviewHandler.ListReviews)
	reviews.Get("/:id", reviewHandler.GetReview)
	reviews.Post("/", admin, reviewHandler.CreateReview)
	reviews.Put("/:id", admin, reviewHandler.UpdateReview)
	reviews.Delete("/:id", admin, reviewHandler.DeleteReview)

	// Team routes
	team := api.Group("/team")
	team.Get("/", teamHandler.ListTeam)
	team.Get("/all", admin, teamHandler.ListAllTeam)
	team.Post("/", admin, teamHandler.CreateTeamMember)
	team.Put("/:id", admin, teamHandler.UpdateTeamMember)
	team.Delete("/:id", admin, teamHandler.DeleteTeamMember)

	// Appointments routes (anyone can book, only admins can see them)
	appointments := api.Group("/appointments")
	appointments.Get("/", admin, appointmentHandler.ListAppointments)
	appointments.Post("/", appointmentHandler.BookAppointment)
	appointments.Put("/:id", admin, appointmentHandler.UpdateAppointment)
	appointments.Delete("/:id", admin, appointmentHandler.DeleteAppointment)

	// Direct-to-storage uploads
	api.Post("/signature", admin, uploadHandler.CreateSignature)
	api.Post("/uploads/presign", admin, uploadHandler.PresignUpload)
}
