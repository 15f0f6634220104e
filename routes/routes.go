package routes

import (
	"github.com/Damien-Lo/PersonalAssistantNative/controllers"
	"github.com/Damien-Lo/PersonalAssistantNative/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Setup(app *fiber.App) {
	// 1. AUTH (public)
	auth := app.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.Refresh)
	auth.Get("/activate/:link", controllers.Activate)
	auth.Get("/me", middleware.JWTProtected(), controllers.Me)

	api := app.Group("/api")

	// 2. CALENDAR change stream (token via query param)
	api.Get("/calendarEvents/ws", websocket.New(controllers.CalendarWebSocket))

	// 3. INGREDIENTS
	ingredients := api.Group("/ingredients", middleware.JWTProtected())
	ingredients.Get("/", controllers.GetIngredients)
	ingredients.Get("/:id", controllers.GetIngredient)
	ingredients.Post("/", controllers.CreateIngredient)
	ingredients.Patch("/:id", controllers.UpdateIngredient)
	ingredients.Delete("/:id", controllers.DeleteIngredient)

	// 4. DISHES
	dishes := api.Group("/dishes", middleware.JWTProtected())
	dishes.Get("/", controllers.GetDishes)
	dishes.Get("/:id", controllers.GetDish)
	dishes.Post("/", controllers.CreateDish)
	dishes.Patch("/:id", controllers.UpdateDish)
	dishes.Delete("/:id", controllers.DeleteDish)

	// 5. CALENDAR EVENTS
	events := api.Group("/calendarEvents", middleware.JWTProtected())
	events.Get("/", controllers.GetCalendarEvents)
	events.Get("/day", controllers.GetCalendarEventsForDay)
	events.Get("/:id", controllers.GetCalendarEvent)
	events.Post("/", controllers.CreateCalendarEvent)
	events.Patch("/:id", controllers.UpdateCalendarEvent)
	events.Delete("/:id", controllers.DeleteCalendarEvent)
	events.Post("/:id/materialize", controllers.MaterializeCalendarEvent)
}
