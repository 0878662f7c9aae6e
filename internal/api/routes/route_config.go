package routes

import (
	"SevChefs-API/internal/api/handlers"
	"SevChefs-API/internal/middleware"
	"SevChefs-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	ActivityHandler   handlers.ActivityHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipe()
	c.Ingredient()
	c.Activity()
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/api/v1/login", c.UserHandler.Login)

	user := c.App.Group("/api/v1/user")
	{
		user.Post("/signup", c.UserHandler.Signup)
		user.Get("/all", c.UserHandler.ListProfiles)
		user.Post("/avatar", auth, c.UserHandler.UploadAvatar)
		user.Get("/profile/:id", c.UserHandler.GetProfile)
		user.Get("/:id/recipe/list", c.RecipeHandler.GetUserRecipes)
	}

	follow := c.App.Group("/api/v1/follow", auth)
	{
		follow.Post("/user/:id", c.UserHandler.Follow)
		follow.Delete("/user/:id", c.UserHandler.Unfollow)
	}
}

func (c *Config) Recipe() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipe := c.App.Group("/api/v1/recipe")
	// Fixed paths first so they never match the :id routes.
	{
		recipe.Post("/upload", auth, c.RecipeHandler.UploadRecipe)
		recipe.Get("/list", optional, c.RecipeHandler.ListRecipes)
		recipe.Get("/recommend", optional, c.RecipeHandler.RecommendRecipe)
		recipe.Get("/favourites", auth, c.RecipeHandler.GetFavouritedRecipes)

		recipe.Post("/favourite/:id", auth, c.RecipeHandler.FavouriteRecipe)
		recipe.Delete("/favourite/:id", auth, c.RecipeHandler.UnfavouriteRecipe)
		recipe.Post("/comment/:id", auth, c.RecipeHandler.CommentRecipe)
		recipe.Post("/add/tag/:id", auth, c.RecipeHandler.AddTags)

		recipe.Post("/instruction", auth, c.RecipeHandler.AddInstruction)
		recipe.Delete("/instruction", auth, c.RecipeHandler.DeleteInstruction)
		recipe.Post("/instruction/image/upload/:id", auth, c.RecipeHandler.UploadInstructionImage)

		recipe.Post("/image/upload/:id", auth, c.RecipeHandler.UploadRecipeImage)
		recipe.Delete("/image/upload/:id", auth, c.RecipeHandler.DeleteRecipeImage)

		recipe.Post("/:rid/ingredient/:iid", auth, c.RecipeHandler.AddIngredient)
		recipe.Delete("/:rid/ingredient/:iid", auth, c.RecipeHandler.RemoveIngredient)

		recipe.Get("/:id", optional, c.RecipeHandler.GetRecipeDetail)
		recipe.Put("/:id", auth, c.RecipeHandler.EditRecipe)
	}
}

func (c *Config) Ingredient() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	ingredient := c.App.Group("/api/v1/ingredient")
	{
		ingredient.Get("/list", c.IngredientHandler.GetIngredients)
		ingredient.Post("", auth, c.IngredientHandler.CreateIngredient)
	}
}

func (c *Config) Activity() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	activity := c.App.Group("/api/v1/activity", auth)
	activity.Get("/feed", c.ActivityHandler.GetFeed)
}
