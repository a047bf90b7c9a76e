package router

import (
	"net/http"
	"time"

	"github.com/ascend-community/backend/internal/api"
	"github.com/ascend-community/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRouter configures the application routes
func SetupRouter(
	planHandler *api.PlanHandler,
	ingredientHandler *api.IngredientHandler,
	profileHandler *api.ProfileHandler,
	tokenValidator middleware.TokenValidator,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Edits are throttled per member; reads are not.
	editLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     60,
		KeyPrefix: "ratelimit:plan_edit",
	})

	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokenValidator))
	{
		plans := protected.Group("/plans")
		{
			plans.GET("", planHandler.ListTemplates)
			plans.GET("/active", planHandler.GetActivePlan)
			plans.GET("/:id", planHandler.GetPlan)
			plans.GET("/:id/days/:day/deviations", planHandler.GetDayDeviations)

			edits := plans.Group("")
			edits.Use(editLimiter.RateLimitMiddleware())
			{
				edits.PUT("/:id/days/:day/meals/:slot", planHandler.EditMeal)
				edits.POST("/:id/reset", planHandler.ResetPlan)
				edits.POST("/:id/select", planHandler.SelectPlan)
			}
		}

		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.ListIngredients)
			ingredients.GET("/:name", ingredientHandler.GetIngredient)
		}

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.GET("/targets", profileHandler.GetTargets)
		}
	}

	return router
}
