package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/ledosportsacademy/club-manager-go/config"
	controllers "github.com/ledosportsacademy/club-manager-go/controllers"
	middleware "github.com/ledosportsacademy/club-manager-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.AdminOnly()

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Welcome to LEDO Sports Academy API"})
		})

		// public
		api.POST("/admin/login", controllers.Login(cfg))
		api.GET("/analysis", controllers.GetAnalysis(cfg))

		members := api.Group("/members")
		{
			members.GET("", controllers.ListMembers(cfg))
			members.POST("", auth, controllers.CreateMember(cfg))
			members.PATCH("/:id", auth, controllers.UpdateMemberFeeStatus(cfg))
		}

		experiences := api.Group("/experiences")
		{
			experiences.GET("", controllers.ListExperiences(cfg))
			experiences.POST("", controllers.CreateExperience(cfg))
		}

		donations := api.Group("/donations")
		{
			donations.GET("", controllers.ListDonations(cfg))
			donations.POST("", auth, admin, controllers.CreateDonation(cfg))
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", controllers.ListExpenses(cfg))
			expenses.POST("", auth, admin, controllers.CreateExpense(cfg))
			expenses.PUT("/:id", auth, admin, controllers.UpdateExpense(cfg))
		}
	}
}
