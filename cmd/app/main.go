package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"whirkplace/cmd/fx/account_fx"
	"whirkplace/cmd/fx/checkin_fx"
	"whirkplace/cmd/fx/dashboard_fx"
	"whirkplace/cmd/fx/db_fx"
	"whirkplace/cmd/fx/insight_fx"
	"whirkplace/cmd/fx/kra_fx"
	"whirkplace/cmd/fx/mail_fx"
	"whirkplace/cmd/fx/memcache_fx"
	"whirkplace/cmd/fx/notification_fx"
	"whirkplace/cmd/fx/org_fx"
	"whirkplace/cmd/fx/question_fx"
	"whirkplace/cmd/fx/vacation_fx"
	"whirkplace/cmd/fx/win_fx"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/models/db_models"
	"whirkplace/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		checkin_fx.Module,
		question_fx.Module,
		vacation_fx.Module,
		win_fx.Module,
		kra_fx.Module,
		notification_fx.Module,
		dashboard_fx.Module,
		insight_fx.Module,
		org_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	checkinController *controllers.CheckinController,
	questionController *controllers.QuestionController,
	vacationController *controllers.VacationController,
	winController *controllers.WinController,
	kraController *controllers.KRAController,
	notificationController *controllers.NotificationController,
	dashboardController *controllers.DashboardController,
	insightController *controllers.InsightController,
	orgController *controllers.OrgController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController, checkinController, questionController,
		vacationController, winController, kraController,
		notificationController, dashboardController, insightController,
		orgController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	checkinController *controllers.CheckinController,
	questionController *controllers.QuestionController,
	vacationController *controllers.VacationController,
	winController *controllers.WinController,
	kraController *controllers.KRAController,
	notificationController *controllers.NotificationController,
	dashboardController *controllers.DashboardController,
	insightController *controllers.InsightController,
	orgController *controllers.OrgController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/password-reset/request", authController.RequestPasswordReset)
	authGroup.POST("/password-reset/confirm", authController.ResetPassword)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	meGroup := authed.Group("/me")
	meGroup.GET("", authController.GetProfile)
	meGroup.GET("/reports", authController.ListReports)

	accountsGroup := authed.Group("/accounts")
	accountsGroup.Use(middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleSuperAdmin))
	accountsGroup.PUT("/manager", authController.SetManager)
	accountsGroup.PUT("/role", authController.SetRole)

	checkinsGroup := authed.Group("/checkins")
	checkinsGroup.GET("/window", checkinController.GetWindow)
	checkinsGroup.POST("", checkinController.Submit)
	checkinsGroup.GET("", checkinController.History)
	checkinsGroup.POST("/:id/comments", checkinController.AddComment)
	checkinsGroup.GET("/:id/comments", checkinController.ListComments)
	checkinsGroup.PUT("/comments/:commentId", checkinController.UpdateComment)
	checkinsGroup.DELETE("/comments/:commentId", checkinController.DeleteComment)

	reviewGroup := authed.Group("/checkins")
	reviewGroup.Use(middleware.RoleMiddleware(db_models.RoleManager, db_models.RoleAdmin, db_models.RoleSuperAdmin))
	reviewGroup.GET("/pending", checkinController.Pending)
	reviewGroup.POST("/:id/review", checkinController.Review)
	reviewGroup.GET("/reports/:userId", checkinController.ReportHistory)

	questionsGroup := authed.Group("/questions")
	questionsGroup.GET("", questionController.ListActive)
	questionAdmin := questionsGroup.Group("")
	questionAdmin.Use(middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleSuperAdmin))
	questionAdmin.GET("/all", questionController.ListAll)
	questionAdmin.POST("", questionController.Create)
	questionAdmin.PUT("/:id", questionController.Update)
	questionAdmin.PUT("/reorder", questionController.Reorder)

	vacationsGroup := authed.Group("/vacations")
	vacationsGroup.POST("", vacationController.Create)
	vacationsGroup.GET("", vacationController.List)
	vacationsGroup.DELETE("/:id", vacationController.Delete)

	winsGroup := authed.Group("/wins")
	winsGroup.POST("", winController.Create)
	winsGroup.GET("", winController.Feed)
	winsGroup.POST("/:id/reactions", winController.React)
	winsGroup.DELETE("/:id/reactions", winController.Unreact)

	krasGroup := authed.Group("/kras")
	krasGroup.GET("/mine", kraController.ListMine)
	krasGroup.PUT("/assignments/:id/status", kraController.UpdateStatus)
	kraAdmin := krasGroup.Group("")
	kraAdmin.Use(middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleSuperAdmin))
	kraAdmin.GET("/templates", kraController.ListTemplates)
	kraAdmin.POST("/templates", kraController.CreateTemplate)
	kraAdmin.PUT("/templates/:id", kraController.UpdateTemplate)
	kraAdmin.DELETE("/templates/:id", kraController.DeleteTemplate)
	kraAdmin.POST("/templates/:id/assign", kraController.Assign)

	notificationsGroup := authed.Group("/notifications")
	notificationsGroup.GET("", notificationController.List)
	notificationsGroup.PUT("/:id/read", notificationController.MarkRead)
	notificationsGroup.GET("/preferences", notificationController.GetPreferences)
	notificationsGroup.PUT("/preferences", notificationController.UpdatePreferences)

	managerGroup := authed.Group("/")
	managerGroup.Use(middleware.RoleMiddleware(db_models.RoleManager, db_models.RoleAdmin, db_models.RoleSuperAdmin))
	managerGroup.GET("/dashboard", dashboardController.Get)
	managerGroup.GET("/insights/weekly", insightController.WeeklyDigest)

	orgsGroup := authed.Group("/orgs")
	orgsGroup.Use(middleware.RoleMiddleware(db_models.RoleSuperAdmin))
	orgsGroup.POST("", orgController.Create)
	orgsGroup.GET("", orgController.List)
	orgsGroup.PUT("/:id/suspend", orgController.Suspend)
	orgsGroup.PUT("/:id/activate", orgController.Activate)
}
