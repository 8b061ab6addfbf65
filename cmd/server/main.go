package main

import (
	"log"

	"lms-backend/internal/config"
	"lms-backend/internal/database"
	"lms-backend/internal/handlers"
	"lms-backend/internal/logger"
	"lms-backend/internal/middleware"
	"lms-backend/internal/models"
	"lms-backend/internal/services"
	"lms-backend/internal/store"
	"lms-backend/internal/ws"

	_ "lms-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           LMS Quiz API
// @version         1.0
// @description     API for course quizzes with attempt tracking and scoring
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLog.Sync()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	st := store.NewDBStore(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	catalogService := services.NewCatalogService(st, appLog)
	attemptService := services.NewAttemptService(catalogService, st, appLog)
	courseService := services.NewCourseService(db)
	generateService := services.NewGenerateService(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(catalogService, attemptService)
	questionHandler := handlers.NewQuestionHandler(catalogService)
	attemptHandler := handlers.NewAttemptHandler(catalogService, attemptService, hub)
	courseHandler := handlers.NewCourseHandler(courseService)
	generateHandler := handlers.NewGenerateHandler(generateService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/quizzes/:id", wsHandler.HandleQuizFeed)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.JWTAuth(authService))
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuiz)

			manage := quizzes.Group("")
			manage.Use(middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))
			{
				manage.POST("", quizHandler.CreateQuiz)
				manage.PUT("/:id", quizHandler.UpdateQuiz)
				manage.DELETE("/:id", quizHandler.DeleteQuiz)
				manage.GET("/:id/results", quizHandler.GetQuizResults)
				manage.POST("/:id/questions", questionHandler.AddQuestion)
				manage.PUT("/:id/questions/:questionId", questionHandler.UpdateQuestion)
				manage.DELETE("/:id/questions/:questionId", questionHandler.DeleteQuestion)
			}
		}

		generate := api.Group("/generate")
		generate.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))
		{
			generate.GET("/status", generateHandler.CheckGenerate)
			generate.POST("", generateHandler.Generate)
		}

		attempts := api.Group("/attempts")
		attempts.Use(middleware.JWTAuth(authService))
		{
			attempts.POST("/start", attemptHandler.StartAttempt)
			attempts.POST("/answer", attemptHandler.RecordAnswer)
			attempts.POST("/submit", attemptHandler.SubmitQuiz)
			attempts.GET("/results", attemptHandler.GetMyResults)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)

			authed := courses.Group("")
			authed.Use(middleware.JWTAuth(authService))
			{
				authed.POST("/:id/enroll", courseHandler.Enroll)
				authed.GET("/my/enrollments", courseHandler.ListMyEnrollments)

				instructor := authed.Group("")
				instructor.Use(middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))
				{
					instructor.GET("/my", courseHandler.ListMyCourses)
					instructor.POST("", courseHandler.CreateCourse)
					instructor.PUT("/:id", courseHandler.UpdateCourse)
				}

				admin := authed.Group("")
				admin.Use(middleware.RequireRole(models.RoleAdmin))
				{
					admin.GET("/pending", courseHandler.ListPendingCourses)
					admin.PUT("/:id/status", courseHandler.SetCourseStatus)
				}
			}
		}
	}

	appLog.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
