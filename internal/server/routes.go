// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/auth"
	"HireEcho-backend/internal/controller/application"
	"HireEcho-backend/internal/controller/company"
	"HireEcho-backend/internal/controller/job"
	"HireEcho-backend/internal/metrics"
	"HireEcho-backend/internal/middleware"

	// Init swagger doc
	_ "HireEcho-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RootMessage is the liveness text served on "/".
const RootMessage = "HireEcho Server is running......"

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(s.Log),
		gin.Recovery(),
		middleware.Metrics(),
		middleware.SafeHeader(s.Config.Production()),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.AllowOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	session := auth.NewSessionController(s.Tokens, s.Blacklist, auth.CookiePolicy{
		Production: s.Config.Production(),
		MaxAge:     s.Tokens.TTL(),
	}, s.Log)
	jobs := job.NewJobController(s.jobs)
	apps := application.NewApplicationController(s.applications, s.recorder)
	companies := company.NewCompanyController(s.companies)

	limit := middleware.RateLimiterMiddleware(uint(s.Config.RateLimit))
	bodyLimit := middleware.SizeLimit(middleware.DefaultBodyLimit)

	r.GET("/", s.RootHandler)
	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("")
	{
		public.Use(limit)
		public.POST("/jwt", bodyLimit, session.IssueTokenHandler)
		public.POST("/logout", session.LogoutHandler)
		public.GET("/allJobs", jobs.GetAllJobs)
		public.GET("/companies", companies.GetCompanies)
		public.GET("/appliedJobs", apps.GetAppliedJobs)
	}

	// Limited after auth so signed-in clients are keyed by their email claim.
	needAuth := r.Group("")
	{
		needAuth.Use(middleware.RequireAuth(s.Tokens, s.Log), middleware.JwtBlacklistCheck(s.Blacklist, s.Log), limit)

		needAuth.POST("/addJobs", bodyLimit, jobs.AddJob)
		needAuth.GET("/jobDetails/:id", jobs.GetJobDetails)
		needAuth.PUT("/jobDetailsUpdate/:id", bodyLimit, jobs.UpdateJobDetails)
		needAuth.DELETE("/myJob/:id", jobs.DeleteMyJob)

		needAuth.POST("/appliedJobs", bodyLimit, apps.SubmitApplication)
		needAuth.GET("/jobAppliedCount", middleware.MatchEmailClaim("email"), apps.JobAppliedCount)
		needAuth.GET("/jobPostedCount", middleware.MatchEmailClaim("email"), jobs.JobPostedCount)
	}

	return r
}

// RootHandler answers the liveness probe with a plain text message.
// @Summary Liveness
// @Tags Health
// @Produce plain
// @Success 200 {string} string "HireEcho Server is running......"
// @Router / [get]
func (s *Server) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// healthHandler reports the store status.
// @Summary Store health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Store reachable"
// @Failure 503 {object} map[string]string "Store unreachable"
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	stats := s.DB.Health(c.Request.Context())
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
