package app

import (
	"foreclosure-backend/internal/actionresults"
	"foreclosure-backend/internal/auctions"
	"foreclosure-backend/internal/auth"
	"foreclosure-backend/internal/builds"
	"foreclosure-backend/internal/cases"
	"foreclosure-backend/internal/config"
	"foreclosure-backend/internal/database"
	"foreclosure-backend/internal/decisions"
	"foreclosure-backend/internal/emails"
	"foreclosure-backend/internal/lands"
	"foreclosure-backend/internal/middleware"
	"foreclosure-backend/internal/parties"
	"foreclosure-backend/internal/refobjects"
	"foreclosure-backend/internal/surveys"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration, mirroring the Express server.js mount order.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(cfg.ClientURL))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	rdb, err := middleware.NewRedis(middleware.SessionConfig{
		Secret:   cfg.SessionSecret,
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(middleware.Session(rdb))

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API is running"})
	})

	if db == nil {
		return app, nil, rdb, nil
	}

	var mailer emails.Sender
	if cfg.EmailPass != "" {
		mailer = &emails.RelayClient{APIKey: cfg.EmailPass, From: mailFrom(cfg)}
	}

	// Users (no auth middleware; me/logout resolve the session themselves)
	authHandlers := &auth.Handlers{
		Service: &auth.Service{DB: db, Mailer: mailer},
		Rdb:     rdb,
	}
	users := app.Group("/api/users")
	users.Post("/register", authHandlers.Register)
	users.Post("/login", authHandlers.Login)
	users.Post("/verify-email", authHandlers.VerifyEmail)
	users.Post("/resend-verification", authHandlers.ResendVerification)
	users.Get("/me", authHandlers.Me)
	users.Delete("/logout", authHandlers.Logout)

	requireAuth := middleware.RequireAuth()

	// Cases
	caseHandlers := &cases.Handlers{Service: &cases.Service{DB: db}}
	caseGroup := app.Group("/api/cases", requireAuth)
	caseGroup.Get("/", caseHandlers.GetAllCases)
	caseGroup.Get("/:id", caseHandlers.GetCase)
	caseGroup.Post("/", caseHandlers.CreateCase)
	caseGroup.Put("/:id", caseHandlers.UpdateCase)
	caseGroup.Delete("/:id", caseHandlers.DeleteCase)

	api := app.Group("/api", requireAuth)

	// Creditors / debtors
	partyHandlers := &parties.Handlers{Service: &parties.Service{DB: db}}
	api.Get("/case/:caseId/persons", partyHandlers.GetPersonsByCaseID)
	api.Post("/case/:caseId/persons", partyHandlers.CreatePerson)
	api.Put("/persons/:personId", partyHandlers.UpdatePerson)
	api.Delete("/persons/:personId", partyHandlers.DeletePerson)
	api.Get("/case/:caseId/debtors", partyHandlers.GetDebtorsByCaseID)
	api.Post("/case/:caseId/debtors", partyHandlers.CreateDebtor)
	api.Put("/debtors/:debtorId", partyHandlers.UpdateDebtor)
	api.Delete("/debtors/:debtorId", partyHandlers.DeleteDebtor)

	// Lands
	landHandlers := &lands.Handlers{Service: &lands.Service{DB: db}}
	api.Get("/case/:caseId/lands", landHandlers.GetLandsByCaseID)
	api.Get("/case/:caseId/lands/summary", landHandlers.GetLandSummary)
	api.Post("/case/:caseId/lands", landHandlers.CreateLand)
	api.Put("/lands/:landId", landHandlers.UpdateLand)
	api.Delete("/lands/:landId", landHandlers.DeleteLand)

	// Builds
	buildHandlers := &builds.Handlers{Service: &builds.Service{DB: db}}
	api.Get("/case/:caseId/builds", buildHandlers.GetBuildsByCaseID)
	api.Get("/case/:caseId/builds/summary", buildHandlers.GetBuildSummary)
	api.Post("/case/:caseId/builds", buildHandlers.CreateBuild)
	api.Put("/builds/:buildId", buildHandlers.UpdateBuild)
	api.Delete("/builds/:buildId", buildHandlers.DeleteBuild)

	// Reference objects + scores
	refHandlers := &refobjects.Handlers{Service: &refobjects.Service{DB: db}}
	api.Get("/case/:caseId/referenceObjects", refHandlers.GetReferenceObjects)
	api.Post("/case/:caseId/referenceObjects", refHandlers.CreateReferenceObject)
	api.Put("/referenceObjects/:id", refHandlers.UpdateReferenceObject)
	api.Delete("/referenceObjects/:id", refHandlers.DeleteReferenceObject)
	api.Post("/referenceObjects/:id/scores", refHandlers.AddScore)
	api.Put("/referenceObjects/:id/scores/:scoreId", refHandlers.UpdateScore)
	api.Delete("/referenceObjects/:id/scores/:scoreId", refHandlers.DeleteScore)

	// Auctions
	auctionHandlers := &auctions.Handlers{Service: &auctions.Service{DB: db}}
	api.Get("/case/:caseId/auctions", auctionHandlers.GetAuctions)
	api.Post("/case/:caseId/auctions", auctionHandlers.CreateAuction)
	api.Put("/auctions/:id", auctionHandlers.UpdateAuction)
	api.Delete("/auctions/:id", auctionHandlers.DeleteAuction)

	// Surveys
	surveyHandlers := &surveys.Handlers{Service: &surveys.Service{DB: db}}
	api.Get("/case/:caseId/surveys", surveyHandlers.GetSurveysByCaseID)
	api.Post("/case/:caseId/surveys", surveyHandlers.CreateSurvey)
	api.Put("/surveys/:surveyId", surveyHandlers.UpdateSurvey)
	api.Delete("/surveys/:surveyId", surveyHandlers.DeleteSurvey)

	// Final decisions
	decisionHandlers := &decisions.Handlers{Service: &decisions.Service{DB: db}}
	api.Get("/case/:caseId/finalDecisions", decisionHandlers.GetFinalDecisionsByCaseID)
	api.Post("/case/:caseId/finalDecisions", decisionHandlers.CreateFinalDecision)
	api.Put("/finalDecisions/:finalDecisionId", decisionHandlers.UpdateFinalDecision)
	api.Delete("/finalDecisions/:finalDecisionId", decisionHandlers.DeleteFinalDecision)

	// Action results
	resultHandlers := &actionresults.Handlers{Service: &actionresults.Service{DB: db}}
	api.Get("/case/:caseId/actionResults", resultHandlers.GetActionResultsByCaseID)
	api.Post("/case/:caseId/actionResults", resultHandlers.CreateActionResult)
	api.Put("/actionResults/:actionResultId", resultHandlers.UpdateActionResult)
	api.Delete("/actionResults/:actionResultId", resultHandlers.DeleteActionResult)

	return app, db, rdb, nil
}

func mailFrom(cfg *config.Config) string {
	if cfg.MailFrom != "" {
		return cfg.MailFrom
	}
	return cfg.EmailUser
}
