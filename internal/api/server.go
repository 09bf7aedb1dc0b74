package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fchanaud/tennis-camp-api/docs"
	v1 "github.com/fchanaud/tennis-camp-api/internal/api/handler/v1"
	"github.com/fchanaud/tennis-camp-api/internal/api/middleware"
	"github.com/fchanaud/tennis-camp-api/internal/config"
	"github.com/fchanaud/tennis-camp-api/internal/pkg/stripepay"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
	"github.com/fchanaud/tennis-camp-api/internal/repository/dao"
	"github.com/fchanaud/tennis-camp-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	campHandler := s.initCampHandler(db)
	registrationHandler := s.initRegistrationHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	adminHandler := s.initAdminHandler(db)
	feedbackHandler := s.initFeedbackHandler(db)
	s.MountHandlers(authHandler, userHandler, campHandler, registrationHandler, paymentHandler, adminHandler, feedbackHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API.JWTSigningKey, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initCampHandler(db *gorm.DB) *v1.CampHandler {
	repo := repository.NewCampRepository(dao.NewCampDAO(db))
	svc := service.NewCampService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewCampHandler(svc, uSvc)

	return handler
}

func (s *Server) initRegistrationHandler(db *gorm.DB) *v1.RegistrationHandler {
	repo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	campRepo := repository.NewCampRepository(dao.NewCampDAO(db))
	svc := service.NewRegistrationService(repo, campRepo)
	handler := v1.NewRegistrationHandler(svc, s.Config.API.WaitlistURL)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	payments := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	registrations := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	provider := stripepay.New(s.Config.Stripe)
	svc := service.NewPaymentService(payments, registrations, provider, s.Config.Stripe)
	handler := v1.NewPaymentHandler(svc, provider)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	payments := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	registrations := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	provider := stripepay.New(s.Config.Stripe)
	svc := service.NewPaymentService(payments, registrations, provider, s.Config.Stripe)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewAdminHandler(svc, uSvc)

	return handler
}

func (s *Server) initFeedbackHandler(db *gorm.DB) *v1.FeedbackHandler {
	repo := repository.NewFeedbackRepository(dao.NewFeedbackDAO(db))
	campRepo := repository.NewCampRepository(dao.NewCampDAO(db))
	svc := service.NewFeedbackService(repo, campRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewFeedbackHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	campHandler *v1.CampHandler,
	registrationHandler *v1.RegistrationHandler,
	paymentHandler *v1.PaymentHandler,
	adminHandler *v1.AdminHandler,
	feedbackHandler *v1.FeedbackHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/camps", campHandler.HandleGetCamps)
		public.GET("/camps/:campID", campHandler.HandleGetCamp)
		public.GET("/camps/:campID/availability", campHandler.HandleCheckAvailability)

		public.POST("/camps/:campID/registrations", registrationHandler.HandleCreateRegistration)
		public.GET("/camps/:campID/registrations/:registrationID", registrationHandler.HandleGetRegistration)
		public.PATCH("/camps/:campID/registrations/:registrationID", registrationHandler.HandleUpdateRegistration)

		public.POST("/camps/:campID/registrations/:registrationID/payments", paymentHandler.HandleCreatePayment)
		public.POST("/payments/webhook", paymentHandler.HandleWebhook)
		public.POST("/payments/verify-session", paymentHandler.HandleVerifySession)
		public.PUT("/payments/:sessionID/status", paymentHandler.HandleSyncPaymentStatus)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.GET("/users/me", userHandler.HandleGetMe)

		protected.POST("/camps/:campID/feedback", feedbackHandler.HandleSubmitFeedback)
		protected.GET("/camps/:campID/feedback", feedbackHandler.HandleGetCampFeedback)

		protected.POST("/admin/camps", campHandler.HandleCreateCamp)
		protected.POST("/admin/registrations/:registrationID/confirm-payment", adminHandler.HandleConfirmManualPayment)
		protected.POST("/admin/registrations/:registrationID/cancel", adminHandler.HandleCancelRegistration)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Tennis Camp API"
	docs.SwaggerInfo.Description = "Registration and payment API for tennis camps."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
