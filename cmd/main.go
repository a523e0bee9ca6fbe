package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/idrealestat/aqariai-crm/internal/app"
	"github.com/idrealestat/aqariai-crm/internal/config"
	"github.com/idrealestat/aqariai-crm/internal/controllers"
	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/middleware"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/repositories/memory"
	"github.com/idrealestat/aqariai-crm/internal/routes"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Logger.Fatal("Failed to load config: ", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize crm-service: ", err)
	}
	defer application.Close()

	var (
		customerRepo     repositories.CustomerRepository
		listingRepo      repositories.ListingRepository
		notificationRepo repositories.NotificationRepository
		archiveRepo      repositories.OfferArchiveRepository
	)
	if cfg.StorageDriver == "memory" {
		customerRepo = memory.NewCustomerRepository()
		listingRepo = memory.NewListingRepository()
		notificationRepo = memory.NewNotificationRepository()
		archiveRepo = memory.NewOfferArchiveRepository()
	} else {
		customerRepo = repositories.NewCustomerRepository(application.DB)
		listingRepo = repositories.NewListingRepository(application.DB)
		notificationRepo = repositories.NewNotificationRepository(application.DB)
		archiveRepo = repositories.NewOfferArchiveRepository(application.DB)
	}

	broadcaster := events.NewBroadcaster()

	notificationService := services.NewNotificationService(notificationRepo, broadcaster)
	customerService := services.NewCustomerService(customerRepo, broadcaster)
	listingService := services.NewListingService(listingRepo, archiveRepo)
	publicationService := services.NewPublicationService(
		customerRepo, listingRepo, archiveRepo, notificationService, broadcaster,
	)
	financeService := services.NewFinanceService(cfg.BankRatesURL)
	kanbanService := services.NewKanbanService(customerRepo)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(
			context.Background(),
			customerRepo, listingRepo, notificationRepo, archiveRepo,
		); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	healthCtrl := controllers.NewHealthController(application)
	customerCtrl := controllers.NewCustomerController(customerService)
	listingCtrl := controllers.NewListingController(listingService)
	publicationCtrl := controllers.NewPublicationController(publicationService)
	notificationCtrl := controllers.NewNotificationController(notificationService)
	financeCtrl := controllers.NewFinanceController(financeService)
	kanbanCtrl := controllers.NewKanbanController(kanbanService)
	eventsCtrl := controllers.NewEventsController(broadcaster)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	if !cfg.AuthDisabled {
		secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey()))
	}

	secured.HandleFunc(routes.Customers, customerCtrl.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Customers, customerCtrl.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.CustomersSearch, customerCtrl.SearchHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.CustomerByID, customerCtrl.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.CustomerByID, customerCtrl.UpdateHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.CustomerByID, customerCtrl.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.ListingsOffers, listingCtrl.ListOffersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ListingsRequests, listingCtrl.ListRequestsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ListingByID, listingCtrl.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ListingByID, listingCtrl.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.ListingStatus, listingCtrl.UpdateStatusHandler).Methods(http.MethodPatch, http.MethodPut)

	secured.HandleFunc(routes.PublishAccepted, publicationCtrl.PublishAcceptedHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.OwnerArchive, listingCtrl.ArchiveFullHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.OwnerArchive, listingCtrl.ListArchiveHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.Notifications, notificationCtrl.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Notifications, notificationCtrl.DeleteAllHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.NotificationsUnread, notificationCtrl.UnreadCountHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NotificationsReadAll, notificationCtrl.MarkAllReadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.NotificationRead, notificationCtrl.MarkReadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.NotificationRoute, notificationCtrl.RouteHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NotificationByID, notificationCtrl.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.FinanceEvaluate, financeCtrl.EvaluateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.FinanceRates, financeCtrl.RatesHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.PipelineCustomers, kanbanCtrl.CustomerProjectionHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PipelineBoard, kanbanCtrl.BoardHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PipelineLeads, kanbanCtrl.AddLeadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PipelineMove, kanbanCtrl.MoveLeadHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.EventsStream, eventsCtrl.StreamHandler).Methods(http.MethodGet)

	// Warm the rates cache, then keep it fresh.
	financeService.RefreshRates(context.Background())
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		financeService.RefreshRates(context.Background())
	}); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule bank-rate refresh cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("crm-service failed to start: ", err)
	}
}
