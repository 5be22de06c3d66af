package main

import (
    "log"

    "github.com/ibrahim-qi/macro-logger-app/config"
    "github.com/ibrahim-qi/macro-logger-app/controllers"
    "github.com/ibrahim-qi/macro-logger-app/routes"
    "github.com/ibrahim-qi/macro-logger-app/services"

    "go.uber.org/zap"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("config: %v", err)
    }

    logger, err := config.NewLogger()
    if err != nil {
        log.Fatalf("logger: %v", err)
    }
    defer logger.Sync()

    db, err := config.ConnectDB(cfg)
    if err != nil {
        logger.Fatal("database", zap.Error(err))
    }

    hub := services.NewRealtimeHub(logger.Named("realtime"))

    ctl := routes.Controllers{
        Auth:      controllers.NewAuthController(services.NewAuthService(db)),
        Entries:   controllers.NewEntryController(services.NewEntryService(db, hub, logger.Named("entries"))),
        SavedFood: controllers.NewSavedFoodController(services.NewSavedFoodService(db)),
        Goals:     controllers.NewGoalController(services.NewGoalService(db)),
        Summary:   controllers.NewSummaryController(services.NewSummaryService(db)),
        Realtime:  controllers.NewRealtimeController(hub),
    }

    r := routes.SetupRouter(ctl)
    logger.Info("listening", zap.String("addr", cfg.ListenAddr))
    if err := r.Run(cfg.ListenAddr); err != nil {
        logger.Fatal("server", zap.Error(err))
    }
}
