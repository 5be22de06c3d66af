package routes

import (
    "github.com/ibrahim-qi/macro-logger-app/controllers"
    "github.com/ibrahim-qi/macro-logger-app/middlewares"

    "github.com/gin-gonic/gin"
)

type Controllers struct {
    Auth      *controllers.AuthController
    Entries   *controllers.EntryController
    SavedFood *controllers.SavedFoodController
    Goals     *controllers.GoalController
    Summary   *controllers.SummaryController
    Realtime  *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", ctl.Auth.Register)
        auth.POST("/login", ctl.Auth.Login)
    }

    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/entries", ctl.Entries.List)
        api.POST("/entries", ctl.Entries.Create)
        api.PATCH("/entries/:id", ctl.Entries.Update)
        api.DELETE("/entries/:id", ctl.Entries.Delete)

        api.GET("/saved-foods", ctl.SavedFood.List)
        api.POST("/saved-foods", ctl.SavedFood.Create)
        api.PATCH("/saved-foods/:id", ctl.SavedFood.Update)
        api.DELETE("/saved-foods/:id", ctl.SavedFood.Delete)

        api.GET("/goals", ctl.Goals.Get)
        api.PUT("/goals", ctl.Goals.Put)

        api.GET("/summary/weekly", ctl.Summary.Weekly)
        api.GET("/summary/monthly", ctl.Summary.Monthly)

        api.GET("/ws", ctl.Realtime.EntriesWS)
    }

    return r
}
