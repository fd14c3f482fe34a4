package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	utils.InitLogger()
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	// Push is optional: without SNS credentials the API still serves,
	// notifications just stay in-app.
	push, err := services.NewPushService(config.DB)
	if err != nil {
		utils.Logger().Warnw("push service disabled", "error", err)
		push = nil
	}

	services.InitEventDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}
