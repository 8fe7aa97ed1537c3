package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/api"
	"schedsim/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()

	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/schedule/render", handler.RenderSchedule)
		v1.Get("/algorithms", handler.Algorithms)
		v1.Get("/metrics", handler.Metrics)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
