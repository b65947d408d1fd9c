package main

import (
	"context"
	"log"

	"travelbuddy/config"
	"travelbuddy/router"
	"travelbuddy/services"
)

func main() {
	config.InitConfig()

	if err := services.InitGemini(); err != nil {
		log.Fatalf("Failed to init Gemini: %v", err)
	}

	services.InitVectorStore(config.AppConfig.Data.IndexPath)

	ctx := context.Background()

	// 启动时加载数据目录，然后持续监听新文件
	services.LoadDataDir(ctx, config.AppConfig.Data.Dir)
	if err := services.WatchDataDir(ctx, config.AppConfig.Data.Dir); err != nil {
		log.Printf("data dir watcher disabled: %v", err)
	}

	if err := services.StartIngestWorker(ctx); err != nil {
		log.Fatalf("Failed to start ingest worker: %v", err)
	}

	r := router.SetupRouter()

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8000"
	}

	log.Println("Travel Buddy API listening on", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
