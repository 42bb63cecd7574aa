package main

import (
	"github.com/SundayYogurt/thesis_service/config"
	"github.com/SundayYogurt/thesis_service/internal/api"
)

func main() {
	//load configuration
	cfg := config.LoadConfig()

	api.StartServer(cfg)
}
