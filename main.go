// @title CampusHub 后端 API
// @version 1.0
// @description 校园学业管理应用的后端服务器。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"campus_hub_backend/internal/app"
	"campus_hub_backend/internal/config"
	"campus_hub_backend/pkg/configwatcher"
	"campus_hub_backend/pkg/logger"
)

func main() {
	// 命令行参数
	watch := flag.Bool("watch-config", false, "监听配置文件变化并热更新")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)
	}

	application.Run()
}
