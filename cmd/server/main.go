package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palemoky/daifugo/internal/config"
	"github.com/palemoky/daifugo/internal/logger"
	"github.com/palemoky/daifugo/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	shutdownTimeout := flag.Duration("shutdown-timeout", 2*time.Minute, "优雅关闭时等待对局结束的最长时间")
	logToFile := flag.Bool("log-file", false, "将日志写入 ~/.daifugo/debug.log")
	flag.Parse()

	if *logToFile {
		if err := logger.Init(); err != nil {
			log.Printf("日志文件初始化失败: %v", err)
		}
		defer logger.Close()
	}

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// 创建服务器
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("正在关闭服务器...")
		srv.GracefulShutdown(*shutdownTimeout)
		os.Exit(0)
	}()

	// 启动服务器
	log.Println("🎮 大富豪服务器启动中...")
	if err := srv.Start(); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
