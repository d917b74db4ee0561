package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/exporter"
	"github.com/JoeShih716/go-mem-bank/pkg/mysql"
	"github.com/JoeShih716/go-mem-bank/pkg/wal"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type Config struct {
	MySQL mysql.Config `yaml:"mysql"`
	Bank  BankConfig   `yaml:"bank"`
}

type BankConfig struct {
	// Owner 銀行擁有者的身份字串，所有指令都以這個身份下達
	Owner string `yaml:"owner"`
	// Engine 核心引擎: "mutex" 或 "serial"
	Engine string `yaml:"engine"`
	// WALPath WAL 檔案路徑
	WALPath string `yaml:"wal_path"`
	// ListenAddr gRPC 監聽地址
	ListenAddr string `yaml:"listen_addr"`
	// MetricsAddr Prometheus /metrics 監聽地址
	MetricsAddr string `yaml:"metrics_addr"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化 MySQL Client (Base Infrastructure)
	dbClient, err := mysql.NewClient(cfg.MySQL)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer dbClient.Close()
	log.Println("Connected to MySQL successfully")

	// 3. 載入快照，還原 Bank 狀態
	snapshotStore := mysql_adapter.NewSnapshotStore(dbClient)
	if err := snapshotStore.Migrate(); err != nil {
		log.Fatalf("Failed to migrate snapshot tables: %v", err)
	}

	owner := domain.AddressOf(cfg.Bank.Owner)
	snap, found, err := snapshotStore.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	var bank *domain.Bank
	var lastSequence uint64
	if found {
		bank, err = domain.RestoreBank(snap)
		if err != nil {
			log.Fatalf("Failed to restore bank from snapshot: %v", err)
		}
		lastSequence = snap.LastSequence
		log.Printf("Restored bank from snapshot (last sequence %d)", lastSequence)
	} else {
		bank = domain.NewBank(owner)
		log.Println("No snapshot found, starting with an empty bank")
	}

	// 4. 初始化 WAL (快照之後的指令從這裡重放)
	walFile, err := wal.NewWAL(cfg.Bank.WALPath)
	if err != nil {
		log.Fatalf("Failed to init WAL: %v", err)
	}
	defer walFile.Close()

	// 5. 選擇核心引擎
	var engine usecase.Bank
	switch cfg.Bank.Engine {
	case "mutex":
		mutexBank, err := memory_adapter.NewMutexBank(bank, lastSequence, walFile)
		if err != nil {
			log.Fatalf("Failed to init MutexBank: %v", err)
		}
		engine = mutexBank
	case "serial":
		serialBank, err := memory_adapter.NewSerialBank(bank, lastSequence, walFile)
		if err != nil {
			log.Fatalf("Failed to init SerialBank: %v", err)
		}
		serialBank.Start(context.Background())
		engine = serialBank
	default:
		log.Fatalf("Invalid engine type: %q", cfg.Bank.Engine)
	}

	// 6. 初始化 UseCase
	bankUseCase := usecase.NewBankUseCase(engine)

	// 7. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(bankUseCase, owner)

	// 8. 啟動 Prometheus Exporter
	exporter.Init()
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		log.Printf("Starting metrics server on %s", cfg.Bank.MetricsAddr)
		if err := http.ListenAndServe(cfg.Bank.MetricsAddr, nil); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	// 9. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Bank.ListenAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	pb.RegisterBankServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		log.Printf("Starting gRPC server on %s", cfg.Bank.ListenAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	s.GracefulStop()

	// 10. 關機前把完整狀態寫回快照，下次開機 WAL 只需重放快照之後的部分
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	finalSnap, err := engine.Snapshot(shutdownCtx)
	if err != nil {
		log.Printf("Failed to export snapshot: %v", err)
	} else if err := snapshotStore.Save(shutdownCtx, finalSnap); err != nil {
		log.Printf("Failed to save snapshot: %v", err)
	} else {
		log.Printf("Snapshot saved (last sequence %d)", finalSnap.LastSequence)
	}

	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Bank.Owner == "" {
		cfg.Bank.Owner = "bank-operator"
	}
	if cfg.Bank.Engine == "" {
		cfg.Bank.Engine = "mutex"
	}
	if cfg.Bank.WALPath == "" {
		cfg.Bank.WALPath = "wal.log"
	}
	if cfg.Bank.ListenAddr == "" {
		cfg.Bank.ListenAddr = ":50051"
	}
	if cfg.Bank.MetricsAddr == "" {
		cfg.Bank.MetricsAddr = ":9100"
	}
	return cfg
}
