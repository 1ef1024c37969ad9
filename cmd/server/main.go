package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	httpadapter "worldforge/internal/adapter/http"
	metricsinmem "worldforge/internal/adapter/metrics/inmemory"
	gormrepo "worldforge/internal/adapter/repo/gorm"
	"worldforge/internal/adapter/repo/memory"
	"worldforge/internal/app/advance"
	"worldforge/internal/app/auth"
	"worldforge/internal/app/characters"
	"worldforge/internal/app/generate"
	"worldforge/internal/app/inspect"
	"worldforge/internal/app/ports"
	"worldforge/internal/app/replay"
	"worldforge/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

type repoSet struct {
	Campaigns   ports.CampaignRepository
	Actions     ports.ActionExecutionRepository
	Events      ports.EventRepository
	Credentials ports.OwnerCredentialRepository
	TxManager   ports.TxManager
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	repos := mustBuildRepos(cfg)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		RegisterUC: auth.RegisterUseCase{
			Credentials: repos.Credentials,
			TxManager:   repos.TxManager,
			Now:         time.Now,
		},
		AuthUC: auth.VerifyUseCase{Credentials: repos.Credentials},
		GenerateUC: generate.UseCase{
			TxManager: repos.TxManager,
			Campaigns: repos.Campaigns,
			Events:    repos.Events,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		InspectUC: inspect.UseCase{Campaigns: repos.Campaigns},
		AdvanceUC: advance.UseCase{
			TxManager: repos.TxManager,
			Campaigns: repos.Campaigns,
			Actions:   repos.Actions,
			Events:    repos.Events,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		CharactersUC: characters.UseCase{
			TxManager: repos.TxManager,
			Campaigns: repos.Campaigns,
			Events:    repos.Events,
			Now:       time.Now,
		},
		ReplayUC: replay.UseCase{Events: repos.Events},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	log.Printf("worldforge server listening on %s", cfg.Server.Addr)
	s.Spin()
}

func configPath() string {
	if p := strings.TrimSpace(os.Getenv("WORLDFORGE_CONFIG")); p != "" {
		return p
	}
	return "./config.yaml"
}

// mustBuildRepos wires Postgres-backed repositories when a DSN is
// configured and falls back to the in-memory store for local runs.
func mustBuildRepos(cfg config.Config) repoSet {
	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		log.Println("no database dsn configured, using in-memory store")
		store := memory.NewStore()
		return repoSet{
			Campaigns:   memory.NewCampaignRepo(store),
			Actions:     memory.NewActionExecutionRepo(store),
			Events:      memory.NewEventRepo(store),
			Credentials: memory.NewOwnerCredentialRepo(store),
			TxManager:   memory.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return repoSet{
		Campaigns:   gormrepo.NewCampaignRepo(db),
		Actions:     gormrepo.NewActionExecutionRepo(db),
		Events:      gormrepo.NewEventRepo(db),
		Credentials: gormrepo.NewOwnerCredentialRepo(db),
		TxManager:   gormrepo.NewTxManager(db),
	}
}
