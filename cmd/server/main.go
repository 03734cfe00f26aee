package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"shoopaholic/config"
	"shoopaholic/database"
	"shoopaholic/router"

	// Chat
	chatCtrlImp "shoopaholic/pkg/chat/controllerImp"
	chatSvcImp "shoopaholic/pkg/chat/serviceImp"

	// KB
	kbCtrlImp "shoopaholic/pkg/kb/controllerImp"
	"shoopaholic/pkg/kb/embedder"
	kbSvcImp "shoopaholic/pkg/kb/serviceImp"
	"shoopaholic/pkg/kb/vectorstore/qdrant"

	// Query log
	querylogRepoImp "shoopaholic/pkg/querylog/repositoryImp"

	// Analytics
	analyticsCtrlImp "shoopaholic/pkg/analytics/controllerImp"
	analyticsSvcImp "shoopaholic/pkg/analytics/serviceImp"

	// Extraction
	"shoopaholic/pkg/extract"
	uploadCtrlImp "shoopaholic/pkg/extract/controllerImp"

	// LLM
	"shoopaholic/pkg/ai"

	// Auth + Health
	authCtrlImp "shoopaholic/pkg/auth/controllerImp"
	healthCtrlImp "shoopaholic/pkg/health/controllerImp"
)

func main() {
	// 1) Config (fatal on missing completion key)
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	logRepo := querylogRepoImp.New(db)

	// 3) Vector store + embedder + KB coordinator
	store := qdrant.NewStorage(qdrant.Config{URL: cfg.StoreURL, APIKey: cfg.StoreAPIKey})
	emb := embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	kbSvc := kbSvcImp.New(store, emb, cfg.CollectionBase)

	// 4) Completion client
	openaiClient := ai.NewOpenAI(cfg.KolosalBaseURL, cfg.KolosalAPIKey, cfg.KolosalModel)
	var llm ai.Client = openaiClient
	var stt ai.Transcriber = openaiClient
	if cfg.KolosalMock {
		log.Printf("[ai] KOLOSAL_MOCK set, serving canned answers")
		mock := ai.NewMock()
		llm, stt = mock, mock
	}

	// 5) Services
	chatSvc := chatSvcImp.New(logRepo, kbSvc, llm, cfg.TopK)
	analyticsSvc := analyticsSvcImp.New(logRepo, kbSvc, analyticsSvcImp.Thresholds{
		MinQueries: cfg.RecoMinQueries,
		MinCount:   cfg.RecoMinCount,
	})

	// 6) Extraction registry
	runner := extract.NewRunner()
	registry := extract.NewRegistry(
		extract.NewPlaintext(),
		extract.NewHTML(),
		extract.NewXLSX(),
		extract.NewPDF(runner),
		extract.NewImage(runner),
		extract.NewAudio(stt),
	)

	// 7) Controllers
	chatCtrl := chatCtrlImp.New(chatSvc)
	kbCtrl := kbCtrlImp.New(kbSvc)
	authCtrl := authCtrlImp.New(cfg.AdminUsername, cfg.AdminPassword)
	uploadCtrl := uploadCtrlImp.New(registry, filepath.Join(cfg.StorageDir, "uploads"))
	analyticsCtrl := analyticsCtrlImp.New(analyticsSvc)
	healthCtrl := healthCtrlImp.New(db)

	// 8) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/index.html"); err != nil {
		log.Printf("WARN: static/index.html not found: %v", err)
	}

	r := router.New(e, chatCtrl, kbCtrl, authCtrl, uploadCtrl, analyticsCtrl, healthCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
