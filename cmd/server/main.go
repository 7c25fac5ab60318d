package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"collegefaq/config"
	"collegefaq/database"
	"collegefaq/router"

	authCtrlImp "collegefaq/pkg/auth/controllerImp"
	authRepoImp "collegefaq/pkg/auth/repositoryImp"
	authSvcImp "collegefaq/pkg/auth/serviceImp"
	"collegefaq/pkg/auth/token"

	"collegefaq/pkg/kb/embedder"
	"collegefaq/pkg/kb/index"
	"collegefaq/pkg/kb/retriever"

	"collegefaq/pkg/ai"
	"collegefaq/pkg/mail"

	chatCtrlImp "collegefaq/pkg/chat/controllerImp"
	chatRepoImp "collegefaq/pkg/chat/repositoryImp"
	chatSvcImp "collegefaq/pkg/chat/serviceImp"

	healthCtrlImp "collegefaq/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Vector index — must already be ingested; die early otherwise
	ix, err := index.OpenExisting(cfg.ChromaDir)
	if err != nil {
		log.Fatalf("%v (run cmd/ingest to build it)", err)
	}
	if stamp := ix.ModelStamp(); stamp != "" && stamp != cfg.EmbModel {
		// mismatched models degrade retrieval silently, so at least say so
		log.Printf("WARN: index was built with embedding model %q but EMB_MODEL is %q", stamp, cfg.EmbModel)
	}
	log.Printf("[index] %s loaded with %d chunks", cfg.ChromaDir, ix.Count())

	// 4) External clients
	emb := embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	var llm ai.Client
	if cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTemp)
	} else {
		log.Printf("WARN: LLM_API_KEY not set, using mock generator")
		llm = ai.NewMock()
	}
	var mailer mail.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		mailer = mail.NewLog()
	}

	// 5) Auth wiring
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLh)*time.Hour)
	authRepo := authRepoImp.New(db)
	authSvc := authSvcImp.New(authRepo, tokens, mailer)
	authCtrl := authCtrlImp.New(authSvc)

	// 6) Chat wiring
	retr := retriever.New(emb, ix)
	chatRepo := chatRepoImp.New(db)
	chatSvc := chatSvcImp.New(retr, llm, chatRepo, cfg.TopK)
	chatCtrl := chatCtrlImp.New(chatSvc)

	// 7) Health
	hCtrl := healthCtrlImp.NewHealthCtrl(db, ix)

	// 8) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORS())
	r := router.New(e, tokens, authCtrl, chatCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
