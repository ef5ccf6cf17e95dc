package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/classifier"
	"resume-builder/internal/classify"
	"resume-builder/internal/documents"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/generate"
	"resume-builder/resume/render"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Classifier       *classifier.Classifier
	Store            object.ObjectStore
	DocumentsRepo    documents.DocumentsRepo
	ClassifyService  *classify.Service
	DocumentsService *documents.Service
	ClassifyHandler  *classify.Handler
	DocumentsHandler *documents.Handler
}

// Build loads the model and wires services and routes. A model that fails to
// load is logged; classification then answers model_not_loaded.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	engine, err := render.ParsePDFEngine(cfg.PDFEngine)
	if err != nil {
		return nil, fmt.Errorf("PDF_ENGINE: %w", err)
	}

	app := &App{
		Config:     cfg,
		Classifier: loadClassifier(cfg.ModelPath),
		Store:      buildStore(cfg),
	}
	buildServices(app, engine)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ClassifyHandler: app.ClassifyHandler,
		DocumentHandler: app.DocumentsHandler,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

func loadClassifier(path string) *classifier.Classifier {
	if strings.TrimSpace(path) == "" {
		telemetry.Warn("model.not_configured", nil)
		return nil
	}
	c, err := classifier.Load(path)
	if err != nil {
		telemetry.Error("model.load_failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}
	telemetry.Info("model.loaded", map[string]any{
		"path":   path,
		"labels": len(c.Labels()),
	})
	return c
}

func buildStore(cfg config.Config) object.ObjectStore {
	if strings.TrimSpace(cfg.ExportDir) == "" {
		return nil
	}
	return localstore.New(cfg.ExportDir)
}

func buildServices(app *App, engine render.PDFEngine) {
	cfg := app.Config

	// A nil *Classifier must not become a non-nil interface.
	var predictor classify.Predictor
	if app.Classifier != nil {
		predictor = app.Classifier
	}
	app.ClassifyService = classify.NewService(predictor)

	app.DocumentsRepo = documents.NewMemoryRepo(cfg.SessionMaxDocuments, cfg.MaxSessions)
	app.DocumentsService = &documents.Service{
		Classifier: app.ClassifyService,
		Generator: generate.New(generate.RankWeights{
			JobOverlap: cfg.RankJobOverlapWeight,
			Category:   cfg.RankCategoryWeight,
		}, cfg.MaxSkills),
		Exporter: render.NewExporter(render.Options{
			PDFEngine:     engine,
			ChromePath:    cfg.ChromePath,
			ChromeTimeout: 60 * time.Second,
		}),
		Repo:  app.DocumentsRepo,
		Store: app.Store,
	}

	app.ClassifyHandler = classify.NewHandler(app.ClassifyService)
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
}
