// @title         Candiqo API
// @version       0.2.0
// @description   Structured field extraction from résumé experience blocks

package main

import (
	"context"
	"time"

	"candiqo/internal/core/extract"
	"candiqo/internal/nlp/spacy"
	"candiqo/internal/platform/config"
	"candiqo/internal/platform/logger"
	phttp "candiqo/internal/platform/net/http"

	"candiqo/internal/services/api"
	xpsvc "candiqo/internal/services/api/xp/service"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	nlpCfg := root.Prefix("NLP_") // tagger sidecar lives under NLP_*
	xpCfg := root.Prefix("XP_")   // extraction tuning lives under XP_*

	// bring up logging early
	l := logger.Get()

	// the tagger is constructed once and shared read-only by all requests
	tagger := spacy.New(spacy.Options{
		BaseURL: nlpCfg.MayString("BASE_URL", "http://localhost:8090"),
		Model:   nlpCfg.MayString("MODEL", "fr_core_news_md"),
		Timeout: nlpCfg.MayDuration("TIMEOUT", 10*time.Second),
	})

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := tagger.Ping(ctx); err != nil {
			l.Warn().Err(err).Str("base_url", nlpCfg.MayString("BASE_URL", "http://localhost:8090")).
				Msg("tagger sidecar not reachable yet, requests will fail until it is")
		}
		cancel()
	}

	score := extract.DefaultScoreConfig()
	score.DateWeight = xpCfg.MayFloat64("SCORE_DATE", score.DateWeight)
	score.TitleWeight = xpCfg.MayFloat64("SCORE_TITLE", score.TitleWeight)
	score.CompanyWeight = xpCfg.MayFloat64("SCORE_COMPANY", score.CompanyWeight)
	score.WeakTitleLen = xpCfg.MayInt("WEAK_TITLE_LEN", score.WeakTitleLen)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Tagger:         tagger,
			TaggerLoadedAt: tagger.LoadedAt(),
			XP: xpsvc.Options{
				MaxChars:     nlpCfg.MayInt("MAX_CHARS", 120000),
				Score:        score,
				DebugDefault: xpCfg.MayBool("DEBUG", false),
			},
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
