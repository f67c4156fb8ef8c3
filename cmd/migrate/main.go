// 일회성 데이터 보수 스크립트: insights 컬렉션의 날짜를 정규형으로 변환하고
// thumbnail/url 키를 채운다. 멱등하므로 실패 시 그대로 재실행하면 된다.
package main

import (
	"context"
	"flag"
	"os"

	"gaon-interior/config"
	"gaon-interior/db"
	"gaon-interior/internal/logger"
	"gaon-interior/migration"
	"gaon-interior/store"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "compute and report the diff without writing")
	flag.Parse()

	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	cfg := config.GetConfig()
	runner := migration.NewRunner(store.NewMongo(db.Client(), db.Database()), cfg.InsightCollection)

	if *dryRun {
		plan, err := runner.Compute(ctx)
		if err != nil {
			logger.Log.Errorf("migration dry-run failed: %v", err)
			os.Exit(1)
		}
		res := plan.Result()
		logger.InfoWithFields("migration dry-run complete (nothing written)", logger.Fields{
			"collection":       cfg.InsightCollection,
			"total_changed":    res.TotalChanged,
			"date_conversions": res.DateConversions,
		})
		return
	}

	res, err := runner.Run(ctx)
	if err != nil {
		logger.Log.Errorf("migration failed: %v", err)
		os.Exit(1)
	}

	logger.InfoWithFields("migration complete", logger.Fields{
		"collection":       cfg.InsightCollection,
		"total_changed":    res.TotalChanged,
		"date_conversions": res.DateConversions,
	})
}
