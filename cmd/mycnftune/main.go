package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"mycnftune/pkg/cnf"
	"mycnftune/pkg/config"
	"mycnftune/pkg/db"
	logPkg "mycnftune/pkg/log"
	"mycnftune/pkg/notify"
	"mycnftune/pkg/sysinfo"
	"mycnftune/pkg/tuner"
	"mycnftune/pkg/util"

	"go.uber.org/zap"
)

var (
	showVersion = flag.Bool("version", false, "Print version information.")
	configPath  = flag.String("config", "/etc/mycnftune.cnf", "Configuration file path of mycnftune.")
	dryRun      = flag.Bool("dry-run", false, "Compute and report parameters without touching the target file.")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(util.Version)
		return
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Initialize config package failed: ", err)
	}

	err = logPkg.Init(cfg)
	if err != nil {
		log.Fatal("Initialize log package failed: ", err)
	}
	defer logPkg.Sync()

	res, err := sysinfo.Detect()
	if err != nil {
		logPkg.Logger().Fatal("detecting host resources failed", zap.NamedError("error", err))
	}

	rec, err := tuner.Compute(res, cfg.Ratios)
	if err != nil {
		logPkg.Logger().Fatal("computing tuned parameters failed", zap.NamedError("error", err))
	}

	tuner.Report(os.Stdout, res, rec)

	if *dryRun {
		return
	}

	changed, err := cnf.Apply(cfg.TargetPath, cfg.Section, rec.Parameters)
	if err != nil {
		logPkg.Logger().Fatal("applying parameters failed",
			zap.String("path", cfg.TargetPath), zap.NamedError("error", err))
	}

	if cfg.ApplyRuntime && cfg.HasDBCredentials() {
		applyRuntime(cfg, rec)
	}

	if len(changed) > 0 {
		notify.NewService(cfg).Notify(notify.Message{
			Subject: "MySQL configuration updated, restart required",
			Content: fmt.Sprintf("%s changed keys: %s", cfg.TargetPath, strings.Join(changed, ", ")),
			Time:    time.Now(),
		})
	}

	fmt.Printf("Updated %s (%d keys changed). Restart or reload the MySQL/MariaDB service to apply.\n",
		cfg.TargetPath, len(changed))
}

// applyRuntime pushes dynamic variables to the running server,
// failures here never fail the run since the file is already
// patched
func applyRuntime(cfg *config.Config, rec *tuner.Recommendation) {
	err := db.Init(cfg.ToDBConfig())
	if err != nil {
		logPkg.Logger().Error("connecting to server failed, runtime apply skipped", zap.NamedError("error", err))
		return
	}
	defer db.Close()

	err = db.ApplyRuntime(rec, cfg.Ratios)
	if err != nil {
		logPkg.Logger().Error("applying runtime variables failed", zap.NamedError("error", err))
	}
}
