package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"network-ping/internal/database"
	"network-ping/internal/report"
)

func main() {
	var (
		dbPath = flag.String("db", "network-ping.db", "Outcome journal database path")
		outDir = flag.String("out", "reports", "Output directory")
		hours  = flag.Int("hours", 24, "Report period in hours")
	)
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pingreport:", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.New(*dbPath)
	if err != nil {
		log.Fatal("failed to open journal", zap.Error(err))
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatal("failed to initialize journal schema", zap.Error(err))
	}

	dir, err := report.NewGenerator(db, log).GenerateReport(*outDir, *hours)
	if err != nil {
		log.Fatal("report generation failed", zap.Error(err))
	}

	fmt.Println(dir)
}
