package main

import (
	"os"
	"time"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/database"
)

func main() {
	root := newRootCmd(config.LoadConfig, database.Open, time.Now)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
