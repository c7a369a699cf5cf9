package main

import (
	"database/sql"
	"errors"
	"flag"
	"os"

	"github.com/Domenick1991/goglobe/config"
	"github.com/Domenick1991/goglobe/internal/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

func main() {
	steps := flag.Int("steps", 0, "number of migrations to roll back with down (0 means all)")
	flag.Parse()

	direction := "up"
	if flag.NArg() > 0 {
		direction = flag.Arg(0)
	}

	config.LoadEnvFiles(".env")
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.SetupLogger(cfg.Log.Level)

	db, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	defer db.Close()

	driver, err := pgx.WithInstance(db, &pgx.Config{})
	if err != nil {
		logrus.Fatalf("create pgx driver: %v", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Database.MigrationsDir, "pgx", driver)
	if err != nil {
		logrus.Fatalf("create migrate instance: %v", err)
	}

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	default:
		logrus.Fatalf("unknown direction %q, expected up or down", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logrus.Fatalf("migrate %s: %v", direction, err)
	}

	version, dirty, _ := m.Version()
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Infof("migrations %s applied", direction)
}
