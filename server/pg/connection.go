package pg

import (
	"database/sql"
	"time"

	"relview/logger"

	_ "github.com/jackc/pgx/v4/stdlib" // needed for proper driver work
)

const reconnectDelay = 5 * time.Second

func getDBConnection(dbInfo string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbInfo)
	if err != nil {
		logger.Error("%s", err)
		logger.Error("Could not connect to Postgres.")
		return nil, err
	}
	db.SetConnMaxLifetime(0)
	db.SetMaxIdleConns(50)
	db.SetMaxOpenConns(50)
	return db, nil
}

//Connect opens the database and waits until it answers, trying at most attempts times.
func Connect(dbInfo string, attempts int) (*sql.DB, error) {
	db, err := getDBConnection(dbInfo)
	if err != nil {
		return nil, err
	}
	for attempt := 1; ; attempt++ {
		if err = db.Ping(); err == nil {
			return db, nil
		}
		if attempt >= attempts {
			db.Close()
			return nil, err
		}
		logger.Warn("Connection to Postgres failed: %s. Waiting for %s...", err, reconnectDelay)
		time.Sleep(reconnectDelay)
	}
}
