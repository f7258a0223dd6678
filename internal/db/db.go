// Package db opens the Postgres-backed Ent client.
package db

import (
	"database/sql"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx as the database/sql driver

	"previplan/ent"
	"previplan/internal/config"
	"previplan/internal/logx"
)

var dbLogger = logx.GetScope("db")

// pool keeps the raw *sql.DB around so pool limits can be retuned when
// the dynamic config changes.
var pool *sql.DB

// Open connects to Postgres through pgx and wraps it in an Ent client.
func Open(cfg *config.Config) (*ent.Client, func(), error) {
	sqldb, err := sql.Open("pgx", cfg.PG.URL)
	if err != nil {
		return nil, func() {}, err
	}
	sqldb.SetMaxOpenConns(cfg.PG.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.PG.MaxIdleConns)
	pool = sqldb

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, sqldb)))
	closer := func() {
		pool = nil
		if err := client.Close(); err != nil {
			dbLogger.Sugar().Errorf("close ent client: %v", err)
		}
	}
	return client, closer, nil
}

// UpdatePool retunes the connection pool at runtime. Zero or negative
// maxOpen and negative maxIdle leave the current setting alone.
func UpdatePool(maxOpen, maxIdle int) {
	if pool == nil {
		return
	}
	if maxOpen > 0 {
		pool.SetMaxOpenConns(maxOpen)
	}
	if maxIdle >= 0 {
		pool.SetMaxIdleConns(maxIdle)
	}
}
