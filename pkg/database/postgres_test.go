package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     "5433",
		User:     "dlvery",
		Password: "hunter2",
		DBName:   "fulfillment",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=dlvery password=hunter2 dbname=fulfillment sslmode=require",
		cfg.DSN(),
	)
}

func TestPostgresDriverRegistered(t *testing.T) {
	// NewPostgresConnection opens through the lib/pq driver; the blank
	// import must have registered it.
	db, err := sql.Open("postgres", Config{SSLMode: "disable"}.DSN())
	require.NoError(t, err)
	db.Close()
}
