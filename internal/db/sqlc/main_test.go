package db

import (
	"database/sql"
	"log"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/talentbridge/go-talent-match/internal/config"
)

var testQueries *Queries
var testStore Store
var testDB *sql.DB

func TestMain(m *testing.M) {
	var err error

	cfg, err := config.LoadConfig("../../../.")
	if err != nil {
		log.Fatal("cannot load env file: ", err)
	}

	testDB, err = sql.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db: ", err)
	}

	testStore = NewStore(testDB)
	testQueries = New(testDB)

	os.Exit(m.Run())
}
