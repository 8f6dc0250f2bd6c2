package setup

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/odpf/digits/config"
	"github.com/odpf/digits/internal/store/postgres"
)

var (
	digitsDB   *gorm.DB
	initDBOnce sync.Once
)

func TestDB() *gorm.DB {
	initDBOnce.Do(migrateDB)

	return digitsDB
}

func mustReadDBConfig() string {
	dbURL, ok := os.LookupEnv("TEST_DIGITS_DB_URL")
	if ok {
		return dbURL
	}

	// Did not find a suitable way to read db config
	panic("unable to find config for digits test db")
}

// migrateDB drops the tables and runs every migration on the test database
func migrateDB() {
	dbURL := mustReadDBConfig()

	dbConf := config.DBConfig{
		DSN:               dbURL,
		MaxIdleConnection: 1,
		MaxOpenConnection: 2,
	}
	dbConn, err := postgres.Connect(dbConf, os.Stdout)
	if err != nil {
		panic(err)
	}
	if err := dropTables(dbConn); err != nil {
		panic(err)
	}
	if err := postgres.Migrate(dbURL); err != nil {
		panic(err)
	}

	digitsDB = dbConn
}

func dropTables(db *gorm.DB) error {
	tablesToDelete := []string{
		"dataset_job",
		"schema_migrations",
	}
	var errMsgs []string
	for _, table := range tablesToDelete {
		if err := db.Exec(fmt.Sprintf("drop table if exists %s", table)).Error; err != nil {
			toleratedErrMsg := fmt.Sprintf("table \"%s\" does not exist", table)
			if !strings.Contains(err.Error(), toleratedErrMsg) {
				errMsgs = append(errMsgs, err.Error())
			}
		}
	}
	if len(errMsgs) > 0 {
		return fmt.Errorf("error encountered when dropping tables: %s", strings.Join(errMsgs, ","))
	}
	return nil
}

func TruncateTables(db *gorm.DB) {
	db.Exec("TRUNCATE TABLE dataset_job CASCADE")
}
