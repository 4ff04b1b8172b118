package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	constant "liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func allModels() []any {
	return []any{
		&models.User{},
		&models.Token{},
		&models.Organization{},
		&models.OrganizationUser{},
		&models.Repo{},
		&models.Model{},
		&models.Monitor{},
	}
}

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		if err := instance.Conn.AutoMigrate(allModels()...); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if dialector.Name() != "sqlite" {
			return
		}

		if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatal("Failed to enable sqlite foreign key support", err)
		}

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyMonitorDbPath); !found {
		dbPath = "monitors.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

// UsePostgresDialector reads the DSN from MONITOR_DATABASE_URL.
func UsePostgresDialector() gorm.Dialector {
	return postgres.Open(os.Getenv(constant.EnvKeyMonitorDatabaseURL))
}

// Dialector maps a MONITOR_DB_TYPE value to its dialector.
func Dialector(dbType string) (gorm.Dialector, bool) {
	switch dbType {
	case "file":
		return UseSqliteDialector(), true
	case "memory":
		return UseMemorySqliteDialector(), true
	case "postgres":
		return UsePostgresDialector(), true
	}
	return nil, false
}
