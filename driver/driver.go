package driver

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

func ConnectDB(dsn string) *sql.DB {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal("Error al abrir la conexión con la base de datos: ", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("No se pudo conectar a la base de datos: ", err)
	}
	return db
}

// Migrate aplica las migraciones pendientes del directorio indicado.
func Migrate(db *sql.DB, dir string) error {
	drv, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "mysql", drv)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
