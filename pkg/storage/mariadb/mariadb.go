package mariadb

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/c14220110/penjadwalan-backend/config"
	_ "github.com/go-sql-driver/mysql"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect membuka koneksi ke database MariaDB untuk roster penjadwalan.
// Semua kredensial diambil dari file .env melalui config.go.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Asia%%2FJakarta",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("Gagal membuka koneksi ke database: %v", err)
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err = db.Ping(); err != nil {
			log.Fatalf("Gagal melakukan ping ke database: %v", err)
		}

		log.Println("Berhasil terhubung ke MariaDB.")
	})

	return db
}

// GetDB mengembalikan instance koneksi database yang sudah terbentuk.
func GetDB() *sql.DB {
	return db
}
