package main

import (
	"log"

	"github.com/c14220110/penjadwalan-backend/config"
	manajemenControllers "github.com/c14220110/penjadwalan-backend/internal/manajemen/controllers"
	manajemenRoutes "github.com/c14220110/penjadwalan-backend/internal/manajemen/routes"
	manajemenServices "github.com/c14220110/penjadwalan-backend/internal/manajemen/services"
	penjadwalanControllers "github.com/c14220110/penjadwalan-backend/internal/penjadwalan/controllers"
	penjadwalanRoutes "github.com/c14220110/penjadwalan-backend/internal/penjadwalan/routes"
	penjadwalanServices "github.com/c14220110/penjadwalan-backend/internal/penjadwalan/services"
	"github.com/c14220110/penjadwalan-backend/pkg/storage/mariadb"
	"github.com/c14220110/penjadwalan-backend/ws"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	// Inisialisasi service untuk login manajemen
	managementService := manajemenServices.NewManagementService(db)
	managementController := manajemenControllers.NewManagementController(managementService)

	// Inisialisasi store preferensi dan muat roster dari database
	prefService := penjadwalanServices.NewPreferensiService()
	rosterService := penjadwalanServices.NewRosterService(db)
	if err := rosterService.MuatRoster(prefService); err != nil {
		log.Fatalf("Gagal memuat roster dari database: %v", err)
	}
	log.Printf("Roster dimuat: %d karyawan terdaftar.", prefService.JumlahKaryawan())

	penjadwalanController := penjadwalanControllers.NewPenjadwalanController(
		prefService, rosterService, ws.HubInstance)

	e := echo.New()
	e.HideBanner = true

	manajemenRoutes.RegisterManagementRoutes(e, managementController)
	penjadwalanRoutes.RegisterPenjadwalanRoutes(e, penjadwalanController)
	e.GET("/ws/jadwal", ws.ServeWS(ws.HubInstance))

	log.Printf("Server penjadwalan berjalan pada port %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
