package routes

import (
	"github.com/c14220110/penjadwalan-backend/internal/common/middlewares"
	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/controllers"
	"github.com/labstack/echo/v4"
)

// RegisterPenjadwalanRoutes mendaftarkan seluruh endpoint penjadwalan.
// Endpoint yang mengubah roster atau memicu penjadwalan dilindungi JWT
// manajemen; endpoint baca dibiarkan terbuka untuk client tampilan.
func RegisterPenjadwalanRoutes(e *echo.Echo, pc *controllers.PenjadwalanController) {
	g := e.Group("/api/penjadwalan")

	g.GET("/karyawan", pc.GetKaryawanListHandler)
	g.GET("/jadwal", pc.GetJadwalHandler)
	g.GET("/ringkasan", pc.GetRingkasanHandler)

	g.POST("/karyawan", pc.AddKaryawanHandler, middlewares.JWTMiddlewareManagement)
	g.POST("/generate", pc.GenerateJadwalHandler, middlewares.JWTMiddlewareManagement)
	g.DELETE("/karyawan", pc.HapusRosterHandler, middlewares.JWTMiddlewareManagement)
}
