package routes

import (
	"github.com/c14220110/penjadwalan-backend/internal/manajemen/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterManagementRoutes(e *echo.Echo, mc *controllers.ManagementController) {
	// Route login tidak dilindungi oleh middleware JWT.
	e.POST("/api/management/login", mc.Login)
}
