package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/c14220110/penjadwalan-backend/internal/manajemen/services"
	"github.com/c14220110/penjadwalan-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

type ManagementController struct {
	Service *services.ManagementService
}

func NewManagementController(service *services.ManagementService) *ManagementController {
	return &ManagementController{Service: service}
}

type LoginManagementRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login mengautentikasi akun manajemen dan menerbitkan token JWT untuk
// mengakses endpoint penjadwalan yang dilindungi.
func (mc *ManagementController) Login(c echo.Context) error {
	var req LoginManagementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Username and Password are required",
			"data":    nil,
		})
	}

	m, err := mc.Service.AuthenticateManagement(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid username or password",
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(
		strconv.Itoa(m.IDManagement),
		m.Nama,
		m.Username,
		time.Now().Add(12*time.Hour),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate token: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login berhasil",
		"data": map[string]interface{}{
			"id_management": m.IDManagement,
			"nama":          m.Nama,
			"username":      m.Username,
			"token":         token,
		},
	})
}
