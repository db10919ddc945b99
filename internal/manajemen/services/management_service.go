package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/penjadwalan-backend/internal/manajemen/models"
)

type ManagementService struct {
	DB *sql.DB
}

func NewManagementService(db *sql.DB) *ManagementService {
	return &ManagementService{DB: db}
}

// AuthenticateManagement memvalidasi login manajemen.
func (s *ManagementService) AuthenticateManagement(username, password string) (*models.Management, error) {
	var m models.Management
	query := "SELECT id_management, username, password, nama FROM Management WHERE username = ?"
	err := s.DB.QueryRow(query, username).Scan(&m.IDManagement, &m.Username, &m.Password, &m.Nama)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return &m, nil
}
