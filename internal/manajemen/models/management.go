package models

// Management adalah akun pengelola roster penjadwalan.
type Management struct {
	IDManagement int    `json:"id_management"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	Nama         string `json:"nama"`
}
