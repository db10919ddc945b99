package services

import (
	"database/sql"
	"fmt"

	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/models"
)

// RosterService menyimpan roster karyawan beserta preferensinya di MariaDB
// supaya daftar input penjadwalan bisa dibangun ulang saat server restart.
// Jadwal hasil penjadwalan sendiri tidak pernah disimpan; jadwal selalu
// dihitung segar dari roster.
//
// Skema:
//
//	CREATE TABLE Karyawan_Roster (
//	    id_karyawan INT AUTO_INCREMENT PRIMARY KEY,
//	    nama        VARCHAR(100) NOT NULL UNIQUE,
//	    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
//	);
//	CREATE TABLE Preferensi_Shift (
//	    id_preferensi INT AUTO_INCREMENT PRIMARY KEY,
//	    id_karyawan   INT NOT NULL REFERENCES Karyawan_Roster(id_karyawan),
//	    hari          VARCHAR(10) NOT NULL,
//	    prioritas     INT NOT NULL,
//	    shift         VARCHAR(10) NOT NULL
//	);
type RosterService struct {
	DB *sql.DB
}

func NewRosterService(db *sql.DB) *RosterService {
	return &RosterService{DB: db}
}

// SimpanKaryawan menyimpan satu karyawan beserta preferensinya. Nama yang
// sudah ada diabaikan tanpa error, mengikuti perilaku idempoten
// PreferensiService.AddKaryawan.
func (s *RosterService) SimpanKaryawan(nama string, pref models.PreferensiHarian) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("gagal memulai transaksi: %v", err)
	}

	// Cek apakah nama sudah terdaftar
	var cnt int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM Karyawan_Roster WHERE nama = ?", nama,
	).Scan(&cnt); err != nil {
		tx.Rollback()
		return fmt.Errorf("gagal memeriksa karyawan '%s': %v", nama, err)
	}
	if cnt > 0 {
		tx.Rollback()
		return nil
	}

	res, err := tx.Exec("INSERT INTO Karyawan_Roster (nama) VALUES (?)", nama)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("gagal menyimpan karyawan '%s': %v", nama, err)
	}
	idKaryawan, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("gagal mendapatkan id karyawan '%s': %v", nama, err)
	}

	for _, hari := range models.SemuaHari() {
		daftar, ada := pref[hari]
		if !ada {
			continue
		}
		for prioritas, shift := range daftar {
			if _, err := tx.Exec(
				`INSERT INTO Preferensi_Shift (id_karyawan, hari, prioritas, shift)
				 VALUES (?, ?, ?, ?)`,
				idKaryawan, hari.String(), prioritas+1, shift.String(),
			); err != nil {
				tx.Rollback()
				return fmt.Errorf("gagal menyimpan preferensi %s/%s untuk karyawan '%s': %v",
					hari, shift, nama, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("gagal commit transaksi: %v", err)
	}
	return nil
}

// MuatRoster membaca seluruh roster dari database dan mendaftarkannya ke
// store dalam urutan pendaftaran asli (id menaik). Urutan ini yang
// menentukan prioritas karyawan pada setiap pass penjadwalan.
func (s *RosterService) MuatRoster(store *PreferensiService) error {
	rows, err := s.DB.Query(`
		SELECT k.nama, p.hari, p.shift
		FROM Karyawan_Roster k
		LEFT JOIN Preferensi_Shift p ON p.id_karyawan = k.id_karyawan
		ORDER BY k.id_karyawan, p.id_preferensi
	`)
	if err != nil {
		return fmt.Errorf("gagal membaca roster: %v", err)
	}
	defer rows.Close()

	urutanNama := []string{}
	preferensi := map[string]models.PreferensiHarian{}

	for rows.Next() {
		var nama string
		var hariStr, shiftStr sql.NullString
		if err := rows.Scan(&nama, &hariStr, &shiftStr); err != nil {
			return fmt.Errorf("gagal membaca baris roster: %v", err)
		}

		pref, ada := preferensi[nama]
		if !ada {
			pref = models.PreferensiHarian{}
			preferensi[nama] = pref
			urutanNama = append(urutanNama, nama)
		}

		// Karyawan tanpa preferensi menghasilkan baris dengan kolom NULL
		if !hariStr.Valid || !shiftStr.Valid {
			continue
		}

		hari, ok := models.ParseHari(hariStr.String)
		if !ok {
			return fmt.Errorf("hari '%s' pada roster tidak valid", hariStr.String)
		}
		shift, ok := models.ParseShift(shiftStr.String)
		if !ok {
			return fmt.Errorf("shift '%s' pada roster tidak valid", shiftStr.String)
		}
		pref[hari] = append(pref[hari], shift)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("gagal iterasi roster: %v", err)
	}

	for _, nama := range urutanNama {
		store.AddKaryawan(nama, preferensi[nama])
	}
	return nil
}

// HapusSemua mengosongkan roster untuk memulai minggu perencanaan baru.
func (s *RosterService) HapusSemua() error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("gagal memulai transaksi: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM Preferensi_Shift"); err != nil {
		tx.Rollback()
		return fmt.Errorf("gagal menghapus preferensi: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM Karyawan_Roster"); err != nil {
		tx.Rollback()
		return fmt.Errorf("gagal menghapus karyawan: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("gagal commit transaksi: %v", err)
	}
	return nil
}
