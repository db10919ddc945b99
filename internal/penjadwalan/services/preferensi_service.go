package services

import (
	"errors"

	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/models"
)

// ErrKaryawanTidakTerdaftar menandakan lookup preferensi untuk nama yang
// belum terdaftar. Ini pelanggaran kontrak pemanggil, bukan kondisi bisnis;
// proses penjadwalan harus dihentikan jika error ini muncul.
var ErrKaryawanTidakTerdaftar = errors.New("karyawan tidak terdaftar")

// PreferensiService menyimpan daftar karyawan beserta preferensi shift
// mereka. Urutan pendaftaran dipertahankan dan merupakan bagian dari
// kontrak: urutan ini dipakai sebagai urutan iterasi deterministik pada
// setiap pass penjadwalan, sehingga karyawan yang mendaftar lebih dulu
// menang pada setiap titik kontensi.
type PreferensiService struct {
	daftarKaryawan []string
	preferensi     map[string]models.PreferensiHarian
}

func NewPreferensiService() *PreferensiService {
	return &PreferensiService{
		preferensi: make(map[string]models.PreferensiHarian),
	}
}

// AddKaryawan mendaftarkan karyawan beserta preferensinya. Jika nama sudah
// terdaftar, pemanggilan diabaikan tanpa error (idempoten); preferensi lama
// tidak ditimpa maupun digabung.
func (s *PreferensiService) AddKaryawan(nama string, pref models.PreferensiHarian) {
	if _, ada := s.preferensi[nama]; ada {
		return
	}
	s.daftarKaryawan = append(s.daftarKaryawan, nama)
	s.preferensi[nama] = pref.Salin()
}

// GetPreferensi mengembalikan preferensi karyawan terdaftar.
func (s *PreferensiService) GetPreferensi(nama string) (models.PreferensiHarian, error) {
	pref, ada := s.preferensi[nama]
	if !ada {
		return nil, ErrKaryawanTidakTerdaftar
	}
	return pref, nil
}

// Terdaftar melaporkan apakah nama sudah pernah didaftarkan.
func (s *PreferensiService) Terdaftar(nama string) bool {
	_, ada := s.preferensi[nama]
	return ada
}

// DaftarKaryawan mengembalikan seluruh nama karyawan sesuai urutan
// pendaftaran.
func (s *PreferensiService) DaftarKaryawan() []string {
	salinan := make([]string, len(s.daftarKaryawan))
	copy(salinan, s.daftarKaryawan)
	return salinan
}

// JumlahKaryawan mengembalikan banyaknya karyawan terdaftar.
func (s *PreferensiService) JumlahKaryawan() int {
	return len(s.daftarKaryawan)
}
