package services

import (
	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/models"
)

// PenjadwalanService menyusun jadwal shift mingguan dari isi
// PreferensiService melalui algoritma tiga pass yang berjalan berurutan:
//
//  1. Penempatan preferensi: karyawan ditempatkan pada pilihan pertama
//     mereka per hari, tanpa memeriksa kapasitas slot.
//  2. Cakupan minimal: slot yang kurang dari MinKaryawanPerShift diisi
//     karyawan yang masih tersedia, tanpa memandang preferensi.
//  3. Rekonsiliasi konflik: hari yang diinginkan tetapi belum terjadwal
//     dicoba ulang mengikuti urutan prioritas preferensi.
//
// Jadwal dan BebanKerja dimiliki service ini dan dibangun segar setiap run.
// Tidak ada pass yang memindah atau mengeluarkan penempatan yang sudah ada;
// kekurangan staf, preferensi yang tidak terpenuhi, dan slot kelebihan
// karyawan adalah hasil yang diterima, bukan error.
type PenjadwalanService struct {
	store  *PreferensiService
	jadwal *models.Jadwal
	beban  models.BebanKerja
}

func NewPenjadwalanService(store *PreferensiService) *PenjadwalanService {
	return &PenjadwalanService{
		store:  store,
		jadwal: models.NewJadwal(),
		beban:  make(models.BebanKerja),
	}
}

// AssignShifts menjalankan ketiga pass secara berurutan. Satu-satunya error
// yang mungkin adalah ErrKaryawanTidakTerdaftar, yang menandakan kontrak
// pemanggil rusak dan menghentikan run.
func (s *PenjadwalanService) AssignShifts() error {
	s.jadwal = models.NewJadwal()
	s.beban = make(models.BebanKerja)

	if err := s.tempatkanPreferensi(); err != nil {
		return err
	}
	s.pastikanCakupanMinimal()
	return s.selesaikanKonflik()
}

// Jadwal mengembalikan grid hasil run terakhir.
func (s *PenjadwalanService) Jadwal() *models.Jadwal {
	return s.jadwal
}

// BebanKerja mengembalikan jumlah hari kerja per karyawan hasil run terakhir.
func (s *PenjadwalanService) BebanKerja() models.BebanKerja {
	salinan := make(models.BebanKerja, len(s.beban))
	for nama, jumlah := range s.beban {
		salinan[nama] = jumlah
	}
	return salinan
}

// Pass 1: tempatkan setiap karyawan pada pilihan PERTAMA mereka per hari.
// Pilihan kedua dan ketiga tidak pernah dilirik di pass ini, dan tidak ada
// pemeriksaan kapasitas slot.
func (s *PenjadwalanService) tempatkanPreferensi() error {
	for _, nama := range s.store.DaftarKaryawan() {
		pref, err := s.store.GetPreferensi(nama)
		if err != nil {
			return err
		}

		for _, hari := range models.SemuaHari() {
			if s.beban[nama] >= models.MaksHariKerja {
				break
			}

			pilihan, ada := pref[hari]
			if !ada {
				continue
			}
			if s.jadwal.TerjadwalPadaHari(nama, hari) {
				continue
			}

			// Entri preferensi kosong menghentikan pass 1 untuk
			// karyawan ini, bukan sekadar dilewati
			if len(pilihan) == 0 {
				break
			}

			s.jadwal.Tambah(hari, pilihan[0], nama)
			s.beban[nama]++
		}
	}
	return nil
}

// Pass 2: pastikan setiap slot mencapai MinKaryawanPerShift selama masih
// ada karyawan yang bisa ditempatkan. Preferensi diabaikan sepenuhnya.
// Slot yang tidak bisa dipenuhi dibiarkan kurang staf tanpa error.
func (s *PenjadwalanService) pastikanCakupanMinimal() {
	for _, hari := range models.SemuaHari() {
		for _, shift := range models.SemuaShift() {
			for s.jadwal.Jumlah(hari, shift) < models.MinKaryawanPerShift {
				ditempatkan := false

				for _, nama := range s.store.DaftarKaryawan() {
					if s.beban[nama] >= models.MaksHariKerja {
						continue
					}
					if s.jadwal.TerjadwalPadaHari(nama, hari) {
						continue
					}
					if s.jadwal.AdaDiShift(nama, hari, shift) {
						continue
					}

					s.jadwal.Tambah(hari, shift, nama)
					s.beban[nama]++
					ditempatkan = true
					break
				}

				// Tidak ada kandidat tersisa untuk slot ini
				if !ditempatkan {
					break
				}
			}
		}
	}
}

// Pass 3: untuk hari yang diinginkan karyawan tetapi belum terjadwal, coba
// shift sesuai urutan prioritas hari itu (atau seluruh shift bila tidak ada
// urutan preferensi). Tidak ada pemeriksaan kapasitas slot dan tidak ada
// penempatan yang dibatalkan; pass ini hanya menambah.
func (s *PenjadwalanService) selesaikanKonflik() error {
	for _, nama := range s.store.DaftarKaryawan() {
		pref, err := s.store.GetPreferensi(nama)
		if err != nil {
			return err
		}

		for _, hari := range models.SemuaHari() {
			if _, diinginkan := pref[hari]; !diinginkan {
				continue
			}
			if s.jadwal.TerjadwalPadaHari(nama, hari) {
				continue
			}
			if s.beban[nama] >= models.MaksHariKerja {
				break
			}

			urutan, ada := pref[hari]
			if !ada {
				semua := models.SemuaShift()
				urutan = semua[:]
			}

			for _, shift := range urutan {
				if s.jadwal.AdaDiShift(nama, hari, shift) {
					continue
				}
				s.jadwal.Tambah(hari, shift, nama)
				s.beban[nama]++
				break
			}
		}
	}
	return nil
}
