package models

// Konstanta aturan penjadwalan. Nilai ini konfigurasi tetap sistem,
// bukan turunan dari data runtime.
const (
	// MinKaryawanPerShift adalah jumlah minimum karyawan per slot shift.
	MinKaryawanPerShift = 2
	// MaksHariKerja adalah batas hari kerja per karyawan per minggu.
	MaksHariKerja = 5
)

// Jadwal adalah grid tetap 7x3 (hari x shift) berisi daftar nama karyawan
// per slot. Daftar per slot mempertahankan urutan penempatan. Penempatan
// bersifat append-only: karyawan yang sudah ditempatkan tidak pernah
// dipindah atau dikeluarkan.
type Jadwal struct {
	slot [JumlahHari][JumlahShift][]string
}

func NewJadwal() *Jadwal {
	return &Jadwal{}
}

// Tambah menempatkan karyawan pada slot (hari, shift).
func (j *Jadwal) Tambah(hari Hari, shift Shift, nama string) {
	j.slot[hari][shift] = append(j.slot[hari][shift], nama)
}

// Karyawan mengembalikan daftar nama pada slot (hari, shift) sesuai
// urutan penempatan.
func (j *Jadwal) Karyawan(hari Hari, shift Shift) []string {
	daftar := j.slot[hari][shift]
	salinan := make([]string, len(daftar))
	copy(salinan, daftar)
	return salinan
}

// Jumlah mengembalikan banyaknya karyawan pada slot (hari, shift).
func (j *Jadwal) Jumlah(hari Hari, shift Shift) int {
	return len(j.slot[hari][shift])
}

// AdaDiShift melaporkan apakah karyawan sudah berada pada slot tersebut.
func (j *Jadwal) AdaDiShift(nama string, hari Hari, shift Shift) bool {
	for _, n := range j.slot[hari][shift] {
		if n == nama {
			return true
		}
	}
	return false
}

// TerjadwalPadaHari melaporkan apakah karyawan sudah ditempatkan pada
// shift mana pun di hari tersebut.
func (j *Jadwal) TerjadwalPadaHari(nama string, hari Hari) bool {
	for shift := Shift(0); shift < JumlahShift; shift++ {
		if j.AdaDiShift(nama, hari, shift) {
			return true
		}
	}
	return false
}

// HariTerjadwal mengembalikan daftar hari (urutan kalender) di mana
// karyawan sudah ditempatkan.
func (j *Jadwal) HariTerjadwal(nama string) []Hari {
	var hasil []Hari
	for hari := Hari(0); hari < JumlahHari; hari++ {
		if j.TerjadwalPadaHari(nama, hari) {
			hasil = append(hasil, hari)
		}
	}
	return hasil
}

// BebanKerja menghitung jumlah hari kerja yang sudah ditetapkan per
// karyawan. Nilainya selalu sama dengan banyaknya hari berbeda di mana
// karyawan muncul dalam Jadwal, dan tidak pernah melebihi MaksHariKerja.
type BebanKerja map[string]int
