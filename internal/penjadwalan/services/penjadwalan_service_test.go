package services

import (
	"testing"

	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotJadwal merekam seluruh grid sebagai map slot -> daftar nama,
// untuk perbandingan antar run.
func snapshotJadwal(j *models.Jadwal) map[string][]string {
	hasil := map[string][]string{}
	for _, hari := range models.SemuaHari() {
		for _, shift := range models.SemuaShift() {
			hasil[hari.String()+"/"+shift.String()] = j.Karyawan(hari, shift)
		}
	}
	return hasil
}

// periksaInvarian memastikan dua invarian inti: tidak ada karyawan yang
// terjadwal lebih dari satu shift pada hari yang sama, dan beban kerja
// setiap karyawan <= MaksHariKerja serta konsisten dengan isi jadwal.
func periksaInvarian(t *testing.T, s *PenjadwalanService) {
	t.Helper()

	jadwal := s.Jadwal()
	beban := s.BebanKerja()

	for _, nama := range s.store.DaftarKaryawan() {
		for _, hari := range models.SemuaHari() {
			jumlahShift := 0
			for _, shift := range models.SemuaShift() {
				if jadwal.AdaDiShift(nama, hari, shift) {
					jumlahShift++
				}
			}
			assert.LessOrEqual(t, jumlahShift, 1,
				"%s terjadwal %d shift pada %s", nama, jumlahShift, hari)
		}

		assert.LessOrEqual(t, beban[nama], models.MaksHariKerja,
			"beban %s melebihi batas", nama)
		assert.Equal(t, len(jadwal.HariTerjadwal(nama)), beban[nama],
			"beban %s tidak konsisten dengan jadwal", nama)
	}
}

func TestPass1_PreferensiSamaDitempatkanBerurutan(t *testing.T) {
	// Skenario: dua karyawan menginginkan slot yang sama; pass 1 tidak
	// punya kapasitas maksimum sehingga keduanya ditempatkan, dengan
	// urutan pendaftaran dipertahankan.
	store := NewPreferensiService()
	store.AddKaryawan("Alice", models.PreferensiHarian{
		models.HariMonday: {models.ShiftMorning},
	})
	store.AddKaryawan("Bob", models.PreferensiHarian{
		models.HariMonday: {models.ShiftMorning},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.tempatkanPreferensi())

	assert.Equal(t, []string{"Alice", "Bob"}, s.Jadwal().Karyawan(models.HariMonday, models.ShiftMorning))
	assert.Equal(t, 1, s.BebanKerja()["Alice"])
	assert.Equal(t, 1, s.BebanKerja()["Bob"])
	periksaInvarian(t, s)
}

func TestPass1_HanyaPilihanPertama(t *testing.T) {
	// Pilihan kedua dan ketiga tidak pernah dilirik pada pass 1.
	store := NewPreferensiService()
	store.AddKaryawan("Frank", models.PreferensiHarian{
		models.HariMonday: {models.ShiftEvening, models.ShiftMorning, models.ShiftAfternoon},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.tempatkanPreferensi())

	assert.Equal(t, []string{"Frank"}, s.Jadwal().Karyawan(models.HariMonday, models.ShiftEvening))
	assert.Equal(t, 0, s.Jadwal().Jumlah(models.HariMonday, models.ShiftMorning))
	assert.Equal(t, 0, s.Jadwal().Jumlah(models.HariMonday, models.ShiftAfternoon))
}

func TestPass1_BerhentiPadaBatasLimaHari(t *testing.T) {
	// Preferensi tujuh hari hanya menghasilkan lima penempatan pertama.
	pref := models.PreferensiHarian{}
	for _, hari := range models.SemuaHari() {
		pref[hari] = []models.Shift{models.ShiftMorning}
	}

	store := NewPreferensiService()
	store.AddKaryawan("Grace", pref)

	s := NewPenjadwalanService(store)
	require.NoError(t, s.tempatkanPreferensi())

	assert.Equal(t, models.MaksHariKerja, s.BebanKerja()["Grace"])
	assert.True(t, s.Jadwal().TerjadwalPadaHari("Grace", models.HariFriday))
	assert.False(t, s.Jadwal().TerjadwalPadaHari("Grace", models.HariSaturday))
	assert.False(t, s.Jadwal().TerjadwalPadaHari("Grace", models.HariSunday))
}

func TestPass1_EntriKosongMenghentikanKaryawan(t *testing.T) {
	// Entri preferensi yang ada tetapi kosong menghentikan pemrosesan
	// hari-hari berikutnya untuk karyawan tersebut, bukan sekadar dilewati.
	store := NewPreferensiService()
	store.AddKaryawan("Eve", models.PreferensiHarian{
		models.HariMonday:  {},
		models.HariTuesday: {models.ShiftMorning},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.tempatkanPreferensi())

	assert.Equal(t, 0, s.BebanKerja()["Eve"])
	assert.False(t, s.Jadwal().TerjadwalPadaHari("Eve", models.HariTuesday))
}

func TestAssignShifts_BackfillSatuKaryawan(t *testing.T) {
	// Satu karyawan, satu preferensi: pass 2 mengisinya ke slot Morning
	// hari-hari berikutnya sampai batas lima hari tercapai; semua slot
	// tetap di bawah minimum tanpa error.
	store := NewPreferensiService()
	store.AddKaryawan("Alice", models.PreferensiHarian{
		models.HariMonday: {models.ShiftMorning},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.AssignShifts())

	jadwal := s.Jadwal()
	for _, hari := range []models.Hari{
		models.HariMonday, models.HariTuesday, models.HariWednesday,
		models.HariThursday, models.HariFriday,
	} {
		assert.Equal(t, []string{"Alice"}, jadwal.Karyawan(hari, models.ShiftMorning))
		assert.Equal(t, 0, jadwal.Jumlah(hari, models.ShiftAfternoon))
		assert.Equal(t, 0, jadwal.Jumlah(hari, models.ShiftEvening))
	}
	for _, hari := range []models.Hari{models.HariSaturday, models.HariSunday} {
		for _, shift := range models.SemuaShift() {
			assert.Equal(t, 0, jadwal.Jumlah(hari, shift))
		}
	}

	assert.Equal(t, models.MaksHariKerja, s.BebanKerja()["Alice"])
	periksaInvarian(t, s)
}

func TestPass2_MengabaikanPreferensi(t *testing.T) {
	// Backfill menempatkan kandidat pertama yang tersedia dalam urutan
	// pendaftaran, walaupun karyawan tidak pernah meminta slot itu.
	store := NewPreferensiService()
	store.AddKaryawan("Alice", models.PreferensiHarian{
		models.HariMonday: {models.ShiftEvening},
	})
	store.AddKaryawan("Bob", models.PreferensiHarian{
		models.HariMonday: {models.ShiftEvening},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.tempatkanPreferensi())
	s.pastikanCakupanMinimal()

	// Keduanya sudah terjadwal Senin (Evening) sehingga slot Senin lain
	// tidak bisa diisi; Selasa Morning diisi keduanya oleh backfill.
	assert.Equal(t, 0, s.Jadwal().Jumlah(models.HariMonday, models.ShiftMorning))
	assert.Equal(t, []string{"Alice", "Bob"}, s.Jadwal().Karyawan(models.HariTuesday, models.ShiftMorning))
	periksaInvarian(t, s)
}

func TestPass3_MenambahHariYangTerlewat(t *testing.T) {
	// Rekonsiliasi menempatkan karyawan pada hari yang diinginkan tetapi
	// belum terjadwal, mengikuti urutan prioritas preferensi hari itu.
	store := NewPreferensiService()
	store.AddKaryawan("Eve", models.PreferensiHarian{
		models.HariTuesday: {models.ShiftAfternoon, models.ShiftMorning},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.selesaikanKonflik())

	assert.Equal(t, []string{"Eve"}, s.Jadwal().Karyawan(models.HariTuesday, models.ShiftAfternoon))
	assert.Equal(t, 0, s.Jadwal().Jumlah(models.HariTuesday, models.ShiftMorning))
	assert.Equal(t, 1, s.BebanKerja()["Eve"])
}

func TestPass3_BerhentiPadaBatasBeban(t *testing.T) {
	store := NewPreferensiService()
	store.AddKaryawan("Gina", models.PreferensiHarian{
		models.HariSaturday: {models.ShiftMorning},
	})

	s := NewPenjadwalanService(store)
	s.beban["Gina"] = models.MaksHariKerja

	require.NoError(t, s.selesaikanKonflik())
	assert.Equal(t, 0, s.Jadwal().Jumlah(models.HariSaturday, models.ShiftMorning))
}

func TestPass3_TidakBerjalanBilaHariSudahTercakup(t *testing.T) {
	// Karyawan yang pass 1-nya terputus oleh entri kosong tetap bisa
	// mendapat hari yang diinginkan lewat backfill; pass 3 tidak mengubah
	// slot karena harinya sudah tercakup, walau bukan shift pilihannya.
	store := NewPreferensiService()
	store.AddKaryawan("Carol", models.PreferensiHarian{
		models.HariMonday:    {},
		models.HariWednesday: {models.ShiftAfternoon, models.ShiftMorning},
	})

	s := NewPenjadwalanService(store)
	require.NoError(t, s.AssignShifts())

	jadwal := s.Jadwal()
	// Backfill menempatkan Carol di Morning Rabu sebelum pass 3 berjalan
	assert.Equal(t, []string{"Carol"}, jadwal.Karyawan(models.HariWednesday, models.ShiftMorning))
	assert.Equal(t, 0, jadwal.Jumlah(models.HariWednesday, models.ShiftAfternoon))
	periksaInvarian(t, s)
}

func TestAssignShifts_RosterKosong(t *testing.T) {
	s := NewPenjadwalanService(NewPreferensiService())
	require.NoError(t, s.AssignShifts())

	for _, hari := range models.SemuaHari() {
		for _, shift := range models.SemuaShift() {
			assert.Equal(t, 0, s.Jadwal().Jumlah(hari, shift))
		}
	}
	assert.Empty(t, s.BebanKerja())
}

func buatRosterLengkap() *PreferensiService {
	store := NewPreferensiService()
	store.AddKaryawan("Alice", models.PreferensiHarian{
		models.HariMonday:    {models.ShiftMorning},
		models.HariTuesday:   {models.ShiftAfternoon, models.ShiftMorning},
		models.HariWednesday: {models.ShiftEvening},
	})
	store.AddKaryawan("Bob", models.PreferensiHarian{
		models.HariMonday:   {models.ShiftMorning, models.ShiftEvening},
		models.HariThursday: {models.ShiftEvening},
		models.HariFriday:   {models.ShiftMorning},
	})
	store.AddKaryawan("Carol", models.PreferensiHarian{
		models.HariSaturday: {models.ShiftAfternoon},
		models.HariSunday:   {models.ShiftMorning},
	})
	store.AddKaryawan("Dave", models.PreferensiHarian{
		models.HariMonday:    {models.ShiftEvening},
		models.HariTuesday:   {models.ShiftEvening},
		models.HariWednesday: {models.ShiftEvening},
		models.HariThursday:  {models.ShiftEvening},
		models.HariFriday:    {models.ShiftEvening},
	})
	store.AddKaryawan("Erin", models.PreferensiHarian{
		models.HariWednesday: {models.ShiftMorning},
		models.HariSunday:    {models.ShiftEvening},
	})
	return store
}

func TestAssignShifts_InvarianSetiapPass(t *testing.T) {
	s := NewPenjadwalanService(buatRosterLengkap())

	require.NoError(t, s.tempatkanPreferensi())
	periksaInvarian(t, s)

	s.pastikanCakupanMinimal()
	periksaInvarian(t, s)

	require.NoError(t, s.selesaikanKonflik())
	periksaInvarian(t, s)
}

func TestAssignShifts_Deterministik(t *testing.T) {
	// Dua run dengan isi store identik (urutan pendaftaran sama) harus
	// menghasilkan jadwal dan beban kerja yang identik.
	s1 := NewPenjadwalanService(buatRosterLengkap())
	s2 := NewPenjadwalanService(buatRosterLengkap())

	require.NoError(t, s1.AssignShifts())
	require.NoError(t, s2.AssignShifts())

	assert.Equal(t, snapshotJadwal(s1.Jadwal()), snapshotJadwal(s2.Jadwal()))
	assert.Equal(t, s1.BebanKerja(), s2.BebanKerja())
}

func TestAssignShifts_PenempatanTidakPernahDicabut(t *testing.T) {
	// Penempatan pass 1 karyawan yang mendaftar lebih dulu tidak pernah
	// digeser oleh pass berikutnya.
	s := NewPenjadwalanService(buatRosterLengkap())
	require.NoError(t, s.tempatkanPreferensi())

	sebelum := s.Jadwal().Karyawan(models.HariMonday, models.ShiftMorning)
	require.Equal(t, []string{"Alice", "Bob"}, sebelum)

	s.pastikanCakupanMinimal()
	require.NoError(t, s.selesaikanKonflik())

	sesudah := s.Jadwal().Karyawan(models.HariMonday, models.ShiftMorning)
	assert.Equal(t, sebelum, sesudah[:len(sebelum)])
}
