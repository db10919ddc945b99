package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/models"
	"github.com/c14220110/penjadwalan-backend/internal/penjadwalan/services"
	"github.com/c14220110/penjadwalan-backend/ws"
	"github.com/labstack/echo/v4"
)

// PenjadwalanController adalah lapisan input/tampilan di sekitar mesin
// penjadwalan. Seluruh validasi payload terjadi di sini; mesin penjadwalan
// hanya menerima data yang sudah tervalidasi.
type PenjadwalanController struct {
	Store  *services.PreferensiService
	Roster *services.RosterService // boleh nil pada mode tanpa database
	Hub    *ws.Hub                 // boleh nil jika broadcast tidak dipakai

	mu                sync.Mutex
	jadwalTerakhir    []models.HariJadwalResponse
	ringkasanTerakhir []models.RingkasanKaryawanResponse
}

func NewPenjadwalanController(store *services.PreferensiService, roster *services.RosterService, hub *ws.Hub) *PenjadwalanController {
	return &PenjadwalanController{
		Store:  store,
		Roster: roster,
		Hub:    hub,
	}
}

// validasiPreferensi memeriksa payload pendaftaran dan mengonversinya ke
// bentuk internal. Aturan: nama tidak kosong, 1-5 hari berbeda dengan nama
// hari valid, tiap hari 1-3 shift valid tanpa duplikat.
func validasiPreferensi(req models.TambahKaryawanRequest) (string, models.PreferensiHarian, error) {
	nama := strings.TrimSpace(req.Nama)
	if nama == "" {
		return "", nil, errors.New("nama tidak boleh kosong")
	}

	if len(req.Preferensi) < 1 || len(req.Preferensi) > models.MaksHariKerja {
		return "", nil, fmt.Errorf("preferensi harus berisi 1-%d hari", models.MaksHariKerja)
	}

	pref := models.PreferensiHarian{}
	for _, entri := range req.Preferensi {
		hari, ok := models.ParseHari(entri.Hari)
		if !ok {
			return "", nil, fmt.Errorf("hari '%s' tidak valid", entri.Hari)
		}
		if _, ada := pref[hari]; ada {
			return "", nil, fmt.Errorf("hari '%s' duplikat dalam preferensi", entri.Hari)
		}

		if len(entri.Shift) < 1 || len(entri.Shift) > models.JumlahShift {
			return "", nil, fmt.Errorf("shift untuk hari '%s' harus berisi 1-%d pilihan", entri.Hari, models.JumlahShift)
		}

		urutan := make([]models.Shift, 0, len(entri.Shift))
		for _, namaShift := range entri.Shift {
			shift, ok := models.ParseShift(namaShift)
			if !ok {
				return "", nil, fmt.Errorf("shift '%s' tidak valid", namaShift)
			}
			for _, sudah := range urutan {
				if sudah == shift {
					return "", nil, fmt.Errorf("shift '%s' duplikat untuk hari '%s'", namaShift, entri.Hari)
				}
			}
			urutan = append(urutan, shift)
		}
		pref[hari] = urutan
	}

	return nama, pref, nil
}

// AddKaryawanHandler mendaftarkan karyawan baru beserta preferensinya.
// Nama yang sudah terdaftar diabaikan tanpa error.
func (pc *PenjadwalanController) AddKaryawanHandler(c echo.Context) error {
	var req models.TambahKaryawanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	nama, pref, err := validasiPreferensi(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": err.Error(),
			"data":    nil,
		})
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.Store.Terdaftar(nama) {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  http.StatusOK,
			"message": fmt.Sprintf("karyawan '%s' sudah terdaftar, preferensi lama dipertahankan", nama),
			"data":    nil,
		})
	}

	// Simpan ke database dulu supaya store memori tidak berubah bila gagal
	if pc.Roster != nil {
		if err := pc.Roster.SimpanKaryawan(nama, pref); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "gagal menyimpan karyawan: " + err.Error(),
				"data":    nil,
			})
		}
	}
	pc.Store.AddKaryawan(nama, pref)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  http.StatusCreated,
		"message": "karyawan berhasil didaftarkan",
		"data": map[string]interface{}{
			"nama":            nama,
			"jumlah_karyawan": pc.Store.JumlahKaryawan(),
		},
	})
}

// GetKaryawanListHandler mengembalikan roster dalam urutan pendaftaran.
func (pc *PenjadwalanController) GetKaryawanListHandler(c echo.Context) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	daftar := []map[string]interface{}{}
	for _, nama := range pc.Store.DaftarKaryawan() {
		pref, err := pc.Store.GetPreferensi(nama)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "gagal membaca preferensi: " + err.Error(),
				"data":    nil,
			})
		}

		preferensi := []models.PreferensiHariRequest{}
		for _, hari := range models.SemuaHari() {
			urutan, ada := pref[hari]
			if !ada {
				continue
			}
			namaShift := make([]string, len(urutan))
			for i, shift := range urutan {
				namaShift[i] = shift.String()
			}
			preferensi = append(preferensi, models.PreferensiHariRequest{
				Hari:  hari.String(),
				Shift: namaShift,
			})
		}

		daftar = append(daftar, map[string]interface{}{
			"nama":       nama,
			"preferensi": preferensi,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "daftar karyawan berhasil diambil",
		"data":    daftar,
	})
}

// GenerateJadwalHandler menjalankan algoritma tiga pass atas roster saat
// ini dan menyimpan hasilnya sebagai jadwal aktif.
func (pc *PenjadwalanController) GenerateJadwalHandler(c echo.Context) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	assigner := services.NewPenjadwalanService(pc.Store)
	if err := assigner.AssignShifts(); err != nil {
		// Hanya terjadi bila kontrak pemanggil rusak (karyawan tak terdaftar)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "gagal menyusun jadwal: " + err.Error(),
			"data":    nil,
		})
	}

	jadwal := buildJadwalResponse(assigner)
	ringkasan := buildRingkasanResponse(pc.Store, assigner)
	pc.jadwalTerakhir = jadwal
	pc.ringkasanTerakhir = ringkasan

	if pc.Hub != nil {
		pc.Hub.BroadcastEvent("jadwal_updated", jadwal)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "jadwal berhasil disusun",
		"data": map[string]interface{}{
			"jadwal":    jadwal,
			"ringkasan": ringkasan,
		},
	})
}

// GetJadwalHandler mengembalikan jadwal aktif hasil generate terakhir.
func (pc *PenjadwalanController) GetJadwalHandler(c echo.Context) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.jadwalTerakhir == nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "jadwal belum pernah disusun",
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "jadwal berhasil diambil",
		"data":    pc.jadwalTerakhir,
	})
}

// GetRingkasanHandler mengembalikan jumlah hari kerja per karyawan dari
// jadwal aktif.
func (pc *PenjadwalanController) GetRingkasanHandler(c echo.Context) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.ringkasanTerakhir == nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "jadwal belum pernah disusun",
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "ringkasan berhasil diambil",
		"data":    pc.ringkasanTerakhir,
	})
}

// HapusRosterHandler mengosongkan roster dan jadwal aktif untuk memulai
// minggu perencanaan baru.
func (pc *PenjadwalanController) HapusRosterHandler(c echo.Context) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.Roster != nil {
		if err := pc.Roster.HapusSemua(); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "gagal mengosongkan roster: " + err.Error(),
				"data":    nil,
			})
		}
	}

	pc.Store = services.NewPreferensiService()
	pc.jadwalTerakhir = nil
	pc.ringkasanTerakhir = nil

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "roster berhasil dikosongkan",
		"data":    nil,
	})
}

func buildJadwalResponse(assigner *services.PenjadwalanService) []models.HariJadwalResponse {
	jadwal := assigner.Jadwal()
	hasil := make([]models.HariJadwalResponse, 0, models.JumlahHari)
	for _, hari := range models.SemuaHari() {
		slot := make([]models.SlotJadwalResponse, 0, models.JumlahShift)
		for _, shift := range models.SemuaShift() {
			slot = append(slot, models.SlotJadwalResponse{
				Shift:    shift.String(),
				Karyawan: jadwal.Karyawan(hari, shift),
			})
		}
		hasil = append(hasil, models.HariJadwalResponse{
			Hari: hari.String(),
			Slot: slot,
		})
	}
	return hasil
}

func buildRingkasanResponse(store *services.PreferensiService, assigner *services.PenjadwalanService) []models.RingkasanKaryawanResponse {
	beban := assigner.BebanKerja()
	hasil := make([]models.RingkasanKaryawanResponse, 0, store.JumlahKaryawan())
	for _, nama := range store.DaftarKaryawan() {
		hasil = append(hasil, models.RingkasanKaryawanResponse{
			Nama:       nama,
			JumlahHari: beban[nama],
		})
	}
	return hasil
}
