package models

// PreferensiHariRequest adalah satu entri preferensi pada payload
// pendaftaran karyawan.
type PreferensiHariRequest struct {
	Hari  string   `json:"hari"`  // "Monday".."Sunday"
	Shift []string `json:"shift"` // urut prioritas, ["Morning","Afternoon","Evening"]
}

// TambahKaryawanRequest adalah payload pendaftaran karyawan beserta
// preferensi shift mingguannya.
type TambahKaryawanRequest struct {
	Nama       string                  `json:"nama"`
	Preferensi []PreferensiHariRequest `json:"preferensi"`
}

// SlotJadwalResponse adalah satu slot shift pada jadwal final.
type SlotJadwalResponse struct {
	Shift    string   `json:"shift"`
	Karyawan []string `json:"karyawan"`
}

// HariJadwalResponse adalah satu hari pada jadwal final, dengan slot
// dalam urutan shift tetap.
type HariJadwalResponse struct {
	Hari string               `json:"hari"`
	Slot []SlotJadwalResponse `json:"slot"`
}

// RingkasanKaryawanResponse adalah jumlah hari kerja satu karyawan pada
// jadwal final.
type RingkasanKaryawanResponse struct {
	Nama       string `json:"nama"`
	JumlahHari int    `json:"jumlah_hari"`
}
