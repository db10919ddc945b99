package models

// PreferensiHarian memetakan hari ke daftar shift pilihan karyawan,
// terurut berdasarkan prioritas (elemen pertama = pilihan pertama).
// Hari yang tidak ada dalam map berarti karyawan tidak mengajukan
// preferensi pada hari tersebut. Daftar shift tidak boleh mengandung
// duplikat dan panjangnya 0-3.
type PreferensiHarian map[Hari][]Shift

// Salin membuat salinan dalam agar preferensi yang sudah terdaftar
// tidak bisa dimutasi oleh pemanggil.
func (p PreferensiHarian) Salin() PreferensiHarian {
	salinan := make(PreferensiHarian, len(p))
	for hari, daftar := range p {
		urutan := make([]Shift, len(daftar))
		copy(urutan, daftar)
		salinan[hari] = urutan
	}
	return salinan
}
