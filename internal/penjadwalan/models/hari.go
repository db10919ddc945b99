package models

// Hari adalah indeks hari dalam grid jadwal mingguan.
// Urutan hari bersifat tetap (Monday..Sunday) dan menjadi urutan iterasi
// untuk seluruh proses penjadwalan.
type Hari int

const (
	HariMonday Hari = iota
	HariTuesday
	HariWednesday
	HariThursday
	HariFriday
	HariSaturday
	HariSunday
)

// JumlahHari adalah banyaknya hari dalam satu minggu jadwal.
const JumlahHari = 7

var namaHari = [JumlahHari]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (h Hari) String() string {
	if h < 0 || h >= JumlahHari {
		return "Unknown"
	}
	return namaHari[h]
}

// SemuaHari mengembalikan seluruh hari dalam urutan kalender tetap.
func SemuaHari() [JumlahHari]Hari {
	return [JumlahHari]Hari{
		HariMonday, HariTuesday, HariWednesday, HariThursday,
		HariFriday, HariSaturday, HariSunday,
	}
}

// ParseHari mengonversi label hari (misal "Monday") menjadi Hari.
func ParseHari(s string) (Hari, bool) {
	for i, nama := range namaHari {
		if s == nama {
			return Hari(i), true
		}
	}
	return 0, false
}
