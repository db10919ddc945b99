package models

// Shift adalah indeks slot shift dalam satu hari.
type Shift int

const (
	ShiftMorning Shift = iota
	ShiftAfternoon
	ShiftEvening
)

// JumlahShift adalah banyaknya shift per hari.
const JumlahShift = 3

var namaShift = [JumlahShift]string{"Morning", "Afternoon", "Evening"}

func (s Shift) String() string {
	if s < 0 || s >= JumlahShift {
		return "Unknown"
	}
	return namaShift[s]
}

// SemuaShift mengembalikan seluruh shift dalam urutan tetap.
func SemuaShift() [JumlahShift]Shift {
	return [JumlahShift]Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}
}

// ParseShift mengonversi label shift (misal "Morning") menjadi Shift.
func ParseShift(s string) (Shift, bool) {
	for i, nama := range namaShift {
		if s == nama {
			return Shift(i), true
		}
	}
	return 0, false
}
