package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHari(t *testing.T) {
	t.Run("label valid", func(t *testing.T) {
		hari, ok := ParseHari("Monday")
		require.True(t, ok)
		assert.Equal(t, HariMonday, hari)

		hari, ok = ParseHari("Sunday")
		require.True(t, ok)
		assert.Equal(t, HariSunday, hari)
	})

	t.Run("label tidak valid", func(t *testing.T) {
		_, ok := ParseHari("Funday")
		assert.False(t, ok)

		// Case sensitive sesuai kontrak collaborator
		_, ok = ParseHari("monday")
		assert.False(t, ok)
	})
}

func TestSemuaHari_UrutanKalender(t *testing.T) {
	semua := SemuaHari()
	require.Len(t, semua, JumlahHari)

	label := make([]string, 0, JumlahHari)
	for _, hari := range semua {
		label = append(label, hari.String())
	}
	assert.Equal(t, []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}, label)
}

func TestParseShift(t *testing.T) {
	t.Run("label valid", func(t *testing.T) {
		shift, ok := ParseShift("Afternoon")
		require.True(t, ok)
		assert.Equal(t, ShiftAfternoon, shift)
	})

	t.Run("label tidak valid", func(t *testing.T) {
		_, ok := ParseShift("Midnight")
		assert.False(t, ok)
	})
}

func TestSemuaShift_UrutanTetap(t *testing.T) {
	semua := SemuaShift()
	require.Len(t, semua, JumlahShift)
	assert.Equal(t, "Morning", semua[0].String())
	assert.Equal(t, "Afternoon", semua[1].String())
	assert.Equal(t, "Evening", semua[2].String())
}
