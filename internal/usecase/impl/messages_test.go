package impl

import (
	"strings"
	"testing"
	"unicode/utf8"

	"bloodbridge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderDonorAlert_UrgentPrefix(t *testing.T) {
	request := &entity.BloodRequest{
		PatientName: "Rahim",
		BloodGroup:  entity.BloodGroupABPositive,
		Units:       450,
		PostalCode:  "1207",
		Urgent:      true,
	}

	msg := renderDonorAlert(request)
	assert.True(t, strings.HasPrefix(msg, "URGENT: "))
	assert.Contains(t, msg, "AB+")
	assert.Contains(t, msg, "1207")
}

func TestRenderDonorAlert_FallsBackWithoutPostalCode(t *testing.T) {
	request := &entity.BloodRequest{
		PatientName: "Rahim",
		BloodGroup:  entity.BloodGroupONegative,
		Units:       300,
	}

	msg := renderDonorAlert(request)
	assert.Contains(t, msg, "your area")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "abc", truncate("abc", 0))
}

func TestTruncate_KeepsRuneBoundary(t *testing.T) {
	// Bengali patient names are three bytes per rune; a byte-index cut
	// must back off to the rune start instead of emitting a broken rune.
	name := "রহিম"
	assert.Equal(t, "রহি", truncate(name, 10))
	assert.Equal(t, "রহি", truncate(name, 9))
	assert.Equal(t, "রহ", truncate(name, 8))
	assert.True(t, utf8.ValidString(truncate(name, 7)))
	assert.Equal(t, "", truncate(name, 2))
}
