package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{name: "already e164", raw: "+919385426550", countryCode: "+91", want: "+919385426550"},
		{name: "formatted international", raw: "+1 (555) 111-2222", countryCode: "+1", want: "+15551112222"},
		{name: "national with default code", raw: "9385426550", countryCode: "+91", want: "+919385426550"},
		{name: "national with trunk zero", raw: "09385426550", countryCode: "+91", want: "+919385426550"},
		{name: "country code without plus", raw: "919385426550", countryCode: "+91", want: "+919385426550"},
		{name: "default code without plus", raw: "5551112222", countryCode: "1", want: "+15551112222"},
		{name: "fallback country code", raw: "5551112222", countryCode: "", want: "+15551112222"},
		{name: "empty", raw: "", countryCode: "+1", want: ""},
		{name: "whitespace only", raw: "   ", countryCode: "+1", want: ""},
		{name: "too short international", raw: "+12345", countryCode: "+1", want: ""},
		{name: "letters only", raw: "call me", countryCode: "+1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, tt.countryCode))
		})
	}
}
