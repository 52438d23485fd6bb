package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInquiryRequest_WithDefaults(t *testing.T) {
	filled := InquiryRequest{}.WithDefaults()
	assert.Equal(t, DefaultInquiryName, filled.Name)
	assert.Equal(t, DefaultInquiryService, filled.Service)
	assert.Equal(t, DefaultInquiryContent, filled.Content)

	kept := InquiryRequest{Name: "佐藤", Service: "フェンス設置", Content: "  "}.WithDefaults()
	assert.Equal(t, "佐藤", kept.Name)
	assert.Equal(t, "フェンス設置", kept.Service)
	assert.Equal(t, DefaultInquiryContent, kept.Content)
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		value    string
		expected ContentType
		ok       bool
	}{
		{"", ContentTypeAuto, true},
		{"auto", ContentTypeAuto, true},
		{"showcase", ContentTypeShowcase, true},
		{"施工事例", ContentTypeShowcase, true},
		{"seasonal-proposal", ContentTypeProposal, true},
		{"testimonial", ContentTypeTestimonial, true},
		{"お客様の声", ContentTypeTestimonial, true},
		{"blog", ContentType("blog"), false},
	}

	for _, tt := range tests {
		got, ok := ParseContentType(tt.value)
		assert.Equal(t, tt.expected, got, tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
	}
}

func TestBusinessProfileSignatures(t *testing.T) {
	profile := BusinessProfile{
		CompanyName:  "エクステリア工房",
		StaffName:    "田中",
		ContactEmail: "info@exterior-example.com",
		ContactPhone: "090-1234-5678",
	}

	assert.Equal(t, "エクステリア工房\n担当: 田中\n電話: 090-1234-5678", profile.PostSignature())
	assert.Equal(t, "エクステリア工房\n担当: 田中\nメール: info@exterior-example.com\n電話: 090-1234-5678", profile.EmailSignature())
}
