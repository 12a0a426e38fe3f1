package directory

import (
	"strings"
	"testing"
)

func TestFormatQuotaUnits(t *testing.T) {
	cases := []struct {
		quota int64
		want  string
	}{
		{0, "unlimited"},
		{500, "500.00 bytes"},
		{10 * 1000, "10.00 KB"},
		{2500 * 1000, "2.50 MB"},
		{1000 * 1000 * 1000, "1.00 GB"},
		{2500 * 1000 * 1000 * 1000, "2500.00 GB"},
	}
	for _, tc := range cases {
		if got := FormatQuota(tc.quota); got != tc.want {
			t.Fatalf("FormatQuota(%d) = %q, want %q", tc.quota, got, tc.want)
		}
	}
}

func TestParseQuotaRoundTrip(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"0", "unlimited"},
		{"500", "500.00 bytes"},
		{"10KB", "10.00 KB"},
		{"2.5MB", "2.50 MB"},
		{"1GB", "1.00 GB"},
	}
	for _, tc := range cases {
		quota, err := ParseQuota(tc.raw)
		if err != nil {
			t.Fatalf("ParseQuota(%q) returned error: %v", tc.raw, err)
		}
		if got := FormatQuota(quota); got != tc.want {
			t.Fatalf("FormatQuota(ParseQuota(%q)) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseQuotaSuffixCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"10mb", "10MB", "10Mb", "10 mb"} {
		quota, err := ParseQuota(raw)
		if err != nil {
			t.Fatalf("ParseQuota(%q) returned error: %v", raw, err)
		}
		if quota != 10*1000*1000 {
			t.Fatalf("ParseQuota(%q) = %d, want %d", raw, quota, 10*1000*1000)
		}
	}
}

func TestParseQuotaRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"abc", "", "MB"} {
		_, err := ParseQuota(raw)
		if err == nil {
			t.Fatalf("ParseQuota(%q) succeeded, want error", raw)
		}
		if !IsValidation(err) {
			t.Fatalf("ParseQuota(%q) error %v is not a ValidationError", raw, err)
		}
		if !strings.Contains(err.Error(), "invalid quota") {
			t.Fatalf("ParseQuota(%q) error %q lacks description", raw, err)
		}
	}
}

func TestParseQuotaRejectsUnknownSuffix(t *testing.T) {
	_, err := ParseQuota("10XB")
	if err == nil {
		t.Fatalf("ParseQuota(10XB) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "invalid quota quantifier: 'xb'") {
		t.Fatalf("unexpected error message: %v", err)
	}
}
