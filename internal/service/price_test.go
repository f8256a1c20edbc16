package service

import "testing"

func TestSanitizePrice(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"$12.50", "12.5", true},
		{"7.25", "7.25", true},
		{"12.50 USD", "12.5", true},
		{"1,299.99", "1299.99", true},
		{"$0.00", "0", true},
		{"free", "", false},
		{"", "", false},
		{"..", "", false},
		{"9.99.99", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := sanitizePrice(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("sanitizePrice(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("sanitizePrice(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}
