package importer

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"42.50", "42.5", true},
		{"42,50", "42.5", true},
		{" 1000 ", "1000", true},
		{"0", "0", true},
		{"-5", "-5", true},
		{"", "", false},
		{"total", "", false},
		{"1.2.3", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseCellDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024/03/05", "2024-03-05", true},
		{"2024-03-05", "2024-03-05", true},
		{"05/03/2024", "2024-03-05", true},
		{"05.03.2024", "2024-03-05", true},
		{"2024/03/05 10:30", "2024-03-05", true},
		{"", "", false},
		{"martie", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCellDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseCellDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseCellDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}
