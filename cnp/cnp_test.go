package cnp

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		in         string
		sex        string
		year       int
		countyName string
	}{
		{"1850512054675", "M", 1985, "Bihor"},
		{"2850512054675", "F", 1985, "Bihor"},
		{"5040229124321", "M", 2004, "Cluj"},
		{"6121224304112", "F", 2012, "Satu Mare"},
		{"3121224304112", "M", 1812, "Satu Mare"},
		{"7850512054675", "M", 1985, "Bihor"},
		{"8850512054675", "F", 1985, "Bihor"},
		{"9850512054675", "F", 1985, "Bihor"},
	}
	for _, tc := range cases {
		info, err := Decode(tc.in)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", tc.in, err)
		}
		if info.Sex != tc.sex {
			t.Errorf("Decode(%q) sex = %s, want %s", tc.in, info.Sex, tc.sex)
		}
		if info.BirthYear != tc.year {
			t.Errorf("Decode(%q) year = %d, want %d", tc.in, info.BirthYear, tc.year)
		}
		if info.CountyName != tc.countyName {
			t.Errorf("Decode(%q) county = %s, want %s", tc.in, info.CountyName, tc.countyName)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"185051205467",    // 12 digits
		"18505120546751",  // 14 digits
		"185051205467a",   // non-digit
		"0850512054675",   // sex digit 0
		"1851312054675",   // month 13
		"1850532054675",   // day 32
		"5040230124321",   // Feb 30
		"1850230054675",   // Feb 30 non-leap
	}
	for _, in := range cases {
		if _, err := Decode(in); err == nil {
			t.Errorf("Decode(%q) expected error, got nil", in)
		}
	}
}

func TestDecodeUnknownCounty(t *testing.T) {
	// Code 49 is not in the table: county name absent, decode still valid.
	info, err := Decode("1850512494675")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if info.CountyCode != "49" {
		t.Errorf("county code = %s, want 49", info.CountyCode)
	}
	if info.CountyName != "" {
		t.Errorf("county name = %q, want empty", info.CountyName)
	}
	if info.BirthYear != 1985 || info.Sex != "M" {
		t.Errorf("other fields should survive unknown county: %+v", info)
	}
}

func TestClean(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1850512054675", "1850512054675", true},
		{" 1850512054675 ", "1850512054675", true},
		{"1850512054675.0", "1850512054675", true},
		{"185051205467", "", false},
		{"1.850512054675", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Clean(tc.in)
		if ok != tc.ok || got != tc.out {
			t.Errorf("Clean(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.out, tc.ok)
		}
	}
}

func TestLeapDay(t *testing.T) {
	if _, err := Decode("5040229124321"); err != nil {
		t.Fatalf("2004-02-29 is a valid leap day: %v", err)
	}
	if _, err := Decode("5050229124321"); err == nil {
		t.Fatal("2005-02-29 should be invalid")
	}
}
