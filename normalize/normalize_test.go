package normalize

import "testing"

func TestLocality(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"Com. Sacuieu", "Sacueni"},
		{"Comuna Sacuieni", "Sacueni"},
		{"Oradea", "Oradea"},
		{"ORADSEA", "Oradea"},
		{"Municipiul Oradea", "Oradea"},
		{"Mun. Oradea", "Oradea"},
		{"Oras Simleu Silvaniei", "Simleul Silvaniei"},
		{"simleul   sivaniei", "Simleul Silvaniei"},
		{"Sat Sinmartin", "Sanmartin"},
		{"  salonta  ", "Salonta"},
		{"Oraş Alesd", "Alesd"},
	}
	for _, tc := range cases {
		got, ok := Locality(tc.in)
		if !ok {
			t.Fatalf("Locality(%q) not ok", tc.in)
		}
		if got != tc.out {
			t.Errorf("Locality(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestLocalityEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		if _, ok := Locality(in); ok {
			t.Errorf("Locality(%q) expected not ok", in)
		}
	}
}

func TestLocalityTypoIsWholeStringOnly(t *testing.T) {
	// "orade" is a known typo of Oradea, but a name merely containing it
	// must not be rewritten.
	got, ok := Locality("Oradel")
	if !ok || got != "Oradel" {
		t.Errorf("Locality(Oradel) = %q, substring typo matching is not allowed", got)
	}
}

func TestCompanyKey(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"Calitex SRL", "CALITEX"},
		{"CALITEX S.R.L.", "CALITEX"},
		{"Remat Bihor SA", "REMAT BIHOR"},
		{"PW Spiz Spolka Jawna", "PW SPIZ"},
		{"Solide Recycling BV", "SOLIDE RECYCLING"},
		{"Metall Handel GmbH", "METALL HANDEL"},
		{"recimat", "RECIMAT"},
	}
	for _, tc := range cases {
		got, ok := CompanyKey(tc.in)
		if !ok {
			t.Fatalf("CompanyKey(%q) not ok", tc.in)
		}
		if got != tc.out {
			t.Errorf("CompanyKey(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestClean(t *testing.T) {
	if _, ok := Clean("   "); ok {
		t.Error("Clean of whitespace should not be ok")
	}
	got, ok := Clean("  a   b \t c ")
	if !ok || got != "a b c" {
		t.Errorf("Clean collapse = %q", got)
	}
}

func TestPersonName(t *testing.T) {
	got, _ := PersonName("POP  IOAN")
	if got != "Pop Ioan" {
		t.Errorf("PersonName = %q, want Pop Ioan", got)
	}
}

func TestWasteLabel(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"Deseu Aluminiu Jenti", "Deseu Aluminiu JANTE"},
		{"Deseu Harttie", "Deseu HARTIE"},
		{"Deseu Aluminui", "Deseu ALUMINIU"},
		{"Deseu Cupru", "Deseu Cupru"},
	}
	for _, tc := range cases {
		if got := WasteLabel(tc.in); got != tc.out {
			t.Errorf("WasteLabel(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
