package importer

import "testing"

func TestParseWasteHeader(t *testing.T) {
	tests := []struct {
		header   string
		category string
		name     string
		price    string
	}{
		{"Deseu Fier (1.20)", "Fier", "Deseu Fier", "1.2"},
		{"Deseu Cupru (36.00)", "Cupru", "Deseu Cupru", "36"},
		{"Deseu Cablu Cupru (18.00)", "Cablu Cupru", "Deseu Cablu Cupru", "18"},
		{"Deseu Cablu Aluminiu (4.50)", "Cablu Aluminiu", "Deseu Cablu Aluminiu", "4.5"},
		{"Deseu Aluminiu Radiator Cupru (15.50)", "Aluminiu Radiator Cupru", "Deseu Aluminiu Radiator Cupru", "15.5"},
		{"Deseu Aluminiu (5.00)", "Aluminiu", "Deseu Aluminiu", "5"},
		{"Deseuri Acumulatori (2.80)", "Acumulatori", "Deseuri Acumulatori", "2.8"},
		{"Deseu DEEE (1.00)", "DEEE", "Deseu DEEE", "1"},
		{"Deseu Placi Electronice (8.00)", "DEEE", "Deseu Placi Electronice", "8"},
		{"Deseu Carton (0.30)", "Carton", "Deseu Carton", "0.3"},
		{"Deseu Hartie (0.30)", "Carton", "Deseu Hartie", "0.3"},
		{"Deseu Pet (0.50)", "Plastic", "Deseu Pet", "0.5"},
		{"Deseu Folie (0.40)", "Plastic", "Deseu Folie", "0.4"},
		{"Deseu Neferos Mix (3.00)", "Neferos Mix", "Deseu Neferos Mix", "3"},
		{"Deseu Jenti Aluminiu (4.00)", "Aluminiu", "Deseu JANTE Aluminiu", "4"},
		{"Deseu Motoare Electrice (1.50)", "Altele", "Deseu Motoare Electrice", "1.5"},
		{"Deseu Fier", "Fier", "Deseu Fier", ""},
	}
	for _, tt := range tests {
		got := ParseWasteHeader(tt.header)
		if got.Category != tt.category {
			t.Errorf("ParseWasteHeader(%q).Category = %q, want %q", tt.header, got.Category, tt.category)
		}
		if got.Name != tt.name {
			t.Errorf("ParseWasteHeader(%q).Name = %q, want %q", tt.header, got.Name, tt.name)
		}
		if tt.price == "" {
			if got.Price != nil {
				t.Errorf("ParseWasteHeader(%q).Price = %v, want nil", tt.header, got.Price)
			}
		} else if got.Price == nil || got.Price.String() != tt.price {
			t.Errorf("ParseWasteHeader(%q).Price = %v, want %s", tt.header, got.Price, tt.price)
		}
	}
}

func TestClassifyOrderBeatsGenericRules(t *testing.T) {
	// A label matching several keywords must land on the most specific rule,
	// not on whichever generic single-keyword rule comes first.
	got := ParseWasteHeader("Deseu Aluminiu Radiator Cupru (15.50)")
	if got.Category != "Aluminiu Radiator Cupru" {
		t.Fatalf("category = %q, want Aluminiu Radiator Cupru", got.Category)
	}
	got = ParseWasteHeader("Deseu Cupru (36.00)")
	if got.Category != "Cupru" {
		t.Fatalf("category = %q, want Cupru", got.Category)
	}
}

func TestIsWasteColumn(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"Deseu Fier (1.20)", true},
		{"Deseuri Acumulatori", true},
		{"Valoare", false},
		{"Achitat", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsWasteColumn(tt.header); got != tt.want {
			t.Errorf("IsWasteColumn(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
