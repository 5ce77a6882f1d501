package importer

import (
	"testing"

	"github.com/pajudata/scrapyard_backend/utils"
)

func TestParseVanzariRows2024(t *testing.T) {
	rows := [][]string{
		{"Firma", "Data", "Nr. aviz", "Tip", "Cant. livrata", "Pret achizitie", "Scazamant kg", "Scazamant ron", "Cant. receptionata", "Pret vanzare", "Valoare ron", "Adaos", "Transport", "Adaos final", "Serie", "Numar", "Data factura", "Valoare euro", "Observatii"},
		{"Calitex SRL", "2024/03/05", "AV123", "", "1000", "1.20", "10", "12", "990", "1.50", "1485", "285", "100", "185", "CLX", "55", "2024/03/10", "300", "plata la 30 zile"},
		{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"TOTAL MARTIE", "", "", "", "5000", "", "", "", "", "", "7500", "", "", "", "", "", "", "", ""},
	}
	got := ParseVanzariRows(rows, 2024, 3)
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	r := got[0]
	if r.Company != "Calitex SRL" {
		t.Errorf("company = %q", r.Company)
	}
	v := r.Record
	if v.Year != 2024 || v.Month != 3 {
		t.Errorf("year/month = %d/%d", v.Year, v.Month)
	}
	if v.Data.Format("2006-01-02") != "2024-03-05" {
		t.Errorf("data = %s", v.Data)
	}
	if v.NumarAviz == nil || *v.NumarAviz != "AV123" {
		t.Errorf("numar aviz = %v", v.NumarAviz)
	}
	if v.CantitateLivrata == nil || v.CantitateLivrata.String() != "1000" {
		t.Errorf("cantitate livrata = %v", v.CantitateLivrata)
	}
	if v.SerieFactura == nil || *v.SerieFactura != "CLX" {
		t.Errorf("serie factura = %v", v.SerieFactura)
	}
	if v.NumarFactura == nil || *v.NumarFactura != "55" {
		t.Errorf("numar factura = %v", v.NumarFactura)
	}
	if v.DataFactura == nil || v.DataFactura.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("data factura = %v", v.DataFactura)
	}
	if v.ValoareEuro == nil || v.ValoareEuro.String() != "300" {
		t.Errorf("valoare euro = %v", v.ValoareEuro)
	}
	if v.Observatii == nil || *v.Observatii != "plata la 30 zile" {
		t.Errorf("observatii = %v", v.Observatii)
	}
	if v.TipDeseu != nil {
		t.Errorf("tip deseu = %v, want nil for 2024", v.TipDeseu)
	}
}

func TestParseVanzariRowsYearVariants(t *testing.T) {
	base := []string{"Calitex SRL", "2022/05/10", "AV1", "", "100", "1", "0", "0", "100", "2", "200", "100", "0", "100", "Fier"}
	got := ParseVanzariRows([][]string{{"Firma"}, base}, 2022, 5)
	if len(got) != 1 {
		t.Fatalf("rows = %d", len(got))
	}
	if got[0].Record.TipDeseu == nil || *got[0].Record.TipDeseu != "Fier" {
		t.Errorf("2022 col 14 = %v, want tip deseu", got[0].Record.TipDeseu)
	}

	base[14] = "nota interna"
	got = ParseVanzariRows([][]string{{"Firma"}, base}, 2023, 5)
	if got[0].Record.Observatii == nil || *got[0].Record.Observatii != "nota interna" {
		t.Errorf("2023 col 14 = %v, want observatii", got[0].Record.Observatii)
	}
	if got[0].Record.TipDeseu != nil {
		t.Errorf("2023 tip deseu = %v, want nil", got[0].Record.TipDeseu)
	}
}

func TestParseSumarSheet(t *testing.T) {
	rows := [][]string{
		{"SITUATIE VANZARI MARTIE"},
		{"PE TIP DE CLIENTI"},
		{"DENUMIRE", "CANT. LIVRATA", "PRET MEDIU"},
		{"Calitex SRL", "1000", "1.20", "10", "12", "990", "1.50", "1485", "300", "100", "285", "185"},
		{"Remat Bihor", "500", "1.00", "5", "5", "495", "1.30", "643.5", "130", "50", "143.5", "93.5"},
		{"GRAND TOTAL", "1500"},
		{"PE TIP DE DESEURI"},
		{"TIP DESEU", "CANTITATE"},
		{"Fier", "1200", "1440", "300", "0.6", "0.55"},
		{"Cupru", "300", "688.5", "143.5", "0.4", "0.45"},
		{"TOTAL GENERAL", "1500"},
	}
	got := ParseSumarSheet(rows, 2024, 3)
	if len(got.Firme) != 2 {
		t.Fatalf("firme rows = %d, want 2", len(got.Firme))
	}
	if len(got.Deseuri) != 2 {
		t.Fatalf("deseuri rows = %d, want 2", len(got.Deseuri))
	}

	f := got.Firme[0]
	if f.Company != "Calitex SRL" {
		t.Errorf("company = %q", f.Company)
	}
	if utils.DereferencePtr(f.Record.CantitateLivrata).String() != "1000" {
		t.Errorf("cantitate livrata = %v", f.Record.CantitateLivrata)
	}
	if utils.DereferencePtr(f.Record.AdaosFinal).String() != "185" {
		t.Errorf("adaos final = %v", f.Record.AdaosFinal)
	}

	d := got.Deseuri[1]
	if d.TipDeseu != "Cupru" {
		t.Errorf("tip deseu = %q", d.TipDeseu)
	}
	if utils.DereferencePtr(d.ProcentProfit).String() != "0.45" {
		t.Errorf("procent profit = %v", d.ProcentProfit)
	}
	if d.Year != 2024 || d.Month != 3 {
		t.Errorf("year/month = %d/%d", d.Year, d.Month)
	}
}

func TestParseTransportRows(t *testing.T) {
	rows := [][]string{
		{"DESTINATIE", "FIRMA", "DESCRIERE", "SUMA FARA TVA", "TVA", "TOTAL", "TRANSPORTATOR"},
		{"sub-header noise before any month marker", "x"},
		{"IANUARIE"},
		{"Cluj", "Calitex SRL", "fier vechi", "1000", "190", "1190", "Trans SRL"},
		{"", "Remat Bihor", "", "500", "95", "595", ""},
		{"FEBRUARIE"},
		{"Oradea", "", "cupru", "300", "57", "357", "Trans SRL"},
		{"", "", "", "", "", "", ""},
	}
	got := ParseTransportRows(rows, 2024)
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	if got[0].Month != 1 || got[1].Month != 1 || got[2].Month != 2 {
		t.Errorf("months = %d %d %d", got[0].Month, got[1].Month, got[2].Month)
	}
	if got[0].Destinatie == nil || *got[0].Destinatie != "Cluj" {
		t.Errorf("destinatie = %v", got[0].Destinatie)
	}
	if got[1].Destinatie != nil {
		t.Errorf("destinatie = %v, want nil", got[1].Destinatie)
	}
	if got[1].FirmaName == nil || *got[1].FirmaName != "Remat Bihor" {
		t.Errorf("firma = %v", got[1].FirmaName)
	}
	if got[2].Total == nil || got[2].Total.String() != "357" {
		t.Errorf("total = %v", got[2].Total)
	}
}

func TestMonthFromSheetName(t *testing.T) {
	tests := []struct {
		sheet string
		want  int
	}{
		{"Sumar_Ianuarie", 1},
		{"SUMAR MARTIE", 3},
		{"Sumar_Decembrie", 12},
		{"Sumar", 0},
	}
	for _, tt := range tests {
		if got := monthFromSheetName(sheetKey(tt.sheet)); got != tt.want {
			t.Errorf("monthFromSheetName(%q) = %d, want %d", tt.sheet, got, tt.want)
		}
	}
}
