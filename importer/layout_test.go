package importer

import "testing"

func TestDetectLayoutOld(t *testing.T) {
	headers := []string{"Nume", "CNP", "Nr.APP", "Valoare", "Fond mediu", "Impozit", "Achitat", "Deseu Fier (1.20)"}
	got := DetectLayout(headers)
	if got.Name != "old" {
		t.Fatalf("layout = %q, want old", got.Name)
	}
	if got.DocIDCol != 2 || got.ValueCol != 3 || got.PaidCol != 6 || got.WasteStart != 7 {
		t.Errorf("old layout columns = %+v", got)
	}
	if got.PaymentCol != nil || got.IbanCol != nil {
		t.Errorf("old layout should carry no payment columns, got %+v", got)
	}
}

func TestDetectLayoutNew(t *testing.T) {
	headers := []string{"Nume", "CNP", "Nr. APP", "Tip plata", "Cont IBAN", "Valoare", "Fond mediu", "Impozit", "Achitat", "Deseu Fier (1.20)"}
	got := DetectLayout(headers)
	if got.Name != "new" {
		t.Fatalf("layout = %q, want new", got.Name)
	}
	if got.DocIDCol != 2 || got.ValueCol != 5 || got.PaidCol != 8 || got.WasteStart != 9 {
		t.Errorf("new layout columns = %+v", got)
	}
	if got.PaymentCol == nil || *got.PaymentCol != 3 {
		t.Errorf("PaymentCol = %v, want 3", got.PaymentCol)
	}
	if got.IbanCol == nil || *got.IbanCol != 4 {
		t.Errorf("IbanCol = %v, want 4", got.IbanCol)
	}
}

func TestDetectLayoutNewSwapped(t *testing.T) {
	// Some files move Nr.APP behind the payment columns.
	headers := []string{"Nume", "CNP", "Tip plata", "Cont IBAN", "Nr.APP", "Valoare", "Fond mediu", "Impozit", "Achitat", "Deseu Fier (1.20)"}
	got := DetectLayout(headers)
	if got.DocIDCol != 4 || got.ValueCol != 5 || got.PaidCol != 8 || got.WasteStart != 9 {
		t.Errorf("swapped layout columns = %+v", got)
	}
	if got.PaymentCol == nil || *got.PaymentCol != 2 {
		t.Errorf("PaymentCol = %v, want 2", got.PaymentCol)
	}
}

func TestDetectLayoutPartialMarkers(t *testing.T) {
	// Payment column present but the Nr.APP and Valoare markers are mangled:
	// the detector falls back to the fixed shape implied by the payment
	// column's position.
	headers := []string{"Nume", "CNP", "Tip plata", "Cont", "Numar", "Suma"}
	got := DetectLayout(headers)
	if got.DocIDCol != 4 || got.ValueCol != 5 || got.PaidCol != 8 || got.WasteStart != 9 {
		t.Errorf("fallback layout columns = %+v", got)
	}

	headers = []string{"Nume", "CNP", "Numar", "Tip plata", "Cont"}
	got = DetectLayout(headers)
	if got.DocIDCol != 2 {
		t.Errorf("DocIDCol = %d, want 2", got.DocIDCol)
	}
}

func TestDetectLayoutEmptyHeaders(t *testing.T) {
	got := DetectLayout(nil)
	if got.Name != "old" {
		t.Fatalf("layout = %q, want old fallback", got.Name)
	}
}
