package importer

import "testing"

func TestMarkDocument(t *testing.T) {
	d := NewDimensions(nil)
	if d.MarkDocument("1234") {
		t.Error("first sighting reported as duplicate")
	}
	if !d.MarkDocument("1234") {
		t.Error("second sighting not reported as duplicate")
	}
	if d.MarkDocument("5678") {
		t.Error("unrelated id reported as duplicate")
	}
}

func TestMarkDocumentAfterSeed(t *testing.T) {
	// Document ids already stored by a previous run are seeded as seen, so
	// re-importing the same files contributes no transactions and no items.
	d := NewDimensions(nil)
	d.seedDocuments([]string{"1234", "5678"})
	if !d.MarkDocument("1234") {
		t.Error("seeded id not reported as duplicate")
	}
	if !d.MarkDocument("5678") {
		t.Error("seeded id not reported as duplicate")
	}
	if d.MarkDocument("9999") {
		t.Error("unseen id reported as duplicate")
	}
}

func TestObserveAndMissingPartners(t *testing.T) {
	d := NewDimensions(nil)
	d.MarkPartnerKnown("2900101123457")

	d.Observe(PartnerObservation{Cnp: "2900101123457", Name: "IONESCU MARIA"})
	d.Observe(PartnerObservation{Cnp: "1850512054675", Name: "POPESCU ION"})
	d.Observe(PartnerObservation{Cnp: "1850512054675", Name: "POPESCU I."})
	d.Observe(PartnerObservation{Cnp: "", Name: "FARA CNP"})
	d.Observe(PartnerObservation{Cnp: "", Name: "FARA CNP"})

	missing := d.MissingPartners()
	if len(missing) != 1 {
		t.Fatalf("missing = %d, want 1", len(missing))
	}
	p := missing[0]
	if p.Cnp != "1850512054675" {
		t.Errorf("cnp = %q", p.Cnp)
	}
	// First observed name wins; it is title-cased on the way out.
	if p.Name == nil || *p.Name != "Popescu Ion" {
		t.Errorf("name = %v", p.Name)
	}
	if p.Sex == nil || *p.Sex != "M" {
		t.Errorf("sex = %v", p.Sex)
	}
	if p.CountyFromCnp == nil || *p.CountyFromCnp != "Bihor" {
		t.Errorf("county = %v", p.CountyFromCnp)
	}

	if d.NameOnlyCount() != 1 {
		t.Errorf("name-only count = %d, want 1", d.NameOnlyCount())
	}

	// The drained partners are now known; a second drain is empty.
	d.Observe(PartnerObservation{Cnp: "1850512054675", Name: "POPESCU ION"})
	if got := d.MissingPartners(); len(got) != 0 {
		t.Errorf("second drain = %d rows, want 0", len(got))
	}
}
