package erp

import (
	"reflect"
	"testing"

	"github.com/mercalabs/shelfscan/internal/openfoodfacts"
)

func TestMergeDetectedWithMatch(t *testing.T) {
	candidate := Candidate{Name: "Leche Entera"}
	match := &openfoodfacts.Product{
		Code:       "7801234567",
		Categories: "dairy drinks",
		Brands:     "Soprole, Nestle",
		Quantity:   "1L",
	}

	record := Merge(candidate, "gondola_01.jpg", match)

	if record.Status != StatusFound {
		t.Errorf("expected StatusFound, got %v", record.Status)
	}
	if record.Name != "Leche Entera" {
		t.Errorf("unexpected name %q", record.Name)
	}
	if record.Category != "lacteo" {
		t.Errorf("expected category lacteo, got %q", record.Category)
	}
	if record.Supplier != "Soprole" {
		t.Errorf("expected supplier Soprole, got %q", record.Supplier)
	}
	if record.Detail != "1L" {
		t.Errorf("expected detail 1L, got %q", record.Detail)
	}
	if record.Barcode != "7801234567" {
		t.Errorf("expected barcode 7801234567, got %q", record.Barcode)
	}
	if !record.CatalogMatched {
		t.Error("expected CatalogMatched to be true")
	}
	if record.SourceImage != "gondola_01.jpg" {
		t.Errorf("unexpected source image %q", record.SourceImage)
	}
	if record.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", record.Quantity)
	}
}

func TestMergeNotDetectedSentinel(t *testing.T) {
	record := Merge(Candidate{Name: SentinelNotDetected}, "empty_shelf.jpg", nil)

	if record.Status != StatusNotDetected {
		t.Errorf("expected StatusNotDetected, got %v", record.Status)
	}
	if record.Barcode != "" {
		t.Errorf("expected empty barcode, got %q", record.Barcode)
	}
	if record.Category != "" {
		t.Errorf("expected empty category, got %q", record.Category)
	}
	if record.CatalogMatched {
		t.Error("sentinel record must not be catalog matched")
	}
}

func TestMergeErrorSentinelIgnoresMatch(t *testing.T) {
	// A match should never reach the merge for an error sentinel, but if
	// one does it must not leak into the record.
	match := &openfoodfacts.Product{Code: "123", Brands: "Acme"}

	record := Merge(Candidate{Name: SentinelError}, "blurry.jpg", match)

	if record.Status != StatusOCRError {
		t.Errorf("expected StatusOCRError, got %v", record.Status)
	}
	if record.Barcode != "" {
		t.Errorf("expected empty barcode, got %q", record.Barcode)
	}
	if record.Supplier != "" {
		t.Errorf("expected empty supplier, got %q", record.Supplier)
	}
	if record.CatalogMatched {
		t.Error("error record must not be catalog matched")
	}
}

func TestMergeCandidateFieldsTakePrecedence(t *testing.T) {
	candidate := Candidate{
		Name:     "Yogur Natural",
		Detail:   "125g",
		Supplier: "Colun",
		Category: "lacteo",
		Quantity: 4,
	}
	match := &openfoodfacts.Product{
		Code:       "7809999999",
		Categories: "bebida",
		Brands:     "OtherBrand",
		Quantity:   "1kg",
	}

	record := Merge(candidate, "img.jpg", match)

	if record.Detail != "125g" {
		t.Errorf("candidate detail lost: %q", record.Detail)
	}
	if record.Supplier != "Colun" {
		t.Errorf("candidate supplier lost: %q", record.Supplier)
	}
	if record.Category != "lacteo" {
		t.Errorf("candidate category lost: %q", record.Category)
	}
	if record.Quantity != 4 {
		t.Errorf("candidate quantity lost: %d", record.Quantity)
	}
	// Barcode always comes from the match.
	if record.Barcode != "7809999999" {
		t.Errorf("expected match barcode, got %q", record.Barcode)
	}
}

func TestMergeDetectedWithoutMatchStaysFound(t *testing.T) {
	record := Merge(Candidate{Name: "Producto Misterioso"}, "img.jpg", nil)

	if record.Status != StatusFound {
		t.Errorf("detection without catalog match must still be found, got %v", record.Status)
	}
	if record.CatalogMatched {
		t.Error("expected CatalogMatched false without a match")
	}
	if record.Barcode != "" {
		t.Errorf("expected empty barcode, got %q", record.Barcode)
	}
}

func TestMergeOperatorFieldsAlwaysNil(t *testing.T) {
	match := &openfoodfacts.Product{Code: "1", Quantity: "1L"}
	record := Merge(Candidate{Name: "Jugo"}, "img.jpg", match)

	if record.PurchasePrice != nil || record.SalePrice != nil ||
		record.Stock != nil || record.StockMinimum != nil || record.ExpiryDate != nil {
		t.Error("operator-filled fields must be nil at creation")
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	candidate := Candidate{Name: "Galletas Maria", Detail: "200g"}
	match := &openfoodfacts.Product{Code: "42", Categories: "galleta", Brands: "Costa"}

	first := Merge(candidate, "img.jpg", match)
	second := Merge(candidate, "img.jpg", match)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("merge not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestSentinelConstructors(t *testing.T) {
	notDetected := NotDetected("a.jpg")
	if notDetected.Status != StatusNotDetected || notDetected.Name != SentinelNotDetected {
		t.Errorf("unexpected not-detected record: %+v", notDetected)
	}

	extractionErr := ExtractionError("b.jpg")
	if extractionErr.Status != StatusOCRError || extractionErr.Name != SentinelError {
		t.Errorf("unexpected extraction-error record: %+v", extractionErr)
	}
	if extractionErr.SourceImage != "b.jpg" {
		t.Errorf("unexpected source image %q", extractionErr.SourceImage)
	}
}
