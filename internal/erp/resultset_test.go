package erp

import (
	"fmt"
	"testing"
)

func TestSummaryCounts(t *testing.T) {
	rs := NewResultSet()
	for i := 0; i < 6; i++ {
		rs.Append(Record{Name: fmt.Sprintf("p%d", i), Status: StatusFound})
	}
	for i := 0; i < 3; i++ {
		rs.Append(Record{Name: SentinelNotDetected, Status: StatusNotDetected})
	}
	rs.Append(Record{Name: SentinelError, Status: StatusOCRError})

	summary := rs.Summary()

	if summary.Total != 10 {
		t.Errorf("expected total 10, got %d", summary.Total)
	}
	if summary.Found != 6 {
		t.Errorf("expected 6 found, got %d", summary.Found)
	}
	if summary.NotFound != 3 {
		t.Errorf("expected 3 not found, got %d", summary.NotFound)
	}
	if summary.OCRErrors != 1 {
		t.Errorf("expected 1 OCR error, got %d", summary.OCRErrors)
	}
	if summary.SuccessRate != 60.0 {
		t.Errorf("expected success rate 60.0, got %f", summary.SuccessRate)
	}
}

func TestSummaryPartition(t *testing.T) {
	rs := NewResultSet()
	rs.Append(Record{Status: StatusFound, CatalogMatched: true})
	rs.Append(Record{Status: StatusFound})
	rs.Append(Record{Status: StatusNotDetected})

	summary := rs.Summary()

	if summary.Found+summary.NotFound+summary.OCRErrors != summary.Total {
		t.Errorf("statuses do not partition the set: %+v", summary)
	}
	if summary.CatalogMatched != 1 {
		t.Errorf("expected 1 catalog matched, got %d", summary.CatalogMatched)
	}
}

func TestSummaryEmpty(t *testing.T) {
	summary := NewResultSet().Summary()

	if summary.Total != 0 {
		t.Errorf("expected total 0, got %d", summary.Total)
	}
	if summary.SuccessRate != 0 {
		t.Errorf("expected success rate 0 for empty set, got %f", summary.SuccessRate)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	rs := NewResultSet()
	names := []string{"c", "a", "b", "a"}
	for _, name := range names {
		rs.Append(Record{Name: name, Status: StatusFound})
	}

	all := rs.All()
	if len(all) != len(names) {
		t.Fatalf("expected %d records, got %d", len(names), len(all))
	}
	for i, record := range all {
		if record.Name != names[i] {
			t.Errorf("record %d: expected %q, got %q", i, names[i], record.Name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	rs := NewResultSet()
	rs.Append(Record{Name: "original", Status: StatusFound})

	all := rs.All()
	all[0].Name = "mutated"

	if rs.All()[0].Name != "original" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestClear(t *testing.T) {
	rs := NewResultSet()
	rs.Append(Record{Status: StatusFound})
	rs.Clear()

	if rs.Len() != 0 {
		t.Errorf("expected empty set after clear, got %d records", rs.Len())
	}
	if rs.Summary().Total != 0 {
		t.Error("summary not reset after clear")
	}
}
