package erp

import "github.com/mercalabs/shelfscan/internal/openfoodfacts"

// Merge combines one extracted candidate with an optional catalog match
// into a Record. The candidate's own fields take precedence; catalog
// fields only fill gaps. The barcode always comes from the match.
//
// Sentinel candidates never take catalog data, even if a match is passed
// in by mistake.
func Merge(candidate Candidate, imageName string, match *openfoodfacts.Product) Record {
	status := classify(candidate.Name)

	quantity := candidate.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	record := Record{
		Name:        candidate.Name,
		Detail:      candidate.Detail,
		Quantity:    quantity,
		SourceImage: imageName,
		Supplier:    candidate.Supplier,
		Category:    candidate.Category,
		Status:      status,
	}

	if status != StatusFound {
		return record
	}

	if match != nil {
		record.CatalogMatched = true
		record.Barcode = match.Code

		normalized := NormalizeMatch(match)
		if record.Category == "" {
			record.Category = normalized.Category
		}
		if record.Supplier == "" {
			record.Supplier = normalized.Supplier
		}
		if record.Detail == "" {
			record.Detail = normalized.Detail
		}
	}

	return record
}

// NotDetected builds the sentinel record appended when the vision model
// finds no products in an image.
func NotDetected(imageName string) Record {
	return Merge(Candidate{Name: SentinelNotDetected}, imageName, nil)
}

// ExtractionError builds the sentinel record appended when the vision
// call itself fails for an image.
func ExtractionError(imageName string) Record {
	return Merge(Candidate{Name: SentinelError}, imageName, nil)
}

// IsSentinel reports whether name is one of the extraction sentinels
// rather than a real product name. Sentinel candidates never warrant a
// catalog lookup.
func IsSentinel(name string) bool {
	return classify(name) != StatusFound
}

func classify(name string) Status {
	switch name {
	case SentinelError:
		return StatusOCRError
	case SentinelNotDetected:
		return StatusNotDetected
	}
	return StatusFound
}
