package demo

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/mercalabs/shelfscan/internal/vision"
)

func TestExtractText(t *testing.T) {
	d := New()

	out, err := d.ExtractText(context.Background(), vision.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := strings.Split(out, ", ")
	if len(names) < 3 || len(names) > 5 {
		t.Errorf("got %d products, want 3 to 5: %q", len(names), out)
	}

	valid := make(map[string]bool, len(sampleProducts))
	for _, product := range sampleProducts {
		valid[product] = true
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !valid[name] {
			t.Errorf("unexpected product %q in %q", name, out)
		}
		if seen[name] {
			t.Errorf("duplicate product %q in %q", name, out)
		}
		seen[name] = true
	}
}

func TestExtractTextConcurrent(t *testing.T) {
	d := New()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				out, err := d.ExtractText(context.Background(), vision.Config{})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if out == "" {
					t.Error("got empty output")
				}
			}
		}()
	}
	wg.Wait()
}
