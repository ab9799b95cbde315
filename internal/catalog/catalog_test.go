package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if got := len(c.Services()); got != 6 {
		t.Fatalf("services = %d, want 6", got)
	}
	if got := len(c.Regions()); got != 14 {
		t.Fatalf("regions = %d, want 14", got)
	}
	if got := c.DefaultRegion(); got != "الجزائر العاصمة" {
		t.Errorf("default region = %q, want %q", got, "الجزائر العاصمة")
	}

	svc, ok := c.Lookup("deep-clean")
	if !ok {
		t.Fatal("deep-clean not found")
	}
	if svc.PriceStart != 4500 {
		t.Errorf("deep-clean price = %d, want 4500", svc.PriceStart)
	}
	if svc.Title != "تنظيف عميق" {
		t.Errorf("deep-clean title = %q", svc.Title)
	}

	if got := len(c.PaymentMethods()); got != 2 {
		t.Fatalf("payment methods = %d, want 2", got)
	}
	if got := c.DefaultPaymentMethod(); got != "cash" {
		t.Errorf("default payment method = %q, want cash", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	c := Default()
	if _, ok := c.Lookup("window-clean"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestPayLater(t *testing.T) {
	c := Default()
	if !c.PayLater("cash") {
		t.Error("cash should be pay-later")
	}
	if c.PayLater("card") {
		t.Error("card should not be pay-later")
	}
	if c.PayLater("bitcoin") {
		t.Error("unknown method should not be pay-later")
	}
}

func TestNearest(t *testing.T) {
	c := Default()
	if got := c.Nearest("deep-cleen"); got != "deep-clean" {
		t.Errorf("Nearest(deep-cleen) = %q, want deep-clean", got)
	}
	if got := c.Nearest("kitchn-clean"); got != "kitchen-clean" {
		t.Errorf("Nearest(kitchn-clean) = %q, want kitchen-clean", got)
	}
	if got := c.Nearest("zzzzzzzzzzzzzzzz"); got != "" {
		t.Errorf("Nearest(garbage) = %q, want empty", got)
	}
}

func TestParseNoServices(t *testing.T) {
	data := []byte(`
locations = ["A"]

[[payment_method]]
id = "cash"
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for empty service list")
	}
}

func TestParseMissingID(t *testing.T) {
	data := []byte(`
locations = ["A"]

[[service]]
title = "X"
price_start = 100

[[payment_method]]
id = "cash"
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for missing service id")
	}
}

func TestParseDuplicateID(t *testing.T) {
	data := []byte(`
locations = ["A"]

[[service]]
id = "x"
title = "X"
price_start = 100

[[service]]
id = "x"
title = "X again"
price_start = 200

[[payment_method]]
id = "cash"
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for duplicate service id")
	}
}

func TestParseNonPositivePrice(t *testing.T) {
	data := []byte(`
locations = ["A"]

[[service]]
id = "x"
title = "X"
price_start = 0

[[payment_method]]
id = "cash"
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for zero price")
	}
}

func TestParseMalformedTOML(t *testing.T) {
	if _, err := Parse([]byte(`not toml [[[`)); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("default catalog not written: %v", statErr)
	}
	if len(c.Services()) != 6 {
		t.Errorf("services = %d, want 6", len(c.Services()))
	}

	// Second load reads the file it just wrote.
	c2, err := Load(path)
	if err != nil {
		t.Fatalf("Load (second): %v", err)
	}
	if len(c2.Services()) != len(c.Services()) {
		t.Errorf("reload services = %d, want %d", len(c2.Services()), len(c.Services()))
	}
}
