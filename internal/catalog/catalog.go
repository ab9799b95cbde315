package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

// ---------------------------------------------------------------------------
// Catalog types (TOML-based)
// ---------------------------------------------------------------------------

// Service describes one bookable service. Prices are in whole dinars.
type Service struct {
	ID          string  `toml:"id"`
	Title       string  `toml:"title"`
	TitleEn     string  `toml:"title_en"`
	Description string  `toml:"description"`
	PriceStart  int     `toml:"price_start"`
	Icon        string  `toml:"icon"`
	Rating      float64 `toml:"rating"`
	Reviews     int     `toml:"reviews"`
}

// PaymentMethod describes one way to pay. PayLater methods settle after the
// service is performed; everything else is charged at submission.
type PaymentMethod struct {
	ID            string `toml:"id"`
	TitleAr       string `toml:"title_ar"`
	TitleEn       string `toml:"title_en"`
	DescriptionAr string `toml:"description_ar"`
	DescriptionEn string `toml:"description_en"`
	Icon          string `toml:"icon"`
	PayLater      bool   `toml:"pay_later"`
}

// catalogFile is the top-level TOML structure.
type catalogFile struct {
	Locations     []string        `toml:"locations"`
	Service       []Service       `toml:"service"`
	PaymentMethod []PaymentMethod `toml:"payment_method"`
}

// Catalog is the read-only service reference data. It is loaded once at
// startup and never mutated afterwards.
type Catalog struct {
	services []Service
	regions  []string
	methods  []PaymentMethod
}

const defaultCatalogTOML = `# Nadhif service catalog.
# Edit this file to change services, covered wilayas or payment methods.

locations = [
	"الجزائر العاصمة", "البليدة", "تيبازة", "بومرداس", "وهران",
	"قسنطينة", "سطيف", "تيزي وزو", "عنابة", "بجاية",
	"تلمسان", "جيجل", "باتنة", "بسكرة",
]

[[service]]
id = "deep-clean"
title = "تنظيف عميق"
title_en = "Deep Clean"
description = "تنظيف شامل للمنازل والفلل يشمل الأرضيات، النوافذ، والزوايا الصعبة."
price_start = 4500
icon = "sparkles"
rating = 4.9
reviews = 142

[[service]]
id = "standard-clean"
title = "تنظيف دوري"
title_en = "Standard Clean"
description = "حل مثالي للحفاظ على نظافة منزلك أسبوعياً أو شهرياً بأسعار تنافسية."
price_start = 2800
icon = "shield"
rating = 4.6
reviews = 95

[[service]]
id = "sofa-clean"
title = "غسيل الأرائك والسجاد"
title_en = "Sofa & Carpet Clean"
description = "إزالة البقع والروائح الكريهة من المفروشات باستخدام تقنية البخار المتطورة."
price_start = 3500
icon = "armchair"
rating = 4.8
reviews = 68

[[service]]
id = "kitchen-clean"
title = "تنظيف المطابخ"
title_en = "Kitchen Clean"
description = "إزالة الدهون المستعصية وتنظيف الأفران والثلاجات ليعود مطبخك جديداً."
price_start = 3000
icon = "utensils"
rating = 4.8
reviews = 42

[[service]]
id = "quick-clean"
title = "تنظيف سريع"
title_en = "Quick Clean"
description = "خدمة سريعة للغرف الرئيسية قبل الحفلات أو المناسبات المفاجئة."
price_start = 1800
icon = "zap"
rating = 4.5
reviews = 52

[[service]]
id = "move-in"
title = "تنظيف بعد البناء"
title_en = "Post-Construction Clean"
description = "تجهيز المنازل الجديدة أو المرممة وإزالة بقايا الطلاء والجبس بالكامل."
price_start = 9500
icon = "home"
rating = 4.8
reviews = 38

[[payment_method]]
id = "cash"
title_ar = "الدفع نقداً"
title_en = "Cash on Service"
description_ar = "الدفع عند الانتهاء من الخدمة"
description_en = "Pay after service completion"
icon = "wallet"
pay_later = true

[[payment_method]]
id = "card"
title_ar = "البطاقة الذهبية / CIB"
title_en = "Edahabia / CIB"
description_ar = "دفع إلكتروني آمن وسريع"
description_en = "Fast and secure online payment"
icon = "credit-card"
pay_later = false
`

// ---------------------------------------------------------------------------
// Load / parse
// ---------------------------------------------------------------------------

// Load reads the catalog from path. If the file doesn't exist, it is created
// with the built-in default catalog first.
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, fmt.Errorf("create catalog dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultCatalogTOML), 0o644); wErr != nil {
			return nil, fmt.Errorf("write default catalog: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse parses TOML bytes into a validated catalog.
func Parse(data []byte) (*Catalog, error) {
	var cf catalogFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog.toml: %w", err)
	}
	if len(cf.Service) == 0 {
		return nil, fmt.Errorf("no services defined in catalog")
	}
	if len(cf.Locations) == 0 {
		return nil, fmt.Errorf("no locations defined in catalog")
	}
	if len(cf.PaymentMethod) == 0 {
		return nil, fmt.Errorf("no payment methods defined in catalog")
	}

	seen := make(map[string]bool, len(cf.Service))
	for i, s := range cf.Service {
		if s.ID == "" {
			return nil, fmt.Errorf("service[%d]: id is required", i)
		}
		if s.Title == "" {
			return nil, fmt.Errorf("service[%d] %q: title is required", i, s.ID)
		}
		if s.PriceStart <= 0 {
			return nil, fmt.Errorf("service[%d] %q: price_start must be positive", i, s.ID)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("service[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}
	for i, pm := range cf.PaymentMethod {
		if pm.ID == "" {
			return nil, fmt.Errorf("payment_method[%d]: id is required", i)
		}
	}

	return &Catalog{
		services: cf.Service,
		regions:  cf.Locations,
		methods:  cf.PaymentMethod,
	}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse([]byte(defaultCatalogTOML))
	if err != nil {
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return c
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// Lookup returns the service with the given id.
func (c *Catalog) Lookup(id string) (Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Services returns all services in catalog order.
func (c *Catalog) Services() []Service { return c.services }

// Regions returns the covered wilayas in catalog order.
func (c *Catalog) Regions() []string { return c.regions }

// DefaultRegion returns the region pre-selected for new bookings.
func (c *Catalog) DefaultRegion() string { return c.regions[0] }

// PaymentMethods returns all payment methods in catalog order.
func (c *Catalog) PaymentMethods() []PaymentMethod { return c.methods }

// DefaultPaymentMethod returns the id of the method pre-selected on the
// payment step.
func (c *Catalog) DefaultPaymentMethod() string { return c.methods[0].ID }

// Method returns the payment method with the given id.
func (c *Catalog) Method(id string) (PaymentMethod, bool) {
	for _, pm := range c.methods {
		if pm.ID == id {
			return pm, true
		}
	}
	return PaymentMethod{}, false
}

// PayLater reports whether the method settles after service completion.
// Unknown methods report false; callers that need to reject unknown ids
// should use Method.
func (c *Catalog) PayLater(id string) bool {
	pm, ok := c.Method(id)
	return ok && pm.PayLater
}

// Nearest returns the id of the known service closest to the given id, for
// "did you mean" suggestions when a lookup fails. Returns "" when nothing is
// plausibly close.
func (c *Catalog) Nearest(id string) string {
	best := ""
	bestDist := -1
	for _, s := range c.services {
		dist := levenshtein.ComputeDistance(strings.ToLower(id), strings.ToLower(s.ID))
		if bestDist == -1 || dist < bestDist {
			best = s.ID
			bestDist = dist
		}
	}
	// More than half the id differing is not a plausible typo.
	if best == "" || bestDist > len(best)/2 {
		return ""
	}
	return best
}
