package ebay

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const currencyUSD = "USD"

// conditionNames maps internal conditions onto eBay ConditionEnum values.
var conditionNames = map[domain.ItemCondition]string{
	domain.ConditionInapplicable: "NEW",
	domain.ConditionBrandNew:     "NEW",
	domain.ConditionLikeNew:      "LIKE_NEW",
	domain.ConditionVeryGood:     "USED_VERY_GOOD",
	domain.ConditionGood:         "USED_GOOD",
	domain.ConditionAcceptable:   "USED_ACCEPTABLE",
	domain.ConditionDigital:      "NEW_OTHER",
}

// Condition returns the eBay condition for c.
func Condition(c domain.ItemCondition) (string, error) {
	name, ok := conditionNames[c]
	if !ok {
		return "", fmt.Errorf("%w: no eBay condition for %s", domain.ErrSchemaMismatch, c)
	}
	return name, nil
}

// FormatPrice renders minor units as dollars with two fractional digits.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ParsePrice reads a price rendered by FormatPrice back into minor units.
// A single fractional digit is read as tenths ("1.5" is 150).
func ParsePrice(s string) (int64, error) {
	whole, frac, found := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("parsing price %q: invalid whole part", s)
	}
	if !found {
		return dollars * 100, nil
	}

	switch len(frac) {
	case 1:
		frac += "0"
	case 2:
	default:
		return 0, fmt.Errorf("parsing price %q: want one or two fractional digits", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || cents < 0 {
		return 0, fmt.Errorf("parsing price %q: invalid fractional part", s)
	}
	return dollars*100 + cents, nil
}

func usd(cents int64) Amount {
	return Amount{Currency: currencyUSD, Value: FormatPrice(cents)}
}

// SortImages returns images ordered by priority, then by id.
func SortImages(images []domain.ItemImage) []domain.ItemImage {
	sorted := slices.Clone(images)
	slices.SortStableFunc(sorted, func(a, b domain.ItemImage) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return sorted
}

// ImageURL returns the public URL of img on the static image host.
func ImageURL(baseURL, subpath string, img *domain.ItemImage) string {
	base := strings.TrimRight(baseURL, "/")
	if subpath = strings.Trim(subpath, "/"); subpath != "" {
		base += "/" + subpath
	}
	return base + "/" + img.FileName()
}

func imageURLs(baseURL, subpath string, images []domain.ItemImage) []string {
	sorted := SortImages(images)
	urls := make([]string, 0, len(sorted))
	for i := range sorted {
		urls = append(urls, ImageURL(baseURL, subpath, &sorted[i]))
	}
	return urls
}
