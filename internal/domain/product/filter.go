package product

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll is the wildcard value meaning "no constraint on this
// dimension".
const FilterAll = "all"

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByPrice    SortKey = "price"
	SortByCategory SortKey = "category"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByName, SortByPrice, SortByCategory:
		return true
	default:
		return false
	}
}

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByName, nil
	}
	k := SortKey(s)
	if !k.IsValid() {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

// Filter holds the active browse selections. Each dimension is either
// FilterAll or a specific value; exactly one sort key is active.
//
// Category matches are exact and case-sensitive: filter values come
// from the catalog itself, so case always agrees.
type Filter struct {
	Gender   string
	Category string
	Size     string
	Color    string
	Sort     SortKey
}

// DefaultFilter is the initial browse state: every dimension
// unconstrained, sorted by name.
func DefaultFilter() Filter {
	return Filter{
		Gender:   FilterAll,
		Category: FilterAll,
		Size:     FilterAll,
		Color:    FilterAll,
		Sort:     SortByName,
	}
}

// IsDefault reports whether no dimension is constrained and the sort
// is the initial one ("Clear All" visibility in the UI).
func (f Filter) IsDefault() bool {
	return f.Gender == FilterAll &&
		f.Category == FilterAll &&
		f.Size == FilterAll &&
		f.Color == FilterAll &&
		f.Sort == SortByName
}

func (f Filter) matches(p Product) bool {
	if f.Gender != FilterAll && !strings.EqualFold(p.Gender, f.Gender) {
		return false
	}
	if f.Category != FilterAll && p.Category != f.Category {
		return false
	}
	if f.Size != FilterAll && !p.HasSize(f.Size) {
		return false
	}
	if f.Color != FilterAll {
		found := false
		for _, c := range p.Colors {
			if c.Name == f.Color {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply filters list conjunctively by f and sorts the survivors by the
// active sort key. The sort is stable, so ties keep their filtered
// order. The input slice is never mutated; calling Apply twice with
// identical inputs yields identical output.
func Apply(list []Product, f Filter) []Product {
	filtered := make([]Product, 0, len(list))
	for _, p := range list {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}

	switch f.Sort {
	case SortByName:
		c := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortByCategory:
		c := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Category, filtered[j].Category) < 0
		})
	}

	return filtered
}

// Related returns up to limit products sharing p's gender and
// category, excluding p itself, in catalog order.
func Related(list []Product, p Product, limit int) []Product {
	related := make([]Product, 0, limit)
	for _, candidate := range list {
		if candidate.ID == p.ID {
			continue
		}
		if candidate.Gender != p.Gender || candidate.Category != p.Category {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related
}
