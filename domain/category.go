// Package domain contains the core concepts of complaint triage.
// Complaints are created once, classified once, and only ever gain
// feedback and status changes afterwards.
package domain

import (
	"complaint-triage/errors"
	"fmt"
	"strings"
)

type Category string

const (
	Billing       Category = "billing"
	Delivery      Category = "delivery"
	Quality       Category = "quality"
	Service       Category = "service"
	Technical     Category = "technical"
	Uncategorized Category = "uncategorized"
)

// Categories lists every label a classifier may be trained on.
// Uncategorized is the degraded-mode output and is never a training label.
var Categories = []Category{Billing, Delivery, Quality, Service, Technical}

func (c Category) IsValid() bool {
	switch c {
	case Billing, Delivery, Quality, Service, Technical, Uncategorized:
		return true
	default:
		return false
	}
}

// IsTrainable reports whether the category can be used as a supervised label.
func (c Category) IsTrainable() bool {
	return c.IsValid() && c != Uncategorized
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return Uncategorized, fmt.Errorf("%w: %q", errors.ErrUnknownCategory, s)
	}
	return c, nil
}

// Emoji is the glyph shown next to a category in listings.
func (c Category) Emoji() string {
	switch c {
	case Delivery:
		return "📦"
	case Quality:
		return "⚠️"
	case Billing:
		return "💳"
	case Technical:
		return "🖥️"
	case Service:
		return "👥"
	default:
		return "❓"
	}
}
