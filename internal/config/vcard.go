package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
)

// LoadBirthDateFromVCard reads a vCard stream and returns the birthday and
// formatted name of the contact called name. An empty name selects the first
// card carrying a usable BDAY. Birthdays without a year are rejected.
func LoadBirthDateFromVCard(r io.Reader, name string) (time.Time, string, error) {
	dec := vcard.NewDecoder(r)
	want := strings.TrimSpace(name)

	var skipped error
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return time.Time{}, "", fmt.Errorf("failed to decode vCard: %w", err)
		}

		fn := cardName(card)
		if want != "" && !strings.EqualFold(fn, want) {
			continue
		}

		bday := card.Value(vcard.FieldBirthday)
		if bday == "" {
			if want != "" {
				return time.Time{}, fn, fmt.Errorf("contact %q has no birthday: %w", fn, ErrNoBirthDate)
			}
			continue
		}

		birth, err := parseVCardDate(bday)
		if err != nil {
			if want != "" {
				return time.Time{}, fn, fmt.Errorf("contact %q: %w", fn, err)
			}
			skipped = err
			continue
		}
		return birth, fn, nil
	}

	if want != "" {
		return time.Time{}, "", fmt.Errorf("contact %q not found", want)
	}
	if skipped != nil {
		return time.Time{}, "", fmt.Errorf("no usable birthday in vCard: %w", skipped)
	}
	return time.Time{}, "", fmt.Errorf("no birthday in vCard: %w", ErrNoBirthDate)
}

// cardName prefers FN and falls back to the structured N property.
func cardName(card vcard.Card) string {
	if fn := card.PreferredValue(vcard.FieldFormattedName); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(n.GivenName + " " + n.FamilyName)
	}
	return ""
}

// parseVCardDate handles the BDAY spellings seen in the wild. Truncated
// forms such as "--0412" carry no year and cannot anchor a lifespan.
func parseVCardDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "--") {
		return time.Time{}, fmt.Errorf("birthday %q has no year", value)
	}
	for _, layout := range []string{"2006-01-02", "20060102", time.RFC3339, "2006-01-02T15:04:05", "20060102T150405Z"} {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised birthday %q", value)
}
