package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"gopkg.in/yaml.v3"
)

// Validation messages shown next to the form fields.
const (
	MsgSelectBirthDate   = "please select your birth date"
	MsgBirthDateInPast   = "birth date must be in the past"
	MsgBirthDateTooEarly = "birth date must be on or after 1900-01-01"
	MsgLifeExpectancyMin = "life expectancy must be at least 50 years"
	MsgLifeExpectancyMax = "life expectancy cannot exceed 120 years"
)

// Field names used in FieldError.
const (
	FieldBirthDate      = "birth_date"
	FieldLifeExpectancy = "life_expectancy"
)

// profileFile is the on-disk YAML shape.
type profileFile struct {
	Name           string `yaml:"name"`
	BirthDate      string `yaml:"birth_date"`
	LifeExpectancy *int   `yaml:"life_expectancy"`
	Render         struct {
		EmptyGrid bool `yaml:"empty_grid"`
	} `yaml:"render"`
}

// InputParser handles parsing and validation of profile files
type InputParser struct {
	// Now supplies the reference instant for "in the past" checks.
	Now func() time.Time
	// RequireBirthDate turns a missing birth date into a validation error.
	RequireBirthDate bool
}

// NewInputParser creates a new input parser on the system clock
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

func (ip *InputParser) now() time.Time {
	if ip.Now == nil {
		return time.Now()
	}
	return ip.Now()
}

// LoadFromFile loads a profile from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	profile, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateProfile(profile, ip.now()); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, nil
}

// Parse decodes YAML into a profile and applies defaults without validating.
func (ip *InputParser) Parse(data []byte) (*domain.Profile, error) {
	var raw profileFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	profile := domain.NewProfile()
	profile.Name = raw.Name
	profile.EmptyGrid = raw.Render.EmptyGrid
	if raw.LifeExpectancy != nil {
		profile.LifeExpectancy = *raw.LifeExpectancy
	}
	if raw.BirthDate != "" {
		birth, err := ParseBirthDate(raw.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", FieldBirthDate, err)
		}
		profile.BirthDate = &birth
	}
	return &profile, nil
}

// ValidateProfile checks profile against now and returns ValidationErrors
// listing every offending field, or nil.
func (ip *InputParser) ValidateProfile(profile *domain.Profile, now time.Time) error {
	if profile == nil {
		return errors.New("profile is required")
	}

	var errs ValidationErrors
	if fe := ip.validateBirthDate(profile.BirthDate, now); fe != nil {
		errs = append(errs, fe)
	}
	if fe := validateLifeExpectancy(profile.LifeExpectancy); fe != nil {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (ip *InputParser) validateBirthDate(birth *time.Time, now time.Time) *FieldError {
	if birth == nil {
		if ip.RequireBirthDate {
			return &FieldError{Field: FieldBirthDate, Message: MsgSelectBirthDate, Err: ErrNoBirthDate}
		}
		return nil
	}
	// Whole dates: a birth date of today is valid in any time zone.
	if birth.After(DateOnly(now)) {
		return &FieldError{Field: FieldBirthDate, Message: MsgBirthDateInPast}
	}
	if birth.Year() < domain.EarliestBirthYear {
		return &FieldError{Field: FieldBirthDate, Message: MsgBirthDateTooEarly}
	}
	return nil
}

func validateLifeExpectancy(years int) *FieldError {
	switch {
	case years < domain.MinLifeExpectancy:
		return &FieldError{Field: FieldLifeExpectancy, Message: MsgLifeExpectancyMin}
	case years > domain.MaxLifeExpectancy:
		return &FieldError{Field: FieldLifeExpectancy, Message: MsgLifeExpectancyMax}
	}
	return nil
}
