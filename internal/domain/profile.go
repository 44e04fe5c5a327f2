package domain

import "time"

// Accepted range for the life expectancy input.
const (
	MinLifeExpectancy     = 50
	MaxLifeExpectancy     = 120
	DefaultLifeExpectancy = 75
	EarliestBirthYear     = 1900
)

// Profile is the user input the grid is computed from.
// A nil BirthDate means nothing has been entered yet.
type Profile struct {
	Name           string     `json:"name,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	LifeExpectancy int        `json:"life_expectancy_years"`

	// EmptyGrid asks for an all-future grid while BirthDate is nil.
	EmptyGrid bool `json:"-"`
}

// NewProfile returns a profile with the default life expectancy.
func NewProfile() Profile {
	return Profile{LifeExpectancy: DefaultLifeExpectancy}
}

// HasBirthDate reports whether a birth date was entered.
func (p Profile) HasBirthDate() bool {
	return p.BirthDate != nil
}

// WithBirthDate returns a copy of p with the birth date set.
func (p Profile) WithBirthDate(t time.Time) Profile {
	p.BirthDate = &t
	return p
}

// LifeExpectancyOption is a preset life expectancy choice.
type LifeExpectancyOption struct {
	Years       int
	Description string
}

// LifeExpectancyOptions are the presets offered next to the free input.
var LifeExpectancyOptions = []LifeExpectancyOption{
	{Years: 70, Description: "Lower estimate"},
	{Years: 75, Description: "Global average"},
	{Years: 80, Description: "Developed countries"},
	{Years: 85, Description: "Higher estimate"},
	{Years: 90, Description: "Optimistic"},
	{Years: 95, Description: "Very optimistic"},
}

// ClampLifeExpectancy forces years into the accepted input range.
func ClampLifeExpectancy(years int) int {
	if years < MinLifeExpectancy {
		return MinLifeExpectancy
	}
	if years > MaxLifeExpectancy {
		return MaxLifeExpectancy
	}
	return years
}
