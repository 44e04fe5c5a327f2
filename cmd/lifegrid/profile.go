package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/config"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/spf13/cobra"
)

// addProfileFlags registers the flags that build or override a profile.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().Int("life-expectancy", domain.DefaultLifeExpectancy, "Life expectancy in years (50-120)")
	cmd.Flags().String("vcard", "", "Read the birth date from a vCard file")
	cmd.Flags().String("contact", "", "Contact name to pick from --vcard (default: first with a birthday)")
	cmd.Flags().String("now", "", "Reference date instead of today (YYYY-MM-DD)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
}

// clockFromFlags pins the clock when --now is given.
func clockFromFlags(cmd *cobra.Command) (calculation.Clock, error) {
	raw, _ := cmd.Flags().GetString("now")
	if raw == "" {
		return calculation.RealClock{}, nil
	}
	t, err := config.ParseBirthDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --now: %w", err)
	}
	return calculation.FixedClock{T: t}, nil
}

// resolveProfile builds the profile from the optional file argument and
// applies flag overrides, then validates it against clock.
func resolveProfile(cmd *cobra.Command, args []string, clock calculation.Clock, requireBirth bool) (domain.Profile, error) {
	parser := &config.InputParser{Now: clock.Now, RequireBirthDate: requireBirth}

	profile := domain.NewProfile()
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return profile, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		p, err := parser.Parse(data)
		if err != nil {
			return profile, err
		}
		profile = *p
	}

	if err := applyProfileFlags(cmd, &profile); err != nil {
		return profile, err
	}

	if err := parser.ValidateProfile(&profile, clock.Now()); err != nil {
		if errors.Is(err, config.ErrNoBirthDate) {
			return profile, fmt.Errorf("%w: pass --birth-date, --vcard or a profile file", err)
		}
		return profile, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, nil
}

func applyProfileFlags(cmd *cobra.Command, profile *domain.Profile) error {
	flags := cmd.Flags()

	if path, _ := flags.GetString("vcard"); path != "" {
		contact, _ := flags.GetString("contact")
		birth, name, err := loadVCard(path, contact)
		if err != nil {
			return err
		}
		profile.BirthDate = &birth
		if profile.Name == "" {
			profile.Name = name
		}
	}

	if raw, _ := flags.GetString("birth-date"); raw != "" {
		birth, err := config.ParseBirthDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --birth-date: %w", err)
		}
		profile.BirthDate = &birth
	}

	if flags.Changed("life-expectancy") {
		profile.LifeExpectancy, _ = flags.GetInt("life-expectancy")
	}
	return nil
}

func loadVCard(path, contact string) (time.Time, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to open vCard file: %w", err)
	}
	defer f.Close()

	birth, name, err := config.LoadBirthDateFromVCard(f, contact)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%s: %w", path, err)
	}
	return birth, name, nil
}

// newEngine builds an engine on clock with logging controlled by --debug.
func newEngine(cmd *cobra.Command, clock calculation.Clock) *calculation.Engine {
	debug, _ := cmd.Flags().GetBool("debug")
	engine := calculation.NewEngineWithClock(clock)
	engine.SetLogger(newLogger(debug))
	return engine
}
