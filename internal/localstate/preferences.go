package localstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

type Preferences struct {
	Theme         string   `json:"theme"`
	Currency      string   `json:"currency"`
	Categories    []string `json:"categories"`
	Notifications bool     `json:"notifications"`
	WeekStartsOn  int      `json:"weekStartsOn"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Currency:      "GBP",
		Categories:    []string{},
		Notifications: true,
		WeekStartsOn:  1,
	}
}

func (p Preferences) validate() error {
	switch p.Theme {
	case "light", "dark":
	default:
		return errs.Invalid("theme", "must be light or dark")
	}

	switch p.Currency {
	case "GBP", "USD", "EUR":
	default:
		return errs.Invalid("currency", "must be GBP, USD or EUR")
	}

	if p.WeekStartsOn != 0 && p.WeekStartsOn != 1 {
		return errs.Invalid("week_starts_on", "must be 0 (Sunday) or 1 (Monday)")
	}

	return nil
}

// Device reads and writes the signed-in member and their preferences.
type Device struct {
	store     Store
	household *household.Household
}

func NewDevice(store Store, hh *household.Household) *Device {
	return &Device{store: store, household: hh}
}

// CurrentMember returns the member signed in on this device, or errs.ErrNotFound.
func (d *Device) CurrentMember(ctx context.Context) (household.Member, error) {
	v, err := d.store.Get(ctx, CurrentMemberKey)
	if err != nil {
		return "", err
	}

	return household.Member(v), nil
}

func (d *Device) SetCurrentMember(ctx context.Context, m household.Member) error {
	if !d.household.Contains(m) {
		return errs.Invalid("member", fmt.Sprintf("%q is not a household member", m))
	}

	return d.store.Set(ctx, CurrentMemberKey, string(m), 0)
}

func (d *Device) ClearCurrentMember(ctx context.Context) error {
	return d.store.Delete(ctx, CurrentMemberKey)
}

// Preferences returns the stored preferences of m, or the defaults when none were saved.
// Fields missing from the stored document keep their default value.
func (d *Device) Preferences(ctx context.Context, m household.Member) (Preferences, error) {
	prefs := DefaultPreferences()

	raw, err := d.store.Get(ctx, PreferencesKey(m))
	if errors.Is(err, errs.ErrNotFound) {
		return prefs, nil
	}

	if err != nil {
		return Preferences{}, err
	}

	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return Preferences{}, fmt.Errorf("decoding preferences of %s: %w", m, err)
	}

	return prefs, nil
}

func (d *Device) SavePreferences(ctx context.Context, m household.Member, p Preferences) error {
	if err := p.validate(); err != nil {
		return err
	}

	if p.Categories == nil {
		p.Categories = []string{}
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	return d.store.Set(ctx, PreferencesKey(m), string(raw), 0)
}
