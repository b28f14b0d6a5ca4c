package domain

import (
	"context"
	"errors"
	"sort"
)

// ProfileRecord is a saved wireless profile and its stored key.
// Password is empty when the profile carries no key.
type ProfileRecord struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ProfileSource lists saved profiles and reveals their keys.
type ProfileSource interface {
	ListProfiles(ctx context.Context) ([]string, error)
	GetPassword(ctx context.Context, name string) (string, error)
}

// SkipFunc is notified when a profile is left out of the collected records.
type SkipFunc func(name string, err error)

// CollectPasswords fetches the key of every listed profile, in listing order.
// Profiles whose lookup fails with ErrProfileCommandFailed are reported to
// onSkip and omitted; any other error aborts the collection.
func CollectPasswords(ctx context.Context, src ProfileSource, onSkip SkipFunc) ([]ProfileRecord, error) {
	names, err := src.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]ProfileRecord, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, E(CodeCanceled, "domain.CollectPasswords", "", err)
		}
		password, err := src.GetPassword(ctx, name)
		if err != nil {
			if errors.Is(err, ErrProfileCommandFailed) {
				if onSkip != nil {
					onSkip(name, err)
				}
				continue
			}
			return nil, err
		}
		records = append(records, ProfileRecord{Name: name, Password: password})
	}
	return records, nil
}

// LocaleProfile holds the marker substrings that identify the profile list
// lines and the stored key line in the localized netsh output.
type LocaleProfile struct {
	Tag            string
	ProfilesMarker string
	KeyMarker      string
	// CodePage names the console encoding of the output. Empty selects
	// lenient UTF-8 decoding.
	CodePage string
}

// LocaleTable maps a normalized locale tag to its markers.
type LocaleTable struct {
	entries map[string]LocaleProfile
}

// NewLocaleTable builds a table from profiles; later entries replace earlier
// ones with the same tag.
func NewLocaleTable(profiles ...LocaleProfile) LocaleTable {
	entries := make(map[string]LocaleProfile, len(profiles))
	for _, profile := range profiles {
		entries[profile.Tag] = profile
	}
	return LocaleTable{entries: entries}
}

// Lookup returns the markers registered for tag.
func (t LocaleTable) Lookup(tag string) (LocaleProfile, bool) {
	profile, ok := t.entries[tag]
	return profile, ok
}

// Tags returns the supported tags in sorted order.
func (t LocaleTable) Tags() []string {
	tags := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// With returns a copy of the table with profiles added or replaced.
func (t LocaleTable) With(profiles ...LocaleProfile) LocaleTable {
	merged := make([]LocaleProfile, 0, len(t.entries)+len(profiles))
	for _, tag := range t.Tags() {
		merged = append(merged, t.entries[tag])
	}
	return NewLocaleTable(append(merged, profiles...)...)
}

// BuiltinLocales returns the locales known without configuration.
//
// The pt_BR markers carry the literal escapes produced by lenient UTF-8
// decoding of the CP850 console bytes for "á" and "ú".
func BuiltinLocales() LocaleTable {
	return NewLocaleTable(
		LocaleProfile{
			Tag:            "pt_BR",
			ProfilesMarker: `Todos os Perfis de Usu\xa0rios`,
			KeyMarker:      `Conte\xa3do da Chave`,
		},
		LocaleProfile{
			Tag:            "en_US",
			ProfilesMarker: "All User Profile",
			KeyMarker:      "Key Content",
		},
	)
}
