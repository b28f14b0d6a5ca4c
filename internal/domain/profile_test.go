package domain

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	names     []string
	passwords map[string]string
	failures  map[string]error
	listErr   error
	lookups   []string
}

func (s *fakeSource) ListProfiles(_ context.Context) ([]string, error) {
	return s.names, s.listErr
}

func (s *fakeSource) GetPassword(_ context.Context, name string) (string, error) {
	s.lookups = append(s.lookups, name)
	if err, ok := s.failures[name]; ok {
		return "", err
	}
	return s.passwords[name], nil
}

func TestCollectPasswords_SkipsFailedProfiles(t *testing.T) {
	src := &fakeSource{
		names:     []string{"HomeNet", "Broken", "CafeWifi"},
		passwords: map[string]string{"HomeNet": "secret123"},
		failures:  map[string]error{"Broken": E(CodeUnavailable, "netsh", "exit status 1", ErrProfileCommandFailed)},
	}

	var skipped []string
	records, err := CollectPasswords(context.Background(), src, func(name string, _ error) {
		skipped = append(skipped, name)
	})
	require.NoError(t, err)

	expect := []ProfileRecord{
		{Name: "HomeNet", Password: "secret123"},
		{Name: "CafeWifi", Password: ""},
	}
	if diff := cmp.Diff(expect, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"Broken"}, skipped)
	require.Equal(t, []string{"HomeNet", "Broken", "CafeWifi"}, src.lookups)
}

func TestCollectPasswords_FatalErrorAborts(t *testing.T) {
	src := &fakeSource{
		names:    []string{"First", "Second"},
		failures: map[string]error{"First": ErrCommandUnavailable},
	}

	_, err := CollectPasswords(context.Background(), src, nil)
	require.ErrorIs(t, err, ErrCommandUnavailable)
	require.Equal(t, []string{"First"}, src.lookups)
}

func TestCollectPasswords_ListErrorPropagates(t *testing.T) {
	src := &fakeSource{listErr: ErrNoProfiles}

	_, err := CollectPasswords(context.Background(), src, nil)
	require.ErrorIs(t, err, ErrNoProfiles)
	require.Empty(t, src.lookups)
}

func TestCollectPasswords_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeSource{names: []string{"HomeNet"}}

	_, err := CollectPasswords(ctx, src, nil)
	require.ErrorIs(t, err, context.Canceled)
	code, ok := CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, CodeCanceled, code)
}

func TestLocaleTable_WithReplacesByTag(t *testing.T) {
	table := BuiltinLocales()
	_, ok := table.Lookup("pt_BR")
	require.True(t, ok)
	_, ok = table.Lookup("de_DE")
	require.False(t, ok)

	extended := table.With(
		LocaleProfile{Tag: "de_DE", ProfilesMarker: "Profil für alle Benutzer", KeyMarker: "Schlüsselinhalt"},
		LocaleProfile{Tag: "en_US", ProfilesMarker: "All User Profile", KeyMarker: "Key Content", CodePage: "IBM437"},
	)
	require.Equal(t, []string{"de_DE", "en_US", "pt_BR"}, extended.Tags())

	en, ok := extended.Lookup("en_US")
	require.True(t, ok)
	require.Equal(t, "IBM437", en.CodePage)

	// the original table is untouched
	require.Equal(t, []string{"en_US", "pt_BR"}, table.Tags())
}

func TestParseOutputMode(t *testing.T) {
	for _, mode := range OutputModes {
		got, err := ParseOutputMode(string(mode))
		require.NoError(t, err)
		require.Equal(t, mode, got)
	}

	_, err := ParseOutputMode("xml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
