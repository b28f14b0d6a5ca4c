package netsh

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wlanprofiles/internal/domain"
	"wlanprofiles/internal/infra/process"
)

type fakeRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) (process.Result, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, call)
	if err, ok := r.errs[call]; ok {
		return process.Result{ExitCode: 1}, err
	}
	return process.Result{Output: []byte(r.outputs[call])}, nil
}

var englishLocale = domain.LocaleProfile{Tag: "en_US", ProfilesMarker: "All User Profile", KeyMarker: "Key Content"}

func newTestExtractor(t *testing.T, runner *fakeRunner, locale domain.LocaleProfile) *Extractor {
	t.Helper()
	extractor, err := NewExtractor(Options{Locale: locale, Runner: runner.Run, Logger: zap.NewNop()})
	require.NoError(t, err)
	return extractor
}

func TestExtractor_ListProfiles(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show profiles": englishProfiles,
	}}
	extractor := newTestExtractor(t, runner, englishLocale)

	names, err := extractor.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"HomeNet", "CafeWifi", "Guest: 5GHz", "HomeNet"}, names)
	require.Equal(t, []string{"netsh wlan show profiles"}, runner.calls)
}

func TestExtractor_ListProfilesNoneFound(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show profiles": "There is no wireless interface on the system.\r\n",
	}}
	extractor := newTestExtractor(t, runner, englishLocale)

	_, err := extractor.ListProfiles(context.Background())
	require.ErrorIs(t, err, domain.ErrNoProfiles)
}

func TestExtractor_PortugueseMarkers(t *testing.T) {
	locale, ok := domain.BuiltinLocales().Lookup("pt_BR")
	require.True(t, ok)
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show profiles":                  "    Todos os Perfis de Usu\xa0rios: CasaNet\r\n",
		"netsh wlan show profile CasaNet key=clear": "    Conte\xa3do da Chave        : senha123\r\n",
	}}
	extractor := newTestExtractor(t, runner, locale)

	names, err := extractor.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"CasaNet"}, names)

	password, err := extractor.GetPassword(context.Background(), "CasaNet")
	require.NoError(t, err)
	require.Equal(t, "senha123", password)
}

func TestExtractor_CodePageLocale(t *testing.T) {
	locale := domain.LocaleProfile{Tag: "pt_BR", ProfilesMarker: "Todos os Perfis de Usuários", KeyMarker: "Conteúdo da Chave", CodePage: "IBM850"}
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show profile CasaNet key=clear": "    Conte\xa3do da Chave        : senha123\r\n",
	}}
	extractor := newTestExtractor(t, runner, locale)

	password, err := extractor.GetPassword(context.Background(), "CasaNet")
	require.NoError(t, err)
	require.Equal(t, "senha123", password)
}

func TestExtractor_GetPasswordWithoutKeyLine(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show profile CafeWifi key=clear": "    Authentication : Open\r\n    Security key   : Absent\r\n",
	}}
	extractor := newTestExtractor(t, runner, englishLocale)

	password, err := extractor.GetPassword(context.Background(), "CafeWifi")
	require.NoError(t, err)
	require.Equal(t, "", password)
}

func TestExtractor_GetPasswordNonZeroExit(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"netsh wlan show profile Broken key=clear": fmt.Errorf("netsh failed (exit=1): %w", process.ErrNonZeroExit),
	}}
	extractor := newTestExtractor(t, runner, englishLocale)

	_, err := extractor.GetPassword(context.Background(), "Broken")
	require.ErrorIs(t, err, domain.ErrProfileCommandFailed)
}

func TestExtractor_CommandUnavailable(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"netsh wlan show profiles": fmt.Errorf("netsh failed: %w", process.ErrStart),
	}}
	extractor := newTestExtractor(t, runner, englishLocale)

	_, err := extractor.ListProfiles(context.Background())
	require.ErrorIs(t, err, domain.ErrCommandUnavailable)
	require.NotErrorIs(t, err, domain.ErrProfileCommandFailed)
}

func TestExtractor_CustomCommand(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		`C:\Windows\System32\netsh.exe wlan show profiles`: englishProfiles,
	}}
	extractor, err := NewExtractor(Options{Command: `C:\Windows\System32\netsh.exe`, Locale: englishLocale, Runner: runner.Run})
	require.NoError(t, err)

	names, err := extractor.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 4)
}

func TestNewExtractor_RejectsEmptyMarkers(t *testing.T) {
	_, err := NewExtractor(Options{Locale: domain.LocaleProfile{Tag: "xx_XX"}})
	require.Error(t, err)

	_, err = NewExtractor(Options{Locale: domain.LocaleProfile{Tag: "xx_XX", ProfilesMarker: "a", KeyMarker: "b", CodePage: "bogus"}})
	require.Error(t, err)
}
