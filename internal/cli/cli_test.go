package cli

import (
	"bytes"
	"strings"
	"testing"

	"lab_hours_bot/internal/config"
	"lab_hours_bot/internal/service"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	v := viper.New()
	v.SetFs(fs)
	cmd := newRootCmd(fs, v)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChat_LogsAndShows(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "14:30-16:30 doing tasks\n\nhello\n", "chat", "--ledger", "data/hours.csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Logged 2.00h (14:30-16:30): doing tasks", lines[0])
	assert.Equal(t, service.UsageHelp, lines[1])

	exists, err := afero.Exists(fs, "data/hours.csv")
	require.NoError(t, err)
	assert.True(t, exists)

	out, err = run(t, fs, "", "show", "--ledger", "data/hours.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "14:30-16:30 (2.00h): doing tasks")
	assert.Contains(t, out, "Total hours: 2.00")
}

func TestShow_EmptyLedger(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "", "show", "3-2024", "--ledger", "hours.csv")
	require.NoError(t, err)
	assert.Equal(t, service.NoEntriesLogged+"\n", out)
}

func TestShow_RejectsBadPeriod(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "", "show", "March", "--ledger", "hours.csv")
	assert.ErrorContains(t, err, "invalid period")
}

func TestServe_RejectsUnknownEngine(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "", "serve", "--engine", "echo")
	assert.ErrorContains(t, err, "unknown engine")
}

func TestBuildHTTPHandler(t *testing.T) {
	cfg := config.Config{Engine: config.EngineMux, Log: config.Log{Level: "info"}}
	h, err := buildHTTPHandler(cfg, &service.Service{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, h)

	cfg.Engine = config.EngineGin
	h, err = buildHTTPHandler(cfg, &service.Service{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, h)

	cfg.Engine = "other"
	_, err = buildHTTPHandler(cfg, &service.Service{}, nil)
	assert.Error(t, err)
}
