package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/storage"
)

var fixedNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.Local)

func newTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	ctx := NewContext(t.TempDir(), storage.NewMemoryKV(), model.DefaultSettings())
	ctx.Now = func() time.Time { return fixedNow }
	ctx.Out = out
	return ctx, out
}

func unset() TuiCmd {
	return TuiCmd{Work: -1, Rest: -1, Reps: -1}
}

func TestPresetsCmd(t *testing.T) {
	ctx, out := newTestContext(t)
	require.NoError(t, (&PresetsCmd{}).Run(ctx))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "* normal")
	assert.Contains(t, string(lines[2]), "squeeze  8s")
}

func TestSettingsCmdUpdatesAndPersists(t *testing.T) {
	ctx, out := newTestContext(t)

	cmd := &SettingsCmd{Preset: "easy", Work: -1, Rest: -1, Reps: -1, Ticks: "off", Theme: "dark"}
	require.NoError(t, cmd.Run(ctx))

	loaded, err := storage.LoadSettings(ctx.ConfigDir)
	require.NoError(t, err)
	assert.Equal(t, "easy", loaded.PresetID)
	assert.False(t, loaded.TickCues)
	assert.Equal(t, model.ThemeDark, storage.LoadThemeMode(ctx.KV))
	assert.Contains(t, out.String(), "rhythm:   easy (squeeze 3s, relax 5s, 8 reps)")
	assert.Contains(t, out.String(), "theme:    dark")
}

func TestSettingsCmdCustomRhythm(t *testing.T) {
	ctx, _ := newTestContext(t)

	require.NoError(t, (&SettingsCmd{Work: 7, Rest: -1, Reps: 6}).Run(ctx))
	assert.Equal(t, model.SessionConfig{WorkSeconds: 7, RestSeconds: 5, TotalReps: 6}, ctx.Settings.Custom)

	err := (&SettingsCmd{Work: -1, Rest: -1, Reps: 0}).Run(ctx)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestSettingsCmdRejectsBadValues(t *testing.T) {
	ctx, _ := newTestContext(t)

	assert.Error(t, (&SettingsCmd{Preset: "extreme", Work: -1, Rest: -1, Reps: -1}).Run(ctx))
	assert.Error(t, (&SettingsCmd{Sound: "maybe", Work: -1, Rest: -1, Reps: -1}).Run(ctx))
	assert.Error(t, (&SettingsCmd{Theme: "sepia", Work: -1, Rest: -1, Reps: -1}).Run(ctx))
}

func TestHistoryCmd(t *testing.T) {
	ctx, out := newTestContext(t)
	require.NoError(t, ctx.Progress.RecordCompletion("2026-10-14"))
	require.NoError(t, ctx.Progress.RecordCompletion("2026-10-15"))
	require.NoError(t, ctx.Progress.RecordCompletion("2026-09-30"))

	require.NoError(t, (&HistoryCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "October 2026")
	assert.Contains(t, out.String(), "2 days completed this month")
	assert.Contains(t, out.String(), "Today: done, streak: 2, total: 3")

	out.Reset()
	require.NoError(t, (&HistoryCmd{Month: "2026-09"}).Run(ctx))
	assert.Contains(t, out.String(), "September 2026")
	assert.Contains(t, out.String(), "1 day completed this month")

	out.Reset()
	require.NoError(t, (&HistoryCmd{List: true}).Run(ctx))
	assert.Equal(t, "2026-09-30\n2026-10-14\n2026-10-15\n", out.String())

	assert.Error(t, (&HistoryCmd{Month: "October"}).Run(ctx))
}

func TestTuiResolveConfig(t *testing.T) {
	ctx, _ := newTestContext(t)

	cmd := unset()
	config, err := cmd.resolveConfig(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, model.SessionConfig{WorkSeconds: 5, RestSeconds: 5, TotalReps: 10}, config)

	cmd = unset()
	cmd.Preset = "hard"
	cmd.Reps = 3
	config, err = cmd.resolveConfig(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, model.SessionConfig{WorkSeconds: 8, RestSeconds: 4, TotalReps: 3}, config)

	cmd = unset()
	cmd.Work = 0
	config, err = cmd.resolveConfig(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, config.WorkSeconds)

	cmd = unset()
	cmd.Preset = "unknown"
	_, err = cmd.resolveConfig(ctx, false)
	assert.Error(t, err)

	cmd = unset()
	cmd.Reps = 0
	_, err = cmd.resolveConfig(ctx, false)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestTuiResolveConfigPrompts(t *testing.T) {
	ctx, _ := newTestContext(t)
	original := pickPreset
	t.Cleanup(func() { pickPreset = original })

	var offered string
	pickPreset = func(defaultID string) (string, error) {
		offered = defaultID
		return "easy", nil
	}
	cmd := unset()
	config, err := cmd.resolveConfig(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "normal", offered)
	assert.Equal(t, 8, config.TotalReps)

	pickPreset = func(string) (string, error) { return "", errors.New("no preset chosen") }
	_, err = cmd.resolveConfig(ctx, true)
	assert.Error(t, err)
}
