package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/bain-installer/internal/prompt"
	"github.com/conn-castle/bain-installer/internal/testutil"
)

// scriptedUI accepts every prompt, answering with the configured values.
type scriptedUI struct {
	confirm  bool
	name     string
	selected []string
	action   prompt.Action
	abort    error
	prompts  []string
}

func (u *scriptedUI) Confirm(title string, _ string, value *bool) error {
	u.prompts = append(u.prompts, title)
	*value = u.confirm
	return nil
}

func (u *scriptedUI) Packages(sel *prompt.PackageSelection) error {
	u.prompts = append(u.prompts, "packages")
	if u.abort != nil {
		return u.abort
	}
	if u.name != "" {
		sel.Name = u.name
	}
	if u.selected != nil {
		sel.Selected = u.selected
	}
	sel.Action = u.action
	return nil
}

func (u *scriptedUI) Note(title string, _ string) error {
	u.prompts = append(u.prompts, title)
	return nil
}

func useUI(t *testing.T, ui prompt.UI) {
	t.Helper()
	orig := newUI
	t.Cleanup(func() { newUI = orig })
	newUI = func() prompt.UI { return ui }
}

func writeArchive(t *testing.T, paths ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Cool Mod")
	testutil.WriteTree(t, dir, map[string]string{"package.txt": "Pick one"}, paths...)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	err := execute(append([]string{"bain"}, args...), &out, &out)
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "BAIN Installer")
	assert.Contains(t, out, "Tannin")
	assert.Contains(t, out, "1.1.0")
	assert.Contains(t, out, "priority:    40")
	assert.Contains(t, out, "manual:      false")
}

func TestCheckSupported(t *testing.T) {
	useUI(t, &scriptedUI{})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds", "fomod/info.xml")

	out, err := run(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "valid option directories (2): 00 Core, 01 Textures")
	assert.Contains(t, out, "ignored directories (1): fomod")
	assert.Contains(t, out, "supported: installable")
}

func TestCheckNotSupported(t *testing.T) {
	useUI(t, &scriptedUI{})
	dir := writeArchive(t, "Data/plugin.esp", "readme.txt")

	out, err := run(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "not supported")
}

func TestCheckAmbiguousAsks(t *testing.T) {
	ui := &scriptedUI{confirm: true}
	useUI(t, ui)
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Extra/meshes/a.nif", "Docs/readme.txt")

	out, err := run(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "invalid option directories (1): Docs")
	assert.Contains(t, out, "supported: installable")
	assert.Equal(t, []string{"May be BAIN installer"}, ui.prompts)
}

func TestCheckMissingDirectory(t *testing.T) {
	_, err := run(t, "check", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestInstallWritesSelection(t *testing.T) {
	useUI(t, &scriptedUI{
		name:     "Renamed Mod",
		selected: []string{"00 Core", "01 Textures"},
		action:   prompt.ActionInstall,
	})
	dir := writeArchive(t, "package.txt", "00 Core/plugin.esp", "01 Textures/textures/rock.dds")
	dest := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "install", dir, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, `Installed "Renamed Mod"`)
	assert.Contains(t, out, "+plugin.esp")
	assert.Contains(t, out, "Wrote "+dest)

	data, err := os.ReadFile(filepath.Join(dest, "textures", "rock.dds"))
	require.NoError(t, err)
	assert.Equal(t, "01 Textures/textures/rock.dds", string(data))
	_, err = os.Stat(filepath.Join(dest, "package.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestInstallDryRun(t *testing.T) {
	useUI(t, &scriptedUI{action: prompt.ActionInstall})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")

	out, err := run(t, "install", dir, "--dry-run", "--name", "Preset")
	require.NoError(t, err)
	assert.Contains(t, out, `Installed "Preset"`)
	assert.Contains(t, out, "Dry run")
}

func TestInstallCanceled(t *testing.T) {
	useUI(t, &scriptedUI{action: prompt.ActionCancel})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")

	out, err := run(t, "install", dir, "--dry-run")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, exitCanceled, silent.Code)
	assert.Contains(t, out, "Installation canceled")
}

func TestInstallManual(t *testing.T) {
	useUI(t, &scriptedUI{action: prompt.ActionManual})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")

	out, err := run(t, "install", dir, "--dry-run")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, exitManualRequested, silent.Code)
	assert.Contains(t, out, `Manual installation requested for "Cool Mod"`)
}

func TestInstallAbortCancels(t *testing.T) {
	useUI(t, &scriptedUI{abort: prompt.ErrCancelled})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")

	_, err := run(t, "install", dir, "--dry-run")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, exitCanceled, silent.Code)
}

func TestInstallNotBain(t *testing.T) {
	useUI(t, &scriptedUI{})
	dir := writeArchive(t, "plugin.esp")

	_, err := run(t, "install", dir, "--dry-run")
	assert.ErrorContains(t, err, "is not a BAIN package")
}

func TestInstallOutputValidation(t *testing.T) {
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")

	_, err := run(t, "install", dir)
	assert.ErrorContains(t, err, "--out is required")

	_, err = run(t, "install", dir, "--out", filepath.Join(dir, "inside"))
	assert.ErrorContains(t, err, "must not be inside")
}

func TestConfigFileApplies(t *testing.T) {
	useUI(t, &scriptedUI{action: prompt.ActionInstall})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[preview]\ndiff_lines = 2\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "install", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "truncated to 2 lines")

	require.NoError(t, os.WriteFile(cfgPath, []byte("[preview]\nlines = 2\n"), 0o644))
	_, err = run(t, "--config", cfgPath, "info")
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	useUI(t, &scriptedUI{})
	dir := writeArchive(t, "00 Core/plugin.esp", "01 Textures/textures/rock.dds")

	out, err := run(t, "-v", "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "BAIN: classified option directories")
}
