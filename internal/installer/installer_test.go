package installer

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/bain-installer/internal/filetree"
)

func TestGuessedValueUpdate(t *testing.T) {
	g := NewGuessedValue("archive-1234", GuessFallback)
	assert.Equal(t, "archive-1234", g.Value())
	assert.Equal(t, GuessFallback, g.Quality())

	assert.True(t, g.Update("Better Name", GuessMeta))
	assert.False(t, g.Update("Worse Name", GuessGood))
	assert.Equal(t, "Better Name", g.Value())

	assert.False(t, g.Update("   ", GuessUser))
	assert.True(t, g.Update("  User Name ", GuessUser))
	assert.Equal(t, "User Name", g.Value())
	assert.Equal(t, GuessUser, g.Quality())

	assert.Equal(t, []string{"archive-1234", "Better Name", "Worse Name", "User Name"}, g.Variants())
}

func TestGuessedValueZero(t *testing.T) {
	var g GuessedValue
	assert.Equal(t, "", g.Value())
	assert.Equal(t, GuessInvalid, g.Quality())
	assert.True(t, g.Update("x", GuessInvalid))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "success", ResultSuccess.String())
	assert.Equal(t, "manual requested", ResultManualRequested.String())
	assert.Equal(t, "canceled", ResultCanceled.String())
	assert.Equal(t, "unknown", Result(99).String())
	assert.Equal(t, "user", GuessUser.String())
}

type stubInstaller struct {
	name      string
	priority  int
	manual    bool
	inactive  bool
	supported bool
	checkErr  error
	result    Result
	calls     *[]string
}

func (s *stubInstaller) Name() string             { return s.name }
func (s *stubInstaller) Author() string           { return "test" }
func (s *stubInstaller) Description() string      { return "stub" }
func (s *stubInstaller) Version() *semver.Version { return semver.MustParse("0.1.0") }
func (s *stubInstaller) IsActive() bool           { return !s.inactive }
func (s *stubInstaller) Settings() []Setting      { return nil }
func (s *stubInstaller) Priority() int            { return s.priority }
func (s *stubInstaller) IsManualInstaller() bool  { return s.manual }

func (s *stubInstaller) IsArchiveSupported(*filetree.Dir) (bool, error) {
	*s.calls = append(*s.calls, "check:"+s.name)
	return s.supported, s.checkErr
}

func (s *stubInstaller) Install(name *GuessedValue, _ *filetree.Dir) (Result, error) {
	*s.calls = append(*s.calls, "install:"+s.name)
	name.Update(s.name, GuessGood)
	return s.result, nil
}

func TestRegistryOrdersByPriority(t *testing.T) {
	var calls []string
	r := NewRegistry(nil)
	r.Register(&stubInstaller{name: "late", priority: 50, calls: &calls})
	r.Register(&stubInstaller{name: "early", priority: 10, calls: &calls})
	r.Register(&stubInstaller{name: "tie", priority: 10, calls: &calls})

	var order []string
	for _, inst := range r.Installers() {
		order = append(order, inst.Name())
	}
	assert.Equal(t, []string{"early", "tie", "late"}, order)
}

func TestRegistryInstallPicksFirstSupported(t *testing.T) {
	var calls []string
	r := NewRegistry(nil)
	r.Register(&stubInstaller{name: "bain", priority: 40, supported: true, result: ResultSuccess, calls: &calls})
	r.Register(&stubInstaller{name: "manual", priority: 1, manual: true, supported: true, calls: &calls})
	r.Register(&stubInstaller{name: "off", priority: 2, inactive: true, supported: true, calls: &calls})
	r.Register(&stubInstaller{name: "fomod", priority: 20, supported: false, calls: &calls})
	r.Register(&stubInstaller{name: "passes", priority: 30, supported: true, result: ResultNotAttempted, calls: &calls})
	r.Register(&stubInstaller{name: "never", priority: 90, supported: true, result: ResultSuccess, calls: &calls})

	name := NewGuessedValue("archive", GuessFallback)
	result, inst, err := r.Install(name, filetree.NewRoot())
	require.NoError(t, err)
	assert.Equal(t, ResultSuccess, result)
	require.NotNil(t, inst)
	assert.Equal(t, "bain", inst.Name())
	assert.Equal(t, []string{"check:fomod", "check:passes", "install:passes", "check:bain", "install:bain"}, calls)
	assert.Equal(t, "bain", name.Value())
}

func TestRegistryInstallNoneApplies(t *testing.T) {
	var calls []string
	r := NewRegistry(nil)
	r.Register(&stubInstaller{name: "fomod", supported: false, calls: &calls})

	result, inst, err := r.Install(NewGuessedValue("archive", GuessFallback), filetree.NewRoot())
	require.NoError(t, err)
	assert.Equal(t, ResultNotAttempted, result)
	assert.Nil(t, inst)
}

func TestRegistryInstallErrors(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	r := NewRegistry(nil)
	r.Register(&stubInstaller{name: "broken", checkErr: boom, calls: &calls})

	result, _, err := r.Install(NewGuessedValue("archive", GuessFallback), filetree.NewRoot())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ResultFailed, result)

	_, _, err = r.Install(nil, filetree.NewRoot())
	assert.Error(t, err)
	_, _, err = r.Install(NewGuessedValue("a", GuessFallback), nil)
	assert.Error(t, err)
}
