// internal/config/store_test.go

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuul/spackle-ssh/internal/apperr"
	"github.com/vuul/spackle-ssh/internal/models"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), DefaultStoreFileName))
}

func sampleProfile(name string) *models.Profile {
	p := models.NewProfile(name)
	p.User = "alice"
	p.Host = "example.com"
	p.Port = 2222
	p.Protocol = models.ProtocolSSH
	p.KeyPath = "/home/alice/.ssh/work_ed25519"
	p.Foreground = models.MustParseColor("#00ff00")
	p.Background = models.MustParseColor("#000000")
	p.Geometry = models.Geometry132x43
	p.SetFontSize(14)
	p.SetScrollback(5000)
	return p
}

func TestLoadMissingFile(t *testing.T) {
	profiles, err := tempStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestGetUnknownProfileIsNotFound(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(map[string]*models.Profile{"work": sampleProfile("work")}))

	_, err := st.Get("nonexistent")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.False(t, apperr.IsKind(err, apperr.Persistence))
}

func TestSavedFileCarriesLegacyHeader(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(map[string]*models.Profile{"work": sampleProfile("work")}))

	raw, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	// The legacy tool begins every file with a bare "#" line and then
	// the timestamp line.
	assert.True(t, strings.HasPrefix(string(raw), "#\n#"))
}

func TestRoundTrip(t *testing.T) {
	st := tempStore(t)
	in := map[string]*models.Profile{
		"work":  sampleProfile("work"),
		"plain": models.NewProfile("plain"),
	}
	in["plain"].Host = "plain.example.com"

	require.NoError(t, st.Save(in))
	out, err := st.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)

	got := out["work"]
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.User)
	assert.Equal(t, "example.com", got.Host)
	assert.Equal(t, 2222, got.Port)
	assert.Equal(t, models.ProtocolSSH, got.Protocol)
	assert.Equal(t, "/home/alice/.ssh/work_ed25519", got.KeyPath)
	assert.Equal(t, "#00ff00", got.Foreground.Hex())
	assert.Equal(t, "#000000", got.Background.Hex())
	assert.Equal(t, models.Geometry132x43, got.Geometry)
	assert.Equal(t, 14, got.FontSize())
	assert.Equal(t, 5000, got.Scrollback())

	plain := out["plain"]
	require.NotNil(t, plain)
	assert.Empty(t, plain.User)
	assert.Equal(t, 22, plain.EffectivePort())
	assert.Empty(t, plain.KeyPath, "default keypath round-trips to empty")
}

func TestRoundTripAwkwardNames(t *testing.T) {
	st := tempStore(t)
	// Names and paths the escaping rules must survive.
	names := []string{"with space", "with=equals", "with:colon", "with#hash", `back\slash`, "żółw"}
	in := make(map[string]*models.Profile, len(names))
	for _, name := range names {
		p := sampleProfile(name)
		in[name] = p
	}
	require.NoError(t, st.Save(in))

	out, err := st.Load()
	require.NoError(t, err)
	require.Len(t, out, len(names))
	for _, name := range names {
		require.NotNil(t, out[name], "profile %q lost", name)
		assert.Equal(t, "example.com", out[name].Host)
	}
}

func TestLegacyFileInterop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultStoreFileName)
	legacy := "#\n#Mon Jan 02 15:04:05 2006\n" +
		"box.background=-1\n" +
		"box.fontsize=12\n" +
		"box.foreground=-16777216\n" +
		"box.geometry=80x43\n" +
		"box.hostname=root@box.example.com\n" +
		"box.keypath=default\n" +
		"box.mode=ssh\n" +
		"box.name=box\n" +
		"box.port=22\n" +
		"box.scrollback=10000\n" +
		"default.background=-1\n" +
		"default.fontsize=10\n" +
		"default.foreground=-16777216\n" +
		"default.geometry=80x24\n" +
		"default.keypath=default\n" +
		"default.scrollback=10000\n" +
		"junk line without separator that is ignored anyway=\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0600))

	st := NewStore(path)
	profiles, err := st.Load()
	require.NoError(t, err)

	box := profiles["box"]
	require.NotNil(t, box)
	assert.Equal(t, "root", box.User)
	assert.Equal(t, "box.example.com", box.Host)
	assert.Equal(t, "#ffffff", box.Background.Hex())
	assert.Equal(t, "#000000", box.Foreground.Hex())
	assert.Equal(t, models.Geometry80x43, box.Geometry)
	assert.Empty(t, box.KeyPath)

	def := profiles[models.DefaultProfileName]
	require.NotNil(t, def, "sentinel profile present")
	assert.Equal(t, 10, def.FontSize())
}

func TestUnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultStoreFileName)
	content := "box.name=box\nbox.hostname=h\nbox.futurefield=whatever\nbox.port=nonsense\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	profiles, err := NewStore(path).Load()
	require.NoError(t, err)
	box := profiles["box"]
	require.NotNil(t, box)
	// Malformed port degrades to the protocol default.
	assert.Equal(t, 22, box.EffectivePort())
}

func TestSaveAtomicReplace(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Put(sampleProfile("first")))
	require.NoError(t, st.Put(sampleProfile("second")))

	// No temp files left behind next to the store.
	entries, err := os.ReadDir(filepath.Dir(st.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultStoreFileName, entries[0].Name())
}

func TestCrashBeforeRenameLeavesOldContent(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Put(sampleProfile("stable")))
	old, err := os.ReadFile(st.Path())
	require.NoError(t, err)

	// Emulate a writer that died after finishing its temp file but
	// before the rename: the target must be untouched and a reader
	// unaffected by the stray temp file.
	stray := st.Path() + ".12345"
	require.NoError(t, os.WriteFile(stray, []byte("half-written"), 0600))

	now, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.Equal(t, old, now)

	profiles, err := st.Load()
	require.NoError(t, err)
	assert.NotNil(t, profiles["stable"])
}

func TestSaveFailureSurfacesAsPersistence(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0700) })

	st := NewStore(filepath.Join(dir, DefaultStoreFileName))
	err := st.Save(map[string]*models.Profile{"x": sampleProfile("x")})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Persistence))
}

func TestDefaultsSentinel(t *testing.T) {
	st := tempStore(t)

	// First read creates the sentinel with built-in defaults.
	opts, err := st.Defaults()
	require.NoError(t, err)
	assert.Equal(t, models.Geometry80x24, opts.Geometry)

	opts.Geometry = models.Geometry132x24
	opts.FontSize = 16
	require.NoError(t, st.SaveDefaults(opts))

	got, err := st.Defaults()
	require.NoError(t, err)
	assert.Equal(t, models.Geometry132x24, got.Geometry)
	assert.Equal(t, 16, got.FontSize)

	// The sentinel never appears in the profile listing and stores no
	// connection fields.
	names, err := st.Names()
	require.NoError(t, err)
	assert.Empty(t, names)

	raw, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "default.hostname")
	assert.NotContains(t, string(raw), "default.name")
}
