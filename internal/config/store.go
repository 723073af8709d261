// internal/config/store.go

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vuul/spackle-ssh/internal/apperr"
	"github.com/vuul/spackle-ssh/internal/models"
	"github.com/vuul/spackle-ssh/internal/properties"
)

const (
	// DefaultStoreFileName sits directly in the home directory, the
	// same per-user path the legacy tool writes.
	DefaultStoreFileName = ".spackle_2.0"
	storeFilePerms       = 0600
)

// Legacy property key suffixes, one flattened key per profile field.
const (
	keyName       = "name"
	keyHostname   = "hostname"
	keyPort       = "port"
	keyMode       = "mode"
	keyKeyPath    = "keypath"
	keyForeground = "foreground"
	keyBackground = "background"
	keyGeometry   = "geometry"
	keyScrollback = "scrollback"
	keyFontSize   = "fontsize"
)

// keyPathDefault is the stored keypath value meaning "use default key
// discovery" rather than a literal path.
const keyPathDefault = "default"

// Store owns the profile store file. All mutations go through
// load-modify-save with an atomic replace, so a crash or a concurrent
// reader never observes a torn file.
type Store struct {
	path string
}

// NewStore opens a store at path, falling back to the per-user default
// location when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		defaultPath, err := DefaultStorePath()
		if err == nil {
			path = defaultPath
		} else {
			path = DefaultStoreFileName
		}
	}
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultStoreFileName), nil
}

// Load reads the whole store. A missing file yields an empty map; any
// other read failure is a persistence error.
func (s *Store) Load() (map[string]*models.Profile, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]*models.Profile), nil
		}
		return nil, apperr.New(apperr.Persistence, "failed to read profile store", err)
	}
	defer f.Close()

	props := properties.New()
	if err := props.Load(f); err != nil {
		return nil, apperr.New(apperr.Persistence, "failed to parse profile store", err)
	}

	profiles := make(map[string]*models.Profile)
	for _, name := range profileNames(props) {
		profiles[name] = unflatten(props, name)
	}
	logrus.WithFields(logrus.Fields{"path": s.path, "profiles": len(profiles)}).
		Debug("profile store loaded")
	return profiles, nil
}

// Save flattens all profiles and atomically replaces the store file.
func (s *Store) Save(profiles map[string]*models.Profile) error {
	props := properties.New()
	for name, p := range profiles {
		flatten(props, name, p)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, DefaultStoreFileName+".*")
	if err != nil {
		return apperr.New(apperr.Persistence, "failed to create temp store file", err)
	}
	tmpPath := tmp.Name()
	// On any failure below the temp file is removed and the target
	// left untouched.
	fail := func(msg string, err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return apperr.New(apperr.Persistence, msg, err)
	}

	if err := props.Write(tmp, ""); err != nil {
		return fail("failed to write profile store", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("failed to sync profile store", err)
	}
	if err := tmp.Chmod(storeFilePerms); err != nil {
		return fail("failed to set store permissions", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("failed to close temp store file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return apperr.New(apperr.Persistence, "failed to replace profile store", err)
	}
	logrus.WithFields(logrus.Fields{"path": s.path, "profiles": len(profiles)}).
		Debug("profile store saved")
	return nil
}

// Get returns one profile by name.
func (s *Store) Get(name string) (*models.Profile, error) {
	profiles, err := s.Load()
	if err != nil {
		return nil, err
	}
	p, ok := profiles[name]
	if !ok {
		return nil, apperr.Newf(apperr.NotFound, "profile %q not found", name)
	}
	return p, nil
}

// Put stores or replaces one profile.
func (s *Store) Put(p *models.Profile) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	profiles[p.Name] = p
	return s.Save(profiles)
}

// Delete removes one profile; deleting an absent name is not an error.
func (s *Store) Delete(name string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	delete(profiles, name)
	return s.Save(profiles)
}

// Names lists stored profile names sorted, the sentinel excluded.
func (s *Store) Names() ([]string, error) {
	profiles, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		if name == models.DefaultProfileName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Defaults returns the sentinel profile's options, writing the initial
// sentinel on first run so later reads share its persistence
// guarantees.
func (s *Store) Defaults() (models.TerminalOptions, error) {
	profiles, err := s.Load()
	if err != nil {
		return models.DefaultTerminalOptions(), err
	}
	if p, ok := profiles[models.DefaultProfileName]; ok {
		return p.Options(), nil
	}
	p := models.NewProfile(models.DefaultProfileName)
	profiles[models.DefaultProfileName] = p
	if err := s.Save(profiles); err != nil {
		return models.DefaultTerminalOptions(), err
	}
	return p.Options(), nil
}

// SaveDefaults persists opts under the sentinel name.
func (s *Store) SaveDefaults(opts models.TerminalOptions) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	p := models.NewProfile(models.DefaultProfileName)
	p.ApplyOptions(opts)
	profiles[models.DefaultProfileName] = p
	return s.Save(profiles)
}

// profileNames collects names from ".name" keys the way the legacy
// tool does, plus the sentinel whenever any of its keys is present.
func profileNames(props *properties.Properties) []string {
	var names []string
	seenDefault := false
	for _, key := range props.Names() {
		if strings.HasSuffix(key, "."+keyName) {
			if v, _ := props.Get(key); v != "" {
				names = append(names, v)
			}
		}
		if strings.HasPrefix(key, models.DefaultProfileName+".") {
			seenDefault = true
		}
	}
	if seenDefault {
		names = append(names, models.DefaultProfileName)
	}
	return names
}

// unflatten rebuilds a profile from its namespaced keys. Absent fields
// take the documented defaults; malformed values degrade rather than
// fail the load.
func unflatten(props *properties.Properties, name string) *models.Profile {
	p := models.NewProfile(name)
	get := func(suffix string) (string, bool) {
		return props.Get(name + "." + suffix)
	}

	if name != models.DefaultProfileName {
		if host, ok := get(keyHostname); ok {
			p.User, p.Host = splitUserHost(host)
		}
		if port, ok := get(keyPort); ok {
			if n, err := strconv.Atoi(port); err == nil && n >= 1 && n <= models.MaxPort {
				p.Port = n
			}
		}
		if mode, ok := get(keyMode); ok {
			if proto, err := models.ParseProtocol(mode); err == nil {
				p.Protocol = proto
			}
		}
	}

	if kp, ok := get(keyKeyPath); ok && kp != keyPathDefault {
		p.KeyPath = kp
	}
	if fg, ok := get(keyForeground); ok {
		p.Foreground = models.ParseLegacyRGB(fg)
	}
	if bg, ok := get(keyBackground); ok {
		p.Background = models.ParseLegacyRGB(bg)
	}
	if geo, ok := get(keyGeometry); ok {
		p.Geometry = models.Geometry(geo).Normalize()
	}
	if sb, ok := get(keyScrollback); ok {
		if n, err := strconv.Atoi(sb); err == nil {
			p.SetScrollback(n)
		}
	}
	if fs, ok := get(keyFontSize); ok {
		if n, err := strconv.Atoi(fs); err == nil {
			p.SetFontSize(n)
		}
	}
	return p
}

// flatten writes a profile under its namespaced keys. The sentinel
// stores only option fields, matching the legacy file layout.
func flatten(props *properties.Properties, name string, p *models.Profile) {
	set := func(suffix, value string) {
		props.Set(name+"."+suffix, value)
	}

	if name != models.DefaultProfileName {
		set(keyName, name)
		set(keyHostname, joinUserHost(p.User, p.Host))
		set(keyPort, strconv.Itoa(p.EffectivePort()))
		set(keyMode, p.Protocol.String())
	}

	if p.KeyPath != "" {
		set(keyKeyPath, p.KeyPath)
	} else {
		set(keyKeyPath, keyPathDefault)
	}
	set(keyForeground, p.Foreground.LegacyRGB())
	set(keyBackground, p.Background.LegacyRGB())
	set(keyGeometry, p.Geometry.Normalize().String())
	set(keyScrollback, strconv.Itoa(p.Scrollback()))
	set(keyFontSize, strconv.Itoa(p.FontSize()))
}

// splitUserHost undoes joinUserHost for stored hostname values that
// carry an embedded user.
func splitUserHost(s string) (user, host string) {
	if i := strings.Index(s, "@"); i > 0 && i < len(s)-1 && strings.Count(s, "@") == 1 {
		return s[:i], s[i+1:]
	}
	return "", s
}

func joinUserHost(user, host string) string {
	if user == "" {
		return host
	}
	return user + "@" + host
}
