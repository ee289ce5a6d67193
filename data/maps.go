package data

import "errors"

// MapDef describes one embedded map fixture from manifest.json. Route
// lengths count positions including both endpoints; zero means no route.
type MapDef struct {
	Name          string `json:"name"`          // Unique identifier (e.g., "classic")
	File          string `json:"file"`          // Path of the map file within the embedded FS
	Description   string `json:"description"`   // One-line summary of what the map exercises
	PlainRouteLen int    `json:"plainRouteLen"` // Shortest route length with doors treated as walls
	KeyedRouteLen int    `json:"keyedRouteLen"` // Shortest route length with key collection
	KeyCount      int    `json:"keyCount"`      // Number of distinct keys on the map
}

// Rows returns the map's text rows.
func (m *MapDef) Rows() ([]string, error) {
	return ReadRows(m.File)
}

// ManifestFile represents the structure of manifest.json.
type ManifestFile struct {
	Maps []MapDef `json:"maps"`
}

// LoadMaps loads the map definitions from the embedded manifest.json.
func LoadMaps() ([]MapDef, error) {
	manifest, err := Load[ManifestFile]("manifest.json")
	if err != nil {
		return nil, err
	}
	return manifest.Maps, nil
}

// MapRegistry holds loaded map definitions and provides lookup utilities.
type MapRegistry struct {
	maps map[string]*MapDef
	all  []MapDef
}

// NewMapRegistry creates a registry from loaded map definitions.
func NewMapRegistry(maps []MapDef) *MapRegistry {
	registry := &MapRegistry{
		maps: make(map[string]*MapDef),
		all:  maps,
	}
	for i := range maps {
		registry.maps[maps[i].Name] = &maps[i]
	}
	return registry
}

// LoadMapRegistry loads and creates a registry from the embedded manifest.
func LoadMapRegistry() (*MapRegistry, error) {
	maps, err := LoadMaps()
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, errors.New("no maps loaded from manifest.json")
	}
	return NewMapRegistry(maps), nil
}

// MustLoadMapRegistry loads a registry, panicking on error.
func MustLoadMapRegistry() *MapRegistry {
	registry, err := LoadMapRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the map definition with the given name, or nil if not found.
func (r *MapRegistry) GetByName(name string) *MapDef {
	return r.maps[name]
}

// Names returns the names of all registered maps in manifest order.
func (r *MapRegistry) Names() []string {
	names := make([]string, 0, len(r.all))
	for i := range r.all {
		names = append(names, r.all[i].Name)
	}
	return names
}

// All returns all map definitions.
func (r *MapRegistry) All() []MapDef {
	return r.all
}

// Count returns the number of maps in the registry.
func (r *MapRegistry) Count() int {
	return len(r.all)
}
