package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// Store loads and caches one normalized catalog per insurer. A catalog is
// loaded at most once per process and is read-only afterwards; failed loads
// cache an empty catalog so position resolution degrades to empty work
// packages instead of crashing the session.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*Catalog
}

// NewStore creates a catalog store over a directory of catalog files.
func NewStore(dir string) *Store {
	return &Store{dir: dir, cache: make(map[string]*Catalog)}
}

// Catalog returns the normalized catalog for an insurer, loading it on
// first use.
func (s *Store) Catalog(insurer string) *Catalog {
	key := algorithms.FoldKey(insurer)

	s.mu.RLock()
	if c, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return c
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cache[key]; ok {
		return c
	}

	c, err := LoadCatalog(s.dir, key)
	if err != nil {
		log.Printf("catalog load failed for %q, using empty catalog: %v", insurer, err)
		c = EmptyCatalog(key)
	}
	s.cache[key] = c
	return c
}

// Insurers lists the insurers currently loaded into the store.
func (s *Store) Insurers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	insurers := make([]string, 0, len(s.cache))
	for k := range s.cache {
		insurers = append(insurers, k)
	}
	return insurers
}

// LoadCatalog reads the best available catalog file version for an insurer
// and normalizes it. Candidates are tried in order: the v2 file first, the
// legacy file as fallback. When both exist, the legacy file additionally
// donates its embedded child arrays onto the v2 items.
func LoadCatalog(dir, insurer string) (*Catalog, error) {
	v2Path := filepath.Join(dir, insurer+"_v2.json")
	legacyPath := filepath.Join(dir, insurer+".json")

	raw, loadedPath, err := readFirstCatalog(v2Path, legacyPath)
	if err != nil {
		return nil, err
	}
	if raw.Insurer == "" {
		raw.Insurer = insurer
	}

	c := Normalize(*raw)

	// The v2 file may predate the component schema; legacy embedded
	// children fill the gap when the older file is still around. A
	// legacy-only load donates its own embedded children the same way.
	legacyRaw := raw
	if loadedPath == v2Path {
		legacyRaw, _ = readCatalogFile(legacyPath)
	}
	if legacyRaw != nil {
		items, attached := AttachChildrenFromLegacy(c.Items, *legacyRaw)
		c.Items = items
		if attached > 0 {
			log.Printf("catalog %s: attached %d legacy children", insurer, attached)
		}
	}

	return &c, nil
}

// EmptyCatalog is the fallback for failed loads: no items, empty work
// packages, "no pricing data available" downstream.
func EmptyCatalog(insurer string) *Catalog {
	return &Catalog{
		Insurer:  insurer,
		Version:  "v2",
		Currency: "EUR",
		Items:    []CatalogItem{},
	}
}

func readFirstCatalog(paths ...string) (*RawCatalog, string, error) {
	var errs []string
	for _, path := range paths {
		raw, err := readCatalogFile(path)
		if err == nil {
			return raw, path, nil
		}
		errs = append(errs, err.Error())
	}
	return nil, "", fmt.Errorf("no loadable catalog among candidates: %s", strings.Join(errs, "; "))
}

func readCatalogFile(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw RawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &raw, nil
}
