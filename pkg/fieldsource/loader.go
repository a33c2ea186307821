package fieldsource

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Store holds option lists keyed by index name.
type Store struct {
	indices map[string]Options
	sources map[string]string
}

type documentFile struct {
	Indices map[string][]Option `json:"indices" yaml:"indices"`
}

// LoadFS walks fsys and parses every JSON/YAML file as an index document:
//
//	indices:
//	  logs:
//	    - value: host
//	      type: string
//
// A nil fsys yields an empty store. Defining an index twice is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		indices: make(map[string]Options),
		sources: make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSourceFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldsource: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Indices {
			index := strings.TrimSpace(name)
			if index == "" {
				return fmt.Errorf("fieldsource: file %s defines an empty index name", path)
			}
			if prev, exists := store.sources[index]; exists {
				return fmt.Errorf("fieldsource: duplicate index %q (files %s, %s)", index, prev, path)
			}
			opts, err := normaliseOptions(raw, index, path)
			if err != nil {
				return err
			}
			store.indices[index] = opts
			store.sources[index] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Options returns a copy of the option list for index.
func (s *Store) Options(index string) (Options, bool) {
	if s == nil {
		return nil, false
	}
	opts, ok := s.indices[index]
	if !ok {
		return nil, false
	}
	return append(Options(nil), opts...), true
}

// Indices returns the known index names sorted.
func (s *Store) Indices() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.indices))
	for name := range s.indices {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any index.
func (s *Store) Empty() bool {
	return s == nil || len(s.indices) == 0
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldsource: file %s is empty", source)
	}
	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("fieldsource: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("fieldsource: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseOptions(raw []Option, index, source string) (Options, error) {
	out := make(Options, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, opt := range raw {
		value := strings.TrimSpace(opt.Value)
		if value == "" {
			return nil, fmt.Errorf("fieldsource: index %q (file %s) has an empty value at position %d", index, source, i)
		}
		if _, dup := seen[value]; dup {
			return nil, fmt.Errorf("fieldsource: index %q (file %s) repeats value %q", index, source, value)
		}
		seen[value] = struct{}{}
		out = append(out, Option{
			Value: value,
			Label: strings.TrimSpace(opt.Label),
			Type:  strings.ToLower(strings.TrimSpace(opt.Type)),
		})
	}
	return out, nil
}

func isSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
