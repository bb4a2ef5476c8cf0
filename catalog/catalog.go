// Package catalog holds the table of sky targets the engine is asked about.
//
// A catalog maps display names to targets. It is plain configuration data:
// the default table is embedded from default.yaml and callers may load their
// own with Load or Parse.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"github.com/soniakeys/unit"
	"gopkg.in/yaml.v3"

	"github.com/thurmanmarka/astropal/ephemeris"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrNotInCatalog is returned by Lookup for an unknown name.
var ErrNotInCatalog = errors.New("not in catalog")

// Entry is one named target.
type Entry struct {
	Name   string
	Target Target
	// Magnitude is the apparent visual magnitude, NaN when unknown.
	Magnitude float64
}

// Catalog is an ordered list of entries with unique names.
type Catalog struct {
	entries []Entry
}

// New returns a catalog of the given entries, validating each.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{}
	seen := map[string]bool{}
	for _, e := range entries {
		key := strings.ToLower(e.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: entry without a name", ErrInvalidTarget)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		seen[key] = true
		if err := e.Target.Validate(); err != nil {
			return nil, fmt.Errorf("%v: %w", e.Name, err)
		}
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Entries returns a copy of the catalog's entries in order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup finds an entry by name, ignoring case.
func (c *Catalog) Lookup(name string) (Entry, error) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrNotInCatalog, name)
}

// Filter returns a catalog of the entries for which keep returns true.
func (c *Catalog) Filter(keep func(Entry) bool) *Catalog {
	out := &Catalog{}
	for _, e := range c.entries {
		if keep(e) {
			out.entries = append(out.entries, e)
		}
	}
	return out
}

// BrighterThan is the static brightness pre-filter: it keeps entries whose
// magnitude is below limit, plus those whose magnitude is unknown.
func (c *Catalog) BrighterThan(limit float64) *Catalog {
	return c.Filter(func(e Entry) bool {
		return math.IsNaN(e.Magnitude) || e.Magnitude < limit
	})
}

// Planets returns the ephemeris entries other than the Sun and the Moon.
func (c *Catalog) Planets() *Catalog {
	return c.Filter(func(e Entry) bool {
		return e.Target.Kind == Ephemeris &&
			e.Target.Body != ephemeris.Sun && e.Target.Body != ephemeris.Moon
	})
}

type bodyRecord struct {
	Name      string   `yaml:"name"`
	Body      string   `yaml:"body"`
	Magnitude *float64 `yaml:"magnitude"`
}

type objectRecord struct {
	Name      string      `yaml:"name"`
	RA        sexagesimal `yaml:"ra"`
	Dec       sexagesimal `yaml:"dec"`
	Magnitude *float64    `yaml:"magnitude"`
}

type file struct {
	Bodies  []bodyRecord   `yaml:"bodies"`
	Objects []objectRecord `yaml:"objects"`
}

func magnitude(m *float64) float64 {
	if m == nil {
		return math.NaN()
	}
	return *m
}

// Parse builds a catalog from its YAML form.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := cmdyaml.ParseConfig(data, &f); err != nil {
		return nil, err
	}
	return f.catalog()
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	var f file
	if err := cmdyaml.ParseConfigFile(context.Background(), path, &f); err != nil {
		return nil, err
	}
	return f.catalog()
}

// Default returns the built-in catalog: the Moon, the seven planets and
// fifteen bright Messier objects.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

func (f file) catalog() (*Catalog, error) {
	entries := make([]Entry, 0, len(f.Bodies)+len(f.Objects))
	for _, b := range f.Bodies {
		entries = append(entries, Entry{
			Name:      b.Name,
			Target:    BodyTarget(ephemeris.ParseBody(b.Body)),
			Magnitude: magnitude(b.Magnitude),
		})
	}
	for _, o := range f.Objects {
		if !o.RA.set || !o.Dec.set {
			return nil, fmt.Errorf("%v: %w: ra and dec are required", o.Name, ErrInvalidTarget)
		}
		entries = append(entries, Entry{
			Name:      o.Name,
			Target:    FixedTarget(o.RA.value, o.Dec.value),
			Magnitude: magnitude(o.Magnitude),
		})
	}
	return New(entries...)
}

// sexagesimal accepts either a decimal scalar or a [whole, minutes, seconds]
// sequence. A negative sign on any component negates the whole value, so
// [-0, 30, 0] and [0, -30, 0] are both -0.5.
type sexagesimal struct {
	value float64
	set   bool
}

func (s *sexagesimal) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if err := node.Decode(&s.value); err != nil {
			return err
		}
	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 3 {
			return fmt.Errorf("line %d: want 1 to 3 components, got %d", node.Line, len(node.Content))
		}
		var parts [3]float64
		neg := false
		for i, n := range node.Content {
			if err := n.Decode(&parts[i]); err != nil {
				return err
			}
			if parts[i] < 0 || strings.HasPrefix(strings.TrimSpace(n.Value), "-") {
				neg = true
			}
		}
		last := len(node.Content) - 1
		for i := 0; i < last; i++ {
			if parts[i] != math.Trunc(parts[i]) {
				return fmt.Errorf("line %d: only the last component may have a fraction, got %v", node.Line, parts[i])
			}
		}
		for i := 1; i <= last; i++ {
			if math.Abs(parts[i]) >= 60 {
				return fmt.Errorf("line %d: component %v out of range [0, 60)", node.Line, parts[i])
			}
		}
		whole, mins, sec := math.Abs(parts[0]), math.Abs(parts[1]), math.Abs(parts[2])
		// Fold a fractional last component into seconds.
		switch last {
		case 0:
			whole, sec = 0, whole*3600
		case 1:
			mins, sec = 0, mins*60
		}
		// unit.FromSexa takes the sign separately and the magnitudes.
		sign := byte(' ')
		if neg {
			sign = '-'
		}
		s.value = unit.FromSexa(sign, int(whole), int(mins), sec)
	default:
		return fmt.Errorf("line %d: expected a number or a sequence", node.Line)
	}
	s.set = true
	return nil
}
