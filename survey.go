package astropal

import (
	"fmt"
	"time"

	"cloudeng.io/errors"

	"github.com/thurmanmarka/astropal/catalog"
)

// Verdict is the outcome of observing one catalog entry.
type Verdict struct {
	Name     string
	Target   catalog.Target
	Position Apparent
	Visible  bool
	// Err is non-nil when the target could not be observed; Position and
	// Visible are then zero.
	Err error
}

// Survey holds the verdicts for a whole catalog at one instant, in catalog
// order.
type Survey struct {
	Time     time.Time
	Verdicts []Verdict
}

// Visible returns the verdicts for targets above the threshold.
func (s Survey) Visible() []Verdict {
	var out []Verdict
	for _, v := range s.Verdicts {
		if v.Err == nil && v.Visible {
			out = append(out, v)
		}
	}
	return out
}

// Err returns every per-target failure combined, or nil.
func (s Survey) Err() error {
	var errs errors.M
	for _, v := range s.Verdicts {
		errs.Append(v.Err)
	}
	return errs.Err()
}

func (e *Engine) verdict(f Frame, entry catalog.Entry, t time.Time) Verdict {
	v := Verdict{Name: entry.Name, Target: entry.Target}
	p, err := Observe(e.src, f, entry.Target, t)
	if err != nil {
		v.Err = fmt.Errorf("%v: %w", entry.Name, err)
		return v
	}
	v.Position = p
	v.Visible = e.Visible(p)
	return v
}

// Survey observes every entry of cat from f at t. A target that cannot be
// observed gets a Verdict carrying its error; the others are unaffected.
func (e *Engine) Survey(f Frame, cat *catalog.Catalog, t time.Time) Survey {
	s := Survey{Time: t, Verdicts: make([]Verdict, 0, cat.Len())}
	for _, entry := range cat.Entries() {
		s.Verdicts = append(s.Verdicts, e.verdict(f, entry, t))
	}
	return s
}

// Lookup observes the single entry of cat called name (case insensitive).
// It returns catalog.ErrNotInCatalog for unknown names and the observation
// error, if any, for known ones.
func (e *Engine) Lookup(f Frame, cat *catalog.Catalog, name string, t time.Time) (Verdict, error) {
	entry, err := cat.Lookup(name)
	if err != nil {
		return Verdict{}, err
	}
	v := e.verdict(f, entry, t)
	return v, v.Err
}
