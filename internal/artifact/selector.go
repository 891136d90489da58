// Package artifact locates dated ledger files and decides which one a session uses.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrNoChoice is returned by a Chooser that declines to pick a path.
var ErrNoChoice = errors.New("no artifact chosen")

// Chooser picks among recent artifacts or the new path. Implementations
// may prompt a user; they must return one of the offered paths.
type Chooser interface {
	Choose(recent []string, newPath string) (string, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(recent []string, newPath string) (string, error)

// Choose calls f.
func (f ChooserFunc) Choose(recent []string, newPath string) (string, error) {
	return f(recent, newPath)
}

// Selector finds artifacts in a storage directory.
type Selector struct {
	Dir    string
	Prefix string
	Ext    string
	Recent int // how many candidates to offer
	Now    func() time.Time
}

// Candidates returns paths of matching artifacts, sorted by descending file name.
// The DDMMYYYY stamp makes this order non-chronological across months; callers
// rely on the file-name order, not the calendar.
func (s *Selector) Candidates() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading storage dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if MatchesName(e.Name(), s.Prefix, s.Ext) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(s.Dir, n)
	}
	return paths, nil
}

// NewPath returns the artifact path for the current date.
func (s *Selector) NewPath() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return filepath.Join(s.Dir, FormatName(s.Prefix, now(), s.Ext))
}

// Select scans for candidates and delegates the decision to ChooseAmong.
func (s *Selector) Select(ch Chooser) (string, error) {
	candidates, err := s.Candidates()
	if err != nil {
		return "", err
	}
	return ChooseAmong(candidates, s.NewPath(), s.Recent, ch)
}

// ChooseAmong returns newPath when there are no candidates; otherwise it offers
// the first limit candidates and newPath to ch and validates the answer.
func ChooseAmong(candidates []string, newPath string, limit int, ch Chooser) (string, error) {
	if len(candidates) == 0 {
		return newPath, nil
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	choice, err := ch.Choose(candidates, newPath)
	if err != nil {
		return "", fmt.Errorf("choosing artifact: %w", err)
	}
	if choice == newPath {
		return choice, nil
	}
	for _, c := range candidates {
		if c == choice {
			return choice, nil
		}
	}
	return "", fmt.Errorf("choosing artifact: %q was not offered", choice)
}

// Latest chooses the first offered candidate.
func Latest() Chooser {
	return ChooserFunc(func(recent []string, _ string) (string, error) {
		return recent[0], nil
	})
}

// Fresh always chooses the new path.
func Fresh() Chooser {
	return ChooserFunc(func(_ []string, newPath string) (string, error) {
		return newPath, nil
	})
}
