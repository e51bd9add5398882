package domain

import "slices"

// InstalledSet is the ordered collection of packages an installer accepted during one
// resolution cycle. It is created at plugin activation and shared between the installer
// (which fills it) and the reconciler (which reads it after solving).
type InstalledSet struct {
	packages []Package
	index    map[string]int
}

// NewInstalledSet creates an empty InstalledSet.
func NewInstalledSet() *InstalledSet {
	return &InstalledSet{index: make(map[string]int)}
}

// Add records pkg. A package already recorded under the same name keeps its position
// and is updated in place.
func (s *InstalledSet) Add(pkg Package) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[pkg.Name]; ok {
		s.packages[i] = pkg
		return
	}
	s.index[pkg.Name] = len(s.packages)
	s.packages = append(s.packages, pkg)
}

// Packages returns the recorded packages in insertion order.
func (s *InstalledSet) Packages() []Package {
	return slices.Clone(s.packages)
}

// Versions maps every recorded package name to its pretty version.
func (s *InstalledSet) Versions() PluginMap {
	versions := make(PluginMap, len(s.packages))
	for _, pkg := range s.packages {
		versions[pkg.Name] = pkg.PrettyVersion
	}
	return versions
}

// Len returns the number of recorded packages.
func (s *InstalledSet) Len() int {
	return len(s.packages)
}
