package entities

// Package represents one entry of the `cargo metadata` package list.
// Only the fields this tool consumes are mapped; the format-version-1
// document carries many more.
type Package struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	Description  string `json:"description"`
	ManifestPath string `json:"manifest_path"`
}

// Metadata is the decoded `cargo metadata --format-version 1` document.
type Metadata struct {
	Packages         []Package `json:"packages"`
	WorkspaceMembers []string  `json:"workspace_members"`
	WorkspaceRoot    string    `json:"workspace_root"`
}

// FindPackage returns the first package whose name matches exactly.
// First match wins when the graph contains several packages with the
// same name (e.g. the same crate at different versions).
func (m *Metadata) FindPackage(name string) (Package, bool) {
	for _, pkg := range m.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return Package{}, false
}

// WorkspacePackages returns only the packages that are members of the
// workspace itself, preserving the order reported by cargo.
func (m *Metadata) WorkspacePackages() []Package {
	members := make(map[string]bool, len(m.WorkspaceMembers))
	for _, id := range m.WorkspaceMembers {
		members[id] = true
	}

	var pkgs []Package
	for _, pkg := range m.Packages {
		if members[pkg.ID] {
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs
}
