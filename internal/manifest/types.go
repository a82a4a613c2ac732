package manifest

// PackageJSON is the in-memory form of a package.json manifest.
//
// Fields are declared in the order they are written: the fields of the
// default template come first, the rest follow. Name, Version, Description,
// Author and License are always written; every other field is omitted when
// it holds its zero value. Slices and maps use omitzero, so an empty but
// non-nil collection is still written (e.g. "keywords": []).
type PackageJSON struct {
	// Name of the package. No charset or length rules are applied here.
	Name string `json:"name" yaml:"name"`
	// Version is conventionally a semantic version but is not parsed.
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	// Main is the module entry point, relative to the package root.
	Main string `json:"main,omitempty" yaml:"main,omitempty"`
	// Scripts maps lifecycle event names to shell commands.
	Scripts  map[string]string `json:"scripts,omitzero" yaml:"scripts,omitempty"`
	Keywords []string          `json:"keywords,omitzero" yaml:"keywords,omitempty"`
	Author   Author            `json:"author" yaml:"author"`
	// License is an SPDX expression or a free-form reference.
	License string `json:"license" yaml:"license"`

	Homepage     string            `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Bugs         *Bug              `json:"bugs,omitempty" yaml:"bugs,omitempty"`
	Contributors []Person          `json:"contributors,omitzero" yaml:"contributors,omitempty"`
	Funding      *FundingField     `json:"funding,omitempty" yaml:"funding,omitempty"`
	Files        []string          `json:"files,omitzero" yaml:"files,omitempty"`
	Browser      string            `json:"browser,omitempty" yaml:"browser,omitempty"`
	Bin          map[string]string `json:"bin,omitzero" yaml:"bin,omitempty"`
	Man          *ManField         `json:"man,omitempty" yaml:"man,omitempty"`
	Directories  *Directories      `json:"directories,omitempty" yaml:"directories,omitempty"`
	Repository   *RepositoryField  `json:"repository,omitempty" yaml:"repository,omitempty"`

	// Config holds values that persist across script runs.
	Config map[string]string `json:"config,omitzero" yaml:"config,omitempty"`

	Dependencies         map[string]string             `json:"dependencies,omitzero" yaml:"dependencies,omitempty"`
	DevDependencies      map[string]string             `json:"devDependencies,omitzero" yaml:"devDependencies,omitempty"`
	PeerDependencies     map[string]string             `json:"peerDependencies,omitzero" yaml:"peerDependencies,omitempty"`
	PeerDependenciesMeta map[string]PeerDependencyMeta `json:"peerDependenciesMeta,omitzero" yaml:"peerDependenciesMeta,omitempty"`
	// BundleDependencies names packages bundled on publish. They are
	// expected to appear in Dependencies, which is not checked.
	BundleDependencies   []string          `json:"bundleDependencies,omitzero" yaml:"bundleDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitzero" yaml:"optionalDependencies,omitempty"`
	Overrides            map[string]string `json:"overrides,omitzero" yaml:"overrides,omitempty"`

	// Engines maps a runtime or tool name to a version range.
	Engines map[string]string `json:"engines,omitzero" yaml:"engines,omitempty"`
	// OS and CPU entries may be negated with a leading "!".
	OS  []string `json:"os,omitzero" yaml:"os,omitempty"`
	CPU []string `json:"cpu,omitzero" yaml:"cpu,omitempty"`

	// Private asks publish tooling to refuse publishing. Not enforced here.
	Private bool `json:"private,omitempty" yaml:"private,omitempty"`
	// PublishConfig is a mapping of publish-time settings such as access,
	// registry, tag and provenance. Values must be JSON-native (string,
	// float64, bool, nil, []any or map[string]any); other Go types are
	// written fine but load back as their JSON-native equivalent.
	PublishConfig map[string]any `json:"publishConfig,omitzero" yaml:"publishConfig,omitempty"`
	Workspaces    []string       `json:"workspaces,omitzero" yaml:"workspaces,omitempty"`
}

// Person is an author or contributor.
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Bug points at the issue tracker. At least one field is usually set.
type Bug struct {
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Funding describes one way to fund the package.
type Funding struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
}

// Directories is advisory layout information.
type Directories struct {
	Bin     string `json:"bin,omitempty" yaml:"bin,omitempty"`
	Doc     string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
	Lib     string `json:"lib,omitempty" yaml:"lib,omitempty"`
	Man     string `json:"man,omitempty" yaml:"man,omitempty"`
	Test    string `json:"test,omitempty" yaml:"test,omitempty"`
}

// Repository locates the package source.
type Repository struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
	// Directory is the package path inside a monorepo.
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`
}

// PeerDependencyMeta carries extra information about a peer dependency.
type PeerDependencyMeta struct {
	Optional bool `json:"optional" yaml:"optional"`
}
