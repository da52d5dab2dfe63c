package docs

// Doc is the metadata of a single document of a content version.
type Doc struct {
	// ID is unique within a version, e.g. "guides/install".
	ID          string
	Title       string
	Description string
	Slug        string

	// Source is the path of the file, content path included.
	Source string
	// SourceDirName is the directory of the file relative to the content
	// path, "." for the content root.
	SourceDirName string

	SidebarPosition *float64
	FrontMatter     map[string]any
}

// Version describes one content version, e.g. "current" or "2.0".
type Version struct {
	VersionName string
	Label       string
	ContentPath string
}
