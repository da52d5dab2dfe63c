package processor

import (
	"github.com/hashicorp-forge/docnav/pkg/docs"
	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

func toGeneratorDoc(doc *docs.Doc) sidebar.GeneratorDoc {
	return sidebar.GeneratorDoc{
		ID:              doc.ID,
		FrontMatter:     doc.FrontMatter,
		Source:          doc.Source,
		SourceDirName:   doc.SourceDirName,
		SidebarPosition: doc.SidebarPosition,
	}
}

func toGeneratorDocs(d []*docs.Doc) []sidebar.GeneratorDoc {
	out := make([]sidebar.GeneratorDoc, len(d))
	for i, doc := range d {
		out[i] = toGeneratorDoc(doc)
	}
	return out
}

func toGeneratorVersion(v *docs.Version) sidebar.GeneratorVersion {
	return sidebar.GeneratorVersion{
		VersionName: v.VersionName,
		ContentPath: v.ContentPath,
	}
}
