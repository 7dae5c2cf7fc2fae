package entities

import (
	"fmt"
	"time"
)

// ContentTypePDF is the media type of rendered artifacts
const ContentTypePDF = "application/pdf"

// PdfArtifact is a rendered army book flavor
type PdfArtifact struct {
	ArmyBookUID   string
	Flavor        Flavor
	Bytes         []byte
	CreatedAt     time.Time
	Revision      int64
	SourceService string
}

// Key is the cache key "<uid>_<flavor>"
func (p *PdfArtifact) Key() string {
	return ArtifactKey(p.ArmyBookUID, p.Flavor)
}

// FreshFor reports whether the artifact was rendered from the book's current content.
// Timestamps compare at second resolution.
func (p *PdfArtifact) FreshFor(book *ArmyBook) bool {
	if p == nil || book == nil {
		return false
	}
	return p.CreatedAt.Unix() == book.ModifiedAt.Unix() && p.Revision == book.Revision
}

// ArtifactKey builds the cache key for a book flavor
func ArtifactKey(uid string, flavor Flavor) string {
	return fmt.Sprintf("%s_%s", uid, flavor)
}

// PdfFilename is "<aberration> - <name> <version>.pdf"
func PdfFilename(aberration, name, version string) string {
	return fmt.Sprintf("%s - %s %s.pdf", aberration, name, version)
}
