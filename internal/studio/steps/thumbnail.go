package steps

import "strconv"

// Contrast grades thumbnail legibility.
type Contrast string

const (
	ContrastHigh   Contrast = "high"
	ContrastMedium Contrast = "medium"
	ContrastLow    Contrast = "low"
)

// Thumbnail is one cover candidate. Title, Focus and Description are catalog
// keys.
type Thumbnail struct {
	ID          int
	Title       string
	ImageURL    string
	Contrast    Contrast
	Focus       string
	Description string
}

// Thumbnails returns the generated cover candidates.
func Thumbnails() []Thumbnail {
	covers := []struct {
		image    string
		contrast Contrast
	}{
		{"https://images.unsplash.com/photo-1590650423710-ffa6e7f63440?fit=max&fm=jpg&q=80&w=1080", ContrastHigh},
		{"https://images.unsplash.com/photo-1723443956765-fdc2100ec80e?fit=max&fm=jpg&q=80&w=1080", ContrastHigh},
		{"https://images.unsplash.com/photo-1601758003122-53c40e686a19?fit=max&fm=jpg&q=80&w=1080", ContrastMedium},
		{"https://images.unsplash.com/photo-1649583501374-f2a7ab8a4cb6?fit=max&fm=jpg&q=80&w=1080", ContrastHigh},
	}
	out := make([]Thumbnail, 0, len(covers))
	for i, c := range covers {
		key := "content.thumbnail." + strconv.Itoa(i+1)
		out = append(out, Thumbnail{
			ID:          i + 1,
			Title:       key + ".title",
			ImageURL:    c.image,
			Contrast:    c.contrast,
			Focus:       key + ".focus",
			Description: key + ".description",
		})
	}
	return out
}

// LookupThumbnail returns the thumbnail with id.
func LookupThumbnail(id int) (Thumbnail, bool) {
	for _, thumb := range Thumbnails() {
		if thumb.ID == id {
			return thumb, true
		}
	}
	return Thumbnail{}, false
}

// KnownThumbnail reports whether id names a thumbnail.
func KnownThumbnail(id int) bool {
	_, ok := LookupThumbnail(id)
	return ok
}
