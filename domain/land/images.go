package land

import (
	"net/url"
	"strings"

	"landlisting/domain/shared"
)

const imagesMaxCount = 20

// imageExtensions are recognized when sanity-checking image URLs.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".avif"}

// knownImageHosts are hosting patterns that serve images without extensions.
var knownImageHosts = []string{
	"cloudinary.com",
	"imgix.net",
	"s3.amazonaws.com",
	"images.unsplash.com",
	"googleusercontent.com",
	"blob.core.windows.net",
}

// ImageInput is the raw material for an image descriptor.
type ImageInput struct {
	URL     string
	Alt     string
	Caption string
}

// Image is a single image descriptor within the collection.
type Image struct {
	url          string
	alt          string
	caption      string
	displayOrder int
}

// URL returns the image URL.
func (i Image) URL() string { return i.url }

// Alt returns the alt text, may be empty.
func (i Image) Alt() string { return i.alt }

// Caption returns the caption, may be empty.
func (i Image) Caption() string { return i.caption }

// DisplayOrder returns the position in the gallery, starting at 0.
func (i Image) DisplayOrder() int { return i.displayOrder }

// Images is an ordered collection of image descriptors.
// Invariants: at most 20 images, every URL well-formed http(s).
// URLs that do not look like images produce non-fatal warnings, derived from
// the current items so a removed image takes its warning with it.
// Mutators return new instances and keep display order contiguous.
type Images struct {
	items []Image
}

// NewImages validates and constructs an image collection.
func NewImages(inputs []ImageInput) (Images, error) {
	imgs := Images{}
	for _, input := range inputs {
		next, err := imgs.Add(input)
		if err != nil {
			return Images{}, err
		}
		imgs = next
	}
	return imgs, nil
}

// Add returns a new collection including the image at the end of the gallery.
// Adding an exact duplicate URL is a no-op returning an equal collection.
func (im Images) Add(input ImageInput) (Images, error) {
	raw := strings.TrimSpace(input.URL)
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return Images{}, shared.NewValidationError("LandImages", "url", "must be a valid http(s) URL: "+raw)
	}

	for _, existing := range im.items {
		if existing.url == raw {
			return im.clone(), nil
		}
	}
	if len(im.items) >= imagesMaxCount {
		return Images{}, shared.NewValidationError("LandImages", "url", "at most 20 images are allowed")
	}

	next := im.clone()
	next.items = append(next.items, Image{
		url:          raw,
		alt:          strings.TrimSpace(input.Alt),
		caption:      strings.TrimSpace(input.Caption),
		displayOrder: len(next.items),
	})
	return next, nil
}

// imageURLWarning returns a non-fatal note when the URL neither carries a
// recognizable image extension nor points at a known hosting pattern.
func imageURLWarning(u *url.URL) string {
	path := strings.ToLower(u.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return ""
		}
	}
	host := strings.ToLower(u.Host)
	for _, known := range knownImageHosts {
		if strings.HasSuffix(host, known) || strings.Contains(host, known) {
			return ""
		}
	}
	return "URL may not point to an image: " + u.String()
}

// Remove returns a new collection without the URL, re-sequencing display
// order. Removing an absent URL is a no-op.
func (im Images) Remove(rawURL string) Images {
	target := strings.TrimSpace(rawURL)
	next := Images{}
	for _, item := range im.items {
		if item.url == target {
			continue
		}
		item.displayOrder = len(next.items)
		next.items = append(next.items, item)
	}
	return next
}

// Reorder returns a new collection with display order following the given
// URL sequence, which must be a permutation of the current URLs.
func (im Images) Reorder(urls []string) (Images, error) {
	if len(urls) != len(im.items) {
		return Images{}, shared.NewValidationError("LandImages", "order", "reorder list must contain every image URL exactly once")
	}

	byURL := make(map[string]Image, len(im.items))
	for _, item := range im.items {
		byURL[item.url] = item
	}

	next := Images{}
	seen := make(map[string]bool, len(urls))
	for i, u := range urls {
		item, ok := byURL[strings.TrimSpace(u)]
		if !ok || seen[item.url] {
			return Images{}, shared.NewValidationError("LandImages", "order", "reorder list must contain every image URL exactly once")
		}
		seen[item.url] = true
		item.displayOrder = i
		next.items = append(next.items, item)
	}
	return next, nil
}

// UpdateAlt returns a new collection with the alt text replaced for the URL.
// Updating an absent URL is a no-op.
func (im Images) UpdateAlt(rawURL, alt string) Images {
	target := strings.TrimSpace(rawURL)
	next := im.clone()
	for i, item := range next.items {
		if item.url == target {
			next.items[i].alt = strings.TrimSpace(alt)
			break
		}
	}
	return next
}

// Primary returns the image with the lowest display order, nil when empty.
func (im Images) Primary() *Image {
	if len(im.items) == 0 {
		return nil
	}
	primary := im.items[0]
	for _, item := range im.items[1:] {
		if item.displayOrder < primary.displayOrder {
			primary = item
		}
	}
	return &primary
}

// Items returns a copy of the images in gallery order.
func (im Images) Items() []Image {
	out := make([]Image, len(im.items))
	copy(out, im.items)
	return out
}

// URLs returns the image URLs in gallery order.
func (im Images) URLs() []string {
	out := make([]string, len(im.items))
	for i, item := range im.items {
		out[i] = item.url
	}
	return out
}

// Count returns the number of images.
func (im Images) Count() int { return len(im.items) }

// IsEmpty reports whether no images are present.
func (im Images) IsEmpty() bool { return len(im.items) == 0 }

// Warnings returns the non-fatal notes for the images currently present.
func (im Images) Warnings() []string {
	var out []string
	for _, item := range im.items {
		parsed, err := url.Parse(item.url)
		if err != nil {
			continue
		}
		if warning := imageURLWarning(parsed); warning != "" {
			out = append(out, warning)
		}
	}
	return out
}

func (im Images) clone() Images {
	items := make([]Image, len(im.items))
	copy(items, im.items)
	return Images{items: items}
}

// Equals compares descriptor sequences exactly.
func (im Images) Equals(other Images) bool {
	if len(im.items) != len(other.items) {
		return false
	}
	for i, item := range im.items {
		if item != other.items[i] {
			return false
		}
	}
	return true
}
