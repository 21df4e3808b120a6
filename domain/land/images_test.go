package land

import (
	"fmt"
	"testing"
)

func TestImagesAddValidation(t *testing.T) {
	var im Images

	if _, err := im.Add(ImageInput{URL: "not a url"}); err == nil {
		t.Error("malformed URL should fail")
	}
	if _, err := im.Add(ImageInput{URL: "ftp://example.com/pic.jpg"}); err == nil {
		t.Error("non-http scheme should fail")
	}
	if _, err := im.Add(ImageInput{URL: "https://example.com/pic.jpg"}); err != nil {
		t.Errorf("valid https URL should pass: %v", err)
	}
}

func TestImagesWarnings(t *testing.T) {
	im, err := NewImages([]ImageInput{
		{URL: "https://example.com/pic.jpg"},              // extension, no warning
		{URL: "https://res.cloudinary.com/demo/abc123"},   // known host, no warning
		{URL: "https://example.com/page.html"},            // neither, warns
	})
	if err != nil {
		t.Fatalf("NewImages failed: %v", err)
	}
	if len(im.Warnings()) != 1 {
		t.Errorf("expected one warning, got %v", im.Warnings())
	}
}

func TestImagesWarningsFollowRemoval(t *testing.T) {
	im, err := NewImages([]ImageInput{
		{URL: "https://example.com/pic.jpg"},
		{URL: "https://example.com/page.html"},
	})
	if err != nil {
		t.Fatalf("NewImages failed: %v", err)
	}
	if len(im.Warnings()) != 1 {
		t.Fatalf("expected one warning, got %v", im.Warnings())
	}

	// Removing the dubious image takes its warning with it.
	next := im.Remove("https://example.com/page.html")
	if len(next.Warnings()) != 0 {
		t.Errorf("expected no warnings after removal, got %v", next.Warnings())
	}
	if len(im.Warnings()) != 1 {
		t.Error("the receiver must keep its own warning")
	}

	// Reordering keeps the set of warnings intact.
	reordered, err := im.Reorder([]string{
		"https://example.com/page.html",
		"https://example.com/pic.jpg",
	})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	if len(reordered.Warnings()) != 1 {
		t.Errorf("expected the warning to survive a reorder, got %v", reordered.Warnings())
	}
}

func TestImagesDuplicateAddIsNoOp(t *testing.T) {
	im, err := NewImages([]ImageInput{{URL: "https://example.com/pic.jpg", Alt: "first"}})
	if err != nil {
		t.Fatalf("NewImages failed: %v", err)
	}
	same, err := im.Add(ImageInput{URL: "https://example.com/pic.jpg", Alt: "second"})
	if err != nil {
		t.Fatalf("duplicate Add failed: %v", err)
	}
	if !same.Equals(im) {
		t.Error("adding a duplicate URL should be a no-op")
	}
}

func TestImagesLimit(t *testing.T) {
	var inputs []ImageInput
	for i := 0; i < 20; i++ {
		inputs = append(inputs, ImageInput{URL: fmt.Sprintf("https://example.com/pic-%d.jpg", i)})
	}
	im, err := NewImages(inputs)
	if err != nil {
		t.Fatalf("20 images should pass: %v", err)
	}
	if _, err := im.Add(ImageInput{URL: "https://example.com/pic-20.jpg"}); err == nil {
		t.Error("21st image should fail")
	}
}

func TestImagesRemoveResequences(t *testing.T) {
	im, err := NewImages([]ImageInput{
		{URL: "https://example.com/a.jpg"},
		{URL: "https://example.com/b.jpg"},
		{URL: "https://example.com/c.jpg"},
	})
	if err != nil {
		t.Fatalf("NewImages failed: %v", err)
	}

	next := im.Remove("https://example.com/b.jpg")
	if next.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", next.Count())
	}
	for i, item := range next.Items() {
		if item.DisplayOrder() != i {
			t.Errorf("image %d has display order %d", i, item.DisplayOrder())
		}
	}
	if im.Count() != 3 {
		t.Error("Remove must not mutate the receiver")
	}
}

func TestImagesReorder(t *testing.T) {
	im, err := NewImages([]ImageInput{
		{URL: "https://example.com/a.jpg"},
		{URL: "https://example.com/b.jpg"},
		{URL: "https://example.com/c.jpg"},
	})
	if err != nil {
		t.Fatalf("NewImages failed: %v", err)
	}

	reordered, err := im.Reorder([]string{
		"https://example.com/c.jpg",
		"https://example.com/a.jpg",
		"https://example.com/b.jpg",
	})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	if got := reordered.Primary().URL(); got != "https://example.com/c.jpg" {
		t.Errorf("Primary() = %q, want c.jpg first", got)
	}

	if _, err := im.Reorder([]string{"https://example.com/a.jpg"}); err == nil {
		t.Error("partial reorder list should fail")
	}
	if _, err := im.Reorder([]string{
		"https://example.com/a.jpg",
		"https://example.com/a.jpg",
		"https://example.com/b.jpg",
	}); err == nil {
		t.Error("reorder list with duplicates should fail")
	}
}

func TestImagesUpdateAlt(t *testing.T) {
	im, err := NewImages([]ImageInput{{URL: "https://example.com/a.jpg", Alt: "old"}})
	if err != nil {
		t.Fatalf("NewImages failed: %v", err)
	}
	next := im.UpdateAlt("https://example.com/a.jpg", "new alt")
	if next.Items()[0].Alt() != "new alt" {
		t.Errorf("Alt = %q, want %q", next.Items()[0].Alt(), "new alt")
	}
	if im.Items()[0].Alt() != "old" {
		t.Error("UpdateAlt must not mutate the receiver")
	}
	// Absent URL is a no-op.
	if !im.UpdateAlt("https://example.com/missing.jpg", "x").Equals(im) {
		t.Error("updating an absent URL should be a no-op")
	}
}
