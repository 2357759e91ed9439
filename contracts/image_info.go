package contracts

// ImageInfo describes one discovered PNG. It is filled during the load phase
// and not modified afterwards.
type ImageInfo struct {
	Path         string
	Width        int
	Height       int
	ShouldRotate bool
}

func (i ImageInfo) IsLandscape() bool {
	return i.Width > i.Height
}

// PageSize returns the page size in points. Width and height are swapped when
// the image is rotated.
func (i ImageInfo) PageSize() (int, int) {
	if i.ShouldRotate {
		return i.Height, i.Width
	}
	return i.Width, i.Height
}
