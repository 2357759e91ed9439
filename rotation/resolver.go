package rotation

import (
	"path/filepath"

	"png2pdf/contracts"
)

// Resolver decides per page whether to rotate. When a Prompter is set it
// overrides the declarative set entirely.
type Resolver struct {
	set      RotateSet
	prompter *Prompter
}

func NewResolver(set RotateSet, prompter *Prompter) *Resolver {
	return &Resolver{set: set, prompter: prompter}
}

func (r *Resolver) Interactive() bool {
	return r.prompter != nil
}

// ShouldRotate resolves the zero-based page index. info must carry the
// image's native dimensions.
func (r *Resolver) ShouldRotate(index int, info contracts.ImageInfo) (bool, error) {
	if r.prompter != nil {
		return r.prompter.Confirm(index+1, filepath.Base(info.Path), info.IsLandscape())
	}
	return r.set.Has(index), nil
}
