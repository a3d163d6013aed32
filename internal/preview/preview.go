// Package preview orchestrates the name transformer across a file
// collection and selection set, producing a deterministic list of
// proposed renames.
package preview

import (
	"sort"

	"github.com/Querulantenkind/rnm/internal/transform"
	"github.com/Querulantenkind/rnm/pkg/types"
)

// Generate builds previews for the selected files. An empty selection
// considers every non-directory file. Selected indices are processed
// in ascending order; that order feeds the Numbering counter, so the
// sequence is reproducible regardless of how the selection set
// iterates. The returned batch is sorted by original name for
// display only.
func Generate(files []types.FileEntry, selected map[int]struct{}, mode types.RenameMode, opts types.Options) ([]types.RenamePreview, error) {
	tr, err := transform.New(mode, opts)
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(files))
	if len(selected) == 0 {
		for i := range files {
			indices = append(indices, i)
		}
	} else {
		for i := range selected {
			indices = append(indices, i)
		}
		sort.Ints(indices)
	}

	step := opts.NumberStep
	if step == 0 {
		step = 1
	}
	counter := opts.NumberStart

	var previews []types.RenamePreview
	for _, idx := range indices {
		if idx < 0 || idx >= len(files) {
			continue
		}
		file := files[idx]
		if file.IsDir {
			continue
		}

		newName := tr.Apply(file.Name, counter, file.ModTime)
		if mode == types.ModeNumbering {
			counter += step
		}

		previews = append(previews, types.RenamePreview{
			OriginalName: file.Name,
			NewName:      newName,
			WillChange:   newName != file.Name,
			SourceIndex:  idx,
		})
	}

	// Counter assignment already happened; this sort is presentation
	// order only.
	sort.Slice(previews, func(i, j int) bool {
		return previews[i].OriginalName < previews[j].OriginalName
	})

	return previews, nil
}

// Changes counts previews that will actually rename a file.
func Changes(previews []types.RenamePreview) int {
	n := 0
	for _, p := range previews {
		if p.WillChange {
			n++
		}
	}
	return n
}
