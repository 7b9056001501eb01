// SPDX-License-Identifier: MIT

package plotmat

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// DefaultSize is the edge length used by Save.
const DefaultSize = 4 * vg.Inch

// Save writes p to path as a DefaultSize square.
func Save(p *plot.Plot, path string) error {
	return SaveSized(p, path, DefaultSize, DefaultSize)
}

// SaveSized writes p to path with the given width and height. The image
// format is chosen from the file extension.
func SaveSized(p *plot.Plot, path string, w, h vg.Length) error {
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("plotmat.Save %s: %w", path, err)
	}

	return nil
}
