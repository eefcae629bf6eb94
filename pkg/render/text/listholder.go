package text

import (
	"strconv"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// listHolder is the render state of one list. Holders chain to the list
// they are nested in and are dropped when their list has been rendered.
type listHolder struct {
	parent *listHolder

	// base is the writer prefix in effect where the outermost list of the
	// chain started (blockquote markers).
	base string
	// indent is the parent's indent plus one unit; empty at the top level.
	indent string

	ordered   bool
	bullet    string
	delimiter string
	counter   int
}

func newListHolder(parent *listHolder, list *mdast.ListAttrs, unit, base string) *listHolder {
	h := &listHolder{parent: parent, base: base}
	if parent != nil {
		h.base = parent.base
		h.indent = parent.indent + unit
	}

	if list == nil {
		h.bullet = "-"
		return h
	}
	if list.Ordered {
		h.ordered = true
		h.counter = list.StartNumber
		h.delimiter = list.Delimiter
		if h.delimiter == "" {
			h.delimiter = "."
		}
		return h
	}
	h.bullet = list.BulletMarker
	if h.bullet == "" {
		h.bullet = "-"
	}
	return h
}

// nextMarker returns the marker for the next item. Ordered lists advance
// their counter by one per call.
func (h *listHolder) nextMarker() string {
	if !h.ordered {
		return h.bullet
	}
	marker := strconv.Itoa(h.counter) + h.delimiter
	h.counter++
	return marker
}
