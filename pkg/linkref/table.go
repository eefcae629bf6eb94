// Package linkref holds link reference definitions: the write-once table the
// block parser fills and the inline parser reads, plus the shared scanners
// for labels, destinations and titles.
package linkref

import "slices"

// Definition is a link reference definition such as [label]: /url "title".
type Definition struct {
	// Label is the label as written, without brackets.
	Label string

	// Normalized is the matching key produced by NormalizeLabel.
	Normalized string

	// Destination is the unescaped link destination.
	Destination string

	// Title is the unescaped title, empty when absent.
	Title string

	// Line is the 1-based source line the definition starts on.
	Line int

	// Duplicate is true when an earlier definition claimed the same label.
	Duplicate bool
}

// Builder collects definitions during block parsing.
// The zero value is ready to use.
type Builder struct {
	byLabel map[string]*Definition
	all     []*Definition
}

// Add records def. The first definition of a normalized label wins; later
// ones are kept as duplicates and never returned by Lookup.
// It reports whether def became the active definition.
func (b *Builder) Add(def Definition) bool {
	if def.Normalized == "" {
		def.Normalized = NormalizeLabel(def.Label)
	}
	if def.Normalized == "" {
		return false
	}

	if b.byLabel == nil {
		b.byLabel = make(map[string]*Definition)
	}

	stored := &def
	b.all = append(b.all, stored)

	if _, exists := b.byLabel[def.Normalized]; exists {
		stored.Duplicate = true
		return false
	}
	b.byLabel[def.Normalized] = stored
	return true
}

// Len returns the number of distinct labels added so far.
func (b *Builder) Len() int {
	return len(b.byLabel)
}

// Build returns the immutable table. The builder must not be used afterwards.
func (b *Builder) Build() *Table {
	table := &Table{byLabel: b.byLabel, all: b.all}
	b.byLabel = nil
	b.all = nil
	return table
}

// Table is a read-only set of definitions keyed by normalized label.
// A nil *Table is valid and empty. Tables are safe for concurrent reads.
type Table struct {
	byLabel map[string]*Definition
	all     []*Definition
}

// Lookup normalizes label and returns the matching definition.
func (t *Table) Lookup(label string) (Definition, bool) {
	if t == nil {
		return Definition{}, false
	}
	def, ok := t.byLabel[NormalizeLabel(label)]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// Len returns the number of distinct labels.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byLabel)
}

// Definitions returns every definition in source order, duplicates included.
func (t *Table) Definitions() []Definition {
	if t == nil {
		return nil
	}
	defs := make([]Definition, 0, len(t.all))
	for _, def := range t.all {
		defs = append(defs, *def)
	}
	return defs
}

// Labels returns the normalized labels in sorted order.
func (t *Table) Labels() []string {
	if t == nil {
		return nil
	}
	labels := make([]string, 0, len(t.byLabel))
	for label := range t.byLabel {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}
