package jsonapi

// includedIndex owns one normalized record per (type, id) found in the
// document's included array, plus the raw resource objects whose
// relationships still have to be resolved onto those records.
type includedIndex struct {
	records map[ResourceIdentifier]map[string]any
	raw     map[ResourceIdentifier]map[string]any
}

// buildIncludedIndex reads the document's included array (absent means
// empty) and indexes a normalized {id, type, ...attributes} record per
// entry. Duplicate identifiers are resolved last-write-wins in document
// order. An included object without a type or an id cannot be indexed and
// makes the document malformed.
func (p *Parser) buildIncludedIndex(document map[string]any) (*includedIndex, error) {
	idx := &includedIndex{
		records: map[ResourceIdentifier]map[string]any{},
		raw:     map[ResourceIdentifier]map[string]any{},
	}

	included, _ := document["included"].([]any)

	for _, item := range included {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, malformedf("included must contain resource objects")
		}

		ident, ok := identifierOf(obj)
		if !ok {
			return nil, malformedf("included resource object is missing a type or an id")
		}

		record := map[string]any{
			"id":   ident.ID,
			"type": ident.Type,
		}
		for k, v := range p.parseAttributes(obj) {
			record[k] = v
		}

		idx.records[ident] = record
		idx.raw[ident] = obj
	}

	return idx, nil
}

// resolve rewrites the relationship slots of every indexed record in place.
// Each slot is assigned the one record the index owns for the linked
// identifier, so two resources referencing each other end up holding the
// same maps and cyclic documents close after this single pass. The pass
// must complete before any record is read out, otherwise records would be
// consumed with bare identifiers still in them.
func (idx *includedIndex) resolve(p *Parser) {
	for ident, obj := range idx.raw {
		record := idx.records[ident]
		for name, linkage := range p.parseRelationships(obj) {
			record[name] = idx.resolveLinkage(linkage)
		}
	}
}

// resolveLinkage maps a relationship linkage to its resolved form: nil
// stays nil, a single identifier becomes the indexed record (or passes
// through unresolved), a list is resolved element-wise preserving order.
func (idx *includedIndex) resolveLinkage(linkage any) any {
	switch l := linkage.(type) {
	case map[string]any:
		return idx.lookup(l)
	case []any:
		resolved := make([]any, len(l))
		for i, item := range l {
			if obj, ok := item.(map[string]any); ok {
				resolved[i] = idx.lookup(obj)
			} else {
				resolved[i] = item
			}
		}
		return resolved
	default:
		return linkage
	}
}

// lookup returns the canonical record for an identifier object. A linkage
// pointing outside the included array is not an error: the identifier is
// returned unchanged.
func (idx *includedIndex) lookup(identifier map[string]any) any {
	ident, ok := identifierOf(identifier)
	if !ok {
		return identifier
	}

	if record, ok := idx.records[ident]; ok {
		return record
	}

	return identifier
}
