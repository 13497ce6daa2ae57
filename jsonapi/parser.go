// Package jsonapi normalizes JSON:API request documents into flat records
// ready for downstream validation and persistence. A compound document's
// included resources are indexed by (type, id) and every relationship
// linkage is replaced with the one canonical record for its target, so the
// resulting object graph is shared by reference and may be cyclic.
package jsonapi

import (
	"encoding/json"

	"github.com/jabbawookiees/django-rest-framework-json-api/util"
)

// MediaType is the JSON:API media type.
const MediaType = "application/vnd.api+json"

// Parser normalizes decoded JSON:API documents. The zero value is usable.
type Parser struct {
	// FormatKeys enables wire-format → underscore_case translation of
	// attribute and relationship keys.
	FormatKeys bool
}

// Result is the outcome of a parse: normalized records in primary-data
// order. Singular primary data yields exactly one record.
type Result struct {
	Records []map[string]any

	// Many reports whether the primary data was an array.
	Many bool
}

// One returns the record of a singular result, nil when there is none.
func (r Result) One() map[string]any {
	if len(r.Records) == 0 {
		return nil
	}

	return r.Records[0]
}

// ParseBytes decodes a request body and normalizes it. Bodies that are not
// valid JSON or whose top level is not an object are malformed.
func (p *Parser) ParseBytes(body []byte, rctx RequestContext) (Result, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Result{}, malformedf("invalid JSON: %s", err)
	}

	document, ok := decoded.(map[string]any)
	if !ok {
		return Result{}, malformedf("received document does not contain primary data")
	}

	return p.Parse(document, rctx)
}

// Parse normalizes a decoded JSON:API document.
//
// Relationship endpoints get their resource identifier objects back
// unchanged, after validation. For everything else the included array is
// indexed, the relationship graph is resolved over it, and each primary
// resource object is checked for type consistency (mutating requests only)
// and flattened into {id?, type, ...attributes, ...relationships, _meta?}.
func (p *Parser) Parse(document map[string]any, rctx RequestContext) (Result, error) {
	data, ok := document["data"]
	if !ok {
		return Result{}, malformedf("received document does not contain primary data")
	}

	if rctx.RelationshipEndpoint {
		return parseResourceIdentifiers(data)
	}

	idx, err := p.buildIncludedIndex(document)
	if err != nil {
		return Result{}, err
	}

	// resolve the whole graph before any record is assembled
	idx.resolve(p)

	switch primary := data.(type) {
	case map[string]any:
		record, err := p.parseResource(primary, document, idx, rctx)
		if err != nil {
			return Result{}, err
		}
		return Result{Records: []map[string]any{record}}, nil

	case []any:
		records := make([]map[string]any, 0, len(primary))
		for _, item := range primary {
			obj, ok := item.(map[string]any)
			if !ok {
				return Result{}, malformedf("primary data must contain resource objects")
			}

			record, err := p.parseResource(obj, document, idx, rctx)
			if err != nil {
				return Result{}, err
			}
			records = append(records, record)
		}
		return Result{Records: records, Many: true}, nil

	default:
		return Result{}, malformedf("primary data must be a resource object or an array of resource objects")
	}
}

// parseResource flattens one primary resource object into a normalized
// record. id is carried only when present on the input (creation requests
// may omit it); type is always carried.
func (p *Parser) parseResource(
	res map[string]any,
	document map[string]any,
	idx *includedIndex,
	rctx RequestContext,
) (map[string]any, error) {
	if rctx.mutating() {
		if err := checkResourceType(res, rctx.Allowed); err != nil {
			return nil, err
		}
	}

	record := map[string]any{}
	if id, ok := res["id"]; ok {
		record["id"] = id
	}
	record["type"] = res["type"]

	for k, v := range p.parseAttributes(res) {
		record[k] = v
	}

	for name, linkage := range p.parseRelationships(res) {
		record[name] = idx.resolveLinkage(linkage)
	}

	for k, v := range parseMetadata(document, res) {
		record[k] = v
	}

	return record, nil
}

// parseAttributes returns the resource object's attributes, re-cased to
// underscore format when key translation is enabled. Absent or empty
// attributes yield an empty map.
func (p *Parser) parseAttributes(res map[string]any) map[string]any {
	attributes, _ := res["attributes"].(map[string]any)
	if len(attributes) == 0 {
		return map[string]any{}
	}

	if p.FormatKeys {
		return util.FormatKeys(attributes, util.FormatUnderscore)
	}

	return attributes
}

// parseRelationships returns the resource object's relationship linkages
// keyed by (optionally re-cased) relationship name. Only linkages that are
// null, a single identifier object or a list of them are kept.
func (p *Parser) parseRelationships(res map[string]any) map[string]any {
	relationships, _ := res["relationships"].(map[string]any)
	if len(relationships) == 0 {
		return map[string]any{}
	}

	if p.FormatKeys {
		relationships = util.FormatKeys(relationships, util.FormatUnderscore)
	}

	parsed := map[string]any{}
	for name, entry := range relationships {
		entryObj, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		switch linkage := entryObj["data"].(type) {
		case nil:
			parsed[name] = nil
		case map[string]any:
			parsed[name] = linkage
		case []any:
			parsed[name] = linkage
		}
	}

	return parsed
}

// parseMetadata merges document-level meta with the resource object's own
// meta, resource-level keys overriding document-level ones, and wraps the
// result under a single _meta key. Empty metadata produces nothing.
func parseMetadata(document, res map[string]any) map[string]any {
	meta := map[string]any{}

	if docMeta, ok := document["meta"].(map[string]any); ok {
		for k, v := range docMeta {
			meta[k] = v
		}
	}

	if resMeta, ok := res["meta"].(map[string]any); ok {
		for k, v := range resMeta {
			meta[k] = v
		}
	}

	if len(meta) == 0 {
		return map[string]any{}
	}

	return map[string]any{"_meta": meta}
}

// parseResourceIdentifiers handles relationship endpoints: primary data is
// one resource identifier object or a list of them, returned unchanged.
// No attribute or relationship resolution happens here.
func parseResourceIdentifiers(data any) (Result, error) {
	switch d := data.(type) {
	case map[string]any:
		if !validIdentifierObject(d) {
			return Result{}, malformedf("received data is not a valid JSONAPI Resource Identifier Object")
		}
		return Result{Records: []map[string]any{d}}, nil

	case []any:
		records := make([]map[string]any, 0, len(d))
		for _, item := range d {
			obj, ok := item.(map[string]any)
			if !ok || !validIdentifierObject(obj) {
				return Result{}, malformedf("received data contains one or more malformed JSONAPI Resource Identifier Object(s)")
			}
			records = append(records, obj)
		}
		return Result{Records: records, Many: true}, nil

	default:
		return Result{}, malformedf("received data is not a valid JSONAPI Resource Identifier Object")
	}
}

func validIdentifierObject(obj map[string]any) bool {
	return hasMember(obj, "id") && hasMember(obj, "type")
}

// checkResourceType verifies the declared type of a resource object against
// the endpoint's allowed resource name(s). Callers gate on the HTTP method:
// read-only parsing never reaches this.
func checkResourceType(res map[string]any, allowed AllowedTypes) error {
	if allowed.IsZero() {
		return nil
	}

	declared, _ := res["type"].(string)
	if !allowed.Contains(declared) {
		return &ResourceTypeConflictError{Declared: declared, Allowed: allowed}
	}

	return nil
}
