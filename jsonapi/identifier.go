package jsonapi

// ResourceIdentifier addresses a single resource by its type and id.
// It is comparable and used as the key of the included-resource index.
type ResourceIdentifier struct {
	Type string
	ID   string
}

// identifierOf extracts the identifier of a raw resource object.
// ok is false when either member is missing or not a non-empty string.
func identifierOf(obj map[string]any) (ResourceIdentifier, bool) {
	typ, typOK := obj["type"].(string)
	id, idOK := obj["id"].(string)

	if !typOK || !idOK || typ == "" || id == "" {
		return ResourceIdentifier{}, false
	}

	return ResourceIdentifier{Type: typ, ID: id}, true
}

// hasMember reports whether the object carries a usable value under key.
// Empty strings and explicit nulls count as absent.
func hasMember(obj map[string]any, key string) bool {
	v, ok := obj[key]
	if !ok || v == nil {
		return false
	}

	if s, ok := v.(string); ok {
		return s != ""
	}

	return true
}
