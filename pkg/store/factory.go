package store

import (
	"fmt"
	"strings"
)

// FromAddress builds a Store from a target like "jsonfile:/path/out.json"
// or "es8:http://elasticsearch:9200".
func FromAddress(out string) (Store, error) {
	bits := strings.SplitN(out, ":", 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("invalid out path, expected [jsonfile:/path/to/file.json] or [es8:http://elasticsearch:9200]")
	}

	if bits[0] == "es8" {
		return NewElasticsearchV8(bits[1]), nil
	}
	return NewJSONFile(bits[1]), nil
}
