// Package generator runs the AI stages of the pipeline: each generator
// builds its stage prompt, calls the completion service once, parses the
// structured payload out of the reply, and repairs the rows against the
// authoritative user schema. A payload that fails to parse is a hard error
// for that stage; invalid field references are repaired, never fatal.
package generator

import (
	"bytes"
	"encoding/json"
)

// orderedJSON renders key -> list pairs as a JSON object in the given key
// order, for deterministic prompt embedding.
func orderedJSON(keys []string, values map[string][]string) string {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",\n")
		}
		key, _ := json.Marshal(k)
		list, _ := json.Marshal(values[k])
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(list)
	}
	buf.WriteString("\n}")
	return buf.String()
}
