package completion

import "strings"

// ExtractPayload pulls the structured payload out of a completion reply.
// Models usually fence JSON in a ```json block; failing that, any fenced
// block is taken, and a reply with no fence at all is treated as the payload
// itself. Extraction never fails; parse errors belong to the caller.
func ExtractPayload(reply string) string {
	if cut := fencedBlock(reply, "```json"); cut != "" {
		return cut
	}
	if cut := fencedBlock(reply, "```"); cut != "" {
		return cut
	}
	return strings.TrimSpace(reply)
}

func fencedBlock(reply, fence string) string {
	_, after, found := strings.Cut(reply, fence)
	if !found {
		return ""
	}
	// The opening fence may carry a language tag; skip to end of line.
	if fence == "```" {
		if _, rest, ok := strings.Cut(after, "\n"); ok {
			after = rest
		}
	}
	body, _, _ := strings.Cut(after, "```")
	return strings.TrimSpace(body)
}

// ExtractObject finds the first balanced JSON object in a reply. Used for
// small single-object payloads like the relevance verdict, where the model
// may wrap the object in prose instead of a fence.
func ExtractObject(reply string) string {
	start := strings.Index(reply, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(reply); i++ {
		c := reply[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return reply[start : i+1]
			}
		}
	}
	return ""
}
