package analyze

import "strconv"

type tagEntry struct {
	key   string
	value string
	// offset is where the quoted value starts in the tag.
	offset int
}

// scanTag splits a struct tag into key:"value" entries in order, keeping
// repeated keys. It follows the syntax of reflect.StructTag and stops at
// the first malformed entry.
func scanTag(tag string) []tagEntry {
	var out []tagEntry

	off := 0

	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}

		tag, off = tag[i:], off+i
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}

		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}

		key := tag[:i]
		tag, off = tag[i+1:], off+i+1

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}

			i++
		}

		if i >= len(tag) {
			break
		}

		value, err := strconv.Unquote(tag[:i+1])
		if err != nil {
			break
		}

		out = append(out, tagEntry{key: key, value: value, offset: off + 1})
		tag, off = tag[i+1:], off+i+1
	}

	return out
}
