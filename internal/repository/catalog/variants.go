package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VariantsToModel turns a stored variant selection, usually an ordered
// document, into a plain name to value mapping. Unknown shapes yield an
// empty map.
func VariantsToModel(raw any) map[string]string {
	out := map[string]string{}

	switch v := raw.(type) {
	case nil:
	case map[string]string:
		for k, val := range v {
			out[k] = val
		}
	case map[string]any:
		for k, val := range v {
			putValue(out, k, val)
		}
	case bson.M:
		for k, val := range v {
			putValue(out, k, val)
		}
	case bson.D:
		for _, e := range v {
			putValue(out, e.Key, e.Value)
		}
	case []bson.E:
		for _, e := range v {
			putValue(out, e.Key, e.Value)
		}
	case bson.A:
		for _, el := range v {
			putPair(out, el)
		}
	case []any:
		for _, el := range v {
			putPair(out, el)
		}
	}

	return out
}

// putPair accepts {name, value} and [name, value] entries.
func putPair(out map[string]string, el any) {
	switch p := el.(type) {
	case bson.D:
		m := VariantsToModel(p)
		if name, ok := m["name"]; ok {
			out[name] = m["value"]
		}
	case map[string]any:
		m := VariantsToModel(p)
		if name, ok := m["name"]; ok {
			out[name] = m["value"]
		}
	case bson.M:
		m := VariantsToModel(p)
		if name, ok := m["name"]; ok {
			out[name] = m["value"]
		}
	case []any:
		if len(p) == 2 {
			putValue(out, fmt.Sprint(p[0]), p[1])
		}
	case bson.A:
		if len(p) == 2 {
			putValue(out, fmt.Sprint(p[0]), p[1])
		}
	}
}

func putValue(out map[string]string, key string, val any) {
	switch v := val.(type) {
	case nil:
	case string:
		out[key] = v
	default:
		out[key] = fmt.Sprint(v)
	}
}
