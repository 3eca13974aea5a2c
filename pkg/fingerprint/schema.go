package fingerprint

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

type kind int

const (
	kindString kind = iota
	kindBool
	kindInt
	kindNumber
	kindStringList
)

func (k kind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBool:
		return "bool"
	case kindInt:
		return "integer"
	case kindNumber:
		return "number"
	default:
		return "array of strings"
	}
}

type fieldSpec struct {
	name     string
	kind     kind
	nullable bool
	optional bool
}

// schema lists every field the presenter reads, in display order. Optional
// fields are collector extras that may be absent.
var schema = []fieldSpec{
	{name: "fingerprint_hash", kind: kindString},
	{name: "user_agent", kind: kindString},
	{name: "language", kind: kindString},
	{name: "languages", kind: kindStringList},
	{name: "platform", kind: kindString},
	{name: "cookie_enabled", kind: kindBool},
	{name: "do_not_track", kind: kindString, nullable: true, optional: true},
	{name: "online", kind: kindBool},
	{name: "hardware_concurrency", kind: kindInt, nullable: true},
	{name: "device_memory", kind: kindNumber, nullable: true},
	{name: "max_touch_points", kind: kindInt},
	{name: "screen_width", kind: kindInt},
	{name: "screen_height", kind: kindInt},
	{name: "screen_avail_width", kind: kindInt},
	{name: "screen_avail_height", kind: kindInt},
	{name: "screen_color_depth", kind: kindInt},
	{name: "screen_pixel_depth", kind: kindInt, optional: true},
	{name: "device_pixel_ratio", kind: kindNumber},
	{name: "timezone", kind: kindString},
	{name: "timezone_offset", kind: kindInt},
	{name: "local_storage", kind: kindBool},
	{name: "session_storage", kind: kindBool},
	{name: "indexed_db", kind: kindBool},
	{name: "canvas_fingerprint", kind: kindString},
	{name: "webgl_vendor", kind: kindString},
	{name: "webgl_renderer", kind: kindString},
	{name: "webgl_version", kind: kindString},
	{name: "webgl_shading_language_version", kind: kindString},
	{name: "webgl_extensions", kind: kindStringList},
	{name: "audio_fingerprint", kind: kindString, optional: true},
	{name: "plugins", kind: kindStringList},
	{name: "mime_types", kind: kindStringList, optional: true},
}

// validate checks obj against the schema and returns one problem per bad field.
func validate(obj gjson.Result) []string {
	var problems []string
	for _, f := range schema {
		v := obj.Get(escapePath(f.name))
		if !v.Exists() {
			if !f.optional {
				problems = append(problems, fmt.Sprintf("missing field %s", f.name))
			}
			continue
		}
		if v.Type == gjson.Null {
			if !f.nullable {
				problems = append(problems, fmt.Sprintf("field %s: must not be null", f.name))
			}
			continue
		}
		if !matches(v, f.kind) {
			problems = append(problems, fmt.Sprintf("field %s: expected %s, got %s", f.name, f.kind, describe(v)))
		}
	}
	return problems
}

func matches(v gjson.Result, k kind) bool {
	switch k {
	case kindString:
		return v.Type == gjson.String
	case kindBool:
		return v.IsBool()
	case kindInt:
		return v.Type == gjson.Number && v.Num == math.Trunc(v.Num)
	case kindNumber:
		return v.Type == gjson.Number
	case kindStringList:
		if !v.IsArray() {
			return false
		}
		for _, item := range v.Array() {
			if item.Type != gjson.String {
				return false
			}
		}
		return true
	}
	return false
}

func describe(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	case v.IsBool():
		return "bool"
	case v.Type == gjson.Number:
		return "number"
	case v.Type == gjson.String:
		return "string"
	default:
		return v.Type.String()
	}
}

// escapePath escapes gjson path metacharacters in a literal key.
func escapePath(key string) string {
	var b strings.Builder
	for _, c := range key {
		switch c {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
