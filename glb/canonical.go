package glb

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/goccy/go-json"
)

// ============================================================
// Generic document tree
// ============================================================

type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

// value is one node of the decoded JSON document. Object members keep
// their insertion order so re-serialization never reorders keys.
type value struct {
	kind kind
	b    bool
	num  json.Number
	str  string
	arr  []value
	obj  []member
}

type member struct {
	key string
	val value
}

// ============================================================
// Canonicalization
// ============================================================

const indentUnit = "    "

// Canonicalize parses raw as a JSON document and re-serializes it
// deterministically: 4-space indentation, one member per line, key order
// exactly as encountered. Byte-identical inputs always yield
// byte-identical text, so the result is suitable for line diffing.
func Canonicalize(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return "", &FormatError{Msg: "invalid JSON chunk", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", &FormatError{Msg: "trailing data after JSON document"}
	}

	var sb strings.Builder
	writeValue(&sb, v, 0)
	return sb.String(), nil
}

func decodeValue(dec *json.Decoder) (value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (value, error) {
	switch t := tok.(type) {
	case nil:
		return value{kind: kindNull}, nil
	case bool:
		return value{kind: kindBool, b: t}, nil
	case json.Number:
		return value{kind: kindNumber, num: t}, nil
	case string:
		return value{kind: kindString, str: t}, nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (value, error) {
	v := value{kind: kindArray}
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return value{}, err
		}
		v.arr = append(v.arr, elem)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return value{}, err
	}
	return v, nil
}

func decodeObject(dec *json.Decoder) (value, error) {
	v := value{kind: kindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return value{}, err
		}
		v.obj = append(v.obj, member{key: key, val: val})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return value{}, err
	}
	return v, nil
}

// ============================================================
// Deterministic emission
// ============================================================

func writeValue(sb *strings.Builder, v value, depth int) {
	switch v.kind {
	case kindNull:
		sb.WriteString("null")
	case kindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case kindNumber:
		// The original literal, not a reformatted float.
		sb.WriteString(v.num.String())
	case kindString:
		writeString(sb, v.str)
	case kindArray:
		writeArray(sb, v.arr, depth)
	case kindObject:
		writeObject(sb, v.obj, depth)
	}
}

func writeArray(sb *strings.Builder, arr []value, depth int) {
	if len(arr) == 0 {
		sb.WriteString("[]")
		return
	}
	inner := strings.Repeat(indentUnit, depth+1)
	sb.WriteString("[\n")
	for i, elem := range arr {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(inner)
		writeValue(sb, elem, depth+1)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("]")
}

func writeObject(sb *strings.Builder, obj []member, depth int) {
	if len(obj) == 0 {
		sb.WriteString("{}")
		return
	}
	inner := strings.Repeat(indentUnit, depth+1)
	sb.WriteString("{\n")
	for i, m := range obj {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(inner)
		writeString(sb, m.key)
		sb.WriteString(": ")
		writeValue(sb, m.val, depth+1)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("}")
}

// writeString quotes s with ASCII-only escapes: control characters and
// everything outside ASCII become \uXXXX (surrogate pairs above the BMP).
func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			switch {
			case r < 0x20 || r >= 0x80 && r <= 0xFFFF:
				fmt.Fprintf(sb, `\u%04x`, r)
			case r > 0xFFFF:
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(sb, `\u%04x\u%04x`, r1, r2)
			default:
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}
