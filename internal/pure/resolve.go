// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Resolution of plain scalars against the core schema, and of explicitly
// tagged scalars against the yaml.org tag set.

package pure

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Core schema tags.
const (
	NullTag      = "tag:yaml.org,2002:null"
	BoolTag      = "tag:yaml.org,2002:bool"
	StrTag       = "tag:yaml.org,2002:str"
	IntTag       = "tag:yaml.org,2002:int"
	FloatTag     = "tag:yaml.org,2002:float"
	TimestampTag = "tag:yaml.org,2002:timestamp"
	SeqTag       = "tag:yaml.org,2002:seq"
	MapTag       = "tag:yaml.org,2002:map"
	BinaryTag    = "tag:yaml.org,2002:binary"
)

// timestampLayouts are attempted in order when resolving !!timestamp.
var timestampLayouts = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// ResolveScalar interprets a scalar's text. Plain untagged scalars resolve
// against the core schema; quoted and block scalars are strings unless an
// explicit tag says otherwise. When strictIntegers is set, underscore
// separators do not count as part of a number.
func ResolveScalar(tag string, value string, style ScalarStyle, strictIntegers bool) (any, error) {
	switch tag {
	case "", "!":
		if style != PlainStyle && style != AnyScalarStyle || tag == "!" {
			return value, nil
		}
		return resolvePlain(value, strictIntegers), nil
	case StrTag:
		return value, nil
	case NullTag:
		return nil, nil
	case BoolTag:
		if b, ok := parseBool(value); ok {
			return b, nil
		}
		return nil, fmt.Errorf("cannot decode %q as a boolean", value)
	case IntTag:
		if i, ok := parseInt(value, strictIntegers); ok {
			return i, nil
		}
		return nil, fmt.Errorf("cannot decode %q as an integer", value)
	case FloatTag:
		if f, ok := parseFloat(value, strictIntegers); ok {
			return f, nil
		}
		return nil, fmt.Errorf("cannot decode %q as a float", value)
	case BinaryTag:
		data, err := base64.StdEncoding.DecodeString(strings.Map(dropSpace, value))
		if err != nil {
			return nil, fmt.Errorf("cannot decode base64 data: %v", err)
		}
		return data, nil
	case TimestampTag:
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("cannot decode %q as a timestamp", value)
	default:
		// Unknown tags keep the raw text; the caller decides whether the
		// tag is permitted at all.
		return value, nil
	}
}

func dropSpace(r rune) rune {
	if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
		return -1
	}
	return r
}

// resolvePlain applies the core-schema resolution rules to an untagged
// plain scalar.
func resolvePlain(value string, strictIntegers bool) any {
	switch value {
	case "", "~", "null", "Null", "NULL":
		return nil
	}
	if b, ok := parseBool(value); ok {
		return b
	}
	if i, ok := parseInt(value, strictIntegers); ok {
		return i
	}
	if f, ok := parseFloat(value, strictIntegers); ok {
		return f
	}
	return value
}

func parseBool(value string) (bool, bool) {
	switch value {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

func parseInt(value string, strict bool) (any, bool) {
	s := value
	if !strict {
		s = strings.ReplaceAll(s, "_", "")
	}
	if s == "" || s == "+" || s == "-" {
		return nil, false
	}
	neg := false
	body := s
	switch body[0] {
	case '+':
		body = body[1:]
	case '-':
		neg = true
		body = body[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		base, body = 16, body[2:]
	case strings.HasPrefix(body, "0o") || strings.HasPrefix(body, "0O"):
		base, body = 8, body[2:]
	}
	if body == "" {
		return nil, false
	}
	i, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		// Large positive values still fit an unsigned integer.
		if !neg {
			if u, uerr := strconv.ParseUint(body, base, 64); uerr == nil {
				return u, true
			}
		}
		return nil, false
	}
	if neg {
		i = -i
	}
	if i >= math.MinInt && i <= math.MaxInt {
		return int(i), true
	}
	return i, true
}

func parseFloat(value string, strict bool) (float64, bool) {
	s := value
	if !strict {
		s = strings.ReplaceAll(s, "_", "")
	}
	switch s {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), true
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), true
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), true
	}
	// Reject forms the core schema does not consider floats.
	if s == "" || !strings.ContainsAny(s, "0123456789") {
		return 0, false
	}
	if !strings.ContainsAny(s, ".eE") {
		return 0, false
	}
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
