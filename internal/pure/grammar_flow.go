// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow-context productions: flow nodes, bracketed collections, and the
// single-pair forms that wrap into a synthetic mapping.

package pure

// parseFlowNode matches ns-flow-node(n,c).
func (p *parser) parseFlowNode(n int, c context) bool {
	if p.parseAlias() {
		return true
	}
	if p.parseFlowContent(n, c) {
		return true
	}
	return p.cached(func() bool {
		if !p.parseProperties(n, c) {
			return false
		}
		if p.try(func() bool {
			return p.parseSeparate(n, c) && p.parseFlowContent(n, c)
		}) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	})
}

// parseFlowContent matches ns-flow-content(n,c).
func (p *parser) parseFlowContent(n int, c context) bool {
	return p.parseFlowYAMLContent(n, c) || p.parseFlowJSONContent(n, c)
}

// parseFlowYAMLContent matches ns-flow-yaml-content: a plain scalar.
func (p *parser) parseFlowYAMLContent(n int, c context) bool {
	return p.parsePlain(n, c)
}

// parseFlowJSONContent matches c-flow-json-content: a flow collection or a
// quoted scalar.
func (p *parser) parseFlowJSONContent(n int, c context) bool {
	return p.parseFlowSequence(n, c) ||
		p.parseFlowMapping(n, c) ||
		p.parseSingleQuoted(n, c) ||
		p.parseDoubleQuoted(n, c)
}

// parseFlowYAMLNode matches ns-flow-yaml-node(n,c): an alias, a plain
// scalar, or properties with optional plain content.
func (p *parser) parseFlowYAMLNode(n int, c context) bool {
	if p.parseAlias() {
		return true
	}
	if p.parsePlain(n, c) {
		return true
	}
	return p.cached(func() bool {
		if !p.parseProperties(n, c) {
			return false
		}
		if p.try(func() bool {
			return p.parseSeparate(n, c) && p.parsePlain(n, c)
		}) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	})
}

// parseFlowJSONNode matches c-flow-json-node(n,c): optional properties and
// JSON-style content.
func (p *parser) parseFlowJSONNode(n int, c context) bool {
	return p.cached(func() bool {
		p.try(func() bool {
			return p.parseProperties(n, c) && p.parseSeparate(n, c)
		})
		return p.parseFlowJSONContent(n, c)
	})
}

//
// Flow sequences
//

// parseFlowSequence matches c-flow-sequence(n,c). Once the opening bracket
// has been consumed a malformed body is a hard error.
func (p *parser) parseFlowSequence(n int, c context) bool {
	return p.cached(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('[') {
			return false
		}
		p.emitCollectionStart(SequenceStartEvent, start, FlowStyle, true)
		p.trySeparate(n, c)
		p.parseFlowSeqEntries(n, inFlow(c))
		if !p.cursor.MatchByte(']') {
			p.raiseIn("flow sequence", "did not find expected ',' or ']'")
		}
		p.emitCollectionEnd(SequenceEndEvent, p.cursor.Pos())
		return true
	})
}

// parseFlowSeqEntries matches ns-s-flow-seq-entries(n,c).
func (p *parser) parseFlowSeqEntries(n int, c context) bool {
	if !p.parseFlowSeqEntry(n, c) {
		return false
	}
	p.trySeparate(n, c)
	for p.cursor.MatchByte(',') {
		p.trySeparate(n, c)
		if !p.parseFlowSeqEntry(n, c) {
			break
		}
		p.trySeparate(n, c)
	}
	return true
}

// parseFlowSeqEntry matches ns-flow-seq-entry(n,c): a single pair or a
// flow node.
func (p *parser) parseFlowSeqEntry(n int, c context) bool {
	return p.parseFlowPair(n, c) || p.parseFlowNode(n, c)
}

//
// Flow mappings
//

// parseFlowMapping matches c-flow-mapping(n,c).
func (p *parser) parseFlowMapping(n int, c context) bool {
	return p.cached(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('{') {
			return false
		}
		p.emitCollectionStart(MappingStartEvent, start, FlowStyle, true)
		p.trySeparate(n, c)
		p.parseFlowMapEntries(n, inFlow(c))
		if !p.cursor.MatchByte('}') {
			p.raiseIn("flow mapping", "did not find expected ',' or '}'")
		}
		p.emitCollectionEnd(MappingEndEvent, p.cursor.Pos())
		return true
	})
}

func (p *parser) parseFlowMapEntries(n int, c context) bool {
	if !p.parseFlowMapEntry(n, c) {
		return false
	}
	p.trySeparate(n, c)
	for p.cursor.MatchByte(',') {
		p.trySeparate(n, c)
		if !p.parseFlowMapEntry(n, c) {
			break
		}
		p.trySeparate(n, c)
	}
	return true
}

// parseFlowMapEntry matches ns-flow-map-entry(n,c): an explicit "? entry"
// or an implicit one.
func (p *parser) parseFlowMapEntry(n int, c context) bool {
	if p.try(func() bool {
		if !p.cursor.MatchByte('?') {
			return false
		}
		if isNsChar(p.cursor.Byte()) {
			return false
		}
		if !p.parseSeparate(n, c) {
			return false
		}
		if p.parseFlowMapImplicitEntry(n, c) {
			return true
		}
		pos := p.cursor.Pos()
		p.emitEmptyScalar(pos)
		p.emitEmptyScalar(pos)
		return true
	}) {
		return true
	}
	return p.parseFlowMapImplicitEntry(n, c)
}

// parseFlowMapImplicitEntry matches ns-flow-map-implicit-entry(n,c): a
// YAML-style key, a JSON-style key, or an empty key.
func (p *parser) parseFlowMapImplicitEntry(n int, c context) bool {
	if p.cached(func() bool {
		if !p.parseFlowYAMLNode(n, c) {
			return false
		}
		p.trySeparate(n, c)
		if p.parseFlowMapSeparateValue(n, c) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	}) {
		return true
	}
	if p.cached(func() bool {
		if !p.parseFlowJSONNode(n, c) {
			return false
		}
		p.trySeparate(n, c)
		if p.parseFlowMapAdjacentValue(n, c) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	}) {
		return true
	}
	return p.cached(func() bool {
		pos := p.cursor.Pos()
		if !p.peek(func() bool { return p.checkSeparateValue(c) }) {
			return false
		}
		p.emitEmptyScalar(pos)
		return p.parseFlowMapSeparateValue(n, c)
	})
}

// checkSeparateValue reports a ':' at the cursor that begins a value
// rather than continuing a plain scalar.
func (p *parser) checkSeparateValue(c context) bool {
	if !p.cursor.MatchByte(':') {
		return false
	}
	return !p.isPlainSafeAt(p.cursor.Pos(), c)
}

// parseFlowMapSeparateValue matches c-ns-flow-map-separate-value(n,c):
// ":" followed by a separated node or nothing.
func (p *parser) parseFlowMapSeparateValue(n int, c context) bool {
	return p.try(func() bool {
		if !p.cursor.MatchByte(':') {
			return false
		}
		if p.isPlainSafeAt(p.cursor.Pos(), c) {
			return false
		}
		if p.try(func() bool {
			return p.parseSeparate(n, c) && p.parseFlowNode(n, c)
		}) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	})
}

// parseFlowMapAdjacentValue matches c-ns-flow-map-adjacent-value(n,c):
// ":" directly after a JSON-style key.
func (p *parser) parseFlowMapAdjacentValue(n int, c context) bool {
	return p.try(func() bool {
		if !p.cursor.MatchByte(':') {
			return false
		}
		if p.try(func() bool {
			p.trySeparate(n, c)
			return p.parseFlowNode(n, c)
		}) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	})
}

//
// Single pairs
//

// parseFlowPair matches ns-flow-pair(n,c): one key/value pair wrapped in a
// synthetic mapping.
func (p *parser) parseFlowPair(n int, c context) bool {
	return p.cached(func() bool {
		start := p.cursor.Pos()
		p.emitCollectionStart(MappingStartEvent, start, FlowStyle, false)
		if !p.parseFlowPairEntry(n, c) {
			return false
		}
		p.emitCollectionEnd(MappingEndEvent, p.cursor.Pos())
		return true
	})
}

func (p *parser) parseFlowPairEntry(n int, c context) bool {
	// Explicit: "?" separate entry.
	if p.try(func() bool {
		if !p.cursor.MatchByte('?') {
			return false
		}
		if isNsChar(p.cursor.Byte()) {
			return false
		}
		if !p.parseSeparate(n, c) {
			return false
		}
		if p.parseFlowMapImplicitEntry(n, c) {
			return true
		}
		pos := p.cursor.Pos()
		p.emitEmptyScalar(pos)
		p.emitEmptyScalar(pos)
		return true
	}) {
		return true
	}
	// Implicit YAML key.
	if p.try(func() bool {
		if !p.parseImplicitYAMLKey(flowKey) {
			return false
		}
		return p.parseFlowMapSeparateValue(n, c)
	}) {
		return true
	}
	// Implicit JSON key.
	if p.try(func() bool {
		if !p.parseImplicitJSONKey(flowKey) {
			return false
		}
		return p.parseFlowMapAdjacentValue(n, c)
	}) {
		return true
	}
	// Empty key.
	return p.try(func() bool {
		pos := p.cursor.Pos()
		if !p.peek(func() bool { return p.checkSeparateValue(c) }) {
			return false
		}
		p.emitEmptyScalar(pos)
		return p.parseFlowMapSeparateValue(n, c)
	})
}

//
// Implicit keys
//

// parseImplicitYAMLKey matches ns-s-implicit-yaml-key(c): a one-line
// YAML-style key of at most 1024 bytes with optional trailing separation.
func (p *parser) parseImplicitYAMLKey(c context) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.parseFlowYAMLNodeOneLine(c) {
			return false
		}
		p.cursor.MatchWhile(isWhite)
		return p.cursor.Pos()-start <= maxImplicitKeyLength
	})
}

// parseImplicitJSONKey matches c-s-implicit-json-key(c): a one-line
// JSON-style key of at most 1024 bytes with optional trailing separation.
func (p *parser) parseImplicitJSONKey(c context) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.parseFlowJSONNode(0, c) {
			return false
		}
		p.cursor.MatchWhile(isWhite)
		return p.cursor.Pos()-start <= maxImplicitKeyLength
	})
}

// parseFlowYAMLNodeOneLine is ns-flow-yaml-node restricted to a single
// line, as used for implicit keys.
func (p *parser) parseFlowYAMLNodeOneLine(c context) bool {
	if p.parseAlias() {
		return true
	}
	if p.parsePlainOneLine(c) {
		return true
	}
	return p.cached(func() bool {
		if !p.parseProperties(0, c) {
			return false
		}
		if p.try(func() bool {
			return p.parseSeparateInLine() && p.parsePlainOneLine(c)
		}) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	})
}
