// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package sui

import (
	"fmt"
	"strings"
)

var primitives = map[string]struct{}{
	"bool":    {},
	"u8":      {},
	"u16":     {},
	"u32":     {},
	"u64":     {},
	"u128":    {},
	"u256":    {},
	"address": {},
	"signer":  {},
}

// CanonicalCoinType returns the canonical rendering of a coin type tag. Every
// address inside the tag, including those of generic type parameters, is
// expanded to its full 32-byte lowercase hexadecimal form, so that two
// spellings of the same coin type always map to the same string.
func CanonicalCoinType(coinType string) (string, error) {
	p := tagParser{input: strings.TrimSpace(coinType)}
	canonical, err := p.structTag()
	if err != nil {
		return "", fmt.Errorf("could not parse coin type (%s): %w", coinType, err)
	}
	if p.pos != len(p.input) {
		return "", fmt.Errorf("could not parse coin type (%s): trailing characters at %d", coinType, p.pos)
	}
	return canonical, nil
}

// IsNative returns whether the given coin type is the native gas coin.
func IsNative(coinType string) bool {
	canonical, err := CanonicalCoinType(coinType)
	if err != nil {
		return false
	}
	return canonical == canonicalNative
}

// DisplayCoinType returns the form under which a coin type is shown to
// clients. The native coin keeps its well-known short form, all other coin
// types are shown canonically.
func DisplayCoinType(coinType string) string {
	canonical, err := CanonicalCoinType(coinType)
	if err != nil {
		return coinType
	}
	if canonical == canonicalNative {
		return NativeCoinType
	}
	return canonical
}

var canonicalNative = mustCanonical(NativeCoinType)

func mustCanonical(coinType string) string {
	canonical, err := CanonicalCoinType(coinType)
	if err != nil {
		panic(err)
	}
	return canonical
}

type tagParser struct {
	input string
	pos   int
}

func (p *tagParser) structTag() (string, error) {
	address, err := p.address()
	if err != nil {
		return "", err
	}
	err = p.expect("::")
	if err != nil {
		return "", err
	}
	module, err := p.identifier()
	if err != nil {
		return "", fmt.Errorf("invalid module name: %w", err)
	}
	err = p.expect("::")
	if err != nil {
		return "", err
	}
	name, err := p.identifier()
	if err != nil {
		return "", fmt.Errorf("invalid struct name: %w", err)
	}

	tag := address + "::" + module + "::" + name
	if !p.peek('<') {
		return tag, nil
	}

	p.pos++
	var params []string
	for {
		p.skipSpaces()
		param, err := p.typeTag()
		if err != nil {
			return "", err
		}
		params = append(params, param)
		p.skipSpaces()
		if p.peek(',') {
			p.pos++
			continue
		}
		if p.peek('>') {
			p.pos++
			break
		}
		return "", fmt.Errorf("unterminated type parameters at %d", p.pos)
	}

	return tag + "<" + strings.Join(params, ", ") + ">", nil
}

func (p *tagParser) typeTag() (string, error) {
	if strings.HasPrefix(p.input[p.pos:], "0x") {
		return p.structTag()
	}

	word, err := p.identifier()
	if err != nil {
		return "", err
	}
	if word == "vector" {
		err = p.expect("<")
		if err != nil {
			return "", err
		}
		p.skipSpaces()
		inner, err := p.typeTag()
		if err != nil {
			return "", err
		}
		p.skipSpaces()
		err = p.expect(">")
		if err != nil {
			return "", err
		}
		return "vector<" + inner + ">", nil
	}
	_, ok := primitives[word]
	if !ok {
		return "", fmt.Errorf("unknown type %q", word)
	}
	return word, nil
}

func (p *tagParser) address() (string, error) {
	err := p.expect("0x")
	if err != nil {
		return "", err
	}
	start := p.pos
	for p.pos < len(p.input) && isHex(p.input[p.pos]) {
		p.pos++
	}
	digits := strings.ToLower(p.input[start:p.pos])
	if len(digits) == 0 {
		return "", fmt.Errorf("empty address at %d", start)
	}
	if len(digits) > AddressLength*2 {
		return "", fmt.Errorf("address too long (%d hex digits)", len(digits))
	}
	return "0x" + strings.Repeat("0", AddressLength*2-len(digits)) + digits, nil
}

func (p *tagParser) identifier() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (p.pos > start && c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", fmt.Errorf("missing identifier at %d", start)
	}
	return p.input[start:p.pos], nil
}

func (p *tagParser) expect(token string) error {
	if !strings.HasPrefix(p.input[p.pos:], token) {
		return fmt.Errorf("expected %q at %d", token, p.pos)
	}
	p.pos += len(token)
	return nil
}

func (p *tagParser) peek(c byte) bool {
	return p.pos < len(p.input) && p.input[p.pos] == c
}

func (p *tagParser) skipSpaces() {
	for p.peek(' ') {
		p.pos++
	}
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
