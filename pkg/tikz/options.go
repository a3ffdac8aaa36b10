package tikz

import "strings"

// Options is an ordered set of TikZ option tokens, e.g. "thick",
// "color=blue", "rotate=45". Tokens render in insertion order.
//
// Tokens are opaque: no grammar checking is done beyond splitting on
// top-level commas, so anything TikZ accepts inside square brackets
// can be carried through verbatim. Duplicate handling is deliberate:
// re-adding an identical flag token is a no-op, and re-adding a
// key=value token replaces the previous value in place, so the last
// write wins without disturbing the original position.
type Options struct {
	tokens []string
}

// NewOptions builds an option set from raw tokens. Each argument may
// itself be a comma-separated list, so NewOptions("thick, blue") and
// NewOptions("thick", "blue") are equivalent.
func NewOptions(tokens ...string) *Options {
	o := &Options{}
	o.Add(tokens...)
	return o
}

// ParseOptions splits a raw option string into an option set.
// Commas inside braces or brackets do not split, so compound values
// like "dash pattern={on 2pt off 1pt}" survive intact.
func ParseOptions(raw string) *Options {
	return NewOptions(raw)
}

// Add appends tokens, applying the duplicate rules described on
// Options. It returns o to allow chaining.
func (o *Options) Add(tokens ...string) *Options {
	for _, raw := range tokens {
		for _, tok := range splitTokens(raw) {
			o.upsert(tok)
		}
	}
	return o
}

// Merge folds every token of other into o, in other's order, using
// the same duplicate rules as Add. It returns o.
func (o *Options) Merge(other *Options) *Options {
	if other == nil {
		return o
	}
	for _, tok := range other.tokens {
		o.upsert(tok)
	}
	return o
}

// Clone returns an independent copy of o.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	c := &Options{tokens: make([]string, len(o.tokens))}
	copy(c.tokens, o.tokens)
	return c
}

// Len returns the number of tokens.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.tokens)
}

// Tokens returns a copy of the tokens in render order.
func (o *Options) Tokens() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.tokens))
	copy(out, o.tokens)
	return out
}

// String renders the set as a bracketed option list, e.g.
// "[thick, color=blue]". An empty set renders as "" so that callers
// can concatenate it unconditionally.
func (o *Options) String() string {
	if o == nil || len(o.tokens) == 0 {
		return ""
	}
	return "[" + strings.Join(o.tokens, ", ") + "]"
}

// upsert inserts a single trimmed token per the duplicate rules.
func (o *Options) upsert(tok string) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return
	}
	key, keyed := tokenKey(tok)
	for i, existing := range o.tokens {
		if keyed {
			if k, ok := tokenKey(existing); ok && k == key {
				o.tokens[i] = tok
				return
			}
			continue
		}
		if existing == tok {
			return
		}
	}
	o.tokens = append(o.tokens, tok)
}

// tokenKey returns the key of a key=value token and whether the token
// has one. The '=' must sit at nesting depth zero; an '=' inside
// braces belongs to the value of an outer key.
func tokenKey(tok string) (string, bool) {
	depth := 0
	for i, r := range tok {
		switch r {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case '=':
			if depth == 0 {
				return strings.TrimSpace(tok[:i]), true
			}
		}
	}
	return "", false
}

// splitTokens splits a raw option string on commas at nesting depth
// zero, trimming whitespace and dropping empty pieces.
func splitTokens(raw string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range raw {
		switch r {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ',':
			if depth == 0 {
				if tok := strings.TrimSpace(raw[start:i]); tok != "" {
					out = append(out, tok)
				}
				start = i + 1
			}
		}
	}
	if tok := strings.TrimSpace(raw[start:]); tok != "" {
		out = append(out, tok)
	}
	return out
}
