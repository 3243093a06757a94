package chat

import (
	"regexp"
	"strings"
)

// Directive markers the generator is asked to emit inside its free-form
// reply. The grammar is a best-effort text convention, not a protocol:
// anything that doesn't match one of the five markers is user-visible text.
var (
	reProducts     = regexp.MustCompile(`PRODUCTS:\s*\[(.*?)\]`)
	reQuickReplies = regexp.MustCompile(`QUICK_REPLIES:\s*\[(.*?)\]`)
	reForm         = regexp.MustCompile(`FORM:\s*\[([^\]]+)\]`)
	reShowCart     = regexp.MustCompile(`SHOW_CART:\s*(?i:true)`)
	reAddToCart    = regexp.MustCompile(`ADD_TO_CART:\s*\[([^\]]+)\]`)
)

type AddToCart struct {
	ProductID string
	Size      string
	Color     string
}

// Directives holds the parsed payloads. Resolution against the catalog and
// any cart side effects are the orchestrator's job.
type Directives struct {
	ProductIDs   []string
	QuickReplies []string
	FormName     string // uppercased marker payload, "" when absent
	ShowCart     bool
	AddToCart    *AddToCart
}

// ExtractDirectives scans text for the five markers, removing each matched
// substring exactly once. Only the first occurrence of a marker is
// processed; malformed or unknown marker-like text is left untouched.
func ExtractDirectives(text string) (Directives, string) {
	var d Directives

	if payload, rest, ok := extractOne(reProducts, text); ok {
		text = rest
		for _, tok := range strings.Split(payload, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				d.ProductIDs = append(d.ProductIDs, tok)
			}
		}
	}

	if payload, rest, ok := extractOne(reQuickReplies, text); ok {
		text = rest
		for _, tok := range strings.Split(payload, ",") {
			if tok = stripQuotes(strings.TrimSpace(tok)); tok != "" {
				d.QuickReplies = append(d.QuickReplies, tok)
			}
		}
	}

	if payload, rest, ok := extractOne(reForm, text); ok {
		text = rest
		d.FormName = strings.ToUpper(strings.TrimSpace(payload))
	}

	if _, rest, ok := extractOne(reShowCart, text); ok {
		text = rest
		d.ShowCart = true
	}

	if payload, rest, ok := extractOne(reAddToCart, text); ok {
		text = rest
		params := strings.Split(payload, ",")
		for i := range params {
			params[i] = stripQuotes(strings.TrimSpace(params[i]))
		}
		if params[0] != "" {
			add := &AddToCart{ProductID: params[0]}
			if len(params) > 1 {
				add.Size = params[1]
			}
			if len(params) > 2 {
				add.Color = params[2]
			}
			d.AddToCart = add
		}
	}

	return d, strings.TrimSpace(text)
}

// extractOne returns the first capture group of the first match and the
// text with that whole match spliced out.
func extractOne(re *regexp.Regexp, text string) (payload, rest string, ok bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", text, false
	}
	if len(loc) >= 4 && loc[2] >= 0 {
		payload = text[loc[2]:loc[3]]
	}
	rest = text[:loc[0]] + text[loc[1]:]
	return payload, rest, true
}

// stripQuotes removes one layer of surrounding quote characters. Leading
// and trailing quotes are stripped independently, matching the tolerant
// behavior the generator's output needs.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}
