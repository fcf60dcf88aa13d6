package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"stagefix/internal/diagnostic"
)

var (
	identRe      = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	memberPathRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// Validate checks a rule set before any file is touched.
// Collections and column references are emitted verbatim into JSX, so they
// must be plain identifiers or dotted member paths.
func Validate(rs *RuleSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if rs == nil || len(rs.Rules) == 0 {
		res.AddError(diagnostic.CodeEmptyRuleSet, "rule set has no rules", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range rs.Rules {
		r := &rs.Rules[i]

		name := r.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		if _, ok := seen[name]; ok {
			res.AddError(diagnostic.CodeDuplicateRule, fmt.Sprintf("duplicate rule %q", name), name, "")
		}

		seen[name] = struct{}{}

		if !identRe.MatchString(r.Collection) {
			res.AddError(diagnostic.CodeInvalidCollection,
				fmt.Sprintf("collection %q is not a JavaScript identifier", r.Collection), name, "",
				suggestIdentifier(r.Collection)...)
		}

		switch {
		case strings.TrimSpace(r.Message) == "":
			res.AddError(diagnostic.CodeInvalidMessage, "message must not be empty", name, "")
		case strings.ContainsAny(r.Message, "\r\n"):
			res.AddError(diagnostic.CodeInvalidMessage, "message must be a single line", name, "")
		case strings.ContainsAny(r.Message, "<>{}"):
			res.AddError(diagnostic.CodeInvalidMessage,
				fmt.Sprintf("message %q must not contain JSX markup characters", r.Message), name, "")
		}

		if !memberPathRe.MatchString(r.Columns) {
			res.AddError(diagnostic.CodeInvalidColumns,
				fmt.Sprintf("columns %q is not a member path like config.pendingColumns", r.Columns), name, "",
				suggestColumns(r.Columns, r.Name)...)
		}
	}

	return res
}

// suggestIdentifier camel-cases the words of s, so "pending items" becomes
// pendingItems.
func suggestIdentifier(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !(r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	if len(words) == 0 {
		return nil
	}

	var b strings.Builder

	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}

		first, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(w[size:])
	}

	if out := b.String(); identRe.MatchString(out) {
		return []string{out}
	}

	return nil
}

// suggestColumns recovers the member path from a pasted colSpan expression
// such as "{config.pendingColumns.length + 1}". An empty value falls back to
// the config.<name>Columns convention of the built-in rules.
func suggestColumns(columns, name string) []string {
	candidate := strings.TrimSpace(strings.Trim(strings.TrimSpace(columns), "{}"))
	if i := strings.Index(candidate, ".length"); i >= 0 {
		candidate = candidate[:i]
	}

	candidate = strings.ReplaceAll(candidate, " ", "")

	if candidate == "" && identRe.MatchString(name) {
		candidate = "config." + name + "Columns"
	}

	if candidate != columns && memberPathRe.MatchString(candidate) {
		return []string{candidate}
	}

	return nil
}
