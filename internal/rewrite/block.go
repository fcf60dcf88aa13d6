package rewrite

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"stagefix/internal/diagnostic"
	"stagefix/internal/rules"
)

const (
	rowGroupOpen  = "<tbody>"
	rowGroupClose = "</tbody>"

	crlf = "\r\n"

	// ws also accepts vertical tab, which RE2's \s leaves out.
	ws = `[\s\v]*`
)

// Result reports what one rule did to one piece of content.
type Result struct {
	// Rule is the rule name.
	Rule string
	// Matches counts occurrences of the outer conditional.
	Matches int
	// Rewritten counts the occurrences actually reshaped.
	Rewritten int
	// Diagnostics holds warnings about suspicious or skipped matches.
	Diagnostics diagnostic.Diagnostics
}

// Changed reports whether any occurrence was rewritten.
func (r Result) Changed() bool {
	return r.Rewritten > 0
}

// Block rewrites the empty-state conditional described by one rule.
type Block struct {
	rule    rules.Rule
	pattern *regexp.Regexp
}

// New compiles the outer pattern for rule.
func New(rule rules.Rule) (*Block, error) {
	pattern, err := regexp.Compile(outerPattern(rule))
	if err != nil {
		return nil, fmt.Errorf("compiling pattern for rule %s: %w", rule.Name, err)
	}

	return &Block{rule: rule, pattern: pattern}, nil
}

// NewAll builds one Block per rule, preserving order.
func NewAll(rs *rules.RuleSet) ([]*Block, error) {
	blocks := make([]*Block, 0, len(rs.Rules))

	for _, r := range rs.Rules {
		b, err := New(r)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, b)
	}

	return blocks, nil
}

// outerPattern builds the pattern for the placeholder-or-container
// conditional. Group 1 captures the container div.
func outerPattern(rule rules.Rule) string {
	return `\{` + regexp.QuoteMeta(rule.Collection) + `\.length === 0 \? \(` + ws +
		`<div className="text-center py-12">` + ws +
		`<p className="text-muted-foreground">` + regexp.QuoteMeta(rule.Message) + `</p>` + ws +
		`</div>` + ws + `\) : \(` + ws +
		`(<div className="overflow-x-auto -mx-6 md:mx-0">[\s\S]*?</div>)` + ws + `\)\}`
}

// Apply rewrites every non-overlapping occurrence of the conditional in
// content. Content without a match is returned unchanged. When content uses
// CRLF line endings the inserted lines use them too.
func (b *Block) Apply(content string) (string, Result, error) {
	res := Result{Rule: b.rule.Name}

	locs := b.pattern.FindAllStringSubmatchIndex(content, -1)

	res.Matches = len(locs)
	if len(locs) == 0 {
		return content, res, nil
	}

	if len(locs) > 1 {
		res.Diagnostics.AddWarning(diagnostic.CodeMultipleMatches,
			fmt.Sprintf("%d occurrences of the %s conditional; all are rewritten", len(locs), b.rule.Collection),
			b.rule.Name, "")
	}

	var out strings.Builder

	last := 0
	crlfEndings := strings.Contains(content, crlf)

	for _, loc := range locs {
		container := content[loc[2]:loc[3]]

		replacement, ok, err := b.reshape(container, crlfEndings, &res.Diagnostics)
		if err != nil {
			return "", res, err
		}

		if !ok {
			continue
		}

		out.WriteString(content[last:loc[0]])
		out.WriteString(replacement)

		last = loc[1]
		res.Rewritten++
	}

	if res.Rewritten == 0 {
		return content, res, nil
	}

	out.WriteString(content[last:])

	res.Diagnostics.AddInfo(diagnostic.CodeRewritten,
		fmt.Sprintf("rewrote %d of %d occurrences", res.Rewritten, res.Matches),
		b.rule.Name, "")

	return out.String(), res, nil
}

// reshape moves the empty-state branch into the container's row group.
func (b *Block) reshape(container string, crlfEndings bool, diags *diagnostic.Diagnostics) (string, bool, error) {
	head, body, tail, ok := splitRowGroup(container)
	if !ok {
		diags.AddWarning(diagnostic.CodeMissingRowGroup,
			"container has no "+rowGroupOpen+"..."+rowGroupClose+" row group; left unchanged",
			b.rule.Name, "")

		return "", false, nil
	}

	if n := strings.Count(container, rowGroupOpen); n > 1 {
		diags.AddWarning(diagnostic.CodeMultipleRowGroups,
			fmt.Sprintf("container has %d row groups; rows span from the first %s to the last %s",
				n, rowGroupOpen, rowGroupClose),
			b.rule.Name, "")
	}

	var buf bytes.Buffer

	err := emptyRowTemplate.Execute(&buf, templateData{
		Collection: b.rule.Collection,
		Message:    b.rule.Message,
		Columns:    b.rule.Columns,
		Rows:       strings.TrimSpace(body),
	})
	if err != nil {
		return "", false, fmt.Errorf("executing empty row template for rule %s: %w", b.rule.Name, err)
	}

	rendered := buf.String()
	if crlfEndings {
		rendered = strings.ReplaceAll(strings.ReplaceAll(rendered, crlf, "\n"), "\n", crlf)
	}

	return head + rendered + tail, true, nil
}

// splitRowGroup splits container around its row group: head ends with the
// first open tag, tail starts at the last close tag.
func splitRowGroup(container string) (head, body, tail string, ok bool) {
	open := strings.Index(container, rowGroupOpen)
	closing := strings.LastIndex(container, rowGroupClose)

	if open < 0 || closing < 0 {
		return "", "", "", false
	}

	bodyStart := open + len(rowGroupOpen)
	if closing < bodyStart {
		return "", "", "", false
	}

	return container[:bodyStart], container[bodyStart:closing], container[closing:], true
}

// templateData holds the values interpolated into the row group.
type templateData struct {
	Collection string
	Message    string
	Columns    string
	Rows       string
}

// emptyRowTemplate renders the new row group content. The delimiters avoid
// clashing with JSX braces.
var emptyRowTemplate = template.Must(template.New("empty_row").Delims("[[", "]]").Parse(`
                    {[[.Collection]].length === 0 ? (
                      <tr>
                        <td colSpan={[[.Columns]].length + 1} className="text-center py-12 text-muted-foreground">
                          [[.Message]]
                        </td>
                      </tr>
                    ) : (
                      [[.Rows]]
                    )}`))
