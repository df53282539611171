// Package markup converts the restricted markup dialect used by mail
// templates into inline-styled HTML that email clients render consistently.
// Only the constructs the templates actually use are supported: pipe tables,
// up to three heading levels, bold/italic, dash lists, links, and paragraph
// breaks.
package markup

import (
	"regexp"
	"strings"
)

// Inline styles, kept in one place so the palette stays consistent.
const (
	styleRoot    = "font-family: sans-serif; line-height: 1.6; color: #333;"
	styleTable   = "border-collapse: collapse; width: 100%; margin: 20px 0; border: 1px solid #dee2e6;"
	styleHeadRow = "background-color: #4a5568; color: white;"
	styleTH      = "border: 1px solid #dee2e6; padding: 12px; text-align: left; font-weight: bold;"
	styleTD      = "border: 1px solid #dee2e6; padding: 10px;"
	styleH1      = "color: #333; margin-top: 30px; margin-bottom: 20px;"
	styleH2      = "color: #333; margin-top: 25px; margin-bottom: 15px;"
	styleH3      = "color: #333; margin-top: 20px; margin-bottom: 10px;"
	styleLI      = "margin: 5px 0;"
	styleUL      = "margin: 10px 0; padding-left: 20px;"
	styleLink    = "color: #007bff; text-decoration: none;"
	styleP       = "margin: 10px 0;"

	rowBGEven = "#ffffff"
	rowBGOdd  = "#f8f9fa"
)

var (
	reH3     = regexp.MustCompile(`(?m)^### (.+)$`)
	reH2     = regexp.MustCompile(`(?m)^## (.+)$`)
	reH1     = regexp.MustCompile(`(?m)^# (.+)$`)
	reStrong = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reEm     = regexp.MustCompile(`\*(.+?)\*`)
	reLI     = regexp.MustCompile(`(?m)^- (.+)$`)
	reULRun  = regexp.MustCompile(`(?s)(<li.*?</li>\n?)+`)
	reLink   = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// ToHTML converts text to a single styled <div>. The conversion is pure and
// deterministic. Pass order is load-bearing: tables are rebuilt first and
// their HTML carries no embedded newlines, strong runs before italic so
// "**x**" is not consumed as two italic markers, and newline conversion runs
// last so it cannot corrupt earlier output.
func ToHTML(text string) string {
	html := convertTables(text)

	html = reH3.ReplaceAllString(html, `<h3 style="`+styleH3+`">$1</h3>`)
	html = reH2.ReplaceAllString(html, `<h2 style="`+styleH2+`">$1</h2>`)
	html = reH1.ReplaceAllString(html, `<h1 style="`+styleH1+`">$1</h1>`)

	html = reStrong.ReplaceAllString(html, `<strong>$1</strong>`)
	html = reEm.ReplaceAllString(html, `<em>$1</em>`)

	html = reLI.ReplaceAllString(html, `<li style="`+styleLI+`">$1</li>`)
	html = reULRun.ReplaceAllString(html, `<ul style="`+styleUL+`">$0</ul>`)

	html = reLink.ReplaceAllString(html, `<a href="$2" style="`+styleLink+`">$1</a>`)

	html = strings.ReplaceAll(html, "\n\n", `</p><p style="`+styleP+`">`)
	html = strings.ReplaceAll(html, "\n", "<br>")

	return `<div style="` + styleRoot + `">` + html + `</div>`
}

// blockKind tags the segments the table pass produces.
type blockKind int

const (
	blockPlain blockKind = iota
	blockTable
)

type block struct {
	kind  blockKind
	lines []string
}

// splitBlocks walks the input lines and carves out contiguous runs of
// pipe-delimited lines as table candidates. A run starts at a trimmed line
// that begins and ends with "|" and has at least one interior pipe;
// subsequent lines join the run while they begin and end with "|".
func splitBlocks(lines []string) []block {
	var blocks []block
	plain := func(line string) {
		if n := len(blocks); n > 0 && blocks[n-1].kind == blockPlain {
			blocks[n-1].lines = append(blocks[n-1].lines, line)
			return
		}
		blocks = append(blocks, block{kind: blockPlain, lines: []string{line}})
	}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|") && len(line) > 2 && strings.Contains(line[1:len(line)-1], "|") {
			var run []string
			for i < len(lines) {
				curr := strings.TrimSpace(lines[i])
				if strings.HasPrefix(curr, "|") && strings.HasSuffix(curr, "|") {
					run = append(run, curr)
					i++
				} else {
					break
				}
			}
			blocks = append(blocks, block{kind: blockTable, lines: run})
			continue
		}
		plain(lines[i])
		i++
	}
	return blocks
}

// convertTables replaces qualifying table blocks with table HTML. A block
// qualifies only with at least three lines: header, separator (discarded),
// and one or more data rows. Shorter pipe runs pass through as plain lines.
func convertTables(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	for _, b := range splitBlocks(lines) {
		if b.kind == blockTable && len(b.lines) >= 3 {
			out = append(out, renderTable(b.lines))
			continue
		}
		out = append(out, b.lines...)
	}
	return strings.Join(out, "\n")
}

func splitCells(line string) []string {
	cells := strings.Split(line[1:len(line)-1], "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// renderTable builds the table HTML on a single line; the later newline pass
// must not see breaks inside it.
func renderTable(lines []string) string {
	headers := splitCells(lines[0])

	var dataRows [][]string
	for _, dl := range lines[2:] {
		cells := splitCells(dl)
		empty := true
		for _, c := range cells {
			if c != "" {
				empty = false
				break
			}
		}
		if !empty {
			dataRows = append(dataRows, cells)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<table style="` + styleTable + `">`)
	sb.WriteString(`<thead><tr style="` + styleHeadRow + `">`)
	for _, h := range headers {
		sb.WriteString(`<th style="` + styleTH + `">` + h + `</th>`)
	}
	sb.WriteString(`</tr></thead><tbody>`)

	for idx, row := range dataRows {
		bg := rowBGEven
		if idx%2 == 1 {
			bg = rowBGOdd
		}
		sb.WriteString(`<tr style="background-color: ` + bg + `;">`)
		for _, c := range row {
			if c == "" {
				c = "-"
			}
			sb.WriteString(`<td style="` + styleTD + `">` + c + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table>`)
	return sb.String()
}
