// Package sheet reads and writes tab sheets: markdown files with YAML
// frontmatter carrying the tab metadata, an H1 title and the tablature in a
// fenced code block.
package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ReadSheet reads a sheet file and returns it as an import candidate.
func ReadSheet(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSheet(content, filepath.Base(path)), nil
}

// ParseSheet turns sheet content into a candidate object. Frontmatter keys are
// passed through untouched so the validator sees exactly what the author
// wrote; only title, content and id get defaults from the body and filename.
func ParseSheet(content []byte, filename string) map[string]any {
	frontmatter, body := splitFrontmatter(content)

	candidate := make(map[string]any, len(frontmatter)+3)
	for k, v := range frontmatter {
		candidate[k] = v
	}

	title, tab := extractBody(body)
	if _, ok := candidate["title"]; !ok && title != "" {
		candidate["title"] = title
	}
	if _, ok := candidate["content"]; !ok {
		candidate["content"] = tab
	}
	if _, ok := candidate["id"]; !ok {
		if slug := slugFromFilename(filename); slug != "" {
			candidate["id"] = slug
		}
	}

	return candidate
}

// splitFrontmatter separates a leading --- delimited YAML block from the body.
// Content without valid frontmatter is returned whole as the body.
func splitFrontmatter(content []byte) (map[string]any, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return nil, content
	}

	var end int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			end = i
			break
		}
	}
	if end == 0 {
		return nil, content
	}

	var fm map[string]any
	if err := yaml.Unmarshal(bytes.Join(lines[1:end], []byte("\n")), &fm); err != nil {
		return nil, content
	}

	return fm, bytes.Join(lines[end+1:], []byte("\n"))
}

// extractBody returns the first H1 text and the tablature: the first fenced
// code block, or the body without its H1 when there is none.
func extractBody(body []byte) (string, string) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var title string
	var heading ast.Node
	var fenced *ast.FencedCodeBlock

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && heading == nil {
				heading = node
				title = strings.TrimSpace(string(node.Text(body)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if fenced == nil {
				fenced = node
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if fenced != nil {
		var b strings.Builder
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(body))
		}
		return title, strings.TrimRight(b.String(), "\n")
	}

	rest := body
	if heading != nil && heading.Lines().Len() > 0 {
		seg := heading.Lines().At(0)
		start := bytes.LastIndexByte(body[:seg.Start], '\n') + 1
		stop := bytes.IndexByte(body[seg.Stop:], '\n')
		if stop < 0 {
			rest = body[:start]
		} else {
			rest = append(append([]byte{}, body[:start]...), body[seg.Stop+stop+1:]...)
		}
	}
	return title, strings.TrimSpace(string(rest))
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slugFromFilename derives an id such as "sunrise-groove" from
// "Sunrise Groove.md".
func slugFromFilename(filename string) string {
	return slugify(strings.TrimSuffix(filename, filepath.Ext(filename)))
}

func slugify(s string) string {
	s = nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
