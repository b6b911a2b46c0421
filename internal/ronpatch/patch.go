// Package ronpatch inserts texture fields into the solar system RON data file.
//
// The file is never parsed. A forward scan over its lines tracks the most
// recent `name: "..."` line and, on the first `rotation_period:` line that
// follows it, inserts a `texture: Some("...")` line at the same indentation
// when the body is mapped.
package ronpatch

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/agentic-research/skyforge/internal/texmap"
	"github.com/agentic-research/skyforge/internal/writeback"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

var (
	nameLine   = regexp.MustCompile(`^\s*name:\s*"([^"]+)"`)
	anchorLine = regexp.MustCompile(`^(\s*)rotation_period:`)
)

// Insertion describes one texture line added to the output.
type Insertion struct {
	Body string
	Path string
	Line int // 0-based index of the inserted line in the output
}

// Patch reads inputPath, inserts texture lines for every mapped body and
// writes the result to outputPath, which may be the same file.
// It returns the number of bodies updated.
func Patch(fs billy.Filesystem, inputPath, outputPath string, mapping texmap.Mapping) (int, error) {
	data, err := util.ReadFile(fs, inputPath)
	if err != nil {
		return 0, fmt.Errorf("read input %s: %w", inputPath, err)
	}

	out, inserted := PatchLines(SplitLines(data), mapping)

	logger := slog.With("component", "ronpatch")
	for _, ins := range inserted {
		logger.Info("added texture", "body", ins.Body, "path", ins.Path)
	}

	if err := writeback.WriteFile(fs, outputPath, []byte(strings.Join(out, ""))); err != nil {
		return 0, fmt.Errorf("write output %s: %w", outputPath, err)
	}
	return len(inserted), nil
}

// PatchLines runs the insertion pass over lines, which must keep their
// terminators. The input slice is not modified.
func PatchLines(lines []string, mapping texmap.Mapping) ([]string, []Insertion) {
	out := make([]string, 0, len(lines)+len(mapping))
	var inserted []Insertion

	var (
		body         string
		haveBody     bool
		textureAdded bool
	)

	for _, line := range lines {
		if m := nameLine.FindStringSubmatch(line); m != nil {
			body, haveBody = m[1], true
			textureAdded = false
		}

		if a := anchorLine.FindStringSubmatch(line); a != nil && haveBody && !textureAdded {
			path, ok := mapping.Lookup(body)

			// An unterminated final anchor gets a newline so the texture
			// field lands on its own line.
			if ok && !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			out = append(out, line)

			if ok {
				out = append(out, a[1]+`texture: Some("`+path+`"),`+"\n")
				inserted = append(inserted, Insertion{Body: body, Path: path, Line: len(out) - 1})
				textureAdded = true
			}

			body, haveBody = "", false
			continue
		}

		out = append(out, line)
	}

	return out, inserted
}

// SplitLines splits data after each '\n'. A trailing fragment without a
// terminator is kept as the last line.
func SplitLines(data []byte) []string {
	var lines []string
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, string(data))
			break
		}
		lines = append(lines, string(data[:i+1]))
		data = data[i+1:]
	}
	return lines
}
