package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/Aman-CERP/fsindex/internal/entry"
	"github.com/Aman-CERP/fsindex/internal/indexer"
)

// Renderer writes human-readable views of a snapshot.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer for w, styled when w is a terminal.
func NewRenderer(w io.Writer) *Renderer {
	styles := PlainStyles()
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		styles = DefaultStyles()
	}
	return &Renderer{w: w, styles: styles}
}

// Entry writes one entry line: path, kind, name and size.
func (r *Renderer) Entry(e entry.Entry) {
	fmt.Fprintf(r.w, "%s  %s %s  %s\n",
		e.Path,
		r.styles.Label.Render("("+string(e.Kind)+")"),
		r.styles.Name.Render(e.Name),
		r.styles.Label.Render(formatSize(e.Size)))
}

// Summary writes the post-walk overview.
func (r *Renderer) Summary(snap *indexer.Snapshot) {
	fmt.Fprintln(r.w, r.styles.Header.Render("Indexed "+snap.Root))
	fmt.Fprintf(r.w, "  directories: %d\n", snap.Table.Len())
	fmt.Fprintf(r.w, "  files:       %d\n", snap.Files())
	fmt.Fprintf(r.w, "  buckets:     %d\n", snap.Table.BucketCount())
	fmt.Fprintf(r.w, "  load factor: %.2f\n", snap.LoadFactor())
}

// Tree writes one directory's ordered index sideways: rightmost entries
// first, indented by depth.
func (r *Renderer) Tree(d indexer.DirIndex) {
	fmt.Fprintln(r.w, r.styles.Header.Render(d.Path))
	if d.Tree.Len() == 0 {
		fmt.Fprintln(r.w, r.styles.Dim.Render("  (no files)"))
		return
	}
	d.Tree.Describe(func(e entry.Entry, depth int) {
		fmt.Fprintf(r.w, "%s%s  %s\n",
			strings.Repeat("    ", depth+1),
			r.styles.Name.Render(e.Name),
			r.styles.Label.Render(formatSize(e.Size)))
	})
}

// Table writes the directory hash index bucket by bucket, followed by the
// occupancy diagnostics.
func (r *Renderer) Table(snap *indexer.Snapshot) {
	occupied := 0
	last := -1
	snap.Table.Range(func(bucket int, e entry.Entry) bool {
		if bucket != last {
			occupied++
			last = bucket
			fmt.Fprintln(r.w, r.styles.Header.Render(fmt.Sprintf("bucket %d", bucket)))
		}
		fmt.Fprintf(r.w, "  %s  %s\n", e.Path, r.styles.Label.Render(formatSize(e.Size)))
		return true
	})
	fmt.Fprintf(r.w, "occupied buckets: %d/%d\n", occupied, snap.Table.BucketCount())
	fmt.Fprintf(r.w, "load factor: %.2f\n", snap.LoadFactor())
}

// Errorf writes a styled error line.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.w, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// formatSize renders a byte count with its human-readable form.
func formatSize(size uint64) string {
	return fmt.Sprintf("%d bytes (%s)", size, humanize.Bytes(size))
}
