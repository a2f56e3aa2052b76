package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/jiexingtech/kryo-serializers/codec"
	"github.com/jiexingtech/kryo-serializers/collections"
	"github.com/jiexingtech/kryo-serializers/wire"
)

func main() {
	var (
		in          = flag.String("in", "", "Path to an encoded stream file")
		gen         = flag.String("gen", "", "Write a demo stream (list, sortedmap, nested) to -in and exit")
		hexDump     = flag.Bool("hex", false, "Show a hex dump alongside the decode")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose codec logging")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -in <file> [-hex] [-v]")
		fmt.Fprintln(os.Stderr, "       inspect -in <file> -gen <list|sortedmap|nested>")
		fmt.Fprintln(os.Stderr, "       inspect -in <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		codec.SetLogger(l)
	}

	if *gen != "" {
		if err := generate(*in, *gen); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *interactive {
		if err := runInteractive(*in); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*in, *hexDump); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEngine builds the default engine this tool decodes with: basic value
// types, delegate collections, read-only wrappers.
func newEngine() (*codec.Engine, error) {
	e := codec.New()
	if err := collections.RegisterAll(e); err != nil {
		return nil, err
	}
	return e, nil
}

func run(path string, hexDump bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	fmt.Printf("Stream: %s (%s)\n", path, humanize.IBytes(uint64(len(data))))

	e, err := newEngine()
	if err != nil {
		return err
	}

	r := wire.NewReader(bytes.NewReader(data))
	for i := 0; r.Position() < len(data); i++ {
		start := r.Position()
		v, err := e.ReadTagged(r)
		if err != nil {
			return fmt.Errorf("value %d at offset %d: %w", i, start, err)
		}
		fmt.Printf("\nValue %d (offset %d, %s):\n", i, start,
			humanize.IBytes(uint64(r.Position()-start)))
		if hexDump {
			annotate(os.Stdout, e, data[start:r.Position()], start)
		}
		printNode(describe(v), 1)
	}
	return nil
}

// annotate dumps one encoded value, calling out the stream-ID bytes and,
// for read-only wrapper values, the variant-tag bytes before the payload.
func annotate(out io.Writer, e *codec.Engine, value []byte, base int) {
	r := wire.NewReader(bytes.NewReader(value))
	id, err := r.ReadU32()
	if err != nil {
		return
	}
	idEnd := r.Position()
	name, ok := e.TypeName(id)
	if !ok {
		name = "unknown"
	}
	fmt.Fprintf(out, "  %08x  %-48s stream ID %d (%s)\n",
		base, hexBytes(value[:idEnd]), id, name)

	off := idEnd
	if strings.HasPrefix(name, "*collections.ReadOnly") {
		tag, err := r.ReadU32()
		if err != nil {
			return
		}
		fmt.Fprintf(out, "  %08x  %-48s variant tag %d\n",
			base+off, hexBytes(value[off:r.Position()]), tag)
		off = r.Position()
	}

	fmt.Fprintf(out, "  payload (%d bytes):\n", len(value)-off)
	dump(out, value[off:], base+off)
}

func hexBytes(data []byte) string {
	var b strings.Builder
	for _, v := range data {
		fmt.Fprintf(&b, "%02x ", v)
	}
	return strings.TrimRight(b.String(), " ")
}

func generate(path, demo string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	var value any
	switch demo {
	case "list":
		value = collections.UnmodifiableList(collections.NewArrayList("a", "b", "c"))
	case "sortedmap":
		m := collections.NewTreeMap()
		if err := m.Put(1, "x"); err != nil {
			return err
		}
		if err := m.Put(2, "y"); err != nil {
			return err
		}
		value = collections.UnmodifiableSortedMap(m)
	case "nested":
		inner := collections.UnmodifiableSet(collections.NewHashSet("x", "y"))
		value = collections.UnmodifiableList(collections.NewArrayList(inner, 42, "plain"))
	default:
		return fmt.Errorf("unknown demo %q (want list, sortedmap or nested)", demo)
	}

	w := wire.NewWriter()
	if err := e.WriteTagged(w, value); err != nil {
		return err
	}
	if err := os.WriteFile(path, w.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	fmt.Printf("Wrote %s demo stream to %s (%s)\n", demo, path,
		humanize.IBytes(uint64(w.Len())))
	return nil
}

// node is one line of the decoded value tree.
type node struct {
	label    string
	children []*node
}

func describe(v any) *node {
	switch x := v.(type) {
	case nil:
		return &node{label: "nil"}
	case collections.Map:
		n := &node{label: fmt.Sprintf("%T (%d entries)", x, x.Len())}
		x.Each(func(k, val any) bool {
			child := describe(val)
			child.label = fmt.Sprintf("%v: %s", k, child.label)
			n.children = append(n.children, child)
			return true
		})
		return n
	case collections.Collection:
		n := &node{label: fmt.Sprintf("%T (%d elements)", x, x.Len())}
		x.Each(func(elem any) bool {
			n.children = append(n.children, describe(elem))
			return true
		})
		return n
	case string:
		return &node{label: fmt.Sprintf("%q", x)}
	default:
		return &node{label: fmt.Sprintf("%v (%T)", x, x)}
	}
}

func printNode(n *node, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), n.label)
	for _, c := range n.children {
		printNode(c, depth+1)
	}
}

// flatten renders the tree as indented lines for the TUI.
func flatten(n *node, depth int, out *[]string) {
	*out = append(*out, strings.Repeat("  ", depth)+n.label)
	for _, c := range n.children {
		flatten(c, depth+1, out)
	}
}

func dump(out io.Writer, data []byte, base int) {
	const width = 16
	for offset := 0; offset < len(data); offset += width {
		end := offset + width
		if end > len(data) {
			end = len(data)
		}
		row := data[offset:end]

		var hexCol strings.Builder
		var asciiCol strings.Builder
		for _, b := range row {
			fmt.Fprintf(&hexCol, "%02x ", b)
			if b >= 0x20 && b < 0x7f {
				asciiCol.WriteByte(b)
			} else {
				asciiCol.WriteByte('.')
			}
		}
		fmt.Fprintf(out, "  %08x  %-48s %s\n", base+offset, hexCol.String(), asciiCol.String())
	}
}
