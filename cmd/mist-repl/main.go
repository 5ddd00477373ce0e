// mist-repl is an interactive session for building and inspecting a
// Managed Index Syntax Tree by hand: offer ranges, dry-run them with
// compute, walk the hierarchy, and detach nodes with pop/remove/clear.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/jamplate/mist"
)

// session holds the REPL's live tree and the bookkeeping needed to
// hand out readable labels for newly offered nodes.
type session struct {
	root   *mist.Node[string]
	next   int
	reader *bufio.Reader
	log    *zap.Logger
}

func main() {
	app := &cli.App{
		Name:  "mist-repl",
		Usage: "interactively build and inspect a Managed Index Syntax Tree",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "root-offset", Value: 0, Usage: "offset of the initial root range"},
			&cli.Uint64Flag{Name: "root-length", Value: 1 << 20, Usage: "length of the initial root range"},
			&cli.BoolFlag{Name: "verbose", Usage: "log every command at debug level"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := zap.NewDevelopmentConfig()
	if !c.Bool("verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	root, err := mist.NewNode("root", c.Uint64("root-offset"), c.Uint64("root-length"), 0)
	if err != nil {
		return fmt.Errorf("create root: %w", err)
	}
	log.Info("root created", zap.Uint64("offset", root.Offset()), zap.Uint64("length", root.Length()))

	s := &session{root: root, reader: bufio.NewReader(os.Stdin), log: log}

	fmt.Println("mist REPL - type 'help' for commands, 'quit' to exit")
	for {
		fmt.Print("mist> ")
		line, err := s.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !s.dispatch(line) {
			fmt.Println("Goodbye!")
			return nil
		}
	}
}

func (s *session) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("command", zap.String("cmd", cmd), zap.Strings("args", args))

	switch cmd {
	case "help":
		s.printHelp()
	case "quit", "exit":
		return false
	case "offer":
		s.cmdOffer(args)
	case "compute":
		s.cmdCompute(args)
	case "hierarchy", "tree":
		s.printHierarchy()
	case "pop":
		s.cmdMutate(args, (*mist.Node[string]).Pop)
	case "remove":
		s.cmdMutate(args, (*mist.Node[string]).Remove)
	case "clear":
		s.cmdClear(args)
	case "enclosure":
		s.cmdEnclosure(args)
	default:
		fmt.Printf("unknown command: %s (try 'help')\n", cmd)
	}
	return true
}

func (s *session) printHelp() {
	fmt.Print(`
Commands:
  offer <offset> <length> [weight] [label]   offer a new range onto root
  compute <offset> <length> [weight]         dry-run an offer, print the would-be neighbors
  hierarchy                                  print the tree depth-first
  pop <index...>                             pop the node at that child-index path
  remove <index...>                          remove the node (with its subtree) at that path
  clear <index...>                           detach the children of the node at that path
  enclosure <o:l,...> -- <c:l,...>           match opener/closer ranges "offset:length"
  quit                                       exit
`)
}

func (s *session) cmdOffer(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: offer <offset> <length> [weight] [label]")
		return
	}
	offset, length, weight, rest, err := parseRange(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	label := strings.Join(rest, " ")
	if label == "" {
		label = fmt.Sprintf("n%d", s.next)
		s.next++
	}
	n, err := mist.NewNode(label, offset, length, weight)
	if err != nil {
		fmt.Printf("invalid range: %v\n", err)
		return
	}
	if err := s.root.Offer(n); err != nil {
		s.log.Warn("offer rejected", zap.String("label", label), zap.Error(err))
		fmt.Printf("offer failed: %v\n", err)
		return
	}
	fmt.Printf("offered %s at [%d,%d)\n", label, offset, offset+length)
}

func (s *session) cmdCompute(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: compute <offset> <length> [weight]")
		return
	}
	offset, length, weight, _, err := parseRange(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	result, err := s.root.Compute(offset, length, weight)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(result) == 0 {
		fmt.Println("corrupted: could not compute a placement")
		return
	}
	if n, isClash := result[mist.Clashing]; isClash {
		fmt.Printf("would clash with %s\n", n.Value())
		return
	}
	for _, side := range []mist.Side{mist.Top, mist.Left, mist.Right, mist.Bottom} {
		if n, ok := result[side]; ok {
			fmt.Printf("  %s: %s\n", side, n.Value())
		}
	}
}

func (s *session) printHierarchy() {
	var walk func(n *mist.Node[string], depth int)
	walk = func(n *mist.Node[string], depth int) {
		fmt.Printf("%s%s [%d,%d)\n", strings.Repeat("  ", depth), n.Value(), n.Offset(), n.Terminal())
		for c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(s.root, 0)
}

func (s *session) resolvePath(args []string) (*mist.Node[string], bool) {
	if len(args) == 0 {
		fmt.Println("usage: <command> <index...>")
		return nil, false
	}
	indices := make([]int, len(args))
	for i, a := range args {
		idx, err := strconv.Atoi(a)
		if err != nil {
			fmt.Printf("invalid index %q: %v\n", a, err)
			return nil, false
		}
		indices[i] = idx
	}
	n, err := s.root.At(indices...)
	if err != nil {
		fmt.Println(err)
		return nil, false
	}
	return n, true
}

func (s *session) cmdMutate(args []string, op func(*mist.Node[string]) error) {
	n, ok := s.resolvePath(args)
	if !ok {
		return
	}
	label := n.Value()
	if err := op(n); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("done: %s\n", label)
}

func (s *session) cmdClear(args []string) {
	n, ok := s.resolvePath(args)
	if !ok {
		return
	}
	child, err := n.Clear()
	if err != nil {
		fmt.Println(err)
		return
	}
	if child == nil {
		fmt.Println("no children to clear")
		return
	}
	fmt.Printf("cleared %s's children, starting at %s\n", n.Value(), child.Value())
}

func (s *session) cmdEnclosure(args []string) {
	sep := -1
	for i, a := range args {
		if a == "--" {
			sep = i
			break
		}
	}
	if sep < 0 {
		fmt.Println("usage: enclosure <o:l,...> -- <c:l,...>")
		return
	}
	opens, err := parseRangeList(args[:sep])
	if err != nil {
		fmt.Println(err)
		return
	}
	closes, err := parseRangeList(args[sep+1:])
	if err != nil {
		fmt.Println(err)
		return
	}
	count := 0
	for e := range mist.ComputeEnclosure(opens, closes) {
		fmt.Printf("  open=%s close=%s outer=%s inner=%s\n", e.Open, e.Close, e.Outer, e.Inner)
		count++
	}
	fmt.Printf("%d pair(s)\n", count)
}

func parseRange(args []string) (offset, length uint64, weight int64, rest []string, err error) {
	offset, err = strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("invalid offset: %w", err)
	}
	length, err = strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("invalid length: %w", err)
	}
	rest = args[2:]
	if len(rest) > 0 {
		if w, werr := strconv.ParseInt(rest[0], 10, 64); werr == nil {
			weight = w
			rest = rest[1:]
		}
	}
	return offset, length, weight, rest, nil
}

func parseRangeList(items []string) ([]mist.Range, error) {
	var out []mist.Range
	var split []string
	for _, group := range items {
		split = append(split, strings.Split(group, ",")...)
	}
	for _, item := range split {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected offset:length, got %q", item)
		}
		offset, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset in %q: %w", item, err)
		}
		length, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid length in %q: %w", item, err)
		}
		r, err := mist.NewRange(offset, length)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
