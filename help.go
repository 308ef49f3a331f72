package rargsxd

import (
	"fmt"
	"io"
	"sort"

	missinggo "github.com/anacrolix/missinggo/v2"
)

// PrintHelp writes the help dialog to the parser's stdout.
func (p *ArgParser) PrintHelp() {
	p.WriteHelp(p.stdout)
}

// WriteHelp writes the help dialog to w: a metadata header, the usage line,
// then one section per argument kind. Empty sections are omitted; entries
// within a section are sorted by long name.
func (p *ArgParser) WriteHelp(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", p.name, p.version)
	fmt.Fprint(w, missinggo.Unchomp(p.author))
	fmt.Fprint(w, missinggo.Unchomp(p.info))
	fmt.Fprint(w, missinggo.Unchomp(p.copyright))
	fmt.Fprintf(w, "\nUsage:\n\t%s\n", p.usage)

	if flags := p.byKind(FlagArg); len(flags) != 0 {
		fmt.Fprintf(w, "\nFlags:\n")
		for _, a := range flags {
			fmt.Fprintf(w, "\t-%c, --%s\t%s\n", a.short, a.name, a.help)
		}
	}
	if options := p.byKind(OptionArg); len(options) != 0 {
		fmt.Fprintf(w, "\nOptions:\n")
		for _, a := range options {
			fmt.Fprintf(w, "\t-%c, --%s\t%s\n", a.short, a.name, a.help)
		}
	}
	if words := p.byKind(WordArg); len(words) != 0 {
		fmt.Fprintf(w, "\nWords:\n")
		for _, a := range words {
			fmt.Fprintf(w, "\t%s\t%s\n", a.name, a.help)
		}
	}
}

// byKind returns the registered args of one kind sorted by long name. The
// registry is a map, so ordering has to be imposed here.
func (p *ArgParser) byKind(kind ArgKind) (args []*Arg) {
	for _, a := range p.args {
		if a.kind == kind {
			args = append(args, a)
		}
	}
	sort.Slice(args, func(i, j int) bool {
		return args[i].name < args[j].name
	})
	return
}
