package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	seen := make(map[*Command][]string)
	var order []*Command
	for name, command := range p.commands {
		if _, ok := seen[command]; !ok {
			order = append(order, command)
		}
		seen[command] = append(seen[command], name)
	}
	for _, names := range seen {
		slices.Sort(names)
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(seen[a][0], seen[b][0])
	})
	for _, command := range order {
		line := strings.Join(seen[command], ", ")
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
	}
}
