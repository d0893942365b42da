package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-state/state"
)

func valueCmd() *cobra.Command {
	var writes int

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Bind two values bidirectionally and trace their notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValue(cmd.OutOrStdout(), writes)
		},
	}
	cmd.Flags().IntVar(&writes, "writes", 2, "number of writes to each end while bound")
	return cmd
}

func runValue(w io.Writer, writes int) error {
	events := newTable("value", "event", "detail")
	trace := func(name string) []state.ValueOption[int] {
		return []state.ValueOption[int]{
			state.WithOnChange(func(old, new int) {
				events.add(name, "change", strconv.Itoa(old)+" -> "+strconv.Itoa(new))
			}),
			state.WithOnSet(func(value int) {
				events.add(name, "set", strconv.Itoa(value))
			}),
		}
	}

	count := state.NewValue(trace("count")...)
	mirror := state.NewValue(trace("mirror")...)

	var links state.Links
	state.BindBidirectionalTracked(&links, count, mirror)

	for i := 1; i <= writes; i++ {
		count.Set(i)
		mirror.Set(i * 10)
	}
	links.Clear()
	count.Set(-1)

	if err := events.render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nafter unbind: count=%d mirror=%d\n", count.Get(), mirror.Get())
	return err
}
