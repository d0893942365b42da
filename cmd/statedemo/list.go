package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-state/state"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [items...]",
		Short: "Mutate a list and print every change event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"apple", "りんご", "pear"}
			}
			return runList(cmd.OutOrStdout(), args)
		},
	}
}

func runList(w io.Writer, items []string) error {
	events := newTable("op", "kind", "size", "items")
	op := ""
	refreshes := 0
	invalidator := state.NewInvalidator(func() bool {
		refreshes++
		return true
	})
	list := state.NewList(state.WithOnListChange(state.ScheduleListChange(invalidator,
		func(change state.ListChange[string]) {
			events.add(op, change.Kind().String(),
				strconv.Itoa(change.OldSize)+" -> "+strconv.Itoa(change.NewSize),
				strings.Join(change.Items(), ", "))
		})))

	op = "append"
	list.Append(items[0])
	if len(items) > 1 {
		op = "append-all"
		list.AppendAll(items[1:]...)
	}
	op = "insert"
	if err := list.Insert(0, "first"); err != nil {
		return err
	}
	op = "set-at"
	if _, err := list.SetAt(0, "head"); err != nil {
		return err
	}
	op = "remove"
	list.Remove(items[0])
	op = "remove-at"
	if _, err := list.RemoveAt(0); err != nil {
		return err
	}
	op = "remove-all"
	list.RemoveAll(items[len(items)-1])

	if err := events.render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nfinal: [%s]\nrefresh requests: %d\n", strings.Join(list.Items(), ", "), refreshes)
	return err
}
