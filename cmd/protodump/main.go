// Command protodump loads a YAML prototype tree and prints each node's
// lineage and current attribute values.
//
// Usage:
//
//	protodump [file.yaml]
//
// With no argument, the document is read from standard input.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/zephyrtronium/protos"
)

func main() {
	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	tree, err := protos.LoadTree(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	byObject := make(map[*protos.Object]string, len(tree))
	names := make([]string, 0, len(tree))
	for name, o := range tree {
		byObject[o] = name
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o := tree[name]
		fmt.Print(name)
		for _, a := range o.Ancestors() {
			fmt.Print(" < ", byObject[a])
		}
		fmt.Println()
		for _, attr := range o.Attributes() {
			v, err := o.Call(attr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("\t%s = %v\n", attr, v)
		}
	}
}
