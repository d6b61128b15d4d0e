// Package main provides the CLI entrypoint for serializer-generator.
//
// serializer-generator compiles a YAML mapping description into a
// serializer contract: reader/writer procedure artifacts plus one typed
// serializer per root mapping. The contract is printed as a summary;
// -dump prints the full artifact table.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"

	"serializer-generator/internal/artifact"
	"serializer-generator/internal/common"
	"serializer-generator/internal/gen"
	"serializer-generator/internal/mapping"
)

func main() {
	file := flag.String("f", "mapping.yaml", "mapping description file")
	dump := flag.Bool("dump", false, "dump the full artifact table")
	flag.Parse()

	f, err := mapping.LoadFile(*file)
	if err != nil {
		fmt.Println("load mapping:", err)
		os.Exit(1)
	}

	bundle, err := f.Build()
	if err != nil {
		fmt.Println("build mapping:", err)
		os.Exit(1)
	}

	generator := gen.NewGenerator(gen.DefaultConfig())

	result, err := generator.Generate(bundle.Roots, bundle.Supported)
	if err != nil {
		fmt.Println("generate error:", err)
		os.Exit(1)
	}

	for _, w := range result.Diagnostics.Warnings {
		fmt.Println("warning:", w.String())
	}

	c := result.Contract

	fmt.Printf("contract: %d roots, %d classes\n", len(c.Keys()), c.Artifacts().Len())

	reads := c.ReadProcedures()
	writes := c.WriteProcedures()
	typed := c.TypedSerializers()

	for _, key := range c.Keys() {
		fmt.Printf("  root %s -> %s\n", key, typed[key])

		if name, ok := reads[key]; ok {
			fmt.Printf("    read  %s\n", name)
		}

		fmt.Printf("    write %s\n", writes[key])
	}

	for _, t := range bundle.Supported {
		verdict := "unsupported"
		if c.CanSerialize(t) {
			verdict = "ok"
		}

		fmt.Printf("  type %s (%s): %s\n", t.Name, common.PkgAlias(t.PkgPath), verdict)
	}

	if *dump {
		dumpTable(c.Artifacts())
	}
}

// dumpTable spews every class, methods sorted for stable output.
func dumpTable(tbl *artifact.Table) {
	for _, class := range tbl.Classes() {
		methods := append([]*artifact.Procedure(nil), class.Methods()...)
		sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })

		fmt.Println("===", class.Name, "extends", class.Extends, "===")
		spew.Dump(methods)
	}
}
