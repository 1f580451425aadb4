// Package main provides the CLI entrypoint for tiny-remapper.
//
// tiny-remapper loads a TINY v2 mapping file and answers one-shot name
// translation queries against it:
//   - Inspect a mapping set (namespaces, entry counts, fingerprint)
//   - Remap class / method / field names between namespaces
//   - Rewrite JVM type descriptors between namespaces
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"tiny-remapper/internal/profile"
	"tiny-remapper/remap"
)

func main() {
	app := &cli.App{
		Name:  "tiny-remapper",
		Usage: "query TINY v2 mapping files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mappings",
				Aliases: []string{"m"},
				Usage:   "path of the TINY v2 mapping file ('-' for stdin)",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "path of a YAML remap profile",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "print mapping set summary",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dump", Usage: "dump the effective profile"},
				},
				Action: runInspect,
			},
			{
				Name:      "class",
				Usage:     "remap a class name",
				ArgsUsage: "NAME",
				Action:    runClass,
			},
			{
				Name:      "method",
				Usage:     "remap a method name",
				ArgsUsage: "OWNER NAME DESCRIPTOR",
				Action:    runMethod,
			},
			{
				Name:      "field",
				Usage:     "remap a field name",
				ArgsUsage: "OWNER NAME DESCRIPTOR",
				Action:    runField,
			},
			{
				Name:      "desc",
				Usage:     "remap a type descriptor",
				ArgsUsage: "DESCRIPTOR",
				Action:    runDesc,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadProfile resolves the effective profile from --profile and --mappings.
func loadProfile(c *cli.Context) (*profile.Profile, error) {
	prof := profile.Default()

	if path := c.String("profile"); path != "" {
		loaded, err := profile.LoadFile(path)
		if err != nil {
			return nil, err
		}

		prof = loaded
	}

	if path := c.String("mappings"); path != "" {
		prof.Mappings = path
	}

	if prof.Mappings == "" {
		return nil, fmt.Errorf("no mapping file given (use --mappings or a profile)")
	}

	return prof, nil
}

// loadRemapper opens the mapping file named by the profile and loads it.
func loadRemapper(c *cli.Context, prof *profile.Profile) (*remap.Remapper, error) {
	var in io.Reader

	if prof.Mappings == "-" {
		in = c.App.Reader
	} else {
		f, err := os.Open(prof.Mappings)
		if err != nil {
			return nil, fmt.Errorf("open mapping file: %w", err)
		}
		defer f.Close()

		in = f
	}

	return remap.Load(in,
		remap.WithNamespaces(prof.Query, prof.Target),
		remap.WithDescriptorCacheSize(prof.DescriptorCache),
	)
}

func runInspect(c *cli.Context) error {
	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	r, err := loadRemapper(c, prof)
	if err != nil {
		return err
	}

	if c.Bool("dump") {
		fmt.Fprint(c.App.Writer, spew.Sdump(prof))
	}

	stats := r.Stats()

	fmt.Fprintf(c.App.Writer, "namespaces:  %v\n", r.Namespaces())
	fmt.Fprintf(c.App.Writer, "classes:     %d\n", stats.Classes)
	fmt.Fprintf(c.App.Writer, "fields:      %d\n", stats.Fields)
	fmt.Fprintf(c.App.Writer, "methods:     %d\n", stats.Methods)
	fmt.Fprintf(c.App.Writer, "parameters:  %d\n", stats.Parameters)
	fmt.Fprintf(c.App.Writer, "fingerprint: %016x\n", r.Fingerprint())

	return nil
}

func runClass(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: class NAME")
	}

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	r, err := loadRemapper(c, prof)
	if err != nil {
		return err
	}

	name := c.Args().Get(0)

	mapped, ok := r.RemapClass(name)
	if !ok {
		return notFound(c, r, name)
	}

	fmt.Fprintln(c.App.Writer, mapped)

	return nil
}

func runMethod(c *cli.Context) error {
	return runMember(c, "method", (*remap.Remapper).RemapMethod)
}

func runField(c *cli.Context) error {
	return runMember(c, "field", (*remap.Remapper).RemapField)
}

func runMember(c *cli.Context, what string, query func(*remap.Remapper, string, string, string) (string, bool)) error {
	if c.NArg() != 3 {
		return fmt.Errorf("usage: %s OWNER NAME DESCRIPTOR", what)
	}

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	r, err := loadRemapper(c, prof)
	if err != nil {
		return err
	}

	owner, name, desc := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	if _, ok := r.RemapClass(owner); !ok {
		return notFound(c, r, owner)
	}

	mapped, ok := query(r, owner, name, desc)
	if !ok {
		return cli.Exit(fmt.Sprintf("no mapping for %s %s.%s %s", what, owner, name, desc), 1)
	}

	fmt.Fprintln(c.App.Writer, mapped)

	return nil
}

func runDesc(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: desc DESCRIPTOR")
	}

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	r, err := loadRemapper(c, prof)
	if err != nil {
		return err
	}

	mapped, err := r.RemapDescriptor(c.Args().Get(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, mapped)

	return nil
}

// notFound reports a missed class lookup with near-miss suggestions.
func notFound(c *cli.Context, r *remap.Remapper, name string) error {
	msg := fmt.Sprintf("no mapping for class %s", name)

	if suggestions := r.SuggestClasses(name, 3); len(suggestions) > 0 {
		msg += "\ndid you mean:"
		for _, s := range suggestions {
			msg += "\n  " + s
		}
	}

	return cli.Exit(msg, 1)
}
