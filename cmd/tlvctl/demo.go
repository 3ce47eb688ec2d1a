package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/protocol/frame"
	"github.com/danmuck/tlvkit/internal/protocol/tlv"
	"github.com/danmuck/tlvkit/internal/render"
	"github.com/danmuck/tlvkit/internal/sample"
	"github.com/spf13/cobra"
)

type demoOptions struct {
	out   string
	table bool
	hex   bool
	sep   string
}

func newDemoCmd(a *app) *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "build the sample document, round-trip it and move one subtree",
		Long: `
Build the sample document, encode it, decode the bytes into a fresh tree,
move the second child of the root under the last one and lay it out again.
Each stage is printed. With --hex the encoded bytes of the built and final
trees are printed as hex, split by --sep. With --out the final tree is
written as a framed file.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the final tree to this framed file")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print trees as tables")
	cmd.Flags().BoolVar(&opts.hex, "hex", false, "print the encoded bytes as hex")
	cmd.Flags().StringVar(&opts.sep, "sep", "", "separator between hex bytes")
	return cmd
}

func (a *app) runDemo(w io.Writer, opts demoOptions) error {
	cfg := a.settings.Codec
	cfg.TagLen = sample.SampleTagLen

	built, err := sample.Build(cfg)
	if err != nil {
		return errors.Wrap(err, "build sample")
	}
	if err := show(w, fmt.Sprintf("built: %d bytes", built.EncodedLen()), built, opts.table); err != nil {
		return err
	}

	b, err := built.Marshal()
	if err != nil {
		return errors.Wrap(err, "encode sample")
	}
	if opts.hex {
		if err := showHex(w, "built", b, opts.sep); err != nil {
			return err
		}
	}
	loaded, n, err := tlv.Decode(cfg, b)
	if err != nil {
		return errors.Wrap(err, "decode sample")
	}
	if err := show(w, fmt.Sprintf("decoded: %d bytes", n), loaded, opts.table); err != nil {
		return err
	}

	size, err := sample.Reparent(loaded)
	if err != nil {
		return errors.Wrap(err, "reparent")
	}
	if err := show(w, fmt.Sprintf("reparented: %d bytes", size), loaded, opts.table); err != nil {
		return err
	}
	if opts.hex {
		final, err := loaded.Marshal()
		if err != nil {
			return errors.Wrap(err, "encode reparented")
		}
		if err := showHex(w, "reparented", final, opts.sep); err != nil {
			return err
		}
	}

	if opts.out == "" {
		return nil
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := frame.WriteTree(f, loaded, a.settings.Frame); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", opts.out)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.Infof("wrote %s (%d byte document)", opts.out, size)
	return nil
}

func show(w io.Writer, title string, t *tlv.Tree, table bool) error {
	if _, err := fmt.Fprintf(w, "== %s\n", title); err != nil {
		return errors.Wrap(err, "write output")
	}
	if table {
		render.Table(w, t)
		return nil
	}
	if err := render.Tree(w, t); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

func showHex(w io.Writer, title string, b []byte, sep string) error {
	if _, err := fmt.Fprintf(w, "== %s hex: %d bytes\n%s\n", title, len(b), render.Hex(b, sep)); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
