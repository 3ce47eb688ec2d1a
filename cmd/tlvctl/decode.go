package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/protocol/frame"
	"github.com/danmuck/tlvkit/internal/protocol/tlv"
	"github.com/danmuck/tlvkit/internal/render"
	"github.com/spf13/cobra"
)

type decodeOptions struct {
	raw   bool
	hex   bool
	table bool
}

func newDecodeCmd(a *app) *cobra.Command {
	var opts decodeOptions
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "decode and print a document",
		Long: `
Decode a framed document file and print its tree. With --raw the file holds
bare TLV bytes and the codec settings come from --config (or the defaults).
With --hex the file holds the bytes as hex text; whitespace, ':', '-', ','
and 0x prefixes are accepted.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "input is unframed TLV bytes")
	cmd.Flags().BoolVar(&opts.hex, "hex", false, "input is hex text")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the tree as a table")
	return cmd
}

func (a *app) runDecode(w io.Writer, path string, opts decodeOptions) error {
	t, err := a.decodeFile(path, opts)
	if err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	cfg := t.Config()
	return show(w, fmt.Sprintf("%s: attr=%d tag=%d len=%d order=%s nodes=%d",
		path, cfg.AttrLen, cfg.TagLen, cfg.LenLen, cfg.Order, t.NodeCount()), t, opts.table)
}

func (a *app) decodeFile(path string, opts decodeOptions) (*tlv.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if opts.hex {
		if data, err = render.ParseHex(string(data)); err != nil {
			return nil, err
		}
	}
	if !opts.raw {
		return frame.ReadTree(bytes.NewReader(data), a.settings.Frame)
	}
	t, n, err := tlv.Decode(a.settings.Codec, data)
	if err != nil {
		return nil, err
	}
	if n < len(data) {
		logging.Warnf("%s: ignoring %d bytes after the document", path, len(data)-n)
	}
	return t, nil
}
