// Package sample builds the demonstration document used by tlvctl.
package sample

import (
	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/protocol/tlv"
)

// SampleTagLen is the tag width the sample tags are written for.
const SampleTagLen = 64

// Config is the default codec config widened to SampleTagLen.
func Config() tlv.Config {
	cfg := tlv.DefaultConfig()
	cfg.TagLen = SampleTagLen
	return cfg
}

type entry struct {
	tag      string
	value    string
	children []entry
}

var document = entry{
	tag: "root node",
	children: []entry{
		{tag: "node lv1_1", children: []entry{
			{tag: "node lv1_1_1", value: "value of lv1_1_1"},
		}},
		{tag: "node lv1_2"},
		{tag: "node lv1_3"},
		{tag: "node lv1_4", value: "value of lv1_4"},
	},
}

// Build constructs the sample document in a new tree and lays it out.
func Build(cfg tlv.Config) (*tlv.Tree, error) {
	t, err := tlv.New(cfg)
	if err != nil {
		return nil, err
	}
	root, err := build(t, document)
	if err != nil {
		return nil, err
	}
	if err := t.SetRoot(root); err != nil {
		return nil, err
	}
	size, err := t.Layout()
	if err != nil {
		return nil, err
	}
	logging.Debugf("sample.Build nodes=%d size=%d", t.NodeCount(), size)
	return t, nil
}

func build(t *tlv.Tree, s entry) (tlv.NodeID, error) {
	id := t.NewNode()
	if _, err := t.WriteTag(id, []byte(s.tag)); err != nil {
		return tlv.NoNode, err
	}
	if len(s.children) == 0 {
		if err := t.WriteValue(id, []byte(s.value)); err != nil {
			return tlv.NoNode, err
		}
		return id, nil
	}
	for _, c := range s.children {
		child, err := build(t, c)
		if err != nil {
			return tlv.NoNode, err
		}
		if err := t.AddChild(id, child); err != nil {
			return tlv.NoNode, err
		}
	}
	return id, nil
}

// Reparent moves the second child of the root under the node that becomes
// the root's third child once it is removed, then lays the tree out again.
// The new parent loses its value.
func Reparent(t *tlv.Tree) (int, error) {
	root := t.Root()
	if n := t.ChildCount(root); n < 4 {
		return 0, errors.Wrapf(tlv.ErrInvalidArgument, "reparent: root has %d children, need 4", n)
	}
	moved := t.Next(t.FirstChild(root))
	if err := t.RemoveChild(moved); err != nil {
		return 0, err
	}
	target := t.Next(t.Next(t.FirstChild(root)))
	if err := t.AddChild(target, moved); err != nil {
		return 0, err
	}
	return t.Layout()
}
