package cmd

import (
	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/pkg/hsc"
	"github.com/cwbudde/go-hsc/types"
)

// The dump model mirrors the published node fields; scripts and globals are
// dumped by name, type and first node, without source coordinates. The JSON
// and YAML forms stay byte-stable across runs of the same input.

type nodeDump struct {
	Type        string   `json:"type" yaml:"type"`
	Primitive   bool     `json:"primitive" yaml:"primitive"`
	Global      bool     `json:"global,omitempty" yaml:"global,omitempty"`
	ScriptCall  bool     `json:"script_call,omitempty" yaml:"script_call,omitempty"`
	CallIndex   uint16   `json:"call_index,omitempty" yaml:"call_index,omitempty"`
	StringData  *string  `json:"string_data,omitempty" yaml:"string_data,omitempty"`
	ChildNode   *int32   `json:"child_node,omitempty" yaml:"child_node,omitempty"`
	NextNode    *int32   `json:"next_node,omitempty" yaml:"next_node,omitempty"`
	LongValue   *int32   `json:"long,omitempty" yaml:"long,omitempty"`
	ShortValue  *int16   `json:"short,omitempty" yaml:"short,omitempty"`
	BoolValue   *int8    `json:"boolean,omitempty" yaml:"boolean,omitempty"`
	RealValue   *float32 `json:"real,omitempty" yaml:"real,omitempty"`
	File        int      `json:"file" yaml:"file"`
	Line        int      `json:"line" yaml:"line"`
	Column      int      `json:"column" yaml:"column"`
}

type scriptDump struct {
	Name       string `json:"name" yaml:"name"`
	ScriptType string `json:"script_type" yaml:"script_type"`
	ReturnType string `json:"return_type" yaml:"return_type"`
	FirstNode  int32  `json:"first_node" yaml:"first_node"`
}

type globalDump struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	FirstNode int32  `json:"first_node" yaml:"first_node"`
}

type compileDump struct {
	Files   []string     `json:"files" yaml:"files"`
	Nodes   []nodeDump   `json:"nodes" yaml:"nodes"`
	Scripts []scriptDump `json:"scripts" yaml:"scripts"`
	Globals []globalDump `json:"globals" yaml:"globals"`
}

func buildDump(instance *hsc.Instance) compileDump {
	nodes := instance.Nodes()
	dump := compileDump{
		Files:   instance.FileNames(),
		Nodes:   make([]nodeDump, 0, len(nodes)),
		Scripts: make([]scriptDump, 0, len(instance.Scripts())),
		Globals: make([]globalDump, 0, len(instance.Globals())),
	}

	for i := range nodes {
		dump.Nodes = append(dump.Nodes, dumpNode(&nodes[i]))
	}
	for _, s := range instance.Scripts() {
		dump.Scripts = append(dump.Scripts, scriptDump{
			Name:       s.Name,
			ScriptType: s.ScriptType.String(),
			ReturnType: s.ReturnType.String(),
			FirstNode:  int32(s.FirstNode),
		})
	}
	for _, g := range instance.Globals() {
		dump.Globals = append(dump.Globals, globalDump{
			Name:      g.Name,
			Type:      g.ValueType.String(),
			FirstNode: int32(g.FirstNode),
		})
	}
	return dump
}

func dumpNode(n *ast.Node) nodeDump {
	d := nodeDump{
		Type:       n.Type.String(),
		Primitive:  n.IsPrimitive,
		Global:     n.IsGlobal,
		ScriptCall: n.IsScriptCall,
		CallIndex:  n.CallIndex,
		StringData: n.StringData,
		File:       n.File,
		Line:       n.Line,
		Column:     n.Column,
	}

	if n.NextNode != ast.NullNode {
		next := int32(n.NextNode)
		d.NextNode = &next
	}

	if !n.IsPrimitive {
		child := int32(n.ChildNode)
		d.ChildNode = &child
		return d
	}

	// Numeric payloads are only meaningful once the string is released.
	if n.StringData != nil {
		return d
	}
	switch n.Type {
	case types.Long:
		v := n.LongInt
		d.LongValue = &v
	case types.Short, types.GameDifficulty, types.Team:
		v := n.ShortInt
		d.ShortValue = &v
	case types.Boolean:
		v := n.BoolInt
		d.BoolValue = &v
	case types.Real:
		v := n.Real
		d.RealValue = &v
	}
	return d
}
