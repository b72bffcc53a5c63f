package network_test

import (
	"fmt"

	"github.com/katalvlaran/hydronet/network"
)

// ExampleBuild loads a YAML network and solves it.
func ExampleBuild() {
	doc := `
root: run
fluids:
  air: {density: 1.0, viscosity: 0.0186}
components:
  duct: {kind: pipe, fluid: air, diameter: 0.0508, length: 1.0, roughness: 2.0e-6, k: 5.0}
collections:
  run: {kind: series, members: [duct], repeat: 10}
`
	// 1) Decode and build.
	f, err := network.Parse([]byte(doc), network.FormatYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, err := network.Build(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve the root collection.
	dp, _ := n.Root().PressureChange(0.1)
	fmt.Printf("%s: %d members, dP=%.0f Pa\n", n.Tree().Name, len(n.Tree().Children), dp)
	// Output: run: 10 members, dP=-174650 Pa
}

// ExampleToDOT renders a small tree as Graphviz source.
func ExampleToDOT() {
	leaf := &network.Node{Name: "duct", Kind: "pipe", Detail: "D=0.05 m L=1 m K=5"}
	root := &network.Node{Name: "run", Kind: "series", Children: []*network.Node{leaf, leaf}}

	fmt.Print(network.ToDOT(root))
	// Output:
	// digraph G {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   node [fontsize=12, margin="0.15,0.05"];
	//
	//   "run" [label="run\nseries", shape=box, style="rounded,filled", fillcolor=lightgrey];
	//   "duct" [label="duct\npipe\nD=0.05 m L=1 m K=5", shape=box];
	//
	//   "run" -> "duct" [label="×2"];
	// }
}
