package graph_test

import (
	"fmt"

	"github.com/matzehuels/vizier/pkg/graph"
)

func Example() {
	// Build a small pipeline graph
	g, err := graph.New("pipeline", graph.Directed)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer g.Close()

	fetch, _ := g.AddNode("fetch")
	parse, _ := g.AddNode("parse")
	render, _ := g.AddNode("render")
	_, _ = g.AddEdge(fetch, parse, "")
	_, _ = g.AddEdge(parse, render, "")

	// Nodes come back in creation order
	for n := range g.Nodes() {
		name, _ := n.Name()
		fmt.Println(name)
	}
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// fetch
	// parse
	// render
	// edges: 2
}

func ExampleGraphBuilder() {
	b := graph.NewGraphBuilder("styled")
	b.Set("rankdir", "LR")
	b.Set("bgcolor", "lightgray")

	g, err := b.Build()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer g.Close()

	rankdir, _, _ := g.GetAttribute("rankdir")
	fmt.Println("rankdir:", rankdir)
	// Output:
	// rankdir: LR
}

func ExampleNode_OutEdges() {
	g, _ := graph.New("deps", graph.Directed)
	defer g.Close()

	app, _ := g.AddNode("app")
	lib, _ := g.AddNode("lib")
	db, _ := g.AddNode("db")
	_, _ = g.AddEdge(app, lib, "")
	_, _ = g.AddEdge(app, db, "")

	for e := range app.OutEdges() {
		dst, _ := e.Dest()
		name, _ := dst.Name()
		fmt.Println("app ->", name)
	}
	// Output:
	// app -> lib
	// app -> db
}

func ExampleGraph_GetAttribute() {
	g, _ := graph.New("g", graph.Directed)
	defer g.Close()

	n, _ := g.AddNode("a")
	_ = n.SetAttribute("color", "red")

	// A set key reads back its value; an undeclared key is absent.
	color, ok, _ := n.GetAttribute("color")
	fmt.Println(color, ok)
	_, ok, _ = n.GetAttribute("shape")
	fmt.Println(ok)
	// Output:
	// red true
	// false
}
