package main

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/brunolnetto/interval-sets/pkg/box"
	"github.com/brunolnetto/interval-sets/pkg/interval"
	"github.com/brunolnetto/interval-sets/pkg/region"
	"github.com/brunolnetto/interval-sets/pkg/spantable"
)

var meetings = []struct {
	name   string
	from   float64
	to     float64
	labels map[string]string
}{
	{name: "standup", from: 9, to: 9.5, labels: map[string]string{"team": "core"}},
	{name: "design-review", from: 10, to: 11.5, labels: map[string]string{"team": "core"}},
	{name: "1on1", from: 13, to: 13.5, labels: map[string]string{"team": "infra"}},
	{name: "retro", from: 16, to: 17, labels: map[string]string{"team": "core"}},
}

func main() {
	day, err := interval.Closed(9, 18)
	if err != nil {
		panic(err)
	}
	tbl, err := spantable.New(day)
	if err != nil {
		panic(err)
	}

	for _, m := range meetings {
		span, err := interval.ClosedOpen(m.from, m.to)
		if err != nil {
			panic(err)
		}
		if err := tbl.Claim(m.name, span, m.labels); err != nil {
			fmt.Println("claim failed:", err)
		}
	}

	fmt.Println("claimed:", tbl.Claimed())
	fmt.Println("free:   ", tbl.Free())

	sel := labels.SelectorFromSet(labels.Set{"team": "core"})
	for _, e := range tbl.List(sel) {
		fmt.Printf("core meeting %-14s %s\n", e.Name, e.Span)
	}

	if span, err := tbl.ClaimSize("focus-block", 2, nil); err == nil {
		fmt.Println("focus block at:", span)
	}
	fmt.Println("free now:", tbl.Free())

	// 2D: two overlapping slabs union into an L-shape of volume 3, not 4.
	a, _ := box.Closed([]float64{0, 0}, []float64{2, 1})
	b, _ := box.Closed([]float64{0, 0}, []float64{1, 2})
	l, err := region.New(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Printf("L-shape: %s volume=%v boxes=%d\n", l, l.Volume(), l.Len())
}
