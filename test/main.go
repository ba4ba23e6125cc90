package main

import (
	"fmt"
	"net/netip"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervalmap"
	"github.com/henderiw/interval/pkg/intervalseq"
	"github.com/henderiw/interval/pkg/iprange"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var brackets = []struct {
	lower int
	upper int
	rate  float64
}{
	{lower: 0, upper: 10_000, rate: 0},
	{lower: 10_000, upper: 40_000, rate: 0.2},
	{lower: 40_000, upper: 100_000, rate: 0.4},
}

func main() {
	m := intervalmap.New[int, float64]()
	for _, b := range brackets {
		if err := m.Put(interval.Must(interval.Over(b.lower, true, b.upper, false)), b.rate); err != nil {
			panic(err)
		}
	}
	if err := m.Put(interval.AndMore(100_000), 0.5); err != nil {
		panic(err)
	}
	for _, income := range []int{5_000, 10_000, 75_000, 250_000} {
		rate, _ := m.Get(income)
		fmt.Printf("income %d rate %.2f\n", income, rate)
	}
	iter := m.Iterate()
	for iter.Next() {
		fmt.Println("bracket", iter.Entry().String(), "adjacent", iter.IsAdjacent())
	}

	seq := intervalseq.New[int]()
	for _, i := range []interval.Interval[int]{
		interval.Must(interval.Closed(5, 12)),
		interval.Must(interval.Closed(20, 25)),
		interval.Must(interval.Closed(8, 10)),
		interval.Must(interval.Open(30, 40)),
	} {
		if err := seq.Add(i); err != nil {
			panic(err)
		}
	}
	extent, err := seq.Extent()
	if err != nil {
		panic(err)
	}
	fmt.Println("extent", extent)
	for gap := range seq.Gaps().All() {
		fmt.Println("gap", gap)
	}
	for overlap := range seq.Intersections().All() {
		fmt.Println("overlap", overlap)
	}

	t, err := iprange.NewTable(netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("10.0.0.255"))
	if err != nil {
		panic(err)
	}
	for _, v := range []struct {
		rng    string
		labels map[string]string
	}{
		{rng: "10.0.0.0/30", labels: map[string]string{"type": "infra"}},
		{rng: "10.0.0.10-10.0.0.19", labels: map[string]string{"type": "pool", "a": "b"}},
		{rng: "10.0.0.100", labels: map[string]string{"type": "gateway"}},
	} {
		rng, err := iprange.Parse(v.rng)
		if err != nil {
			panic(err)
		}
		if err := t.Claim(rng, v.labels); err != nil {
			panic(err)
		}
	}
	req, err := labels.NewRequirement("type", selection.In, []string{"pool", "gateway"})
	if err != nil {
		panic(err)
	}
	for _, e := range t.GetByLabel(labels.NewSelector().Add(*req)) {
		fmt.Println("selected", e.String())
	}
	free, err := iprange.FreeSet(t)
	if err != nil {
		panic(err)
	}
	for _, r := range free.Ranges() {
		fmt.Println("free", r)
	}
}
