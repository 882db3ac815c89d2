package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/engine"
)

// ExampleEngine_Search matches an observed tumour whose columns were written
// in reverse order, with the sides swapped.
func ExampleEngine_Search() {
	sim := deme.Structured{Records: []deme.Record{
		{Side: deme.SideA, OriginTime: 0, Array: []float64{0.1, 0.2, 0.9}},
		{Side: deme.SideA, OriginTime: 1, Array: []float64{0.2, 0.2, 0.8}},
		{Side: deme.SideA, OriginTime: 2, Array: []float64{0.3, 0.1, 0.6}},
		{Side: deme.SideA, OriginTime: 3, Array: []float64{0.5, 0.4, 0.4}},
		{Side: deme.SideB, OriginTime: 0, Array: []float64{0.9, 0.7, 0.1}},
		{Side: deme.SideB, OriginTime: 1, Array: []float64{0.8, 0.9, 0.0}},
		{Side: deme.SideB, OriginTime: 2, Array: []float64{0.6, 0.5, 0.3}},
		{Side: deme.SideB, OriginTime: 3, Array: []float64{0.7, 0.6, 0.2}},
	}}
	n, _ := deme.Normalize(sim)
	observed := deme.Columnar{}
	for k := deme.Count - 1; k >= 0; k-- {
		observed.Columns = append(observed.Columns, n.Arrays[k])
	}

	res, err := engine.New(engine.WithWorkers(2)).Search(context.Background(), sim, observed)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("score:", res.Score)
	fmt.Println("relabeling:", res.Permutation)

	// Output:
	// score: 0
	// relabeling: [7 6 5 4 3 2 1 0]
}

// ExampleTotalDistance shows the rejection of a dataset with too few demes.
func ExampleTotalDistance() {
	seven := deme.Columnar{Columns: [][]float64{
		{0.1}, {0.2}, {0.3}, {0.4}, {0.5}, {0.6}, {0.7},
	}}
	eight := deme.Columnar{Columns: [][]float64{
		{0.1}, {0.2}, {0.3}, {0.4}, {0.5}, {0.6}, {0.7}, {0.8},
	}}
	fmt.Println(engine.TotalDistance(eight, eight))
	fmt.Println(engine.TotalDistance(seven, eight))

	// Output:
	// 0
	// +Inf
}
