/*
Copyright 2014 Zachary Klippenstein

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package noise

import (
	"runtime"
	"sync"

	"github.com/zach-klippenstein/gonoise/util"
)

/*
Executor evaluates a field at every pixel centre of a domain.
*/
type Executor interface {
	// Execute writes field's value at each pixel centre of domain into out,
	// in row-major order. out must hold domain.Len() values.
	Execute(field Field, domain util.Domain, out []float64)
}

type serialExecutor struct{}

type forkJoinExecutor struct {
	workers int
}

var numCpu = runtime.NumCPU()

// Sample evaluates field over domain with executor and returns the values in
// row-major order.
func Sample(executor Executor, field Field, domain util.Domain) []float64 {
	out := make([]float64, domain.Len(), domain.Len())
	executor.Execute(field, domain, out)
	return out
}

// NewSerialExecutor returns an executor that evaluates every pixel on the
// current goroutine.
func NewSerialExecutor() Executor {
	return serialExecutor{}
}

func (serialExecutor) Execute(field Field, domain util.Domain, out []float64) {
	checkOut(domain, out)
	it := domain.Iterator()
	for {
		i := it.Index()
		x, y, ok := it.Next()
		if !ok {
			return
		}
		out[i] = field.Eval2(x, y)
	}
}

/*
NewForkJoinExecutor returns an executor that spreads the rows of a domain over
one goroutine per CPU.

Fields are immutable, so no locking is needed around evaluation.
*/
func NewForkJoinExecutor() Executor {
	return forkJoinExecutor{workers: numCpu}
}

func (e forkJoinExecutor) Execute(field Field, domain util.Domain, out []float64) {
	checkOut(domain, out)
	rows := make(chan int, domain.Height)
	for j := 0; j < domain.Height; j++ {
		rows <- j
	}
	close(rows)

	var waiter sync.WaitGroup
	waiter.Add(e.workers)
	for w := 0; w < e.workers; w++ {
		go func() {
			defer waiter.Done()
			for j := range rows {
				row := out[j*domain.Width : (j+1)*domain.Width]
				for i := range row {
					row[i] = field.Eval2(domain.At(i, j))
				}
			}
		}()
	}
	waiter.Wait()
}

func checkOut(domain util.Domain, out []float64) {
	if len(out) < domain.Len() {
		panic(Error.New("output holds %d values, domain %v needs %d", len(out), domain, domain.Len()))
	}
}
