package main

type probe struct {
	name       string
	iterations int
	// body performs the operation n times and returns its final accumulator.
	body func(n int) float64
}

// record is the object mutated by the Struct Access probe.
type record struct {
	val float64
}

// sink keeps probe results reachable so the loops are not optimised away.
var sink float64

var defaultProbes = []probe{
	{name: "Integer Add", iterations: 1000000000, body: intAdd},
	{name: "Double Arith", iterations: 100000000, body: doubleArith},
	{name: "String Concat", iterations: 50000, body: stringConcat},
	{name: "Array Push", iterations: 1000000, body: arrayPush},
	{name: "Struct Access", iterations: 50000000, body: structAccess},
}

func intAdd(n int) float64 {
	counter := 0
	for i := 0; i < n; i++ {
		counter++
	}
	return float64(counter)
}

func doubleArith(n int) float64 {
	val := 0.0
	for i := 0; i < n; i++ {
		val += 1.1
	}
	return val
}

// stringConcat grows the string one byte at a time. Every append reallocates,
// which is the cost being measured.
func stringConcat(n int) float64 {
	s := ""
	for i := 0; i < n; i++ {
		s += "a"
	}
	return float64(len(s))
}

func arrayPush(n int) float64 {
	var arr []int
	for i := 0; i < n; i++ {
		arr = append(arr, i)
	}
	return float64(len(arr))
}

func structAccess(n int) float64 {
	o := &record{}
	var x float64
	for i := 0; i < n; i++ {
		o.val = float64(i)
		x = o.val
	}
	return x
}
