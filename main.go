package main

import (
	"flag"
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/dot5enko/sparse-vector/vector"
	"github.com/fatih/color"
)

type sample struct {
	index uint
	value float64
}

func buildVector(typeName string, samples []sample) (*vector.Vector, error) {

	vec := vector.New()

	for _, it := range samples {
		if err := vec.Set(it.index, typeName, it.value); err != nil {
			return nil, err
		}
	}

	color.Green(" +++ created %s vector %s with values at indices %v", typeName, vec.Id().String(), vec.Indices())

	return vec, nil
}

func example(dump bool) error {

	log.Printf("creating vectors...")

	intVector, err := buildVector("integer", []sample{{0, 42}, {1, -17}, {5, 1000}})
	if err != nil {
		return err
	}

	for _, idx := range intVector.Indices() {
		val, getErr := intVector.GetInteger(uint(idx))
		if getErr != nil {
			return getErr
		}
		log.Printf("integer value at index %d: %d", idx, val)
	}

	doubleVector, err := buildVector("double", []sample{{0, 3.14}, {2, -2.718}, {4, 1.618}})
	if err != nil {
		return err
	}

	for _, idx := range doubleVector.Indices() {
		val, getErr := doubleVector.GetDouble(uint(idx))
		if getErr != nil {
			return getErr
		}
		log.Printf("double value at index %d: %v", idx, val)
	}

	decimalVector, err := buildVector("decimal", []sample{{0, 123.4567}, {1, -45.678}, {2, 0.0001}})
	if err != nil {
		return err
	}

	for _, idx := range []uint{0, 1, 2} {
		val, getErr := decimalVector.GetDecimal(idx)
		if getErr != nil {
			return getErr
		}
		log.Printf("decimal value at index %d: %v", idx, val)
	}

	if typeErr := decimalVector.Set(3, "integer", 1); typeErr != nil {
		color.Yellow(" rejected write into decimal vector: %s", typeErr.Error())
	}

	image, err := decimalVector.EncodeImage(vector.ImageConfig{Compress: true})
	if err != nil {
		return err
	}

	restored, err := vector.DecodeImage(image)
	if err != nil {
		return err
	}

	restoredVal, err := restored.GetDecimal(0)
	if err != nil {
		return err
	}

	color.Green(" +++ decimal vector restored from %d byte image, value at index 0: %v", len(image), restoredVal)

	if dump {
		for _, vec := range []*vector.Vector{intVector, doubleVector, decimalVector} {
			header := vec.Header()
			spew.Dump(vec.Id().String(), header)
		}
	}

	return nil
}

func main() {

	dump := flag.Bool("dump", false, "dump vector headers")
	flag.Parse()

	if err := example(*dump); err != nil {
		color.Red("error in example: %s", err.Error())
	}
}
