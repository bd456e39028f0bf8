// Package svmgo provides sparse vector algebra and multi-class structured
// SVM training for Go, designed for text classification and other
// high-dimensional, sparse feature problems.
//
// # Features
//
// - Dual dense/sparse vector representation with merge-join operators
// - Multi-class classification through a joint class-by-feature encoding
// - One-slack cutting-plane training with loss-augmented decoding
// - Robust Error Handling: structured errors with stack traces
// - Safe Sharing: all vectors and models are immutable value objects
//
// # Installation
//
// Install svmgo using go get:
//
//	go get github.com/YuminosukeSato/svmgo
//
// # Quick Start
//
// Here's a minimal multi-class example:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/svmgo/svm"
//	    "github.com/YuminosukeSato/svmgo/vector"
//	)
//
//	func main() {
//	    xs := []int{0, 1, 2}
//	    ys := []string{"a", "b", "c"}
//	    feature := func(x int) *vector.Sparse {
//	        s, _ := vector.NewSparse([]int{x}, []float64{1})
//	        return s
//	    }
//
//	    model, err := svm.Learn(xs, ys, feature, nil, svm.WithC(10))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, _ := model.Predict(1)
//	    fmt.Println(label) // "b"
//	}
//
// The vector package is usable on its own wherever sparse linear algebra
// over float64 components is needed.
package svmgo
