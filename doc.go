// Package enumext derives a library of operations from a closed, ordered set
// of named constants.
//
// A host declares its variants once, as an ordered list of (name, optional
// discriminant) pairs, and receives back an immutable capability object:
//
//	status := enumext.MustNew("Status", []enumext.VariantSpec{
//		enumext.Spec("Pending"),
//		enumext.Spec("InQA"),
//		enumext.Spec("Done"),
//	})
//
//	status.Count()                    // 3
//	status.FromSnakeCase("in_qa")     // the InQA variant, true
//	status.Next(v)                    // wraps from last back to first
//
// Construction validates the whole declaration up front (duplicate names,
// duplicate or out-of-range discriminants, ambiguous case renderings) and
// fails with a coded *Error before any operation can run. After construction
// the table is never mutated, so any number of goroutines may call any
// operation without coordination.
//
// The enumgen subpackages turn the same engine into a build-time source
// generator: they scan Go packages for typed const groups and emit the
// operation set as ordinary methods on the declaring type.
package enumext
