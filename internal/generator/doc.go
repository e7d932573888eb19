// Package generator provides the file-operation primitives behind pyhatch's
// scaffolding: plan a set of operations, validate them all, then execute.
//
// # Operations
//
// Everything the scaffolder does to disk is expressed as an Operation.
// Operations are validated up front (phase 1) before anything is executed
// (phase 2), so a plan that cannot succeed is rejected before the first
// write:
//
//	ops := []generator.Operation{
//	    &generator.MkdirOp{Path: "demo/docs"},
//	    &generator.WriteFileOp{Path: "demo/docs/index.md", Content: body, Mode: 0644},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
//
// # Rendering
//
// The Renderer turns embedded text/template files into file content. It
// caches parsed templates and ships a small helper funcMap (title, lower,
// quote, ...).
package generator
