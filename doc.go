/*
Package jsonvalue is a dynamically typed JSON value library.
A document is a tree of *Value nodes. Every node knows the container that
holds it, so a node can report its JSON Pointer (RFC 6901) and the root of
its tree. Objects keep their keys in insertion order, and a node obtained
from a container stays valid while other keys or indexes are added or
removed.

Lookups never fail loudly: a missing key, index or pointer segment yields a
nil *Value and every read-only method treats nil like an Undefined value.

	doc := jsonvalue.Parse(`{"a": {"b": [1, 2]}}`)
	n := doc.EvalPointer("/a/b/1", false)
	fmt.Println(n.AsInteger(0), n.Pointer()) // 2 /a/b/1

The schema subpackage derives default documents from JSON Schema like
documents.
*/
package jsonvalue // import "github.com/d1ced/jsonvalue"
