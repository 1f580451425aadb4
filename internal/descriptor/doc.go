// Package descriptor rewrites JVM type descriptors, substituting every
// embedded class internal name through a caller-supplied translation
// callback while preserving primitives, array markers, and method
// parentheses exactly.
//
// The walker is a one-character-lookahead recursive descent over the
// descriptor grammar:
//
//	FieldType:  B C D F I J S Z | [ FieldType | L internal/name ;
//	MethodDesc: ( FieldType* ) ( FieldType | V )
//
// It is deliberately decoupled from any mapping index: class-name lookups go
// through the Translator callback, so the engine is independently testable
// against synthetic descriptors and symmetric between translation directions.
package descriptor
