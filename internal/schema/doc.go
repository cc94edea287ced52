// Package schema loads type declarations from YAML schema files.
//
// A schema describes declarations that have no Go source yet. daftgen
// emits each declaration together with its diff code:
//
//	package: shapes
//	imports:
//	  - time
//	types:
//	  - name: Circle
//	    kind: struct
//	    non_exhaustive: true
//	    fields:
//	      - name: Center
//	        type: Point
//	      - name: Radius
//	        type: float64
//	        attrs: leaf
//	  - name: Pair
//	    kind: tuple
//	    params: [{name: T, constraint: any}]
//	    fields: [{type: T}, {type: T}]
//	  - name: Fill
//	    kind: enum
//	    variants:
//	      - name: Empty
//	      - name: Hatched
//	        kind: tuple
//	        fields: [{type: uint32}]
//
// Kinds are struct, tuple, unit, enum and union. Enums and unions become
// a sealed interface with one struct per variant.
package schema
