// Package manifest loads extraction trees from YAML module manifests,
// validates them, and builds the model tree consumed by the emitter.
//
// A manifest mirrors the node kinds of package model with a kind
// discriminator per item:
//
//	module: _core
//	package: wx
//	prefix: wx
//	docstring: Core classes of the toolkit.
//	imports: [_adv]
//	items:
//	  - kind: class
//	    name: wxWindow
//	    bases: [wxEvtHandler]
//	    members:
//	      - kind: method
//	        name: wxWindow
//	        ctor: true
//	        args: "(parent, id=-1)"
//	  - kind: enum
//	    name: wxAlignmentFlags
//	    values: [{name: wxALIGN_LEFT}, {name: wxALIGN_RIGHT}]
//
// Validation reports structural problems (unknown kinds, accessor-less
// properties, unnamed modules) as diagnostics before any generation
// happens.
package manifest
