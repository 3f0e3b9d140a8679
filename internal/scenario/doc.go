// Package scenario loads and runs YAML-described calls of the functools
// helpers. It backs the demo CLI and reproduces the classic examples:
// squaring a list, incrementing a tuple, scaling dict values, filtering each
// container kind, and combining numbers and words.
//
// A scenario file looks like:
//
//	scenarios:
//	  - name: square list
//	    call: process
//	    kind: list
//	    data: [1, 2, 3]
//	    op: {name: pow, args: [2]}
//	  - name: words
//	    call: combine
//	    values: [Python, is, cool]
//	    separator: " "
//
// Mapping data keeps the order written in the file.
package scenario
