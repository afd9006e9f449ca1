// Package mapio reads and writes orienteering maps as documents.
//
// A Document is the exchange format of a map:
//
//	{"SpawnRate":0.5,
//	 "Vertices":[{"Name":"S","Interest":0,"x":0,"y":0,"ChildText":"Start"}, ...],
//	 "Edges":[{"Weight":3,"FirstVertexName":"S","SecondVertexName":"1"}, ...]}
//
// The first vertex of a document is the start vertex. Documents are encoded
// as JSON or YAML; Load and Save pick the codec from the file extension.
//
// ToGraph validates a Document and builds a core.Graph from it; FromGraph
// does the reverse with the start vertex first and roads in insertion order.
package mapio
