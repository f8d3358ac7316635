// Package edgelist writes similarity networks as flat edge-list files.
//
// Each edge set becomes one text file with a "# source target" header and one
// whitespace-separated id pair per line, in the order the builder produced
// them. Files are written atomically, and Lock serializes runs that share an
// output directory so two builds never interleave their files.
package edgelist
