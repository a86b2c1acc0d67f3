// Package lintcascade is the Enumerator Facade: given patterns on the
// command line, it resolves the concrete set of files to process and, for
// each one, a fully merged and validated configuration assembled from a
// cascading hierarchy of configuration files, CLI options, and a base
// configuration.
//
// Everything below this package -- the ancestor walk, the file iterator, the
// finalizer, the configuration data model -- is an internal implementation
// detail reachable only through the methods on Enumerator.
package lintcascade
