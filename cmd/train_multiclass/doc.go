// Package main trains a multiclass machine from the command line and prints how
// every decomposition round went. Configuration comes from flags, MULTICLASS_
// environment variables and an optional YAML file.
package main
