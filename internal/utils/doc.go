// Package utils provides general-purpose helpers shared by the directory
// adapter and the local store: HTTP client construction and station
// identifier normalization.
package utils
