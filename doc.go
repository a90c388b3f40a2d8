// Package sampleavg merges Monte-Carlo render samples stored as plain-text PPM
// into one averaged, gamma-encoded image.
//
// Sample files carry linear-light float triples ("r g b", one pixel per line)
// after a three line header. Corresponding lines of all samples are averaged
// and mapped to display values with a 1/2.2 power curve.
package sampleavg
