// Package tfdrawer implements a piecewise-linear grayscale transfer function
// engine driven by user-placed inflection points.
//
// A session owns an ordered set of control points on the 0-255 domain, builds
// a 256-entry lookup table from them by linear interpolation, and applies the
// table to single-channel or color images. The interactive surface (plot
// widget, click handling, file dialogs) is a collaborator concern; this
// package is the state-and-transform core invoked synchronously by it.
package tfdrawer
