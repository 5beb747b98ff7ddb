// SPDX-License-Identifier: MIT

package spline

// Segment exposes segment to spline_test.
var Segment = segment
