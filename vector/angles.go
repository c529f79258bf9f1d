// SPDX-License-Identifier: MIT

package vector

import "math"

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180.0 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180.0 / math.Pi }
