// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package mathutil

import "cmp"

// Min returns the smaller of x and y.
func Min[T cmp.Ordered](x T, y T) T {
	return min(x, y)
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff(x, y float64) float64 {
	if x > y {
		return x - y
	}
	return y - x
}
