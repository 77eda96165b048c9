// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package playerdata defines the player identifier type shared by every
// engine package.
package playerdata

// ID identifies a tournament participant. IDs are assigned by the caller at
// tournament setup and stay stable for the tournament's lifetime.
type ID string

// IDsToStrings converts a slice of IDs to their string forms.
func IDsToStrings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// PairKey returns a canonical key for the unordered pair (a, b). Both
// orderings of the same two IDs map to the same key.
func PairKey(a, b ID) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + "|" + string(b)
}
