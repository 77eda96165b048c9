// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"gopkg.in/typ.v4/sync2"
)

// Pool reusable objects to reduce garbage collector
type Pool struct {
	Players *sync2.Pool[[]*Player]
}

func NewPool() *Pool {
	return &Pool{
		Players: &sync2.Pool[[]*Player]{
			New: func() []*Player {
				return make([]*Player, 0, 16)
			},
		},
	}
}

var pool = NewPool()

// GetPlayerScratch returns an empty reusable player slice.
func GetPlayerScratch() []*Player {
	return pool.Players.Get()[:0]
}

// PutPlayerScratch returns a scratch slice obtained from GetPlayerScratch.
func PutPlayerScratch(s []*Player) {
	pool.Players.Put(s)
}
