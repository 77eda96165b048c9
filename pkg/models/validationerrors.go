// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ConfigurationErrorNotEnoughPlayers = errors.New("at least 4 usable players are required for one 2-vs-2 match")
	ConfigurationErrorNilPlayer        = errors.New("player list contains a nil player")
	ConfigurationErrorDuplicateID      = errors.New("player list contains a duplicate player id")
	ConfigurationErrorUnknownFormat    = errors.New("unknown tournament format")
	ConfigurationErrorUnknownGender    = errors.New("unknown gender preference")
	ConfigurationErrorCourtCount       = errors.New("court count must be at least 1")

	ErrMatchNotCompleted = errors.New("match has no recorded scores")
	ErrUnknownPlayer     = errors.New("match references a player outside the roster")
)

var validationErrorCodeMap = map[error]int{
	ConfigurationErrorNotEnoughPlayers: 520101,
	ConfigurationErrorNilPlayer:        520102,
	ConfigurationErrorDuplicateID:      520103,
	ConfigurationErrorUnknownFormat:    520104,
	ConfigurationErrorUnknownGender:    520105,
	ConfigurationErrorCourtCount:       520106,
	ErrMatchNotCompleted:               520110,
	ErrUnknownPlayer:                   520111,
}

// ValidationErrorCode returns a code for the error.
// It returns 20002 if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	code, ok := validationErrorCodeMap[err]
	if !ok {
		return 20002
	}
	return code
}
