// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

// Tournament formats. The format selects the grouping strategy at engine
// construction time.
const (
	FormatMexicano      = "mexicano"
	FormatAmericano     = "americano"
	FormatFixedPartner  = "fixed_partner"
	FormatMixedMexicano = "mixed_mexicano"
)

// Gender preferences. The preference selects how the gender/mode resolver
// wraps the base grouping strategy.
const (
	GenderPreferenceAny             = "any"
	GenderPreferenceMixedOnly       = "mixed_only"
	GenderPreferenceRandomizedModes = "randomized_modes"
)

// Per-match compositions used by the randomized_modes resolver.
const (
	CompositionMixed        = "mixed"
	CompositionSingleMale   = "single_gender_male"
	CompositionSingleFemale = "single_gender_female"
)

const (
	GenerateRoundFunction = "generateRound"
	GenerateCourtFunction = "generateCourtMatch"
	RecordResultFunction  = "recordResult"
)

// Degradation reason constants.
const (
	DegradeReasonNotEnoughPlayers      = "degrade_not_enough_players"
	DegradeReasonPartnerMapInvalid     = "degrade_partner_map_invalid"
	DegradeReasonPartnerUnitUnpaired   = "degrade_partner_unit_unpaired"
	DegradeReasonMixedNotSupported     = "degrade_mixed_composition_not_supported"
	DegradeReasonNoFeasibleComposition = "degrade_no_feasible_composition"
	DegradeReasonPartnerRepeated       = "degrade_partner_repeat_unavoided"
)
