// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package scheduler is the engine facade: it owns the roster snapshot,
// generates rounds (whole-round or one court at a time), and feeds
// completed results back into ratings and history.
package scheduler

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/config"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/constants"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/envelope"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/metrics"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/models"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/playerdata"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/ratings"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/roster"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/scheduler/gendermode"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/scheduler/grouping"
	"github.com/rasisbuldan/court-game-app-mobile-sub000/pkg/utils"
)

// Options configures one engine instance. Zero values fall back to one
// court, the mexicano format, and no gender preference.
type Options struct {
	Courts           int
	Format           string
	GenderPreference string

	// Metrics receives generation and recording events. Nil disables
	// metric emission.
	Metrics metrics.EngineMetrics

	// Seed fixes the engine's random source. Zero seeds from the clock.
	Seed int64

	// History rebuilds the pairwise history from a snapshot taken on a
	// previous engine instance. Without it a reconstructed engine starts
	// with empty partner/opponent history.
	History *roster.HistorySnapshot
}

// Engine is the stateful round-generation engine. It is synchronous and
// not safe for concurrent use; the caller serializes access.
type Engine struct {
	sessionID string
	cfg       *config.Config
	opts      Options
	roster    *roster.Roster
	strategy  grouping.Strategy
	updater   *ratings.Updater
	metrics   metrics.EngineMetrics
	rnd       *rand.Rand
}

// New constructs an engine over a deep copy of the given players. Fewer
// than 4 usable players is a configuration error.
func New(scope *envelope.Scope, cfg *config.Config, players []*models.Player, opts Options) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Courts == 0 {
		opts.Courts = 1
	}
	if opts.Courts < 1 {
		return nil, models.ConfigurationErrorCourtCount
	}
	if opts.Format == "" {
		opts.Format = constants.FormatMexicano
	}
	if opts.GenderPreference == "" {
		opts.GenderPreference = constants.GenderPreferenceAny
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}

	ros, err := roster.New(players)
	if err != nil {
		return nil, err
	}
	if opts.History != nil {
		ros.RestoreHistory(*opts.History)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	base, err := grouping.ForFormat(opts.Format, cfg, rnd)
	if err != nil {
		return nil, err
	}
	resolver, err := gendermode.New(opts.GenderPreference, base, cfg, rnd)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		sessionID: utils.GenerateUUID(),
		cfg:       cfg,
		opts:      opts,
		roster:    ros,
		strategy:  resolver,
		updater:   ratings.NewUpdater(cfg),
		metrics:   opts.Metrics,
		rnd:       rnd,
	}

	scope.Log.WithFields(logrus.Fields{
		"sessionID":        engine.sessionID,
		"players":          ros.Len(),
		"courts":           opts.Courts,
		"format":           opts.Format,
		"genderPreference": opts.GenderPreference,
	}).Info("round engine constructed")

	return engine, nil
}

// GenerateRound produces all matches for one round at once. Courts are
// numbered sequentially in the order the grouping strategy produced the
// pairings, so under skill clustering court 1 holds the strongest group.
func (e *Engine) GenerateRound(rootScope *envelope.Scope, roundNumber int) (*models.Round, error) {
	scope := rootScope.NewChildScope("Engine.GenerateRound")
	defer scope.Finish()
	scope.SetAttributes(envelope.RoundNumberTag, roundNumber)
	startTime := time.Now()

	sel := e.selectCandidates(roundNumber, e.opts.Courts, nil)
	pairings, degradations := e.strategy.Group(scope, sel.playing, sel.matchCount, e.roster.History())
	if sel.matchCount == 0 {
		// Rebasing below leaves this entry at court 0: it belongs to the
		// round, not to any court.
		degradations = append(degradations, models.Degradation{Court: -1, Reason: constants.DegradeReasonNotEnoughPlayers})
	}

	round := &models.Round{
		RoundID: utils.GenerateUUID(),
		Number:  roundNumber,
	}
	placed := make(map[playerdata.ID]struct{}, len(pairings)*4)
	for i, pairing := range pairings {
		match := &models.Match{
			Court: i + 1,
			Team1: pairing.Team1,
			Team2: pairing.Team2,
		}
		round.Matches = append(round.Matches, match)
		for _, p := range match.Players() {
			placed[p.ID] = struct{}{}
		}
		e.noteMatchPartners(match)
	}
	for _, d := range degradations {
		d.Court++
		round.Degradations = append(round.Degradations, d)
		e.metrics.AddDegradedReason(e.opts.Format, d.Reason)
	}

	round.SittingPlayers = append(round.SittingPlayers, sel.sitting...)
	playing := make([]*models.Player, 0, len(sel.playing))
	for _, p := range sel.playing {
		// A player the strategy could not place sits this round instead.
		if _, ok := placed[p.ID]; !ok {
			round.SittingPlayers = append(round.SittingPlayers, p)
			continue
		}
		playing = append(playing, p)
	}
	e.applyPlayCounters(playing)
	e.applySitCounters(round.SittingPlayers)

	e.metrics.RoundGenerated(e.opts.Format, len(round.Matches), len(round.SittingPlayers))
	e.metrics.AddGenerateElapsedTimeMs(e.opts.Format, constants.GenerateRoundFunction, time.Since(startTime))

	scope.Log.WithFields(logrus.Fields{
		"sessionID":    e.sessionID,
		"roundNumber":  roundNumber,
		"matches":      len(round.Matches),
		"sitting":      len(round.SittingPlayers),
		"degradations": len(round.Degradations),
	}).Info("round generated")

	return round, nil
}

// GenerateCourtMatch produces exactly one match for one named court and
// round. The exclusion list carries players already committed to other
// courts of the same logical round; the engine keeps no cross-call memory
// of who is currently playing, that bookkeeping belongs to the caller.
//
// A nil match with a nil error means fewer than 4 eligible players remain
// for this call.
func (e *Engine) GenerateCourtMatch(rootScope *envelope.Scope, roundNumber, court int, excluded []playerdata.ID) (*models.Match, error) {
	scope := rootScope.NewChildScope("Engine.GenerateCourtMatch")
	defer scope.Finish()
	scope.SetAttributes(envelope.RoundNumberTag, roundNumber)
	scope.SetAttributes(envelope.CourtNumberTag, court)
	startTime := time.Now()

	if court < 1 {
		return nil, models.ConfigurationErrorCourtCount
	}

	excludedSet := make(map[playerdata.ID]struct{}, len(excluded))
	for _, id := range excluded {
		excludedSet[id] = struct{}{}
	}

	sel := e.selectCandidates(roundNumber, 1, excludedSet)
	if sel.matchCount == 0 {
		e.metrics.AddDegradedReason(e.opts.Format, constants.DegradeReasonNotEnoughPlayers)
		scope.Log.WithFields(logrus.Fields{
			"roundNumber": roundNumber,
			"court":       court,
			"eligible":    len(sel.playing) + len(sel.sitting),
		}).Info("not enough players for court, returning no match")
		return nil, nil
	}

	// With one requested court the playing pool is exactly the four
	// players most owed a game; the strategy only decides the split.
	pairings, _ := e.strategy.Group(scope, sel.playing, 1, e.roster.History())
	if len(pairings) == 0 {
		return nil, nil
	}

	match := &models.Match{
		Court: court,
		Team1: pairings[0].Team1,
		Team2: pairings[0].Team2,
	}
	e.noteMatchPartners(match)
	// Sit counters are not advanced here: unplaced players may still be
	// placed on another court of the same logical round. The caller closes
	// the round with RecordSitting once its courts are filled.
	e.applyPlayCounters(match.Players())

	e.metrics.AddGenerateElapsedTimeMs(e.opts.Format, constants.GenerateCourtFunction, time.Since(startTime))

	scope.Log.WithFields(logrus.Fields{
		"sessionID":   e.sessionID,
		"roundNumber": roundNumber,
		"court":       court,
		"players":     playerdata.IDsToStrings(match.PlayerIDs()),
	}).Info("court match generated")

	return match, nil
}

// RecordSitting closes a per-court logical round by advancing sit counters
// for the players the caller left unplaced. Whole-round generation does
// this automatically.
func (e *Engine) RecordSitting(rootScope *envelope.Scope, ids []playerdata.ID) error {
	scope := rootScope.NewChildScope("Engine.RecordSitting")
	defer scope.Finish()

	sitting := make([]*models.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := e.roster.Get(id)
		if !ok {
			return models.ErrUnknownPlayer
		}
		sitting = append(sitting, p)
	}
	e.applySitCounters(sitting)

	scope.Log.WithField("sitting", len(sitting)).Info("sitting players recorded")
	return nil
}

// RecordResult folds one completed, already-validated match into ratings,
// records, and pairwise history.
func (e *Engine) RecordResult(rootScope *envelope.Scope, match *models.Match) error {
	scope := rootScope.NewChildScope("Engine.RecordResult")
	defer scope.Finish()
	startTime := time.Now()

	if err := e.updater.Apply(scope, match, e.roster); err != nil {
		return err
	}

	e.metrics.MatchRecorded(e.opts.Format)
	e.metrics.AddGenerateElapsedTimeMs(e.opts.Format, constants.RecordResultFunction, time.Since(startTime))
	return nil
}

// Players returns the engine-owned player collection. Callers read it for
// standings and persistence; the engine keeps mutating it as rounds
// complete.
func (e *Engine) Players() []*models.Player {
	return e.roster.Players()
}

// HistorySnapshot exports the pairwise history so callers can persist it
// and hand it back through Options.History after a restart.
func (e *Engine) HistorySnapshot() roster.HistorySnapshot {
	return e.roster.History().Snapshot()
}

// SessionID identifies this engine instance in logs and traces.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// noteMatchPartners records the match's partnerships as the most recent
// ones, feeding the next round's repeat-avoidance check.
func (e *Engine) noteMatchPartners(match *models.Match) {
	hist := e.roster.History()
	hist.NotePartners(match.Team1.Players[0].ID, match.Team1.Players[1].ID)
	hist.NotePartners(match.Team2.Players[0].ID, match.Team2.Players[1].ID)
}

// noopMetrics is used when the caller does not provide a metrics sink.
type noopMetrics struct{}

func (noopMetrics) RoundGenerated(string, int, int)                       {}
func (noopMetrics) AddGenerateElapsedTimeMs(string, string, time.Duration) {}
func (noopMetrics) AddDegradedReason(string, string)                      {}
func (noopMetrics) MatchRecorded(string)                                  {}
