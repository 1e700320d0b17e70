package store

import (
	"moneyprinter/internal/domain"

	"github.com/shopspring/decimal"
)

// Well-known mission ids referenced by the trade cascade and the bot toggle.
const (
	MissionBotRunning  = "mission-1"
	MissionInvite      = "mission-2"
	MissionDailyProfit = "mission-3"
	MissionBigWin      = "mission-4"
	MissionHoldTrade   = "mission-5"
)

// UpdateMissionProgress adds delta to the mission's progress and recomputes
// completion. The XP reward is granted exactly once, on the transition from
// incomplete to complete. Unknown ids are a silent no-op.
func (s *Store) UpdateMissionProgress(missionID string, delta decimal.Decimal) {
	s.applyChecked("update_mission_progress", func(st *State) bool {
		return applyMissionProgress(st, missionID, delta)
	})
}

// CompleteMission force-sets the mission to its target and awards the XP,
// unless it is already completed (idempotent).
func (s *Store) CompleteMission(missionID string) {
	s.applyChecked("complete_mission", func(st *State) bool {
		return applyCompleteMission(st, missionID)
	})
}

// ResetDailyMissions rewinds every daily mission to zero progress with a
// fresh end-of-day expiry. Weekly and achievement missions are untouched.
func (s *Store) ResetDailyMissions() {
	s.apply("reset_daily_missions", func(st *State) {
		expiry := domain.EndOfDay(s.now())
		missions := append([]domain.Mission(nil), st.Missions...)
		for i := range missions {
			if missions[i].Type != domain.MissionDaily {
				continue
			}
			missions[i].Progress = decimal.Zero
			missions[i].Completed = false
			missions[i].ExpiresAt = &expiry
		}
		st.Missions = missions
	})
}

func applyMissionProgress(st *State, missionID string, delta decimal.Decimal) bool {
	idx := missionIndex(st, missionID)
	if idx < 0 {
		return false
	}

	missions := append([]domain.Mission(nil), st.Missions...)
	mission := missions[idx]

	newProgress := mission.Progress.Add(delta)
	completed := newProgress.GreaterThanOrEqual(mission.Target)
	if completed && !mission.Completed {
		applyUserXP(st, mission.XPReward)
	}
	mission.Progress = newProgress
	mission.Completed = completed
	missions[idx] = mission
	st.Missions = missions
	return true
}

func applyCompleteMission(st *State, missionID string) bool {
	idx := missionIndex(st, missionID)
	if idx < 0 {
		return false
	}

	mission := st.Missions[idx]
	if mission.Completed {
		// Already done: no double XP, nothing to change.
		return true
	}
	applyUserXP(st, mission.XPReward)

	missions := append([]domain.Mission(nil), st.Missions...)
	mission.Progress = mission.Target
	mission.Completed = true
	missions[idx] = mission
	st.Missions = missions
	return true
}

func missionIndex(st *State, missionID string) int {
	for i := range st.Missions {
		if st.Missions[i].ID == missionID {
			return i
		}
	}
	return -1
}
