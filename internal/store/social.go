package store

import (
	"fmt"

	"moneyprinter/internal/domain"
)

// XP granted for sharing a trade to the feed.
const shareTradeXP = 10

// AddChallenge prepends the challenge to the list.
func (s *Store) AddChallenge(challenge domain.Challenge) {
	s.apply("add_challenge", func(st *State) {
		st.Challenges = append([]domain.Challenge{challenge}, st.Challenges...)
	})
}

// UpdateChallenge merges the partial update into the challenge with the
// given id. Unknown ids are a silent no-op; no cascading effects.
func (s *Store) UpdateChallenge(id string, upd domain.ChallengeUpdate) {
	s.applyChecked("update_challenge", func(st *State) bool {
		idx := -1
		for i := range st.Challenges {
			if st.Challenges[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}

		challenges := append([]domain.Challenge(nil), st.Challenges...)
		challenge := challenges[idx]
		if upd.ChallengerProfit != nil {
			challenge.ChallengerProfit = *upd.ChallengerProfit
		}
		if upd.ChallengedProfit != nil {
			challenge.ChallengedProfit = *upd.ChallengedProfit
		}
		if upd.Status != nil {
			challenge.Status = *upd.Status
		}
		if upd.EndsAt != nil {
			challenge.EndsAt = *upd.EndsAt
		}
		if upd.Winner != nil {
			challenge.Winner = *upd.Winner
		}
		challenges[idx] = challenge
		st.Challenges = challenges
		return true
	})
}

// AddSocialPost prepends the post to the feed.
func (s *Store) AddSocialPost(post domain.SocialPost) {
	s.apply("add_social_post", func(st *State) {
		st.SocialPosts = append([]domain.SocialPost{post}, st.SocialPosts...)
	})
}

// LikeSocialPost toggles userID's membership in the post's like set. The
// likes counter always equals the set size; calling twice is a round trip.
func (s *Store) LikeSocialPost(postID, userID string) {
	s.applyChecked("like_social_post", func(st *State) bool {
		idx := -1
		for i := range st.SocialPosts {
			if st.SocialPosts[i].ID == postID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}

		posts := append([]domain.SocialPost(nil), st.SocialPosts...)
		post := posts[idx]
		if post.LikedByUser(userID) {
			likedBy := make([]string, 0, len(post.LikedBy)-1)
			for _, id := range post.LikedBy {
				if id != userID {
					likedBy = append(likedBy, id)
				}
			}
			post.LikedBy = likedBy
		} else {
			post.LikedBy = append(append([]string(nil), post.LikedBy...), userID)
		}
		post.Likes = len(post.LikedBy)
		posts[idx] = post
		st.SocialPosts = posts
		return true
	})
}

// ShareTrade marks the trade shared, synthesizes a feed post from it and
// grants a flat XP bonus — one transaction. Silent no-op when the trade or
// the user is missing. The embedded trade snapshot is taken before the
// shared flag flips, matching the mobile app.
func (s *Store) ShareTrade(tradeID string) {
	s.applyChecked("share_trade", func(st *State) bool {
		trade := st.FindTrade(tradeID)
		if trade == nil || st.User == nil {
			return false
		}
		snapshot := *trade

		shared := true
		applyTradeUpdate(st, tradeID, domain.TradeUpdate{Shared: &shared}, s.now())

		user := st.User
		post := domain.SocialPost{
			ID:        "post-" + s.newID(),
			UserID:    user.ID,
			Username:  user.Username,
			UserLevel: user.Level,
			Content:   shareContent(&snapshot),
			TradeID:   tradeID,
			Trade:     &snapshot,
			CreatedAt: s.now(),
			LikedBy:   []string{},
		}
		st.SocialPosts = append([]domain.SocialPost{post}, st.SocialPosts...)

		applyUserXP(st, shareTradeXP)
		return true
	})
}

func shareContent(trade *domain.Trade) string {
	verb := "started"
	if trade.Status == domain.TradeCompleted {
		verb = "completed"
	}
	content := fmt.Sprintf("Just %s a trade on %s!", verb, trade.TokenName)
	if trade.IsProfitable() && trade.ProfitPercentage != nil {
		content += fmt.Sprintf(" Made a %s%% profit! 🚀", trade.ProfitPercentage.String())
	}
	return content
}

// JoinTeam adds the current user to the team's member set and stores a value
// copy of the team on the user. The copy does not track later team changes;
// re-joining refreshes it.
func (s *Store) JoinTeam(teamID string) {
	s.applyChecked("join_team", func(st *State) bool {
		if st.User == nil {
			return false
		}
		idx := teamIndex(st, teamID)
		if idx < 0 {
			return false
		}

		teams := append([]domain.Team(nil), st.Teams...)
		team := teams[idx]
		if !team.HasMember(st.User.ID) {
			team.Members = append(append([]string(nil), team.Members...), st.User.ID)
		}
		teams[idx] = team
		st.Teams = teams

		user := *st.User
		teamCopy := team
		user.Team = &teamCopy
		st.User = &user
		return true
	})
}

// LeaveTeam removes the current user from their team's member set and clears
// the user-side copy. Silent no-op without a user, a joined team, or when
// the team no longer exists.
func (s *Store) LeaveTeam() {
	s.applyChecked("leave_team", func(st *State) bool {
		if st.User == nil || st.User.Team == nil {
			return false
		}
		idx := teamIndex(st, st.User.Team.ID)
		if idx < 0 {
			return false
		}

		teams := append([]domain.Team(nil), st.Teams...)
		team := teams[idx]
		members := make([]string, 0, len(team.Members))
		for _, id := range team.Members {
			if id != st.User.ID {
				members = append(members, id)
			}
		}
		team.Members = members
		teams[idx] = team
		st.Teams = teams

		user := *st.User
		user.Team = nil
		st.User = &user
		return true
	})
}

func teamIndex(st *State, teamID string) int {
	for i := range st.Teams {
		if st.Teams[i].ID == teamID {
			return i
		}
	}
	return -1
}
