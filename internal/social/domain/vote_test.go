package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVoteAdd(t *testing.T) {
	ups, downs, op := ApplyVote(VoterList{}, VoterList{}, Voter{UserID: "user_1", ID: 1}, VoteUp)

	assert.Equal(t, OpUpVote, op)
	assert.True(t, ups.Contains("user_1"))
	assert.False(t, downs.Contains("user_1"))
	assert.Equal(t, 1, Score(ups, downs))
}

func TestApplyVoteSameDirectionRetracts(t *testing.T) {
	ups := VoterList{{UserID: "user_1", ID: 1}}

	newUps, newDowns, op := ApplyVote(ups, VoterList{}, Voter{UserID: "user_1", ID: 2}, VoteUp)

	assert.Equal(t, OpRemoveUpVote, op)
	assert.False(t, newUps.Contains("user_1"))
	assert.Equal(t, 0, Score(newUps, newDowns))
}

func TestApplyVoteSwitchDirection(t *testing.T) {
	ups := VoterList{{UserID: "user_1", ID: 1}}

	newUps, newDowns, op := ApplyVote(ups, VoterList{}, Voter{UserID: "user_1", ID: 2}, VoteDown)

	// 反方向投票先收回原本的票，不會同時出現在兩個名單
	assert.Equal(t, OpDownVote, op)
	assert.False(t, newUps.Contains("user_1"))
	assert.True(t, newDowns.Contains("user_1"))
	assert.Equal(t, -1, Score(newUps, newDowns))
}

func TestApplyVoteDownThenRetract(t *testing.T) {
	downs := VoterList{{UserID: "user_1", ID: 1}}

	newUps, newDowns, op := ApplyVote(VoterList{}, downs, Voter{UserID: "user_1", ID: 2}, VoteDown)

	assert.Equal(t, OpRemoveDownVote, op)
	assert.False(t, newDowns.Contains("user_1"))
	assert.Equal(t, 0, Score(newUps, newDowns))
}

func TestApplyVoteKeepsOtherVoters(t *testing.T) {
	ups := VoterList{{UserID: "user_1", ID: 1}, {UserID: "user_2", ID: 2}}
	downs := VoterList{{UserID: "user_3", ID: 3}}

	newUps, newDowns, op := ApplyVote(ups, downs, Voter{UserID: "user_2", ID: 4}, VoteDown)

	assert.Equal(t, OpDownVote, op)
	assert.True(t, newUps.Contains("user_1"))
	assert.False(t, newUps.Contains("user_2"))
	assert.True(t, newDowns.Contains("user_2"))
	assert.True(t, newDowns.Contains("user_3"))
	assert.Equal(t, -1, Score(newUps, newDowns))
}

func TestVoterForStableID(t *testing.T) {
	// 同一個人永遠拿到同一個 id
	assert.Equal(t, VoterFor("user_1"), VoterFor("user_1"))
	assert.NotEqual(t, VoterFor("user_1").ID, VoterFor("user_2").ID)
}

func TestVoterForNoCollisionAfterRetract(t *testing.T) {
	// user_1 投了又收回，之後 user_2 與 user_1 再投，兩人 id 不會撞號
	ups, downs, _ := ApplyVote(VoterList{}, VoterList{}, VoterFor("user_1"), VoteUp)
	ups, downs, _ = ApplyVote(ups, downs, VoterFor("user_1"), VoteUp)
	ups, downs, _ = ApplyVote(ups, downs, VoterFor("user_2"), VoteUp)
	ups, downs, _ = ApplyVote(ups, downs, VoterFor("user_1"), VoteUp)

	assert.Len(t, ups, 2)
	assert.Empty(t, downs)
	assert.NotEqual(t, ups[0].ID, ups[1].ID)
}

func TestApplyVoteUnknownKind(t *testing.T) {
	ups := VoterList{{UserID: "user_1", ID: 1}}

	newUps, newDowns, op := ApplyVote(ups, VoterList{}, Voter{UserID: "user_2", ID: 2}, VoteKind("sideways"))

	assert.Equal(t, "", op)
	assert.Equal(t, ups, newUps)
	assert.Empty(t, newDowns)
}
